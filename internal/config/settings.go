package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings — настройки запуска, читаются из TOML.
type Settings struct {
	Game    GameSettings    `toml:"game"`
	Window  WindowSettings  `toml:"window"`
	Logging LoggingSettings `toml:"logging"`
	Audio   AudioSettings   `toml:"audio"`
	Debug   DebugSettings   `toml:"debug"`
}

type GameSettings struct {
	Seed        int64  `toml:"seed"`          // 0 — от текущего времени
	StartInMenu bool   `toml:"start_in_menu"` // false — сразу в матч
	WeaponsFile string `toml:"weapons_file"`  // пусто — встроенная таблица
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type AudioSettings struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type DebugSettings struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
}

// Load читает настройки из path поверх значений по умолчанию.
// Отсутствующий файл не считается ошибкой.
func Load(path string) (*Settings, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (s *Settings) validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be within [0, 1], got %v", s.Audio.Volume)
	}
	switch s.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown logging format %q", s.Logging.Format)
	}
	return nil
}

// Defaults — настройки по умолчанию.
func Defaults() *Settings {
	return &Settings{
		Game: GameSettings{
			StartInMenu: true,
		},
		Window: WindowSettings{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  "Bonfire Defense",
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioSettings{
			Enabled: true,
			Volume:  0.5,
		},
		Debug: DebugSettings{
			Enabled: false,
			Addr:    "localhost:6060",
		},
	}
}

// EnvConfigPath — переменная окружения с путём к файлу настроек.
const EnvConfigPath = "BONFIRE_CONFIG"

// ResolvePath выбирает путь к настройкам: флаг важнее переменной окружения.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}
