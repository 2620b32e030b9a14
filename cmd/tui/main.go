// cmd/tui/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"bonfire-defense/internal/app"
	"bonfire-defense/internal/audio"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/debug"
	"bonfire-defense/internal/logging"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to settings TOML (or $"+config.EnvConfigPath+")")
	logPath := flag.String("log", "bonfire-tui.log", "log file, the terminal is taken by the game")
	flag.Parse()

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logging.ToFile(cfg.Logging, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("tui stopped", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Settings, log *zap.Logger) error {
	game, err := app.FromSettings(cfg, log)
	if err != nil {
		return err
	}

	sound := audio.NewPlayer(cfg.Audio, log)
	if err := sound.Init(); err != nil {
		log.Warn("audio disabled", zap.Error(err))
	}
	sound.Listen(game.Events())
	defer sound.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	feed := debug.Start(ctx, cfg.Debug, log)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	v := newView(screen, game.WeaponDefs)
	c := &controller{game: game}
	game.StartMatch()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if c.handleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.resize()
				screen.Sync()
			}
		case <-ticker.C:
			c.tick()
			snap := game.Snapshot()
			if feed != nil {
				feed.Publish(snap)
			}
			v.draw(snap)
		}
	}
}
