// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bonfire-defense/internal/app"
	"bonfire-defense/internal/audio"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/debug"
	"bonfire-defense/internal/logging"
	"bonfire-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// AppGame связывает ebiten с машиной состояний. Ebiten вызывает Update
// с фиксированной частотой TPS, один вызов — один тик симуляции.
type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to settings TOML (or $"+config.EnvConfigPath+")")
	seed := flag.Int64("seed", 0, "match seed, overrides the config")
	flag.Parse()

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	game, err := app.FromSettings(cfg, log)
	if err != nil {
		log.Fatal("create game", zap.Error(err))
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

	sm := state.NewStateMachine()
	gs := state.NewGameState(sm, state.GameDeps{Game: game, Feed: feed, Log: log})
	if cfg.Game.StartInMenu {
		sm.SetState(state.NewMenuState(sm, gs))
	} else {
		sm.SetState(gs)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(config.TicksPerSecond)

	a := &AppGame{stateMachine: sm}
	if err := ebiten.RunGame(a); err != nil {
		log.Error("game loop", zap.Error(err))
	}
}
