// internal/state/game_state.go
package state

import (
	"fmt"

	"bonfire-defense/internal/app"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/debug"
	"bonfire-defense/internal/ui"
	"bonfire-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
)

// GameDeps — то, что состояние игры получает снаружи.
type GameDeps struct {
	Game *app.Game
	Feed *debug.Feed // nil, если отладочный сервер выключен
	Log  *zap.Logger
}

// GameState — состояние игры: один тик симуляции на каждый Update.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	feed     *debug.Feed
	log      *zap.Logger
	renderer *render.ArenaRenderer
	snapshot *app.Snapshot

	waveIndicator  *ui.WaveIndicator
	phaseIndicator *ui.PhaseIndicator
	healthBar      *ui.BonfireHealthIndicator
	weaponSlots    *ui.WeaponSlots
	autoButton     *ui.AutoButton
	pauseButton    *ui.PauseButton
	joystick       *ui.Joystick
	infoPanel      *ui.InfoPanel
}

func NewGameState(sm *StateMachine, deps GameDeps) *GameState {
	g := deps.Game
	renderer := render.NewArenaRenderer(g.WeaponDefs, config.ScreenWidth, config.ScreenHeight, config.WorldScale)
	m := float32(config.HUDMargin)
	w, h := float32(config.ScreenWidth), float32(config.ScreenHeight)

	return &GameState{
		sm:             sm,
		game:           g,
		feed:           deps.Feed,
		log:            deps.Log,
		renderer:       renderer,
		waveIndicator:  ui.NewWaveIndicator(float64(w)/2, float64(m), config.IndicatorFontSize*2),
		phaseIndicator: ui.NewPhaseIndicator(w-m-60, m+60, 10),
		healthBar:      ui.NewBonfireHealthIndicator(w/2-config.HealthBarWidth/2, m+76),
		weaponSlots:    ui.NewWeaponSlots(m, h-m-config.WeaponSlotSize-12, g.WeaponDefs, renderer.WeaponColor),
		autoButton:     ui.NewAutoButton(w-m-config.AutoButtonWidth, h-m-config.AutoButtonHeight),
		pauseButton:    ui.NewPauseButton(w-m-16, m+16, 12),
		joystick:       ui.NewJoystick(float64(config.ScreenWidth)/2, float64(h-m)-config.JoystickRadius),
		infoPanel:      ui.NewInfoPanel(),
	}
}

func (g *GameState) Enter() {
	if !g.game.Started() {
		g.startMatch()
	}
}

func (g *GameState) startMatch() {
	g.game.StartMatch()
	g.infoPanel.Hide()
	g.publish()
}

func (g *GameState) Update() {
	g.infoPanel.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case g.pauseButton.Contains(x, y):
			g.pause()
			return
		case g.infoPanel.RestartClicked(x, y):
			g.startMatch()
			return
		case g.autoButton.Contains(x, y):
			g.toggleAuto()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleAuto()
	}

	if g.game.Phase().IsTerminal() {
		if !g.infoPanel.IsVisible {
			g.infoPanel.Show()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.startMatch()
		}
		return
	}

	g.handleMovement()
	g.game.Tick()
	g.publish()
}

func (g *GameState) handleMovement() {
	if dir, ok := g.joystick.Update(); ok {
		g.game.SetMoveDirection(&dir)
		return
	}
	if g.joystick.Active() {
		g.game.SetMoveDirection(nil)
		return
	}
	dir, ok := ui.KeysDirection(
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	)
	if !ok {
		g.game.SetMoveDirection(nil)
		return
	}
	g.game.SetMoveDirection(&dir)
}

func (g *GameState) toggleAuto() {
	g.game.ToggleAutoCombat()
	g.autoButton.Click()
	g.log.Debug("auto-combat toggled", zap.Bool("on", g.game.AutoCombat()))
}

func (g *GameState) pause() {
	if g.game.Phase().IsTerminal() {
		return
	}
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// publish снимает копию состояния для отрисовки и отладочного сервера.
func (g *GameState) publish() {
	g.snapshot = g.game.Snapshot()
	if g.feed != nil {
		g.feed.Publish(g.snapshot)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.snapshot
	g.renderer.Draw(screen, s)
	if s == nil {
		return
	}

	g.waveIndicator.Draw(screen, s.Wave)
	g.phaseIndicator.Draw(screen, s.Phase, s.WaveDelay)
	g.healthBar.Draw(screen, s.Bonfire.HP, s.Bonfire.MaxHP, s.BonfireHPDisplay)
	g.weaponSlots.Draw(screen, s.Weapons)
	g.autoButton.Draw(screen, s.AutoCombat)
	g.pauseButton.Draw(screen)
	g.joystick.Draw(screen)

	m := float64(config.HUDMargin)
	ui.DrawLabel(screen, fmt.Sprintf("SCORE %d", s.Score), m, m, 20, config.TextLightColor, text.AlignStart)
	if !s.Phase.IsTerminal() {
		ui.DrawLabel(screen, fmt.Sprintf("KILLS %d/%d", s.KillsInWave, s.KillsNeeded), m, m+26, 16, config.TextLightColor, text.AlignStart)
	}
	g.infoPanel.Draw(screen, s)
}

func (g *GameState) Exit() {}
