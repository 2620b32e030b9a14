// internal/state/pause_state.go
package state

import (
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает матч и рисует поверх него затемнение.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.game.SetPaused(true)
	s.previousState.pauseButton.SetPaused(true)
}

func (s *PauseState) Update() {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); s.previousState.pauseButton.Contains(x, y) {
			unpause = true
		}
	}
	if unpause {
		s.previousState.pauseButton.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	ui.DrawLabel(screen, "PAUSED", float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2-20, 40, config.TextLightColor, text.AlignCenter)
	s.previousState.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {
	s.previousState.game.SetPaused(false)
}
