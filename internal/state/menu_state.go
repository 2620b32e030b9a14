// internal/state/menu_state.go
package state

import (
	"image"

	"bonfire-defense/internal/config"
	"bonfire-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm          *StateMachine
	next        State
	startButton *ui.MenuButton
}

func NewMenuState(sm *StateMachine, next State) *MenuState {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &MenuState{
		sm:          sm,
		next:        next,
		startButton: ui.NewMenuButton(image.Rect(cx-120, cy+20, cx+120, cy+70), "START"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); m.startButton.Contains(x, y) {
			start = true
		}
	}
	if start {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := float64(config.ScreenWidth) / 2
	ui.DrawOutlinedLabel(screen, "BONFIRE DEFENSE", cx, float64(config.ScreenHeight)/2-110, 56, config.BonfireColor, config.BackgroundColor, 2, text.AlignCenter)
	ui.DrawLabel(screen, "WASD / ARROWS - MOVE   F - AUTO   P - PAUSE", cx, float64(config.ScreenHeight)/2-30, 16, config.TextLightColor, text.AlignCenter)
	m.startButton.Draw(screen)
}

func (m *MenuState) Exit() {}
