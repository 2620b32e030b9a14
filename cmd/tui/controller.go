package main

import (
	"bonfire-defense/internal/app"
	"bonfire-defense/internal/component"

	"github.com/gdamore/tcell/v2"
)

// steerHoldTicks — сколько тиков держится направление после нажатия стрелки.
// Терминал не сообщает об отпускании клавиш, автоповтор продлевает удержание.
const steerHoldTicks = 15

type controller struct {
	game *app.Game
	hold int
}

// handleKey применяет нажатие к игре. Возвращает true, если нужно выйти.
func (c *controller) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyUp:
		c.steer(component.Vec2{Z: -1})
	case tcell.KeyDown:
		c.steer(component.Vec2{Z: 1})
	case tcell.KeyLeft:
		c.steer(component.Vec2{X: -1})
	case tcell.KeyRight:
		c.steer(component.Vec2{X: 1})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'a':
			c.game.ToggleAutoCombat()
		case 'p':
			c.game.TogglePause()
		case 'r':
			c.hold = 0
			c.game.StartMatch()
		case ' ':
			c.hold = 0
			c.game.SetMoveDirection(nil)
		}
	}
	return false
}

func (c *controller) steer(dir component.Vec2) {
	c.hold = steerHoldTicks
	c.game.SetMoveDirection(&dir)
}

// tick продвигает игру на один шаг и отпускает направление по таймауту.
func (c *controller) tick() {
	if c.hold > 0 && !c.game.IsPaused() {
		c.hold--
		if c.hold == 0 {
			c.game.SetMoveDirection(nil)
		}
	}
	c.game.Tick()
}
