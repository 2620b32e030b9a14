package main

import (
	"strings"
	"testing"

	"bonfire-defense/internal/app"
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/defs"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestViewDrawsPlayerAndBonfire(t *testing.T) {
	screen := newSimScreen(t, 80, 40)
	g := app.NewGame(app.Options{Seed: 1})
	g.StartMatch()
	v := newView(screen, g.WeaponDefs)
	v.draw(g.Snapshot())

	x, y, ok := v.project(component.Vec2{})
	if !ok || cellAt(screen, x, y) != '▲' {
		t.Errorf("bonfire not drawn at %d,%d", x, y)
	}
	x, y, ok = v.project(g.Store.Player.Pos)
	if !ok || cellAt(screen, x, y) != '@' {
		t.Errorf("player not drawn at %d,%d", x, y)
	}
}

func TestProjectKeepsAspect(t *testing.T) {
	screen := newSimScreen(t, 120, 40)
	v := newView(screen, defs.DefaultWeapons())
	x0, y0, _ := v.project(component.Vec2{})
	x1, _, _ := v.project(component.Vec2{X: 10})
	_, y1, _ := v.project(component.Vec2{Z: 10})
	if dx, dy := x1-x0, y1-y0; dx < 2*dy-1 || dx > 2*dy+1 {
		t.Errorf("horizontal step %d should be about twice vertical %d", dx, dy)
	}
	if _, _, ok := v.project(component.Vec2{X: 1000}); ok {
		t.Error("far point must be off screen")
	}
}

func TestControllerKeys(t *testing.T) {
	g := app.NewGame(app.Options{Seed: 1})
	g.StartMatch()
	c := &controller{game: g}

	c.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if d := g.Store.Match.MoveDirection; d == nil || *d != (component.Vec2{X: 1}) {
		t.Fatalf("direction = %v", d)
	}
	for i := 0; i < steerHoldTicks; i++ {
		c.tick()
	}
	if g.Store.Match.MoveDirection != nil {
		t.Error("direction must be released after the hold window")
	}

	c.handleKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	if !g.AutoCombat() {
		t.Error("'a' should toggle auto-combat")
	}
	c.handleKey(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if !g.IsPaused() {
		t.Error("'p' should pause")
	}
	if !c.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("'q' should quit")
	}
}

func TestHUDLines(t *testing.T) {
	g := app.NewGame(app.Options{Seed: 1})
	g.StartMatch()
	s := g.Snapshot()
	line := hudLine(s)
	for _, want := range []string{"SCORE 0", "WAVE 1/5", "KILLS 0/5", "BONFIRE 10/10", "AUTO off"} {
		if !strings.Contains(line, want) {
			t.Errorf("hud %q missing %q", line, want)
		}
	}

	screen := newSimScreen(t, 80, 40)
	newView(screen, g.WeaponDefs).draw(s)
	var row []rune
	for x := 0; x < len("WEAPONS basic:1"); x++ {
		row = append(row, cellAt(screen, x, 1))
	}
	if got := string(row); got != "WEAPONS basic:1" {
		t.Errorf("weapon row = %q", got)
	}
}
