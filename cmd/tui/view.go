package main

import (
	"fmt"
	"math"

	"bonfire-defense/internal/app"
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/defs"
	"bonfire-defense/pkg/render"

	"github.com/gdamore/tcell/v2"
)

const (
	hudRows    = 2
	footerRows = 1
	viewRadius = 16.0 // сколько единиц арены помещается от центра до края
)

var (
	styleDefault = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleZombie  = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen)
	styleTarget  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBonfire = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleBlood   = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// view рисует снимок матча в терминале. Клетка терминала примерно вдвое
// выше своей ширины, поэтому по горизонтали масштаб удвоен.
type view struct {
	screen       tcell.Screen
	weaponStyles map[defs.WeaponType]tcell.Style
	cx, cy       int
	scaleX       float64
	scaleY       float64
}

func newView(screen tcell.Screen, weapons *defs.WeaponTable) *view {
	v := &view{
		screen:       screen,
		weaponStyles: make(map[defs.WeaponType]tcell.Style, len(defs.AllWeaponTypes)),
	}
	for _, wt := range defs.AllWeaponTypes {
		style := styleDefault
		if def, ok := weapons.Get(wt); ok {
			if c, err := render.ParseHexColor(def.Color); err == nil {
				style = style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			}
		}
		v.weaponStyles[wt] = style
	}
	v.resize()
	return v
}

// resize пересчитывает масштаб под текущий размер терминала.
func (v *view) resize() {
	w, h := v.screen.Size()
	field := h - hudRows - footerRows
	v.cx = w / 2
	v.cy = hudRows + field/2
	v.scaleY = math.Max(0.1, math.Min(float64(field)/2/viewRadius, float64(w)/4/viewRadius))
	v.scaleX = v.scaleY * 2
}

// project переводит точку арены в клетку терминала.
func (v *view) project(p component.Vec2) (int, int, bool) {
	x := v.cx + int(math.Round(p.X*v.scaleX))
	y := v.cy + int(math.Round(p.Z*v.scaleY))
	w, h := v.screen.Size()
	return x, y, x >= 0 && x < w && y >= hudRows && y < h-footerRows
}

func (v *view) put(p component.Vec2, r rune, style tcell.Style) {
	if x, y, ok := v.project(p); ok {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *view) centered(y int, s string, style tcell.Style) {
	w, _ := v.screen.Size()
	v.text((w-len([]rune(s)))/2, y, s, style)
}

func (v *view) draw(s *app.Snapshot) {
	v.screen.Clear()
	if s == nil {
		v.screen.Show()
		return
	}

	// граница арены
	for a := 0.0; a < 2*math.Pi; a += 0.05 {
		v.put(component.Polar(a, config.ArenaRadius), '·', styleDim)
	}

	for _, p := range s.Particles {
		v.put(p.Pos, '.', styleBlood)
	}
	for _, p := range s.Pickups {
		v.put(p.Pos, '◆', v.weaponStyles[p.Type])
	}
	v.put(s.Bonfire.Pos, '▲', styleBonfire)
	for _, z := range s.Zombies {
		style := styleZombie
		if s.AutoCombat && z.ID == s.TargetID {
			style = styleTarget
		}
		v.put(z.Pos, 'Z', style)
	}
	for _, b := range s.Bullets {
		v.put(b.Pos, '•', v.weaponStyles[b.Weapon])
	}
	v.put(s.Player.Pos, '@', stylePlayer)

	v.drawHUD(s)
	v.screen.Show()
}

func hudLine(s *app.Snapshot) string {
	auto := "off"
	if s.AutoCombat {
		auto = "on"
	}
	return fmt.Sprintf("SCORE %d  WAVE %d/%d  KILLS %d/%d  BONFIRE %d/%d  AUTO %s",
		s.Score, min(s.Wave, config.FinalWave), config.FinalWave,
		s.KillsInWave, s.KillsNeeded,
		s.BonfireHPDisplay, int(s.Bonfire.MaxHP), auto)
}

func (v *view) drawHUD(s *app.Snapshot) {
	_, h := v.screen.Size()
	v.text(0, 0, hudLine(s), styleDefault)
	x := 0
	v.text(x, 1, "WEAPONS ", styleDefault)
	x += len("WEAPONS ")
	for _, w := range s.Weapons {
		label := fmt.Sprintf("%s:%d ", w.Type, w.Level)
		style := v.weaponStyles[w.Type]
		if w.Cooldown > 0 {
			style = style.Dim(true)
		}
		v.text(x, 1, label, style)
		x += len(label)
	}
	v.text(0, h-1, "arrows move  space stop  a auto  p pause  r restart  q quit", styleDim)

	switch {
	case s.Paused:
		v.centered(v.cy-2, " PAUSED ", styleBanner)
	case s.Phase == component.VictoryPhase:
		v.centered(v.cy-2, " VICTORY ", styleBanner)
		v.centered(v.cy-1, " r - new match ", styleDefault)
	case s.Phase == component.DefeatPhase:
		v.centered(v.cy-2, " DEFEAT ", styleTarget)
		v.centered(v.cy-1, " r - new match ", styleDefault)
	case s.Phase == component.WaveDelayPhase && s.WaveDelay > 0:
		v.centered(v.cy-2, fmt.Sprintf(" NEXT WAVE %.1fs ", float64(s.WaveDelay)/config.TicksPerSecond), styleBanner)
	}
}
