package ui

import (
	"image/color"

	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	levelPipSize  = 6
	levelPipGap   = 3
	maxLevelPips  = 5
	slotBorder    = 2
	slotLabelSize = 11
)

// WeaponSlots отображает инвентарь: цвет оружия, уровень и перезарядку.
type WeaponSlots struct {
	X, Y    float32
	table   *defs.WeaponTable
	colorOf func(defs.WeaponType) color.RGBA
}

func NewWeaponSlots(x, y float32, table *defs.WeaponTable, colorOf func(defs.WeaponType) color.RGBA) *WeaponSlots {
	return &WeaponSlots{X: x, Y: y, table: table, colorOf: colorOf}
}

// cooldownFraction — какая часть перезарядки ещё осталась.
func cooldownFraction(w component.Weapon, table *defs.WeaponTable) float32 {
	full := table.Cooldown(w.Type, w.Level)
	if full <= 0 || w.Cooldown <= 0 {
		return 0
	}
	return float32(min(float64(w.Cooldown)/float64(full), 1))
}

// Draw рисует MaxWeapons ячеек; пустые остаются тёмными.
func (s *WeaponSlots) Draw(screen *ebiten.Image, weapons []component.Weapon) {
	size := float32(config.WeaponSlotSize)
	for i := 0; i < config.MaxWeapons; i++ {
		x := s.X + float32(i)*(size+config.WeaponSlotGap)
		vector.DrawFilledRect(screen, x, s.Y, size, size, config.SlotColor, true)
		if i >= len(weapons) {
			vector.StrokeRect(screen, x, s.Y, size, size, 1, config.ArenaEdgeColor, true)
			continue
		}
		w := weapons[i]
		c := s.colorOf(w.Type)
		inner := size - slotBorder*2
		vector.DrawFilledRect(screen, x+slotBorder, s.Y+slotBorder, inner, inner, c, true)

		// Перезарядка затемняет ячейку сверху вниз.
		if f := cooldownFraction(w, s.table); f > 0 {
			vector.DrawFilledRect(screen, x+slotBorder, s.Y+slotBorder, inner, inner*f, config.CooldownColor, true)
		}
		vector.StrokeRect(screen, x, s.Y, size, size, 1, color.White, true)

		// Квадратики уровня под ячейкой.
		pipY := s.Y + size + 4
		for j := 0; j < min(w.Level, maxLevelPips); j++ {
			pipX := x + float32(j)*(levelPipSize+levelPipGap)
			vector.DrawFilledRect(screen, pipX, pipY, levelPipSize, levelPipSize, c, true)
		}
		if w.Level > maxLevelPips {
			DrawLabel(screen, "+", float64(x+size), float64(pipY-3), slotLabelSize, c, text.AlignEnd)
		}

		name := string(w.Type)
		if def, ok := s.table.Get(w.Type); ok && def.Name != "" {
			name = def.Name
		}
		DrawLabel(screen, name, float64(x+size/2), float64(s.Y+size/2-slotLabelSize/2), slotLabelSize, color.Black, text.AlignCenter)
	}
}
