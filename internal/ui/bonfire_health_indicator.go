package ui

import (
	"fmt"
	"image/color"

	"bonfire-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BonfireHealthIndicator — полоса здоровья костра с числом над ней.
type BonfireHealthIndicator struct {
	X, Y          float32
	Width, Height float32
}

func NewBonfireHealthIndicator(x, y float32) *BonfireHealthIndicator {
	return &BonfireHealthIndicator{
		X:      x,
		Y:      y,
		Width:  config.HealthBarWidth,
		Height: config.HealthBarHeight,
	}
}

// healthFill — доля заполнения полосы.
func healthFill(hp, maxHP float64) float32 {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	return float32(min(hp/maxHP, 1))
}

// Draw рисует полосу. displayHP — округлённое вверх здоровье.
func (i *BonfireHealthIndicator) Draw(screen *ebiten.Image, hp, maxHP float64, displayHP int) {
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.HealthEmptyColor, true)
	if w := (i.Width - 2) * healthFill(hp, maxHP); w > 0 {
		vector.DrawFilledRect(screen, i.X+1, i.Y+1, w, i.Height-2, config.HealthFillColor, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, 1, color.White, true)

	label := fmt.Sprintf("BONFIRE %d/%d", displayHP, int(maxHP))
	DrawLabel(screen, label, float64(i.X+i.Width/2), float64(i.Y)-18, 14, config.TextLightColor, text.AlignCenter)
}
