package ui

import (
	"math"
	"time"

	"bonfire-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AutoButton — кнопка автобоя. Цвет показывает, включён ли режим.
type AutoButton struct {
	X, Y           float32
	Width, Height  float32
	LastClickTime  time.Time
	LastToggleTime time.Time
}

func NewAutoButton(x, y float32) *AutoButton {
	return &AutoButton{
		X:      x,
		Y:      y,
		Width:  config.AutoButtonWidth,
		Height: config.AutoButtonHeight,
	}
}

// Contains — попадает ли точка экрана в кнопку.
func (b *AutoButton) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Width && fy >= b.Y && fy <= b.Y+b.Height
}

// Click запускает анимацию нажатия.
func (b *AutoButton) Click() {
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *AutoButton) Draw(screen *ebiten.Image, on bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := float32(1.0 + 0.15*math.Exp(-elapsed*8))
	w, h := b.Width*scale, b.Height*scale
	x, y := b.X-(w-b.Width)/2, b.Y-(h-b.Height)/2

	c := config.AutoOffColor
	label := "AUTO"
	if on {
		c = config.AutoOnColor
		label = "AUTO ON"
	}
	vector.DrawFilledRect(screen, x, y, w, h, c, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.TextLightColor, true)
	DrawLabel(screen, label, float64(x+w/2), float64(y+h/2-8), 16, config.TextLightColor, text.AlignCenter)
}
