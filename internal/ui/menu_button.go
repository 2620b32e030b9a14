// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect     image.Rectangle
	Text     string
	FontSize float64
	bgColor  color.RGBA
	fgColor  color.RGBA
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect image.Rectangle, label string) *MenuButton {
	return &MenuButton{
		Rect:     rect,
		Text:     label,
		FontSize: 18,
		bgColor:  color.RGBA{128, 128, 128, 255},
		fgColor:  color.RGBA{0, 0, 0, 255},
	}
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.bgColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{200, 200, 200, 255}, true)
	DrawLabel(screen, b.Text, float64(x+w/2), float64(y)+(float64(h)-b.FontSize)/2, b.FontSize, b.fgColor, text.AlignCenter)
}

// Contains проверяет, был ли клик по кнопке.
func (b *MenuButton) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}
