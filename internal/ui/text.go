package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

const hudFaceHeight = 13.0

// DrawLabel рисует строку высотой size пикселей. (x, y) — верхняя точка
// строки, align задаёт выравнивание по горизонтали относительно x.
func DrawLabel(dst *ebiten.Image, s string, x, y, size float64, clr color.Color, align text.Align) {
	k := size / hudFaceHeight
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

// DrawOutlinedLabel рисует строку с обводкой толщиной thickness пикселей.
func DrawOutlinedLabel(dst *ebiten.Image, s string, x, y, size float64, clr, outline color.Color, thickness int, align text.Align) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawLabel(dst, s, x+float64(dx), y+float64(dy), size, outline, align)
		}
	}
	DrawLabel(dst, s, x, y, size, clr, align)
}

// LabelWidth — ширина строки при высоте size.
func LabelWidth(s string, size float64) float64 {
	w, _ := text.Measure(s, hudFace, 0)
	return w * size / hudFaceHeight
}
