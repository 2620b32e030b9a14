// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"bonfire-defense/internal/app"
	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelHeight    = 190
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 24
)

// InfoPanel выезжает снизу в конце матча: итог, счёт и кнопка рестарта.
type InfoPanel struct {
	IsVisible     bool
	currentY      float64
	targetY       float64
	RestartButton *MenuButton
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

// Show начинает анимацию появления.
func (p *InfoPanel) Show() {
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update двигает панель к целевой позиции.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
	}
}

// RestartClicked — попал ли клик в кнопку рестарта.
func (p *InfoPanel) RestartClicked(x, y int) bool {
	return p.IsVisible && p.RestartButton != nil && p.RestartButton.Contains(x, y)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, s *app.Snapshot) {
	if !p.IsVisible || s == nil {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	title, titleColor := "DEFEAT", config.DefeatColor
	if s.Outcome == component.OutcomeVictory {
		title, titleColor = "VICTORY", config.VictoryColor
	}
	cx := float64(config.ScreenWidth) / 2
	y := float64(panelRect.Min.Y) + 15
	DrawLabel(screen, title, cx, y, 36, titleColor, text.AlignCenter)
	y += 44
	DrawLabel(screen, fmt.Sprintf("SCORE %d", s.Score), cx, y, 18, config.TextLightColor, text.AlignCenter)
	y += lineHeight
	DrawLabel(screen, fmt.Sprintf("WAVE %s", toRoman(min(s.Wave, config.FinalWave))), cx, y, 18, config.TextLightColor, text.AlignCenter)

	// Кнопка едет вместе с панелью.
	bw, bh := 200, 40
	rect := image.Rect(int(cx)-bw/2, panelRect.Max.Y-bh-15, int(cx)+bw/2, panelRect.Max.Y-15)
	if p.RestartButton == nil {
		p.RestartButton = NewMenuButton(rect, "RESTART [ENTER]")
	}
	p.RestartButton.Rect = rect
	p.RestartButton.Draw(screen)
}
