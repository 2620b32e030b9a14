// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PhaseIndicator — кружок цвета текущей фазы матча. При смене фазы
// пульсирует, во время задержки между волнами рядом идёт обратный отсчёт.
type PhaseIndicator struct {
	X, Y         float32
	Radius       float32
	LastChange   time.Time
	currentPhase component.Phase
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius}
}

// PhaseColor — цвет фазы.
func PhaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.ActivePhase:
		return config.BonfireColor
	case component.VictoryPhase:
		return config.VictoryColor
	case component.DefeatPhase:
		return config.DefeatColor
	}
	return config.AutoOffColor
}

// delayText — оставшаяся задержка в секундах.
func delayText(ticks int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)/config.TicksPerSecond)
}

func (i *PhaseIndicator) Draw(screen *ebiten.Image, phase component.Phase, waveDelay int) {
	if phase != i.currentPhase {
		i.currentPhase = phase
		i.LastChange = time.Now()
	}
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)

	if phase == component.WaveDelayPhase && waveDelay > 0 {
		DrawLabel(screen, "NEXT WAVE "+delayText(waveDelay), float64(i.X-i.Radius-8), float64(i.Y)-8, 16, config.TextLightColor, text.AlignEnd)
	}
}
