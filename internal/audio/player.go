// Package audio озвучивает игровые события простыми синтезированными сигналами.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"bonfire-defense/internal/component"
	"bonfire-defense/internal/config"
	"bonfire-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Player проигрывает сигналы на события диспетчера.
// Без Init работает как заглушка, поэтому его можно подписывать всегда.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	log         *zap.Logger
	initialized bool
	unsubscribe func()
}

func NewPlayer(cfg config.AudioSettings, log *zap.Logger) *Player {
	volume := cfg.Volume
	if !cfg.Enabled {
		volume = 0
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    log,
	}
}

// Init открывает аудиоустройство.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.volume == 0 {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Listen подписывает плеер на события d. Повторный вызов переподписывает.
func (p *Player) Listen(d *event.Dispatcher) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
	p.unsubscribe = d.SubscribeAll(p, cueEvents()...)
}

func (p *Player) OnEvent(e event.Event) {
	cue, ok := CueFor(e.Type)
	if !ok {
		return
	}
	if e.Type == event.MatchEnded {
		if data, ok := e.Data.(event.MatchEndedData); ok && data.Outcome == component.OutcomeVictory {
			cue.notes = []note{{523, 120 * ms}, {659, 120 * ms}, {784, 120 * ms}, {1047, 300 * ms}}
		}
	}
	p.Play(cue)
}

// Play добавляет сигнал в микшер.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	vol, silent := gain(p.volume * c.Gain)
	s := &effects.Volume{
		Streamer: sequence(c.notes, sampleRate),
		Base:     2,
		Volume:   vol,
		Silent:   silent,
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.log.Debug("audio cue", zap.String("cue", c.Name))
}

// Close отписывается от событий и закрывает устройство.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// gain переводит линейную громкость [0, 1] в показатель степени для effects.Volume с Base 2.
func gain(linear float64) (volume float64, silent bool) {
	if linear <= 0 {
		return 0, true
	}
	return math.Log2(math.Min(linear, 1)), false
}
