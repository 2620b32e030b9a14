package audio

import (
	"time"

	"bonfire-defense/internal/event"
)

// Cue — короткий звуковой сигнал на игровое событие.
type Cue struct {
	Name  string
	Gain  float64 // множитель громкости относительно общей
	notes []note
}

const ms = time.Millisecond

var cues = map[event.EventType]Cue{
	event.BulletFired:     {Name: "shot", Gain: 0.25, notes: []note{{880, 25 * ms}}},
	event.ZombieKilled:    {Name: "kill", Gain: 0.6, notes: []note{{330, 40 * ms}, {220, 60 * ms}}},
	event.PickupDropped:   {Name: "drop", Gain: 0.5, notes: []note{{660, 50 * ms}, {0, 20 * ms}, {660, 50 * ms}}},
	event.WeaponCollected: {Name: "pickup", Gain: 0.7, notes: []note{{523, 60 * ms}, {659, 60 * ms}, {784, 90 * ms}}},
	event.WaveStarted:     {Name: "wave", Gain: 0.6, notes: []note{{392, 120 * ms}, {523, 180 * ms}}},
	event.WaveCleared:     {Name: "cleared", Gain: 0.6, notes: []note{{523, 90 * ms}, {784, 160 * ms}}},
	event.MatchEnded:      {Name: "ended", Gain: 0.8, notes: []note{{392, 150 * ms}, {330, 150 * ms}, {262, 300 * ms}}},
}

// CueFor возвращает сигнал для типа события.
func CueFor(t event.EventType) (Cue, bool) {
	c, ok := cues[t]
	return c, ok
}

// cueEvents — события, на которые подписывается плеер.
func cueEvents() []event.EventType {
	out := make([]event.EventType, 0, len(cues))
	for t := range cues {
		out = append(out, t)
	}
	return out
}

// Duration — общая длительность сигнала.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range c.notes {
		d += n.dur
	}
	return d
}
