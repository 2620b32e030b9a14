package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// note — один тон сигнала: частота и длительность. Нулевая частота — пауза.
type note struct {
	freq float64
	dur  time.Duration
}

// tone генерирует затухающую синусоиду фиксированной длины.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func newTone(freq float64, dur time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, duration: rate.N(dur), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}
		// линейное затухание к концу, чтобы не было щелчка
		env := 1 - float64(t.position)/float64(t.duration)
		val := math.Sin(2*math.Pi*t.phase) * env
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// sequence склеивает ноты в один поток.
func sequence(notes []note, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq <= 0 {
			parts = append(parts, beep.Silence(rate.N(n.dur)))
			continue
		}
		parts = append(parts, newTone(n.freq, n.dur, rate))
	}
	return beep.Seq(parts...)
}
