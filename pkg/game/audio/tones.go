// Package audio synthesizes the game's sound effects with beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// tone is a single decaying note. It ends after its duration.
type tone struct {
	freq     float64
	wave     Wave
	volume   float64
	rate     beep.SampleRate
	phase    float64
	position int
	duration int
}

// NewTone creates a note of freq Hz that fades out linearly over d
func NewTone(freq float64, d time.Duration, wave Wave, volume float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		wave:     wave,
		volume:   volume,
		rate:     rate,
		duration: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}

		fade := 1 - float64(t.position)/float64(t.duration)
		val *= t.volume * fade
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// NewChime is the rising two-note blip played when food is eaten
func NewChime(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewTone(660, 60*time.Millisecond, WaveSine, 0.3, rate),
		NewTone(990, 90*time.Millisecond, WaveSine, 0.3, rate),
	)
}

// NewBuzz is the low buzz played when the snake crashes
func NewBuzz(rate beep.SampleRate) beep.Streamer {
	return beep.Take(rate.N(250*time.Millisecond),
		NewTone(110, 250*time.Millisecond, WaveSquare, 0.2, rate))
}
