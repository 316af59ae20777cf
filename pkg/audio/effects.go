package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone is a fixed-length oscillator with a linear release to avoid clicks
type tone struct {
	freq     float64
	phase    float64
	wave     Wave
	rate     beep.SampleRate
	position int
	total    int
	release  int
}

// NewTone creates a tone of the given frequency and duration. The last
// quarter of the tone fades to silence.
func NewTone(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &tone{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		total:   total,
		release: total / 4,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(t.phase-0.5) - 1
		}

		if remaining := t.total - t.position; t.release > 0 && remaining < t.release {
			val *= float64(remaining) / float64(t.release)
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales s linearly; zero or less is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect names a game event with a sound
type Effect int

const (
	EffectFlip Effect = iota
	EffectMatch
	EffectMismatch
	EffectWin
)

// note is one step of an effect
type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

var effectNotes = map[Effect][]note{
	EffectFlip: {
		{freq: 880, dur: 50 * time.Millisecond, wave: WaveTriangle},
	},
	EffectMatch: {
		{freq: 660, dur: 90 * time.Millisecond, wave: WaveSine},
		{freq: 990, dur: 140 * time.Millisecond, wave: WaveSine},
	},
	EffectMismatch: {
		{freq: 180, dur: 160 * time.Millisecond, wave: WaveSquare},
	},
	EffectWin: {
		{freq: 523.25, dur: 120 * time.Millisecond, wave: WaveSine},
		{freq: 659.25, dur: 120 * time.Millisecond, wave: WaveSine},
		{freq: 783.99, dur: 120 * time.Millisecond, wave: WaveSine},
		{freq: 1046.5, dur: 300 * time.Millisecond, wave: WaveSine},
	},
}

var effectVolumes = map[Effect]float64{
	EffectFlip:     0.25,
	EffectMatch:    0.4,
	EffectMismatch: 0.2,
	EffectWin:      0.5,
}

// NewEffect builds the streamer for e
func NewEffect(e Effect, rate beep.SampleRate) beep.Streamer {
	notes := effectNotes[e]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, NewTone(n.freq, n.dur, n.wave, rate))
	}
	return withVolume(beep.Seq(parts...), effectVolumes[e])
}

// EffectDuration is the playing time of e
func EffectDuration(e Effect) time.Duration {
	var d time.Duration
	for _, n := range effectNotes[e] {
		d += n.dur
	}
	return d
}
