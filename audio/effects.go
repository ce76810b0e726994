package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/wormhole/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release tail within duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume applies a base-2 gain; -1 halves amplitude
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// ShutterSound is a short high click with a noise transient, played on snapshot
func ShutterSound(rate beep.SampleRate) beep.Streamer {
	tone := NewOscillator(parameter.ShutterFreq, parameter.ShutterDuration, WaveSine, rate)
	toneShaped := NewEnvelope(tone, parameter.ShutterDuration, parameter.ShutterAttack, parameter.ShutterRelease, rate)

	click := NewOscillator(0, parameter.ShutterAttack*4, WaveNoise, rate)
	clickShaped := NewEnvelope(click, parameter.ShutterAttack*4, 0, parameter.ShutterAttack*3, rate)

	mixed := beep.Mix(
		withVolume(toneShaped, -0.5),
		withVolume(clickShaped, -2),
	)
	return withVolume(mixed, parameter.ShutterVolume)
}

// AbsorbSound is a low pulse played when the sink swallows particles
// Pitch rises with the batch size, saturating at ten particles
func AbsorbSound(rate beep.SampleRate, n int) beep.Streamer {
	batch := float64(min(max(n, 1), 10))
	freq := parameter.AbsorbFreq * (1 + batch/10)

	osc := NewOscillator(freq, parameter.AbsorbDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.AbsorbDuration, parameter.AbsorbAttack, parameter.AbsorbRelease, rate)
	return withVolume(shaped, parameter.AbsorbVolume)
}
