// Package audio plays short synthesized cues through the system speaker
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/wormhole/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Engine mixes cue streamers into one speaker stream
// A muted engine accepts calls and plays nothing
type Engine struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	live    bool // speaker running

	lastAbsorb time.Time
	now        func() time.Time
}

// NewEngine returns an engine that stays silent until Init succeeds
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Init starts the speaker; failure leaves the engine silent
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.live {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(e.mixer)
	e.live = true
	e.enabled = true
	log.Printf("audio: speaker at %d Hz", parameter.AudioSampleRate)
	return nil
}

// Enabled reports whether cues are being mixed
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// PlayShutter plays the snapshot cue
func (e *Engine) PlayShutter() {
	e.add(ShutterSound(sampleRate))
}

// PlayAbsorb plays the sink cue for n transferred particles
// Cues closer together than AbsorbMinGap are dropped
func (e *Engine) PlayAbsorb(n int) {
	if n <= 0 {
		return
	}
	e.mu.Lock()
	if !e.enabled {
		e.mu.Unlock()
		return
	}
	now := e.now()
	if !e.lastAbsorb.IsZero() && now.Sub(e.lastAbsorb) < parameter.AbsorbMinGap {
		e.mu.Unlock()
		return
	}
	e.lastAbsorb = now
	e.mu.Unlock()

	e.add(AbsorbSound(sampleRate, n))
}

func (e *Engine) add(s beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.enabled {
		return
	}
	if e.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	e.mixer.Add(s)
}

// Close silences the engine and releases the speaker
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.live {
		speaker.Clear()
		speaker.Close()
		e.live = false
	}
	if e.mixer != nil {
		e.mixer.Clear()
	}
	e.enabled = false
}
