package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/wormhole/parameter"
)

// newTestEngine mixes without a speaker
func newTestEngine(now *time.Time) *Engine {
	e := NewEngine()
	e.enabled = true
	e.now = func() time.Time { return *now }
	return e
}

func TestEngineMutedIgnoresCues(t *testing.T) {
	e := NewEngine()
	e.PlayShutter()
	e.PlayAbsorb(5)

	if e.Enabled() {
		t.Error("Expected engine without Init to be disabled")
	}
	if e.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer, got %d streamers", e.mixer.Len())
	}
}

func TestEngineShutter(t *testing.T) {
	now := time.Unix(0, 0)
	e := newTestEngine(&now)

	e.PlayShutter()
	e.PlayShutter()
	if e.mixer.Len() != 2 {
		t.Errorf("Expected 2 streamers, got %d", e.mixer.Len())
	}
}

func TestEngineAbsorbRateLimit(t *testing.T) {
	now := time.Unix(0, 0)
	e := newTestEngine(&now)

	e.PlayAbsorb(0)
	if e.mixer.Len() != 0 {
		t.Fatalf("Expected no cue for empty batch, got %d", e.mixer.Len())
	}

	e.PlayAbsorb(3)
	now = now.Add(parameter.AbsorbMinGap / 2)
	e.PlayAbsorb(3)
	if e.mixer.Len() != 1 {
		t.Errorf("Expected 1 streamer within the gap, got %d", e.mixer.Len())
	}

	now = now.Add(parameter.AbsorbMinGap)
	e.PlayAbsorb(3)
	if e.mixer.Len() != 2 {
		t.Errorf("Expected 2 streamers after the gap, got %d", e.mixer.Len())
	}
}

func TestEngineClose(t *testing.T) {
	now := time.Unix(0, 0)
	e := newTestEngine(&now)
	e.PlayShutter()

	e.Close()
	if e.Enabled() {
		t.Error("Expected engine disabled after Close")
	}
	if e.mixer.Len() != 0 {
		t.Errorf("Expected cleared mixer, got %d", e.mixer.Len())
	}
	e.PlayShutter()
	if e.mixer.Len() != 0 {
		t.Error("Expected cues ignored after Close")
	}
}
