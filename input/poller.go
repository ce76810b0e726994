package input

import (
	"time"

	"github.com/lixenwraith/wormhole/engine"
	"github.com/lixenwraith/wormhole/parameter"
)

// KeySource yields the key presses received since the previous call without blocking
type KeySource interface {
	Keys() []KeyPress
}

// Poller implements engine.InputSource over a KeySource
type Poller struct {
	src     KeySource
	tracker *Tracker
	time    engine.TimeProvider
}

// NewPoller creates a poller with the default hold window
func NewPoller(src KeySource, tp engine.TimeProvider) *Poller {
	return &Poller{
		src:     src,
		tracker: NewTracker(parameter.KeyHoldWindow),
		time:    tp,
	}
}

// Poll drains pending keys and reports the held state for this frame
// Speed increase wins over decrease, opposite camera keys cancel
func (p *Poller) Poll() engine.Input {
	now := p.time.Now()
	var in engine.Input

	for _, kp := range p.src.Keys() {
		switch a := Lookup(kp); {
		case a == ActionNone:
		case a == ActionQuit:
			in.Quit = true
		case a == ActionCapture:
			in.Capture = true
		default:
			p.tracker.Press(a, now)
		}
	}

	in.SpeedA = p.priority(ActionSpeedAUp, ActionSpeedADown, now)
	in.SpeedB = p.priority(ActionSpeedBUp, ActionSpeedBDown, now)
	in.SpeedAll = p.priority(ActionSpeedAllUp, ActionSpeedAllDown, now)
	in.Forward = p.held(ActionForward, now) - p.held(ActionBack, now)
	in.Strafe = p.held(ActionRight, now) - p.held(ActionLeft, now)
	return in
}

func (p *Poller) held(a Action, now time.Time) int {
	if p.tracker.Held(a, now) {
		return 1
	}
	return 0
}

func (p *Poller) priority(up, down Action, now time.Time) int {
	if p.held(up, now) == 1 {
		return 1
	}
	return -p.held(down, now)
}
