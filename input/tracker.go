package input

import "time"

// Tracker remembers when each held action was last pressed
// Terminals send no release event, so a key stays held for window after its last press or auto-repeat
type Tracker struct {
	window time.Duration
	last   map[Action]time.Time
}

// NewTracker creates a tracker with the given hold window
func NewTracker(window time.Duration) *Tracker {
	return &Tracker{window: window, last: make(map[Action]time.Time)}
}

// Press records the action as pressed at t
func (t *Tracker) Press(a Action, at time.Time) {
	t.last[a] = at
}

// Held reports whether a was pressed within the hold window before now
func (t *Tracker) Held(a Action, now time.Time) bool {
	at, ok := t.last[a]
	if !ok {
		return false
	}
	d := now.Sub(at)
	return d >= 0 && d <= t.window
}

// Release forgets every action
func (t *Tracker) Release() {
	clear(t.last)
}
