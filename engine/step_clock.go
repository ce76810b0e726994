package engine

import "time"

// StepClock converts measured frame time into a whole number of fixed simulation steps
// Leftover time is carried to the next frame; a stall longer than maxSteps is dropped
type StepClock struct {
	tp       TimeProvider
	step     time.Duration
	maxSteps int

	last    time.Time
	acc     time.Duration
	started bool
}

// NewStepClock creates a clock producing steps of length step
func NewStepClock(tp TimeProvider, step time.Duration, maxSteps int) *StepClock {
	if step <= 0 {
		step = time.Second / 60
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &StepClock{tp: tp, step: step, maxSteps: maxSteps}
}

// Steps returns the number of steps due since the previous call
// The first call only records the start time
func (c *StepClock) Steps() int {
	now := c.tp.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed > 0 {
		c.acc += elapsed
	}

	n := int(c.acc / c.step)
	if n > c.maxSteps {
		c.acc = 0
		return c.maxSteps
	}
	c.acc -= time.Duration(n) * c.step
	return n
}

// Reset forgets accumulated time, the next Steps call restarts measurement
func (c *StepClock) Reset() {
	c.started = false
	c.acc = 0
}

// Pending returns the carried time not yet consumed by a step
func (c *StepClock) Pending() time.Duration {
	return c.acc
}
