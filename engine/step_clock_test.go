package engine

import (
	"testing"
	"time"
)

func TestStepClockFixedCadence(t *testing.T) {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	step := time.Second / 60
	c := NewStepClock(tp, step, 5)

	if n := c.Steps(); n != 0 {
		t.Errorf("Expected priming call to return 0, got %d", n)
	}

	total := 0
	for i := 0; i < 60; i++ {
		tp.Advance(step)
		total += c.Steps()
	}
	if total != 60 {
		t.Errorf("Expected 60 steps over one second, got %d", total)
	}
}

func TestStepClockCarriesRemainder(t *testing.T) {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewStepClock(tp, 10*time.Millisecond, 5)
	c.Steps()

	// 30 Hz display: two steps per frame on average
	tests := []struct {
		advance time.Duration
		want    int
	}{
		{15 * time.Millisecond, 1},
		{15 * time.Millisecond, 2},
		{4 * time.Millisecond, 0},
		{6 * time.Millisecond, 1},
	}

	for i, tt := range tests {
		tp.Advance(tt.advance)
		if got := c.Steps(); got != tt.want {
			t.Errorf("Frame %d: expected %d steps, got %d", i, tt.want, got)
		}
	}
	if c.Pending() != 0 {
		t.Errorf("Expected no pending time, got %v", c.Pending())
	}
}

func TestStepClockCapsStall(t *testing.T) {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewStepClock(tp, 10*time.Millisecond, 3)
	c.Steps()

	tp.Advance(time.Second)
	if got := c.Steps(); got != 3 {
		t.Errorf("Expected capped 3 steps, got %d", got)
	}
	if c.Pending() != 0 {
		t.Errorf("Expected stall time dropped, got %v", c.Pending())
	}

	// Time moving backwards is ignored
	tp.Advance(-time.Second)
	if got := c.Steps(); got != 0 {
		t.Errorf("Expected 0 steps after clock regression, got %d", got)
	}
}

func TestStepClockReset(t *testing.T) {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewStepClock(tp, 10*time.Millisecond, 5)
	c.Steps()
	tp.Advance(25 * time.Millisecond)
	c.Steps()
	c.Reset()

	tp.Advance(time.Hour)
	if got := c.Steps(); got != 0 {
		t.Errorf("Expected reset clock to prime again, got %d", got)
	}
}

func TestStepClockDefaults(t *testing.T) {
	c := NewStepClock(NewMonotonicTimeProvider(), 0, 0)
	if c.step != time.Second/60 || c.maxSteps != 1 {
		t.Errorf("Expected defaults step=%v max=1, got %v and %d", time.Second/60, c.step, c.maxSteps)
	}
}
