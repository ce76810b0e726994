package engine

import "time"

// TimeProvider supplies the current time to the frame clock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the wall clock; time.Now carries a monotonic reading
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the production time source
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
