package parameter

import "time"

// Loop Timing
const (
	// TargetFPS is the reference frame and physics rate
	TargetFPS = 60

	// StepInterval is the fixed logical timestep
	StepInterval = time.Second / TargetFPS

	// MaxStepsPerFrame caps catch-up after a stall
	MaxStepsPerFrame = 5

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// Headless defaults
const (
	HeadlessWidth  = 800
	HeadlessHeight = 600
	HeadlessFrames = 600
)
