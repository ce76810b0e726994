package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond
)

// Shutter Sound
const (
	ShutterFreq     = 1760.0
	ShutterDuration = 60 * time.Millisecond
	ShutterAttack   = 2 * time.Millisecond
	ShutterRelease  = 40 * time.Millisecond
	ShutterVolume   = -1.0
)

// Absorb Sound
const (
	AbsorbFreq     = 110.0
	AbsorbDuration = 90 * time.Millisecond
	AbsorbAttack   = 10 * time.Millisecond
	AbsorbRelease  = 60 * time.Millisecond
	AbsorbVolume   = -2.0

	// AbsorbMinGap rate-limits absorb cues
	AbsorbMinGap = 250 * time.Millisecond
)
