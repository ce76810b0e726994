package parameter

import "time"

const (
	// WindowTitle is shown at the left of the status line
	WindowTitle = "Simulation of a wormhole!"

	// StatusRows is the number of terminal rows reserved below the scene
	StatusRows = 1

	// StatusMessageTimeout is how long snapshot messages stay on the status line
	StatusMessageTimeout = 3 * time.Second

	// KeyHoldWindow is how long a key counts as held after its last press or repeat event
	// Terminals report no release, so auto-repeat keeps the key alive
	KeyHoldWindow = 120 * time.Millisecond
)

// Rendering
const (
	// PointSplatDepth is the view depth under which a point is drawn as 2x2 pixels
	PointSplatDepth = 6.0

	// SnapshotPrefix and SnapshotExt form snapshot file names
	SnapshotPrefix = "snapshot"
	SnapshotExt    = ".png"
)
