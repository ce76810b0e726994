package parameter

// Camera placement and projection
const (
	// CameraStep is the distance moved per held frame of an arrow key
	CameraStep = 0.25

	// CameraStartX/Y/Z place the camera behind the emitters looking down -Z
	CameraStartX = 0.0
	CameraStartY = 2.0
	CameraStartZ = 40.0

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 135.0

	// CameraNear and CameraFar bound the depth range
	CameraNear = 0.1
	CameraFar  = 100.0
)
