package engine

// Input is the user intent collected for one frame
// Direction fields are -1, 0 or +1
type Input struct {
	SpeedA   int
	SpeedB   int
	SpeedAll int

	// Forward is +1 toward the view direction, Strafe is +1 to the right
	Forward int
	Strafe  int

	Capture bool
	Quit    bool
}
