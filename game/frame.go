package game

// Frame is what every system sees during one scheduler tick.
type Frame struct {
	// Number counts frames from 1 since the scheduler was created.
	Number int64
	// DeltaTime is the simulated time this frame covers, in seconds.
	DeltaTime float64
	// Elapsed is the simulated time up to and including this frame.
	Elapsed  float64
	Commands *Commands
	Session  *Session
}
