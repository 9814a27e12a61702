package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from the terminal and command-line flags.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the scheduler (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameResult is returned by the frame driver after each frame.
type FrameResult struct {
	Frame    uint64  // Frames completed, including this one
	DT       float64 // Delta time used for this frame, in logical units
	Entities int     // Live entities after the frame
}
