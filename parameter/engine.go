package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the tick and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SessionDuration ends the race once elapsed wall time exceeds it
	SessionDuration = 90 * time.Second

	// EventQueueSize is the capacity of the input event channel
	EventQueueSize = 100
)
