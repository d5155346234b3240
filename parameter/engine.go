package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the tick and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps dt after stalls (pause, slow terminal) so physics never takes a giant step
	MaxTickDelta = 50 * time.Millisecond

	// ReferenceFrameRate is the rate per-frame coefficients (friction) are expressed at
	ReferenceFrameRate = 60.0
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Race setup
const (
	MinPlayers = 1
	MaxPlayers = 4

	DefaultLaps = 3
	MaxLaps     = 99

	// CountdownDuration gates input and dynamics before the start
	CountdownDuration = 3 * time.Second

	// CountdownStep is the interval between countdown tick events
	CountdownStep = time.Second

	// GridRowSpacing is the distance between staggered grid rows behind the line
	GridRowSpacing = 40.0

	// GridLaneOffset is the lateral offset of a grid slot from the track center line
	GridLaneOffset = 14.0
)
