package parameter

import "time"

// Lap timing
const (
	// GateRadius is the tolerance around checkpoint and finish line points
	GateRadius = 60.0

	// GateRearmFactor multiplies GateRadius for the distance that clears the finish flag
	GateRearmFactor = 2.0

	// MinLapDuration guards against re-triggering at the line, a safety margin not a rule
	MinLapDuration = 5 * time.Second
)

// Ghost recording
const (
	// GhostSampleInterval is the minimum spacing between recorded lap samples
	GhostSampleInterval = 30 * time.Millisecond

	// GhostInitialSamples pre-sizes the recording buffer (~2 min at 30ms)
	GhostInitialSamples = 4096
)
