package parameter

import "time"

// Vehicle tunables, speeds in world units per second
const (
	MaxSpeedAsphalt = 320.0
	Acceleration    = 240.0
	BrakeDecel      = 420.0

	// ReverseSpeedRatio caps reverse speed relative to max speed
	ReverseSpeedRatio = 0.5

	// OffTrackPenalty is the max-speed reduction when all four tires are off track
	OffTrackPenalty = 0.55

	// Per-frame friction multipliers at ReferenceFrameRate
	OnTrackFriction  = 0.992
	OffTrackFriction = 0.955

	// StopSpeed snaps residual speed to zero when coasting
	StopSpeed = 0.5

	// MaxTurnRate in radians per second at full steer
	MaxTurnRate = 3.2

	// HighSpeedSteerLoss is the fraction of steer authority lost at max speed
	HighSpeedSteerLoss = 0.45

	// OffTrackTraction is the steer authority left with all tires off track
	OffTrackTraction = 0.45

	// TurnSmoothing is the time constant of angular rate easing toward its target
	TurnSmoothing = 80 * time.Millisecond

	// TurnSpeedRatioFull is the speed ratio at which heading integration reaches full authority
	TurnSpeedRatioFull = 0.2

	// Body dimensions, collision radius derives from these
	VehicleWidth  = 18.0
	VehicleLength = 32.0
)

// Collision response
const (
	CollisionRestitution = 0.5
	CollisionDamping     = 0.85
)

// Slipstream
const (
	SlipstreamRange = 140.0

	// SlipstreamConeHalfAngle in radians (~20°)
	SlipstreamConeHalfAngle = 0.35

	// SlipstreamMinLeaderSpeed is the leader speed below which no wake is produced
	SlipstreamMinLeaderSpeed = 40.0

	SlipstreamDuration = 1500 * time.Millisecond
	SlipstreamAccel    = 90.0

	// SlipstreamSpeedFactor is the boosted ceiling relative to max speed
	SlipstreamSpeedFactor = 1.15
)
