package parameter

// Track generation
const (
	// TrackSegments is the number of raw control points around the loop
	TrackSegments = 28

	// TrackBaseRadius is the nominal loop radius in world units
	TrackBaseRadius = 380.0

	// TrackRadiusVariation is the maximum radial deviation from the base radius
	TrackRadiusVariation = 70.0

	// TrackWidth is the lane width in world units
	TrackWidth = 100.0

	// TrackProtectedHead and TrackProtectedTail are the counts of indices at the start and end of the loop
	// kept free of variation and feature offsets to form the start/finish chute
	TrackProtectedHead = 3
	TrackProtectedTail = 3

	// TrackFeatureStart is the first segment index perturbed by a feature preset
	TrackFeatureStart = 10

	// TrackFeatureCount is the number of feature presets; indices wrap modulo this value
	TrackFeatureCount = 10

	// TrackDistanceSamples is the number of curve samples for the on-track distance test
	// Precision/performance trade-off: each IsPointOnTrack call costs one distance per sample
	TrackDistanceSamples = 100
)

// Sine hash constants for deterministic per-index variation
const (
	TrackHashSeedFactor  = 12.9898
	TrackHashIndexFactor = 78.233
	TrackHashAmplitude   = 43758.5453
)
