package parameter

import "time"

// World to cell projection
const (
	// CellWorldWidth is world units per terminal column
	CellWorldWidth = 8.0

	// CellWorldHeight is world units per terminal row, terminal cells are ~2:1
	CellWorldHeight = 16.0

	// TrackRasterStep is the world grid step of the precomputed track mask
	TrackRasterStep = 4.0

	// TrackRasterMargin pads the raster beyond the track bounds
	TrackRasterMargin = 200.0

	// TrackOutlineSamples is the number of curve points used to draw the center line
	TrackOutlineSamples = 400
)

// Input
const (
	// KeyHoldWindow keeps a key pressed after its last terminal event; terminals report no key release
	KeyHoldWindow = 180 * time.Millisecond

	// KeyInitialHoldWindow covers the terminal auto-repeat delay after the first press of a key
	KeyInitialHoldWindow = 450 * time.Millisecond
)
