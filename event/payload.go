package event

import "time"

// CountdownPayload carries the remaining countdown steps
type CountdownPayload struct {
	Remaining int `toml:"remaining"` // Steps left before the start, 1 on the last tick
}

// LapPayload contains a completed lap
type LapPayload struct {
	Lap      int           `toml:"lap"`
	Time     time.Duration `toml:"time"`
	Best     bool          `toml:"best"` // Player's personal best
	TrackID  string        `toml:"track_id"`
	Samples  int           `toml:"samples"` // Ghost samples recorded for the lap
	LapsLeft int           `toml:"laps_left"`
}

// WinPayload contains the race result
type WinPayload struct {
	Winner   int           `toml:"winner"`
	RaceTime time.Duration `toml:"race_time"`
}

// ErrorPayload wraps a non-fatal failure surfaced to the frame loop
type ErrorPayload struct {
	Err error `toml:"-"`
}
