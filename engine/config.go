package engine

import (
	"github.com/samber/lo"

	"github.com/lixenwraith/vi-racer/parameter"
)

// Config is the race setup supplied at construction
type Config struct {
	Players int  // 1..4, clamped
	Seed    int  // Track seed
	Feature int  // Track feature preset, wrapped by the track
	Laps    int  // Lap target, at least 1
	Ghost   bool // Replay the stored best lap
}

// DefaultConfig returns a single player race on the default track
func DefaultConfig() Config {
	return Config{
		Players: 1,
		Seed:    42,
		Laps:    parameter.DefaultLaps,
		Ghost:   true,
	}
}

// Normalize clamps ranges, no other validation is performed
func (c Config) Normalize() Config {
	c.Players = lo.Clamp(c.Players, parameter.MinPlayers, parameter.MaxPlayers)
	c.Laps = max(c.Laps, 1)
	return c
}
