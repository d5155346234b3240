// @lixen: #focus{ghost[playback,interpolation]}
package ghost

import (
	"time"

	"github.com/lixenwraith/vi-racer/vmath"
)

// Player replays a best lap in a loop from a start time
// Not thread-safe, driven by the race tick
type Player struct {
	best    *BestLap
	start   time.Time
	started bool

	// Forward scan state, rewound only when sample time decreases
	cursor int
	lastMs int64
}

// NewPlayer wraps a best lap, nil or invalid records yield a player that never reports a pose
func NewPlayer(best *BestLap) *Player {
	return &Player{best: best}
}

// Start anchors loop time at now and rewinds the cursor
func (p *Player) Start(now time.Time) {
	p.start = now
	p.started = true
	p.cursor = 0
	p.lastMs = 0
}

// Best returns the lap being replayed
func (p *Player) Best() *BestLap {
	return p.best
}

// Active reports whether PoseAt can produce a pose
func (p *Player) Active() bool {
	return p.started && p.best.Valid()
}

// PoseAt returns the ghost pose at now, looping every best lap time
func (p *Player) PoseAt(now time.Time) (LapSample, bool) {
	if !p.Active() {
		return LapSample{}, false
	}
	elapsed := now.Sub(p.start).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}
	return p.SampleAt(elapsed % p.best.TimeMs), true
}

// SampleAt interpolates the pose at ms into the lap
// Exact timestamps and degenerate brackets return the stored sample verbatim
// Past the last sample the last sample is held
func (p *Player) SampleAt(ms int64) LapSample {
	s := p.best.Samples
	if len(s) == 1 {
		return s[0]
	}

	if ms < p.lastMs {
		p.cursor = 0
	}
	p.lastMs = ms

	for p.cursor+1 < len(s) && s[p.cursor+1].ElapsedMs <= ms {
		p.cursor++
	}
	a := s[p.cursor]
	if p.cursor == len(s)-1 || ms <= a.ElapsedMs {
		return a
	}

	b := s[p.cursor+1]
	span := b.ElapsedMs - a.ElapsedMs
	if span == 0 {
		return a
	}
	u := float64(ms-a.ElapsedMs) / float64(span)
	return LapSample{
		ElapsedMs: ms,
		X:         vmath.Lerp(a.X, b.X, u),
		Y:         vmath.Lerp(a.Y, b.Y, u),
		Angle:     vmath.LerpAngle(a.Angle, b.Angle, u),
	}
}
