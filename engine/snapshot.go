package engine

import (
	"time"

	"github.com/samber/lo"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/ghost"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

// VehicleView is the read-only per-vehicle state handed to renderer and audio
type VehicleView struct {
	Player       int
	Pos          vmath.Vec2
	Heading      float64
	Speed        float64
	SpeedRatio   float64
	TiresOnTrack float64
	Boosted      bool
	Laps         int
	LapTime      time.Duration
	BestLap      time.Duration
}

// Snapshot is a copy of race state at the last tick
type Snapshot struct {
	Time  time.Time
	Track *track.Track

	Vehicles []VehicleView
	Leader   int

	Ghost        ghost.LapSample
	GhostVisible bool
	TrackBest    time.Duration // Zero when no best lap exists

	Countdown int  // Whole steps left, 0 outside the countdown
	Started   bool // Gate released
	Laps      int  // Lap target
	Winner    int  // NoWinner until set
	RaceTime  time.Duration
	Paused    bool // Set by the owner of the clock
}

// Snapshot copies the state the presentation layer needs
func (r *Race) Snapshot() Snapshot {
	s := Snapshot{
		Time:         r.now,
		Track:        r.track,
		Leader:       r.Leader(),
		Ghost:        r.ghostPose,
		GhostVisible: r.ghostOn,
		Countdown:    r.countdown.Remaining(r.now),
		Started:      r.countdown.Released(),
		Laps:         r.cfg.Laps,
		Winner:       r.winner,
	}

	s.Vehicles = lo.Map(r.vehicles, func(v *component.Vehicle, _ int) VehicleView {
		return VehicleView{
			Player:       v.Player,
			Pos:          v.Pos,
			Heading:      v.Heading,
			Speed:        v.Speed,
			SpeedRatio:   v.SpeedRatio(),
			TiresOnTrack: v.TiresOnTrack,
			Boosted:      v.Boosted(r.now),
			Laps:         v.Lap.Laps,
			LapTime:      v.Lap.CurrentLapTime,
			BestLap:      v.Lap.BestLapTime,
		}
	})

	if r.best != nil {
		s.TrackBest = time.Duration(r.best.TimeMs) * time.Millisecond
	}

	switch {
	case r.winner != NoWinner:
		s.RaceTime = r.finished.Sub(r.startedAt)
	case s.Started:
		s.RaceTime = r.now.Sub(r.startedAt)
	}
	return s
}
