// @lixen: #focus{gameplay[lap,checkpoint,finish]}
package timing

import (
	"time"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

// State is the per-vehicle lap gate state
type State uint8

const (
	AwaitingCheckpoint State = iota
	CheckpointCrossed
)

func (s State) String() string {
	switch s {
	case AwaitingCheckpoint:
		return "awaiting-checkpoint"
	case CheckpointCrossed:
		return "checkpoint-crossed"
	default:
		return "unknown"
	}
}

// Lap is the result of a counted finish-line pass
type Lap struct {
	Number int           // Laps completed including this one
	Time   time.Duration // Duration of this lap
	Best   bool          // Set when this lap improved the vehicle's best
}

// Gates holds the checkpoint and finish points shared by every vehicle on a track
type Gates struct {
	Checkpoint vmath.Vec2
	Finish     vmath.Vec2
	Radius     float64
	MinLap     time.Duration
}

// NewGates places the checkpoint at the track midpoint and the finish at t=0
func NewGates(t *track.Track) Gates {
	return Gates{
		Checkpoint: t.PointAt(0.5),
		Finish:     t.PointAt(0),
		Radius:     parameter.GateRadius,
		MinLap:     parameter.MinLapDuration,
	}
}

// Arm resets the lap epoch of a vehicle, used at race start
func (g Gates) Arm(v *component.Vehicle, now time.Time) {
	v.Lap.CrossedCheckpoint = false
	v.Lap.LapStart = now
	v.Lap.CurrentLapTime = 0
}

// State reports where the vehicle is in the checkpoint/finish sequence
func (g Gates) State(v *component.Vehicle) State {
	if v.Lap.CrossedCheckpoint {
		return CheckpointCrossed
	}
	return AwaitingCheckpoint
}

// Update evaluates both gates for one vehicle and reports a counted lap
// A lap counts once per pass: checkpoint first, finish not already flagged, elapsed above MinLap
func (g Gates) Update(v *component.Vehicle, now time.Time) (Lap, bool) {
	lap := &v.Lap
	r2 := g.Radius * g.Radius

	if !lap.CrossedCheckpoint && vmath.V2DistSq(v.Pos, g.Checkpoint) <= r2 {
		lap.CrossedCheckpoint = true
	}

	finishDistSq := vmath.V2DistSq(v.Pos, g.Finish)
	if finishDistSq > r2 {
		rearm := g.Radius * parameter.GateRearmFactor
		if finishDistSq > rearm*rearm {
			lap.CrossedFinishLine = false
		}
		return Lap{}, false
	}

	if lap.CrossedFinishLine {
		return Lap{}, false
	}
	lap.CrossedFinishLine = true

	elapsed := now.Sub(lap.LapStart)
	if !lap.CrossedCheckpoint || elapsed <= g.MinLap {
		return Lap{}, false
	}

	lap.Laps++
	lap.CrossedCheckpoint = false
	lap.LapStart = now
	lap.CurrentLapTime = 0

	best := lap.BestLapTime == 0 || elapsed < lap.BestLapTime
	if best {
		lap.BestLapTime = elapsed
	}
	return Lap{Number: lap.Laps, Time: elapsed, Best: best}, true
}
