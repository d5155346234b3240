package physics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

const tick = time.Second / 60

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestStep_ThrottleApproachesButNeverExceedsMaxSpeed(t *testing.T) {
	v := component.NewVehicle(0, vmath.V2(0, 0), 0)
	v.Control = component.Control{Throttle: 1}

	now := epoch
	prev := v.Speed
	for i := range 600 {
		now = now.Add(tick)
		Step(v, tick, now)
		require.LessOrEqual(t, v.Speed, v.Tuning.MaxSpeed, "tick %d", i)
		require.GreaterOrEqual(t, v.Speed, prev, "speed dropped at tick %d", i)
		prev = v.Speed
	}
	assert.InDelta(t, v.Tuning.MaxSpeed, v.Speed, 1e-9)
}

func TestStep_FrictionDecaysMonotonicallyToZero(t *testing.T) {
	for _, ratio := range []float64{1, 0.5, 0} {
		v := component.NewVehicle(0, vmath.V2(0, 0), 0)
		v.Speed = parameter.MaxSpeedAsphalt
		v.TiresOnTrack = ratio

		prev := v.Speed
		for range 3000 {
			Step(v, tick, epoch)
			require.LessOrEqual(t, v.Speed, prev)
			require.GreaterOrEqual(t, v.Speed, 0.0)
			prev = v.Speed
		}
		assert.Equal(t, 0.0, v.Speed, "ratio %v", ratio)
	}
}

func TestStep_OffTrackBleedsFasterAndCapsLower(t *testing.T) {
	on := component.NewVehicle(0, vmath.V2(0, 0), 0)
	off := component.NewVehicle(1, vmath.V2(0, 0), 0)
	off.TiresOnTrack = 0
	on.Control = component.Control{Throttle: 1}
	off.Control = component.Control{Throttle: 1}

	for range 600 {
		Step(on, tick, epoch)
		Step(off, tick, epoch)
	}
	assert.Greater(t, on.Speed, off.Speed)
	assert.LessOrEqual(t, off.Speed, parameter.MaxSpeedAsphalt*(1-parameter.OffTrackPenalty))
}

func TestStep_ReverseIsHalfSpeedCapped(t *testing.T) {
	v := component.NewVehicle(0, vmath.V2(0, 0), 0)
	v.Control = component.Control{Brake: 1}
	for range 600 {
		Step(v, tick, epoch)
		require.GreaterOrEqual(t, v.Speed, v.Tuning.MinSpeed())
	}
	assert.InDelta(t, -parameter.MaxSpeedAsphalt*parameter.ReverseSpeedRatio, v.Speed, 1e-9)
	// Reversing moves backwards along the heading (heading 0 = up, so +Y)
	assert.Greater(t, v.Pos.Y, 0.0)
}

func TestStep_SteeringEasesAndRespectsDirection(t *testing.T) {
	v := component.NewVehicle(0, vmath.V2(0, 0), 0)
	v.Speed = 150
	v.Control = component.Control{Steer: 1, Throttle: 1}

	Step(v, tick, epoch)
	first := v.TurnRate
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, v.Tuning.MaxTurnRate, "turn rate must ease, not snap")

	for range 30 {
		Step(v, tick, epoch)
	}
	assert.Greater(t, v.TurnRate, first)
	assert.Greater(t, v.Heading, 0.0, "positive steer turns clockwise")

	// Same input while reversing turns the other way
	r := component.NewVehicle(1, vmath.V2(0, 0), 0)
	r.Speed = -100
	r.Control = component.Control{Steer: 1}
	for range 10 {
		Step(r, tick, epoch)
	}
	assert.Less(t, r.Heading, 0.0)
}

func TestStep_NoTurnAtStandstill(t *testing.T) {
	v := component.NewVehicle(0, vmath.V2(0, 0), 1.0)
	v.Control = component.Control{Steer: -1}
	for range 60 {
		Step(v, tick, epoch)
	}
	assert.Equal(t, 1.0, v.Heading)
	assert.Equal(t, vmath.V2(0, 0), v.Pos)
}

func TestStep_SteerAuthorityDropsWithSpeedAndTraction(t *testing.T) {
	rate := func(speed, ratio float64) float64 {
		v := component.NewVehicle(0, vmath.V2(0, 0), 0)
		v.Speed = speed
		v.TiresOnTrack = ratio
		v.Control = component.Control{Steer: 1}
		for range 120 {
			v.Speed = speed
			Step(v, tick, epoch)
		}
		return v.TurnRate
	}
	assert.Greater(t, rate(100, 1), rate(300, 1))
	assert.Greater(t, rate(100, 1), rate(100, 0))
}

func TestStep_UpdatesCurrentLapTime(t *testing.T) {
	v := component.NewVehicle(0, vmath.V2(0, 0), 0)
	v.Lap.LapStart = epoch
	Step(v, tick, epoch.Add(1500*time.Millisecond))
	assert.Equal(t, 1500*time.Millisecond, v.Lap.CurrentLapTime)
}

// Full throttle from the start line of seed 42 / feature 0
func TestStep_ThrottleFromStartLine(t *testing.T) {
	tr := track.Generate(42, 0)
	start := tr.PointAt(0)
	dir := tr.DirectionAt(0)
	v := component.NewVehicle(0, start, dir)
	v.Control = component.Control{Throttle: 1}

	fwd := vmath.HeadingVector(dir)
	now := epoch
	prevSpeed, prevProgress := 0.0, 0.0
	for i := range 60 {
		now = now.Add(tick)
		v.TiresOnTrack = tr.TireContactRatio(v.Pos, v.Heading, v.Tuning.BodyWidth, v.Tuning.BodyLength)
		Step(v, tick, now)

		require.Equal(t, 1.0, v.TiresOnTrack, "left the chute at tick %d", i)
		require.Greater(t, v.Speed, prevSpeed, "tick %d", i)
		require.LessOrEqual(t, v.Speed, parameter.MaxSpeedAsphalt)

		progress := vmath.V2Dot(vmath.V2Sub(v.Pos, start), fwd)
		require.Greater(t, progress, prevProgress, "tick %d", i)
		prevSpeed, prevProgress = v.Speed, progress
	}
	assert.InDelta(t, 0, vmath.AngleDiff(dir, v.Heading), 1e-12)
	assert.False(t, math.IsNaN(v.Pos.X))
}
