// @lixen: #focus{physics[dynamics,steering,friction]}
package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Step advances one vehicle by dt using its Control and TiresOnTrack
// Pure numeric update; friction is the only mechanism keeping cars on the band
func Step(v *component.Vehicle, dt time.Duration, now time.Time) {
	sec := dt.Seconds()
	in := v.Control
	tune := v.Tuning
	ratio := vmath.Clamp(v.TiresOnTrack, 0, 1)

	// Friction blends between surfaces by contact ratio, coefficients are per reference frame
	friction := vmath.Lerp(parameter.OffTrackFriction, parameter.OnTrackFriction, ratio)
	v.Speed *= math.Pow(friction, sec*parameter.ReferenceFrameRate)

	// Throttle accelerates toward the contact-limited cap, never past it
	speedCap := tune.MaxSpeed * (1 - parameter.OffTrackPenalty*(1-ratio))
	if in.Throttle > 0 && v.Speed < speedCap {
		v.Speed = math.Min(v.Speed+tune.Acceleration*in.Throttle*sec, speedCap)
	}

	// Brake doubles as reverse, capped at half max speed
	if minSpeed := tune.MinSpeed(); in.Brake > 0 && v.Speed > minSpeed {
		v.Speed = math.Max(v.Speed-tune.BrakeDecel*in.Brake*sec, minSpeed)
	}

	if in.Throttle == 0 && in.Brake == 0 && math.Abs(v.Speed) < parameter.StopSpeed {
		v.Speed = 0
	}

	steer(v, in.Steer, ratio, sec)

	v.Pos = vmath.V2Add(v.Pos, vmath.V2Scale(v.Forward(), v.Speed*sec))

	if !v.Lap.LapStart.IsZero() {
		v.Lap.CurrentLapTime = now.Sub(v.Lap.LapStart)
	}
}

// steer eases turn rate toward the input target and integrates heading
func steer(v *component.Vehicle, axis, ratio, sec float64) {
	speedRatio := math.Min(v.SpeedRatio(), 1)

	authority := 1 - parameter.HighSpeedSteerLoss*speedRatio
	traction := vmath.Lerp(parameter.OffTrackTraction, 1, ratio)
	target := vmath.Clamp(axis, -1, 1) * v.Tuning.MaxTurnRate * authority * traction

	// Exponential easing, frame-rate independent
	alpha := 1 - math.Exp(-sec/parameter.TurnSmoothing.Seconds())
	v.TurnRate += (target - v.TurnRate) * alpha

	// No rotation at standstill; reversing inverts the turn sense
	speedFactor := math.Min(speedRatio/parameter.TurnSpeedRatioFull, 1)
	v.Heading = vmath.WrapAngle(v.Heading + v.TurnRate*speedFactor*vmath.Sign(v.Speed)*sec)
}
