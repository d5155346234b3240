// @lixen: #focus{physics[pose,tuning],gameplay[lap]}
package component

import (
	"time"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Pose is the kinematic state advanced each tick
type Pose struct {
	Pos      vmath.Vec2
	Heading  float64 // Radians, 0 = screen up
	Speed    float64 // Forward speed, negative when reversing
	TurnRate float64 // Smoothed angular rate in rad/s
}

// Tuning holds per-vehicle constants
type Tuning struct {
	MaxSpeed     float64
	Acceleration float64
	BrakeDecel   float64
	MaxTurnRate  float64
	BodyWidth    float64
	BodyLength   float64
}

// DefaultTuning returns the standard arcade car
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:     parameter.MaxSpeedAsphalt,
		Acceleration: parameter.Acceleration,
		BrakeDecel:   parameter.BrakeDecel,
		MaxTurnRate:  parameter.MaxTurnRate,
		BodyWidth:    parameter.VehicleWidth,
		BodyLength:   parameter.VehicleLength,
	}
}

// Radius is the collision circle radius derived from the body
func (t Tuning) Radius() float64 {
	return (t.BodyWidth + t.BodyLength) / 4
}

// MinSpeed is the reverse speed cap
func (t Tuning) MinSpeed() float64 {
	return -t.MaxSpeed * parameter.ReverseSpeedRatio
}

// Control is the per-tick input handed to dynamics verbatim
type Control struct {
	Steer    float64 // -1 left .. 1 right
	Throttle float64 // 0..1
	Brake    float64 // 0..1, also reverse
}

// LapState tracks checkpoint/finish gating and lap timing
type LapState struct {
	Laps              int
	CrossedCheckpoint bool
	CrossedFinishLine bool
	LapStart          time.Time
	CurrentLapTime    time.Duration
	BestLapTime       time.Duration // Zero until a lap completes
}

// Vehicle is one player's car, owned by the race and mutated only during its tick
type Vehicle struct {
	Player int

	Pose
	Tuning Tuning

	Control      Control
	TiresOnTrack float64 // Fraction of tire contact points inside the band

	Lap LapState

	// SlipstreamUntil is the boost expiry; boost is active while now is before it
	SlipstreamUntil time.Time
}

// NewVehicle places a car at pos facing heading with default tuning
func NewVehicle(player int, pos vmath.Vec2, heading float64) *Vehicle {
	return &Vehicle{
		Player:       player,
		Pose:         Pose{Pos: pos, Heading: heading},
		Tuning:       DefaultTuning(),
		TiresOnTrack: 1,
	}
}

// SpeedRatio returns |speed| relative to max speed, may exceed 1 while boosted
func (v *Vehicle) SpeedRatio() float64 {
	if v.Tuning.MaxSpeed == 0 {
		return 0
	}
	if v.Speed < 0 {
		return -v.Speed / v.Tuning.MaxSpeed
	}
	return v.Speed / v.Tuning.MaxSpeed
}

// Forward returns the unit heading vector
func (v *Vehicle) Forward() vmath.Vec2 {
	return vmath.HeadingVector(v.Heading)
}

// Boosted reports whether slipstream boost is active at now
func (v *Vehicle) Boosted(now time.Time) bool {
	return now.Before(v.SlipstreamUntil)
}
