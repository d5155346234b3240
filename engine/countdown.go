package engine

import (
	"time"

	"github.com/lixenwraith/vi-racer/parameter"
)

// Countdown is the timed start gate
// Steps fire at arm time and every step after it; the gate releases at duration
type Countdown struct {
	duration time.Duration
	step     time.Duration

	armedAt  time.Time
	armed    bool
	released bool
	fired    int // Steps already reported
}

// NewCountdown creates the standard race countdown
func NewCountdown() *Countdown {
	return &Countdown{
		duration: parameter.CountdownDuration,
		step:     parameter.CountdownStep,
	}
}

// Arm starts the countdown at now, re-arming resets it
func (c *Countdown) Arm(now time.Time) {
	c.armedAt = now
	c.armed = true
	c.released = false
	c.fired = 0
}

// Steps returns the number of ticks in a full countdown
func (c *Countdown) Steps() int {
	return int(c.duration / c.step)
}

// Update reports each step reached since the last call through onTick
// Remaining counts down to 1; returns true once the gate is released
func (c *Countdown) Update(now time.Time, onTick func(remaining int)) bool {
	if !c.armed {
		return false
	}
	if c.released {
		return true
	}

	elapsed := now.Sub(c.armedAt)
	steps := c.Steps()
	reached := min(int(elapsed/c.step)+1, steps)
	for ; c.fired < reached; c.fired++ {
		if onTick != nil {
			onTick(steps - c.fired)
		}
	}

	if elapsed >= c.duration {
		c.released = true
	}
	return c.released
}

// Active reports whether the gate is holding the race
func (c *Countdown) Active() bool {
	return c.armed && !c.released
}

// Released reports whether the gate has opened
func (c *Countdown) Released() bool {
	return c.released
}

// Remaining returns the whole steps left at now, 0 once released or before arming
func (c *Countdown) Remaining(now time.Time) int {
	if !c.Active() {
		return 0
	}
	left := c.duration - now.Sub(c.armedAt)
	if left <= 0 {
		return 0
	}
	return int((left + c.step - 1) / c.step)
}
