package vmath

import "math"

// Float helpers shared by track, physics and ghost playback

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates a→b by t without clamping
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Fract returns the fractional part in [0, 1), also for negative input
func Fract(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		f = 0
	}
	return f
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
