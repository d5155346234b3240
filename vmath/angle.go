package vmath

import "math"

const TwoPi = 2 * math.Pi

// Heading convention: 0 rad points screen-up (-Y), angles grow clockwise on screen
// Forward vector is therefore the unit vector at (heading - π/2)

// HeadingVector returns the unit forward vector for a heading
func HeadingVector(heading float64) Vec2 {
	sin, cos := math.Sincos(heading - math.Pi/2)
	return Vec2{cos, sin}
}

// VectorHeading returns the heading that faces along v, inverse of HeadingVector
func VectorHeading(v Vec2) float64 {
	return WrapAngle(math.Atan2(v.Y, v.X) + math.Pi/2)
}

// WrapAngle normalizes angle to (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a <= -math.Pi {
		a += TwoPi
	} else if a > math.Pi {
		a -= TwoPi
	}
	return a
}

// AngleDiff returns the signed shortest rotation from a to b in (-π, π]
func AngleDiff(a, b float64) float64 {
	return WrapAngle(b - a)
}

// LerpAngle interpolates along the shortest arc from a to b, result wrapped to (-π, π]
func LerpAngle(a, b, t float64) float64 {
	return WrapAngle(a + AngleDiff(a, b)*t)
}

// Deg converts radians to degrees
func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Rad converts degrees to radians
func Rad(deg float64) float64 {
	return deg * math.Pi / 180
}
