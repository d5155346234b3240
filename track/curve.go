package track

import "github.com/lixenwraith/vi-racer/vmath"

// Each raw point i is the control point of a quadratic Bézier running from the
// midpoint (i-1, i) to the midpoint (i, i+1). Adjacent segments share endpoints
// and tangent directions, giving a C¹ loop without a spline library.
// The seam segment wraps to the last raw point so t=0 and t=1 coincide exactly.

// segment maps t to the Bézier of its segment and the local parameter u in [0, 1)
func (tr *Track) segment(t float64) (p0, p1, p2 vmath.Vec2, u float64) {
	raw := tr.raw()
	n := len(raw)

	s := vmath.Fract(t) * float64(n)
	i := int(s)
	if i >= n {
		i = n - 1
	}
	u = s - float64(i)

	p1 = raw[i]
	p0 = vmath.V2Mid(raw[(i-1+n)%n], p1)
	p2 = vmath.V2Mid(p1, raw[(i+1)%n])
	return p0, p1, p2, u
}

// PointAt returns the curve position at t; t is normalized modulo 1
func (tr *Track) PointAt(t float64) vmath.Vec2 {
	p0, p1, p2, u := tr.segment(t)
	a := (1 - u) * (1 - u)
	b := 2 * u * (1 - u)
	c := u * u
	return vmath.Vec2{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
	}
}

// Tangent returns the analytic derivative dB/du at t (not normalized)
func (tr *Track) Tangent(t float64) vmath.Vec2 {
	p0, p1, p2, u := tr.segment(t)
	return vmath.Vec2{
		X: 2*(1-u)*(p1.X-p0.X) + 2*u*(p2.X-p1.X),
		Y: 2*(1-u)*(p1.Y-p0.Y) + 2*u*(p2.Y-p1.Y),
	}
}

// DirectionAt returns the travel heading at t in vehicle convention (0 = screen up)
func (tr *Track) DirectionAt(t float64) float64 {
	return vmath.VectorHeading(tr.Tangent(t))
}

// Samples returns n evenly spaced (in t) points around the loop
func (tr *Track) Samples(n int) []vmath.Vec2 {
	out := make([]vmath.Vec2, n)
	for i := range n {
		out[i] = tr.PointAt(float64(i) / float64(n))
	}
	return out
}

// Bounds returns the axis-aligned box of the track band
func (tr *Track) Bounds() (lo, hi vmath.Vec2) {
	lo, hi = tr.distSamples[0], tr.distSamples[0]
	for _, p := range tr.distSamples[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	half := tr.Width / 2
	return vmath.V2(lo.X-half, lo.Y-half), vmath.V2(hi.X+half, hi.Y+half)
}

// Length approximates the loop length from the cached distance samples
func (tr *Track) Length() float64 {
	n := len(tr.distSamples)
	total := 0.0
	for i, p := range tr.distSamples {
		total += vmath.V2Dist(p, tr.distSamples[(i+1)%n])
	}
	return total
}
