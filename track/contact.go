package track

import "github.com/lixenwraith/vi-racer/vmath"

// IsPointOnTrack reports whether (x, y) lies within half the track width of the curve
// Distance-field approximation against cached samples, not an exact signed distance;
// cost grows linearly with parameter.TrackDistanceSamples
func (tr *Track) IsPointOnTrack(x, y float64) bool {
	half := tr.Width / 2
	limit := half * half
	p := vmath.V2(x, y)
	for _, s := range tr.distSamples {
		if vmath.V2DistSq(p, s) < limit {
			return true
		}
	}
	return false
}

// TireContactRatio returns the fraction of the four body corners on track
// Corners are body-relative (±width/2, ±length/2) rotated by heading
func (tr *Track) TireContactRatio(pos vmath.Vec2, heading, width, length float64) float64 {
	hw, hl := width/2, length/2
	corners := [4]vmath.Vec2{
		{X: -hw, Y: -hl},
		{X: hw, Y: -hl},
		{X: -hw, Y: hl},
		{X: hw, Y: hl},
	}
	on := 0
	for _, c := range corners {
		p := vmath.V2Add(pos, vmath.V2Rotate(c, heading))
		if tr.IsPointOnTrack(p.X, p.Y) {
			on++
		}
	}
	return float64(on) / 4
}
