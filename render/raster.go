package render

import (
	"math"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Surface classifies a world point for drawing
type Surface uint8

const (
	SurfaceGrass Surface = iota
	SurfaceAsphalt
	SurfaceFinish
	SurfaceCheckpoint
)

// gateStripeHalf is the half thickness in world units of the drawn gate lines
const gateStripeHalf = 6.0

// TrackRaster is a precomputed on-track mask over the track bounds
// Built once per track, the per-frame lookup is O(1) instead of a distance scan
type TrackRaster struct {
	origin vmath.Vec2
	step   float64
	cols   int
	rows   int
	mask   []bool

	finish, finishDir         vmath.Vec2
	checkpoint, checkpointDir vmath.Vec2
}

// NewTrackRaster samples tr.IsPointOnTrack on a grid covering the track plus a margin
func NewTrackRaster(tr *track.Track) *TrackRaster {
	lo, hi := tr.Bounds()
	margin := vmath.V2(parameter.TrackRasterMargin, parameter.TrackRasterMargin)
	lo, hi = vmath.V2Sub(lo, margin), vmath.V2Add(hi, margin)

	step := parameter.TrackRasterStep
	r := &TrackRaster{
		origin:        lo,
		step:          step,
		cols:          int(math.Ceil((hi.X-lo.X)/step)) + 1,
		rows:          int(math.Ceil((hi.Y-lo.Y)/step)) + 1,
		finish:        tr.PointAt(0),
		finishDir:     vmath.HeadingVector(tr.DirectionAt(0)),
		checkpoint:    tr.PointAt(0.5),
		checkpointDir: vmath.HeadingVector(tr.DirectionAt(0.5)),
	}
	r.mask = make([]bool, r.cols*r.rows)
	for row := 0; row < r.rows; row++ {
		y := lo.Y + float64(row)*step
		for col := 0; col < r.cols; col++ {
			r.mask[row*r.cols+col] = tr.IsPointOnTrack(lo.X+float64(col)*step, y)
		}
	}
	return r
}

// OnTrack looks up the nearest grid node, points outside the raster are grass
func (r *TrackRaster) OnTrack(p vmath.Vec2) bool {
	col := int(math.Round((p.X - r.origin.X) / r.step))
	row := int(math.Round((p.Y - r.origin.Y) / r.step))
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return false
	}
	return r.mask[row*r.cols+col]
}

// Surface classifies p, gate stripes are only drawn on asphalt
func (r *TrackRaster) Surface(p vmath.Vec2) Surface {
	if !r.OnTrack(p) {
		return SurfaceGrass
	}
	if math.Abs(vmath.V2Dot(vmath.V2Sub(p, r.finish), r.finishDir)) <= gateStripeHalf &&
		vmath.V2Dist(p, r.finish) <= parameter.TrackWidth {
		return SurfaceFinish
	}
	if math.Abs(vmath.V2Dot(vmath.V2Sub(p, r.checkpoint), r.checkpointDir)) <= gateStripeHalf &&
		vmath.V2Dist(p, r.checkpoint) <= parameter.TrackWidth {
		return SurfaceCheckpoint
	}
	return SurfaceAsphalt
}

// Bounds returns the world rectangle covered by the raster
func (r *TrackRaster) Bounds() (lo, hi vmath.Vec2) {
	return r.origin, vmath.V2Add(r.origin, vmath.V2(float64(r.cols-1)*r.step, float64(r.rows-1)*r.step))
}
