package track

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Track is an immutable closed loop built from a (seed, feature) pair
// Safe for concurrent reads after Generate returns
type Track struct {
	Seed    int
	Feature int
	Width   float64

	// ControlPoints holds N raw points plus a closing copy of the first
	ControlPoints []vmath.Vec2

	// Cached curve samples for the distance-based on-track test
	distSamples []vmath.Vec2
}

// Generate builds the track for a seed and feature index
// Pure arithmetic: identical inputs always yield identical control points
func Generate(seed, feature int) *Track {
	n := parameter.TrackSegments
	feature = FeatureIndex(feature)

	raw := make([]vmath.Vec2, n)
	for i := range n {
		angle := float64(i) * vmath.TwoPi / float64(n)
		r := parameter.TrackBaseRadius + radiusVariation(seed, i, n)
		sin, cos := math.Sincos(angle)
		raw[i] = vmath.V2(cos*r, sin*r)
	}
	applyFeature(raw, features[feature])

	tr := &Track{
		Seed:          seed,
		Feature:       feature,
		Width:         parameter.TrackWidth,
		ControlPoints: append(raw, raw[0]),
	}
	tr.distSamples = tr.Samples(parameter.TrackDistanceSamples)
	return tr
}

// ID returns the stable key used for per-track persistence
func (tr *Track) ID() string {
	return fmt.Sprintf("seed-%d-feature-%d", tr.Seed, tr.Feature)
}

// Name returns the feature preset name
func (tr *Track) Name() string {
	return features[tr.Feature].Name
}

// raw returns the control points without the closing duplicate
func (tr *Track) raw() []vmath.Vec2 {
	return tr.ControlPoints[:len(tr.ControlPoints)-1]
}

// hash is a sine-based hash in [0, 1), reproducible from integer inputs without PRNG state
func hash(seed, i int) float64 {
	v := math.Sin(float64(seed)*parameter.TrackHashSeedFactor+float64(i)*parameter.TrackHashIndexFactor) * parameter.TrackHashAmplitude
	return vmath.Fract(v)
}

// radiusVariation returns the radial deviation for index i
// Each index blends its own hash with its neighbours to keep the outline smooth
func radiusVariation(seed, i, n int) float64 {
	if isProtected(i, n) {
		return 0
	}
	h := func(k int) float64 {
		return 2*hash(seed, (k+n)%n) - 1
	}
	return parameter.TrackRadiusVariation * (0.5*h(i) + 0.25*h(i-1) + 0.25*h(i+1))
}

// applyFeature offsets a run of points along their normals
// Normals are taken from the unperturbed loop so offsets do not compound
func applyFeature(raw []vmath.Vec2, f Feature) {
	n := len(raw)
	if len(f.Offsets) == 0 {
		return
	}
	normals := make([]vmath.Vec2, len(f.Offsets))
	for k := range f.Offsets {
		i := (parameter.TrackFeatureStart + k) % n
		tangent := vmath.V2Sub(raw[(i+1)%n], raw[(i-1+n)%n])
		normals[k] = vmath.V2Perp(vmath.V2Normalize(tangent))
	}
	for k, off := range f.Offsets {
		i := (parameter.TrackFeatureStart + k) % n
		if isProtected(i, n) {
			continue
		}
		raw[i] = vmath.V2Add(raw[i], vmath.V2Scale(normals[k], off))
	}
}
