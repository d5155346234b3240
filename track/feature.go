package track

import "github.com/lixenwraith/vi-racer/parameter"

// Feature is a named corner preset: lateral offsets along the local normal,
// applied to consecutive control points from parameter.TrackFeatureStart
type Feature struct {
	Name    string
	Offsets []float64
}

// features is indexed by feature index; offsets are opaque tuned presets
var features = [parameter.TrackFeatureCount]Feature{
	{Name: "chicane", Offsets: []float64{0, 32, -32, 0}},
	{Name: "hairpin", Offsets: []float64{-15, -32, -40, -32, -15}},
	{Name: "esses", Offsets: []float64{20, -20, 20, -20}},
	{Name: "carousel", Offsets: []float64{15, 30, 38, 38, 30, 15}},
	{Name: "slalom", Offsets: []float64{25, -25, 25, -25, 25, -25}},
	{Name: "switchback", Offsets: []float64{35, 10, -35}},
	{Name: "sweeper", Offsets: []float64{10, 20, 28, 32, 28, 20, 10}},
	{Name: "bus-stop", Offsets: []float64{0, -30, -30, 0}},
	{Name: "dogleg", Offsets: []float64{0, 22, 36}},
	{Name: "flat-out"},
}

// FeatureIndex wraps any integer into the valid preset range
func FeatureIndex(idx int) int {
	idx %= parameter.TrackFeatureCount
	if idx < 0 {
		idx += parameter.TrackFeatureCount
	}
	return idx
}

// FeatureAt returns the preset for an index, wrapped into range
func FeatureAt(idx int) Feature {
	return features[FeatureIndex(idx)]
}

// isProtected reports whether index i belongs to the start/finish chute
func isProtected(i, n int) bool {
	return i < parameter.TrackProtectedHead || i >= n-parameter.TrackProtectedTail
}
