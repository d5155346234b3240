// @lixen: #focus{ghost[sample,record]}
package ghost

// LapSample is one recorded pose, ElapsedMs is measured from the lap start
type LapSample struct {
	ElapsedMs int64   `toml:"t"`
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Angle     float64 `toml:"angle"`
}

// BestLap is the persisted best lap of a track
type BestLap struct {
	TimeMs  int64       `toml:"time_ms"`
	Samples []LapSample `toml:"samples"`
}

// Valid reports whether the record can drive playback
func (b *BestLap) Valid() bool {
	return b != nil && b.TimeMs > 0 && len(b.Samples) > 0
}
