// @lixen: #focus{ghost[record]}
package ghost

import (
	"time"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/parameter"
)

// Recorder buffers sparse pose samples for the lap in progress
type Recorder struct {
	samples  []LapSample
	interval time.Duration
	lastAt   time.Time
}

// NewRecorder creates a recorder using the default sample interval
func NewRecorder() *Recorder {
	return &Recorder{
		samples:  make([]LapSample, 0, parameter.GhostInitialSamples),
		interval: parameter.GhostSampleInterval,
	}
}

// Record appends a sample unless the previous one is closer than the interval
// Returns true when a sample was stored
func (r *Recorder) Record(now, lapStart time.Time, pose component.Pose) bool {
	if len(r.samples) > 0 && now.Sub(r.lastAt) < r.interval {
		return false
	}
	r.samples = append(r.samples, LapSample{
		ElapsedMs: now.Sub(lapStart).Milliseconds(),
		X:         pose.Pos.X,
		Y:         pose.Pos.Y,
		Angle:     pose.Heading,
	})
	r.lastAt = now
	return true
}

// Complete closes the lap, returning a new best when lapTime beats current or none exists
// The buffer is cleared either way
func (r *Recorder) Complete(lapTime time.Duration, current *BestLap) (*BestLap, bool) {
	defer r.Reset()

	ms := lapTime.Milliseconds()
	if len(r.samples) == 0 || (current.Valid() && ms >= current.TimeMs) {
		return current, false
	}

	samples := make([]LapSample, len(r.samples))
	copy(samples, r.samples)
	return &BestLap{TimeMs: ms, Samples: samples}, true
}

// Reset drops the buffered samples, keeping capacity
func (r *Recorder) Reset() {
	r.samples = r.samples[:0]
	r.lastAt = time.Time{}
}

// Len returns the number of buffered samples
func (r *Recorder) Len() int {
	return len(r.samples)
}
