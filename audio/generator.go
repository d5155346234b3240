package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

// EngineGenerator produces the continuous engine hum
// Target frequency and gain are written by the frame loop and read by the speaker goroutine
type EngineGenerator struct {
	sr     beep.SampleRate
	target atomic.Uint64 // math.Float64bits of target frequency
	gain   atomic.Uint64 // math.Float64bits of output gain

	// Speaker goroutine only
	freq  float64
	phase float64
}

// NewEngineGenerator creates an idling engine hum
func NewEngineGenerator(sr beep.SampleRate) *EngineGenerator {
	g := &EngineGenerator{sr: sr, freq: parameter.EngineIdleFreq}
	g.SetLevel(0)
	return g
}

// SetLevel maps a speed ratio to pitch and loudness, ratios above 1 (slipstream) push pitch further
func (g *EngineGenerator) SetLevel(speedRatio float64) {
	r := vmath.Clamp(speedRatio, 0, parameter.SlipstreamSpeedFactor)
	freq := vmath.Lerp(parameter.EngineIdleFreq, parameter.EngineTopFreq, r)
	gain := parameter.EngineVolume * (0.6 + 0.4*math.Min(r, 1))
	g.target.Store(math.Float64bits(freq))
	g.gain.Store(math.Float64bits(gain))
}

// Target returns the frequency the hum is gliding toward
func (g *EngineGenerator) Target() float64 {
	return math.Float64frombits(g.target.Load())
}

// Frequency returns the current oscillator frequency, speaker goroutine only
func (g *EngineGenerator) Frequency() float64 {
	return g.freq
}

func (g *EngineGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	target := g.Target()
	gain := math.Float64frombits(g.gain.Load())
	step := 2 * math.Pi / float64(g.sr)

	for i := range samples {
		g.freq += (target - g.freq) * parameter.EngineFreqGlide
		g.phase += step * g.freq
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		// Fundamental plus a rough second harmonic
		sample := gain * (math.Sin(g.phase) + parameter.EngineHarmonic*math.Sin(2*g.phase)) / (1 + parameter.EngineHarmonic)
		samples[i][0] = sample
		samples[i][1] = sample
	}
	return len(samples), true
}

func (g *EngineGenerator) Err() error {
	return nil
}

// envelope applies a linear attack and release to a streamer of known length
type envelope struct {
	streamer beep.Streamer
	total    int
	attack   int
	release  int
	pos      int
}

func newEnvelope(s beep.Streamer, total, attack, release int) *envelope {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Min(gain, math.Max(float64(left)/float64(e.release), 0))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
