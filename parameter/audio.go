package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
)

// Engine hum
const (
	EngineIdleFreq  = 55.0
	EngineTopFreq   = 210.0
	EngineVolume    = 0.12
	EngineHarmonic  = 0.35
	EngineFreqGlide = 0.002 // Per-sample easing toward target frequency
)

// Cues
const (
	CountdownBeepFreq     = 660.0
	CountdownGoFreq       = 1320.0
	CountdownBeepDuration = 120 * time.Millisecond
	CountdownGoDuration   = 300 * time.Millisecond

	LapChimeDuration = 250 * time.Millisecond
	WinNoteDuration  = 140 * time.Millisecond

	CueVolume = 0.25
)

// LapChimeFreqs is the two-note lap cue, BestLapChimeFreqs adds a third note for a new best
var (
	LapChimeFreqs     = []float64{880, 1175}
	BestLapChimeFreqs = []float64{880, 1175, 1568}
	WinArpeggioFreqs  = []float64{523, 659, 784, 1047}
)
