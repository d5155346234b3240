package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-racer/parameter"
)

// tone returns an enveloped sine note of fixed duration
func tone(sr beep.SampleRate, freq float64, d time.Duration, vol float64) beep.Streamer {
	n := sr.N(d)
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(n)
	}
	edge := sr.N(10 * time.Millisecond)
	return newVolume(newEnvelope(beep.Take(n, sine), n, edge, n/2), vol)
}

// newVolume wraps s with a linear volume; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// arpeggio plays freqs back to back
func arpeggio(sr beep.SampleRate, freqs []float64, note time.Duration, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(sr, f, note, vol)
	}
	return beep.Seq(notes...)
}

// CountdownCue is a short beep per countdown step
func CountdownCue(sr beep.SampleRate) beep.Streamer {
	return tone(sr, parameter.CountdownBeepFreq, parameter.CountdownBeepDuration, parameter.CueVolume)
}

// GoCue is the higher, longer start tone
func GoCue(sr beep.SampleRate) beep.Streamer {
	return tone(sr, parameter.CountdownGoFreq, parameter.CountdownGoDuration, parameter.CueVolume)
}

// LapCue chimes on a completed lap, a third note marks a new best
func LapCue(sr beep.SampleRate, best bool) beep.Streamer {
	freqs := parameter.LapChimeFreqs
	if best {
		freqs = parameter.BestLapChimeFreqs
	}
	note := parameter.LapChimeDuration / time.Duration(len(freqs))
	return arpeggio(sr, freqs, note, parameter.CueVolume)
}

// WinCue is the rising arpeggio for the race winner
func WinCue(sr beep.SampleRate) beep.Streamer {
	return arpeggio(sr, parameter.WinArpeggioFreqs, parameter.WinNoteDuration, parameter.CueVolume)
}
