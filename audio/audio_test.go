package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/event"
	"github.com/lixenwraith/vi-racer/parameter"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func TestEngineGenerator_GlidesToTarget(t *testing.T) {
	g := NewEngineGenerator(sampleRate)
	assert.Equal(t, parameter.EngineIdleFreq, g.Frequency())

	g.SetLevel(1)
	assert.InDelta(t, parameter.EngineTopFreq, g.Target(), 1e-9)

	buf := make([][2]float64, 256)
	prev := g.Frequency()
	for range 200 {
		n, ok := g.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
		assert.GreaterOrEqual(t, g.Frequency(), prev)
		assert.LessOrEqual(t, peak(buf), parameter.EngineVolume+1e-12)
		prev = g.Frequency()
	}
	assert.InDelta(t, parameter.EngineTopFreq, g.Frequency(), 1e-6)

	// Slipstream ratios push pitch past the top, bounded by the boost ceiling
	g.SetLevel(5)
	assert.InDelta(t, parameter.EngineIdleFreq+(parameter.EngineTopFreq-parameter.EngineIdleFreq)*parameter.SlipstreamSpeedFactor, g.Target(), 1e-9)
	g.SetLevel(-1)
	assert.Equal(t, parameter.EngineIdleFreq, g.Target())
}

func TestTone_EnvelopeAndLength(t *testing.T) {
	d := 100 * time.Millisecond
	out := drain(tone(sampleRate, 440, d, 1))
	require.Len(t, out, sampleRate.N(d))

	assert.Zero(t, out[0][0], "attack starts silent")
	assert.LessOrEqual(t, peak(out), 1.0)
	assert.Greater(t, peak(out), 0.5)
	assert.Less(t, math.Abs(out[len(out)-1][0]), 0.01, "release ends near silence")
	assert.Equal(t, out[100][0], out[100][1], "mono")
}

func TestTone_ZeroVolumeSilent(t *testing.T) {
	out := drain(tone(sampleRate, 440, 50*time.Millisecond, 0))
	assert.Zero(t, peak(out))
}

func TestCueLengths(t *testing.T) {
	lapNote := parameter.LapChimeDuration / time.Duration(len(parameter.LapChimeFreqs))
	assert.Len(t, drain(LapCue(sampleRate, false)), len(parameter.LapChimeFreqs)*sampleRate.N(lapNote))

	bestNote := parameter.LapChimeDuration / time.Duration(len(parameter.BestLapChimeFreqs))
	assert.Len(t, drain(LapCue(sampleRate, true)), len(parameter.BestLapChimeFreqs)*sampleRate.N(bestNote))

	assert.Len(t, drain(WinCue(sampleRate)), len(parameter.WinArpeggioFreqs)*sampleRate.N(parameter.WinNoteDuration))
	assert.Len(t, drain(CountdownCue(sampleRate)), sampleRate.N(parameter.CountdownBeepDuration))
	assert.Len(t, drain(GoCue(sampleRate)), sampleRate.N(parameter.CountdownGoDuration))
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.PlayCountdown(3)
		sm.PlayGo()
		sm.PlayLap(true)
		sm.PlayWin()
		sm.SetEngineLevel(0.5)
		sm.StartEngine()
		sm.StopEngine()
		sm.Cleanup()
	})
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager()
	sm.StartEngine()
	assert.True(t, sm.EngineRunning())

	assert.True(t, sm.ToggleMute())
	assert.False(t, sm.EngineRunning(), "mute silences the hum")
	sm.StartEngine()
	assert.False(t, sm.EngineRunning())

	assert.False(t, sm.ToggleMute())
	sm.StartEngine()
	assert.True(t, sm.EngineRunning())
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail without audio devices, the game works without audio
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	assert.NoError(t, sm.Initialize(), "second initialization is a no-op")
	sm.Cleanup()
}

type call struct {
	name string
	arg  any
}

type fakePlayer struct {
	calls []call
	level float64
	on    bool
}

func (f *fakePlayer) PlayCountdown(remaining int) { f.calls = append(f.calls, call{"countdown", remaining}) }
func (f *fakePlayer) PlayGo()                     { f.calls = append(f.calls, call{"go", nil}) }
func (f *fakePlayer) PlayLap(best bool)           { f.calls = append(f.calls, call{"lap", best}) }
func (f *fakePlayer) PlayWin()                    { f.calls = append(f.calls, call{"win", nil}) }
func (f *fakePlayer) SetEngineLevel(r float64)    { f.level = r }
func (f *fakePlayer) StartEngine()                { f.on = true }
func (f *fakePlayer) StopEngine()                 { f.on = false }

func TestSystem_EventCues(t *testing.T) {
	fp := &fakePlayer{}
	s := NewSystem(fp, nil)

	s.HandleEvent(event.GameEvent{Type: event.EventCountdownTick, Payload: &event.CountdownPayload{Remaining: 2}})
	s.HandleEvent(event.GameEvent{Type: event.EventRaceStart})
	s.HandleEvent(event.GameEvent{Type: event.EventLapCompleted, Payload: &event.LapPayload{Best: true}})
	s.HandleEvent(event.GameEvent{Type: event.EventLapCompleted, Payload: &event.LapPayload{}})
	s.HandleEvent(event.GameEvent{Type: event.EventBestLap})
	s.HandleEvent(event.GameEvent{Type: event.EventRaceWon})

	assert.Equal(t, []call{
		{"countdown", 2},
		{"go", nil},
		{"lap", true},
		{"lap", false},
		{"win", nil},
	}, fp.calls)
	assert.True(t, fp.on)
}

func TestSystem_EngineFollowsFastestCar(t *testing.T) {
	fp := &fakePlayer{}
	s := NewSystem(fp, nil)
	snap := engine.Snapshot{Vehicles: []engine.VehicleView{{SpeedRatio: 0.2}, {SpeedRatio: 0.7}}}

	s.Update(snap)
	assert.Zero(t, fp.level, "silent before the start")

	s.HandleEvent(event.GameEvent{Type: event.EventRaceStart})
	s.Update(snap)
	assert.Equal(t, 0.7, fp.level)

	snap.Paused = true
	s.Update(snap)
	assert.False(t, fp.on)
}

func TestSystem_ResetSilencesUntilStart(t *testing.T) {
	fp := &fakePlayer{}
	s := NewSystem(fp, nil)
	snap := engine.Snapshot{Vehicles: []engine.VehicleView{{SpeedRatio: 0.5}}}

	s.HandleEvent(event.GameEvent{Type: event.EventRaceStart})
	s.Update(snap)
	require.True(t, fp.on)

	s.Reset()
	assert.False(t, fp.on)
	s.Update(snap)
	assert.False(t, fp.on, "engine stays off through the next countdown")
}
