// @lixen: #focus{audio[speaker,mixer,engine]}
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-racer/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker, the mixer and the engine hum
// All Play methods are no-ops until Initialize succeeds, audio is optional
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	engine      *EngineGenerator
	engineCtrl  *beep.Ctrl
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	engine := NewEngineGenerator(sampleRate)
	return &SoundManager{
		mixer:      &beep.Mixer{},
		engine:     engine,
		engineCtrl: &beep.Ctrl{Streamer: engine, Paused: true},
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.mixer.Add(sm.engineCtrl)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything; beep has no speaker teardown so the mixer is cleared
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.engineCtrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted silences cues and the engine hum
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	if muted {
		sm.setEngine(false)
	}
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

// Muted returns the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Engine exposes the hum generator
func (sm *SoundManager) Engine() *EngineGenerator {
	return sm.engine
}

// SetEngineLevel updates hum pitch from a speed ratio, lock-free
func (sm *SoundManager) SetEngineLevel(speedRatio float64) {
	sm.engine.SetLevel(speedRatio)
}

// StartEngine resumes the hum unless muted
func (sm *SoundManager) StartEngine() {
	if sm.muted.Load() {
		return
	}
	sm.setEngine(true)
}

// StopEngine pauses the hum
func (sm *SoundManager) StopEngine() {
	sm.setEngine(false)
}

// EngineRunning reports whether the hum is audible
func (sm *SoundManager) EngineRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return !sm.engineCtrl.Paused
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !sm.engineCtrl.Paused
}

func (sm *SoundManager) setEngine(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		sm.engineCtrl.Paused = !on
		return
	}
	speaker.Lock()
	sm.engineCtrl.Paused = !on
	speaker.Unlock()
}

// PlayCountdown plays one countdown step
func (sm *SoundManager) PlayCountdown(remaining int) {
	sm.play(CountdownCue(sampleRate))
}

// PlayGo plays the start tone
func (sm *SoundManager) PlayGo() {
	sm.play(GoCue(sampleRate))
}

// PlayLap plays the lap chime
func (sm *SoundManager) PlayLap(best bool) {
	sm.play(LapCue(sampleRate, best))
}

// PlayWin plays the winner arpeggio
func (sm *SoundManager) PlayWin() {
	sm.play(WinCue(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
