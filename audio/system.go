package audio

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/event"
)

// Player is the sound surface the audio system drives
type Player interface {
	PlayCountdown(remaining int)
	PlayGo()
	PlayLap(best bool)
	PlayWin()
	SetEngineLevel(speedRatio float64)
	StartEngine()
	StopEngine()
}

// System maps race events and per-frame speed to sound
type System struct {
	player Player
	log    *zap.Logger

	engineOn bool
}

// NewSystem creates an audio system over player
func NewSystem(player Player, log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	return &System{player: player, log: log.Named("audio")}
}

// HandleEvent plays the cue for a race event, unknown events are ignored
func (s *System) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventCountdownTick:
		if p, ok := ev.Payload.(*event.CountdownPayload); ok {
			s.player.PlayCountdown(p.Remaining)
		}
	case event.EventRaceStart:
		s.player.PlayGo()
		s.player.StartEngine()
		s.engineOn = true
	case event.EventLapCompleted:
		best := false
		if p, ok := ev.Payload.(*event.LapPayload); ok {
			best = p.Best
		}
		s.player.PlayLap(best)
	case event.EventRaceWon:
		s.player.PlayWin()
	default:
		return
	}
	s.log.Debug("cue", zap.Stringer("event", ev.Type), zap.Int("player", ev.Player))
}

// Update drives the engine hum from the fastest car in the snapshot
func (s *System) Update(snap engine.Snapshot) {
	if !s.engineOn {
		return
	}
	if snap.Paused {
		s.player.StopEngine()
		return
	}
	s.player.StartEngine()

	ratio := 0.0
	for _, v := range snap.Vehicles {
		ratio = max(ratio, v.SpeedRatio)
	}
	s.player.SetEngineLevel(ratio)
}

// Reset silences the engine hum until the next race start
func (s *System) Reset() {
	if s.engineOn {
		s.player.StopEngine()
	}
	s.engineOn = false
}
