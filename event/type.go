package event

import "time"

// EventType represents the type of race event
type EventType int

const (
	// EventCountdownTick marks one step of the pre-race countdown
	// Trigger: Race countdown, once per step | Payload: *CountdownPayload
	EventCountdownTick EventType = iota + 1

	// EventRaceStart releases the start gate, lap epochs reset together
	// Trigger: Countdown completion | Payload: nil
	EventRaceStart

	// EventLapCompleted reports a counted finish-line pass
	// Trigger: Lap gates | Payload: *LapPayload
	EventLapCompleted

	// EventBestLap reports a new track best lap, ghost replaced
	// Trigger: Ghost recorder | Payload: *LapPayload
	EventBestLap

	// EventRaceWon reports the first vehicle to reach the lap target
	// Trigger: Race, once per race | Payload: *WinPayload
	EventRaceWon

	// EventGhostSaveFailed reports a best lap that could not be persisted
	// Trigger: Race on store error | Payload: *ErrorPayload
	EventGhostSaveFailed
)

var typeNames = map[EventType]string{
	EventCountdownTick:   "CountdownTick",
	EventRaceStart:       "RaceStart",
	EventLapCompleted:    "LapCompleted",
	EventBestLap:         "BestLap",
	EventRaceWon:         "RaceWon",
	EventGhostSaveFailed: "GhostSaveFailed",
}

// String returns the registered event name
func (et EventType) String() string {
	if name, ok := typeNames[et]; ok {
		return name
	}
	return "Unknown"
}

// ParseType returns the EventType for a registered name
func ParseType(name string) (EventType, bool) {
	for et, n := range typeNames {
		if n == name {
			return et, true
		}
	}
	return 0, false
}

// GameEvent represents a single race event with metadata
type GameEvent struct {
	Type    EventType
	Player  int // Originating player, -1 for race-wide events
	Payload any
	Time    time.Time // Simulation time of emission
}
