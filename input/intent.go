package input

// IntentType discriminates system-level actions not bound to a player
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit            // Ctrl+Q, Ctrl+C, Esc
	IntentPause           // p
	IntentToggleMute      // m
	IntentRestart         // r, new race on the same track
	IntentResize          // Terminal resize event
)

// Action is a per-player driving input
type Action uint8

const (
	ActionNone Action = iota
	ActionSteerLeft
	ActionSteerRight
	ActionThrottle
	ActionBrake

	actionCount
)

// opposite returns the action a press of a cancels, terminals never report key release
func (a Action) opposite() Action {
	switch a {
	case ActionSteerLeft:
		return ActionSteerRight
	case ActionSteerRight:
		return ActionSteerLeft
	case ActionThrottle:
		return ActionBrake
	case ActionBrake:
		return ActionThrottle
	default:
		return ActionNone
	}
}
