package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes a key as either a player action or a system intent
type KeyEntry struct {
	Player int
	Action Action
	Intent IntentType
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, lower case; upper case is folded before lookup
	Runes map[rune]KeyEntry
}

func player(p int, a Action) KeyEntry {
	return KeyEntry{Player: p, Action: a}
}

func system(i IntentType) KeyEntry {
	return KeyEntry{Intent: i}
}

// DefaultKeyTable returns the default layouts: P1 arrows, P2 WASD, P3 IJKL, P4 numpad 8456
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  system(IntentQuit),
			tcell.KeyCtrlC:  system(IntentQuit),
			tcell.KeyEscape: system(IntentQuit),

			tcell.KeyUp:    player(0, ActionThrottle),
			tcell.KeyDown:  player(0, ActionBrake),
			tcell.KeyLeft:  player(0, ActionSteerLeft),
			tcell.KeyRight: player(0, ActionSteerRight),
		},

		Runes: map[rune]KeyEntry{
			'p': system(IntentPause),
			'm': system(IntentToggleMute),
			'r': system(IntentRestart),

			'w': player(1, ActionThrottle),
			's': player(1, ActionBrake),
			'a': player(1, ActionSteerLeft),
			'd': player(1, ActionSteerRight),

			'i': player(2, ActionThrottle),
			'k': player(2, ActionBrake),
			'j': player(2, ActionSteerLeft),
			'l': player(2, ActionSteerRight),

			'8': player(3, ActionThrottle),
			'5': player(3, ActionBrake),
			'4': player(3, ActionSteerLeft),
			'6': player(3, ActionSteerRight),
		},
	}
}
