// @lixen: #focus{input[hold,controls]}
package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/parameter"
)

// Mapper turns key presses into held per-player controls
// Terminals report presses and auto-repeats only, so an action stays held until its window expires
// Not thread-safe, owned by the frame loop
type Mapper struct {
	table *KeyTable
	until [parameter.MaxPlayers][actionCount]time.Time

	hold    time.Duration
	initial time.Duration
}

// NewMapper creates a mapper over table, nil selects the default layouts
func NewMapper(table *KeyTable) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{
		table:   table,
		hold:    parameter.KeyHoldWindow,
		initial: parameter.KeyInitialHoldWindow,
	}
}

// HandleEvent processes a tcell key event
func (m *Mapper) HandleEvent(ev *tcell.EventKey, now time.Time) IntentType {
	return m.HandleKey(ev.Key(), ev.Rune(), now)
}

// HandleKey records a press and returns the system intent, if any
func (m *Mapper) HandleKey(key tcell.Key, r rune, now time.Time) IntentType {
	entry, ok := m.lookup(key, r)
	if !ok {
		return IntentNone
	}
	if entry.Intent != IntentNone {
		return entry.Intent
	}
	m.press(entry.Player, entry.Action, now)
	return IntentNone
}

func (m *Mapper) lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	if key != tcell.KeyRune {
		e, ok := m.table.SpecialKeys[key]
		return e, ok
	}
	e, ok := m.table.Runes[unicode.ToLower(r)]
	return e, ok
}

// press extends the hold window; a first press gets the longer window to bridge the repeat delay
func (m *Mapper) press(p int, a Action, now time.Time) {
	if p < 0 || p >= parameter.MaxPlayers || a == ActionNone {
		return
	}
	window := m.hold
	if !now.Before(m.until[p][a]) {
		window = m.initial
	}
	m.until[p][a] = now.Add(window)
	m.until[p][a.opposite()] = time.Time{}
}

// Held reports whether player p holds action a at now
func (m *Mapper) Held(p int, a Action, now time.Time) bool {
	if p < 0 || p >= parameter.MaxPlayers {
		return false
	}
	return now.Before(m.until[p][a])
}

// Controls returns one control per player at now
func (m *Mapper) Controls(players int, now time.Time) []component.Control {
	players = min(max(players, 0), parameter.MaxPlayers)
	out := make([]component.Control, players)
	for p := range out {
		c := &out[p]
		if m.Held(p, ActionSteerLeft, now) {
			c.Steer--
		}
		if m.Held(p, ActionSteerRight, now) {
			c.Steer++
		}
		if m.Held(p, ActionThrottle, now) {
			c.Throttle = 1
		}
		if m.Held(p, ActionBrake, now) {
			c.Brake = 1
		}
	}
	return out
}

// Reset releases every held action
func (m *Mapper) Reset() {
	m.until = [parameter.MaxPlayers][actionCount]time.Time{}
}
