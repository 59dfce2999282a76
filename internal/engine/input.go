package engine

import (
	"github.com/vovakirdan/minigames/internal/core"
)

// InputMode selects how directional keys are interpreted.
type InputMode uint8

const (
	// ModeDiscrete queues at most one directional step per tick.
	ModeDiscrete InputMode = iota
	// ModeHeld moves continuously while a directional key is held.
	ModeHeld
)

// Intents is everything the input mapper collected for one tick.
type Intents struct {
	Move    core.Intent     // coalesced direction (discrete mode)
	Held    core.InputFrame // directions currently held (held mode)
	Actions core.InputFrame // non-directional presses since the last tick
	Clicks  []int           // pointer clicks as cell indexes
}

// Has reports whether the intent is pending in any form.
func (in Intents) Has(i core.Intent) bool {
	return in.Move == i || in.Held.Has(i) || in.Actions.Has(i)
}

// InputMapper turns raw key and click events into per-tick intents.
type InputMapper struct {
	keymap         Keymap
	mode           InputMode
	rejectReversal bool

	held    map[string]core.Intent
	move    core.Intent
	travel  core.Intent
	actions core.InputFrame
	clicks  []int
}

// NewInputMapper creates a mapper for one session.
func NewInputMapper(km Keymap, mode InputMode, rejectReversal bool) *InputMapper {
	return &InputMapper{
		keymap:         km,
		mode:           mode,
		rejectReversal: rejectReversal,
		held:           make(map[string]core.Intent),
		actions:        core.NewInputFrame(),
	}
}

// Bound reports whether key is part of the keymap.
func (m *InputMapper) Bound(key string) bool {
	_, ok := m.keymap.Lookup(key)
	return ok
}

// OnKeyDown records a key press. Control intents (pause, restart) are not
// queued; they are returned so the caller can act on them immediately.
// Unmapped keys return IntentNone and change nothing.
func (m *InputMapper) OnKeyDown(key string) core.Intent {
	intent, ok := m.keymap.Lookup(key)
	if !ok {
		return core.IntentNone
	}
	if intent.IsControl() {
		return intent
	}

	if intent.IsDirection() {
		if m.mode == ModeHeld {
			m.held[key] = intent
			return core.IntentNone
		}
		if m.rejectReversal && intent.SameAxis(m.travel) {
			return core.IntentNone
		}
		m.move = intent
		return core.IntentNone
	}

	m.actions.Set(intent)
	return core.IntentNone
}

// OnKeyUp releases a held key.
func (m *InputMapper) OnKeyUp(key string) {
	delete(m.held, key)
}

// Click queues a pointer click on a cell.
func (m *InputMapper) Click(cell int) {
	if cell < 0 {
		return
	}
	m.clicks = append(m.clicks, cell)
}

// SetTravel records the current direction of travel used for reversal checks.
func (m *InputMapper) SetTravel(dir core.Intent) {
	m.travel = dir
}

// Travel returns the current direction of travel.
func (m *InputMapper) Travel() core.Intent {
	return m.travel
}

// Drain returns the intents for the coming tick and clears the queue.
// Held keys stay held.
func (m *InputMapper) Drain() Intents {
	in := Intents{
		Move:    m.move,
		Held:    core.NewInputFrame(),
		Actions: m.actions.Clone(),
		Clicks:  m.clicks,
	}
	for _, intent := range m.held {
		in.Held.Set(intent)
	}
	m.move = core.IntentNone
	m.actions.Clear()
	m.clicks = nil
	return in
}

// Reset drops queued and held input.
func (m *InputMapper) Reset() {
	clear(m.held)
	m.move = core.IntentNone
	m.travel = core.IntentNone
	m.actions.Clear()
	m.clicks = nil
}
