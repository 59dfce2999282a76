package engine

import (
	"maps"

	"github.com/vovakirdan/minigames/internal/core"
)

// Keymap maps raw key identifiers to intents. Key identifiers are the names
// the terminal host reports ("up", "a", " ", "enter"). A keymap is fixed for
// the life of a session.
type Keymap map[string]core.Intent

// Lookup returns the intent bound to key.
func (k Keymap) Lookup(key string) (core.Intent, bool) {
	i, ok := k[key]
	return i, ok && i != core.IntentNone
}

// With returns a copy of k extended by other; other wins on conflicts.
func (k Keymap) With(other Keymap) Keymap {
	out := make(Keymap, len(k)+len(other))
	maps.Copy(out, k)
	maps.Copy(out, other)
	return out
}

// ArrowKeys binds arrows and WASD to the four directions plus pause/restart.
func ArrowKeys() Keymap {
	return Keymap{
		"up":    core.IntentUp,
		"down":  core.IntentDown,
		"left":  core.IntentLeft,
		"right": core.IntentRight,
		"w":     core.IntentUp,
		"s":     core.IntentDown,
		"a":     core.IntentLeft,
		"d":     core.IntentRight,
	}.With(Controls())
}

// Controls binds the session keys shared by all games.
func Controls() Keymap {
	return Keymap{
		"p": core.IntentPause,
		"r": core.IntentRestart,
	}
}
