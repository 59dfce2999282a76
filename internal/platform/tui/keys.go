package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ReleaseWindow is how long a key counts as held after its last press or
// auto-repeat. Terminals report presses only, so releases are synthesized.
const ReleaseWindow = 200 * time.Millisecond

// keyName converts a Bubble Tea key to the name used in game keymaps.
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyUp:
		return "up"
	case tea.KeyDown:
		return "down"
	case tea.KeyLeft:
		return "left"
	case tea.KeyRight:
		return "right"
	case tea.KeyEnter:
		return "enter"
	case tea.KeyEsc:
		return "esc"
	}
	return msg.String()
}

// digitCell maps the keys 1-9 to a cell index for click-driven games.
func digitCell(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

// heldKeys tracks when each held key was last seen.
type heldKeys map[string]time.Time

// Press marks key as held at now.
func (h heldKeys) Press(key string, now time.Time) {
	h[key] = now
}

// Expire forgets keys not seen within ReleaseWindow and returns them.
func (h heldKeys) Expire(now time.Time) []string {
	var released []string
	for key, seen := range h {
		if now.Sub(seen) >= ReleaseWindow {
			released = append(released, key)
			delete(h, key)
		}
	}
	return released
}
