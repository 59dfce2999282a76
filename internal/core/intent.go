package core

// Intent is a normalized player action, abstracted from the physical key or
// click that produced it.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentFire
	IntentJump
	IntentRotate
	IntentDrop
	IntentPause
	IntentRestart
	IntentPunch
	IntentKick
	IntentSpecial
	IntentPunch2
	IntentKick2
	IntentSpecial2
)

var intentNames = [...]string{
	IntentNone:     "None",
	IntentUp:       "Up",
	IntentDown:     "Down",
	IntentLeft:     "Left",
	IntentRight:    "Right",
	IntentFire:     "Fire",
	IntentJump:     "Jump",
	IntentRotate:   "Rotate",
	IntentDrop:     "Drop",
	IntentPause:    "Pause",
	IntentRestart:  "Restart",
	IntentPunch:    "Punch",
	IntentKick:     "Kick",
	IntentSpecial:  "Special",
	IntentPunch2:   "Punch2",
	IntentKick2:    "Kick2",
	IntentSpecial2: "Special2",
}

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return "Unknown"
	}
	return intentNames[i]
}

// IsDirection reports whether the intent is one of the four moves.
func (i Intent) IsDirection() bool {
	return i >= IntentUp && i <= IntentRight
}

// IsControl reports whether the intent steers the session rather than the
// simulation. Control intents never enter the per-tick queue.
func (i Intent) IsControl() bool {
	return i == IntentPause || i == IntentRestart
}

// Horizontal reports whether a direction lies on the x axis.
func (i Intent) Horizontal() bool {
	return i == IntentLeft || i == IntentRight
}

// SameAxis reports whether two directions share an axis.
func (i Intent) SameAxis(o Intent) bool {
	if !i.IsDirection() || !o.IsDirection() {
		return false
	}
	return i.Horizontal() == o.Horizontal()
}

// Delta returns the unit step of a direction in screen coordinates (y grows down).
func (i Intent) Delta() Vec {
	switch i {
	case IntentUp:
		return Vec{Y: -1}
	case IntentDown:
		return Vec{Y: 1}
	case IntentLeft:
		return Vec{X: -1}
	case IntentRight:
		return Vec{X: 1}
	}
	return Vec{}
}

// InputFrame is a set of intents observed during one tick.
type InputFrame struct {
	Intents map[Intent]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Intents: make(map[Intent]bool),
	}
}

// Set marks an intent as triggered for this frame. Setting it twice is a no-op.
func (f *InputFrame) Set(i Intent) {
	if f.Intents == nil {
		f.Intents = make(map[Intent]bool)
	}
	f.Intents[i] = true
}

// Unset removes an intent.
func (f *InputFrame) Unset(i Intent) {
	delete(f.Intents, i)
}

// Has returns true if the given intent was triggered this frame.
func (f InputFrame) Has(i Intent) bool {
	return f.Intents[i]
}

// Len returns the number of intents in the frame.
func (f InputFrame) Len() int {
	return len(f.Intents)
}

// Clear resets all intents for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Intents)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Intents {
		c.Intents[k] = v
	}
	return c
}
