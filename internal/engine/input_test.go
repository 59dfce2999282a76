package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/minigames/internal/core"
)

func TestInputDiscreteCoalesces(t *testing.T) {
	m := NewInputMapper(ArrowKeys(), ModeDiscrete, false)
	m.OnKeyDown("up")
	m.OnKeyDown("up")
	m.OnKeyDown("right")

	in := m.Drain()
	assert.Equal(t, core.IntentRight, in.Move)

	in = m.Drain()
	assert.Equal(t, core.IntentNone, in.Move)
}

func TestInputRejectsReversal(t *testing.T) {
	m := NewInputMapper(ArrowKeys(), ModeDiscrete, true)
	m.SetTravel(core.IntentRight)

	m.OnKeyDown("left")
	assert.Equal(t, core.IntentNone, m.Drain().Move)

	m.OnKeyDown("up")
	m.OnKeyDown("left")
	assert.Equal(t, core.IntentUp, m.Drain().Move)
}

func TestInputHeldKeys(t *testing.T) {
	m := NewInputMapper(ArrowKeys(), ModeHeld, false)
	m.OnKeyDown("left")
	m.OnKeyDown("w")

	for range 2 {
		in := m.Drain()
		assert.True(t, in.Held.Has(core.IntentLeft))
		assert.True(t, in.Held.Has(core.IntentUp))
		assert.Equal(t, core.IntentNone, in.Move)
	}

	m.OnKeyUp("left")
	in := m.Drain()
	assert.False(t, in.Held.Has(core.IntentLeft))
	assert.True(t, in.Held.Has(core.IntentUp))
}

func TestInputUnmappedAndControl(t *testing.T) {
	km := ArrowKeys().With(Keymap{" ": core.IntentFire})
	m := NewInputMapper(km, ModeDiscrete, false)

	assert.Equal(t, core.IntentNone, m.OnKeyDown("x"))
	assert.Equal(t, core.IntentPause, m.OnKeyDown("p"))
	assert.Equal(t, core.IntentRestart, m.OnKeyDown("r"))
	assert.Equal(t, core.IntentNone, m.OnKeyDown(" "))

	in := m.Drain()
	assert.Equal(t, 1, in.Actions.Len())
	assert.True(t, in.Actions.Has(core.IntentFire))
	assert.False(t, in.Actions.Has(core.IntentPause))
	assert.Equal(t, 0, m.Drain().Actions.Len())
}

func TestInputClicks(t *testing.T) {
	m := NewInputMapper(Controls(), ModeDiscrete, false)
	m.Click(-1)
	m.Click(4)
	m.Click(0)

	assert.Equal(t, []int{4, 0}, m.Drain().Clicks)
	assert.Empty(t, m.Drain().Clicks)
}

func TestInputReset(t *testing.T) {
	m := NewInputMapper(ArrowKeys(), ModeHeld, true)
	m.OnKeyDown("up")
	m.SetTravel(core.IntentUp)
	m.Reset()

	assert.Equal(t, core.IntentNone, m.Travel())
	assert.Equal(t, 0, m.Drain().Held.Len())
}
