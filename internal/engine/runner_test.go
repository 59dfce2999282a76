package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextFrame(t *testing.T, r *Runner) Snapshot {
	t.Helper()
	select {
	case s := <-r.Frames():
		return s
	case <-time.After(time.Second):
		t.Fatal("no frame published")
		return Snapshot{}
	}
}

func TestRunnerPublishesFrames(t *testing.T) {
	clock := &manualClock{}
	r := NewRunner("test", New(shooterConfig(), nil, 1), WithTickerFactory(clock.factory))
	defer r.Stop()

	r.Start()
	start := nextFrame(t, r)
	assert.Equal(t, uint64(0), start.Session.Tick)
	assert.Equal(t, StateRunning, r.State())

	clock.last().tick(t)
	frame := nextFrame(t, r)
	assert.Equal(t, uint64(1), frame.Session.Tick)

	r.KeyDown("left")
	nextFrame(t, r)
	clock.last().tick(t)
	frame = nextFrame(t, r)
	require.Len(t, frame.Entities, 1)
	assert.Equal(t, 45.0, frame.Entities[0].Pos.X)
}

func TestRunnerTerminalStopsTimer(t *testing.T) {
	clock := &manualClock{}
	results := make(chan Result, 1)
	rules := &script{judge: func(w *World) {
		if w.Tick == 2 {
			w.GameOver()
		}
	}}
	r := NewRunner("test", New(openField(), rules, 1),
		WithTickerFactory(clock.factory),
		OnTerminal(func(res Result) { results <- res }),
	)
	defer r.Stop()

	r.Start()
	id := r.session
	tk := clock.last()
	tk.tick(t)
	tk.tick(t)

	select {
	case res := <-results:
		assert.Equal(t, "test", res.Game)
		assert.Equal(t, "lost", res.Outcome)
		assert.Equal(t, uint64(2), res.Ticks)
		assert.Equal(t, id, res.SessionID)
	case <-time.After(time.Second):
		t.Fatal("terminal callback not called")
	}
	require.Eventually(t, func() bool { return r.State() == StateTerminal }, time.Second, time.Millisecond)
	require.Eventually(t, tk.isStopped, time.Second, time.Millisecond)
}

func TestRunnerPauseAndRestart(t *testing.T) {
	clock := &manualClock{}
	seeds := []int64{11, 12}
	r := NewRunner("test", New(shooterConfig(), nil, 1),
		WithTickerFactory(clock.factory),
		WithSeedSource(func() int64 {
			s := seeds[0]
			seeds = seeds[1:]
			return s
		}),
	)
	defer r.Stop()

	r.Start()
	first := clock.last()
	first.tick(t)
	require.Eventually(t, func() bool { return r.Snapshot().Session.Tick == 1 }, time.Second, time.Millisecond)

	r.KeyDown("p")
	assert.Equal(t, StatePaused, r.State())
	assert.True(t, r.Snapshot().Session.Paused)
	first.tick(t)
	first.tick(t)
	assert.Equal(t, uint64(1), r.Snapshot().Session.Tick)

	r.KeyDown("p")
	assert.Equal(t, StateRunning, r.State())

	r.KeyDown("r")
	require.Equal(t, 2, clock.count())
	assert.True(t, first.isStopped())
	assert.Equal(t, uint64(0), r.Snapshot().Session.Tick)
	assert.Equal(t, StateRunning, r.State())
	assert.Empty(t, seeds)
}

func TestRunnerStopIsFinal(t *testing.T) {
	clock := &manualClock{}
	r := NewRunner("test", New(openField(), nil, 1), WithTickerFactory(clock.factory))
	r.Start()
	tk := clock.last()

	r.Stop()
	r.Stop()
	select {
	case <-r.Done():
	default:
		t.Fatal("Done not closed")
	}
	assert.True(t, tk.isStopped())
	assert.Equal(t, StateIdle, r.State())

	r.Start()
	assert.Equal(t, 1, clock.count())
}
