// Package tui is the Bubble Tea host for the arcade. It turns key presses
// and mouse clicks into engine input, draws runner snapshots and wires the
// menu, game and scoreboard screens together, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigames/internal/engine"
)

// frameMsg carries a snapshot published by a runner.
type frameMsg struct {
	runner *engine.Runner
	snap   engine.Snapshot
}

// runnerDoneMsg is sent once a runner has been stopped.
type runnerDoneMsg struct {
	runner *engine.Runner
}

// releaseMsg drives key-release synthesis.
type releaseMsg time.Time

// waitForFrame blocks until the runner publishes its next snapshot.
func waitForFrame(r *engine.Runner) tea.Cmd {
	return func() tea.Msg {
		select {
		case snap := <-r.Frames():
			return frameMsg{runner: r, snap: snap}
		case <-r.Done():
			return runnerDoneMsg{runner: r}
		}
	}
}

// releaseTick schedules the next check for released keys.
func releaseTick() tea.Cmd {
	return tea.Tick(ReleaseWindow/4, func(t time.Time) tea.Msg {
		return releaseMsg(t)
	})
}
