package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

// Options are shared by every screen of one terminal session.
type Options struct {
	Runtime core.RuntimeConfig
	Store   *storage.Store // optional score ledger
	Logger  *log.Logger

	// Done stops every runner of the session when closed, e.g. when an
	// SSH connection drops.
	Done <-chan struct{}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// NewRunner loads the tuning for a catalog entry and wraps a fresh engine
// in a runner that records finished sessions in the ledger.
func NewRunner(entry registry.Entry, opts Options) (*engine.Runner, engine.Config, error) {
	rt := opts.Runtime
	cfg, err := config.LoadWithPreset(entry.Slug, rt.ConfigPath, rt.Difficulty, entry.Config())
	if err != nil {
		return nil, engine.Config{}, err
	}
	e, err := entry.New(cfg, rt.Seed)
	if err != nil {
		return nil, engine.Config{}, err
	}

	logger := opts.logger()
	runnerOpts := []engine.RunnerOption{engine.WithLogger(logger)}
	if rt.Seed == 0 {
		runnerOpts = append(runnerOpts, engine.WithSeedSource(func() int64 { return time.Now().UnixNano() }))
	}
	if store := opts.Store; store != nil {
		runnerOpts = append(runnerOpts, engine.OnTerminal(func(res engine.Result) {
			if _, err := store.SaveResult(res); err != nil {
				logger.Warn("could not save result", "game", res.Game, "error", err)
			}
		}))
	}

	r := engine.NewRunner(entry.Slug, e, runnerOpts...)
	if store := opts.Store; store != nil {
		high, err := store.HighScore(entry.Slug)
		if err != nil {
			logger.Warn("could not load high score", "game", entry.Slug, "error", err)
		}
		r.SetHighScore(high)
	}
	if opts.Done != nil {
		go func() {
			select {
			case <-opts.Done:
				r.Stop()
			case <-r.Done():
			}
		}()
	}
	return r, cfg, nil
}

// GameModel plays one game. The runner ticks on its own goroutine; the
// model forwards input and redraws whenever a snapshot arrives.
type GameModel struct {
	entry  registry.Entry
	runner *engine.Runner
	hud    hud
	screen *core.Screen
	snap   engine.Snapshot
	held   heldKeys

	quitting   bool
	backToMenu bool
}

// NewGameModel builds the runner for entry. The session starts in Init.
func NewGameModel(entry registry.Entry, opts Options) (GameModel, error) {
	r, cfg, err := NewRunner(entry, opts)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: %s: %w", entry.Slug, err)
	}
	m := GameModel{
		entry:  entry,
		runner: r,
		hud:    hud{Title: entry.Name, Gauge: cfg.Gauge.Name},
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		held:   make(heldKeys),
	}
	m.snap = r.Snapshot()
	return m, nil
}

// Init starts the first session.
func (m GameModel) Init() tea.Cmd {
	m.runner.Start()
	return tea.Batch(waitForFrame(m.runner), releaseTick())
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			l := newLayout(m.screen.Width(), m.screen.Height(), m.snap.Field)
			if cell, ok := l.CellAt(msg.X, msg.Y); ok {
				m.runner.Click(cell)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if msg.runner != m.runner {
			return m, nil
		}
		m.snap = msg.snap
		return m, waitForFrame(m.runner)

	case releaseMsg:
		for _, key := range m.held.Expire(time.Time(msg)) {
			m.runner.KeyUp(key)
		}
		if m.quitting || m.backToMenu {
			return m, nil
		}
		return m, releaseTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := keyName(msg)

	switch key {
	case "ctrl+c":
		m.quitting = true
		m.runner.Stop()
		return m, nil
	case "esc":
		m.backToMenu = true
		m.runner.Stop()
		return m, nil
	}

	if m.runner.Bound(key) {
		m.runner.KeyDown(key)
		m.held.Press(key, time.Now())
		return m, nil
	}
	if cell, ok := digitCell(key); ok && m.snap.Field.Grid() && cell < m.snap.Field.Cells() {
		m.runner.Click(cell)
		return m, nil
	}
	if key == "q" {
		m.quitting = true
		m.runner.Stop()
	}
	return m, nil
}

// View renders the latest snapshot.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	drawFrame(m.screen, m.hud, m.snap)
	return RenderScreen(m.screen)
}

// Snapshot returns the last frame received from the runner.
func (m GameModel) Snapshot() engine.Snapshot {
	return m.snap
}

// IsQuitting returns true if the player asked to leave the arcade.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
