package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigames/internal/registry"
)

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// AppModel manages one arcade session: menu -> game -> menu, with the
// scoreboard reachable from the menu. It is the top-level model for local
// play and for every SSH session.
type AppModel struct {
	opts   Options
	screen appScreen
	menu   MenuModel
	game   *GameModel
	scores ScoreboardModel
	direct bool // started straight into a game; leaving it quits
	err    error
}

// NewAppModel starts on the menu.
func NewAppModel(opts Options) AppModel {
	rt := opts.Runtime
	return AppModel{
		opts: opts,
		menu: NewMenuModel(opts.Store, rt.Difficulty, rt.ScreenW, rt.ScreenH),
	}
}

// NewGameApp starts straight into one game. Leaving the game quits.
func NewGameApp(entry registry.Entry, opts Options) (AppModel, error) {
	g, err := NewGameModel(entry, opts)
	if err != nil {
		return AppModel{}, err
	}
	return AppModel{opts: opts, screen: screenGame, game: &g, direct: true}, nil
}

// Init initializes the current screen.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		rt := m.opts.Runtime
		m.scores = NewScoreboardModel(m.opts.Store, rt.ScreenW, rt.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		entry := *m.menu.Selected()
		m.opts.Runtime.Difficulty = string(m.menu.Difficulty())
		g, err := NewGameModel(entry, m.opts)
		if err != nil {
			m.opts.logger().Error("could not start game", "game", entry.Slug, "error", err)
			m.err = err
			m.menu = m.newMenu()
			return m, nil
		}
		m.err = nil
		m.game = &g
		m.screen = screenGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	g := next.(GameModel)
	m.game = &g

	switch {
	case m.game.IsQuitting(), m.game.BackToMenu() && m.direct:
		return m, tea.Quit
	case m.game.BackToMenu():
		m.game = nil
		m.menu = m.newMenu()
		m.screen = screenMenu
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.menu = m.newMenu()
		m.screen = screenMenu
		return m, m.menu.Init()
	}
	return m, cmd
}

// newMenu rebuilds the menu so best scores are fresh.
func (m AppModel) newMenu() MenuModel {
	rt := m.opts.Runtime
	menu := NewMenuModel(m.opts.Store, rt.Difficulty, rt.ScreenW, rt.ScreenH)
	menu.cursor = m.menu.cursor
	return menu
}

// View renders the active screen.
func (m AppModel) View() string {
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	v := m.menu.View()
	if m.err != nil {
		v += "\n" + centerText(menuDimStyle.Render("Error: "+m.err.Error()), m.opts.Runtime.ScreenW)
	}
	return v
}

// Run starts a full-screen program on the local terminal. With an entry it
// plays that game directly, otherwise it opens the menu.
func Run(entry *registry.Entry, opts Options) error {
	var model AppModel
	if entry != nil {
		var err error
		if model, err = NewGameApp(*entry, opts); err != nil {
			return err
		}
	} else {
		model = NewAppModel(opts)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if app, ok := final.(AppModel); ok && app.game != nil {
		app.game.runner.Stop()
	}
	return err
}
