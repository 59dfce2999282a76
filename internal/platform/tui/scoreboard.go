package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

const (
	minWidthForSidebar = 84
	sidebarWidth       = 22
	maxScores          = 100
)

var (
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardPanel  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var boardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
	Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next game")),
	Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev game")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel lists the session ledger one game at a time: a summary
// line from the game's stats and its best runs in a table.
type ScoreboardModel struct {
	games    []registry.Entry
	cursor   int
	store    *storage.Store
	stats    storage.GameStats
	runs     int
	table    table.Model
	help     help.Model
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoreboardModel opens the scoreboard on the first catalog game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) sidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) newTable() table.Model {
	// Rank, Score, Level, Result, Time
	widths := []int{6, 10, 6, 7, 10}
	room := m.width - 4
	if m.sidebar() {
		room -= sidebarWidth + 3
	}
	if room > 50 {
		widths[1] = 12
		widths[4] = min(room-41, 20)
	}
	columns := make([]table.Column, len(widths))
	for i, title := range []string{"Rank", "Score", "Level", "Result", "Time"} {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load refreshes stats and rows for the selected game.
func (m *ScoreboardModel) load() {
	m.stats, m.runs = storage.GameStats{}, 0
	var rows []table.Row
	if m.store != nil && len(m.games) > 0 {
		slug := m.games[m.cursor].Slug
		if st, err := m.store.GetGameStats(slug); err == nil {
			m.stats = *st
		}
		scores, _ := m.store.TopScores(slug, maxScores)
		m.runs = len(scores)
		for i, s := range scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				strconv.Itoa(s.Score),
				strconv.Itoa(s.Level),
				s.Outcome,
				s.CreatedAt.Format("15:04:05"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) move(delta int) {
	if n := len(m.games); n > 0 {
		m.cursor = (m.cursor + delta + n) % n
		m.load()
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, boardKeys.Back):
			m.back = true
			return m, nil
		case key.Matches(msg, boardKeys.Next):
			m.move(1)
			return m, nil
		case key.Matches(msg, boardKeys.Prev):
			m.move(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.cursor].Name
	}

	var b strings.Builder
	b.WriteString(boardTitle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardDim.Render(m.summary()), m.width))
	b.WriteString("\n\n")

	panel := boardPanel.Render(m.body())
	if m.sidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.gameList(), "  ", panel))
	} else {
		b.WriteString(centerText(m.gameTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(panel, m.width))
	}

	b.WriteString("\n")
	b.WriteString(boardDim.Render(m.help.View(boardKeys)))
	return b.String()
}

// summary renders the selected game's aggregate line.
func (m ScoreboardModel) summary() string {
	st := m.stats
	if st.GamesCount == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("runs %d  wins %d  best %d  avg %.0f  last %s",
		st.GamesCount, st.Wins, st.HighScore, st.AvgScore, st.LastPlayed.Format("15:04:05"))
}

func (m ScoreboardModel) body() string {
	if m.runs == 0 {
		return boardDim.Italic(true).Padding(2, 4).
			Render("No scores this session yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) gameList() string {
	var b strings.Builder
	b.WriteString("Games\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, g := range m.games {
		line := "  " + truncate(g.Name, sidebarWidth-6)
		if i == m.cursor {
			line = boardActive.Render("> " + truncate(g.Name, sidebarWidth-6))
		}
		b.WriteString("\n" + line)
	}
	return boardPanel.Width(sidebarWidth).Render(b.String())
}

// gameTabs shows every game on one line, or just the current one with
// arrows when that does not fit.
func (m ScoreboardModel) gameTabs() string {
	if len(m.games) == 0 {
		return ""
	}
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Name, 10)
		if i == m.cursor {
			tabs[i] = boardActive.Background(lipgloss.Color("57")).Padding(0, 1).Render(name)
		} else {
			tabs[i] = boardDim.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.games[m.cursor].Name)
	}
	return line
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
