package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

// difficulties is the cycle order of the difficulty selector.
var difficulties = []config.DifficultyPreset{
	config.DifficultyNormal,
	config.DifficultyEasy,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	difficultyColors  = map[registry.Difficulty]lipgloss.Color{
		registry.Easy:   lipgloss.Color("2"),
		registry.Medium: lipgloss.Color("3"),
		registry.Hard:   lipgloss.Color("1"),
	}
)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items      []registry.Entry
	best       map[string]int
	cursor     int
	difficulty int
	width      int
	height     int

	quitting       bool
	selected       *registry.Entry
	openScoreboard bool
}

// NewMenuModel creates a new menu model. The difficulty selector starts on
// the preset named by difficulty.
func NewMenuModel(store *storage.Store, difficulty string, width, height int) MenuModel {
	m := MenuModel{
		items:  registry.List(),
		best:   make(map[string]int),
		width:  width,
		height: height,
	}
	if p, err := config.ParsePreset(difficulty); err == nil {
		for i, d := range difficulties {
			if d == p {
				m.difficulty = i
			}
		}
	}
	if store != nil {
		if stats, err := store.GetAllGamesStats(); err == nil {
			for slug, s := range stats {
				m.best[slug] = s.HighScore
			}
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true

	case "up", "k", "w":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j", "s":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "left", "h", "a":
		m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)

	case "right", "l", "d":
		m.difficulty = (m.difficulty + 1) % len(difficulties)

	case "enter", " ":
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case "tab":
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  M I N I   G A M E S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%-16s %-7s  best %6d", item.Name, item.Difficulty, m.best[item.Slug])
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + line)
		} else {
			diff := lipgloss.NewStyle().Foreground(difficultyColors[item.Difficulty])
			line = "  " + fmt.Sprintf("%-16s ", item.Name) + diff.Render(fmt.Sprintf("%-7s", item.Difficulty)) +
				menuDimStyle.Render(fmt.Sprintf("  best %6d", m.best[item.Slug]))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(m.items[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Difficulty()), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected game, or nil if none selected.
func (m MenuModel) Selected() *registry.Entry {
	return m.selected
}

// Difficulty returns the chosen difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
