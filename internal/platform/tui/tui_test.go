package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	_ "github.com/vovakirdan/minigames/internal/games/all"
	"github.com/vovakirdan/minigames/internal/games/whackmole"
	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected string
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, " "},
		{tea.KeyMsg{Type: tea.KeyUp}, "up"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "left"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "esc"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, "w"},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, "ctrl+c"},
	}
	for _, tt := range tests {
		if got := keyName(tt.msg); got != tt.expected {
			t.Errorf("keyName(%v) = %q, expected %q", tt.msg, got, tt.expected)
		}
	}
}

func TestDigitCell(t *testing.T) {
	tests := []struct {
		key  string
		cell int
		ok   bool
	}{
		{"1", 0, true},
		{"5", 4, true},
		{"9", 8, true},
		{"0", 0, false},
		{"a", 0, false},
		{"12", 0, false},
	}
	for _, tt := range tests {
		cell, ok := digitCell(tt.key)
		if cell != tt.cell || ok != tt.ok {
			t.Errorf("digitCell(%q) = %d, %v, expected %d, %v", tt.key, cell, ok, tt.cell, tt.ok)
		}
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := make(heldKeys)
	start := time.Now()
	h.Press("left", start)
	h.Press(" ", start.Add(150*time.Millisecond))

	if released := h.Expire(start.Add(100 * time.Millisecond)); len(released) != 0 {
		t.Errorf("released %v before the window passed", released)
	}
	released := h.Expire(start.Add(ReleaseWindow))
	if len(released) != 1 || released[0] != "left" {
		t.Errorf("released %v, expected [left]", released)
	}
	// A repeat keeps the key held.
	h.Press(" ", start.Add(300*time.Millisecond))
	if released := h.Expire(start.Add(400 * time.Millisecond)); len(released) != 0 {
		t.Errorf("released %v, expected the repeated key to stay held", released)
	}
	if released := h.Expire(start.Add(time.Second)); len(released) != 1 {
		t.Errorf("released %v, expected [ ]", released)
	}
}

func TestGridLayout(t *testing.T) {
	f := engine.Field{Width: 3, Height: 3, CellSize: 1}
	l := newLayout(80, 24, f)

	if l.CellW != 2 || l.Cols != 6 || l.Rows != 3 {
		t.Fatalf("layout = %+v, expected 2-wide cells on a 6x3 area", l)
	}

	tests := []struct {
		x, y int
		cell int
		ok   bool
	}{
		{l.X, l.Y, 0, true},
		{l.X + 1, l.Y, 0, true},
		{l.X + 2, l.Y + 1, 4, true},
		{l.X + 5, l.Y + 2, 8, true},
		{l.X - 1, l.Y, 0, false},
		{l.X + 6, l.Y, 0, false},
		{l.X, l.Y + 3, 0, false},
	}
	for _, tt := range tests {
		cell, ok := l.CellAt(tt.x, tt.y)
		if cell != tt.cell || ok != tt.ok {
			t.Errorf("CellAt(%d, %d) = %d, %v, expected %d, %v", tt.x, tt.y, cell, ok, tt.cell, tt.ok)
		}
	}
}

func TestContinuousLayoutScales(t *testing.T) {
	f := engine.Field{Width: 400, Height: 400}
	l := newLayout(60, 30, f)

	e := engine.Entity{Pos: core.V(200, 200), Size: core.V(20, 20), Alive: true}
	area, ok := l.Area(e)
	if !ok {
		t.Fatal("entity in the middle of the field is not drawn")
	}
	if area.X <= l.X || area.Right() >= l.X+l.Cols || area.W < 1 || area.H < 1 {
		t.Errorf("Area() = %+v, expected inside the play area %+v", area, l)
	}

	e.Pos = core.V(-50, 200)
	if _, ok := l.Area(e); ok {
		t.Error("entity off the field is drawn")
	}
}

func TestDrawFrame(t *testing.T) {
	e := engine.New(whackmole.Config(), whackmole.New(), 1)
	scr := core.NewScreen(80, 24)

	l := drawFrame(scr, hud{Title: "Whack-a-Mole", Gauge: "Time"}, e.Snapshot())

	if got := scr.Get(l.X, l.Y); got != 'o' {
		t.Errorf("hole rune = %q, expected 'o'", got)
	}
	if got := scr.Get(l.X-1, l.Y-1); got != '┌' {
		t.Errorf("border corner = %q, expected '┌'", got)
	}
	expected := "Whack-a-Mole  Score: 0  Level: 1  Time: 30  Best: 0"
	if got := scr.Row(0); !strings.HasSuffix(got, expected) {
		t.Errorf("HUD = %q, expected it to end with %q", got, expected)
	}
}

func TestOnScreen(t *testing.T) {
	scr := core.NewScreen(20, 5)
	tests := []struct {
		x        int
		text     string
		expected int
	}{
		{2, "Score: 10", 2},
		{15, "Score: 10", 11},
		{4, "a line longer than the screen", 0},
	}
	for _, tt := range tests {
		if got := onScreen(scr, tt.x, tt.text); got != tt.expected {
			t.Errorf("onScreen(%d, %q) = %d, expected %d", tt.x, tt.text, got, tt.expected)
		}
	}
}

func TestStatusLine(t *testing.T) {
	s := engine.Session{Score: 120, Level: 2, Lives: 1, HasLives: true, HighScore: 300}
	expected := "Racing  Score: 120  Level: 2  Lives: 1  Best: 300"
	if got := statusLine(hud{Title: "Racing"}, s); got != expected {
		t.Errorf("statusLine() = %q, expected %q", got, expected)
	}
}

func newGame(t *testing.T, slug string) GameModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	entry, err := registry.Lookup(slug)
	if err != nil {
		t.Fatalf("Lookup(%q) failed: %v", slug, err)
	}
	m, err := NewGameModel(entry, Options{Runtime: core.DefaultConfig()})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func press(m GameModel, key tea.KeyMsg) GameModel {
	next, _ := m.Update(key)
	return next.(GameModel)
}

func TestGameModelEscGoesBack(t *testing.T) {
	m := newGame(t, whackmole.Slug)
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.BackToMenu() || m.IsQuitting() {
		t.Errorf("BackToMenu() = %v, IsQuitting() = %v, expected back only", m.BackToMenu(), m.IsQuitting())
	}
	select {
	case <-m.runner.Done():
	default:
		t.Error("runner still running after leaving the game")
	}
}

func TestGameModelQuitKey(t *testing.T) {
	tests := []struct {
		slug     string
		quitting bool
	}{
		{whackmole.Slug, true},
		{"real-fighter", false}, // q is P1's punch
	}
	for _, tt := range tests {
		m := newGame(t, tt.slug)
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		if m.IsQuitting() != tt.quitting {
			t.Errorf("%s: IsQuitting() = %v, expected %v", tt.slug, m.IsQuitting(), tt.quitting)
		}
		m.runner.Stop()
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(nil, "hard", 80, 24)
	if got := m.Difficulty(); got != "hard" {
		t.Errorf("Difficulty() = %q, expected hard", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if got := m.Difficulty(); got != "fixed" {
		t.Errorf("Difficulty() after right = %q, expected fixed", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	entries := registry.List()
	if m.Selected() == nil || m.Selected().Slug != entries[1].Slug {
		t.Errorf("Selected() = %v, expected %s", m.Selected(), entries[1].Slug)
	}
}

func TestScoreboardFollowsLedger(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	entries := registry.List()
	second := entries[1]
	for _, score := range []int{40, 90} {
		if _, err := store.SaveResult(engine.Result{Game: second.Slug, Score: score, Level: 1, Outcome: "lost"}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if got := m.summary(); got != "no runs yet" {
		t.Errorf("summary() for %s = %q, expected no runs", entries[0].Slug, got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if !strings.HasPrefix(m.summary(), "runs 2  wins 0  best 90  avg 65") {
		t.Errorf("summary() = %q, expected 2 runs with best 90", m.summary())
	}
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][1] != "90" {
		t.Errorf("rows = %v, expected 90 ranked first", rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if got := m.games[m.cursor].Slug; got != entries[len(entries)-1].Slug {
		t.Errorf("cursor after wrapping = %s, expected %s", got, entries[len(entries)-1].Slug)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("IsGoingBack() = false after esc")
	}
}
