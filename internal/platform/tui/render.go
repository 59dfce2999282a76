package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPurple:        lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Screen rows around the play area.
const (
	hudRows    = 1
	statsRows  = 3
	footerRows = 1
	maxCols    = 96
	maxRows    = 32
)

// layout places a field on the screen. The play area starts at (X, Y),
// inside a one-character border.
type layout struct {
	field      engine.Field
	X, Y       int
	Cols, Rows int
	CellW      int // screen columns per grid cell
}

func newLayout(screenW, screenH int, f engine.Field) layout {
	availW := max(1, screenW-2)
	availH := max(1, screenH-2-hudRows-statsRows-footerRows)
	l := layout{field: f, Y: hudRows + 1, CellW: 1}

	if f.Grid() {
		w, h := int(f.Width), int(f.Height)
		if w*2 <= availW {
			l.CellW = 2
		}
		l.Cols = min(w*l.CellW, availW)
		l.Rows = min(h, availH)
	} else {
		l.Cols = min(availW, maxCols)
		l.Rows = min(availH, maxRows)
	}
	l.X = max(1, (screenW-l.Cols)/2)
	return l
}

// Border returns the rectangle drawn around the play area.
func (l layout) Border() core.Rect {
	return core.NewRect(l.X-1, l.Y-1, l.Cols+2, l.Rows+2)
}

func (l layout) col(x float64) int {
	return core.Clamp(int(x/l.field.Width*float64(l.Cols)), 0, l.Cols-1)
}

func (l layout) row(y float64) int {
	return core.Clamp(int(y/l.field.Height*float64(l.Rows)), 0, l.Rows-1)
}

// Area returns the screen rectangle covered by an entity.
func (l layout) Area(e engine.Entity) (core.Rect, bool) {
	if l.field.Grid() {
		x, y := e.Cell()
		if !l.field.ContainsCell(x, y) || x*l.CellW >= l.Cols || y >= l.Rows {
			return core.Rect{}, false
		}
		return core.NewRect(l.X+x*l.CellW, l.Y+y, l.CellW, 1), true
	}
	if !l.field.Contains(e.Pos) {
		return core.Rect{}, false
	}
	b := e.Box()
	c0, c1 := l.col(b.Min().X), l.col(b.Max().X)
	r0, r1 := l.row(b.Min().Y), l.row(b.Max().Y)
	return core.NewRect(l.X+c0, l.Y+r0, c1-c0+1, r1-r0+1), true
}

// CellAt maps a screen position to a grid cell index.
func (l layout) CellAt(sx, sy int) (int, bool) {
	area := core.NewRect(l.X, l.Y, l.Cols, l.Rows)
	if !l.field.Grid() || !area.Contains(sx, sy) {
		return 0, false
	}
	x, y := (sx-l.X)/l.CellW, sy-l.Y
	if !l.field.ContainsCell(x, y) {
		return 0, false
	}
	return l.field.CellIndex(x, y), true
}

var drawOrder = map[engine.Kind]int{
	engine.KindObstacle:    0,
	engine.KindCollectible: 1,
	engine.KindProjectile:  2,
	engine.KindPlayer:      3,
}

// hud is the static part of the game frame.
type hud struct {
	Title string
	Gauge string
}

// drawFrame paints one snapshot: HUD line, bordered field, game stats and
// the controls footer.
func drawFrame(scr *core.Screen, h hud, snap engine.Snapshot) layout {
	scr.Clear()
	l := newLayout(scr.Width(), scr.Height(), snap.Field)

	status := statusLine(h, snap.Session)
	scr.DrawTextColored(onScreen(scr, l.X-1, status), 0, status, core.ColorBrightWhite)
	scr.DrawBox(l.Border(), core.ColorGray)

	entities := slices.Clone(snap.Entities)
	slices.SortStableFunc(entities, func(a, b engine.Entity) int {
		return cmp.Compare(drawOrder[a.Kind], drawOrder[b.Kind])
	})
	for _, e := range entities {
		if !e.Alive {
			continue
		}
		area, ok := l.Area(e)
		if !ok {
			continue
		}
		scr.DrawRect(area, snap.Glyph(e))
	}

	bottom := l.Y + l.Rows + 1
	for i, line := range snap.Stats {
		if i >= statsRows {
			break
		}
		scr.DrawTextColored(onScreen(scr, l.X-1, line), bottom+i, line, core.ColorCyan)
	}

	mid := l.Y + l.Rows/2
	s := snap.Session
	switch {
	case s.Won:
		scr.DrawTextCentered(mid, " YOU WIN! ", core.ColorBrightGreen)
		scr.DrawTextCentered(mid+1, " R: play again  Esc: back ", core.ColorWhite)
	case s.GameOver:
		scr.DrawTextCentered(mid, " GAME OVER ", core.ColorBrightRed)
		scr.DrawTextCentered(mid+1, " R: restart  Esc: back ", core.ColorWhite)
	case s.Paused:
		scr.DrawTextCentered(mid, " PAUSED ", core.ColorBrightYellow)
	}

	scr.DrawTextCentered(scr.Height()-1, "P: pause  R: restart  Esc: back  Ctrl+C: quit", core.ColorGray)
	return l
}

// onScreen moves x left as far as needed for text to end on screen.
func onScreen(scr *core.Screen, x int, text string) int {
	return min(x, max(0, scr.Width()-len([]rune(text))))
}

func statusLine(h hud, s engine.Session) string {
	parts := []string{h.Title, fmt.Sprintf("Score: %d", s.Score), fmt.Sprintf("Level: %d", s.Level)}
	if s.HasLives {
		parts = append(parts, fmt.Sprintf("Lives: %d", s.Lives))
	}
	if s.HasGauge {
		name := cmp.Or(h.Gauge, "Gauge")
		parts = append(parts, fmt.Sprintf("%s: %.0f", name, s.Gauge))
	}
	parts = append(parts, fmt.Sprintf("Best: %d", s.HighScore))
	return strings.Join(parts, "  ")
}
