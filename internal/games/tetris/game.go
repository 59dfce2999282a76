// Package tetris implements Tetris on a 10x20 board. Locked blocks are
// obstacle entities tagged with their piece letter; the falling piece is
// drawn with player entities.
package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "tetris"

	boardW = 10
	boardH = 20
	spawnX = 4

	tick          = 50 * time.Millisecond
	linesPerLevel = 10
)

// Shape is a piece bitmap, rows top to bottom.
type Shape [][]bool

func shape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, c := range row {
			s[y][x] = c == '#'
		}
	}
	return s
}

// Rotate turns the shape clockwise.
func (s Shape) Rotate() Shape {
	h, w := len(s), len(s[0])
	out := make(Shape, w)
	for i := range w {
		out[i] = make([]bool, h)
		for j := range h {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}

// Cells returns the occupied offsets of the shape.
func (s Shape) Cells() []Point {
	var out []Point
	for y, row := range s {
		for x, on := range row {
			if on {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Point is a board cell.
type Point struct {
	X, Y int
}

var (
	names  = []string{"I", "O", "T", "S", "Z", "L", "J"}
	shapes = []Shape{
		shape("####"),
		shape("##", "##"),
		shape("###", ".#."),
		shape("##.", ".##"),
		shape(".##", "##."),
		shape("###", "#.."),
		shape("###", "..#"),
	}
	colors = []core.Color{
		core.ColorBrightCyan,
		core.ColorBrightYellow,
		core.ColorPurple,
		core.ColorBrightGreen,
		core.ColorBrightRed,
		core.ColorOrange,
		core.ColorBlue,
	}
)

var (
	blockSel = engine.Select(engine.KindObstacle, "")
	pieceSel = engine.Select(engine.KindPlayer, "")
)

// Config returns the default tuning.
func Config() engine.Config {
	glyphs := make(map[string]core.Glyph, len(names))
	for i, n := range names {
		glyphs[n] = core.Glyph{Rune: '#', Color: colors[i]}
	}
	return engine.Config{
		TickPeriod: tick,
		Field:      engine.Field{Width: boardW, Height: boardH, CellSize: 1},
		Keymap: engine.Keymap{
			"left":  core.IntentLeft,
			"a":     core.IntentLeft,
			"right": core.IntentRight,
			"d":     core.IntentRight,
			"down":  core.IntentDown,
			"s":     core.IntentDown,
			"up":    core.IntentRotate,
			"w":     core.IntentRotate,
			" ":     core.IntentDrop,
		}.With(engine.Controls()),
		Glyphs: glyphs,
	}
}

type piece struct {
	kind  int
	shape Shape
	x, y  int
}

func (p piece) cells() []Point {
	out := p.shape.Cells()
	for i := range out {
		out[i].X += p.x
		out[i].Y += p.y
	}
	return out
}

// Game implements the Tetris rules.
type Game struct {
	cur     piece
	next    int
	lines   int
	gravity int
}

// New creates the Tetris rules.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Tetris",
		Difficulty:  registry.Hard,
		Description: "Rotate and drop tetrominoes to clear lines.",
		Config:      Config,
		Rules:       func() engine.Rules { return New() },
	})
}

// GravityTicks returns how many ticks a piece waits before falling one row.
func GravityTicks(level int) int {
	ms := max(100, 1000-100*level)
	return ms / int(tick/time.Millisecond)
}

// Setup clears the board and deals the first two pieces.
func (g *Game) Setup(w *engine.World) {
	g.lines = 0
	g.gravity = 0
	g.next = w.Rand.Intn(len(shapes))
	g.deal(w)
}

func (g *Game) deal(w *engine.World) {
	g.cur = piece{kind: g.next, shape: shapes[g.next], x: spawnX}
	g.next = w.Rand.Intn(len(shapes))
	if g.collides(w, g.cur) {
		w.GameOver()
	}
	g.sync(w)
}

// ApplyIntents moves, rotates and drops the falling piece, then applies
// gravity.
func (g *Game) ApplyIntents(w *engine.World) {
	switch w.Input.Move {
	case core.IntentLeft:
		g.try(w, g.cur.x-1, g.cur.y, g.cur.shape)
	case core.IntentRight:
		g.try(w, g.cur.x+1, g.cur.y, g.cur.shape)
	case core.IntentDown:
		if !g.try(w, g.cur.x, g.cur.y+1, g.cur.shape) {
			g.lock(w)
			return
		}
	}
	if w.Input.Actions.Has(core.IntentRotate) {
		g.try(w, g.cur.x, g.cur.y, g.cur.shape.Rotate())
	}
	if w.Input.Actions.Has(core.IntentDrop) {
		for g.try(w, g.cur.x, g.cur.y+1, g.cur.shape) {
		}
		g.lock(w)
		return
	}

	g.gravity++
	if g.gravity >= GravityTicks(w.Session.Level) {
		g.gravity = 0
		if !g.try(w, g.cur.x, g.cur.y+1, g.cur.shape) {
			g.lock(w)
			return
		}
	}
	g.sync(w)
}

// try moves the piece if the target is free.
func (g *Game) try(w *engine.World, x, y int, s Shape) bool {
	p := piece{kind: g.cur.kind, shape: s, x: x, y: y}
	if g.collides(w, p) {
		return false
	}
	g.cur = p
	return true
}

func (g *Game) board(w *engine.World) [boardH][boardW]bool {
	var b [boardH][boardW]bool
	for _, blk := range w.Store.Find(blockSel) {
		x, y := blk.Cell()
		if x >= 0 && x < boardW && y >= 0 && y < boardH {
			b[y][x] = true
		}
	}
	return b
}

func (g *Game) collides(w *engine.World, p piece) bool {
	b := g.board(w)
	for _, c := range p.cells() {
		if c.X < 0 || c.X >= boardW || c.Y >= boardH {
			return true
		}
		if c.Y >= 0 && b[c.Y][c.X] {
			return true
		}
	}
	return false
}

// lock merges the piece into the board, clears full rows and deals the
// next piece.
func (g *Game) lock(w *engine.World) {
	tag := names[g.cur.kind]
	for _, c := range g.cur.cells() {
		if c.Y >= 0 {
			w.Spawn(engine.KindObstacle, core.V(float64(c.X), float64(c.Y)), core.Vec{}, engine.WithTag(tag))
		}
	}

	cleared := g.clearRows(w)
	if cleared > 0 {
		w.Award(cleared * 100 * w.Session.Level)
		before := g.lines / linesPerLevel
		g.lines += cleared
		for range g.lines/linesPerLevel - before {
			w.LevelUp()
		}
	}
	g.gravity = 0
	g.deal(w)
}

func (g *Game) clearRows(w *engine.World) int {
	var counts [boardH]int
	for _, blk := range w.Store.Find(blockSel) {
		if _, y := blk.Cell(); y >= 0 && y < boardH {
			counts[y]++
		}
	}
	full := make(map[int]bool)
	for y, n := range counts {
		if n == boardW {
			full[y] = true
		}
	}
	if len(full) == 0 {
		return 0
	}

	w.Store.RemoveWhere(func(e engine.Entity) bool {
		_, y := e.Cell()
		return blockSel.Match(e) && full[y]
	})
	w.Store.Each(func(e *engine.Entity) {
		if !blockSel.Match(*e) {
			return
		}
		_, y := e.Cell()
		drop := 0
		for row := range full {
			if row > y {
				drop++
			}
		}
		e.Pos.Y += float64(drop)
		e.Prev = e.Pos
	})
	return len(full)
}

// sync redraws the falling piece.
func (g *Game) sync(w *engine.World) {
	w.Store.RemoveWhere(pieceSel.Match)
	tag := names[g.cur.kind]
	for _, c := range g.cur.cells() {
		if c.Y >= 0 {
			w.Spawn(engine.KindPlayer, core.V(float64(c.X), float64(c.Y)), core.Vec{}, engine.WithTag(tag))
		}
	}
}

// Stats reports cleared lines and the next piece.
func (g *Game) Stats(w *engine.World) []string {
	return []string{
		fmt.Sprintf("Lines: %d", g.lines),
		"Next: " + names[g.next],
	}
}
