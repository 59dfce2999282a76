// Package snake implements the Snake game on a 20x20 grid. The head is the
// engine's player entity; body segments are obstacles trailing behind it.
package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "snake-game"

	gridSize  = 20
	foodScore = 10
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

func pointOf(e engine.Entity) Point {
	x, y := e.Cell()
	return Point{X: x, Y: y}
}

func (p Point) vec() core.Vec {
	return core.V(float64(p.X), float64(p.Y))
}

var (
	headSel = engine.Select(engine.KindPlayer, "head")
	bodySel = engine.Select(engine.KindObstacle, "body")
	foodSel = engine.Select(engine.KindCollectible, "food")
)

// Config returns the default tuning.
func Config() engine.Config {
	return engine.Config{
		TickPeriod:     150 * time.Millisecond,
		PeriodStep:     10 * time.Millisecond,
		MinPeriod:      50 * time.Millisecond,
		Field:          engine.Field{Width: gridSize, Height: gridSize, CellSize: 1},
		Keymap:         engine.ArrowKeys(),
		RejectReversal: true,
		Player: engine.PlayerConfig{
			Enabled: true,
			Tag:     "head",
			Start:   core.V(10, 10),
			Step:    1,
		},
		Scoring: engine.ScoringConfig{LevelEvery: 50},
		Glyphs: map[string]core.Glyph{
			"head": {Rune: '@', Color: core.ColorBrightGreen},
			"body": {Rune: 'o', Color: core.ColorGreen},
			"food": {Rune: '*', Color: core.ColorBrightRed},
		},
	}
}

// Game implements the Snake rules.
type Game struct {
	dir   core.Intent
	body  []engine.EntityID // oldest segment first
	eaten int
}

// New creates the Snake rules.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Snake Game",
		Difficulty:  registry.Medium,
		Description: "Eat, grow and never bite yourself. Speeds up every 50 points.",
		Config:      Config,
		Rules:       func() engine.Rules { return New() },
	})
}

// Setup starts the snake heading right with food at (15,15).
func (g *Game) Setup(w *engine.World) {
	g.dir = core.IntentRight
	g.body = g.body[:0]
	g.eaten = 0
	w.SetTravel(g.dir)
	w.Spawn(engine.KindCollectible, core.V(15, 15), core.Vec{}, engine.WithTag("food"), engine.WithReward(foodScore))
}

// ApplyIntents moves the snake one cell per tick.
func (g *Game) ApplyIntents(w *engine.World) {
	if w.Input.Move.IsDirection() {
		g.dir = w.Input.Move
	}
	w.SetTravel(g.dir)

	head, ok := w.Store.First(headSel)
	if !ok {
		return
	}
	from := pointOf(head)
	d := g.dir.Delta()
	next := Point{X: from.X + int(d.X), Y: from.Y + int(d.Y)}

	if !w.Field.ContainsCell(next.X, next.Y) || g.occupied(w, next) {
		w.GameOver()
		return
	}

	g.body = append(g.body, w.Spawn(engine.KindObstacle, from.vec(), core.Vec{}, engine.WithTag("body")).ID)
	w.MovePlayer(d)

	if food, ok := w.Store.First(foodSel); ok && pointOf(food) == next {
		w.Store.Remove(food.ID)
		w.Award(food.Reward)
		g.eaten++
		g.spawnFood(w)
		return
	}

	tail := g.body[0]
	g.body = g.body[1:]
	w.Store.Remove(tail)
}

func (g *Game) occupied(w *engine.World, p Point) bool {
	for _, seg := range w.Store.Find(bodySel) {
		if pointOf(seg) == p {
			return true
		}
	}
	return false
}

// spawnFood places food on a random free cell. A full board wins the game.
func (g *Game) spawnFood(w *engine.World) {
	taken := make(map[Point]bool, len(g.body)+1)
	for _, seg := range w.Store.Find(bodySel) {
		taken[pointOf(seg)] = true
	}
	if head, ok := w.Store.First(headSel); ok {
		taken[pointOf(head)] = true
	}

	var empty []Point
	for y := range gridSize {
		for x := range gridSize {
			p := Point{X: x, Y: y}
			if !taken[p] {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		w.Win()
		return
	}

	p := empty[w.Rand.Intn(len(empty))]
	w.Spawn(engine.KindCollectible, p.vec(), core.Vec{}, engine.WithTag("food"), engine.WithReward(foodScore))
}

// Stats reports the snake length.
func (g *Game) Stats(w *engine.World) []string {
	return []string{
		fmt.Sprintf("Length: %d", len(g.body)+1),
		fmt.Sprintf("Eaten: %d", g.eaten),
	}
}
