// Package lasermaze implements Laser Maze: guide a robot one cell at a time
// through a maze to the exit. Touching a wall or a laser ends the run.
package lasermaze

import (
	"fmt"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const Slug = "laser-maze"

// Maze is the level layout: '#' wall, 'L' laser, 'E' exit, 'P' start.
var Maze = []string{
	"##########",
	"#P..#....#",
	"###.#.##L#",
	"#......#.#",
	"#L####.#.#",
	"#...L....#",
	"###.#L##.#",
	"#...#...E#",
	"##########",
}

var botSel = engine.Select(engine.KindPlayer, "bot")

func start() core.Vec {
	for y, row := range Maze {
		for x, c := range row {
			if c == 'P' {
				return core.V(float64(x), float64(y))
			}
		}
	}
	return core.V(1, 1)
}

// Config returns the default tuning.
func Config() engine.Config {
	w, h := len(Maze[0]), len(Maze)
	return engine.Config{
		TickPeriod: 50 * time.Millisecond,
		Field:      engine.Field{Width: float64(w), Height: float64(h), CellSize: 1},
		Keymap:     engine.ArrowKeys(),
		Player: engine.PlayerConfig{
			Enabled: true,
			Tag:     "bot",
			Start:   start(),
			Step:    1,
			Bounds:  engine.Bounds{MaxX: float64(w - 1), MaxY: float64(h - 1)},
		},
		Collisions: []engine.CollisionRule{
			{A: botSel, B: engine.Select(engine.KindObstacle, "wall"), Tolerance: 0.5, Effect: engine.EffectFatal},
			{A: botSel, B: engine.Select(engine.KindObstacle, "laser"), Tolerance: 0.5, Effect: engine.EffectFatal},
			{A: botSel, B: engine.Select(engine.KindCollectible, "exit"), Tolerance: 0.5, Effect: engine.EffectWin},
		},
		Glyphs: map[string]core.Glyph{
			"bot":   {Rune: 'R', Color: core.ColorBrightCyan},
			"wall":  {Rune: '#', Color: core.ColorGray},
			"laser": {Rune: '*', Color: core.ColorBrightRed},
			"exit":  {Rune: 'E', Color: core.ColorBrightGreen},
		},
	}
}

// Game implements the Laser Maze rules.
type Game struct {
	moves int
}

// New creates the Laser Maze rules.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Laser Maze",
		Difficulty:  registry.Hard,
		Description: "Reach the exit without touching walls or lasers.",
		Config:      Config,
		Rules:       func() engine.Rules { return New() },
	})
}

// Setup lays out the maze.
func (g *Game) Setup(w *engine.World) {
	g.moves = 0
	for y, row := range Maze {
		for x, c := range row {
			pos := core.V(float64(x), float64(y))
			switch c {
			case '#':
				w.Spawn(engine.KindObstacle, pos, core.Vec{}, engine.WithTag("wall"))
			case 'L':
				w.Spawn(engine.KindObstacle, pos, core.Vec{}, engine.WithTag("laser"))
			case 'E':
				w.Spawn(engine.KindCollectible, pos, core.Vec{}, engine.WithTag("exit"))
			}
		}
	}
}

// ApplyIntents counts moves before stepping the robot.
func (g *Game) ApplyIntents(w *engine.World) {
	if w.Input.Move.IsDirection() {
		g.moves++
	}
	w.ApplyDefaultIntents()
}

// Stats reports the move counter.
func (g *Game) Stats(w *engine.World) []string {
	return []string{fmt.Sprintf("Moves: %d", g.moves)}
}
