// Package whackmole implements Whack-a-Mole on a 3x3 board of holes. Moles
// pop up on a timer and are whacked by clicking their cell before the
// 30 second countdown runs out.
package whackmole

import (
	"fmt"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "whack-mole"

	size    = 3
	moleTTL = 4 // ticks a mole stays up
	hit     = 10
)

var moleSel = engine.Select(engine.KindCollectible, "mole")

// Config returns the default tuning. Seconds are counted down on the gauge:
// 0.2 per 200ms tick.
func Config() engine.Config {
	return engine.Config{
		TickPeriod: 200 * time.Millisecond,
		Field:      engine.Field{Width: size, Height: size, CellSize: 1},
		Keymap:     engine.Controls(),
		Scoring:    engine.ScoringConfig{LevelEvery: 100},
		Gauge: engine.GaugeConfig{
			Name:         "Time",
			Start:        30,
			Max:          30,
			DrainPerTick: 0.2,
			Fatal:        true,
		},
		Glyphs: map[string]core.Glyph{
			"hole": {Rune: 'o', Color: core.ColorGray},
			"mole": {Rune: 'M', Color: core.ColorOrange},
		},
	}
}

// MoleInterval returns the ticks between moles at a level.
func MoleInterval(level int) uint64 {
	return uint64(max(2, 5-(level-1)))
}

// Game implements the Whack-a-Mole rules.
type Game struct {
	whacked int
}

// New creates the Whack-a-Mole rules.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Whack-a-Mole",
		Difficulty:  registry.Easy,
		Description: "Whack as many moles as you can in 30 seconds.",
		Config:      Config,
		Rules:       func() engine.Rules { return New() },
	})
}

// Setup digs the holes.
func (g *Game) Setup(w *engine.World) {
	g.whacked = 0
	for i := range w.Field.Cells() {
		x, y := w.Field.CellAt(i)
		w.Spawn(engine.KindObstacle, core.V(float64(x), float64(y)), core.Vec{}, engine.WithTag("hole"))
	}
}

func moleAt(w *engine.World, x, y int) (engine.Entity, bool) {
	for _, m := range w.Store.Find(moleSel) {
		if mx, my := m.Cell(); mx == x && my == y {
			return m, true
		}
	}
	return engine.Entity{}, false
}

// ApplyIntents whacks the moles under this tick's clicks.
func (g *Game) ApplyIntents(w *engine.World) {
	for _, cell := range w.Input.Clicks {
		x, y := w.Field.CellAt(cell)
		m, ok := moleAt(w, x, y)
		if !ok {
			continue
		}
		w.Store.Remove(m.ID)
		w.Award(m.Reward)
		g.whacked++
	}
}

// Spawn pops a mole out of a random hole on the level's interval.
func (g *Game) Spawn(w *engine.World) {
	if w.Tick%MoleInterval(w.Session.Level) != 0 {
		return
	}
	x, y := w.Field.CellAt(w.Rand.Intn(w.Field.Cells()))
	if _, taken := moleAt(w, x, y); taken {
		return
	}
	w.Spawn(engine.KindCollectible, core.V(float64(x), float64(y)), core.Vec{},
		engine.WithTag("mole"), engine.WithReward(hit), engine.WithTTL(moleTTL))
}

// Stats reports the whack count.
func (g *Game) Stats(w *engine.World) []string {
	return []string{fmt.Sprintf("Whacked: %d", g.whacked)}
}
