// Package parkour implements City Parkour: a rooftop runner jumps over
// buildings scrolling in from the right.
package parkour

import (
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "city-parkour"

	fieldW = 600
	fieldH = 400

	ground     = 320 // runner center when standing
	jumpHeight = 120
	jumpSpeed  = 10

	buildingW   = 60
	spawnX      = fieldW + buildingW/2
	minGap      = 120
	scrollSpeed = 6
)

var buildingSel = engine.Select(engine.KindObstacle, "building")

// Config returns the default tuning.
func Config() engine.Config {
	return engine.Config{
		TickPeriod: 30 * time.Millisecond,
		Field:      engine.Field{Width: fieldW, Height: fieldH},
		Keymap: engine.Keymap{
			" ":  core.IntentJump,
			"up": core.IntentJump,
			"w":  core.IntentJump,
		}.With(engine.Controls()),
		Player: engine.PlayerConfig{
			Enabled: true,
			Tag:     "runner",
			Start:   core.V(120, ground),
			Size:    core.V(40, 40),
		},
		Collisions: []engine.CollisionRule{
			{A: engine.Select(engine.KindPlayer, "runner"), B: buildingSel, Effect: engine.EffectFatal},
		},
		PassLines: []engine.PassRule{
			{Select: buildingSel, AxisX: true, At: 60, Reward: 10},
		},
		Scoring: engine.ScoringConfig{LevelEvery: 100},
		Glyphs: map[string]core.Glyph{
			"runner":   {Rune: '@', Color: core.ColorBrightCyan},
			"building": {Rune: '#', Color: core.ColorGray},
		},
	}
}

// Game implements the jump arc and the building generator.
type Game struct {
	vy float64
}

// New creates the City Parkour rules.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "City Parkour",
		Difficulty:  registry.Hard,
		Description: "Leap across the rooftops without slamming into a building.",
		Config:      Config,
		Rules:       func() engine.Rules { return New() },
	})
}

// Setup puts the runner on the ground.
func (g *Game) Setup(w *engine.World) {
	g.vy = 0
}

// ApplyIntents drives the jump: up at a fixed speed until the apex, then
// down until the runner lands exactly on the ground.
func (g *Game) ApplyIntents(w *engine.World) {
	p, ok := w.Player()
	if !ok {
		return
	}
	y := p.Pos.Y
	if g.vy > 0 && y+g.vy >= ground {
		g.vy = ground - y
	}
	if g.vy < 0 && y <= ground-jumpHeight {
		g.vy = jumpSpeed
	}
	if g.vy == 0 && y >= ground && w.Input.Has(core.IntentJump) {
		g.vy = -jumpSpeed
	}
	w.Store.Update(p.ID, func(e *engine.Entity) { e.Vel = core.V(0, g.vy) })
}

// Spawn sends in buildings of random height, keeping a minimum gap.
func (g *Game) Spawn(w *engine.World) {
	for _, b := range w.Store.Find(buildingSel) {
		if b.Pos.X > spawnX-minGap {
			return
		}
	}
	level := float64(w.Session.Level - 1)
	if !w.Chance(0.02 + 0.003*level) {
		return
	}
	h := w.Between(60, 140)
	speed := scrollSpeed * (1 + 0.1*level)
	w.Spawn(engine.KindObstacle, core.V(spawnX, fieldH-h/2), core.V(-speed, 0),
		engine.WithTag("building"), engine.WithSize(core.V(buildingW, h)))
}
