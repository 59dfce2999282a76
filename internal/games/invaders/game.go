// Package invaders implements Space Invaders: a 5x10 alien formation drifts
// down toward the cannon and drops bombs; clear it before it lands.
package invaders

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "space-invaders"

	fieldW = 800
	fieldH = 600

	rows      = 5
	cols      = 10
	landLine  = 520
	waveBonus = 1000
)

var (
	cannonSel = engine.Select(engine.KindPlayer, "cannon")
	alienSel  = engine.Select(engine.KindObstacle, "")
	bombSel   = engine.Select(engine.KindProjectile, "bomb")
)

// Config returns the default tuning.
func Config() engine.Config {
	return engine.Config{
		TickPeriod: 50 * time.Millisecond,
		Field:      engine.Field{Width: fieldW, Height: fieldH},
		Keymap: engine.Keymap{
			"left":  core.IntentLeft,
			"a":     core.IntentLeft,
			"right": core.IntentRight,
			"d":     core.IntentRight,
			" ":     core.IntentFire,
			"w":     core.IntentFire,
			"1":     core.IntentFire,
		}.With(engine.Controls()),
		Player: engine.PlayerConfig{
			Enabled: true,
			Tag:     "cannon",
			Start:   core.V(400, 560),
			Size:    core.V(40, 20),
			Step:    20,
			Bounds:  engine.Bounds{MinX: 20, MinY: 560, MaxX: 760, MaxY: 560},
		},
		Projectile: engine.ProjectileConfig{
			Tag:      "shot",
			Size:     core.V(4, 10),
			Offset:   core.V(0, -10),
			Velocity: core.V(0, -10),
		},
		Collisions: []engine.CollisionRule{
			{
				A:         engine.Select(engine.KindProjectile, "shot"),
				B:         alienSel,
				Tolerance: 30,
				Effect:    engine.EffectDestroy,
			},
			{
				A:         cannonSel,
				B:         bombSel,
				Tolerance: 30,
				Effect:    engine.EffectDamage,
			},
		},
		Boundaries: []engine.BoundaryRule{
			{Select: alienSel, Edge: engine.EdgeTop, Offset: landLine, Effect: engine.EffectFatal},
		},
		Lives: 3,
		Glyphs: map[string]core.Glyph{
			"cannon": {Rune: 'A', Color: core.ColorBrightGreen},
			"shot":   {Rune: '|', Color: core.ColorBrightYellow},
			"bomb":   {Rune: '!', Color: core.ColorBrightRed},
			"purple": {Rune: 'W', Color: core.ColorPurple},
			"green":  {Rune: 'M', Color: core.ColorGreen},
			"blue":   {Rune: 'V', Color: core.ColorBlue},
		},
	}
}

// Row describes one formation row.
type Row struct {
	Tag    string
	Reward int
}

// RowOf returns the alien type of a formation row.
func RowOf(row int) Row {
	switch {
	case row == 0:
		return Row{Tag: "purple", Reward: 30}
	case row < 3:
		return Row{Tag: "green", Reward: 10}
	default:
		return Row{Tag: "blue", Reward: 20}
	}
}

// Game implements the Space Invaders rules.
type Game struct{}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Space Invaders",
		Difficulty:  registry.Medium,
		Description: "Hold the line against the descending alien formation.",
		Config:      Config,
		Rules:       func() engine.Rules { return Game{} },
	})
}

// Setup deploys the first formation.
func (Game) Setup(w *engine.World) {
	deploy(w)
}

func deploy(w *engine.World) {
	for row := range rows {
		r := RowOf(row)
		for col := range cols {
			pos := core.V(float64(70+col*70), float64(70+row*50))
			w.Spawn(engine.KindObstacle, pos, core.Vec{},
				engine.WithTag(r.Tag), engine.WithReward(r.Reward), engine.WithSize(core.V(40, 30)))
		}
	}
}

// Move sways the formation sideways while it sinks, faster each level.
func (Game) Move(w *engine.World) {
	vel := core.V(
		math.Sin(float64(w.Tick)/10)*0.5,
		0.5+0.1*float64(w.Session.Level-1),
	)
	w.Store.Each(func(e *engine.Entity) {
		if alienSel.Match(*e) {
			e.Vel = vel
		}
	})
}

// Spawn drops a bomb from a random alien.
func (Game) Spawn(w *engine.World) {
	if !w.Chance(0.02 + 0.005*float64(w.Session.Level-1)) {
		return
	}
	aliens := w.Store.Find(alienSel)
	if len(aliens) == 0 {
		return
	}
	shooter := aliens[w.Rand.Intn(len(aliens))]
	w.Spawn(engine.KindProjectile, shooter.Pos.Add(core.V(0, 10)), core.V(0, 5),
		engine.WithTag("bomb"), engine.WithSize(core.V(4, 10)))
}

// Collide sends the next wave once the formation is destroyed.
func (Game) Collide(w *engine.World) {
	if w.Store.CountOf(alienSel) > 0 {
		return
	}
	w.Award(waveBonus)
	w.LevelUp()
	w.Store.RemoveWhere(bombSel.Match)
	deploy(w)
}

// Stats reports the remaining invaders.
func (Game) Stats(w *engine.World) []string {
	return []string{fmt.Sprintf("Invaders: %d", w.Store.CountOf(alienSel))}
}
