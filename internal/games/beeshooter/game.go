// Package beeshooter implements Bee Invasion: bees drop from the top of the
// field and the player shoots them before they reach the ground.
package beeshooter

import (
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "bee-shooter"

	fieldW = 600
	fieldH = 400
	ground = 40 // height of the strip bees must not reach
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
			"up":    core.IntentFire,
		}.With(engine.Controls()),
		Player: engine.PlayerConfig{
			Enabled: true,
			Start:   core.V(fieldW/2, fieldH-30),
			Size:    core.V(40, 40),
			Step:    20,
			Bounds:  engine.Bounds{MinX: 20, MaxX: fieldW - 20, MinY: fieldH - 30, MaxY: fieldH - 30},
		},
		Projectile: engine.ProjectileConfig{
			Size:     core.V(4, 10),
			Offset:   core.V(0, -25),
			Velocity: core.V(0, -10),
		},
		Spawns: []engine.SpawnRule{{
			Kind:           engine.KindObstacle,
			Tag:            "bee",
			Chance:         0.05,
			ChancePerLevel: 0.005,
			Edge:           engine.EdgeTop,
			Margin:         20,
			Size:           core.V(40, 40),
			Velocity:       core.V(0, 3),
			SpeedPerLevel:  0.1,
			Reward:         10,
		}},
		Collisions: []engine.CollisionRule{{
			A:         engine.Select(engine.KindProjectile, ""),
			B:         engine.Select(engine.KindObstacle, "bee"),
			Tolerance: 20,
			Effect:    engine.EffectDestroy,
		}},
		Boundaries: []engine.BoundaryRule{{
			Select: engine.Select(engine.KindObstacle, "bee"),
			Edge:   engine.EdgeBottom,
			Offset: ground,
			Effect: engine.EffectDamage,
			Remove: true,
		}},
		Scoring: engine.ScoringConfig{LevelEvery: 100},
		Lives:   3,
		Glyphs: map[string]core.Glyph{
			"player": {Rune: 'A', Color: core.ColorBrightGreen},
			"bee":    {Rune: 'B', Color: core.ColorYellow},
			"shot":   {Rune: '|', Color: core.ColorBrightWhite},
		},
	}
}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Bee Invasion",
		Difficulty:  registry.Medium,
		Description: "Shoot down the bees before they reach the ground.",
		Config:      Config,
	})
}
