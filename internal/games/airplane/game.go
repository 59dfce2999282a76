// Package airplane implements Air Battle, a vertical shooter where enemy
// planes ram the player.
package airplane

import (
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "airplane-shooter"

	fieldW = 600
	fieldH = 400
)

// Config returns the default tuning.
func Config() engine.Config {
	return engine.Config{
		TickPeriod: 50 * time.Millisecond,
		PeriodStep: 2 * time.Millisecond,
		MinPeriod:  30 * time.Millisecond,
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
			Tag:     "plane",
			Start:   core.V(fieldW/2, fieldH-40),
			Size:    core.V(40, 40),
			Step:    20,
			Bounds:  engine.Bounds{MinX: 20, MaxX: fieldW - 20, MinY: fieldH - 40, MaxY: fieldH - 40},
		},
		Projectile: engine.ProjectileConfig{
			Size:     core.V(4, 10),
			Offset:   core.V(0, -25),
			Velocity: core.V(0, -10),
		},
		Spawns: []engine.SpawnRule{{
			Kind:           engine.KindObstacle,
			Tag:            "enemy",
			Chance:         0.03,
			ChancePerLevel: 0.004,
			Edge:           engine.EdgeTop,
			Margin:         20,
			Size:           core.V(40, 40),
			Velocity:       core.V(0, 2),
			SpeedPerLevel:  0.15,
			Reward:         10,
		}},
		Collisions: []engine.CollisionRule{
			{
				A:         engine.Select(engine.KindProjectile, ""),
				B:         engine.Select(engine.KindObstacle, "enemy"),
				Tolerance: 20,
				Effect:    engine.EffectDestroy,
			},
			{
				A:      engine.Select(engine.KindPlayer, "plane"),
				B:      engine.Select(engine.KindObstacle, "enemy"),
				Effect: engine.EffectDamage,
			},
		},
		Scoring: engine.ScoringConfig{LevelEvery: 100},
		Lives:   3,
		Glyphs: map[string]core.Glyph{
			"plane": {Rune: '^', Color: core.ColorBrightCyan},
			"enemy": {Rune: 'V', Color: core.ColorBrightRed},
			"shot":  {Rune: '|', Color: core.ColorYellow},
		},
	}
}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Air Battle",
		Difficulty:  registry.Hard,
		Description: "Dogfight enemy planes and avoid being rammed.",
		Config:      Config,
	})
}
