// Package explorer implements Space Explorer: fly a ship with held keys,
// collect stars for points and fuel, and avoid asteroids. Thrusting upward
// burns fuel; an empty tank ends the flight.
package explorer

import (
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "space-explorer"

	fieldW = 600
	fieldH = 400
)

// Config returns the default tuning.
func Config() engine.Config {
	return engine.Config{
		TickPeriod: 30 * time.Millisecond,
		Field:      engine.Field{Width: fieldW, Height: fieldH},
		Mode:       engine.ModeHeld,
		Keymap:     engine.ArrowKeys(),
		Player: engine.PlayerConfig{
			Enabled: true,
			Tag:     "ship",
			Start:   core.V(300, 350),
			Size:    core.V(40, 40),
			Speed:   5,
			Bounds:  engine.Bounds{MinX: 20, MinY: 20, MaxX: fieldW - 20, MaxY: fieldH - 20},
		},
		Spawns: []engine.SpawnRule{
			{
				Kind:     engine.KindCollectible,
				Tag:      "star",
				Chance:   0.05,
				Edge:     engine.EdgeTop,
				Margin:   20,
				Size:     core.V(20, 20),
				Velocity: core.V(0, 3),
				Reward:   10,
			},
			{
				Kind:           engine.KindObstacle,
				Tag:            "asteroid",
				Chance:         0.02,
				ChancePerLevel: 0.005,
				Edge:           engine.EdgeTop,
				Margin:         20,
				Size:           core.V(40, 40),
				Velocity:       core.V(0, 4),
				SpeedPerLevel:  0.1,
			},
		},
		Collisions: []engine.CollisionRule{
			{
				A:         engine.Select(engine.KindPlayer, "ship"),
				B:         engine.Select(engine.KindCollectible, "star"),
				Tolerance: 20,
				Effect:    engine.EffectCollect,
				Gauge:     10,
			},
			{
				A:         engine.Select(engine.KindPlayer, "ship"),
				B:         engine.Select(engine.KindObstacle, "asteroid"),
				Tolerance: 25,
				Effect:    engine.EffectFatal,
			},
		},
		Scoring: engine.ScoringConfig{LevelEvery: 100},
		Gauge: engine.GaugeConfig{
			Name:           "Fuel",
			Start:          100,
			Max:            100,
			DrainIntent:    core.IntentUp,
			DrainPerIntent: 0.5,
			Fatal:          true,
		},
		Glyphs: map[string]core.Glyph{
			"ship":     {Rune: 'A', Color: core.ColorBrightCyan},
			"star":     {Rune: '*', Color: core.ColorBrightYellow},
			"asteroid": {Rune: 'O', Color: core.ColorGray},
		},
	}
}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Space Explorer",
		Difficulty:  registry.Hard,
		Description: "Collect stars for fuel and dodge the asteroid field.",
		Config:      Config,
	})
}
