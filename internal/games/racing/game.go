// Package racing implements Speed Racer: dodge traffic on a three-lane road.
// Every car that passes the player scores.
package racing

import (
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "racing"

	fieldW   = 400
	fieldH   = 500
	carY     = 420
	passLine = 480
)

// Lanes are the x centers of the road lanes.
var Lanes = []float64{80, 200, 320}

// Config returns the default tuning.
func Config() engine.Config {
	return engine.Config{
		TickPeriod: 50 * time.Millisecond,
		PeriodStep: 3 * time.Millisecond,
		MinPeriod:  25 * time.Millisecond,
		Field:      engine.Field{Width: fieldW, Height: fieldH},
		Keymap: engine.Keymap{
			"left":  core.IntentLeft,
			"a":     core.IntentLeft,
			"right": core.IntentRight,
			"d":     core.IntentRight,
		}.With(engine.Controls()),
		Player: engine.PlayerConfig{
			Enabled: true,
			Tag:     "car",
			Start:   core.V(200, carY),
			Size:    core.V(40, 60),
			Step:    20,
			Bounds:  engine.Bounds{MinX: 80, MaxX: 320, MinY: carY, MaxY: carY},
		},
		Spawns: []engine.SpawnRule{{
			Kind:           engine.KindObstacle,
			Tag:            "traffic",
			Chance:         0.03,
			ChancePerLevel: 0.005,
			Edge:           engine.EdgeTop,
			Lanes:          Lanes,
			Size:           core.V(40, 60),
			Velocity:       core.V(0, 8),
		}},
		Collisions: []engine.CollisionRule{{
			A:      engine.Select(engine.KindPlayer, "car"),
			B:      engine.Select(engine.KindObstacle, "traffic"),
			Effect: engine.EffectFatal,
		}},
		PassLines: []engine.PassRule{{
			Select: engine.Select(engine.KindObstacle, "traffic"),
			At:     passLine,
			Reward: 10,
		}},
		Scoring: engine.ScoringConfig{LevelEvery: 100},
		Glyphs: map[string]core.Glyph{
			"car":     {Rune: 'H', Color: core.ColorBrightRed},
			"traffic": {Rune: 'X', Color: core.ColorBrightBlue},
		},
	}
}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Speed Racer",
		Difficulty:  registry.Hard,
		Description: "Weave through traffic; one crash ends the race.",
		Config:      Config,
	})
}
