package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
)

// Apply returns cfg tuned by the named preset. cfg itself is not modified.
func Apply(cfg engine.Config, preset DifficultyPreset) (engine.Config, error) {
	p, ok := presets()[preset]
	if !ok {
		return cfg, fmt.Errorf("%w %q", ErrUnknownPreset, preset)
	}

	cfg.Spawns = slices.Clone(cfg.Spawns)
	for i := range cfg.Spawns {
		s := &cfg.Spawns[i]
		s.Chance = core.ClampF(s.Chance*p.ChanceScale, 0, 1)
		s.ChancePerLevel *= p.ChanceScale
	}

	if p.PeriodScale > 0 {
		cfg.TickPeriod = scale(cfg.TickPeriod, p.PeriodScale)
		cfg.MinPeriod = scale(cfg.MinPeriod, p.PeriodScale)
	}

	if cfg.Lives > 0 {
		cfg.Lives = max(1, cfg.Lives+p.ExtraLives)
	}

	if p.Leveling != nil && !*p.Leveling {
		cfg.PeriodStep = 0
		for i := range cfg.Spawns {
			cfg.Spawns[i].ChancePerLevel = 0
			cfg.Spawns[i].SpeedPerLevel = 0
		}
	}
	return cfg, nil
}

func scale(d time.Duration, k float64) time.Duration {
	return time.Duration(float64(d) * k).Round(time.Millisecond)
}
