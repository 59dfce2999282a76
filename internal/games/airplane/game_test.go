package airplane

import (
	"testing"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
)

func TestRammingCostsLife(t *testing.T) {
	cfg := Config()
	cfg.Spawns = nil
	e := engine.New(cfg, nil, 1)
	e.Store().Spawn(engine.KindObstacle, core.V(fieldW/2+10, fieldH-70), core.V(0, 2),
		engine.WithTag("enemy"), engine.WithSize(core.V(40, 40)))

	e.Step()

	if got := e.Session().Lives; got != 2 {
		t.Errorf("Lives = %d, expected 2", got)
	}
	if e.Session().GameOver {
		t.Error("GameOver = true after one hit, expected false")
	}
}

func TestLevelSpeedsUpTicks(t *testing.T) {
	cfg := Config()
	if got := cfg.PeriodFor(1); got != cfg.TickPeriod {
		t.Errorf("PeriodFor(1) = %v, expected %v", got, cfg.TickPeriod)
	}
	if got := cfg.PeriodFor(50); got != cfg.MinPeriod {
		t.Errorf("PeriodFor(50) = %v, expected %v", got, cfg.MinPeriod)
	}
}
