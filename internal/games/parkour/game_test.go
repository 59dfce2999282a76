package parkour

import (
	"testing"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
)

func setup(seed int64) (*engine.Engine, *Game) {
	g := New()
	return engine.New(Config(), g, seed), g
}

func runnerY(t *testing.T, e *engine.Engine) float64 {
	t.Helper()
	p, ok := e.Store().First(engine.Select(engine.KindPlayer, "runner"))
	if !ok {
		t.Fatal("runner missing")
	}
	return p.Pos.Y
}

func building(e *engine.Engine, x, h float64) {
	e.Store().Spawn(engine.KindObstacle, core.V(x, fieldH-h/2), core.V(-scrollSpeed, 0),
		engine.WithTag("building"), engine.WithSize(core.V(buildingW, h)))
}

func TestJumpArc(t *testing.T) {
	e, _ := setup(1)
	e.KeyDown(" ")

	for range 12 {
		e.Step()
	}
	if got := runnerY(t, e); got != ground-jumpHeight {
		t.Errorf("apex Y = %v, expected %v", got, ground-jumpHeight)
	}

	e.KeyDown(" ")
	for range 12 {
		e.Step()
	}
	if got := runnerY(t, e); got != ground {
		t.Errorf("landing Y = %v, expected %v", got, ground)
	}
}

func TestNoDoubleJump(t *testing.T) {
	e, g := setup(2)
	e.KeyDown(" ")
	for range 5 {
		e.Step()
	}
	mid := runnerY(t, e)

	e.KeyDown(" ")
	e.Step()
	if got := runnerY(t, e); got != mid-jumpSpeed {
		t.Errorf("Y = %v, expected the jump to continue at %v", got, mid-jumpSpeed)
	}

	for range 30 {
		e.Step()
	}
	if got := runnerY(t, e); got != ground || g.vy != 0 {
		t.Errorf("runner at %v with vy %v, expected to stand on the ground", got, g.vy)
	}
}

func TestBuildingCrashEndsRun(t *testing.T) {
	e, _ := setup(3)
	building(e, 180, 100)

	running := true
	for i := 0; i < 5 && running; i++ {
		running = e.Step()
	}
	if running || !e.Session().GameOver {
		t.Error("running into a building did not end the game")
	}
}

func TestJumpClearsLowBuilding(t *testing.T) {
	e, _ := setup(4)
	building(e, 190, 80)

	e.KeyDown(" ")
	for i := 0; i < 25; i++ {
		if !e.Step() {
			t.Fatalf("crashed at tick %d", i+1)
		}
	}
	if got := e.Session().Score; got != 10 {
		t.Errorf("Score = %d, expected 10", got)
	}
}

func TestClearedBuildingsScore(t *testing.T) {
	e, _ := setup(5)
	building(e, 65, 60)
	e.Step()
	if got := e.Session().Score; got != 10 {
		t.Errorf("Score = %d, expected 10", got)
	}
}
