package tetris

import (
	"testing"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
)

func newGame(seed int64) *engine.Engine {
	return engine.New(Config(), New(), seed)
}

func fill(e *engine.Engine, x, y int) {
	e.Store().Spawn(engine.KindObstacle, core.V(float64(x), float64(y)), core.Vec{}, engine.WithTag("I"))
}

func minX(e *engine.Engine) int {
	m := boardW
	for _, c := range e.Store().Find(pieceSel) {
		x, _ := c.Cell()
		m = min(m, x)
	}
	return m
}

func TestRotate(t *testing.T) {
	for i, s := range shapes {
		r := s
		for range 4 {
			r = r.Rotate()
		}
		if len(r.Cells()) != 4 {
			t.Errorf("shape %s has %d cells, expected 4", names[i], len(r.Cells()))
		}
		for j, c := range r.Cells() {
			if c != s.Cells()[j] {
				t.Errorf("shape %s after four rotations = %v, expected %v", names[i], r.Cells(), s.Cells())
				break
			}
		}
	}

	vertical := shapes[0].Rotate()
	if len(vertical) != 4 || len(vertical[0]) != 1 {
		t.Errorf("rotated I is %dx%d, expected 4x1", len(vertical), len(vertical[0]))
	}
}

func TestGravityTicks(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 18},
		{5, 10},
		{9, 2},
		{20, 2},
	}
	for _, tt := range tests {
		if got := GravityTicks(tt.level); got != tt.expected {
			t.Errorf("GravityTicks(%d) = %d, expected %d", tt.level, got, tt.expected)
		}
	}
}

func TestMoveLeft(t *testing.T) {
	e := newGame(1)
	before := minX(e)
	e.KeyDown("left")
	e.Step()
	if got := minX(e); got != before-1 {
		t.Errorf("piece min X = %d, expected %d", got, before-1)
	}
}

func TestHardDropLocksPiece(t *testing.T) {
	e := newGame(2)
	e.KeyDown(" ")
	e.Step()

	if n := e.Store().CountOf(blockSel); n != 4 {
		t.Errorf("locked blocks = %d, expected 4", n)
	}
	for _, b := range e.Store().Find(blockSel) {
		if _, y := b.Cell(); y < boardH-2 {
			t.Errorf("block locked at row %d, expected the bottom rows", y)
		}
	}
	if n := e.Store().CountOf(pieceSel); n != 4 {
		t.Errorf("next piece cells = %d, expected 4", n)
	}
}

func TestLineClear(t *testing.T) {
	e := newGame(3)
	for x := range boardW {
		fill(e, x, boardH-1)
	}
	e.KeyDown(" ")
	e.Step()

	if got := e.Session().Score; got != 100 {
		t.Errorf("Score = %d, expected 100", got)
	}
	if n := e.Store().CountOf(blockSel); n != 4 {
		t.Errorf("blocks after clear = %d, expected 4", n)
	}
	for _, b := range e.Store().Find(blockSel) {
		if _, y := b.Cell(); y < boardH-2 {
			t.Errorf("block at row %d after shifting, expected the bottom rows", y)
		}
	}
	stats := e.Snapshot().Stats
	if len(stats) == 0 || stats[0] != "Lines: 1" {
		t.Errorf("Stats = %v, expected Lines: 1 first", stats)
	}
}

func TestToppingOutEndsGame(t *testing.T) {
	e := newGame(4)
	for y := 2; y < boardH; y++ {
		for x := 1; x < boardW; x++ {
			fill(e, x, y)
		}
	}

	running := true
	for i := 0; i < 3 && running; i++ {
		e.KeyDown(" ")
		running = e.Step()
	}
	if running || !e.Session().GameOver {
		t.Error("stacking to the top did not end the game")
	}
}
