package fighter

import (
	"testing"

	"github.com/vovakirdan/minigames/internal/engine"
)

func setup(seed int64) (*engine.Engine, *Game) {
	g := New()
	return engine.New(Config(), g, seed), g
}

func hpOf(t *testing.T, e *engine.Engine, f Fighter) int {
	t.Helper()
	x, ok := e.Store().Get(f.ID)
	if !ok {
		t.Fatalf("%s missing", f.Name)
	}
	return x.HP
}

func setHP(e *engine.Engine, f Fighter, hp int) {
	e.Store().Update(f.ID, func(x *engine.Entity) { x.HP = hp })
}

func TestPunch(t *testing.T) {
	e, g := setup(1)
	e.KeyDown("q")
	e.Step()

	p1, p2 := g.Fighters()[0], g.Fighters()[1]
	damage := maxHP - hpOf(t, e, p2)
	if damage < Punch.Base || damage >= Punch.Base+Punch.Spread {
		t.Errorf("punch damage = %d, expected [%d,%d)", damage, Punch.Base, Punch.Base+Punch.Spread)
	}
	if p1.Stamina != maxStamina-Punch.Cost {
		t.Errorf("P1 stamina = %d, expected %d", p1.Stamina, maxStamina-Punch.Cost)
	}
	if got := e.Session().Score; got != damage {
		t.Errorf("Score = %d, expected %d", got, damage)
	}
	if got := hpOf(t, e, p1); got != maxHP {
		t.Errorf("P1 HP = %d, expected %d", got, maxHP)
	}
}

func TestNotEnoughStamina(t *testing.T) {
	e, g := setup(2)
	g.fighters[1].Stamina = Special.Cost - 1

	e.KeyDown("o")
	e.Step()

	if got := hpOf(t, e, g.fighters[0]); got != maxHP {
		t.Errorf("P1 HP = %d, expected %d", got, maxHP)
	}
	stats := e.Snapshot().Stats
	if got := stats[len(stats)-1]; got != "P2 - Not enough stamina!" {
		t.Errorf("message = %q, expected the stamina warning", got)
	}
}

func TestStaminaRegenerates(t *testing.T) {
	e, g := setup(3)
	e.KeyDown("w")
	for range regenEvery {
		e.Step()
	}
	if got := g.fighters[0].Stamina; got != maxStamina-Kick.Cost+regen {
		t.Errorf("P1 stamina = %d, expected %d", got, maxStamina-Kick.Cost+regen)
	}
	if got := g.fighters[1].Stamina; got != maxStamina {
		t.Errorf("P2 stamina = %d, expected %d", got, maxStamina)
	}
}

func TestKnockouts(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		target int
		won    bool
	}{
		{"P1 knocks out P2", "e", 1, true},
		{"P2 knocks out P1", "u", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, g := setup(4)
			setHP(e, g.fighters[tt.target], 1)

			e.KeyDown(tt.key)
			if e.Step() {
				t.Fatal("knockout did not end the fight")
			}
			s := e.Session()
			if s.Won != tt.won || s.GameOver == tt.won {
				t.Errorf("outcome = %s, expected won=%v", s.Outcome(), tt.won)
			}
			if got := hpOf(t, e, g.fighters[tt.target]); got != 0 {
				t.Errorf("HP = %d, expected 0", got)
			}
		})
	}
}

func TestP1ActsFirst(t *testing.T) {
	e, g := setup(5)
	setHP(e, g.fighters[0], 1)
	setHP(e, g.fighters[1], 1)

	e.KeyDown("q")
	e.KeyDown("u")
	e.Step()

	if !e.Session().Won {
		t.Errorf("outcome = %s, expected P1 to land first", e.Session().Outcome())
	}
	if got := hpOf(t, e, g.fighters[0]); got != 1 {
		t.Errorf("P1 HP = %d, expected 1", got)
	}
}
