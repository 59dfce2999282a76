// Package fighter implements Real Fighter, a two player duel on one
// keyboard. Attacks cost stamina, stamina regenerates over time and the
// first fighter knocked down to 0 HP loses.
package fighter

import (
	"fmt"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "real-fighter"

	maxHP      = 100
	maxStamina = 100
	regen      = 2
	regenEvery = 10 // ticks
)

// Move is one attack.
type Move struct {
	Name   string
	Base   int
	Spread int
	Cost   int
}

var (
	Punch   = Move{Name: "Punch", Base: 10, Spread: 5, Cost: 10}
	Kick    = Move{Name: "Kick", Base: 15, Spread: 10, Cost: 20}
	Special = Move{Name: "Special", Base: 25, Spread: 15, Cost: 30}
)

// Fighter is one side of the duel.
type Fighter struct {
	Name    string
	ID      engine.EntityID
	Stamina int
	moves   [3]core.Intent
}

// Config returns the default tuning.
func Config() engine.Config {
	return engine.Config{
		TickPeriod: 100 * time.Millisecond,
		Field:      engine.Field{Width: 16, Height: 5, CellSize: 1},
		Keymap: engine.Keymap{
			"q": core.IntentPunch,
			"w": core.IntentKick,
			"e": core.IntentSpecial,
			"u": core.IntentPunch2,
			"i": core.IntentKick2,
			"o": core.IntentSpecial2,
		}.With(engine.Controls()),
		Glyphs: map[string]core.Glyph{
			"P1": {Rune: '1', Color: core.ColorBrightCyan},
			"P2": {Rune: '2', Color: core.ColorBrightRed},
		},
	}
}

// Game implements the duel.
type Game struct {
	fighters [2]Fighter
	message  string
}

// New creates the Real Fighter rules.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Real Fighter",
		Difficulty:  registry.Hard,
		Description: "Two players, one keyboard. Punch, kick and special until someone drops.",
		Config:      Config,
		Rules:       func() engine.Rules { return New() },
	})
}

// Setup puts both fighters in the ring at full health.
func (g *Game) Setup(w *engine.World) {
	p1 := w.Spawn(engine.KindPlayer, core.V(3, 2), core.Vec{}, engine.WithTag("P1"), engine.WithHP(maxHP))
	p2 := w.Spawn(engine.KindPlayer, core.V(12, 2), core.Vec{}, engine.WithTag("P2"), engine.WithHP(maxHP))
	g.fighters = [2]Fighter{
		{Name: "P1", ID: p1.ID, Stamina: maxStamina, moves: [3]core.Intent{core.IntentPunch, core.IntentKick, core.IntentSpecial}},
		{Name: "P2", ID: p2.ID, Stamina: maxStamina, moves: [3]core.Intent{core.IntentPunch2, core.IntentKick2, core.IntentSpecial2}},
	}
	g.message = ""
}

// Fighters returns both fighters, P1 first.
func (g *Game) Fighters() [2]Fighter {
	return g.fighters
}

func hp(w *engine.World, f Fighter) int {
	e, ok := w.Store.Get(f.ID)
	if !ok {
		return 0
	}
	return e.HP
}

// ApplyIntents resolves this tick's attacks, P1 first.
func (g *Game) ApplyIntents(w *engine.World) {
	for i := range g.fighters {
		attacker, defender := &g.fighters[i], g.fighters[1-i]
		for j, m := range [...]Move{Punch, Kick, Special} {
			if !w.Input.Actions.Has(attacker.moves[j]) || w.Ending() {
				continue
			}
			g.attack(w, attacker, defender, m, i == 0)
		}
	}

	if w.Tick%regenEvery == 0 {
		for i := range g.fighters {
			g.fighters[i].Stamina = min(maxStamina, g.fighters[i].Stamina+regen)
		}
	}
}

func (g *Game) attack(w *engine.World, attacker *Fighter, defender Fighter, m Move, p1 bool) {
	if attacker.Stamina < m.Cost {
		g.message = attacker.Name + " - Not enough stamina!"
		return
	}
	attacker.Stamina -= m.Cost
	damage := m.Base + w.Rand.Intn(m.Spread)
	g.message = fmt.Sprintf("%s %s!", attacker.Name, m.Name)

	left := max(0, hp(w, defender)-damage)
	w.Store.Update(defender.ID, func(e *engine.Entity) { e.HP = left })
	if p1 {
		w.Award(damage)
	}
	if left > 0 {
		return
	}
	g.message = attacker.Name + " wins!"
	if p1 {
		w.Win()
	} else {
		w.GameOver()
	}
}

// Stats reports health and stamina of both fighters and the last action.
func (g *Game) Stats(w *engine.World) []string {
	lines := make([]string, 0, 3)
	for _, f := range g.fighters {
		lines = append(lines, fmt.Sprintf("%s HP %3d  ST %3d", f.Name, hp(w, f), f.Stamina))
	}
	if g.message != "" {
		lines = append(lines, g.message)
	}
	return lines
}
