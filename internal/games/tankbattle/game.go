// Package tankbattle implements Tank Battle: drive a tank around a walled
// arena, shoot in the facing direction and clear waves of enemy tanks.
// Brick walls break, steel walls stop shells.
package tankbattle

import (
	"fmt"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	Slug = "tank-battle"

	arena     = 400
	wallSize  = 26
	wallCount = 15
	waveSize  = 8
	waveBonus = 1000

	enemyStep  = 10
	bombSpeed  = 6
	walkChance = 0.05
	fireChance = 0.01
)

var (
	tankSel  = engine.Select(engine.KindPlayer, "tank")
	enemySel = engine.Select(engine.KindObstacle, "enemy")
	brickSel = engine.Select(engine.KindObstacle, "brick")
	steelSel = engine.Select(engine.KindObstacle, "steel")
	shellSel = engine.Select(engine.KindProjectile, "shell")
	bombSel  = engine.Select(engine.KindProjectile, "bomb")
)

var start = core.V(200, 350)

// Config returns the default tuning.
func Config() engine.Config {
	return engine.Config{
		TickPeriod: 100 * time.Millisecond,
		Field:      engine.Field{Width: arena, Height: arena},
		Keymap:     engine.ArrowKeys().With(engine.Keymap{" ": core.IntentFire}),
		Player: engine.PlayerConfig{
			Enabled: true,
			Tag:     "tank",
			Start:   start,
			Size:    core.V(20, 20),
			Step:    15,
			Bounds:  engine.Bounds{MinX: 10, MinY: 10, MaxX: arena - 10, MaxY: arena - 10},
		},
		Projectile: engine.ProjectileConfig{
			Tag:   "shell",
			Size:  core.V(4, 4),
			Aimed: true,
			Speed: 10,
		},
		Collisions: []engine.CollisionRule{
			{A: shellSel, B: enemySel, Tolerance: 25, Effect: engine.EffectDestroy, Reward: 100},
			{A: shellSel, B: brickSel, Effect: engine.EffectDestroy},
			{A: shellSel, B: steelSel, Effect: engine.EffectBlock},
			{A: bombSel, B: brickSel, Effect: engine.EffectBlock},
			{A: bombSel, B: steelSel, Effect: engine.EffectBlock},
			{A: tankSel, B: bombSel, Tolerance: 15, Effect: engine.EffectDamage},
		},
		Lives: 3,
		Glyphs: map[string]core.Glyph{
			"tank":  {Rune: 'A', Color: core.ColorBrightGreen},
			"enemy": {Rune: 'X', Color: core.ColorOrange},
			"brick": {Rune: '#', Color: core.ColorYellow},
			"steel": {Rune: '#', Color: core.ColorGray},
			"shell": {Rune: '.', Color: core.ColorBrightWhite},
			"bomb":  {Rune: '*', Color: core.ColorBrightRed},
		},
	}
}

// Game implements the Tank Battle rules.
type Game struct{}

func init() {
	registry.Register(registry.Entry{
		Slug:        Slug,
		Name:        "Tank Battle",
		Difficulty:  registry.Hard,
		Description: "Clear waves of enemy tanks. Brick walls break, steel walls don't.",
		Config:      Config,
		Rules:       func() engine.Rules { return Game{} },
	})
}

// WaveSlot returns the starting position of the i-th enemy of a wave.
func WaveSlot(i int) core.Vec {
	return core.V(float64(50+(i%4)*100), float64(50+(i/4)*100))
}

// Setup builds the walls and the first wave.
func (Game) Setup(w *engine.World) {
	for placed := 0; placed < wallCount; {
		pos := core.V(
			float64(w.Rand.Intn(15)*wallSize+wallSize/2),
			float64(w.Rand.Intn(15)*wallSize+wallSize/2),
		)
		if blocksStart(pos) {
			continue
		}
		sel := brickSel
		if w.Rand.Float64() < 0.3 {
			sel = steelSel
		}
		w.Spawn(engine.KindObstacle, pos, core.Vec{}, engine.WithTag(sel.Tag), engine.WithSize(core.V(wallSize, wallSize)))
		placed++
	}
	spawnWave(w)
}

func blocksStart(pos core.Vec) bool {
	if core.Near(pos, start, 30) {
		return true
	}
	for i := range waveSize {
		if core.Near(pos, WaveSlot(i), 25) {
			return true
		}
	}
	return false
}

func spawnWave(w *engine.World) {
	for i := range waveSize {
		w.Spawn(engine.KindObstacle, WaveSlot(i), core.Vec{},
			engine.WithTag("enemy"), engine.WithSize(core.V(20, 20)))
	}
}

func hitsWall(w *engine.World, box core.Box) bool {
	for _, sel := range []engine.Selector{brickSel, steelSel} {
		for _, wall := range w.Store.Find(sel) {
			if box.Overlaps(wall.Box()) {
				return true
			}
		}
	}
	return false
}

// ApplyIntents drives the tank one step, undoing moves into walls, and
// fires along the facing direction.
func (Game) ApplyIntents(w *engine.World) {
	if w.Input.Move.IsDirection() {
		if p, ok := w.Player(); ok {
			from := p.Pos
			moved, _ := w.MovePlayer(w.Input.Move.Delta().Scale(w.Config.Player.Step))
			if hitsWall(w, moved.Box()) {
				w.Store.Update(p.ID, func(e *engine.Entity) { e.Pos = from })
			}
		}
	}
	if w.Input.Actions.Has(core.IntentFire) {
		w.Fire()
	}
}

// Move random-walks the enemy tanks.
func (Game) Move(w *engine.World) {
	dirs := [...]core.Intent{core.IntentUp, core.IntentDown, core.IntentLeft, core.IntentRight}
	bounds := w.Config.Player.Bounds
	for _, enemy := range w.Store.Find(enemySel) {
		if !w.Chance(walkChance) {
			continue
		}
		d := dirs[w.Rand.Intn(len(dirs))].Delta().Scale(enemyStep)
		to := w.Field.Clamp(enemy.Pos.Add(d), bounds)
		if hitsWall(w, core.BoxAt(to, enemy.Size)) {
			continue
		}
		w.Store.Update(enemy.ID, func(e *engine.Entity) { e.Pos = to })
	}
}

// Spawn lets enemies fire at the player along the dominant axis.
func (Game) Spawn(w *engine.World) {
	p, ok := w.Player()
	if !ok {
		return
	}
	chance := fireChance * float64(w.Session.Level)
	for _, enemy := range w.Store.Find(enemySel) {
		if !w.Chance(chance) {
			continue
		}
		w.Spawn(engine.KindProjectile, enemy.Pos, aim(enemy.Pos, p.Pos),
			engine.WithTag("bomb"), engine.WithSize(core.V(4, 4)))
	}
}

func aim(from, to core.Vec) core.Vec {
	d := to.Sub(from)
	if abs(d.X) > abs(d.Y) {
		if d.X < 0 {
			return core.V(-bombSpeed, 0)
		}
		return core.V(bombSpeed, 0)
	}
	if d.Y < 0 {
		return core.V(0, -bombSpeed)
	}
	return core.V(0, bombSpeed)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Collide starts the next wave once every enemy is destroyed.
func (Game) Collide(w *engine.World) {
	if w.Store.CountOf(enemySel) > 0 {
		return
	}
	w.Award(waveBonus)
	w.LevelUp()
	w.Store.RemoveWhere(bombSel.Match)
	spawnWave(w)
}

// Stats reports the remaining enemies.
func (Game) Stats(w *engine.World) []string {
	return []string{fmt.Sprintf("Enemies: %d", w.Store.CountOf(enemySel))}
}
