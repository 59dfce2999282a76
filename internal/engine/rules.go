package engine

import (
	"math/rand"

	"github.com/vovakirdan/minigames/internal/core"
)

// Rules is the behaviour a game adds on top of its Config. Setup runs after
// every reset, once the configured player has been placed.
//
// A game may also implement any of the stage hooks below; each runs inside
// its pipeline stage.
type Rules interface {
	Setup(w *World)
}

// IntentHandler replaces the default intent stage.
// Call World.ApplyDefaultIntents to keep the default behaviour as well.
type IntentHandler interface {
	ApplyIntents(w *World)
}

// Mover runs before entities advance, typically to steer velocities.
type Mover interface {
	Move(w *World)
}

// Spawner runs after the spawn table.
type Spawner interface {
	Spawn(w *World)
}

// Collider runs after the collision, boundary and pass-line tables.
type Collider interface {
	Collide(w *World)
}

// Judge runs before the terminal check and may end the session.
type Judge interface {
	Judge(w *World)
}

// Reporter contributes extra HUD lines.
type Reporter interface {
	Stats(w *World) []string
}

// World is the view of an engine handed to Rules hooks for the current tick.
// Score, lives and level changes are collected and applied in the scoring
// stage; terminal requests are applied in the terminal stage.
type World struct {
	Store   *Store
	Session *Session // read it freely; change it through the World methods
	Config  *Config
	Field   Field
	Rand    *rand.Rand
	Tick    uint64
	Input   Intents

	eng    *Engine
	points int
	lost   int
	levels int
	gauge  float64
	lose   bool
	win    bool
}

func (w *World) reset(tick uint64, in Intents) {
	w.Tick = tick
	w.Input = in
	w.points = 0
	w.lost = 0
	w.levels = 0
	w.gauge = 0
	w.lose = false
	w.win = false
}

// Award adds points to this tick's score.
func (w *World) Award(points int) {
	w.points += points
}

// LoseLife costs one life; in games without lives it ends the session.
func (w *World) LoseLife() {
	w.lost++
}

// LevelUp raises the level by one, independent of score thresholds.
func (w *World) LevelUp() {
	w.levels++
}

// AdjustGauge adds delta to the gauge, clamped to its range.
func (w *World) AdjustGauge(delta float64) {
	w.gauge += delta
}

// GameOver ends the session as a loss at the end of this tick.
func (w *World) GameOver() {
	w.lose = true
}

// Win ends the session as a win at the end of this tick.
func (w *World) Win() {
	w.win = true
}

// Ending reports whether a terminal transition is pending.
func (w *World) Ending() bool {
	return w.lose || w.win
}

// Chance returns true with probability p.
func (w *World) Chance(p float64) bool {
	return p > 0 && w.Rand.Float64() < p
}

// Between returns a uniform value in [lo, hi).
func (w *World) Between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.Rand.Float64()*(hi-lo)
}

// Spawn creates an entity stamped with the current tick.
func (w *World) Spawn(kind Kind, pos, vel core.Vec, opts ...SpawnOption) Entity {
	return w.Store.Spawn(kind, pos, vel, opts...)
}

// Player returns the configured player entity.
func (w *World) Player() (Entity, bool) {
	return w.Store.First(Select(KindPlayer, w.Config.Player.Tag))
}

// Facing returns the direction the player last moved in.
func (w *World) Facing() core.Intent {
	return w.eng.facing
}

// SetTravel tells the input mapper the current direction of travel, used to
// reject reversals.
func (w *World) SetTravel(dir core.Intent) {
	w.eng.input.SetTravel(dir)
}

// MovePlayer displaces the player, clamped to the player bounds, and updates
// the facing direction.
func (w *World) MovePlayer(delta core.Vec) (Entity, bool) {
	p, ok := w.Player()
	if !ok || delta.IsZero() {
		return p, ok
	}
	bounds := w.Config.Player.Bounds
	w.Store.Update(p.ID, func(e *Entity) {
		e.Pos = w.Field.Clamp(e.Pos.Add(delta), bounds)
	})
	w.eng.facing = facingOf(delta)
	p, _ = w.Store.Get(p.ID)
	return p, true
}

func facingOf(d core.Vec) core.Intent {
	if abs(d.X) >= abs(d.Y) {
		if d.X < 0 {
			return core.IntentLeft
		}
		return core.IntentRight
	}
	if d.Y < 0 {
		return core.IntentUp
	}
	return core.IntentDown
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Fire spawns a projectile from the player using the projectile config.
func (w *World) Fire() (Entity, bool) {
	p, ok := w.Player()
	if !ok {
		return Entity{}, false
	}
	pc := w.Config.Projectile
	tag := pc.Tag
	if tag == "" {
		tag = "shot"
	}
	if pc.Max > 0 && w.Store.CountOf(Select(KindProjectile, tag)) >= pc.Max {
		return Entity{}, false
	}

	pos := p.Pos.Add(pc.Offset)
	vel := pc.Velocity
	if pc.Aimed {
		dir := w.eng.facing.Delta()
		pos = p.Pos.Add(core.V(dir.X*p.Size.X/2, dir.Y*p.Size.Y/2))
		vel = dir.Scale(pc.Speed)
	}
	size := pc.Size
	if size.IsZero() {
		size = core.V(1, 1)
	}
	return w.Spawn(KindProjectile, pos, vel, WithTag(tag), WithSize(size)), true
}

var directions = [...]core.Intent{core.IntentUp, core.IntentDown, core.IntentLeft, core.IntentRight}

// ApplyDefaultIntents moves the player by discrete steps or held speed and
// fires on the fire intent.
func (w *World) ApplyDefaultIntents() {
	pc := w.Config.Player
	if !pc.Enabled {
		return
	}
	if w.Input.Move.IsDirection() && pc.Step > 0 {
		w.MovePlayer(w.Input.Move.Delta().Scale(pc.Step))
	}
	if pc.Speed > 0 {
		var d core.Vec
		for _, dir := range directions {
			if w.Input.Held.Has(dir) {
				d = d.Add(dir.Delta())
			}
		}
		w.MovePlayer(d.Scale(pc.Speed))
	}
	if w.Input.Actions.Has(core.IntentFire) {
		w.Fire()
	}
}
