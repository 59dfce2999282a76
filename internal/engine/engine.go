package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
)

// Engine runs one game session. It is not safe for concurrent use; Runner
// serializes access when a scheduler drives it.
type Engine struct {
	cfg     Config
	rules   Rules
	store   *Store
	session Session
	input   *InputMapper
	rng     *rand.Rand
	seed    int64
	facing  core.Intent
	world   World
	stats   []string

	intents  IntentHandler
	mover    Mover
	spawner  Spawner
	collider Collider
	judge    Judge
	reporter Reporter
}

// New creates an engine for cfg and resets it. rules may be nil for games
// described entirely by data.
func New(cfg Config, rules Rules, seed int64) *Engine {
	e := &Engine{
		cfg:     cfg,
		rules:   rules,
		store:   NewStore(),
		session: NewSession(cfg),
		input:   NewInputMapper(cfg.Keymap, cfg.Mode, cfg.RejectReversal),
		seed:    seed,
	}
	if rules != nil {
		e.intents, _ = rules.(IntentHandler)
		e.mover, _ = rules.(Mover)
		e.spawner, _ = rules.(Spawner)
		e.collider, _ = rules.(Collider)
		e.judge, _ = rules.(Judge)
		e.reporter, _ = rules.(Reporter)
	}
	e.world = World{
		Store:   e.store,
		Session: &e.session,
		Config:  &e.cfg,
		Field:   cfg.Field,
		eng:     e,
	}
	e.Reset()
	return e
}

// Reset starts a new session: the store is emptied, session values return
// to their starting point, input is dropped and the RNG is reseeded. The
// high score survives. Resetting twice yields the same state as once.
func (e *Engine) Reset() {
	e.store.Reset()
	e.session.Reset()
	e.input.Reset()
	e.rng = rand.New(rand.NewSource(e.seed))
	e.world.Rand = e.rng
	e.facing = core.IntentUp

	if pc := e.cfg.Player; pc.Enabled {
		size := pc.Size
		if size.IsZero() {
			size = core.V(1, 1)
		}
		e.store.Spawn(KindPlayer, pc.Start, core.Vec{}, WithTag(pc.Tag), WithSize(size))
	}

	w := e.begin(Intents{})
	if e.rules != nil {
		e.rules.Setup(w)
	}
	e.stats = e.report(w)
}

// SetSeed changes the seed used by the next Reset.
func (e *Engine) SetSeed(seed int64) {
	e.seed = seed
}

// Seed returns the current seed.
func (e *Engine) Seed() int64 {
	return e.seed
}

// SetHighScore raises the high score, e.g. from an earlier session.
func (e *Engine) SetHighScore(score int) {
	e.session.HighScore = max(e.session.HighScore, score)
}

// KeyDown feeds a key press to the input mapper. Pause toggles at once.
// The returned intent is the control intent the key maps to, if any, so a
// host can handle restart. Keys are ignored while paused or terminal,
// except for pause and restart.
func (e *Engine) KeyDown(key string) core.Intent {
	if e.session.IsTerminal() || e.session.Paused {
		i, ok := e.cfg.Keymap.Lookup(key)
		if !ok || !i.IsControl() {
			return core.IntentNone
		}
		if i == core.IntentPause {
			e.TogglePause()
		}
		return i
	}

	ctrl := e.input.OnKeyDown(key)
	if ctrl == core.IntentPause {
		e.TogglePause()
	}
	return ctrl
}

// KeyUp releases a held key.
func (e *Engine) KeyUp(key string) {
	e.input.OnKeyUp(key)
}

// Click queues a pointer click on a field cell.
func (e *Engine) Click(cell int) {
	if e.session.IsTerminal() || e.session.Paused {
		return
	}
	e.input.Click(cell)
}

// Bound reports whether the game's keymap uses key.
func (e *Engine) Bound(key string) bool {
	return e.input.Bound(key)
}

// TogglePause flips the pause flag and returns the new value. Terminal
// sessions cannot be paused.
func (e *Engine) TogglePause() bool {
	if e.session.IsTerminal() {
		return false
	}
	e.session.Paused = !e.session.Paused
	return e.session.Paused
}

// Session returns a copy of the session state.
func (e *Engine) Session() Session {
	return e.session
}

// Store exposes the entity store, mainly for scenario setup in tests.
func (e *Engine) Store() *Store {
	return e.store
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Period returns the tick period for the current level.
func (e *Engine) Period() time.Duration {
	return e.cfg.PeriodFor(e.session.Level)
}

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	Field    Field
	Entities []Entity
	Session  Session
	Stats    []string
	Period   time.Duration
	Facing   core.Intent

	glyphs map[string]core.Glyph
}

// Glyph returns how an entity should be drawn.
func (s Snapshot) Glyph(e Entity) core.Glyph {
	return Config{Glyphs: s.glyphs}.Glyph(e)
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	stats := make([]string, len(e.stats))
	copy(stats, e.stats)
	return Snapshot{
		Field:    e.cfg.Field,
		Entities: e.store.Snapshot(),
		Session:  e.session,
		Stats:    stats,
		Period:   e.Period(),
		Facing:   e.facing,
		glyphs:   e.cfg.Glyphs,
	}
}

func (e *Engine) begin(in Intents) *World {
	e.world.reset(e.session.Tick, in)
	return &e.world
}

func (e *Engine) report(w *World) []string {
	if e.reporter == nil {
		return nil
	}
	return e.reporter.Stats(w)
}
