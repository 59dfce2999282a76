package engine

import (
	"github.com/vovakirdan/minigames/internal/core"
)

// gaugeEpsilon absorbs float drift from fractional drains.
const gaugeEpsilon = 1e-9

// Step runs one tick of the update pipeline. It does nothing while paused or
// once the session is terminal. It reports whether the session is still
// running afterwards.
func (e *Engine) Step() bool {
	if e.session.IsTerminal() {
		return false
	}
	if e.session.Paused {
		return true
	}

	e.session.Tick++
	e.store.SetTick(e.session.Tick)
	w := e.begin(e.input.Drain())

	e.applyIntents(w)
	e.advance(w)
	e.spawn(w)
	e.collide(w)
	e.score(w)
	e.prune(w)
	e.terminal(w)

	return !e.session.IsTerminal()
}

func (e *Engine) applyIntents(w *World) {
	if e.intents != nil {
		e.intents.ApplyIntents(w)
	} else {
		w.ApplyDefaultIntents()
	}

	g := e.cfg.Gauge
	if g.DrainIntent != core.IntentNone && g.DrainPerIntent != 0 && w.Input.Has(g.DrainIntent) {
		w.AdjustGauge(-g.DrainPerIntent)
	}
}

func (e *Engine) advance(w *World) {
	if e.mover != nil {
		e.mover.Move(w)
	}
	e.store.Advance(1)
}

func (e *Engine) spawn(w *World) {
	level := e.session.Level
	for _, r := range e.cfg.Spawns {
		if r.MaxAlive > 0 && e.store.CountOf(Select(r.Kind, r.Tag)) >= r.MaxAlive {
			continue
		}
		if !w.Chance(r.ChanceAt(level)) {
			continue
		}
		opts := []SpawnOption{WithTag(r.Tag), WithReward(r.Reward), WithTTL(r.TTL)}
		if !r.Size.IsZero() {
			opts = append(opts, WithSize(r.Size))
		}
		e.store.Spawn(r.Kind, e.edgePosition(w, r), r.VelocityAt(level), opts...)
	}

	if e.spawner != nil {
		e.spawner.Spawn(w)
	}
}

// edgePosition picks a spawn point on the rule's edge: a random lane when
// lanes are listed, otherwise a uniform position inset by the margin.
func (e *Engine) edgePosition(w *World, r SpawnRule) core.Vec {
	f := e.cfg.Field
	extent := f.Width
	if r.Edge == EdgeLeft || r.Edge == EdgeRight {
		extent = f.Height
	}

	var along float64
	if len(r.Lanes) > 0 {
		along = r.Lanes[w.Rand.Intn(len(r.Lanes))]
	} else {
		along = w.Between(r.Margin, extent-r.Margin)
	}

	switch r.Edge {
	case EdgeBottom:
		return core.V(along, f.Height)
	case EdgeLeft:
		return core.V(0, along)
	case EdgeRight:
		return core.V(f.Width, along)
	default:
		return core.V(along, 0)
	}
}

// collide resolves the collision, boundary and pass-line tables against one
// snapshot of the store, then removes every doomed entity in a single pass.
// Entities created during this tick take part from the next tick on.
func (e *Engine) collide(w *World) {
	snap := e.store.Snapshot()
	doomed := make(map[EntityID]bool)
	eligible := func(x Entity) bool {
		return x.Alive && x.Born != w.Tick && !doomed[x.ID]
	}

	for _, r := range e.cfg.Collisions {
		for i := range snap {
			a := &snap[i]
			if !r.A.Match(*a) || !eligible(*a) {
				continue
			}
			for j := range snap {
				b := &snap[j]
				if i == j || !r.B.Match(*b) || !eligible(*b) || !r.Hit(*a, *b) {
					continue
				}
				if e.resolve(w, r, a, b, doomed) {
					break
				}
			}
		}
	}

	for _, r := range e.cfg.Boundaries {
		line := e.cfg.Field.Line(r.Edge, r.Offset)
		for _, x := range snap {
			if !r.Select.Match(x) || !x.Alive || doomed[x.ID] {
				continue
			}
			prev, cur := x.Prev.Y, x.Pos.Y
			if r.Edge == EdgeLeft || r.Edge == EdgeRight {
				prev, cur = x.Prev.X, x.Pos.X
			}
			if !core.Crossed(prev, cur, line) {
				continue
			}
			switch r.Effect {
			case EffectDamage:
				w.LoseLife()
			case EffectFatal:
				w.GameOver()
			case EffectWin:
				w.Win()
			}
			if r.Remove {
				doomed[x.ID] = true
			}
		}
	}

	for _, r := range e.cfg.PassLines {
		for _, x := range snap {
			if !r.Select.Match(x) || !x.Alive || doomed[x.ID] {
				continue
			}
			prev, cur := x.Prev.Y, x.Pos.Y
			if r.AxisX {
				prev, cur = x.Prev.X, x.Pos.X
			}
			if core.Crossed(prev, cur, r.At) {
				w.Award(r.Reward)
			}
		}
	}

	if len(doomed) > 0 {
		e.store.RemoveWhere(func(x Entity) bool { return doomed[x.ID] })
	}

	if e.collider != nil {
		e.collider.Collide(w)
	}
}

// resolve applies one collision and reports whether a is gone.
func (e *Engine) resolve(w *World, r CollisionRule, a, b *Entity, doomed map[EntityID]bool) bool {
	reward := r.Reward
	if reward == 0 {
		reward = b.Reward
	}

	switch r.Effect {
	case EffectDestroy:
		doomed[a.ID] = true
		if b.HP > 1 {
			b.HP--
			e.store.Update(b.ID, func(x *Entity) { x.HP = b.HP })
			return true
		}
		doomed[b.ID] = true
		w.Award(reward)
		return true
	case EffectDamage:
		doomed[b.ID] = true
		w.LoseLife()
	case EffectCollect:
		doomed[b.ID] = true
		w.Award(reward)
		w.AdjustGauge(r.Gauge)
	case EffectFatal:
		w.GameOver()
	case EffectBlock:
		doomed[a.ID] = true
		return true
	case EffectWin:
		w.Win()
	}
	return false
}

func (e *Engine) score(w *World) {
	s := &e.session
	s.RecordScore(w.points)
	if w.levels > 0 {
		s.Level += w.levels
	}

	for range w.lost {
		if !s.HasLives || !s.LoseLife() {
			w.lose = true
			break
		}
	}

	if s.HasGauge {
		g := e.cfg.Gauge
		s.Gauge = core.ClampF(s.Gauge-g.DrainPerTick+w.gauge, 0, g.Max)
		if s.Gauge < gaugeEpsilon {
			s.Gauge = 0
		}
	}
}

func (e *Engine) prune(w *World) {
	f := e.cfg.Field
	e.store.RemoveWhere(func(x Entity) bool {
		return !x.Alive || f.Escaped(x) || (x.Expires != 0 && w.Tick >= x.Expires)
	})
}

func (e *Engine) terminal(w *World) {
	if e.judge != nil {
		e.judge.Judge(w)
	}

	s := &e.session
	g := e.cfg.Gauge
	switch {
	case w.lose,
		s.HasLives && s.Lives <= 0,
		s.HasGauge && g.Fatal && s.Gauge <= 0:
		s.End(false)
	case w.win:
		s.End(true)
	}

	e.stats = e.report(w)
}
