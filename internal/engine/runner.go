package engine

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/minigames/internal/core"
)

// Result summarizes a finished session.
type Result struct {
	SessionID uuid.UUID
	Game      string
	Score     int
	Level     int
	HighScore int
	Outcome   string
	Ticks     uint64
	Duration  time.Duration
}

// Runner drives one Engine from a Scheduler and publishes a Snapshot after
// every tick and every input event. All engine access goes through the
// runner mutex, so ticks and input are strictly serialized.
type Runner struct {
	mu      sync.Mutex
	engine  *Engine
	sched   *Scheduler
	game    string
	session uuid.UUID
	started time.Time
	level   int
	stopped bool

	frames     chan Snapshot
	done       chan struct{}
	stopOnce   sync.Once
	logger     *log.Logger
	seeds      func() int64
	onTerminal []func(Result)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner logger.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTickerFactory replaces the wall-clock ticker, mainly for tests.
func WithTickerFactory(f TickerFactory) RunnerOption {
	return func(r *Runner) { r.sched = NewScheduler(f) }
}

// WithSeedSource draws a fresh seed for every session. Without it every
// session replays the engine's seed.
func WithSeedSource(f func() int64) RunnerOption {
	return func(r *Runner) { r.seeds = f }
}

// OnTerminal registers a callback for finished sessions. Callbacks run on the
// scheduler goroutine and must not call Start or Stop.
func OnTerminal(fn func(Result)) RunnerOption {
	return func(r *Runner) { r.onTerminal = append(r.onTerminal, fn) }
}

// NewRunner wraps an engine. The game name is used for logs and results.
func NewRunner(game string, e *Engine, opts ...RunnerOption) *Runner {
	r := &Runner{
		engine: e,
		sched:  NewScheduler(nil),
		game:   game,
		frames: make(chan Snapshot, 1),
		done:   make(chan struct{}),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins a new session. Any armed timer is cancelled and waited for
// before the engine is reset and a new timer is armed.
func (r *Runner) Start() {
	r.sched.Cancel()

	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	if r.seeds != nil {
		r.engine.SetSeed(r.seeds())
	}
	r.engine.Reset()
	r.session = uuid.New()
	r.started = time.Now()
	r.level = r.engine.Session().Level
	period := r.engine.Period()
	id := r.session
	r.publish()
	r.mu.Unlock()

	r.logger.Info("session started", "game", r.game, "session", id, "period", period)
	r.sched.Start(period, r.fire)
}

func (r *Runner) fire() bool {
	r.mu.Lock()
	running := r.engine.Step()
	s := r.engine.Session()
	if s.Level != r.level {
		r.level = s.Level
		r.sched.SetPeriod(r.engine.Period())
		r.logger.Debug("level up", "game", r.game, "level", s.Level, "period", r.engine.Period())
	}
	r.publish()

	var res Result
	if !running {
		res = Result{
			SessionID: r.session,
			Game:      r.game,
			Score:     s.Score,
			Level:     s.Level,
			HighScore: s.HighScore,
			Outcome:   s.Outcome(),
			Ticks:     s.Tick,
			Duration:  time.Since(r.started),
		}
	}
	r.mu.Unlock()

	if running {
		return true
	}
	r.logger.Info("session ended",
		"game", res.Game, "session", res.SessionID, "outcome", res.Outcome,
		"score", res.Score, "high_score", res.HighScore, "ticks", res.Ticks)
	for _, fn := range r.onTerminal {
		fn(res)
	}
	return false
}

// KeyDown forwards a key press. Pause and restart act immediately.
func (r *Runner) KeyDown(key string) {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	ctrl := r.engine.KeyDown(key)
	paused := r.engine.Session().Paused
	r.publish()
	r.mu.Unlock()

	switch ctrl {
	case core.IntentPause:
		if paused {
			r.sched.Pause()
		} else {
			r.sched.Resume()
		}
	case core.IntentRestart:
		r.Start()
	}
}

// KeyUp forwards a key release.
func (r *Runner) KeyUp(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engine.KeyUp(key)
}

// Click forwards a click on a field cell.
func (r *Runner) Click(cell int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engine.Click(cell)
}

// Bound reports whether the game uses key.
func (r *Runner) Bound(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.engine.Bound(key)
}

// SetHighScore seeds the high score from earlier sessions.
func (r *Runner) SetHighScore(score int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engine.SetHighScore(score)
}

// Snapshot returns the current state.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.engine.Snapshot()
}

// State returns the scheduler state.
func (r *Runner) State() RunState {
	return r.sched.State()
}

// Frames delivers the latest snapshot after each change. Slow readers only
// see the most recent frame.
func (r *Runner) Frames() <-chan Snapshot {
	return r.frames
}

// Done is closed by Stop.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Stop tears the runner down. No tick fires after Stop returns.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()

	r.sched.Cancel()
	r.stopOnce.Do(func() { close(r.done) })
}

// publish must be called with r.mu held.
func (r *Runner) publish() {
	s := r.engine.Snapshot()
	select {
	case <-r.frames:
	default:
	}
	select {
	case r.frames <- s:
	default:
	}
}
