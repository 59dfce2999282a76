package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
)

// manualClock hands out tickers that only fire when a test says so.
type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (c *manualClock) factory(d time.Duration) Ticker {
	t := &manualTicker{c: make(chan time.Time), period: d}
	c.mu.Lock()
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()
	return t
}

func (c *manualClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

func (c *manualClock) last() *manualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickers[len(c.tickers)-1]
}

type manualTicker struct {
	c       chan time.Time
	mu      sync.Mutex
	period  time.Duration
	stopped bool
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Reset(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.period = d
	t.stopped = false
}

func (t *manualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *manualTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (t *manualTicker) Period() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period
}

// tick delivers one tick and fails if no loop receives it.
func (t *manualTicker) tick(tb testing.TB) {
	tb.Helper()
	select {
	case t.c <- time.Now():
	case <-time.After(time.Second):
		tb.Fatal("tick was not received")
	}
}

// script is a Rules implementation assembled from closures.
type script struct {
	setup func(w *World)
	spawn func(w *World)
	judge func(w *World)
}

func (s *script) Setup(w *World) {
	if s.setup != nil {
		s.setup(w)
	}
}

func (s *script) Spawn(w *World) {
	if s.spawn != nil {
		s.spawn(w)
	}
}

func (s *script) Judge(w *World) {
	if s.judge != nil {
		s.judge(w)
	}
}

func openField() Config {
	return Config{
		TickPeriod: 50 * time.Millisecond,
		Field:      Field{Width: 100, Height: 100},
		Keymap:     ArrowKeys().With(Keymap{" ": core.IntentFire}),
	}
}

func shooterConfig() Config {
	cfg := openField()
	cfg.Player = PlayerConfig{Enabled: true, Start: core.V(50, 90), Step: 5}
	cfg.Projectile = ProjectileConfig{Offset: core.V(0, -10), Velocity: core.V(0, -2)}
	cfg.Collisions = []CollisionRule{
		{A: Select(KindProjectile, ""), B: Select(KindObstacle, ""), Tolerance: 5, Effect: EffectDestroy, Reward: 10},
		{A: Select(KindPlayer, ""), B: Select(KindObstacle, ""), Tolerance: 5, Effect: EffectDamage},
	}
	return cfg
}
