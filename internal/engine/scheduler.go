package engine

import (
	"sync"
	"time"
)

// RunState is the lifecycle state of a Scheduler.
type RunState uint8

const (
	StateIdle RunState = iota
	StateRunning
	StatePaused
	StateTerminal
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Ticker is the repeating timer behind a Scheduler.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// TickerFactory creates a Ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type clockTicker struct {
	t *time.Ticker
}

func (c clockTicker) C() <-chan time.Time { return c.t.C }
func (c clockTicker) Reset(d time.Duration) { c.t.Reset(d) }
func (c clockTicker) Stop()                 { c.t.Stop() }

// NewClockTicker wraps time.Ticker.
func NewClockTicker(d time.Duration) Ticker {
	return clockTicker{t: time.NewTicker(d)}
}

const minPeriod = time.Millisecond

// Scheduler drives a tick callback at a fixed period. It owns at most one
// timer goroutine; arming a new timer always cancels the old one first.
type Scheduler struct {
	mu      sync.Mutex
	state   RunState
	period  time.Duration
	factory TickerFactory
	ticker  Ticker
	stop    chan struct{}
	done    chan struct{}
	gen     uint64
}

// NewScheduler creates an idle scheduler. A nil factory uses wall-clock tickers.
func NewScheduler(factory TickerFactory) *Scheduler {
	if factory == nil {
		factory = NewClockTicker
	}
	return &Scheduler{factory: factory}
}

// Start cancels any armed timer, waits for it to stop, and arms a new one.
// fire runs once per period while Running; returning false moves the
// scheduler to Terminal and releases the timer.
//
// fire runs on the scheduler goroutine and must not call Start or Cancel.
func (s *Scheduler) Start(period time.Duration, fire func() bool) {
	s.Cancel()

	period = max(period, minPeriod)
	t := s.factory(period)
	stop := make(chan struct{})
	done := make(chan struct{})

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.ticker = t
	s.stop = stop
	s.done = done
	s.period = period
	s.state = StateRunning
	s.mu.Unlock()

	go s.loop(gen, t, stop, done, fire)
}

func (s *Scheduler) loop(gen uint64, t Ticker, stop, done chan struct{}, fire func() bool) {
	defer close(done)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !s.firing(gen) {
				continue
			}
			if fire() {
				continue
			}
			s.mu.Lock()
			if s.gen == gen {
				s.state = StateTerminal
				s.ticker = nil
				s.stop = nil
				s.done = nil
			}
			s.mu.Unlock()
			return
		}
	}
}

func (s *Scheduler) firing(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen == gen && s.state == StateRunning
}

// Cancel stops the armed timer and returns once its goroutine has exited,
// so no tick can fire after Cancel returns. The scheduler becomes Idle.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done, s.ticker = nil, nil, nil
	s.gen++
	s.state = StateIdle
	s.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

// Pause stops firing until Resume. It is a no-op unless Running.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning {
		return
	}
	s.state = StatePaused
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

// Resume continues a paused scheduler.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePaused {
		return
	}
	s.state = StateRunning
	if s.ticker != nil {
		s.ticker.Reset(s.period)
	}
}

// SetPeriod changes the tick period of the armed timer.
func (s *Scheduler) SetPeriod(d time.Duration) {
	d = max(d, minPeriod)
	s.mu.Lock()
	defer s.mu.Unlock()
	if d == s.period {
		return
	}
	s.period = d
	if s.ticker != nil && s.state == StateRunning {
		s.ticker.Reset(d)
	}
}

// State returns the current lifecycle state.
func (s *Scheduler) State() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Period returns the current tick period.
func (s *Scheduler) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}
