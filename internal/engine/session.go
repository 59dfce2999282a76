package engine

// Session is the observable summary of one playthrough. A Session value is
// plain data and can be copied freely into snapshots.
type Session struct {
	Score     int
	Level     int
	Lives     int
	HasLives  bool
	Gauge     float64
	HasGauge  bool
	Paused    bool
	GameOver  bool
	Won       bool
	HighScore int
	Tick      uint64

	startLives int
	startGauge float64
	levelEvery int
}

// NewSession creates a session configured from cfg and already reset.
func NewSession(cfg Config) Session {
	s := Session{
		HasLives:   cfg.Lives > 0,
		HasGauge:   cfg.Gauge.Max > 0,
		startLives: cfg.Lives,
		startGauge: cfg.Gauge.Start,
		levelEvery: cfg.Scoring.LevelEvery,
	}
	s.Reset()
	return s
}

// Reset restores the starting values. HighScore survives.
func (s *Session) Reset() {
	s.Score = 0
	s.Level = 1
	s.Lives = s.startLives
	s.Gauge = s.startGauge
	s.Paused = false
	s.GameOver = false
	s.Won = false
	s.Tick = 0
}

// IsTerminal reports whether the session has ended.
func (s Session) IsTerminal() bool {
	return s.GameOver || s.Won
}

// RecordScore adds delta to the score and raises the level when a threshold
// is crossed. It reports whether the level changed. Terminal sessions are
// not modified.
func (s *Session) RecordScore(delta int) bool {
	if s.IsTerminal() || delta == 0 {
		return false
	}
	s.Score = max(s.Score+delta, 0)
	if s.levelEvery <= 0 {
		return false
	}
	if want := 1 + s.Score/s.levelEvery; want > s.Level {
		s.Level = want
		return true
	}
	return false
}

// LoseLife removes one life and reports whether any remain.
func (s *Session) LoseLife() bool {
	if s.IsTerminal() {
		return false
	}
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives > 0
}

// End moves the session into its terminal state and folds the score into
// the high score. A session ends once; later calls are ignored.
func (s *Session) End(won bool) {
	if s.IsTerminal() {
		return
	}
	if won {
		s.Won = true
	} else {
		s.GameOver = true
	}
	s.Paused = false
	s.HighScore = max(s.HighScore, s.Score)
}

// Outcome describes how a terminal session ended.
func (s Session) Outcome() string {
	switch {
	case s.Won:
		return "won"
	case s.GameOver:
		return "lost"
	default:
		return "running"
	}
}
