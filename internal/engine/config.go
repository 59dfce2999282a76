package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
)

// Config describes one game as data. Fields tagged for YAML can be
// overridden by tuning files; keymaps and glyphs are fixed in code.
type Config struct {
	TickPeriod time.Duration `yaml:"tick_period"`
	PeriodStep time.Duration `yaml:"period_step"` // period reduction per level
	MinPeriod  time.Duration `yaml:"min_period"`

	Field          Field     `yaml:"field"`
	Mode           InputMode `yaml:"-"`
	RejectReversal bool      `yaml:"-"`
	Keymap         Keymap    `yaml:"-"`

	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`

	Spawns     []SpawnRule     `yaml:"spawns"`
	Collisions []CollisionRule `yaml:"collisions"`
	Boundaries []BoundaryRule  `yaml:"boundaries"`
	PassLines  []PassRule      `yaml:"pass_lines"`

	Scoring ScoringConfig `yaml:"scoring"`
	Lives   int           `yaml:"lives"`
	Gauge   GaugeConfig   `yaml:"gauge"`

	Glyphs map[string]core.Glyph `yaml:"-"`
}

// PeriodFor returns the tick period at the given level.
func (c Config) PeriodFor(level int) time.Duration {
	p := c.TickPeriod - time.Duration(level-1)*c.PeriodStep
	if c.MinPeriod > 0 && p < c.MinPeriod {
		p = c.MinPeriod
	}
	return max(p, minPeriod)
}

// Validate reports configuration that would make the engine misbehave.
func (c Config) Validate() error {
	if c.TickPeriod <= 0 {
		return fmt.Errorf("engine: tick period must be positive, got %v", c.TickPeriod)
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("engine: field must have a positive size, got %vx%v", c.Field.Width, c.Field.Height)
	}
	for i, s := range c.Spawns {
		if s.Chance < 0 || s.Chance > 1 {
			return fmt.Errorf("engine: spawn rule %d: chance %v outside [0,1]", i, s.Chance)
		}
	}
	if c.Lives < 0 {
		return fmt.Errorf("engine: lives must not be negative, got %d", c.Lives)
	}
	return nil
}

// Glyph returns the glyph for an entity: by tag first, then by kind name.
func (c Config) Glyph(e Entity) core.Glyph {
	if g, ok := c.Glyphs[e.Tag]; ok && e.Tag != "" {
		return g
	}
	if g, ok := c.Glyphs[e.Kind.String()]; ok {
		return g
	}
	return core.Glyph{Rune: '#'}
}

// PlayerConfig places and moves the player entity.
type PlayerConfig struct {
	Enabled bool     `yaml:"enabled"`
	Tag     string   `yaml:"tag"`
	Start   core.Vec `yaml:"start"`
	Size    core.Vec `yaml:"size"`
	Step    float64  `yaml:"step"`  // distance per discrete move
	Speed   float64  `yaml:"speed"` // distance per tick while held
	Bounds  Bounds   `yaml:"bounds"`
}

// ProjectileConfig shapes the shots fired by the player.
type ProjectileConfig struct {
	Tag      string   `yaml:"tag"`
	Size     core.Vec `yaml:"size"`
	Offset   core.Vec `yaml:"offset"`
	Velocity core.Vec `yaml:"velocity"`
	Aimed    bool     `yaml:"aimed"` // fly along the player's facing at Speed
	Speed    float64  `yaml:"speed"`
	Max      int      `yaml:"max"` // live shots allowed at once, 0 for unlimited
}

// SpawnRule creates entities at a field edge with a per-tick probability.
type SpawnRule struct {
	Kind           Kind      `yaml:"kind"`
	Tag            string    `yaml:"tag"`
	Chance         float64   `yaml:"chance"`
	ChancePerLevel float64   `yaml:"chance_per_level"`
	Edge           Edge      `yaml:"edge"`
	Lanes          []float64 `yaml:"lanes"`  // fixed positions along the edge
	Margin         float64   `yaml:"margin"` // inset of random positions from the corners
	Size           core.Vec  `yaml:"size"`
	Velocity       core.Vec  `yaml:"velocity"`
	SpeedPerLevel  float64   `yaml:"speed_per_level"`
	Reward         int       `yaml:"reward"`
	TTL            int       `yaml:"ttl"`
	MaxAlive       int       `yaml:"max_alive"`
}

// ChanceAt returns the spawn probability at level, capped at 1.
func (r SpawnRule) ChanceAt(level int) float64 {
	return core.ClampF(r.Chance+float64(level-1)*r.ChancePerLevel, 0, 1)
}

// VelocityAt scales the velocity by the per-level speed gain.
func (r SpawnRule) VelocityAt(level int) core.Vec {
	if r.SpeedPerLevel == 0 || r.Velocity.IsZero() {
		return r.Velocity
	}
	return r.Velocity.Scale(1 + float64(level-1)*r.SpeedPerLevel)
}

// Effect is what a collision does.
type Effect uint8

const (
	// EffectDestroy removes both entities and awards the reward.
	EffectDestroy Effect = iota
	// EffectDamage costs a life and removes the hazard.
	EffectDamage
	// EffectCollect removes the collectible, awards the reward and refills the gauge.
	EffectCollect
	// EffectFatal ends the session.
	EffectFatal
	// EffectBlock removes the first entity only.
	EffectBlock
	// EffectWin ends the session as a win.
	EffectWin
)

var effectNames = [...]string{
	EffectDestroy: "destroy",
	EffectDamage:  "damage",
	EffectCollect: "collect",
	EffectFatal:   "fatal",
	EffectBlock:   "block",
	EffectWin:     "win",
}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("effect(%d)", uint8(e))
}

// UnmarshalText parses an effect name.
func (e *Effect) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range effectNames {
		if name == want {
			*e = Effect(i)
			return nil
		}
	}
	return fmt.Errorf("engine: unknown collision effect %q", string(text))
}

// MarshalText returns the effect name.
func (e Effect) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// CollisionRule pairs two selectors. With Tolerance > 0 two entities collide
// when their centers are closer than Tolerance on both axes; otherwise their
// boxes must overlap.
type CollisionRule struct {
	A         Selector `yaml:"a"`
	B         Selector `yaml:"b"`
	Tolerance float64  `yaml:"tolerance"`
	Effect    Effect   `yaml:"effect"`
	Reward    int      `yaml:"reward"` // overrides the entity reward when set
	Gauge     float64  `yaml:"gauge"`  // refill for EffectCollect
}

// Hit reports whether a and b collide under this rule.
func (r CollisionRule) Hit(a, b Entity) bool {
	if r.Tolerance > 0 {
		return core.Near(a.Pos, b.Pos, r.Tolerance)
	}
	return a.Box().Overlaps(b.Box())
}

// BoundaryRule fires when a selected entity crosses a line near an edge.
type BoundaryRule struct {
	Select Selector `yaml:"select"`
	Edge   Edge     `yaml:"edge"`
	Offset float64  `yaml:"offset"`
	Effect Effect   `yaml:"effect"` // EffectDamage or EffectFatal
	Remove bool     `yaml:"remove"`
}

// PassRule awards points when a selected entity crosses a line.
type PassRule struct {
	Select Selector `yaml:"select"`
	AxisX  bool     `yaml:"axis_x"` // line is x = At; otherwise y = At
	At     float64  `yaml:"at"`
	Reward int      `yaml:"reward"`
}

// ScoringConfig controls leveling.
type ScoringConfig struct {
	LevelEvery int `yaml:"level_every"` // points per level; 0 disables score leveling
}

// GaugeConfig describes a depleting resource such as fuel or a countdown.
type GaugeConfig struct {
	Name           string      `yaml:"name"`
	Start          float64     `yaml:"start"`
	Max            float64     `yaml:"max"`
	DrainPerTick   float64     `yaml:"drain_per_tick"`
	DrainIntent    core.Intent `yaml:"-"`
	DrainPerIntent float64     `yaml:"drain_per_intent"`
	Fatal          bool        `yaml:"fatal"`
}
