// Package engine is the parameterized arcade simulation core. One Engine runs
// one game session: it owns the entity store, the input mapper and the
// session state, and advances them through a fixed seven-stage pipeline.
// Games are described as data (Config) plus optional behaviour hooks (Rules).
package engine

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/minigames/internal/core"
)

// EntityID identifies an entity within a session. IDs increase monotonically
// and are never recycled while the session lasts.
type EntityID uint64

// Kind is the coarse role of an entity in collision and spawn tables.
type Kind uint8

const (
	KindObstacle Kind = iota
	KindPlayer
	KindProjectile
	KindCollectible
)

var kindNames = [...]string{
	KindObstacle:    "obstacle",
	KindPlayer:      "player",
	KindProjectile:  "projectile",
	KindCollectible: "collectible",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// UnmarshalText lets kinds be written by name in YAML tables.
func (k *Kind) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range kindNames {
		if name == want {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("engine: unknown entity kind %q", string(text))
}

// MarshalText returns the kind name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entity is one simulated object. Pos is the center of the entity.
type Entity struct {
	ID      EntityID
	Kind    Kind
	Tag     string
	Pos     core.Vec
	Prev    core.Vec // position before the last advance
	Vel     core.Vec // displacement per tick
	Size    core.Vec
	Reward  int
	HP      int
	Born    uint64 // tick of creation
	Expires uint64 // tick at which the entity is pruned; 0 means never
	Alive   bool
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Box {
	return core.BoxAt(e.Pos, e.Size)
}

// Cell returns the grid cell of the entity for grid games.
func (e Entity) Cell() (int, int) {
	return int(e.Pos.X), int(e.Pos.Y)
}

// SpawnOption customizes an entity at creation.
type SpawnOption func(*Entity)

// WithTag sets the entity tag.
func WithTag(tag string) SpawnOption {
	return func(e *Entity) { e.Tag = tag }
}

// WithSize sets the entity size.
func WithSize(size core.Vec) SpawnOption {
	return func(e *Entity) { e.Size = size }
}

// WithReward sets the score awarded when the entity is destroyed or collected.
func WithReward(points int) SpawnOption {
	return func(e *Entity) { e.Reward = points }
}

// WithHP sets hit points.
func WithHP(hp int) SpawnOption {
	return func(e *Entity) { e.HP = hp }
}

// WithTTL makes the entity expire after the given number of ticks.
func WithTTL(ticks int) SpawnOption {
	return func(e *Entity) {
		if ticks > 0 {
			e.Expires = e.Born + uint64(ticks)
		}
	}
}

// Selector matches entities by kind and, when Tag is set, by tag.
type Selector struct {
	Kind Kind   `yaml:"kind"`
	Tag  string `yaml:"tag"`
}

// Select is shorthand for a Selector literal.
func Select(kind Kind, tag string) Selector {
	return Selector{Kind: kind, Tag: tag}
}

// Match reports whether e is selected.
func (s Selector) Match(e Entity) bool {
	if e.Kind != s.Kind {
		return false
	}
	return s.Tag == "" || s.Tag == e.Tag
}
