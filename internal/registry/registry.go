// Package registry provides a global catalog of games.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/minigames/internal/engine"
)

// ErrUnknownGame is returned for slugs that were never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Difficulty is the descriptive difficulty tag shown in the catalog.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Entry describes one catalog game.
type Entry struct {
	// Slug identifies the game in routes, CLI commands and score storage.
	Slug string

	// Name is the display title.
	Name string

	Difficulty  Difficulty
	Description string

	// Config returns a fresh copy of the game's default configuration.
	Config func() engine.Config

	// Rules returns fresh behaviour hooks; nil for data-only games.
	Rules func() engine.Rules
}

// Path returns the route of the game.
func (e Entry) Path() string {
	return "/games/" + e.Slug
}

// New builds an engine for this entry from cfg.
func (e Entry) New(cfg engine.Config, seed int64) (*engine.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("registry: %s: %w", e.Slug, err)
	}
	var rules engine.Rules
	if e.Rules != nil {
		rules = e.Rules()
	}
	return engine.New(cfg, rules, seed), nil
}

var (
	entries = make(map[string]Entry)
	mu      sync.RWMutex
)

// Register adds a game to the catalog.
// Typically called from a game's init() function.
// Panics if a game with the same slug is already registered or the entry
// has no configuration.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	if e.Slug == "" || e.Config == nil {
		panic(fmt.Sprintf("registry: incomplete entry %q", e.Slug))
	}
	if _, exists := entries[e.Slug]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", e.Slug))
	}
	entries[e.Slug] = e
}

// List returns all registered games, sorted by slug.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Slug < result[j].Slug
	})

	return result
}

// Lookup returns the entry for slug.
func Lookup(slug string) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[slug]
	if !ok {
		return Entry{}, fmt.Errorf("%w %q", ErrUnknownGame, slug)
	}
	return e, nil
}

// Create instantiates a game with its default configuration.
func Create(slug string, seed int64) (*engine.Engine, error) {
	e, err := Lookup(slug)
	if err != nil {
		return nil, err
	}
	return e.New(e.Config(), seed)
}

// Exists checks if a game with the given slug is registered.
func Exists(slug string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[slug]
	return ok
}

// reset empties the catalog; tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(entries)
}
