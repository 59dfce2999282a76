package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/minigames/internal/core"
)

// Store holds the live entities of one engine in insertion order, with an
// id index for constant time lookups.
type Store struct {
	entities []Entity
	index    *intmap.Map[EntityID, int]
	nextID   EntityID
	now      uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entities: make([]Entity, 0, 64),
		index:    intmap.New[EntityID, int](64),
	}
}

// SetTick sets the tick stamped on newly spawned entities.
func (s *Store) SetTick(tick uint64) {
	s.now = tick
}

// Spawn appends a new live entity with a fresh id and returns a copy of it.
func (s *Store) Spawn(kind Kind, pos, vel core.Vec, opts ...SpawnOption) Entity {
	s.nextID++
	e := Entity{
		ID:    s.nextID,
		Kind:  kind,
		Pos:   pos,
		Prev:  pos,
		Vel:   vel,
		Size:  core.V(1, 1),
		Born:  s.now,
		Alive: true,
	}
	for _, opt := range opts {
		opt(&e)
	}
	s.index.Put(e.ID, len(s.entities))
	s.entities = append(s.entities, e)
	return e
}

// Advance moves every live entity by its velocity scaled by dt, recording
// the previous position for crossing tests.
func (s *Store) Advance(dt float64) {
	for i := range s.entities {
		e := &s.entities[i]
		if !e.Alive {
			continue
		}
		e.Prev = e.Pos
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	}
}

// RemoveWhere deletes every entity matching pred in a single pass and keeps
// the relative order of the survivors. It returns the number removed.
func (s *Store) RemoveWhere(pred func(Entity) bool) int {
	kept := s.entities[:0]
	removed := 0
	for _, e := range s.entities {
		if pred(e) {
			s.index.Del(e.ID)
			removed++
			continue
		}
		s.index.Put(e.ID, len(kept))
		kept = append(kept, e)
	}
	clear(s.entities[len(kept):])
	s.entities = kept
	return removed
}

// Remove deletes the entities with the given ids.
func (s *Store) Remove(ids ...EntityID) int {
	if len(ids) == 0 {
		return 0
	}
	doomed := make(map[EntityID]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}
	return s.RemoveWhere(func(e Entity) bool {
		_, ok := doomed[e.ID]
		return ok
	})
}

// Get returns a copy of the entity with the given id.
func (s *Store) Get(id EntityID) (Entity, bool) {
	i, ok := s.index.Get(id)
	if !ok {
		return Entity{}, false
	}
	return s.entities[i], true
}

// Update applies fn to the stored entity in place. It reports whether the
// entity exists. fn must not spawn or remove entities.
func (s *Store) Update(id EntityID, fn func(*Entity)) bool {
	i, ok := s.index.Get(id)
	if !ok {
		return false
	}
	fn(&s.entities[i])
	return true
}

// Each calls fn for every live entity in insertion order. fn may mutate the
// entity but must not spawn or remove entities.
func (s *Store) Each(fn func(*Entity)) {
	for i := range s.entities {
		if s.entities[i].Alive {
			fn(&s.entities[i])
		}
	}
}

// Find returns copies of the live entities matched by sel, in insertion order.
func (s *Store) Find(sel Selector) []Entity {
	var out []Entity
	for _, e := range s.entities {
		if e.Alive && sel.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity matched by sel.
func (s *Store) First(sel Selector) (Entity, bool) {
	for _, e := range s.entities {
		if e.Alive && sel.Match(e) {
			return e, true
		}
	}
	return Entity{}, false
}

// CountOf returns the number of live entities matched by sel.
func (s *Store) CountOf(sel Selector) int {
	n := 0
	for _, e := range s.entities {
		if e.Alive && sel.Match(e) {
			n++
		}
	}
	return n
}

// Len returns the number of stored entities.
func (s *Store) Len() int {
	return len(s.entities)
}

// Snapshot returns a copy of all entities; callers may not mutate the store through it.
func (s *Store) Snapshot() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Reset removes every entity and restarts id numbering for a new session.
func (s *Store) Reset() {
	clear(s.entities)
	s.entities = s.entities[:0]
	s.index.Clear()
	s.nextID = 0
	s.now = 0
}
