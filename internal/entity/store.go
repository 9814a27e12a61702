package entity

import (
	"fmt"
	"iter"
)

// Handle identifies one entity in a Store. It encodes a generation so a
// handle to a removed entity never aliases whatever reuses its slot.
// The zero Handle never refers to an entity.
type Handle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether the handle is the zero value.
func (h Handle) IsZero() bool {
	return h.generation == 0
}

// String renders the handle for debugging purposes.
func (h Handle) String() string {
	return fmt.Sprintf("Handle(%d:%d)", h.index, h.generation)
}

type slot struct {
	generation uint32
	alive      bool
	entity     Entity
}

// Store owns entities and hands out generation-safe handles.
// It is not safe for concurrent use; the frame loop is single-threaded.
type Store struct {
	slots []slot
	free  []uint32
	live  int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Insert adds an entity and returns its handle.
func (s *Store) Insert(e Entity) Handle {
	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}

	sl := &s.slots[index]
	sl.generation++
	sl.alive = true
	sl.entity = e
	s.live++

	return Handle{index: index, generation: sl.generation}
}

// Get returns a pointer to the entity for in-place mutation, or nil and
// false when the handle is stale or was never issued by this store.
// The pointer is valid until the next Insert.
func (s *Store) Get(h Handle) (*Entity, bool) {
	if !s.Contains(h) {
		return nil, false
	}
	return &s.slots[h.index].entity, true
}

// Contains reports whether h refers to a live entity.
func (s *Store) Contains(h Handle) bool {
	if h.IsZero() || int(h.index) >= len(s.slots) {
		return false
	}
	sl := &s.slots[h.index]
	return sl.alive && sl.generation == h.generation
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return s.live
}

// Retain calls keep once for every live entity, which may mutate it.
// Entities for which keep returns false are removed after the whole pass,
// so every call sees the same set of live entities. Retain is the only way
// entities leave the store. keep must not insert into the store.
func (s *Store) Retain(keep func(Handle, *Entity) bool) {
	var dead []uint32
	n := len(s.slots)
	for i := 0; i < n; i++ {
		sl := &s.slots[i]
		if !sl.alive {
			continue
		}
		if !keep(Handle{index: uint32(i), generation: sl.generation}, &sl.entity) {
			dead = append(dead, uint32(i))
		}
	}

	for _, i := range dead {
		sl := &s.slots[i]
		sl.alive = false
		sl.entity = Entity{}
		s.free = append(s.free, i)
		s.live--
	}
}

// Values yields a copy of every live entity. Each call starts a fresh pass.
// Order is unspecified.
func (s *Store) Values() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := range s.slots {
			if !s.slots[i].alive {
				continue
			}
			if !yield(s.slots[i].entity) {
				return
			}
		}
	}
}

// All yields every live entity with its handle.
func (s *Store) All() iter.Seq2[Handle, Entity] {
	return func(yield func(Handle, Entity) bool) {
		for i := range s.slots {
			sl := &s.slots[i]
			if !sl.alive {
				continue
			}
			if !yield(Handle{index: uint32(i), generation: sl.generation}, sl.entity) {
				return
			}
		}
	}
}
