// Package arena provides stable, non-reusable handles into append-only
// storage. It replaces the parent-pointer and shared-mutable-graph
// patterns a tree-shaped IR would otherwise need: every node lives in an
// Arena[T] and is referred to everywhere else by its Handle[T], a small
// comparable value that stays valid and stays pointing at the same node
// for the arena's whole lifetime.
//
// ArenaMap[T, V] is the companion side table: a map from Handle[T] to V,
// used to attach data computed by a later pass (the type of an
// expression, say) without mutating the node it describes.
package arena

import (
	"fmt"
	"iter"

	"github.com/orizon-lang/walrus-infer/internal/errors"
)

// Handle identifies a T stored in an Arena[T]. Handles are totally
// ordered by allocation order and never reused, even if the arena grows
// far beyond any realistic program: 32 bits of index is a soft limit on
// how many nodes a single module may contain, not a correctness concern.
type Handle[T any] uint32

// Index returns the handle's zero-based position in its arena.
func (h Handle[T]) Index() int { return int(h) }

// Arena is append-only storage for T, addressed by Handle[T].
type Arena[T any] struct {
	items []T
}

// Alloc appends v and returns the handle that now identifies it.
func (a *Arena[T]) Alloc(v T) Handle[T] {
	h := Handle[T](len(a.items))
	a.items = append(a.items, v)
	return h
}

// Get dereferences h. It panics with an errors.InvalidHandle error if
// h's index is out of range for this arena — that is a caller bug, never
// a consequence of the program text under inference. A handle from
// another arena whose index happens to be in range is not detected.
func (a *Arena[T]) Get(h Handle[T]) T {
	i := h.Index()
	if i < 0 || i >= len(a.items) {
		panic(errors.InvalidHandle(i, len(a.items)))
	}
	return a.items[i]
}

// Set overwrites the value at h in place.
func (a *Arena[T]) Set(h Handle[T], v T) {
	i := h.Index()
	if i < 0 || i >= len(a.items) {
		panic(errors.InvalidHandle(i, len(a.items)))
	}
	a.items[i] = v
}

// Len returns the number of allocated items.
func (a *Arena[T]) Len() int { return len(a.items) }

// All iterates every (handle, value) pair in allocation order.
func (a *Arena[T]) All() iter.Seq2[Handle[T], T] {
	return func(yield func(Handle[T], T) bool) {
		for i, v := range a.items {
			if !yield(Handle[T](i), v) {
				return
			}
		}
	}
}

// ArenaMap is a side table keyed by Handle[T], populated after the arena
// it indexes has been frozen by a prior pass. Unlike Arena it allows
// sparse population: a slot with no Insert call is simply absent.
type ArenaMap[T any, V any] struct {
	slots []slot[V]
}

type slot[V any] struct {
	value V
	ok    bool
}

// Insert records v for h, growing the backing storage as needed.
func (m *ArenaMap[T, V]) Insert(h Handle[T], v V) {
	i := h.Index()
	if i >= len(m.slots) {
		grown := make([]slot[V], i+1)
		copy(grown, m.slots)
		m.slots = grown
	}
	m.slots[i] = slot[V]{value: v, ok: true}
}

// Get returns the value recorded for h, if any.
func (m *ArenaMap[T, V]) Get(h Handle[T]) (V, bool) {
	i := h.Index()
	if i < 0 || i >= len(m.slots) || !m.slots[i].ok {
		var zero V
		return zero, false
	}
	return m.slots[i].value, true
}

// MustGet returns the value recorded for h, panicking if absent. Used
// where a prior pass is known to have populated every handle before this
// one runs (resolved type annotations feeding field lookups, say).
func (m *ArenaMap[T, V]) MustGet(h Handle[T]) V {
	v, ok := m.Get(h)
	if !ok {
		panic(fmt.Sprintf("arena: ArenaMap has no entry for handle %d", h.Index()))
	}
	return v
}

// Len returns the number of populated slots, not the size of the backing
// storage.
func (m *ArenaMap[T, V]) Len() int {
	n := 0
	for _, s := range m.slots {
		if s.ok {
			n++
		}
	}
	return n
}

// All iterates every populated (handle, value) pair in handle order.
func (m *ArenaMap[T, V]) All() iter.Seq2[Handle[T], V] {
	return func(yield func(Handle[T], V) bool) {
		for i, s := range m.slots {
			if !s.ok {
				continue
			}
			if !yield(Handle[T](i), s.value) {
				return
			}
		}
	}
}
