package tower

import "iter"

// ID is a stable entity handle. IDs are never reused within an arena.
type ID uint64

type slot[T any] struct {
	id      ID
	val     T
	removed bool
}

// Arena stores entities behind stable handles. Removal only marks an entry;
// Compact drops marked entries once per tick, so iteration never sees the
// collection shrink underneath it.
type Arena[T any] struct {
	slots []slot[T]
	index map[ID]int
	next  ID
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{index: make(map[ID]int), next: 1}
}

// Add stores v and returns its handle.
func (a *Arena[T]) Add(v T) ID {
	id := a.next
	a.next++
	a.index[id] = len(a.slots)
	a.slots = append(a.slots, slot[T]{id: id, val: v})
	return id
}

// Get returns the entity for id. Marked entries are not returned.
func (a *Arena[T]) Get(id ID) (T, bool) {
	i, ok := a.index[id]
	if !ok || a.slots[i].removed {
		var zero T
		return zero, false
	}
	return a.slots[i].val, true
}

// Remove marks id for removal. Unknown ids are ignored.
func (a *Arena[T]) Remove(id ID) {
	if i, ok := a.index[id]; ok {
		a.slots[i].removed = true
	}
}

// Removed reports whether id is marked or gone.
func (a *Arena[T]) Removed(id ID) bool {
	i, ok := a.index[id]
	return !ok || a.slots[i].removed
}

// All iterates live entries in insertion order. Entries added during the
// iteration are not visited; entries marked during it are skipped.
func (a *Arena[T]) All() iter.Seq2[ID, T] {
	return func(yield func(ID, T) bool) {
		n := len(a.slots)
		for i := 0; i < n; i++ {
			s := a.slots[i]
			if s.removed {
				continue
			}
			if !yield(s.id, s.val) {
				return
			}
		}
	}
}

// Len returns the number of live entries.
func (a *Arena[T]) Len() int {
	n := 0
	for _, s := range a.slots {
		if !s.removed {
			n++
		}
	}
	return n
}

// Compact drops marked entries and returns how many were dropped.
func (a *Arena[T]) Compact() int {
	kept := a.slots[:0]
	dropped := 0
	for _, s := range a.slots {
		if s.removed {
			delete(a.index, s.id)
			dropped++
			continue
		}
		a.index[s.id] = len(kept)
		kept = append(kept, s)
	}
	clear(a.slots[len(kept):])
	a.slots = kept
	return dropped
}

// Clear removes everything. Handle numbering continues.
func (a *Arena[T]) Clear() {
	clear(a.slots)
	a.slots = a.slots[:0]
	clear(a.index)
}
