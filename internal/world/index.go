package world

import "slices"

// index is a map that remembers insertion order.
type index[T any] struct {
	order []uint32
	items map[uint32]T
}

func newIndex[T any]() index[T] {
	return index[T]{items: make(map[uint32]T)}
}

func (ix *index[T]) put(id uint32, v T) {
	if _, ok := ix.items[id]; !ok {
		ix.order = append(ix.order, id)
	}
	ix.items[id] = v
}

func (ix *index[T]) get(id uint32) (T, bool) {
	v, ok := ix.items[id]
	return v, ok
}

func (ix *index[T]) delete(id uint32) bool {
	if _, ok := ix.items[id]; !ok {
		return false
	}
	delete(ix.items, id)
	if i := slices.Index(ix.order, id); i >= 0 {
		ix.order = slices.Delete(ix.order, i, i+1)
	}
	return true
}

func (ix *index[T]) len() int {
	return len(ix.items)
}

// values returns a snapshot in insertion order, so callers may mutate the
// index while iterating the result.
func (ix *index[T]) values() []T {
	out := make([]T, 0, len(ix.order))
	for _, id := range ix.order {
		out = append(out, ix.items[id])
	}
	return out
}
