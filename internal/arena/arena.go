// Package arena provides a generic, bump-pointer slab allocator.
//
// It is the allocator primitive spec.md §6 expects the tree engine's size
// class cache to consume: allocation in bulk, bound to one arena's
// lifetime, with individual blocks never freed back to the arena itself
// (only Reset releases everything at once).
//
// This is adapted from flier-goutil/pkg/arena's Arena/Recycled split: the
// teacher's arena hands out raw, unsafe.Pointer-typed byte blocks sized by
// a manual layout calculation. Node storage here is already generic over
// (K, V), so the same bump-allocation-from-slabs strategy is expressed
// with a Go type parameter instead of unsafe casts — see DESIGN.md.
package arena

const defaultSlabSize = 256

// Arena hands out zero-valued *T values from growable slabs. A zero Arena
// is empty and ready to use.
type Arena[T any] struct {
	slabSize  int
	slabs     [][]T
	next      int
	allocated int
}

// New creates an Arena that grows in slabs of slabSize elements. A
// non-positive slabSize falls back to a reasonable default.
func New[T any](slabSize int) *Arena[T] {
	if slabSize <= 0 {
		slabSize = defaultSlabSize
	}
	return &Arena[T]{slabSize: slabSize}
}

// Alloc returns a pointer to a fresh, zero-valued T. The pointer is valid
// until the next Reset.
func (a *Arena[T]) Alloc() *T {
	if a.slabSize <= 0 {
		a.slabSize = defaultSlabSize
	}
	if len(a.slabs) == 0 || a.next >= len(a.slabs[len(a.slabs)-1]) {
		a.slabs = append(a.slabs, make([]T, a.slabSize))
		a.next = 0
	}
	cur := a.slabs[len(a.slabs)-1]
	p := &cur[a.next]
	a.next++
	a.allocated++
	return p
}

// Allocated returns the total number of values handed out by Alloc since
// the arena was created or last Reset, including ones since recycled through a size-class cache built on top of
// this arena.
func (a *Arena[T]) Allocated() int { return a.allocated }

// Reset releases every slab. Pointers previously returned by Alloc must
// not be used afterward.
func (a *Arena[T]) Reset() {
	a.slabs = nil
	a.next = 0
	a.allocated = 0
}
