// Package sizeclass implements the exact-size allocation cache spec.md
// §4.2 describes: a mapping from byte size to a stack of previously-freed
// blocks, consulted before falling back to an arena.
//
// The retired-node bookkeeping in tur/pkg/cowbtree/epoch.go
// (map[uint64][]retiredNode, keyed by epoch) is the closest teacher
// precedent for "a map from a scalar key to a stack of reusable nodes";
// this adapts that shape to spec.md's requirement (keyed by exact size,
// reused immediately rather than after an epoch grace period, since the
// core has no concurrent readers to protect).
package sizeclass

import "exptree/internal/arena"

// Cache recycles *T blocks keyed by an exact size computed by the caller
// (the caller's node_size(kind, len), not sizeof(T) — T is the storage
// shape, multiple logical sizes share it). Release is total: it never
// fails to accept a block.
type Cache[T any] struct {
	arena        *arena.Arena[T]
	classes      map[int][]*T
	bytesInCache int
}

// New creates a Cache that falls back to a's allocator on a miss.
func New[T any](a *arena.Arena[T]) *Cache[T] {
	return &Cache[T]{
		arena:   a,
		classes: make(map[int][]*T),
	}
}

// Take returns a block for the given exact size: a cached block if one is
// available, otherwise a fresh one from the arena. The returned block's
// previous contents (if recycled) are not cleared; callers must
// overwrite every field they rely on.
func (c *Cache[T]) Take(size int) *T {
	if stack := c.classes[size]; len(stack) > 0 {
		n := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		c.classes[size] = stack[:len(stack)-1]
		c.bytesInCache -= size
		return n
	}
	return c.arena.Alloc()
}

// Release pushes block onto the free list for size, making it available to
// a future Take of the same size. It has no error result; growing the
// size class's stack is an ordinary append, and a failed allocation there
// is a fatal Go runtime error rather than a case in which the block is
// dropped.
func (c *Cache[T]) Release(size int, block *T) {
	c.classes[size] = append(c.classes[size], block)
	c.bytesInCache += size
}

// BytesInCache returns the sum of sizes of every currently-cached block.
func (c *Cache[T]) BytesInCache() int { return c.bytesInCache }

// Reset drops every cached block and resets the backing arena, bulk
// releasing everything allocated through this cache.
func (c *Cache[T]) Reset() {
	c.classes = make(map[int][]*T)
	c.bytesInCache = 0
	c.arena.Reset()
}
