package exptree

import (
	"cmp"

	"exptree/internal/arena"
	"exptree/pkg/sizeclass"
)

// storage is the node allocator C2 describes: every node is handed out by
// allocateLeaf/allocateInternal, which first consult a size-class cache
// before falling back to an arena bound to the owning tree's lifetime.
// free is total and pushes a node back onto its exact-size class.
type storage[K cmp.Ordered, V any] struct {
	cache *sizeclass.Cache[node[K, V]]

	// failIn implements the fault injection S8 requires: a negative value
	// disables injection; at zero, the next allocation fails with
	// ErrOutOfMemory instead of proceeding; a positive value is
	// decremented once per allocation attempt.
	failIn int
}

func newStorage[K cmp.Ordered, V any]() *storage[K, V] {
	return &storage[K, V]{
		cache:  sizeclass.New[node[K, V]](arena.New[node[K, V]](0)),
		failIn: -1,
	}
}

func (s *storage[K, V]) checkBudget() error {
	if s.failIn < 0 {
		return nil
	}
	if s.failIn == 0 {
		return ErrOutOfMemory
	}
	s.failIn--
	return nil
}

func (s *storage[K, V]) allocateLeaf(length int) (*node[K, V], error) {
	if err := s.checkBudget(); err != nil {
		return nil, err
	}
	n := s.cache.Take(leafSize[K, V](length))
	n.kind = leafKind
	n.height = 1
	n.children = nil
	if cap(n.keys) >= length {
		n.keys = n.keys[:length]
	} else {
		n.keys = make([]K, length)
	}
	if cap(n.vals) >= length {
		n.vals = n.vals[:length]
	} else {
		n.vals = make([]V, length)
	}
	return n, nil
}

func (s *storage[K, V]) allocateInternal(height, length int) (*node[K, V], error) {
	if err := s.checkBudget(); err != nil {
		return nil, err
	}
	n := s.cache.Take(internalSize[K, V](length))
	n.kind = internalKind
	n.height = height
	n.vals = nil
	if cap(n.keys) >= length {
		n.keys = n.keys[:length]
	} else {
		n.keys = make([]K, length)
	}
	if cap(n.children) >= length {
		n.children = n.children[:length]
	} else {
		n.children = make([]*node[K, V], length)
	}
	return n, nil
}

// free pushes n onto the cache bucket matching its current size. It never
// fails, matching the infallible free contract section 4.2 requires so
// that error-path unwinding cannot itself fail.
func (s *storage[K, V]) free(n *node[K, V]) {
	if n == nil {
		return
	}
	s.cache.Release(n.size(), n)
}

// freeAll releases every node in path, used to unwind a failed Put and to
// discard the superseded pre-image after a successful one.
func (s *storage[K, V]) freeAll(nodes []*node[K, V]) {
	for _, n := range nodes {
		s.free(n)
	}
}

func (s *storage[K, V]) bytesInCache() int { return s.cache.BytesInCache() }

// bytesUsed walks the live tree from root, as section 4.2 requires
// ("implementations must compute bytes_used by traversal, not by tracking
// deltas"), summing every reachable node's accounted size including
// internal branches (not just leaves).
func (s *storage[K, V]) bytesUsed(root *node[K, V]) int {
	if root == nil {
		return 0
	}
	total := root.size()
	if root.kind == internalKind {
		for _, c := range root.children {
			total += s.bytesUsed(c)
		}
	}
	return total
}

func (s *storage[K, V]) reset() {
	s.cache.Reset()
}
