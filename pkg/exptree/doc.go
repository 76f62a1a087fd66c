// Package exptree implements an in-memory, copy-on-write ordered
// key-value index whose internal nodes grow fanout as 2^height ("a search
// tree in which the maximum fanout per node grows as 2^height, keeping
// the tree shallow while bounding per-node work").
//
// Every Put duplicates the full root-to-leaf path rather than mutating a
// node in place: callers see either the pre-image or the post-image of a
// call, never a partially updated tree, since the new root is installed
// by a single assignment after every new node has been built. Internal
// nodes store their search keys in Eytzinger order (see pkg/eytzinger)
// so a descent is a branch-light sequential scan; the child pointers
// stay in natural (sorted) order.
//
// Freed node blocks are recycled through a per-exact-size free list
// (pkg/sizeclass) before falling back to a bump arena, and both layers
// are private to a single Tree: there is no synchronization, and no two
// goroutines may operate on the same Tree concurrently.
package exptree
