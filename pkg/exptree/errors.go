package exptree

import "errors"

// ErrOutOfMemory is returned by Put when the storage layer cannot satisfy
// an allocation for a new node. The tree is left exactly as it was before
// the call.
var ErrOutOfMemory = errors.New("exptree: out of memory")

// errEmptyRoot is returned internally when a descent is attempted against
// an empty tree; callers never observe it, since Get and Put both check
// for an empty root before descending.
var errEmptyRoot = errors.New("exptree: root is empty")
