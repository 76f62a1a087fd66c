// Package eytzinger converts between the linear (sorted) position of a key
// and its Eytzinger position inside an array laid out so that a binary
// search visits positions in breadth-first order starting at index 0.
//
// left(e) = 2e+1, right(e) = 2e+2, parent(e) = (e-1)/2. The conversions are
// exact for any length n, including a tree whose bottom layer is
// incomplete: an n-node Eytzinger array has exactly the shape of a binary
// heap with n elements, where only the last layer may be partially filled,
// left to right.
package eytzinger

import "math/bits"

// Left returns the Eytzinger index of e's left child.
func Left(e int) int { return 2*e + 1 }

// Right returns the Eytzinger index of e's right child.
func Right(e int) int { return 2*e + 2 }

// Parent returns the Eytzinger index of e's parent. Undefined for e == 0.
func Parent(e int) int { return (e - 1) / 2 }

// subtreeSizes splits an m-node heap-shaped subtree into the number of
// nodes in its left and right children. The subtree's own root is the one
// remaining node (m == left + 1 + right).
//
// A heap-shaped tree of m nodes is a perfect tree of height
// h = floor(log2(m+1)) with r = m - (2^h - 1) extra nodes filling the
// bottom layer from the left. The left child absorbs up to half of the
// bottom layer before the right child gets any.
func subtreeSizes(m int) (left, right int) {
	if m <= 0 {
		return 0, 0
	}
	h := bits.Len(uint(m+1)) - 1
	perfect := (1 << uint(h)) - 1
	r := m - perfect
	half := 1 << uint(h-1)
	leftExtra := r
	if leftExtra > half {
		leftExtra = half
	}
	left = half - 1 + leftExtra
	right = m - 1 - left
	return left, right
}

// FromLinear converts the sorted-order position i of a key, among n keys,
// to its Eytzinger position. Behavior is undefined for i >= n.
func FromLinear(i, n int) int {
	lo, m, cur := 0, n, 0
	for {
		left, _ := subtreeSizes(m)
		rootPos := lo + left
		switch {
		case i == rootPos:
			return cur
		case i < rootPos:
			cur = Left(cur)
			m = left
		default:
			lo = rootPos + 1
			cur = Right(cur)
			m = m - left - 1
		}
	}
}

// ToLinear converts an Eytzinger position e, among n keys, back to its
// sorted-order position. Behavior is undefined for e >= n.
func ToLinear(e, n int) int {
	lo, m, cur := 0, n, 0
	for cur != e {
		left, _ := subtreeSizes(m)
		l := Left(cur)
		if isDescendant(e, l) {
			cur, m = l, left
		} else {
			lo, cur, m = lo+left+1, Right(cur), m-left-1
		}
	}
	left, _ := subtreeSizes(m)
	return lo + left
}

// isDescendant reports whether x is anc or a descendant of anc, by walking
// up from x toward the root.
func isDescendant(x, anc int) bool {
	for x > anc {
		x = Parent(x)
	}
	return x == anc
}
