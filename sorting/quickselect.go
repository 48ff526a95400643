package sorting

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrBadRank indicates a Quickselect rank outside [0, len(s)).
var ErrBadRank = errors.New("sorting: rank out of range")

// Quickselect returns the element that would occupy index k in the sorted
// order of s, without fully sorting. The input is not modified.
//
// Algorithm Outline (Hoare's selection with median-of-three pivots):
//  1. Partition around the median of first/middle/last.
//  2. Recurse (iteratively) into the side containing rank k.
//
// Errors: ErrBadRank.
// Complexity: expected O(n) time, O(n) memory for the working copy.
func Quickselect[T cmp.Ordered](s []T, k int) (T, error) {
	var zero T
	if k < 0 || k >= len(s) {
		return zero, fmt.Errorf("Quickselect: k=%d len=%d: %w", k, len(s), ErrBadRank)
	}

	w := append([]T(nil), s...)
	lo, hi := 0, len(w)-1
	for lo < hi {
		p := partition(w, lo, hi)
		switch {
		case k == p:
			return w[k], nil
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}

	return w[k], nil
}

// partition places the median-of-three pivot into its final position within
// w[lo..hi] and returns that position (Lomuto scheme).
func partition[T cmp.Ordered](w []T, lo, hi int) int {
	mid := int(uint(lo+hi) >> 1)

	// Median of three: sort w[lo], w[mid], w[hi] into order, then use the
	// middle value as pivot by stashing it at hi.
	if w[mid] < w[lo] {
		w[mid], w[lo] = w[lo], w[mid]
	}
	if w[hi] < w[lo] {
		w[hi], w[lo] = w[lo], w[hi]
	}
	if w[hi] < w[mid] {
		w[hi], w[mid] = w[mid], w[hi]
	}
	w[mid], w[hi] = w[hi], w[mid]

	pivot := w[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if w[j] < pivot {
			w[i], w[j] = w[j], w[i]
			i++
		}
	}
	w[i], w[hi] = w[hi], w[i]

	return i
}
