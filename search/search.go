package search

import (
	"cmp"
	"math"
)

// Number is the constraint for value-interpolating searches: arithmetic on
// keys must be meaningful, not just ordering.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Binary locates target in the ascending slice s.
// Returns the index of some occurrence and whether it was found.
//
// Complexity: O(log n).
func Binary[T cmp.Ordered](s []T, target T) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case s[mid] == target:
			return mid, true
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return 0, false
}

// Exponential gallops from the front — checking indices 1, 2, 4, 8, … —
// until it overshoots, then binary-searches the bracketed range.
//
// Complexity: O(log i), where i is the index of the target.
func Exponential[T cmp.Ordered](s []T, target T) (int, bool) {
	n := len(s)
	if n == 0 {
		return 0, false
	}
	if s[0] == target {
		return 0, true
	}

	bound := 1
	for bound < n && s[bound] < target {
		bound *= 2
	}
	lo := bound/2 + 1
	hi := bound + 1
	if hi > n {
		hi = n
	}

	idx, ok := Binary(s[lo:hi], target)
	if !ok {
		return 0, false
	}

	return lo + idx, true
}

// Jump probes every ⌊√n⌋-th element, then scans linearly inside the block
// that brackets the target.
//
// Complexity: O(√n).
func Jump[T cmp.Ordered](s []T, target T) (int, bool) {
	n := len(s)
	if n == 0 {
		return 0, false
	}

	step := int(math.Sqrt(float64(n)))
	if step < 1 {
		step = 1
	}

	// Find the block whose last element is >= target.
	prev := 0
	cur := step
	for cur < n && s[cur-1] < target {
		prev = cur
		cur += step
	}

	end := cur
	if end > n {
		end = n
	}
	for i := prev; i < end; i++ {
		if s[i] == target {
			return i, true
		}
		if s[i] > target {
			break
		}
	}

	return 0, false
}

// Interpolation estimates the target's position by linear interpolation
// between the range endpoints, the way one opens a phone book.
// Requires ascending numeric keys.
//
// Complexity: O(log log n) on uniformly distributed keys, O(n) worst case.
func Interpolation[T Number](s []T, target T) (int, bool) {
	lo, hi := 0, len(s)-1
	for lo <= hi && target >= s[lo] && target <= s[hi] {
		if s[lo] == s[hi] {
			if s[lo] == target {
				return lo, true
			}
			break
		}

		// Position estimate; the float round-trip avoids integer overflow
		// in (target-s[lo])·(hi-lo) for wide key ranges.
		frac := float64(target-s[lo]) / float64(s[hi]-s[lo])
		pos := lo + int(frac*float64(hi-lo))
		if pos < lo {
			pos = lo
		}
		if pos > hi {
			pos = hi
		}

		switch {
		case s[pos] == target:
			return pos, true
		case s[pos] < target:
			lo = pos + 1
		default:
			hi = pos - 1
		}
	}

	return 0, false
}
