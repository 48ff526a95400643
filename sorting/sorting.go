package sorting

import "cmp"

// ciuraGaps is the empirically best known gap sequence (Ciura 2001),
// extended by the ×2.25 rule for larger slices.
var ciuraGaps = []int{1, 4, 10, 23, 57, 132, 301, 701}

// Heapsort sorts s in place via a binary max-heap.
//
// Algorithm Outline:
//  1. Heapify bottom-up: sift down every internal node, last first.
//  2. Repeatedly swap the root with the last unsorted element and
//     sift the new root down over the shrunken prefix.
//
// Complexity: O(n·log n) worst case, O(1) extra space. Not stable.
func Heapsort[T cmp.Ordered](s []T) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i,
// considering only s[:n].
func siftDown[T cmp.Ordered](s []T, i, n int) {
	for {
		largest := i
		if l := 2*i + 1; l < n && s[l] > s[largest] {
			largest = l
		}
		if r := 2*i + 2; r < n && s[r] > s[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}

// Shellsort sorts s in place with gapped insertion passes over the Ciura
// sequence.
//
// Complexity: between O(n·log n) and O(n^(4/3)) empirically; O(1) extra
// space. Not stable.
func Shellsort[T cmp.Ordered](s []T) {
	n := len(s)

	// Pick the largest starting gap below n, extending Ciura by ×2.25.
	gaps := append([]int(nil), ciuraGaps...)
	for last := gaps[len(gaps)-1]; last*9/4 < n; last = last * 9 / 4 {
		gaps = append(gaps, last*9/4)
	}

	for g := len(gaps) - 1; g >= 0; g-- {
		gap := gaps[g]
		if gap >= n {
			continue
		}
		for i := gap; i < n; i++ {
			v := s[i]
			j := i
			for ; j >= gap && s[j-gap] > v; j -= gap {
				s[j] = s[j-gap]
			}
			s[j] = v
		}
	}
}

// BinaryInsertion sorts s in place, finding each insertion point by binary
// search. Stable: equal elements keep their relative order.
//
// Complexity: O(n·log n) comparisons, O(n²) moves worst case, O(1) space.
func BinaryInsertion[T cmp.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		v := s[i]

		// Rightmost position among equals keeps the sort stable.
		lo, hi := 0, i
		for lo < hi {
			mid := int(uint(lo+hi) >> 1)
			if s[mid] > v {
				hi = mid
			} else {
				lo = mid + 1
			}
		}

		copy(s[lo+1:i+1], s[lo:i])
		s[lo] = v
	}
}
