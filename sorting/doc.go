// Package sorting collects the classical comparison sorts every algorithms
// course walks through, implemented in-place and generically over
// cmp.Ordered:
//
//   - Heapsort        — O(n·log n) worst case, O(1) extra space, not stable
//   - Shellsort       — gap insertion sort with the Ciura gap sequence
//   - BinaryInsertion — insertion sort locating positions by binary search;
//     stable, O(n²) moves but only O(n·log n) comparisons
//   - Quickselect     — kth order statistic in expected O(n), not a sort
//     at all but the standard companion lecture
//
// These exist for study and for the rare case where the standard library's
// introsort is the wrong tool (guaranteed O(1) space, comparison counting,
// partial selection). For everything else, use the sort package.
//
// ⚙️ Usage:
//
//	xs := []int{5, 2, 9, 1}
//	sorting.Heapsort(xs)
//
//	median, err := sorting.Quickselect(xs, len(xs)/2)
//
// All sorts mutate their argument; none allocates beyond Quickselect's
// defensive copy.
package sorting
