// Package search collects the classical sorted-slice search algorithms:
//
//   - Binary        — halve the range; O(log n)
//   - Exponential   — gallop to a bracketing range, then binary search;
//     O(log i) where i is the target's position, ideal when matches
//     cluster near the front
//   - Jump          — probe every √n-th element, then scan; O(√n) with
//     purely sequential access patterns
//   - Interpolation — estimate the position from the key's value;
//     O(log log n) on uniformly distributed numeric keys, degrading to
//     O(n) on adversarial ones
//
// All functions require s to be sorted ascending and return
// (index, found). The index is meaningful only when found is true; no
// function panics on empty input.
//
// ⚙️ Usage:
//
//	i, ok := search.Binary([]int{1, 3, 5, 9}, 5)   // 2, true
//	i, ok = search.Interpolation(uniform, target)   // value-guided probes
package search
