// Package linalg is a small dense-matrix kernel backing the numeric packages
// (sylvester, tsne). It is intentionally minimal: row-major float64 storage,
// the handful of products the consumers need, and a symmetric Jacobi
// eigendecomposition.
//
// ⚙️ Usage:
//
//	import "github.com/algoprose/classics/linalg"
//
//	a, _ := linalg.FromRows([][]float64{
//	  {2, 1},
//	  {1, 2},
//	})
//	vals, vecs, err := linalg.Eigen(a, linalg.DefaultEigenOptions())
//
// Accessors At/Set follow slice semantics and panic on out-of-range indices;
// everything that can fail for a caller-visible reason (shape mismatches,
// non-symmetric input, non-convergence) returns a sentinel error instead.
//
// Performance:
//
//   - Mul:   O(n·m·k) time, O(n·k) memory
//   - Eigen: O(n³) per sweep, O(n²) memory
package linalg
