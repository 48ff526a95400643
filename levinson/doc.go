// Package levinson implements the Levinson recursion for symmetric Toeplitz
// linear systems, and the Levinson–Durbin special case used for linear
// prediction (LPC) on autocorrelation sequences.
//
// 🚀 Why Levinson?
//
//	A Toeplitz system looks dense, but its diagonal-constant structure lets
//	the solution of order k be extended to order k+1 in O(k) work. The full
//	solve is O(n²) time and O(n) memory, versus O(n³)/O(n²) for Gaussian
//	elimination.
//
// Two entry points:
//
//   - SolveToeplitz — general right-hand side: solve T(r)·x = b where
//     T(r)[i][j] = r[|i−j|].
//   - Durbin — the b = −r[1:] special case from speech processing: returns
//     prediction coefficients, reflection coefficients (PARCOR) and the
//     final prediction error.
//
// ⚙️ Usage:
//
//	x, err := levinson.SolveToeplitz([]float64{4, 2, 1}, []float64{1, 2, 3})
//
//	lpc, err := levinson.Durbin([]float64{1, 0.5, 0.25})
//	// lpc.Prediction = [-0.5, 0] — an AR(1) sequence needs one tap
//
// The recursion requires T to be strongly nonsingular (every leading
// principal minor invertible); ErrSingular reports the step that failed.
//
// Performance: O(n²) time, O(n) memory.
package levinson
