// Package sylvester solves the Sylvester matrix equation
//
//	A·X + X·B = C
//
// for symmetric A and B, using the spectral form of the Bartels–Stewart
// method.
//
// 🚀 How it works:
//
//	Bartels–Stewart reduces both coefficient matrices to triangular form
//	and back-substitutes. With symmetric coefficients the reduction is an
//	eigendecomposition — A = U·Λ·Uᵀ, B = V·M·Vᵀ — and "triangular" becomes
//	diagonal, so the transformed equation decouples entirely:
//
//	  1. C̃ = Uᵀ·C·V
//	  2. X̃ᵢⱼ = C̃ᵢⱼ / (λᵢ + µⱼ)
//	  3. X = U·X̃·Vᵀ
//
// The equation has a unique solution exactly when no eigenvalue of A is the
// negative of an eigenvalue of B; a vanishing λᵢ + µⱼ yields
// ErrSingularPencil.
//
// ⚙️ Usage:
//
//	x, err := sylvester.Solve(a, b, c, sylvester.DefaultOptions())
//
// Performance: two Jacobi eigendecompositions (O(n³), O(m³)) plus four
// dense products; O(n·m) for the decoupled solve itself.
package sylvester
