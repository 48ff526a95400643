package quadrature

import (
	"fmt"
	"math"
)

// legendre evaluates Pₙ(x) and Pₙ₋₁(x) via the three-term recurrence
// (k+1)·P[k+1] = (2k+1)·x·P[k] − k·P[k−1].
//
// Complexity: O(n) time, O(1) memory.
func legendre(n int, x float64) (pn, pnm1 float64) {
	pnm1, pn = 1, x // P₀, P₁
	if n == 0 {
		return 1, 0
	}
	for k := 1; k < n; k++ {
		pn, pnm1 = (float64(2*k+1)*x*pn-float64(k)*pnm1)/float64(k+1), pn
	}

	return pn, pnm1
}

// Nodes returns the n Gauss–Legendre nodes on (−1, 1), in ascending order,
// together with their weights.
//
// Algorithm Outline:
//  1. Seed each root with the Chebyshev-like guess cos(π(i−¼)/(n+½)).
//  2. Newton-iterate on Pₙ using Pₙ′(x) = n·(x·Pₙ − Pₙ₋₁)/(x²−1).
//  3. Weight: w = 2/((1−x²)·Pₙ′(x)²).
//  4. Only the lower half is solved; the rest is mirrored by symmetry.
//
// Errors: ErrBadOrder, ErrNoConvergence.
// Complexity: O(n²) time, O(n) memory.
func Nodes(n int, opts Options) (x, w []float64, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("Nodes(%d): %w", n, ErrBadOrder)
	}

	x = make([]float64, n)
	w = make([]float64, n)
	half := (n + 1) / 2
	for i := 1; i <= half; i++ {
		// Newton iteration from the asymptotic root estimate.
		z := math.Cos(math.Pi * (float64(i) - 0.25) / (float64(n) + 0.5))
		converged := false
		for iter := 0; iter < opts.MaxIter; iter++ {
			pn, pnm1 := legendre(n, z)
			dpn := float64(n) * (z*pn - pnm1) / (z*z - 1)
			dz := pn / dpn
			z -= dz
			if math.Abs(dz) <= opts.Tol {
				converged = true
				break
			}
		}
		if !converged {
			return nil, nil, fmt.Errorf("Nodes(%d): node %d: %w", n, i, ErrNoConvergence)
		}

		// Recompute the derivative at the converged root for the weight.
		pn, pnm1 := legendre(n, z)
		dpn := float64(n) * (z*pn - pnm1) / (z*z - 1)
		weight := 2 / ((1 - z*z) * dpn * dpn)

		// The guesses run from +1 toward 0; mirror onto the ascending output.
		x[i-1], w[i-1] = -z, weight
		x[n-i], w[n-i] = z, weight
	}

	return x, w, nil
}
