package levinson

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySystem indicates an empty coefficient or right-hand side slice.
	ErrEmptySystem = errors.New("levinson: system must be non-empty")

	// ErrDimensionMismatch indicates len(r) != len(b).
	ErrDimensionMismatch = errors.New("levinson: first row and rhs lengths differ")

	// ErrSingular indicates a vanishing leading principal minor; the
	// recursion cannot continue.
	ErrSingular = errors.New("levinson: toeplitz system is singular")
)

// singularTol guards divisions inside the recursion.
const singularTol = 1e-300

// SolveToeplitz solves T(r)·x = b for a symmetric Toeplitz matrix defined
// by its first row r: T[i][j] = r[|i−j|].
//
// Algorithm Outline (symmetric Levinson):
//  1. Maintain the forward vector f with T_k·f = e₁ for the current order k.
//     By symmetry the backward vector is f reversed.
//  2. To grow from order k to k+1, compute the extension error
//     εf = Σ r[k−i]·f[i]; the new forward vector is
//     ( [f,0] − εf·[0,rev f] ) / (1 − εf²).
//  3. Grow the solution alongside: εx = Σ r[k−i]·x[i], then
//     x ← [x,0] + (b[k] − εx)·rev(f).
//
// Errors: ErrEmptySystem, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n²) time, O(n) memory.
func SolveToeplitz(r, b []float64) ([]float64, error) {
	n := len(r)
	if n == 0 || len(b) == 0 {
		return nil, ErrEmptySystem
	}
	if len(b) != n {
		return nil, fmt.Errorf("SolveToeplitz: len(r)=%d len(b)=%d: %w", n, len(b), ErrDimensionMismatch)
	}
	if math.Abs(r[0]) <= singularTol {
		return nil, fmt.Errorf("SolveToeplitz: r[0]=0: %w", ErrSingular)
	}

	f := make([]float64, 1, n)
	x := make([]float64, 1, n)
	f[0] = 1 / r[0]
	x[0] = b[0] / r[0]

	newF := make([]float64, 0, n)
	for m := 1; m < n; m++ {
		// Extension errors of [f,0] and [x,0] against row m.
		var ef, ex float64
		for i := 0; i < m; i++ {
			ef += r[m-i] * f[i]
			ex += r[m-i] * x[i]
		}

		denom := 1 - ef*ef
		if math.Abs(denom) <= singularTol {
			return nil, fmt.Errorf("SolveToeplitz: order %d: %w", m+1, ErrSingular)
		}

		// f' = ([f,0] − εf·[0,rev f]) / (1 − εf²).
		newF = newF[:m+1]
		for i := 0; i <= m; i++ {
			var fwd, bwd float64
			if i < m {
				fwd = f[i]
			}
			if i > 0 {
				bwd = f[m-i]
			}
			newF[i] = (fwd - ef*bwd) / denom
		}
		f = append(f[:0], newF...)

		// x' = [x,0] + (b[m] − εx)·rev(f').
		x = append(x, 0)
		scale := b[m] - ex
		for i := 0; i <= m; i++ {
			x[i] += scale * f[m-i]
		}
	}

	out := make([]float64, n)
	copy(out, x)

	return out, nil
}

// Coefficients is the result of the Levinson–Durbin recursion.
type Coefficients struct {
	// Prediction holds the forward prediction coefficients a₁..aₚ of the
	// all-pole model x[t] ≈ −Σ aᵢ·x[t−i].
	Prediction []float64

	// Reflection holds the reflection (PARCOR) coefficients k₁..kₚ.
	// For a valid autocorrelation sequence each lies in (−1, 1).
	Reflection []float64

	// Error is the final prediction error energy E_p.
	Error float64
}

// Durbin runs the Levinson–Durbin recursion on the autocorrelation sequence
// r[0..p], solving the normal equations Σⱼ aⱼ·r[|i−j|] = −r[i] for i=1..p.
//
// Errors: ErrEmptySystem (fewer than two lags), ErrSingular (r[0] ≤ 0 or a
// prediction error collapsing to zero mid-recursion).
// Complexity: O(p²) time, O(p) memory.
func Durbin(r []float64) (Coefficients, error) {
	if len(r) < 2 {
		return Coefficients{}, fmt.Errorf("Durbin: need at least r[0] and r[1]: %w", ErrEmptySystem)
	}
	if r[0] <= 0 {
		return Coefficients{}, fmt.Errorf("Durbin: r[0]=%g must be positive: %w", r[0], ErrSingular)
	}

	p := len(r) - 1
	a := make([]float64, p)
	k := make([]float64, p)
	prev := make([]float64, p)
	e := r[0]

	for i := 1; i <= p; i++ {
		acc := r[i]
		for j := 1; j < i; j++ {
			acc += a[j-1] * r[i-j]
		}
		if math.Abs(e) <= singularTol {
			return Coefficients{}, fmt.Errorf("Durbin: error vanished at order %d: %w", i, ErrSingular)
		}
		ki := -acc / e
		k[i-1] = ki

		// a[j] ← a[j] + k·a[i−j], against the order-(i−1) coefficients.
		copy(prev, a[:i-1])
		for j := 1; j < i; j++ {
			a[j-1] = prev[j-1] + ki*prev[i-j-1]
		}
		a[i-1] = ki
		e *= 1 - ki*ki
	}

	return Coefficients{Prediction: a, Reflection: k, Error: e}, nil
}
