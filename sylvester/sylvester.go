package sylvester

import (
	"errors"
	"fmt"
	"math"

	"github.com/algoprose/classics/linalg"
)

var (
	// ErrDimensionMismatch indicates C does not conform to A (rows) and B (cols).
	ErrDimensionMismatch = errors.New("sylvester: operand dimensions do not conform")

	// ErrNotSymmetric indicates A or B is not symmetric; the spectral method
	// does not apply.
	ErrNotSymmetric = errors.New("sylvester: coefficient matrix is not symmetric")

	// ErrSingularPencil indicates λᵢ(A) + µⱼ(B) ≈ 0 for some pair: the
	// Sylvester equation has no unique solution.
	ErrSingularPencil = errors.New("sylvester: eigenvalue pair sums to zero")
)

// Options configures Solve.
//
// Fields:
//   - SymTol   — symmetry check tolerance on |a[i][j]−a[j][i]|.
//   - PivotTol — minimum |λᵢ + µⱼ| treated as nonsingular.
//   - Eigen    — options forwarded to linalg.Eigen.
type Options struct {
	SymTol   float64
	PivotTol float64
	Eigen    linalg.EigenOptions
}

// DefaultOptions returns SymTol=1e-10, PivotTol=1e-12 and the linalg
// eigendecomposition defaults.
func DefaultOptions() Options {
	return Options{SymTol: 1e-10, PivotTol: 1e-12, Eigen: linalg.DefaultEigenOptions()}
}

// Solve returns the unique X with A·X + X·B = C, for symmetric A (n×n) and
// B (m×m) and arbitrary C (n×m).
//
// Algorithm Outline (Bartels–Stewart, spectral form):
//  1. Eigendecompose A = U·Λ·Uᵀ and B = V·M·Vᵀ.
//  2. Rotate the right-hand side: C̃ = Uᵀ·C·V.
//  3. Decoupled solve: X̃ᵢⱼ = C̃ᵢⱼ / (λᵢ + µⱼ).
//  4. Rotate back: X = U·X̃·Vᵀ.
//
// Errors: ErrDimensionMismatch, ErrNotSymmetric, ErrSingularPencil, plus
// linalg.ErrNoConvergence from the eigendecompositions.
// Complexity: O(n³ + m³) time, O(n² + m² + n·m) memory.
func Solve(a, b, c *linalg.Dense, opts Options) (*linalg.Dense, error) {
	n, m := a.Rows(), b.Rows()
	if a.Cols() != n || b.Cols() != m {
		return nil, fmt.Errorf("Solve: A %dx%d, B %dx%d must be square: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	if c.Rows() != n || c.Cols() != m {
		return nil, fmt.Errorf("Solve: C %dx%d, want %dx%d: %w", c.Rows(), c.Cols(), n, m, ErrDimensionMismatch)
	}
	if !a.IsSymmetric(opts.SymTol) {
		return nil, fmt.Errorf("Solve: A: %w", ErrNotSymmetric)
	}
	if !b.IsSymmetric(opts.SymTol) {
		return nil, fmt.Errorf("Solve: B: %w", ErrNotSymmetric)
	}

	lambda, u, err := linalg.Eigen(a, opts.Eigen)
	if err != nil {
		return nil, fmt.Errorf("Solve: eigendecompose A: %w", err)
	}
	mu, v, err := linalg.Eigen(b, opts.Eigen)
	if err != nil {
		return nil, fmt.Errorf("Solve: eigendecompose B: %w", err)
	}

	// C̃ = Uᵀ·C·V.
	uc, err := u.Transpose().Mul(c)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	ctil, err := uc.Mul(v)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Decoupled elementwise solve.
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			pivot := lambda[i] + mu[j]
			if math.Abs(pivot) <= opts.PivotTol {
				return nil, fmt.Errorf("Solve: λ[%d]+µ[%d] = %g: %w", i, j, pivot, ErrSingularPencil)
			}
			ctil.Set(i, j, ctil.At(i, j)/pivot)
		}
	}

	// X = U·X̃·Vᵀ.
	ux, err := u.Mul(ctil)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	x, err := ux.Mul(v.Transpose())
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return x, nil
}

// Lyapunov solves the special case A·X + X·Aᵀ = C with symmetric A, i.e.
// B = A. The continuous Lyapunov equation from stability analysis.
func Lyapunov(a, c *linalg.Dense, opts Options) (*linalg.Dense, error) {
	return Solve(a, a, c, opts)
}
