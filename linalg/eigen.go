package linalg

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrNotSymmetric is returned when Eigen receives a non-symmetric matrix.
	ErrNotSymmetric = errors.New("linalg: matrix is not symmetric")

	// ErrNoConvergence is returned when the Jacobi sweeps do not reduce the
	// off-diagonal mass below tolerance within MaxSweeps.
	ErrNoConvergence = errors.New("linalg: eigendecomposition did not converge")
)

// EigenOptions configures the Jacobi eigendecomposition.
//
// Fields:
//   - Tol       — convergence threshold on the largest off-diagonal |a[p][q]|.
//   - MaxSweeps — cap on rotation steps before giving up.
type EigenOptions struct {
	Tol       float64
	MaxSweeps int
}

// DefaultEigenOptions returns the recommended tolerances:
// Tol=1e-10, MaxSweeps=100·n is approximated by a flat generous cap.
func DefaultEigenOptions() EigenOptions {
	return EigenOptions{Tol: 1e-10, MaxSweeps: 10000}
}

// Eigen computes all eigenvalues and eigenvectors of the real symmetric
// matrix m using classical Jacobi rotations (largest off-diagonal pivot).
//
// It returns the eigenvalues and an orthogonal matrix Q whose columns are
// the corresponding eigenvectors, so that m = Q·diag(values)·Qᵀ.
//
// Errors: ErrNotSquare, ErrNotSymmetric, ErrNoConvergence.
// Complexity: O(n³) per sweep, worst-case O(MaxSweeps·n²) rotations; O(n²) memory.
func Eigen(m *Dense, opts EigenOptions) ([]float64, *Dense, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, fmt.Errorf("Eigen: %dx%d: %w", m.Rows(), m.Cols(), ErrNotSquare)
	}
	if !m.IsSymmetric(opts.Tol) {
		return nil, nil, ErrNotSymmetric
	}

	a := m.Clone()
	q := Identity(n)
	if n == 1 {
		return []float64{a.At(0, 0)}, q, nil
	}

	converged := false
	for iter := 0; iter < opts.MaxSweeps; iter++ {
		// Locate the largest off-diagonal element |a[p][q]|.
		var p, qq int
		maxOff := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a.At(i, j)); off > maxOff {
					maxOff = off
					p, qq = i, j
				}
			}
		}
		if maxOff <= opts.Tol {
			converged = true
			break
		}

		// Rotation parameters annihilating a[p][qq].
		app := a.At(p, p)
		aqq := a.At(qq, qq)
		apq := a.At(p, qq)
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		// Apply the rotation to rows/columns p and qq of a.
		for i := 0; i < n; i++ {
			if i == p || i == qq {
				continue
			}
			aip := a.At(i, p)
			aiq := a.At(i, qq)
			a.Set(i, p, c*aip-s*aiq)
			a.Set(p, i, c*aip-s*aiq)
			a.Set(i, qq, s*aip+c*aiq)
			a.Set(qq, i, s*aip+c*aiq)
		}
		a.Set(p, p, app-t*apq)
		a.Set(qq, qq, aqq+t*apq)
		a.Set(p, qq, 0)
		a.Set(qq, p, 0)

		// Accumulate the rotation into q.
		for i := 0; i < n; i++ {
			qip := q.At(i, p)
			qiq := q.At(i, qq)
			q.Set(i, p, c*qip-s*qiq)
			q.Set(i, qq, s*qip+c*qiq)
		}
	}
	if !converged {
		return nil, nil, ErrNoConvergence
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = a.At(i, i)
	}

	return values, q, nil
}

// SortDescending reorders eigenpairs in place so that values are
// non-increasing, permuting the columns of vectors to match.
// Returns ErrDimensionMismatch unless len(values) == vectors.Cols().
func SortDescending(values []float64, vectors *Dense) error {
	n := len(values)
	if vectors.Cols() != n {
		return fmt.Errorf("SortDescending: %d values, %d columns: %w", n, vectors.Cols(), ErrDimensionMismatch)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return values[order[i]] > values[order[j]] })

	sortedVals := make([]float64, n)
	sorted := vectors.Clone()
	for dst, src := range order {
		sortedVals[dst] = values[src]
		for r := 0; r < vectors.Rows(); r++ {
			sorted.Set(r, dst, vectors.At(r, src))
		}
	}
	copy(values, sortedVals)
	for r := 0; r < vectors.Rows(); r++ {
		for c := 0; c < n; c++ {
			vectors.Set(r, c, sorted.At(r, c))
		}
	}

	return nil
}
