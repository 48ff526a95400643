package linalg_test

import (
	"math"
	"sort"
	"testing"

	"github.com/algoprose/classics/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEigen_Known2x2 checks the classic [[2,1],[1,2]] spectrum {3, 1}.
func TestEigen_Known2x2(t *testing.T) {
	m, err := linalg.FromRows([][]float64{
		{2, 1},
		{1, 2},
	})
	require.NoError(t, err)

	vals, vecs, err := linalg.Eigen(m, linalg.DefaultEigenOptions())
	require.NoError(t, err)
	require.Len(t, vals, 2)

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	assert.InDelta(t, 1.0, sorted[0], 1e-9)
	assert.InDelta(t, 3.0, sorted[1], 1e-9)

	// Columns must be unit eigenvectors: m·v == λ·v.
	for c := 0; c < 2; c++ {
		v := []float64{vecs.At(0, c), vecs.At(1, c)}
		mv, mverr := m.MulVec(v)
		require.NoError(t, mverr)
		for i := range v {
			assert.InDelta(t, vals[c]*v[i], mv[i], 1e-9, "m·v must equal λ·v")
		}
		assert.InDelta(t, 1.0, v[0]*v[0]+v[1]*v[1], 1e-9, "eigenvector must be unit length")
	}
}

// TestEigen_Reconstruction verifies m == Q·diag(vals)·Qᵀ for a 3x3 matrix.
func TestEigen_Reconstruction(t *testing.T) {
	m, err := linalg.FromRows([][]float64{
		{4, 1, -2},
		{1, 2, 0},
		{-2, 0, 3},
	})
	require.NoError(t, err)

	vals, q, err := linalg.Eigen(m, linalg.DefaultEigenOptions())
	require.NoError(t, err)

	// Build Q·diag(vals).
	qd := q.Clone()
	for i := 0; i < qd.Rows(); i++ {
		for j := 0; j < qd.Cols(); j++ {
			qd.Set(i, j, q.At(i, j)*vals[j])
		}
	}
	rec, err := qd.Mul(q.Transpose())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, m.At(i, j), rec.At(i, j), 1e-8)
		}
	}
}

// TestEigen_TraceAndDiagonal verifies the eigenvalue sum equals the trace
// and that a diagonal matrix is its own spectrum.
func TestEigen_TraceAndDiagonal(t *testing.T) {
	m, err := linalg.FromRows([][]float64{
		{5, 0, 0},
		{0, -1, 0},
		{0, 0, 2},
	})
	require.NoError(t, err)

	vals, _, err := linalg.Eigen(m, linalg.DefaultEigenOptions())
	require.NoError(t, err)

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	assert.InDelta(t, -1.0, sorted[0], 1e-12)
	assert.InDelta(t, 2.0, sorted[1], 1e-12)
	assert.InDelta(t, 5.0, sorted[2], 1e-12)

	var sum float64
	for _, v := range vals {
		sum += v
	}
	assert.InDelta(t, 6.0, sum, 1e-9, "eigenvalue sum must equal trace")
}

// TestEigen_Errors exercises the validation paths.
func TestEigen_Errors(t *testing.T) {
	rect, _ := linalg.NewDense(2, 3)
	_, _, err := linalg.Eigen(rect, linalg.DefaultEigenOptions())
	assert.ErrorIs(t, err, linalg.ErrNotSquare)

	asym, _ := linalg.FromRows([][]float64{
		{1, 2},
		{0, 1},
	})
	_, _, err = linalg.Eigen(asym, linalg.DefaultEigenOptions())
	assert.ErrorIs(t, err, linalg.ErrNotSymmetric)

	sym, _ := linalg.FromRows([][]float64{
		{2, 1},
		{1, 2},
	})
	opts := linalg.EigenOptions{Tol: 1e-10, MaxSweeps: 0}
	_, _, err = linalg.Eigen(sym, opts)
	assert.ErrorIs(t, err, linalg.ErrNoConvergence, "MaxSweeps=0 cannot converge")
}

// TestEigen_OneByOne verifies the trivial case returns immediately.
func TestEigen_OneByOne(t *testing.T) {
	m, _ := linalg.FromRows([][]float64{{7}})
	vals, vecs, err := linalg.Eigen(m, linalg.EigenOptions{Tol: 1e-10, MaxSweeps: 0})
	require.NoError(t, err, "1x1 needs no sweeps")
	assert.Equal(t, []float64{7}, vals)
	assert.Equal(t, 1.0, vecs.At(0, 0))
}

// TestSortDescending verifies pair reordering keeps values and columns aligned.
func TestSortDescending(t *testing.T) {
	m, err := linalg.FromRows([][]float64{
		{1, 0, 0},
		{0, 3, 0},
		{0, 0, 2},
	})
	require.NoError(t, err)

	vals, vecs, err := linalg.Eigen(m, linalg.DefaultEigenOptions())
	require.NoError(t, err)
	require.NoError(t, linalg.SortDescending(vals, vecs))

	assert.True(t, sort.IsSorted(sort.Reverse(sort.Float64Slice(vals))), "values must be non-increasing")

	// Each column must still be an eigenvector of its value.
	for c := 0; c < 3; c++ {
		v := []float64{vecs.At(0, c), vecs.At(1, c), vecs.At(2, c)}
		mv, mverr := m.MulVec(v)
		require.NoError(t, mverr)
		for i := range v {
			assert.InDelta(t, vals[c]*v[i], mv[i], 1e-9)
		}
	}
}

// TestSortDescending_Mismatch verifies the shape guard.
func TestSortDescending_Mismatch(t *testing.T) {
	vecs := linalg.Identity(3)
	err := linalg.SortDescending([]float64{1, 2}, vecs)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestEigen_LargerRandomSymmetric sanity-checks orthogonality of Q on a 6x6.
func TestEigen_LargerRandomSymmetric(t *testing.T) {
	// Fixed entries; symmetric by construction a[i][j] = a[j][i].
	n := 6
	m, err := linalg.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := math.Sin(float64(3*i+7*j+1)) * 5
			m.Set(i, j, v)
			m.Set(j, i, v)
		}
	}

	_, q, err := linalg.Eigen(m, linalg.DefaultEigenOptions())
	require.NoError(t, err)

	qtq, err := q.Transpose().Mul(q)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, qtq.At(i, j), 1e-8, "Q must be orthogonal")
		}
	}
}
