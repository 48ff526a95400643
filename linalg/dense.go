package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates non-positive requested dimensions.
	ErrBadShape = errors.New("linalg: rows and cols must be positive")

	// ErrRagged indicates FromRows received rows of unequal length.
	ErrRagged = errors.New("linalg: ragged input rows")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNotSquare indicates a square matrix was required.
	ErrNotSquare = errors.New("linalg: matrix is not square")
)

// Dense is a row-major dense matrix of float64.
// The zero value is not usable; construct via NewDense, FromRows or Identity.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense returns a zeroed rows×cols matrix.
// Returns ErrBadShape if rows or cols is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d, %d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a matrix from a slice of equally sized rows.
// The input is copied; the result does not alias rows.
// Returns ErrBadShape on empty input, ErrRagged on unequal row lengths.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	n, m := len(rows), len(rows[0])
	d, err := NewDense(n, m)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), m, ErrRagged)
		}
		copy(d.data[i*m:(i+1)*m], row)
	}

	return d, nil
}

// Identity returns the n×n identity matrix. Panics if n <= 0.
func Identity(n int) *Dense {
	d, err := NewDense(n, n)
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d
}

// Rows reports the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols reports the number of columns.
func (d *Dense) Cols() int { return d.cols }

// At returns the element at (i, j). Panics on out-of-range indices.
func (d *Dense) At(i, j int) float64 {
	d.check(i, j)

	return d.data[i*d.cols+j]
}

// Set stores v at (i, j). Panics on out-of-range indices.
func (d *Dense) Set(i, j int, v float64) {
	d.check(i, j)
	d.data[i*d.cols+j] = v
}

func (d *Dense) check(i, j int) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(fmt.Sprintf("linalg: index (%d, %d) out of range %dx%d", i, j, d.rows, d.cols))
	}
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]float64, len(d.data))}
	copy(out.data, d.data)

	return out
}

// Transpose returns a new matrix that is the transpose of d.
func (d *Dense) Transpose() *Dense {
	out := &Dense{rows: d.cols, cols: d.rows, data: make([]float64, len(d.data))}
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			out.data[j*out.cols+i] = d.data[i*d.cols+j]
		}
	}

	return out
}

// Mul returns the matrix product d·o.
// Returns ErrDimensionMismatch unless d.Cols() == o.Rows().
// Complexity: O(n·m·k) time, O(n·k) memory.
func (d *Dense) Mul(o *Dense) (*Dense, error) {
	if d.cols != o.rows {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", d.rows, d.cols, o.rows, o.cols, ErrDimensionMismatch)
	}
	out := &Dense{rows: d.rows, cols: o.cols, data: make([]float64, d.rows*o.cols)}
	for i := 0; i < d.rows; i++ {
		for k := 0; k < d.cols; k++ {
			dik := d.data[i*d.cols+k]
			if dik == 0 {
				continue
			}
			for j := 0; j < o.cols; j++ {
				out.data[i*out.cols+j] += dik * o.data[k*o.cols+j]
			}
		}
	}

	return out, nil
}

// MulVec returns the matrix-vector product d·x.
// Returns ErrDimensionMismatch unless len(x) == d.Cols().
func (d *Dense) MulVec(x []float64) ([]float64, error) {
	if len(x) != d.cols {
		return nil, fmt.Errorf("MulVec: vector length %d, want %d: %w", len(x), d.cols, ErrDimensionMismatch)
	}
	out := make([]float64, d.rows)
	for i := 0; i < d.rows; i++ {
		var sum float64
		row := d.data[i*d.cols : (i+1)*d.cols]
		for j, v := range row {
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// IsSymmetric reports whether d is square and |d[i][j]-d[j][i]| <= tol
// for every pair (i, j).
func (d *Dense) IsSymmetric(tol float64) bool {
	if d.rows != d.cols {
		return false
	}
	for i := 0; i < d.rows; i++ {
		for j := i + 1; j < d.cols; j++ {
			diff := d.data[i*d.cols+j] - d.data[j*d.cols+i]
			if diff > tol || diff < -tol {
				return false
			}
		}
	}

	return true
}
