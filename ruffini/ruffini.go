package ruffini

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyPolynomial indicates an input with no coefficients.
	ErrEmptyPolynomial = errors.New("ruffini: polynomial has no coefficients")

	// ErrNotARoot is returned by Deflate when the remainder exceeds tolerance.
	ErrNotARoot = errors.New("ruffini: value is not a root within tolerance")
)

// Options configures Deflate.
//
// Fields:
//   - Tol — maximum |remainder| for a value to count as a root.
type Options struct {
	Tol float64
}

// DefaultOptions returns Tol=1e-9.
func DefaultOptions() Options {
	return Options{Tol: 1e-9}
}

// Divide performs synthetic division of P(x) by (x − c).
//
// coeffs holds P's coefficients in descending degree order. The returned
// quotient has len(coeffs)−1 coefficients (empty for constant P) and the
// remainder equals P(c).
//
// Algorithm Outline:
//  1. Bring down the leading coefficient: q[0] = coeffs[0].
//  2. For k = 1..n−1: q[k] = coeffs[k] + c·q[k−1].
//  3. The final accumulator is the remainder.
//
// Invariant: P(x) = (x − c)·Q(x) + r for all x.
//
// Complexity: O(n) time, O(n) memory.
func Divide(coeffs []float64, c float64) (quotient []float64, remainder float64, err error) {
	n := len(coeffs)
	if n == 0 {
		return nil, 0, ErrEmptyPolynomial
	}
	if n == 1 {
		// Constant polynomial: empty quotient, the constant is the remainder.
		return []float64{}, coeffs[0], nil
	}

	quotient = make([]float64, n-1)
	acc := coeffs[0]
	for k := 1; k < n; k++ {
		quotient[k-1] = acc
		acc = coeffs[k] + c*acc
	}

	return quotient, acc, nil
}

// Evaluate computes P(x) by Horner's method.
// Returns ErrEmptyPolynomial for an empty coefficient slice.
//
// Complexity: O(n) time, O(1) memory.
func Evaluate(coeffs []float64, x float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrEmptyPolynomial
	}

	acc := coeffs[0]
	for _, c := range coeffs[1:] {
		acc = acc*x + c
	}

	return acc, nil
}

// Deflate divides P(x) by (x − root) and returns the quotient, requiring
// the remainder to vanish within opts.Tol. Use it to peel known roots off
// a polynomial one at a time.
//
// Returns ErrNotARoot (wrapping the offending remainder in the message)
// when |P(root)| > opts.Tol.
func Deflate(coeffs []float64, root float64, opts Options) ([]float64, error) {
	q, r, err := Divide(coeffs, root)
	if err != nil {
		return nil, err
	}
	if math.Abs(r) > opts.Tol {
		return nil, fmt.Errorf("Deflate: remainder %g at x=%g: %w", r, root, ErrNotARoot)
	}

	return q, nil
}
