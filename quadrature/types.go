package quadrature

import "errors"

var (
	// ErrBadOrder indicates a rule order below 1.
	ErrBadOrder = errors.New("quadrature: order must be at least 1")

	// ErrBadInterval indicates a non-finite integration bound.
	ErrBadInterval = errors.New("quadrature: interval bounds must be finite")

	// ErrNilFunc indicates a nil integrand.
	ErrNilFunc = errors.New("quadrature: integrand must not be nil")

	// ErrBadPanels indicates a Composite panel count below 1.
	ErrBadPanels = errors.New("quadrature: panel count must be at least 1")

	// ErrNoConvergence indicates Newton iteration failed to locate a node.
	ErrNoConvergence = errors.New("quadrature: node search did not converge")
)

// Func is a real-valued integrand.
type Func func(x float64) float64

// Options configures rule construction and integration.
//
// Fields:
//   - Order   — number of nodes n; exact for polynomials of degree ≤ 2n−1.
//   - Panels  — number of equal subintervals used by Composite.
//   - Tol     — Newton convergence threshold for node location.
//   - MaxIter — Newton iteration cap per node.
type Options struct {
	Order   int
	Panels  int
	Tol     float64
	MaxIter int
}

// DefaultOptions returns Order=5, Panels=1, Tol=1e-14, MaxIter=100.
func DefaultOptions() Options {
	return Options{Order: 5, Panels: 1, Tol: 1e-14, MaxIter: 100}
}
