package quadrature

import (
	"fmt"
	"math"
)

// Integrate approximates ∫ₐᵇ f(x) dx with an Options.Order-point
// Gauss–Legendre rule mapped from (−1, 1) onto [a, b].
//
// Swapped bounds (a > b) flip the sign, as with the Riemann integral.
//
// Errors: ErrNilFunc, ErrBadInterval, ErrBadOrder, ErrNoConvergence.
// Complexity: O(n²) node generation + n integrand evaluations.
func Integrate(f Func, a, b float64, opts Options) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if !isFinite(a) || !isFinite(b) {
		return 0, fmt.Errorf("Integrate(%g, %g): %w", a, b, ErrBadInterval)
	}

	x, w, err := Nodes(opts.Order, opts)
	if err != nil {
		return 0, err
	}

	// Affine map t ∈ (−1,1) → ½(b−a)t + ½(b+a).
	halfLen := (b - a) / 2
	mid := (b + a) / 2
	var sum float64
	for i, xi := range x {
		sum += w[i] * f(halfLen*xi+mid)
	}

	return halfLen * sum, nil
}

// Composite splits [a, b] into Options.Panels equal panels and applies the
// Gauss–Legendre rule on each. For integrands with localized roughness this
// trades spectral convergence for robustness.
//
// Errors: ErrBadPanels plus everything Integrate returns.
// Complexity: O(n²) node generation + Panels·n integrand evaluations.
func Composite(f Func, a, b float64, opts Options) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if opts.Panels < 1 {
		return 0, fmt.Errorf("Composite(panels=%d): %w", opts.Panels, ErrBadPanels)
	}
	if !isFinite(a) || !isFinite(b) {
		return 0, fmt.Errorf("Composite(%g, %g): %w", a, b, ErrBadInterval)
	}

	x, w, err := Nodes(opts.Order, opts)
	if err != nil {
		return 0, err
	}

	step := (b - a) / float64(opts.Panels)
	var total float64
	for p := 0; p < opts.Panels; p++ {
		lo := a + float64(p)*step
		halfLen := step / 2
		mid := lo + halfLen
		var sum float64
		for i, xi := range x {
			sum += w[i] * f(halfLen*xi+mid)
		}
		total += halfLen * sum
	}

	return total, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
