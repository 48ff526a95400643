// Package quadrature implements Gauss–Legendre quadrature: numerical
// integration that places its sample points at the roots of Legendre
// polynomials instead of on a uniform grid.
//
// 🚀 Why Gauss–Legendre?
//
//	An n-point rule integrates every polynomial of degree ≤ 2n−1 exactly —
//	twice the order a Newton–Cotes rule of the same size achieves. For
//	smooth integrands the error decays spectrally with n.
//
// Nodes are the roots of Pₙ(x) on (−1, 1), found by Newton iteration on the
// three-term recurrence; the weight at each root x is 2/((1−x²)·Pₙ′(x)²).
// Integrate maps the reference rule onto [a, b]; Composite splits [a, b]
// into equal panels and applies the rule per panel, which helps when the
// integrand is only piecewise smooth.
//
// ⚙️ Usage:
//
//	opts := quadrature.DefaultOptions()
//	opts.Order = 8
//	v, err := quadrature.Integrate(math.Sin, 0, math.Pi, opts)
//	// v ≈ 2 to machine precision
//
// Performance:
//
//   - Nodes:     O(n²) time (n roots × Newton on an O(n) recurrence), O(n) memory
//   - Integrate: O(n) evaluations after node generation
package quadrature
