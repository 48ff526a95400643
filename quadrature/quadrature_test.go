package quadrature_test

import (
	"math"
	"testing"

	"github.com/algoprose/classics/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNodes_TwoPoint checks the textbook 2-point rule: x = ±1/√3, w = 1.
func TestNodes_TwoPoint(t *testing.T) {
	x, w, err := quadrature.Nodes(2, quadrature.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, x, 2)

	invSqrt3 := 1 / math.Sqrt(3)
	assert.InDelta(t, -invSqrt3, x[0], 1e-12)
	assert.InDelta(t, invSqrt3, x[1], 1e-12)
	assert.InDelta(t, 1.0, w[0], 1e-12)
	assert.InDelta(t, 1.0, w[1], 1e-12)
}

// TestNodes_ThreePoint checks x = 0, ±√(3/5) with weights 8/9 and 5/9.
func TestNodes_ThreePoint(t *testing.T) {
	x, w, err := quadrature.Nodes(3, quadrature.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, x, 3)

	root := math.Sqrt(3.0 / 5.0)
	assert.InDelta(t, -root, x[0], 1e-12)
	assert.InDelta(t, 0.0, x[1], 1e-12)
	assert.InDelta(t, root, x[2], 1e-12)
	assert.InDelta(t, 5.0/9.0, w[0], 1e-12)
	assert.InDelta(t, 8.0/9.0, w[1], 1e-12)
	assert.InDelta(t, 5.0/9.0, w[2], 1e-12)
}

// TestNodes_WeightsSumToTwo verifies Σw = ∫₋₁¹ 1 dx = 2 for several orders.
func TestNodes_WeightsSumToTwo(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 13, 20} {
		_, w, err := quadrature.Nodes(n, quadrature.DefaultOptions())
		require.NoError(t, err, "order %d", n)

		var sum float64
		for _, wi := range w {
			sum += wi
		}
		assert.InDelta(t, 2.0, sum, 1e-10, "order %d weights must sum to 2", n)
	}
}

// TestIntegrate_PolynomialExactness verifies the 2n-1 exactness degree:
// a 5-point rule must integrate x⁹ - 3x⁵ + x² exactly.
func TestIntegrate_PolynomialExactness(t *testing.T) {
	f := func(x float64) float64 { return math.Pow(x, 9) - 3*math.Pow(x, 5) + x*x }
	opts := quadrature.DefaultOptions() // Order=5 → exact through degree 9

	// ∫₀² x⁹-3x⁵+x² dx = 1024/10 - 3·64/6 + 8/3 = 102.4 - 32 + 8/3.
	want := 102.4 - 32 + 8.0/3.0
	got, err := quadrature.Integrate(f, 0, 2, opts)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9)
}

// TestIntegrate_Sine checks ∫₀^π sin = 2 to near machine precision at order 8.
func TestIntegrate_Sine(t *testing.T) {
	opts := quadrature.DefaultOptions()
	opts.Order = 8

	got, err := quadrature.Integrate(math.Sin, 0, math.Pi, opts)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-10)
}

// TestIntegrate_SwappedBoundsFlipSign verifies ∫ᵇₐ = −∫ₐᵇ.
func TestIntegrate_SwappedBoundsFlipSign(t *testing.T) {
	opts := quadrature.DefaultOptions()
	fwd, err := quadrature.Integrate(math.Exp, 0, 1, opts)
	require.NoError(t, err)
	rev, err := quadrature.Integrate(math.Exp, 1, 0, opts)
	require.NoError(t, err)

	assert.InDelta(t, -fwd, rev, 1e-12)
	assert.InDelta(t, math.E-1, fwd, 1e-10)
}

// TestComposite_MatchesSinglePanel verifies panel subdivision converges to
// the same value and improves a deliberately low-order rule.
func TestComposite_MatchesSinglePanel(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x * x) }

	ref := quadrature.DefaultOptions()
	ref.Order = 20
	want, err := quadrature.Integrate(f, 0, 3, ref)
	require.NoError(t, err)

	low := quadrature.DefaultOptions()
	low.Order = 3
	low.Panels = 16
	got, err := quadrature.Composite(f, 0, 3, low)
	require.NoError(t, err)

	assert.InDelta(t, want, got, 1e-8, "16 panels of order 3 must match the order-20 reference")
}

// TestQuadrature_Errors exercises the validation paths.
func TestQuadrature_Errors(t *testing.T) {
	opts := quadrature.DefaultOptions()

	_, _, err := quadrature.Nodes(0, opts)
	assert.ErrorIs(t, err, quadrature.ErrBadOrder)

	_, err = quadrature.Integrate(nil, 0, 1, opts)
	assert.ErrorIs(t, err, quadrature.ErrNilFunc)

	_, err = quadrature.Integrate(math.Sin, math.Inf(1), 1, opts)
	assert.ErrorIs(t, err, quadrature.ErrBadInterval)

	_, err = quadrature.Integrate(math.Sin, math.NaN(), 1, opts)
	assert.ErrorIs(t, err, quadrature.ErrBadInterval)

	bad := opts
	bad.Panels = 0
	_, err = quadrature.Composite(math.Sin, 0, 1, bad)
	assert.ErrorIs(t, err, quadrature.ErrBadPanels)

	stuck := opts
	stuck.MaxIter = 0
	_, _, err = quadrature.Nodes(4, stuck)
	assert.ErrorIs(t, err, quadrature.ErrNoConvergence, "MaxIter=0 cannot converge")
}
