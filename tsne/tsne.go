package tsne

import (
	"fmt"
	"math"
)

const (
	// pFloor keeps every probability strictly positive so the KL gradient
	// stays finite.
	pFloor = 1e-12

	// initScale is the standard deviation of the initial embedding cloud.
	initScale = 1e-4

	// betaSearchIters bounds the per-point bandwidth bisection.
	betaSearchIters = 50

	// betaSearchTol is the entropy tolerance that ends the bisection early.
	betaSearchTol = 1e-5
)

// Embed projects points into opts.OutputDims dimensions with t-SNE.
//
// Algorithm Outline:
//  1. Per-point bandwidth search: bisect the Gaussian precision βᵢ until
//     the entropy of the conditional distribution p(·|i) matches
//     log(Perplexity).
//  2. Symmetrize: P = (P_cond + P_condᵀ) / 2n, floored at 1e-12.
//  3. Initialize Y from PCA (InitPCA) or a tiny Gaussian cloud, then run
//     gradient descent on KL(P‖Q) with momentum, per-coordinate gains,
//     and early exaggeration of P.
//
// The returned slice holds one row per input point.
//
// Errors: ErrNoPoints, ErrDimensionMismatch, ErrBadPerplexity, ErrBadOptions.
// Complexity: O(MaxIterations · n² · OutputDims) time, O(n²) memory.
func Embed(points [][]float64, opts Options) ([][]float64, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	dim := len(points[0])
	if dim == 0 {
		return nil, fmt.Errorf("Embed: zero-dimensional points: %w", ErrDimensionMismatch)
	}
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("Embed: point %d has dim %d, want %d: %w", i, len(p), dim, ErrDimensionMismatch)
		}
	}
	if err := validate(opts); err != nil {
		return nil, err
	}
	if opts.Perplexity <= 0 || float64(n) < 3*opts.Perplexity+1 {
		return nil, fmt.Errorf("Embed: perplexity %.3g with %d points: %w", opts.Perplexity, n, ErrBadPerplexity)
	}

	p := jointProbabilities(points, opts.Perplexity)

	outDims := opts.OutputDims
	y, err := initialEmbedding(points, opts)
	if err != nil {
		return nil, err
	}

	update := make([][]float64, n)
	gains := make([][]float64, n)
	for i := range update {
		update[i] = make([]float64, outDims)
		gains[i] = make([]float64, outDims)
		for d := range gains[i] {
			gains[i][d] = 1
		}
	}

	num := make([][]float64, n)
	for i := range num {
		num[i] = make([]float64, n)
	}
	grad := make([]float64, outDims)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		exagg := 1.0
		momentum := opts.FinalMomentum
		if iter < opts.ExaggerationIters {
			exagg = opts.Exaggeration
			momentum = opts.Momentum
		}

		// Student-t affinities in the embedding.
		var sumNum float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var d2 float64
				for d := 0; d < outDims; d++ {
					diff := y[i][d] - y[j][d]
					d2 += diff * diff
				}
				v := 1 / (1 + d2)
				num[i][j] = v
				num[j][i] = v
				sumNum += 2 * v
			}
		}
		if sumNum < pFloor {
			sumNum = pFloor
		}

		// Gradient step with gains and momentum.
		for i := 0; i < n; i++ {
			for d := range grad {
				grad[d] = 0
			}
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				q := num[i][j] / sumNum
				if q < pFloor {
					q = pFloor
				}
				mult := 4 * (exagg*p[i][j] - q) * num[i][j]
				for d := 0; d < outDims; d++ {
					grad[d] += mult * (y[i][d] - y[j][d])
				}
			}
			for d := 0; d < outDims; d++ {
				if (grad[d] > 0) == (update[i][d] > 0) {
					gains[i][d] *= 0.8
				} else {
					gains[i][d] += 0.2
				}
				if gains[i][d] < 0.01 {
					gains[i][d] = 0.01
				}
				update[i][d] = momentum*update[i][d] - opts.LearningRate*gains[i][d]*grad[d]
				y[i][d] += update[i][d]
			}
		}

		// Re-center so the embedding cannot drift.
		for d := 0; d < outDims; d++ {
			var mean float64
			for i := 0; i < n; i++ {
				mean += y[i][d]
			}
			mean /= float64(n)
			for i := 0; i < n; i++ {
				y[i][d] -= mean
			}
		}
	}

	return y, nil
}

// validate rejects option fields the descent cannot work with.
func validate(opts Options) error {
	switch {
	case opts.OutputDims < 1:
		return fmt.Errorf("Embed: OutputDims=%d: %w", opts.OutputDims, ErrBadOptions)
	case opts.LearningRate <= 0:
		return fmt.Errorf("Embed: LearningRate=%g: %w", opts.LearningRate, ErrBadOptions)
	case opts.MaxIterations < 1:
		return fmt.Errorf("Embed: MaxIterations=%d: %w", opts.MaxIterations, ErrBadOptions)
	case opts.Exaggeration < 1:
		return fmt.Errorf("Embed: Exaggeration=%g: %w", opts.Exaggeration, ErrBadOptions)
	case opts.ExaggerationIters < 0:
		return fmt.Errorf("Embed: ExaggerationIters=%d: %w", opts.ExaggerationIters, ErrBadOptions)
	case opts.Momentum < 0 || opts.Momentum >= 1 || opts.FinalMomentum < 0 || opts.FinalMomentum >= 1:
		return fmt.Errorf("Embed: momentum must lie in [0,1): %w", ErrBadOptions)
	}

	return nil
}

// initialEmbedding builds the starting positions, either from PCA or from
// a Gaussian cloud of standard deviation initScale.
func initialEmbedding(points [][]float64, opts Options) ([][]float64, error) {
	n := len(points)
	if opts.InitPCA {
		y, err := pcaProject(points, opts.OutputDims)
		if err != nil {
			return nil, err
		}

		// Rescale so the leading component has standard deviation
		// initScale, matching the magnitude of the random init.
		var sq float64
		for i := range y {
			sq += y[i][0] * y[i][0]
		}
		std := math.Sqrt(sq / float64(n))
		if std > 0 {
			f := initScale / std
			for i := range y {
				for d := range y[i] {
					y[i][d] *= f
				}
			}
		}

		return y, nil
	}

	rng := rngFromSeed(opts.Seed)
	y := make([][]float64, n)
	for i := range y {
		y[i] = make([]float64, opts.OutputDims)
		for d := range y[i] {
			y[i][d] = rng.NormFloat64() * initScale
		}
	}

	return y, nil
}

// jointProbabilities returns the symmetrized affinity matrix P.
func jointProbabilities(points [][]float64, perplexity float64) [][]float64 {
	n := len(points)

	// Pairwise squared distances in the input space.
	d2 := make([][]float64, n)
	for i := range d2 {
		d2[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sum float64
			for d := range points[i] {
				diff := points[i][d] - points[j][d]
				sum += diff * diff
			}
			d2[i][j] = sum
			d2[j][i] = sum
		}
	}

	p := make([][]float64, n)
	for i := range p {
		p[i] = conditionalRow(d2[i], i, perplexity)
	}

	// Symmetrize and normalize over all pairs.
	inv2n := 1 / (2 * float64(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := (p[i][j] + p[j][i]) * inv2n
			if v < pFloor {
				v = pFloor
			}
			p[i][j] = v
			p[j][i] = v
		}
		p[i][i] = 0
	}

	return p
}

// conditionalRow bisects the Gaussian precision β for point i until the
// entropy of p(·|i) matches log(perplexity), then returns that row.
func conditionalRow(d2 []float64, i int, perplexity float64) []float64 {
	n := len(d2)
	row := make([]float64, n)
	target := math.Log(perplexity)

	beta := 1.0
	betaMin := math.Inf(-1)
	betaMax := math.Inf(1)

	for iter := 0; iter < betaSearchIters; iter++ {
		// Entropy H and unnormalized probabilities at the current β.
		var sum, hTerm float64
		for j := 0; j < n; j++ {
			if j == i {
				row[j] = 0
				continue
			}
			v := math.Exp(-d2[j] * beta)
			row[j] = v
			sum += v
			hTerm += beta * d2[j] * v
		}
		if sum < pFloor {
			sum = pFloor
		}
		h := math.Log(sum) + hTerm/sum

		diff := h - target
		if math.Abs(diff) < betaSearchTol {
			break
		}
		if diff > 0 {
			// Too much entropy: tighten the kernel.
			betaMin = beta
			if math.IsInf(betaMax, 1) {
				beta *= 2
			} else {
				beta = (beta + betaMax) / 2
			}
		} else {
			betaMax = beta
			if math.IsInf(betaMin, -1) {
				beta /= 2
			} else {
				beta = (beta + betaMin) / 2
			}
		}
	}

	// Normalize the row into a probability distribution.
	var sum float64
	for j := range row {
		sum += row[j]
	}
	if sum < pFloor {
		sum = pFloor
	}
	for j := range row {
		row[j] /= sum
	}

	return row
}
