package tsne

import "errors"

var (
	// ErrNoPoints indicates an empty input set.
	ErrNoPoints = errors.New("tsne: no points to embed")

	// ErrDimensionMismatch indicates points of unequal (or zero) dimension.
	ErrDimensionMismatch = errors.New("tsne: points must share a positive dimension")

	// ErrBadPerplexity indicates Perplexity ≤ 0 or too few points for it.
	// The bandwidth search needs at least 3·Perplexity+1 points.
	ErrBadPerplexity = errors.New("tsne: perplexity out of range for input size")

	// ErrBadOptions indicates an invalid option field.
	ErrBadOptions = errors.New("tsne: invalid options")
)

// Options configures Embed.
//
// Fields:
//   - OutputDims        — embedding dimension, usually 2 or 3.
//   - Perplexity        — effective neighbor count per point; the input
//     must hold at least 3·Perplexity+1 points.
//   - LearningRate      — gradient step size (η).
//   - MaxIterations     — total gradient-descent iterations.
//   - Exaggeration      — factor applied to P during the first
//     ExaggerationIters iterations.
//   - ExaggerationIters — length of the early-exaggeration phase.
//   - Momentum          — momentum before the exaggeration phase ends.
//   - FinalMomentum     — momentum after it.
//   - Seed              — RNG seed; 0 selects the fixed default stream.
//   - InitPCA           — start from the top principal components
//     instead of a random Gaussian cloud.
type Options struct {
	OutputDims        int
	Perplexity        float64
	LearningRate      float64
	MaxIterations     int
	Exaggeration      float64
	ExaggerationIters int
	Momentum          float64
	FinalMomentum     float64
	Seed              int64
	InitPCA           bool
}

// DefaultOptions returns the conventional t-SNE settings:
// 2 output dimensions, perplexity 30, learning rate 200, 1000 iterations,
// early exaggeration 12 for the first 250 iterations, momentum 0.5→0.8.
func DefaultOptions() Options {
	return Options{
		OutputDims:        2,
		Perplexity:        30,
		LearningRate:      200,
		MaxIterations:     1000,
		Exaggeration:      12,
		ExaggerationIters: 250,
		Momentum:          0.5,
		FinalMomentum:     0.8,
	}
}
