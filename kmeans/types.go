package kmeans

import "errors"

var (
	// ErrNoPoints indicates an empty input set.
	ErrNoPoints = errors.New("kmeans: no points to cluster")

	// ErrBadK indicates k < 1 or k > len(points).
	ErrBadK = errors.New("kmeans: k must be in [1, len(points)]")

	// ErrDimensionMismatch indicates points of unequal (or zero) dimension.
	ErrDimensionMismatch = errors.New("kmeans: points must share a positive dimension")
)

// Options configures Cluster.
//
// Fields:
//   - MaxIterations — Lloyd iteration cap.
//   - Tolerance     — convergence threshold on the largest centroid shift
//     (Euclidean) between consecutive iterations.
//   - Seed          — RNG seed for k-means++; 0 selects the fixed default
//     stream, so results are reproducible by default.
type Options struct {
	MaxIterations int
	Tolerance     float64
	Seed          int64
}

// DefaultOptions returns MaxIterations=100, Tolerance=1e-6, Seed=0.
func DefaultOptions() Options {
	return Options{MaxIterations: 100, Tolerance: 1e-6}
}

// Result is the outcome of one clustering run.
type Result struct {
	// Centroids holds k centers, each of the input dimension.
	Centroids [][]float64

	// Labels[i] is the index in Centroids assigned to points[i].
	Labels []int

	// Inertia is the within-cluster sum of squared distances.
	Inertia float64

	// Iterations is the number of Lloyd iterations executed.
	Iterations int

	// Converged reports whether the run stopped on Tolerance rather than
	// on MaxIterations.
	Converged bool
}
