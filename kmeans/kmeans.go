package kmeans

import (
	"fmt"
	"math"
	"math/rand"
)

// Cluster partitions points into k clusters.
//
// Algorithm Outline:
//  1. Validate shapes; seed k centroids with k-means++.
//  2. Lloyd iteration: assign each point to its nearest centroid, then
//     move every centroid to its members' mean. An emptied cluster is
//     re-seeded on the point farthest from its current centroid.
//  3. Stop when the largest centroid shift drops below Options.Tolerance
//     or after Options.MaxIterations.
//
// Errors: ErrNoPoints, ErrBadK, ErrDimensionMismatch.
// Complexity: O(iterations · n · k · d) time, O(n + k·d) memory.
func Cluster(points [][]float64, k int, opts Options) (Result, error) {
	n := len(points)
	if n == 0 {
		return Result{}, ErrNoPoints
	}
	if k < 1 || k > n {
		return Result{}, fmt.Errorf("Cluster: k=%d with %d points: %w", k, n, ErrBadK)
	}
	dim := len(points[0])
	if dim == 0 {
		return Result{}, fmt.Errorf("Cluster: zero-dimensional points: %w", ErrDimensionMismatch)
	}
	for i, p := range points {
		if len(p) != dim {
			return Result{}, fmt.Errorf("Cluster: point %d has dim %d, want %d: %w", i, len(p), dim, ErrDimensionMismatch)
		}
	}

	rng := rngFromSeed(opts.Seed)
	centroids := seedPlusPlus(points, k, rng)
	labels := make([]int, n)

	res := Result{}
	for iter := 0; iter < opts.MaxIterations; iter++ {
		res.Iterations = iter + 1

		// Assignment step.
		for i, p := range points {
			labels[i] = nearest(centroids, p)
		}

		// Update step.
		next := make([][]float64, k)
		counts := make([]int, k)
		for c := range next {
			next[c] = make([]float64, dim)
		}
		for i, p := range points {
			c := labels[i]
			counts[c]++
			for d, v := range p {
				next[c][d] += v
			}
		}
		for c := range next {
			if counts[c] == 0 {
				// Re-seed the emptied cluster on the worst-served point.
				copy(next[c], points[farthest(points, centroids, labels)])
				continue
			}
			inv := 1 / float64(counts[c])
			for d := range next[c] {
				next[c][d] *= inv
			}
		}

		// Convergence check on the largest centroid shift.
		var maxShift float64
		for c := range centroids {
			if s := math.Sqrt(sqDist(centroids[c], next[c])); s > maxShift {
				maxShift = s
			}
		}
		centroids = next
		if maxShift <= opts.Tolerance {
			res.Converged = true
			break
		}
	}

	// Final assignment and inertia against the settled centroids.
	var inertia float64
	for i, p := range points {
		labels[i] = nearest(centroids, p)
		inertia += sqDist(p, centroids[labels[i]])
	}

	res.Centroids = centroids
	res.Labels = labels
	res.Inertia = inertia

	return res, nil
}

// seedPlusPlus picks k initial centroids with k-means++ sampling.
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	dim := len(points[0])

	centroids := make([][]float64, 0, k)
	first := append(make([]float64, 0, dim), points[rng.Intn(n)]...)
	centroids = append(centroids, first)

	// minSq[i] tracks the squared distance to the closest chosen centroid.
	minSq := make([]float64, n)
	for i, p := range points {
		minSq[i] = sqDist(p, centroids[0])
	}

	for len(centroids) < k {
		var total float64
		for _, d := range minSq {
			total += d
		}

		var idx int
		if total <= 0 {
			// All remaining points coincide with centroids; pick uniformly.
			idx = rng.Intn(n)
		} else {
			target := rng.Float64() * total
			for i, d := range minSq {
				target -= d
				if target <= 0 {
					idx = i
					break
				}
			}
		}

		c := append(make([]float64, 0, dim), points[idx]...)
		centroids = append(centroids, c)
		for i, p := range points {
			if d := sqDist(p, c); d < minSq[i] {
				minSq[i] = d
			}
		}
	}

	return centroids
}

// nearest returns the index of the centroid closest to p.
func nearest(centroids [][]float64, p []float64) int {
	best := 0
	bestD := math.Inf(1)
	for c, cen := range centroids {
		if d := sqDist(p, cen); d < bestD {
			best, bestD = c, d
		}
	}

	return best
}

// farthest returns the index of the point farthest from its assigned centroid.
func farthest(points, centroids [][]float64, labels []int) int {
	worst := 0
	worstD := -1.0
	for i, p := range points {
		if d := sqDist(p, centroids[labels[i]]); d > worstD {
			worst, worstD = i, d
		}
	}

	return worst
}

// sqDist returns the squared Euclidean distance between equal-length vectors.
func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}
