package tsne

import (
	"fmt"

	"github.com/algoprose/classics/linalg"
)

// pcaProject centers the points and projects them onto their top `dims`
// principal components via an eigendecomposition of the covariance matrix.
// Complexity: O(n·d² + d³) with d the input dimension.
func pcaProject(points [][]float64, dims int) ([][]float64, error) {
	n := len(points)
	d := len(points[0])
	if dims > d {
		return nil, fmt.Errorf("pca: %d components from %d-dimensional input: %w", dims, d, ErrBadOptions)
	}

	// Column means.
	mean := make([]float64, d)
	for _, p := range points {
		for j, v := range p {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(n)
	}

	// Covariance, symmetric by construction.
	cov, err := linalg.NewDense(d, d)
	if err != nil {
		return nil, fmt.Errorf("pca: %w", err)
	}
	for _, p := range points {
		for i := 0; i < d; i++ {
			ci := p[i] - mean[i]
			for j := i; j < d; j++ {
				cov.Set(i, j, cov.At(i, j)+ci*(p[j]-mean[j]))
			}
		}
	}
	inv := 1 / float64(n-1)
	if n == 1 {
		inv = 1
	}
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			v := cov.At(i, j) * inv
			cov.Set(i, j, v)
			cov.Set(j, i, v)
		}
	}

	vals, vecs, err := linalg.Eigen(cov, linalg.DefaultEigenOptions())
	if err != nil {
		return nil, fmt.Errorf("pca: %w", err)
	}
	if err := linalg.SortDescending(vals, vecs); err != nil {
		return nil, fmt.Errorf("pca: %w", err)
	}

	// Project centered points onto the leading eigenvectors (columns).
	out := make([][]float64, n)
	for i, p := range points {
		row := make([]float64, dims)
		for c := 0; c < dims; c++ {
			var sum float64
			for j := 0; j < d; j++ {
				sum += (p[j] - mean[j]) * vecs.At(j, c)
			}
			row[c] = sum
		}
		out[i] = row
	}

	return out, nil
}
