package kmeans_test

import (
	"fmt"

	"github.com/algoprose/classics/kmeans"
)

// ////////////////////////////////////////////////////////////////////////////
// Scenario: six 2-D points form two tight groups far apart. One run with the
// default options must place each group in its own cluster and converge.
// ////////////////////////////////////////////////////////////////////////////
func ExampleCluster() {
	points := [][]float64{
		{1.0, 1.0}, {1.2, 0.8}, {0.9, 1.1}, // group A
		{8.0, 8.0}, {8.2, 7.9}, {7.9, 8.1}, // group B
	}

	res, err := kmeans.Cluster(points, 2, kmeans.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	l := res.Labels
	fmt.Println("group A together:", l[0] == l[1] && l[1] == l[2])
	fmt.Println("group B together:", l[3] == l[4] && l[4] == l[5])
	fmt.Println("groups separated:", l[0] != l[3])
	fmt.Println("converged:", res.Converged)

	// Output:
	// group A together: true
	// group B together: true
	// groups separated: true
	// converged: true
}
