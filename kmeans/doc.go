// Package kmeans implements Lloyd's algorithm with k-means++ seeding for
// clustering points in ℝᵈ.
//
// 🚀 The algorithm:
//
//	k-means alternates two steps until the centroids stop moving:
//	  1. Assignment — each point joins its nearest centroid (squared
//	     Euclidean distance).
//	  2. Update — each centroid moves to the mean of its members.
//
//	Seeding matters: picking initial centroids uniformly at random can
//	start two centroids inside one cluster. k-means++ (Arthur &
//	Vassilvitskii 2007) picks each next seed with probability
//	proportional to its squared distance from the seeds chosen so far,
//	which bounds the expected cost within O(log k) of optimal.
//
// Determinism: same Seed ⇒ identical clustering. Seed 0 selects a fixed
// default stream, so the zero Options value is already reproducible.
//
// ⚙️ Usage:
//
//	res, err := kmeans.Cluster(points, 3, kmeans.DefaultOptions())
//	// res.Labels[i] is the cluster of points[i]; res.Inertia the
//	// within-cluster sum of squares.
//
// Performance: O(iterations · n · k · d) time, O(n + k·d) memory.
package kmeans
