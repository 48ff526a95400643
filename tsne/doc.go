// Package tsne implements t-distributed Stochastic Neighbor Embedding
// (van der Maaten & Hinton 2008) for projecting high-dimensional points
// into two or three dimensions while preserving local neighborhoods.
//
// 🚀 The algorithm:
//
//	t-SNE converts pairwise distances in the input space into a joint
//	probability distribution P (a Gaussian kernel per point, its
//	bandwidth tuned by binary search so every point sees the same
//	effective neighbor count, the perplexity), and distances in the
//	embedding into a distribution Q built on the heavy-tailed Student-t
//	kernel 1/(1+d²). Gradient descent then moves the embedded points to
//	minimize KL(P‖Q).
//
//	The heavy tail is the trick: moderate input distances map to large
//	output distances, so clusters repel each other instead of collapsing
//	into one blob, the "crowding problem" of plain SNE.
//
// ✨ Standard refinements carried here:
//
//	▸ early exaggeration  — P is multiplied by a constant for the first
//	  iterations so clusters form tight cores before spreading out;
//	▸ momentum + gains    — per-coordinate adaptive step sizes;
//	▸ optional PCA init   — start from the top principal components
//	  instead of a random Gaussian cloud (Options.InitPCA).
//
// Determinism: same Seed ⇒ identical embedding. Seed 0 selects a fixed
// default stream.
//
// ⚙️ Usage:
//
//	emb, err := tsne.Embed(points, tsne.DefaultOptions())
//	// emb[i] is the 2-D position of points[i].
//
// Performance: O(iterations · n²) time, O(n²) memory. Exact gradients,
// no Barnes-Hut approximation, so keep n in the low thousands.
package tsne
