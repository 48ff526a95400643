// Package classics is a reading library of classical algorithms — numerical
// methods, sorting & searching, classical ciphers, compression, clustering,
// byte framing and distributed mutual exclusion — one self-contained package
// per algorithm.
//
// 🚀 What is classics?
//
//	Each package is a leaf: it carries its own options, sentinel errors,
//	documentation, examples and tests, and shares no types or state with
//	its siblings. The module is a publishing unit, not a framework.
//
//	  ruffini/    — synthetic division (Ruffini's rule) + Horner evaluation
//	  quadrature/ — Gauss–Legendre quadrature
//	  levinson/   — Levinson recursion for symmetric Toeplitz systems, LPC
//	  sylvester/  — Bartels–Stewart solver for AX + XB = C (spectral form)
//	  linalg/     — small dense-matrix kernel used by the numeric packages
//	  cobs/       — Consistent Overhead Byte Stuffing
//	  huffman/    — Huffman coding
//	  vigenere/   — Caesar, ROT13 and Vigenère ciphers
//	  sorting/    — heapsort, Shellsort, binary insertion, quickselect
//	  search/     — binary, exponential, jump and interpolation search
//	  kmeans/     — k-means++ seeding and Lloyd iterations
//	  tsne/       — t-distributed Stochastic Neighbor Embedding
//	  raymond/    — Raymond's tree-based token mutual exclusion
//
// ✨ Why choose classics?
//
//   - Readable first – each package fits in one sitting, with the algorithm
//     outline and complexity spelled out in the docs
//   - Deterministic – every randomized algorithm takes a seed
//   - Tested – correctness properties asserted per package, not hand-waved
//
// A small demo CLI lives in cmd/classics.
//
//	go get github.com/algoprose/classics
package classics
