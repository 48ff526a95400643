// Package huffman implements Huffman coding over byte streams, using
// canonical codes so the header only has to carry code lengths.
//
// 🚀 How it works:
//
//	Encode counts symbol frequencies, builds the optimal prefix tree with
//	a min-heap (ties broken by lowest symbol, so output is deterministic),
//	converts the tree to canonical form, and emits:
//
//	  [uvarint payload length][distinct symbol count − 1]
//	  [symbol, code length] per distinct symbol
//	  [bit-packed body, MSB first]
//
//	Decode rebuilds the canonical codebook from the lengths alone and
//	walks the bit stream.
//
// Edge cases:
//   - empty input is rejected (ErrEmptyInput) — there is nothing to code;
//   - a single distinct symbol gets the 1-bit code "0".
//
// ⚙️ Usage:
//
//	enc, err := huffman.Encode(data)
//	dec, err := huffman.Decode(enc)   // dec equals data
//
// Performance: O(n + k·log k) encode for n bytes and k ≤ 256 distinct
// symbols; O(n) decode with an O(1) per-bit codebook lookup.
package huffman
