package huffman

import (
	"container/heap"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyInput indicates there is nothing to encode or decode.
	ErrEmptyInput = errors.New("huffman: input must be non-empty")

	// ErrCorrupt indicates an encoded stream that cannot be decoded:
	// truncated header, truncated body, or a bit sequence matching no code.
	ErrCorrupt = errors.New("huffman: corrupt encoded stream")
)

// node is a Huffman tree node. Leaves carry a symbol; internal nodes carry
// the combined frequency of their subtree.
type node struct {
	freq        int
	seq         int // insertion order, for deterministic ties
	symbol      byte
	left, right *node
}

// nodeHeap orders nodes by (frequency, insertion order).
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}

	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// codeLengths returns the Huffman code length per present symbol.
// A single distinct symbol gets length 1.
func codeLengths(freq *[256]int) map[byte]int {
	h := &nodeHeap{}
	seq := 0
	for s := 0; s < 256; s++ {
		if freq[s] > 0 {
			*h = append(*h, &node{freq: freq[s], seq: seq, symbol: byte(s)})
			seq++
		}
	}
	heap.Init(h)

	if h.Len() == 1 {
		return map[byte]int{(*h)[0].symbol: 1}
	}

	for h.Len() > 1 {
		a := heap.Pop(h).(*node)
		b := heap.Pop(h).(*node)
		heap.Push(h, &node{freq: a.freq + b.freq, seq: seq, left: a, right: b})
		seq++
	}

	lengths := make(map[byte]int)
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		if n.left == nil && n.right == nil {
			lengths[n.symbol] = depth

			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk((*h)[0], 0)

	return lengths
}

// canonicalEntry pairs a symbol with its canonical code.
type canonicalEntry struct {
	symbol byte
	length int
	code   uint64
}

// canonicalCodes assigns canonical codes: symbols sorted by (length, symbol),
// each code being the previous code + 1, left-shifted when the length grows.
func canonicalCodes(lengths map[byte]int) []canonicalEntry {
	entries := make([]canonicalEntry, 0, len(lengths))
	for s, l := range lengths {
		entries = append(entries, canonicalEntry{symbol: s, length: l})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].length != entries[j].length {
			return entries[i].length < entries[j].length
		}

		return entries[i].symbol < entries[j].symbol
	})

	var code uint64
	prevLen := 0
	for i := range entries {
		code <<= uint(entries[i].length - prevLen)
		entries[i].code = code
		prevLen = entries[i].length
		code++
	}

	return entries
}

// Encode compresses data with canonical Huffman coding.
//
// Errors: ErrEmptyInput.
// Complexity: O(n + k·log k) time for k distinct symbols, O(n) memory.
func Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var freq [256]int
	for _, b := range data {
		freq[b]++
	}
	entries := canonicalCodes(codeLengths(&freq))

	codeBySymbol := make(map[byte]canonicalEntry, len(entries))
	for _, e := range entries {
		codeBySymbol[e.symbol] = e
	}

	// Header: payload length, symbol count − 1, (symbol, length) pairs.
	out := binary.AppendUvarint(nil, uint64(len(data)))
	out = append(out, byte(len(entries)-1))
	for _, e := range entries {
		out = append(out, e.symbol, byte(e.length))
	}

	// Body: MSB-first bit packing.
	var acc uint64
	var nbits uint
	for _, b := range data {
		e := codeBySymbol[b]
		acc = acc<<uint(e.length) | e.code
		nbits += uint(e.length)
		for nbits >= 8 {
			nbits -= 8
			out = append(out, byte(acc>>nbits))
		}
	}
	if nbits > 0 {
		out = append(out, byte(acc<<(8-nbits)))
	}

	return out, nil
}

// Decode reverses Encode.
//
// Errors: ErrEmptyInput, ErrCorrupt.
// Complexity: O(n) time with an O(1) per-bit codebook lookup.
func Decode(enc []byte) ([]byte, error) {
	if len(enc) == 0 {
		return nil, ErrEmptyInput
	}

	total, n := binary.Uvarint(enc)
	if n <= 0 {
		return nil, fmt.Errorf("Decode: bad length header: %w", ErrCorrupt)
	}
	pos := n
	if pos >= len(enc) {
		return nil, fmt.Errorf("Decode: missing symbol count: %w", ErrCorrupt)
	}
	count := int(enc[pos]) + 1
	pos++
	if pos+2*count > len(enc) {
		return nil, fmt.Errorf("Decode: truncated symbol table: %w", ErrCorrupt)
	}

	lengths := make(map[byte]int, count)
	for i := 0; i < count; i++ {
		sym, l := enc[pos], int(enc[pos+1])
		pos += 2
		if l == 0 {
			return nil, fmt.Errorf("Decode: zero code length for symbol %d: %w", sym, ErrCorrupt)
		}
		if _, dup := lengths[sym]; dup {
			return nil, fmt.Errorf("Decode: duplicate symbol %d: %w", sym, ErrCorrupt)
		}
		lengths[sym] = l
	}

	// Rebuild the codebook and index it by (length, code).
	type key struct {
		length int
		code   uint64
	}
	bySeq := make(map[key]byte, count)
	for _, e := range canonicalCodes(lengths) {
		bySeq[key{e.length, e.code}] = e.symbol
	}

	out := make([]byte, 0, total)
	var code uint64
	length := 0
	for bitPos := 0; uint64(len(out)) < total; bitPos++ {
		byteIdx := pos + bitPos/8
		if byteIdx >= len(enc) {
			return nil, fmt.Errorf("Decode: body truncated at symbol %d of %d: %w", len(out), total, ErrCorrupt)
		}
		bit := enc[byteIdx] >> (7 - uint(bitPos)%8) & 1
		code = code<<1 | uint64(bit)
		length++
		if length > 64 {
			return nil, fmt.Errorf("Decode: no code matches after 64 bits: %w", ErrCorrupt)
		}
		if sym, ok := bySeq[key{length, code}]; ok {
			out = append(out, sym)
			code, length = 0, 0
		}
	}

	return out, nil
}

// CodeTable returns the canonical code of every distinct symbol in data as
// a binary string, for inspection and teaching.
//
// Errors: ErrEmptyInput.
func CodeTable(data []byte) (map[byte]string, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var freq [256]int
	for _, b := range data {
		freq[b]++
	}

	table := make(map[byte]string)
	for _, e := range canonicalCodes(codeLengths(&freq)) {
		bits := make([]byte, e.length)
		for i := 0; i < e.length; i++ {
			bits[i] = '0' + byte(e.code>>uint(e.length-1-i)&1)
		}
		table[e.symbol] = string(bits)
	}

	return table, nil
}
