package cobs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates Decode received no bytes; even an empty
	// payload encodes to one code byte.
	ErrEmptyInput = errors.New("cobs: encoded input must be non-empty")

	// ErrZeroCode indicates a 0x00 inside the encoded stream, which COBS
	// never produces.
	ErrZeroCode = errors.New("cobs: zero byte in encoded input")

	// ErrTruncated indicates a code byte promising more bytes than remain.
	ErrTruncated = errors.New("cobs: encoded group truncated")
)

// maxGroup is the longest run of non-zero bytes one code byte can cover.
const maxGroup = 254

// MaxEncodedLen returns the worst-case encoded size for n payload bytes:
// one code byte per started group of 254, plus one for the empty tail group.
func MaxEncodedLen(n int) int {
	return n + n/maxGroup + 1
}

// Encode stuffs src so the result contains no 0x00 bytes.
// The input is never modified; the result is freshly allocated.
//
// Complexity: O(n) time, one pass.
func Encode(src []byte) []byte {
	out := make([]byte, 0, MaxEncodedLen(len(src)))
	out = append(out, 0) // placeholder for the first code byte
	codeIdx := 0         // position of the pending code byte
	code := byte(1)      // offset accumulated so far

	for i, b := range src {
		if b == 0 {
			out[codeIdx] = code
			codeIdx = len(out)
			out = append(out, 0)
			code = 1
			continue
		}
		out = append(out, b)
		code++
		// A full group only opens a successor if more input remains;
		// a stream ending on a full group carries no empty tail.
		if code == 0xFF && i != len(src)-1 {
			out[codeIdx] = code
			codeIdx = len(out)
			out = append(out, 0)
			code = 1
		}
	}
	out[codeIdx] = code

	return out
}

// Decode reverses Encode.
//
// Errors: ErrEmptyInput, ErrZeroCode, ErrTruncated.
// Complexity: O(n) time, one pass.
func Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]byte, 0, len(src))
	i := 0
	for i < len(src) {
		code := src[i]
		if code == 0 {
			return nil, fmt.Errorf("Decode: offset %d: %w", i, ErrZeroCode)
		}
		i++
		n := int(code) - 1
		if i+n > len(src) {
			return nil, fmt.Errorf("Decode: code 0x%02x at offset %d needs %d bytes, %d remain: %w",
				code, i-1, n, len(src)-i, ErrTruncated)
		}
		for k := 0; k < n; k++ {
			if src[i+k] == 0 {
				return nil, fmt.Errorf("Decode: offset %d: %w", i+k, ErrZeroCode)
			}
		}
		out = append(out, src[i:i+n]...)
		i += n

		// A full group implies no zero; any other code is followed by a
		// zero unless it ends the stream.
		if code != 0xFF && i < len(src) {
			out = append(out, 0)
		}
	}

	return out, nil
}
