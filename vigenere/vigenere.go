package vigenere

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey indicates an empty keyword.
	ErrEmptyKey = errors.New("vigenere: key must be non-empty")

	// ErrBadKey indicates a keyword containing non-ASCII-letter characters.
	ErrBadKey = errors.New("vigenere: key must contain only ASCII letters")
)

const alphabet = 26

// shiftLetter rotates an ASCII letter by k (any sign), preserving case.
// Non-letters are returned unchanged.
func shiftLetter(c byte, k int) byte {
	var base byte
	switch {
	case c >= 'a' && c <= 'z':
		base = 'a'
	case c >= 'A' && c <= 'Z':
		base = 'A'
	default:
		return c
	}

	k %= alphabet
	if k < 0 {
		k += alphabet
	}

	return base + (c-base+byte(k))%alphabet
}

// Caesar shifts every ASCII letter of s by the given amount, preserving
// case and passing all other bytes through. Negative shifts decrypt.
//
// Complexity: O(n) time, O(n) memory.
func Caesar(s string, shift int) string {
	out := []byte(s)
	for i, c := range out {
		out[i] = shiftLetter(c, shift)
	}

	return string(out)
}

// ROT13 applies the self-inverse 13-letter shift.
func ROT13(s string) string {
	return Caesar(s, 13)
}

// normalizeKey validates the keyword and lowers it to shift amounts 0..25.
func normalizeKey(key string) ([]int, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	shifts := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
			shifts[i] = int(c - 'a')
		case c >= 'A' && c <= 'Z':
			shifts[i] = int(c - 'A')
		default:
			return nil, fmt.Errorf("key byte %d (%q): %w", i, c, ErrBadKey)
		}
	}

	return shifts, nil
}

// transform runs the Vigenère tableau over s with the given sign.
// Only letters consume key positions; everything else passes through.
func transform(s, key string, sign int) (string, error) {
	shifts, err := normalizeKey(key)
	if err != nil {
		return "", err
	}

	out := []byte(s)
	ki := 0
	for i, c := range out {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			out[i] = shiftLetter(c, sign*shifts[ki%len(shifts)])
			ki++
		}
	}

	return string(out), nil
}

// Encrypt applies the Vigenère cipher to plain with the given keyword.
//
// Errors: ErrEmptyKey, ErrBadKey.
// Complexity: O(n) time, O(n) memory.
func Encrypt(plain, key string) (string, error) {
	return transform(plain, key, 1)
}

// Decrypt inverts Encrypt under the same keyword.
//
// Errors: ErrEmptyKey, ErrBadKey.
func Decrypt(cipher, key string) (string, error) {
	return transform(cipher, key, -1)
}
