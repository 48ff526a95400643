package huffman_test

import (
	"bytes"
	"testing"

	"github.com/algoprose/classics/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip_Text verifies lossless coding of a classic example.
func TestRoundTrip_Text(t *testing.T) {
	data := []byte("abracadabra")

	enc, err := huffman.Encode(data)
	require.NoError(t, err)
	dec, err := huffman.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, data, dec)
}

// TestRoundTrip_Varied exercises several payload shapes.
func TestRoundTrip_Varied(t *testing.T) {
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	payloads := [][]byte{
		[]byte("x"),
		[]byte("xxxxxxxxxx"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		bytes.Repeat([]byte("ab"), 1000),
		allBytes,
		bytes.Repeat(allBytes, 3),
		{0x00, 0x00, 0xFF, 0x00},
	}
	for i, p := range payloads {
		enc, err := huffman.Encode(p)
		require.NoError(t, err, "payload %d", i)
		dec, err := huffman.Decode(enc)
		require.NoError(t, err, "payload %d", i)
		assert.Equal(t, p, dec, "payload %d", i)
	}
}

// TestCodeTable_Abracadabra checks the canonical codebook of "abracadabra":
// 'a' dominates and must get the single shortest code.
func TestCodeTable_Abracadabra(t *testing.T) {
	table, err := huffman.CodeTable([]byte("abracadabra"))
	require.NoError(t, err)

	assert.Equal(t, "0", table['a'])
	assert.Equal(t, "100", table['b'])
	assert.Equal(t, "101", table['c'])
	assert.Equal(t, "110", table['d'])
	assert.Equal(t, "111", table['r'])
}

// TestCodeTable_PrefixFree verifies no code is a prefix of another.
func TestCodeTable_PrefixFree(t *testing.T) {
	table, err := huffman.CodeTable([]byte("mississippi river delta"))
	require.NoError(t, err)

	for s1, c1 := range table {
		for s2, c2 := range table {
			if s1 == s2 {
				continue
			}
			assert.False(t, len(c1) <= len(c2) && c2[:len(c1)] == c1,
				"code %q of %q is a prefix of %q of %q", c1, s1, c2, s2)
		}
	}
}

// TestEncode_CompressesSkewedData verifies a heavily skewed payload shrinks.
func TestEncode_CompressesSkewedData(t *testing.T) {
	data := append(bytes.Repeat([]byte{'a'}, 10000), 'b')

	enc, err := huffman.Encode(data)
	require.NoError(t, err)
	assert.Less(t, len(enc), len(data)/4, "1-bit codes must compress ~8x")

	dec, err := huffman.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, data, dec)
}

// TestEncode_MoreFrequentNeverLonger checks the optimality ordering:
// a strictly more frequent symbol never receives a longer code.
func TestEncode_MoreFrequentNeverLonger(t *testing.T) {
	data := []byte("aaaaaaabbbbccdde")
	table, err := huffman.CodeTable(data)
	require.NoError(t, err)

	freq := map[byte]int{}
	for _, b := range data {
		freq[b]++
	}
	for s1, c1 := range table {
		for s2, c2 := range table {
			if freq[s1] > freq[s2] {
				assert.LessOrEqual(t, len(c1), len(c2),
					"symbol %q (freq %d) must not out-length %q (freq %d)", s1, freq[s1], s2, freq[s2])
			}
		}
	}
}

// TestSingleSymbol verifies the degenerate one-symbol alphabet.
func TestSingleSymbol(t *testing.T) {
	table, err := huffman.CodeTable([]byte("zzzz"))
	require.NoError(t, err)
	assert.Equal(t, map[byte]string{'z': "0"}, table)

	enc, err := huffman.Encode([]byte("zzzz"))
	require.NoError(t, err)
	dec, err := huffman.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, []byte("zzzz"), dec)
}

// TestErrors exercises empty and corrupt inputs.
func TestErrors(t *testing.T) {
	_, err := huffman.Encode(nil)
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)

	_, err = huffman.Decode(nil)
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)

	_, err = huffman.CodeTable(nil)
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)

	// Truncated body: valid header, bits missing.
	enc, err := huffman.Encode([]byte("hello world"))
	require.NoError(t, err)
	_, err = huffman.Decode(enc[:len(enc)-2])
	assert.ErrorIs(t, err, huffman.ErrCorrupt)

	// Truncated symbol table.
	_, err = huffman.Decode(enc[:3])
	assert.ErrorIs(t, err, huffman.ErrCorrupt)

	// Zero code length in the table.
	bad := []byte{0x01, 0x00, 'a', 0x00}
	_, err = huffman.Decode(bad)
	assert.ErrorIs(t, err, huffman.ErrCorrupt)
}
