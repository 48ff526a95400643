package search_test

import (
	"sort"
	"testing"

	"github.com/algoprose/classics/search"
	"github.com/stretchr/testify/assert"
)

// searchFuncs lists every algorithm under its name, for table runs.
var searchFuncs = map[string]func([]int, int) (int, bool){
	"Binary":        search.Binary[int],
	"Exponential":   search.Exponential[int],
	"Jump":          search.Jump[int],
	"Interpolation": search.Interpolation[int],
}

// TestSearch_FindsEveryElement verifies each algorithm finds every element
// of slices with assorted shapes, and rejects absent targets.
func TestSearch_FindsEveryElement(t *testing.T) {
	slices := [][]int{
		{},
		{1},
		{1, 2},
		{-10, -5, 0, 3, 7, 11, 40, 41, 42, 99},
		{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		{2, 2, 2, 5, 5, 9}, // duplicates
	}
	for name, find := range searchFuncs {
		for si, s := range slices {
			t.Run(name, func(t *testing.T) {
				for _, target := range s {
					idx, ok := find(s, target)
					assert.True(t, ok, "slice %d: %d must be found", si, target)
					assert.Equal(t, target, s[idx], "slice %d: index must hold the target", si)
				}

				for _, absent := range []int{-1000, 1000, 43, 4} {
					if pos := sort.SearchInts(s, absent); pos < len(s) && s[pos] == absent {
						continue // actually present in this fixture
					}
					_, ok := find(s, absent)
					assert.False(t, ok, "slice %d: %d must not be found", si, absent)
				}
			})
		}
	}
}

// TestSearch_EmptyAndSingle verifies the degenerate inputs do not panic.
func TestSearch_EmptyAndSingle(t *testing.T) {
	for name, find := range searchFuncs {
		_, ok := find(nil, 5)
		assert.False(t, ok, "%s on nil", name)

		idx, ok := find([]int{5}, 5)
		assert.True(t, ok, "%s on single match", name)
		assert.Equal(t, 0, idx)

		_, ok = find([]int{5}, 6)
		assert.False(t, ok, "%s on single miss above", name)

		_, ok = find([]int{5}, 4)
		assert.False(t, ok, "%s on single miss below", name)
	}
}

// TestSearch_LargeUniform cross-checks all algorithms on a large uniform
// slice, interpolation's best case.
func TestSearch_LargeUniform(t *testing.T) {
	n := 10_000
	s := make([]int, n)
	for i := range s {
		s[i] = i * 3
	}

	for name, find := range searchFuncs {
		for _, target := range []int{0, 3, 2997, 14_997, 29_994, 29_997} {
			idx, ok := find(s, target)
			assert.True(t, ok, "%s: %d", name, target)
			assert.Equal(t, target/3, idx, "%s: %d", name, target)
		}
		for _, absent := range []int{-3, 1, 29_998, 50_000} {
			_, ok := find(s, absent)
			assert.False(t, ok, "%s: %d", name, absent)
		}
	}
}

// TestInterpolation_AllEqual covers the constant-key guard.
func TestInterpolation_AllEqual(t *testing.T) {
	s := []int{4, 4, 4, 4}

	idx, ok := search.Interpolation(s, 4)
	assert.True(t, ok)
	assert.Equal(t, 4, s[idx])

	_, ok = search.Interpolation(s, 5)
	assert.False(t, ok)
}

// TestInterpolation_Floats verifies the float instantiation.
func TestInterpolation_Floats(t *testing.T) {
	s := []float64{0.5, 1.25, 2.75, 10.0}

	idx, ok := search.Interpolation(s, 2.75)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = search.Interpolation(s, 3.0)
	assert.False(t, ok)
}
