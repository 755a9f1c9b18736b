package sonar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleSweep = []int{199, 200, 208, 210, 200, 207, 240, 269, 260, 263}

// windowSumsIncreases recomputes every window from scratch.
func windowSumsIncreases(depths []int, window int) int {
	var sums []int
	for i := 0; i+window <= len(depths); i++ {
		s := 0
		for _, d := range depths[i : i+window] {
			s += d
		}
		sums = append(sums, s)
	}
	increases := 0
	for i := 1; i < len(sums); i++ {
		if sums[i] > sums[i-1] {
			increases++
		}
	}
	return increases
}

func TestCountIncreases(t *testing.T) {
	tests := []struct {
		name     string
		depths   []int
		expected int
	}{
		{"sample", sampleSweep, 7},
		{"two rising", []int{1, 2}, 1},
		{"two equal", []int{5, 5}, 0},
		{"falling", []int{9, 8, 7, 6}, 0},
		{"plateaus", []int{1, 1, 2, 2, 3}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountIncreases(tt.depths)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCountIncreasesTooShort(t *testing.T) {
	for _, depths := range [][]int{nil, {}, {100}} {
		_, err := CountIncreases(depths)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestCountWindowedIncreases(t *testing.T) {
	got, err := CountWindowedIncreases(sampleSweep, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = CountWindowedIncreases(sampleSweep, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestWindowOfOneMatchesPlainCount(t *testing.T) {
	sweeps := [][]int{
		sampleSweep,
		{3, 1},
		{0, 0, 0},
		{1, 5, 2, 8, 3, 9, 9, 10},
	}
	for _, depths := range sweeps {
		plain, err := CountIncreases(depths)
		require.NoError(t, err)
		windowed, err := CountWindowedIncreases(depths, 1)
		require.NoError(t, err)
		assert.Equal(t, plain, windowed, "depths %v", depths)
	}
}

func TestRollingSumMatchesResum(t *testing.T) {
	sweeps := [][]int{
		sampleSweep,
		{7, 7, 7, 7, 7},
		{1, 100, 1, 100, 1, 100, 1},
		{0, 3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5},
	}
	for _, depths := range sweeps {
		for window := 1; window <= len(depths); window++ {
			got, err := CountWindowedIncreases(depths, window)
			require.NoError(t, err)
			assert.Equal(t, windowSumsIncreases(depths, window), got, "depths %v window %d", depths, window)
		}
	}
}

func TestSingleWindowHasNoIncreases(t *testing.T) {
	got, err := CountWindowedIncreases([]int{4, 9, 1}, 3)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCountWindowedIncreasesInvalid(t *testing.T) {
	tests := []struct {
		name   string
		depths []int
		window int
	}{
		{"shorter than window", []int{1, 2}, 3},
		{"empty", nil, 1},
		{"zero window", sampleSweep, 0},
		{"negative window", sampleSweep, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CountWindowedIncreases(tt.depths, tt.window)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
