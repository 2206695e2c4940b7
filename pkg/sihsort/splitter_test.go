package sihsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intLess(a, b int) bool { return a < b }

func TestSelectSplitters_NumericInterpolates(t *testing.T) {
	// Ten evenly spaced samples 0,10,...,90, each with cumulative count
	// equal to its own index*10 (so N=100, P=4 asks for positions 25,50,75).
	samples := make([]int, 10)
	hist := make([]int64, 10)
	for i := range samples {
		samples[i] = i * 10
		hist[i] = int64(i * 10)
	}
	numeric := IntNumeric[int]()
	x := selectSplitters(samples, hist, 100, 4, intLess, &numeric)
	require := assert.New(t)
	require.Len(x, 3)
	require.Equal(25, x[0])
	require.Equal(50, x[1])
	require.Equal(75, x[2])
}

func TestSelectSplitters_HeavyTiesInterpolatesWithinPlateau(t *testing.T) {
	samples := []int{1, 2, 2, 2, 5}
	hist := []int64{1, 4, 4, 4, 5}
	numeric := IntNumeric[int]()
	x := selectSplitters(samples, hist, 5, 2, intLess, &numeric)
	assert.Len(t, x, 1)
	assert.Contains(t, samples, x[0])
}

func TestSelectSplitters_NonNumericNearestSample(t *testing.T) {
	samples := []string{"a", "b", "c", "d"}
	hist := []int64{2, 4, 6, 8}
	less := func(a, b string) bool { return a < b }
	x := selectSplitters(samples, hist, 8, 2, less, nil)
	assert.Len(t, x, 1)
	assert.Contains(t, samples, x[0])
}
