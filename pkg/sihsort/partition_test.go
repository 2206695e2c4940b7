package sihsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCounts_Basic(t *testing.T) {
	// P=4, three splitter cumulative counts, total 20.
	h := []int64{3, 3, 10}
	out := deriveCounts(h, 20, 4)
	assert.Equal(t, []int64{3, 0, 7, 10}, out)

	var sum int64
	for _, v := range out {
		sum += v
	}
	assert.Equal(t, int64(20), sum)
}

func TestDeriveCounts_SingleRank(t *testing.T) {
	out := deriveCounts(nil, 42, 1)
	assert.Equal(t, []int64{42}, out)
}

func TestDeriveCounts_NonNegative(t *testing.T) {
	h := []int64{0, 0, 5, 5, 12}
	out := deriveCounts(h, 12, 6)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, int64(0))
	}
}
