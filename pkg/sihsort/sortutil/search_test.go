package sortutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchSortedLast(t *testing.T) {
	sorted := []int{2, 4, 4, 7, 9}
	less := func(a, b int) bool { return a < b }

	assert.Equal(t, -1, SearchSortedLast(sorted, 1, less))
	assert.Equal(t, 0, SearchSortedLast(sorted, 2, less))
	assert.Equal(t, 0, SearchSortedLast(sorted, 3, less))
	assert.Equal(t, 2, SearchSortedLast(sorted, 4, less))
	assert.Equal(t, 3, SearchSortedLast(sorted, 8, less))
	assert.Equal(t, 4, SearchSortedLast(sorted, 100, less))
	assert.Equal(t, -1, SearchSortedLast(nil, 5, less))
}

func TestCountLessOrEqual(t *testing.T) {
	sorted := []int{2, 4, 4, 7, 9}
	less := func(a, b int) bool { return a < b }

	assert.Equal(t, 0, CountLessOrEqual(sorted, 1, less))
	assert.Equal(t, 3, CountLessOrEqual(sorted, 4, less))
	assert.Equal(t, 5, CountLessOrEqual(sorted, 100, less))
}
