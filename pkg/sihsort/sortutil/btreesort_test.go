package sortutil

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBTreeSort_RandomInts(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := make([]int, 1000)
	for i := range data {
		data[i] = rng.Intn(5000)
	}
	want := append([]int(nil), data...)
	sort.Ints(want)

	BTreeSort(data, func(a, b int) bool { return a < b })
	assert.Equal(t, want, data)
}

func TestBTreeSort_HeavyDuplicates(t *testing.T) {
	data := make([]int, 200)
	for i := range data {
		data[i] = i % 5
	}
	BTreeSort(data, func(a, b int) bool { return a < b })
	assert.True(t, sort.IntsAreSorted(data))
}

func TestBTreeSort_ShortInput(t *testing.T) {
	data := []int{1}
	BTreeSort(data, func(a, b int) bool { return a < b })
	assert.Equal(t, []int{1}, data)

	empty := []int{}
	BTreeSort(empty, func(a, b int) bool { return a < b })
	assert.Empty(t, empty)
}
