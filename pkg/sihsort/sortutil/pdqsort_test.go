package sortutil

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_RandomInts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]int, 2000)
	for i := range data {
		data[i] = rng.Intn(10000)
	}
	want := append([]int(nil), data...)
	sort.Ints(want)

	Sort(data, func(a, b int) bool { return a < b })
	assert.Equal(t, want, data)
}

func TestSort_AlreadySorted(t *testing.T) {
	data := make([]int, 500)
	for i := range data {
		data[i] = i
	}
	Sort(data, func(a, b int) bool { return a < b })
	assert.True(t, sort.IntsAreSorted(data))
}

func TestSort_ReverseSorted(t *testing.T) {
	n := 500
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	Sort(data, func(a, b int) bool { return a < b })
	assert.True(t, sort.IntsAreSorted(data))
}

func TestSort_AllEqual(t *testing.T) {
	data := make([]int, 300)
	for i := range data {
		data[i] = 7
	}
	Sort(data, func(a, b int) bool { return a < b })
	for _, v := range data {
		assert.Equal(t, 7, v)
	}
}

func TestSort_SmallSlices(t *testing.T) {
	for n := 0; n < 30; n++ {
		rng := rand.New(rand.NewSource(int64(n)))
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(50)
		}
		want := make([]int, n)
		copy(want, data)
		sort.Ints(want)
		Sort(data, func(a, b int) bool { return a < b })
		assert.Equal(t, want, data, "n=%d", n)
	}
}
