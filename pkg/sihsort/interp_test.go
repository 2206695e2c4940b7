package sihsort

import "testing"

import "github.com/stretchr/testify/assert"

func TestILog2(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{16, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ILog2(c.n), "n=%d", c.n)
	}
}

func TestIntLinSpace_Endpoints(t *testing.T) {
	ls := IntLinSpace{Start: 10, Stop: 100, Length: 7}
	assert.Equal(t, 10, ls.At(0))
	assert.Equal(t, 100, ls.At(6))
}

func TestIntLinSpace_Monotone(t *testing.T) {
	ls := IntLinSpace{Start: 0, Stop: 49, Length: 10}
	prev := -1
	for i := 0; i < ls.Length; i++ {
		v := ls.At(i)
		assert.GreaterOrEqual(t, v, prev)
		assert.LessOrEqual(t, v, ls.Stop)
		prev = v
	}
}

func TestIntLinSpace_RoundsUp(t *testing.T) {
	// stop-start=10, length=4 -> step 10/3, intermediate indices should
	// round up rather than truncate.
	ls := IntLinSpace{Start: 0, Stop: 10, Length: 4}
	assert.Equal(t, 0, ls.At(0))
	assert.Equal(t, 4, ls.At(1)) // ceil(1*10/3) = 4
	assert.Equal(t, 7, ls.At(2)) // ceil(2*10/3) = 7
	assert.Equal(t, 10, ls.At(3))
}

func TestIntLinSpace_SingleElement(t *testing.T) {
	ls := IntLinSpace{Start: 5, Stop: 5, Length: 1}
	assert.Equal(t, 5, ls.At(0))
}
