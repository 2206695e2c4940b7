package sihsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_AscDesc(t *testing.T) {
	by := func(v int) int { return v }
	less := func(a, b int) bool { return a < b }

	asc := Asc(by, less)
	assert.True(t, asc.LessElem(1, 2))
	assert.False(t, asc.LessElem(2, 1))

	desc := Desc(by, less)
	assert.True(t, desc.LessElem(2, 1))
	assert.False(t, desc.LessElem(1, 2))
}

func TestOrder_LessOrEqualKey(t *testing.T) {
	o := Asc(func(v int) int { return v }, func(a, b int) bool { return a < b })
	assert.True(t, o.LessOrEqualKey(1, 1))
	assert.True(t, o.LessOrEqualKey(1, 2))
	assert.False(t, o.LessOrEqualKey(2, 1))
}

func TestOrder_ProjectionOnlyAppliedToElements(t *testing.T) {
	calls := 0
	type rec struct{ k int }
	o := Order[rec, int]{
		By:   func(r rec) int { calls++; return r.k },
		Less: func(a, b int) bool { return a < b },
	}
	_ = o.LessElem(rec{k: 1}, rec{k: 2})
	assert.Equal(t, 2, calls)

	calls = 0
	_ = o.LessKey(1, 2)
	assert.Equal(t, 0, calls)
}
