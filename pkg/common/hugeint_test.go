package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHugeInt_AddSub(t *testing.T) {
	a := HugeIntFromInt64(1000)
	b := HugeIntFromInt64(300)
	assert.True(t, a.Add(b).Equal(HugeIntFromInt64(1300)))
	assert.True(t, a.Sub(b).Equal(HugeIntFromInt64(700)))
}

func TestHugeInt_NegativeRoundTrip(t *testing.T) {
	h := HugeIntFromInt64(-999)
	assert.Equal(t, float64(-999), h.Float64())
}

func TestHugeInt_LessGreater(t *testing.T) {
	a := HugeIntFromInt64(5)
	b := HugeIntFromInt64(10)
	assert.True(t, a.Less(b))
	assert.True(t, b.Greater(a))
	assert.False(t, a.Greater(b))
}

func TestHugeInt_MulOverflowsPastInt64(t *testing.T) {
	a := HugeIntFromInt64(1 << 40)
	b := HugeIntFromInt64(1 << 40)
	got := a.Mul(b)
	// 2^80 doesn't fit in a signed 64-bit upper+lower pair's low word
	// alone; just check it round-trips through big.Int correctly.
	assert.Equal(t, "1208925819614629174706176", got.String())
}

func TestNegateHugeInt(t *testing.T) {
	h := HugeIntFromInt64(42)
	assert.True(t, NegateHugeInt(h).Equal(HugeIntFromInt64(-42)))
}
