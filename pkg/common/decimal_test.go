package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimal_AddSubMul(t *testing.T) {
	a := DecimalFromInt64(10)
	b := DecimalFromInt64(3)
	assert.True(t, a.Add(b).Equal(DecimalFromInt64(13)))
	assert.True(t, a.Sub(b).Equal(DecimalFromInt64(7)))
	assert.True(t, a.Mul(b).Equal(DecimalFromInt64(30)))
}

func TestDecimal_LessGreater(t *testing.T) {
	a := DecimalFromInt64(1)
	b := DecimalFromInt64(2)
	assert.True(t, a.Less(b))
	assert.True(t, b.Greater(a))
}

func TestDecimal_ParseRoundTrip(t *testing.T) {
	d := DecimalFromFloat64(3.25)
	s := d.String()
	back, err := ParseDecimal(s)
	assert.NoError(t, err)
	assert.True(t, d.Equal(back))
}

func TestDecimalFromFloat64_SaturatesOutOfRange(t *testing.T) {
	overflow := math.MaxFloat64
	overflow *= 10 // runtime overflow to +Inf, beyond what govalues/decimal can hold

	huge := DecimalFromFloat64(overflow)
	assert.True(t, huge.Equal(DecimalFromInt64(1)))

	negHuge := DecimalFromFloat64(-overflow)
	assert.True(t, negHuge.Equal(DecimalFromInt64(-1)))
}

func TestNegateDecimal(t *testing.T) {
	d := DecimalFromInt64(5)
	assert.True(t, NegateDecimal(d).Equal(DecimalFromInt64(-5)))
}
