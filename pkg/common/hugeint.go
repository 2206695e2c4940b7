package common

import (
	"fmt"
	"math"
	"math/big"
)

// HugeInt is a 128-bit signed integer, stored as a signed upper 64 bits and
// an unsigned lower 64 bits. It exists here as a worked example of a
// Numeric sort key that isn't a Go built-in type.
type HugeInt struct {
	Lower uint64
	Upper int64
}

func (h HugeInt) String() string {
	return h.big().String()
}

func (h HugeInt) Equal(o HugeInt) bool {
	return h.Lower == o.Lower && h.Upper == o.Upper
}

func (h HugeInt) big() *big.Int {
	v := new(big.Int).Lsh(big.NewInt(h.Upper), 64)
	v.Add(v, new(big.Int).SetUint64(h.Lower))
	return v
}

func hugeIntFromBig(v *big.Int) HugeInt {
	mask := new(big.Int).SetUint64(math.MaxUint64)
	lower := new(big.Int).And(v, mask)
	upper := new(big.Int).Rsh(v, 64)
	return HugeInt{Lower: lower.Uint64(), Upper: upper.Int64()}
}

func NegateHugeInt(input HugeInt) HugeInt {
	if input.Upper == math.MinInt64 && input.Lower == 0 {
		panic("-hugeint overflow")
	}
	return hugeIntFromBig(new(big.Int).Neg(input.big()))
}

// Add returns lhs+rhs, computed through arbitrary precision so a result
// that no longer fits in 128 bits truncates predictably via
// hugeIntFromBig rather than wrapping silently mid-computation.
func (h HugeInt) Add(rhs HugeInt) HugeInt {
	return hugeIntFromBig(new(big.Int).Add(h.big(), rhs.big()))
}

func (h HugeInt) Sub(rhs HugeInt) HugeInt {
	return hugeIntFromBig(new(big.Int).Sub(h.big(), rhs.big()))
}

func (h HugeInt) Mul(rhs HugeInt) HugeInt {
	return hugeIntFromBig(new(big.Int).Mul(h.big(), rhs.big()))
}

func (h HugeInt) Less(rhs HugeInt) bool {
	if h.Upper != rhs.Upper {
		return h.Upper < rhs.Upper
	}
	return h.Lower < rhs.Lower
}

func (h HugeInt) Greater(rhs HugeInt) bool {
	return rhs.Less(h)
}

func (h HugeInt) Float64() float64 {
	f, _ := new(big.Float).SetInt(h.big()).Float64()
	return f
}

func HugeIntFromFloat64(f float64) HugeInt {
	bi, _ := big.NewFloat(f).Int(nil)
	return hugeIntFromBig(bi)
}

func HugeIntFromInt64(v int64) HugeInt {
	if v < 0 {
		return HugeInt{Lower: uint64(v), Upper: -1}
	}
	return HugeInt{Lower: uint64(v), Upper: 0}
}

var _ fmt.Stringer = HugeInt{}
