package sihsort

import (
	"math"

	"github.com/daviszhen/sihsort/pkg/common"
)

// Integer is the set of built-in signed/unsigned integer key types that get
// interpolating splitter selection for free.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of built-in floating point key types.
type Float interface {
	~float32 | ~float64
}

// NumericOps is the capability the splitter selector needs from a key type
// to interpolate between two samples rather than fall back to the nearest
// one. It is a function table rather than a method-set interface so
// built-in types (int, float64, ...) can supply it without wrapping: the
// choice of specialization lives entirely in which NumericOps constructor
// the caller passes to Config, not in any type switch inside the selector.
type NumericOps[K any] struct {
	Sub func(a, b K) K
	Add func(a, b K) K
	// Scale multiplies a key-space delta by a [0,1] fraction. For
	// integer-like K this rounds the product up, since the interpolation
	// base x0 is itself an integral sample value and
	// ceil(x0+t·delta) == x0+ceil(t·delta), so rounding inside Scale alone
	// is sufficient to keep the result an integer. For floating K it is a
	// plain product.
	Scale   func(delta K, t float64) K
	Float64 func(k K) float64
}

// IntNumeric builds NumericOps for any built-in integer key type.
func IntNumeric[K Integer]() NumericOps[K] {
	return NumericOps[K]{
		Sub:     func(a, b K) K { return a - b },
		Add:     func(a, b K) K { return a + b },
		Scale:   func(delta K, t float64) K { return K(math.Ceil(float64(delta) * t)) },
		Float64: func(k K) float64 { return float64(k) },
	}
}

// FloatNumeric builds NumericOps for any built-in floating point key type.
func FloatNumeric[K Float]() NumericOps[K] {
	return NumericOps[K]{
		Sub:     func(a, b K) K { return a - b },
		Add:     func(a, b K) K { return a + b },
		Scale:   func(delta K, t float64) K { return K(float64(delta) * t) },
		Float64: func(k K) float64 { return float64(k) },
	}
}

// DecimalNumeric builds NumericOps for common.Decimal, an exact base-10
// Numeric key (see SPEC_FULL.md's Domain Stack section).
func DecimalNumeric() NumericOps[common.Decimal] {
	return NumericOps[common.Decimal]{
		Sub: func(a, b common.Decimal) common.Decimal { return a.Sub(b) },
		Add: func(a, b common.Decimal) common.Decimal { return a.Add(b) },
		Scale: func(delta common.Decimal, t float64) common.Decimal {
			return delta.Mul(common.DecimalFromFloat64(t))
		},
		Float64: func(d common.Decimal) float64 { return d.Float64() },
	}
}

// HugeIntNumeric builds NumericOps for common.HugeInt, a 128-bit integer
// Numeric key.
func HugeIntNumeric() NumericOps[common.HugeInt] {
	return NumericOps[common.HugeInt]{
		Sub: func(a, b common.HugeInt) common.HugeInt { return a.Sub(b) },
		Add: func(a, b common.HugeInt) common.HugeInt { return a.Add(b) },
		Scale: func(delta common.HugeInt, t float64) common.HugeInt {
			return common.HugeIntFromFloat64(math.Ceil(delta.Float64() * t))
		},
		Float64: func(h common.HugeInt) float64 { return h.Float64() },
	}
}
