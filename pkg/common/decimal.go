package common

import (
	decimal2 "github.com/govalues/decimal"
)

// Decimal wraps govalues/decimal to give SIHSort a Numeric sort key with
// exact base-10 arithmetic, so interpolated splitters never pick up
// binary-float rounding error.
type Decimal struct {
	decimal2.Decimal
}

func NewDecimal(d decimal2.Decimal) Decimal {
	return Decimal{d}
}

func DecimalFromInt64(v int64) Decimal {
	return Decimal{decimal2.MustNew(v, 0)}
}

func (dec Decimal) Equal(o Decimal) bool {
	return dec.Decimal.Cmp(o.Decimal) == 0
}

func (dec Decimal) Less(rhs Decimal) bool {
	return dec.Decimal.Cmp(rhs.Decimal) < 0
}

func (dec Decimal) Greater(rhs Decimal) bool {
	return dec.Decimal.Cmp(rhs.Decimal) > 0
}

func (dec Decimal) Add(rhs Decimal) Decimal {
	res, err := dec.Decimal.Add(rhs.Decimal)
	if err != nil {
		panic(err)
	}
	return Decimal{res}
}

func (dec Decimal) Sub(rhs Decimal) Decimal {
	res, err := dec.Decimal.Sub(rhs.Decimal)
	if err != nil {
		panic(err)
	}
	return Decimal{res}
}

func (dec Decimal) Mul(rhs Decimal) Decimal {
	res, err := dec.Decimal.Mul(rhs.Decimal)
	if err != nil {
		panic(err)
	}
	return Decimal{res}
}

func (dec Decimal) Float64() float64 {
	f, _ := dec.Decimal.Float64()
	return f
}

func DecimalFromFloat64(f float64) Decimal {
	d, err := decimal2.NewFromFloat64(f)
	if err != nil {
		// out of decimal2's representable range: saturate rather than panic,
		// this only ever feeds a splitter interpolation, never user data.
		if f > 0 {
			return Decimal{decimal2.MustNew(1, 0)}
		}
		return Decimal{decimal2.MustNew(-1, 0)}
	}
	return Decimal{d}
}

func NegateDecimal(input Decimal) Decimal {
	return Decimal{input.Decimal.Neg()}
}

// ParseDecimal parses s (as produced by Decimal.String) back into a Decimal.
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal2.Parse(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}
