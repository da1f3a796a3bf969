package money

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// DecimalCalculator is an arbitrary-precision backend built on
// [github.com/shopspring/decimal]. It never overflows.
// It is the first backend tried by the default registry.
type DecimalCalculator struct{}

func decFromInt(x *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(x, 0)
}

func decFromNumber(n Number) decimal.Decimal {
	return n.dec()
}

func decToNumber(d decimal.Decimal) Number {
	return newNumber(d)
}

func (DecimalCalculator) Name() string {
	return "decimal"
}

func (DecimalCalculator) Supported() bool {
	return true
}

func (DecimalCalculator) Cmp(a, b *big.Int) int {
	return decFromInt(a).Cmp(decFromInt(b))
}

func (DecimalCalculator) Add(a, b *big.Int) (*big.Int, error) {
	return decFromInt(a).Add(decFromInt(b)).BigInt(), nil
}

func (DecimalCalculator) Sub(a, b *big.Int) (*big.Int, error) {
	return decFromInt(a).Sub(decFromInt(b)).BigInt(), nil
}

func (DecimalCalculator) Mul(a *big.Int, e Number) (Number, error) {
	d := decFromInt(a).Mul(decFromNumber(e))
	return decToNumber(d).pad(e.Scale()), nil
}

// Quo computes [QuoScale] digits after the decimal point.
// An inexact quotient is marked with a trailing sticky digit.
func (DecimalCalculator) Quo(a *big.Int, e Number) (Number, error) {
	if e.IsZero() {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", a, e, ErrDivisionByZero)
	}
	q, r := decFromInt(a).QuoRem(decFromNumber(e), QuoScale)
	n := decToNumber(q).pad(QuoScale)
	if !r.IsZero() {
		n = n.sticky(a.Sign() * e.Sign())
	}
	return n, nil
}

func (DecimalCalculator) Ceil(n Number) (*big.Int, error) {
	return decFromNumber(n).Ceil().BigInt(), nil
}

func (DecimalCalculator) Floor(n Number) (*big.Int, error) {
	return decFromNumber(n).Floor().BigInt(), nil
}

func (DecimalCalculator) Round(n Number, mode RoundingMode) (*big.Int, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	d := decFromNumber(n)
	t := d.Truncate(0)
	f := d.Sub(t)
	if f.IsZero() {
		return t.BigInt(), nil
	}
	return mode.resolve(t.BigInt(), d.Sign(), cmpHalf(f))
}

func (DecimalCalculator) Share(a *big.Int, ratio, total Number) (*big.Int, error) {
	if total.IsZero() {
		return nil, fmt.Errorf("computing [%v * %v / %v]: %w", a, ratio, total, ErrDivisionByZero)
	}
	p := decFromInt(a).Mul(decFromNumber(ratio))
	t := decFromNumber(total)
	q, r := p.QuoRem(t, 0)
	if !r.IsZero() && p.Sign() != t.Sign() {
		q = q.Sub(decOne)
	}
	return q.BigInt(), nil
}
