package money

import (
	"fmt"
	"math/big"
)

// BigCalculator is an arbitrary-precision backend built on [big.Int].
// It never overflows.
type BigCalculator struct{}

func (BigCalculator) Name() string {
	return "big"
}

func (BigCalculator) Supported() bool {
	return true
}

func (BigCalculator) Cmp(a, b *big.Int) int {
	return a.Cmp(b)
}

func (BigCalculator) Add(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Add(a, b), nil
}

func (BigCalculator) Sub(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Sub(a, b), nil
}

// Mul treats e as an integer coefficient, multiplies exactly and puts the
// decimal point back at the scale of e.
func (BigCalculator) Mul(a *big.Int, e Number) (Number, error) {
	return newNumberUnsafe(new(big.Int).Mul(a, e.bigCoef()), e.Scale()), nil
}

// Quo computes [QuoScale] digits after the decimal point.
// An inexact quotient is marked with a trailing sticky digit.
func (BigCalculator) Quo(a *big.Int, e Number) (Number, error) {
	if e.IsZero() {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", a, e, ErrDivisionByZero)
	}
	num := new(big.Int).Mul(a, pow10(e.Scale()+QuoScale))
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(num, e.bigCoef(), r)
	n := newNumberUnsafe(q, QuoScale)
	if r.Sign() != 0 {
		n = n.sticky(a.Sign() * e.Sign())
	}
	return n, nil
}

func (BigCalculator) Ceil(n Number) (*big.Int, error) {
	return ceilNumber(n), nil
}

func (BigCalculator) Floor(n Number) (*big.Int, error) {
	return floorNumber(n), nil
}

func (BigCalculator) Round(n Number, mode RoundingMode) (*big.Int, error) {
	return roundNumber(n, mode)
}

// Share uses Euclidean division, which equals floor division for a
// positive divisor.
func (BigCalculator) Share(a *big.Int, ratio, total Number) (*big.Int, error) {
	if total.IsZero() {
		return nil, fmt.Errorf("computing [%v * %v / %v]: %w", a, ratio, total, ErrDivisionByZero)
	}
	num := new(big.Int).Mul(a, ratio.bigCoef())
	num.Mul(num, pow10(total.Scale()))
	den := new(big.Int).Mul(total.bigCoef(), pow10(ratio.Scale()))
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return new(big.Int).Div(num, den), nil
}
