package money

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// FixedCalculator is a fixed-width backend built on [github.com/govalues/decimal].
// Every operand and result must fit into [decimal.MaxPrec] (19) significant digits.
//
// Limitations:
//   - integer results outside of the representable range fail with
//     [ErrOverflow] or [ErrUnderflow];
//   - products that need more than 19 digits fail in the same way;
//   - quotients are kept to 19 significant digits, enough to round them
//     like the exact value unless the integer part alone takes all 19.
type FixedCalculator struct{}

var (
	fixedOne  = decimal.MustNew(1, 0)
	fixedHalf = decimal.MustNew(5, 1)
)

// rangeError returns ErrOverflow for a positive result and ErrUnderflow
// for a negative one.
func rangeError(sign int) error {
	if sign < 0 {
		return ErrUnderflow
	}
	return ErrOverflow
}

func fixedFromInt(x *big.Int) (decimal.Decimal, error) {
	d, err := decimal.Parse(x.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", x, rangeError(x.Sign()))
	}
	return d, nil
}

func fixedFromNumber(n Number) (decimal.Decimal, error) {
	d, err := decimal.Parse(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", n, rangeError(n.Sign()))
	}
	return d, nil
}

func fixedToNumber(d decimal.Decimal) Number {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return newNumberUnsafe(coef, d.Scale())
}

// fixedToInt converts an integral decimal to an integer.
func fixedToInt(d decimal.Decimal) *big.Int {
	t, _ := fixedToNumber(d.Trunc(0)).trunc()
	return t
}

// fits reports whether the integer can be represented by the backend.
func fixedFits(x *big.Int) error {
	_, err := fixedFromInt(x)
	return err
}

func (FixedCalculator) Name() string {
	return "fixed"
}

func (FixedCalculator) Supported() bool {
	return true
}

// Cmp is exact for any operands, including those outside of the
// representable range.
func (FixedCalculator) Cmp(a, b *big.Int) int {
	d, err := fixedFromInt(a)
	if err != nil {
		return a.Cmp(b)
	}
	e, err := fixedFromInt(b)
	if err != nil {
		return a.Cmp(b)
	}
	return d.Cmp(e)
}

func (FixedCalculator) Add(a, b *big.Int) (*big.Int, error) {
	d, err := fixedFromInt(a)
	if err != nil {
		return nil, err
	}
	e, err := fixedFromInt(b)
	if err != nil {
		return nil, err
	}
	f, err := d.Add(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v + %v]: %w", a, b, rangeError(a.Sign()+b.Sign()))
	}
	return fixedToInt(f), nil
}

func (FixedCalculator) Sub(a, b *big.Int) (*big.Int, error) {
	d, err := fixedFromInt(a)
	if err != nil {
		return nil, err
	}
	e, err := fixedFromInt(b)
	if err != nil {
		return nil, err
	}
	f, err := d.Sub(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v - %v]: %w", a, b, rangeError(a.Sign()-b.Sign()))
	}
	return fixedToInt(f), nil
}

// Mul fails with [ErrOverflow] or [ErrUnderflow] if the exact product
// does not fit into 19 digits.
func (FixedCalculator) Mul(a *big.Int, e Number) (Number, error) {
	g, err := fixedMul(a, e)
	if err != nil {
		return Number{}, err
	}
	return fixedToNumber(g).pad(e.Scale()), nil
}

// fixedMul returns the product of a and e.
// Products longer than 19 digits come back rounded and are rejected.
func fixedMul(a *big.Int, e Number) (decimal.Decimal, error) {
	d, err := fixedFromInt(a)
	if err != nil {
		return decimal.Decimal{}, err
	}
	f, err := fixedFromNumber(e)
	if err != nil {
		return decimal.Decimal{}, err
	}
	g, err := d.Mul(f)
	if err != nil || fixedToNumber(g).Cmp(newNumberUnsafe(new(big.Int).Mul(a, e.bigCoef()), e.Scale())) != 0 {
		return decimal.Decimal{}, fmt.Errorf("computing [%v * %v]: %w", a, e, rangeError(a.Sign()*e.Sign()))
	}
	return g, nil
}

// Quo returns the quotient rounded to 19 significant digits.
// A rounded quotient that lands on an integer or a half is moved by one unit
// in the last place toward the exact quotient, so that it rounds, ceils and
// floors like the exact one. Quo fails with [ErrOverflow] or [ErrUnderflow]
// when no such digit is left.
func (FixedCalculator) Quo(a *big.Int, e Number) (Number, error) {
	if e.IsZero() {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", a, e, ErrDivisionByZero)
	}
	d, err := fixedFromInt(a)
	if err != nil {
		return Number{}, err
	}
	f, err := fixedFromNumber(e)
	if err != nil {
		return Number{}, err
	}
	g, err := d.Quo(f)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", a, e, rangeError(a.Sign()*e.Sign()))
	}
	g = g.Pad(decimal.MaxScale)

	dir := cmpProduct(a, fixedToNumber(g), e) * e.Sign()
	if dir == 0 || !fixedOnHalf(g) {
		return fixedToNumber(g), nil
	}
	if g.Scale() == 0 {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", a, e, rangeError(a.Sign()*e.Sign()))
	}
	ulp := decimal.MustNew(int64(dir), g.Scale())
	if g, err = g.Add(ulp); err != nil {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", a, e, rangeError(a.Sign()*e.Sign()))
	}
	return fixedToNumber(g), nil
}

// cmpProduct compares x with n * e exactly.
func cmpProduct(x *big.Int, n, e Number) int {
	p := new(big.Int).Mul(n.bigCoef(), e.bigCoef())
	y := new(big.Int).Mul(x, pow10(n.Scale()+e.Scale()))
	return y.Cmp(p)
}

// fixedOnHalf reports whether the decimal is a multiple of 1/2.
func fixedOnHalf(d decimal.Decimal) bool {
	f, err := d.Sub(d.Trunc(0))
	if err != nil {
		return false
	}
	return f.IsZero() || f.CmpAbs(fixedHalf) == 0
}

func (FixedCalculator) Ceil(n Number) (*big.Int, error) {
	d, err := fixedFromNumber(n)
	if err != nil {
		return nil, err
	}
	x := fixedToInt(d.Ceil(0))
	if err := fixedFits(x); err != nil {
		return nil, err
	}
	return x, nil
}

func (FixedCalculator) Floor(n Number) (*big.Int, error) {
	d, err := fixedFromNumber(n)
	if err != nil {
		return nil, err
	}
	x := fixedToInt(d.Floor(0))
	if err := fixedFits(x); err != nil {
		return nil, err
	}
	return x, nil
}

func (FixedCalculator) Round(n Number, mode RoundingMode) (*big.Int, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	d, err := fixedFromNumber(n)
	if err != nil {
		return nil, err
	}
	t := d.Trunc(0)
	f, err := d.Sub(t)
	if err != nil {
		return nil, fmt.Errorf("computing [%v - %v]: %w", d, t, err)
	}
	if f.IsZero() {
		return fixedToInt(t), nil
	}
	x, err := mode.resolve(fixedToInt(t), d.Sign(), f.CmpAbs(fixedHalf))
	if err != nil {
		return nil, err
	}
	if err := fixedFits(x); err != nil {
		return nil, err
	}
	return x, nil
}

// Share fails with [ErrOverflow] or [ErrUnderflow] if the exact product
// a * ratio does not fit into 19 digits.
// The quotient is computed with an exact integer division.
func (FixedCalculator) Share(a *big.Int, ratio, total Number) (*big.Int, error) {
	if total.IsZero() {
		return nil, fmt.Errorf("computing [%v * %v / %v]: %w", a, ratio, total, ErrDivisionByZero)
	}
	p, err := fixedMul(a, ratio)
	if err != nil {
		return nil, err
	}
	t, err := fixedFromNumber(total)
	if err != nil {
		return nil, err
	}
	q, rem, err := p.QuoRem(t)
	if err != nil {
		return nil, fmt.Errorf("computing [%v / %v]: %w", p, total, rangeError(p.Sign()*t.Sign()))
	}
	if !rem.IsZero() && p.Sign() != t.Sign() {
		if q, err = q.Sub(fixedOne); err != nil {
			return nil, fmt.Errorf("computing share: %w", rangeError(-1))
		}
	}
	return fixedToInt(q), nil
}
