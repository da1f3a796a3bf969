package money

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Number represents an exact decimal value equal to coef / 10^scale.
// Numbers are used as scalar operands (multipliers, divisors, allocation
// ratios, exchange rates) and as fractional intermediate results produced
// by a [Calculator] before they are collapsed to minor units.
//
// The scale of a number is preserved, so 1.2500 and 1.25 are equal
// but print differently.
//
// The zero value corresponds to 0.
// Number is immutable and safe for concurrent use by multiple goroutines.
type Number struct {
	d decimal.Decimal // exponent is never positive
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)

	decOne  = decimal.New(1, 0)
	decHalf = decimal.New(5, -1)
)

// pow10 returns 10^n as a new integer.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// newNumber wraps the decimal, moving a positive exponent into the coefficient.
func newNumber(d decimal.Decimal) Number {
	if exp := d.Exponent(); exp > 0 {
		coef := d.Coefficient()
		d = decimal.NewFromBigInt(coef.Mul(coef, pow10(int(exp))), 0)
	}
	return Number{d: d}
}

// newNumberUnsafe does not validate the scale.
// Use it only if you are absolutely sure that the arguments are valid.
func newNumberUnsafe(coef *big.Int, scale int) Number {
	return Number{d: decimal.NewFromBigInt(coef, -int32(scale))} //nolint:gosec
}

// NewNumber returns a number equal to coef / 10^scale.
//
// NewNumber returns an error if the scale is negative.
func NewNumber(coef int64, scale int) (Number, error) {
	if scale < 0 || scale > math.MaxInt32 {
		return Number{}, fmt.Errorf("creating number: scale %v out of range: %w", scale, ErrInvalidOperand)
	}
	return Number{d: decimal.New(coef, -int32(scale))}, nil
}

// MustNewNumber is like [NewNumber] but panics if the number cannot be constructed.
func MustNewNumber(coef int64, scale int) Number {
	n, err := NewNumber(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewNumber(%v, %v) failed: %v", coef, scale, err))
	}
	return n
}

// NewNumberFromInt64 returns an integral number.
func NewNumberFromInt64(n int64) Number {
	return Number{d: decimal.NewFromInt(n)}
}

// NewNumberFromBigInt returns a number equal to coef / 10^scale.
// The coefficient is copied.
//
// NewNumberFromBigInt returns an error if coef is nil or the scale is negative.
func NewNumberFromBigInt(coef *big.Int, scale int) (Number, error) {
	if coef == nil {
		return Number{}, fmt.Errorf("creating number: nil coefficient: %w", ErrInvalidOperand)
	}
	if scale < 0 || scale > math.MaxInt32 {
		return Number{}, fmt.Errorf("creating number: scale %v out of range: %w", scale, ErrInvalidOperand)
	}
	return newNumberUnsafe(coef, scale), nil
}

// NewNumberFromFloat64 converts a float to a number using the shortest
// decimal representation that round-trips to the same float.
//
// NewNumberFromFloat64 returns an error if the float is NaN or infinite.
func NewNumberFromFloat64(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidOperand)
	}
	return newNumber(decimal.NewFromFloat(f)), nil
}

// ParseNumber converts a string to a number.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//	5.
//
// ParseNumber returns an error if the string does not represent a finite
// decimal number. Exponents are not accepted.
func ParseNumber(s string) (Number, error) {
	n, err := parseNumber(s)
	if err != nil {
		return Number{}, fmt.Errorf("parsing number %q: %w", s, err)
	}
	return n, nil
}

func parseNumber(s string) (Number, error) {
	pos, width := 0, len(s)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		pos++
	}

	// Integer and fractional digits
	ndigs, dpoint := 0, false
	for ; pos < width; pos++ {
		switch c := s[pos]; {
		case c >= '0' && c <= '9':
			ndigs++
		case c == '.' && !dpoint:
			dpoint = true
		default:
			return Number{}, ErrInvalidOperand
		}
	}
	if ndigs == 0 {
		return Number{}, ErrInvalidOperand
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %w", ErrInvalidOperand, err)
	}
	return newNumber(d), nil
}

// MustParseNumber is like [ParseNumber] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(fmt.Sprintf("ParseNumber(%q) failed: %v", s, err))
	}
	return n
}

// dec returns the underlying decimal.
func (n Number) dec() decimal.Decimal {
	return n.d
}

// bigCoef returns the coefficient.
func (n Number) bigCoef() *big.Int {
	return n.d.Coefficient()
}

// Coef returns a copy of the coefficient.
func (n Number) Coef() *big.Int {
	return n.d.Coefficient()
}

// Scale returns the number of digits after the decimal point.
func (n Number) Scale() int {
	return -int(n.d.Exponent())
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n = 0
//	+1 if n > 0
func (n Number) Sign() int {
	return n.d.Sign()
}

// IsZero returns true if n = 0.
func (n Number) IsZero() bool {
	return n.d.IsZero()
}

// IsNeg returns true if n < 0.
func (n Number) IsNeg() bool {
	return n.d.IsNegative()
}

// IsPos returns true if n > 0.
func (n Number) IsPos() bool {
	return n.d.IsPositive()
}

// IsInt returns true if there are no significant digits after the decimal point.
func (n Number) IsInt() bool {
	return n.d.IsInteger()
}

// Cmp compares numbers numerically and returns:
//
//	-1 if n < m
//	 0 if n = m
//	+1 if n > m
func (n Number) Cmp(m Number) int {
	return n.d.Cmp(m.d)
}

// pad returns a number zero-padded to at least the given scale.
func (n Number) pad(scale int) Number {
	if scale <= n.Scale() {
		return n
	}
	_, d := decimal.RescalePair(decimal.New(0, -int32(scale)), n.d) //nolint:gosec
	return Number{d: d}
}

// add returns the exact sum n + m.
func (n Number) add(m Number) Number {
	return Number{d: n.d.Add(m.d)}
}

// reduce removes trailing zeros after the decimal point.
func (n Number) reduce() Number {
	d, err := decimal.NewFromString(n.d.String())
	if err != nil {
		return n
	}
	return newNumber(d)
}

// sticky appends a trailing digit 1 with the given sign.
// Calculators use it to mark a quotient that was truncated: the marked value
// rounds, ceils and floors to the same integers as the exact quotient.
func (n Number) sticky(sign int) Number {
	scale := n.Scale() + 1
	return Number{d: n.d.Add(decimal.New(int64(sign), -int32(scale)))} //nolint:gosec
}

// trunc returns the integer part truncated toward zero and the fractional
// part, which has the same sign as the number.
func (n Number) trunc() (*big.Int, decimal.Decimal) {
	q, r := n.d.QuoRem(decOne, 0)
	return q.BigInt(), r
}

// cmpHalf compares the absolute value of a fractional part with 1/2.
func cmpHalf(f decimal.Decimal) int {
	return f.Abs().Cmp(decHalf)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the number without exponent.
// Trailing zeros are kept.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	return n.d.StringFixed(-n.d.Exponent())
}
