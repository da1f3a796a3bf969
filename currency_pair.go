package money

import (
	"fmt"
	"regexp"
)

// CurrencyPair represents a unidirectional conversion ratio between two
// currencies, written in the form "EUR/USD 1.2500".
// The first currency is the counter currency, the one being converted;
// the second one is the base currency, the one obtained in exchange.
// The ratio is the number of base currency units obtained for one unit of
// the counter currency.
//
// CurrencyPair is immutable and safe for concurrent use by multiple goroutines.
type CurrencyPair struct {
	counter Currency // currency being converted
	base    Currency // currency obtained in exchange
	ratio   Number   // always positive
}

var pairPattern = regexp.MustCompile(`^([A-Z]{2,3})/([A-Z]{2,3}) ([0-9]*\.?[0-9]+)$`)

// NewCurrencyPair returns a new currency pair.
//
// NewCurrencyPair returns an error if:
//   - any of the currencies is the zero value;
//   - the ratio is not positive.
func NewCurrencyPair(counter, base Currency, ratio Number) (CurrencyPair, error) {
	if counter.IsZero() || base.IsZero() {
		return CurrencyPair{}, fmt.Errorf("creating currency pair: empty currency: %w", ErrInvalidArgument)
	}
	if !ratio.IsPos() {
		return CurrencyPair{}, fmt.Errorf("creating currency pair: ratio %v must be positive: %w", ratio, ErrInvalidArgument)
	}
	return CurrencyPair{counter: counter, base: base, ratio: ratio}, nil
}

// ParseCurrencyPair converts a string of the form "EUR/USD 1.2500" to a
// currency pair.
// Currency codes must consist of two or three capital letters and the ratio
// must be a positive decimal without sign or exponent.
//
// ParseCurrencyPair returns an error wrapping [ErrParse] if the string does
// not match this form. A zero ratio, such as in "EUR/USD 0", matches the form
// but is rejected with an error wrapping both [ErrParse] and
// [ErrInvalidArgument].
func ParseCurrencyPair(s string) (CurrencyPair, error) {
	m := pairPattern.FindStringSubmatch(s)
	if m == nil {
		return CurrencyPair{}, fmt.Errorf("parsing currency pair %q: %w", s, ErrParse)
	}
	ratio, err := ParseNumber(m[3])
	if err != nil {
		return CurrencyPair{}, fmt.Errorf("parsing currency pair %q: %w: %w", s, ErrParse, err)
	}
	p, err := NewCurrencyPair(MustParseCurr(m[1]), MustParseCurr(m[2]), ratio)
	if err != nil {
		return CurrencyPair{}, fmt.Errorf("parsing currency pair %q: %w: %w", s, ErrParse, err)
	}
	return p, nil
}

// MustParseCurrencyPair is like [ParseCurrencyPair] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currency pairs.
func MustParseCurrencyPair(s string) CurrencyPair {
	p, err := ParseCurrencyPair(s)
	if err != nil {
		panic(fmt.Sprintf("ParseCurrencyPair(%q) failed: %v", s, err))
	}
	return p
}

// Counter returns the currency being converted.
func (p CurrencyPair) Counter() Currency {
	return p.counter
}

// Base returns the currency obtained in exchange for the counter currency.
func (p CurrencyPair) Base() Currency {
	return p.base
}

// Ratio returns the number of base currency units per counter currency unit.
func (p CurrencyPair) Ratio() Number {
	return p.ratio
}

// CanConv returns true if [CurrencyPair.Conv] can be used to convert the given amount.
func (p CurrencyPair) CanConv(a Amount) bool {
	return a.Curr() == p.Counter() &&
		!p.Counter().IsZero() &&
		!p.Base().IsZero() &&
		p.ratio.IsPos()
}

// Conv returns the amount converted from the counter currency to the base
// currency and rounded to minor units using the given rounding mode.
//
// Conv returns an error if:
//   - the amount is not denominated in the counter currency;
//   - the rounding mode is not valid;
//   - the calculator cannot represent the result.
func (p CurrencyPair) Conv(a Amount, mode RoundingMode) (Amount, error) {
	if !p.CanConv(a) {
		return Amount{}, fmt.Errorf("converting [%v] with [%v]: %w", a, p, ErrCurrencyMismatch)
	}
	b, err := a.Convert(p.Base(), p.ratio, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("converting [%v] with [%v]: %w", a, p, err)
	}
	return b, nil
}

// Inv returns the reverse currency pair.
// The reciprocal ratio is truncated to [QuoScale] digits after the decimal point.
func (p CurrencyPair) Inv() (CurrencyPair, error) {
	if !p.ratio.IsPos() {
		return CurrencyPair{}, fmt.Errorf("inverting [%v]: %w", p, ErrDivisionByZero)
	}
	q, _ := decOne.QuoRem(p.ratio.dec(), QuoScale)
	r, err := NewCurrencyPair(p.Base(), p.Counter(), newNumber(q).reduce())
	if err != nil {
		return CurrencyPair{}, fmt.Errorf("inverting [%v]: %w", p, err)
	}
	return r, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of a currency pair, such as "EUR/USD 1.2500".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p CurrencyPair) String() string {
	return p.Counter().Code() + "/" + p.Base().Code() + " " + p.ratio.String()
}
