package money

import (
	"fmt"
	"math/big"
	"strings"
)

// Amount represents a monetary amount as an exact integer number of minor
// units of its currency (e.g. cents, pennies, satoshis).
// Arithmetic on an amount is delegated to the [Calculator] it is bound to.
//
// Constructors bind the calculator selected by the default registry;
// use [Amount.WithCalc] to inject another one.
// The zero value has no currency and is not a valid amount.
//
// Amount is immutable and safe for concurrent use by multiple goroutines.
type Amount struct {
	units *big.Int   // minor units, never shared with callers
	curr  Currency   // currency of the amount
	calc  Calculator // backend performing arithmetic
}

// newAmountUnsafe creates a new amount taking ownership of units.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(c Currency, u *big.Int, calc Calculator) Amount {
	return Amount{curr: c, units: u, calc: calc}
}

// newAmountSafe creates a new amount bound to the default calculator.
func newAmountSafe(c Currency, u *big.Int) (Amount, error) {
	if c.IsZero() {
		return Amount{}, fmt.Errorf("empty currency: %w", ErrInvalidArgument)
	}
	if u == nil {
		return Amount{}, fmt.Errorf("nil units: %w", ErrInvalidArgument)
	}
	calc, err := DefaultCalculator()
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(c, u, calc), nil
}

// NewAmount returns an amount of the given minor units.
// The units are copied.
//
// NewAmount returns an error if:
//   - the currency is the zero value;
//   - units is nil;
//   - no calculator is supported.
func NewAmount(curr Currency, units *big.Int) (Amount, error) {
	var u *big.Int
	if units != nil {
		u = new(big.Int).Set(units)
	}
	a, err := newAmountSafe(curr, u)
	if err != nil {
		return Amount{}, fmt.Errorf("creating amount: %w", err)
	}
	return a, nil
}

// NewAmountFromInt64 returns an amount of the given minor units.
//
// NewAmountFromInt64 returns an error if the currency code is empty.
func NewAmountFromInt64(curr string, units int64) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Amount
	a, err := newAmountSafe(c, big.NewInt(units))
	if err != nil {
		return Amount{}, fmt.Errorf("creating amount: %w", err)
	}
	return a, nil
}

// MustNewAmountFromInt64 is like [NewAmountFromInt64] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmountFromInt64(curr string, units int64) Amount {
	a, err := NewAmountFromInt64(curr, units)
	if err != nil {
		panic(fmt.Sprintf("NewAmountFromInt64(%q, %v) failed: %v", curr, units, err))
	}
	return a
}

// ParseAmount converts a currency code and an integer string of minor units
// to an amount.
// The units string must match [+-]?[0-9]+, so fractional values
// such as "12.5" are rejected.
// To convert a decimal string in major units use [ParseDecimalAmount].
func ParseAmount(curr, units string) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Units
	u, err := parseInteger(units)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing units %q: %w", units, err)
	}
	// Amount
	a, err := newAmountSafe(c, u)
	if err != nil {
		return Amount{}, fmt.Errorf("creating amount: %w", err)
	}
	return a, nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, units string) Amount {
	a, err := ParseAmount(curr, units)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, units, err))
	}
	return a
}

// ParseDecimalAmount converts a currency code and a decimal string in major
// units with at most two decimals, such as "12.5" or "-0,07", to an amount.
// See also [ParseMinorUnits].
func ParseDecimalAmount(curr, amount string) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Units
	u, err := ParseMinorUnits(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	// Amount
	a, err := newAmountSafe(c, u)
	if err != nil {
		return Amount{}, fmt.Errorf("creating amount: %w", err)
	}
	return a, nil
}

// parseInteger parses a signed integer of decimal digits.
func parseInteger(s string) (*big.Int, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || digits == "" {
		return nil, ErrParse
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, ErrParse
		}
	}
	u, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrParse
	}
	return u, nil
}

// WithCalc returns a copy of the amount bound to the given calculator.
// Results of operations on the returned amount are bound to it as well.
//
// WithCalc panics if the calculator is nil.
func (a Amount) WithCalc(calc Calculator) Amount {
	if calc == nil {
		panic(fmt.Sprintf("%v.WithCalc(nil) failed: %v", a, ErrInvalidArgument))
	}
	return newAmountUnsafe(a.curr, a.bigUnits(), calc)
}

// Calc returns the calculator the amount is bound to.
func (a Amount) Calc() Calculator {
	if a.calc == nil {
		return mustDefaultCalculator()
	}
	return a.calc
}

// bigUnits returns the units without copying them.
func (a Amount) bigUnits() *big.Int {
	if a.units == nil {
		return bigZero
	}
	return a.units
}

// with returns an amount in the same currency and with the same calculator.
func (a Amount) with(u *big.Int) Amount {
	return newAmountUnsafe(a.curr, u, a.Calc())
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Units returns a copy of the amount in minor units.
func (a Amount) Units() *big.Int {
	return new(big.Int).Set(a.bigUnits())
}

// Int64 returns the amount in minor units.
// If the result cannot be represented as an int64, then false is returned.
func (a Amount) Int64() (units int64, ok bool) {
	u := a.bigUnits()
	if !u.IsInt64() {
		return 0, false
	}
	return u.Int64(), true
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.Calc().Cmp(a.bigUnits(), bigZero)
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Sign() > 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Sign() < 0
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return a.with(new(big.Int).Abs(a.bigUnits()))
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return a.with(new(big.Int).Neg(a.bigUnits()))
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Equal returns true if amounts have the same currency and the same
// number of minor units.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.Calc().Cmp(a.bigUnits(), b.bigUnits()) == 0
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if:
//   - amounts are denominated in different currencies;
//   - the calculator cannot represent the result.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	u, err := a.Calc().Add(a.bigUnits(), b.bigUnits())
	if err != nil {
		return Amount{}, err
	}
	return a.with(u), nil
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the calculator cannot represent the result.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	u, err := a.Calc().Sub(a.bigUnits(), b.bigUnits())
	if err != nil {
		return Amount{}, err
	}
	return a.with(u), nil
}

// Mul returns the product of amount a and factor e rounded to minor units
// using the given rounding mode.
//
// Mul returns an error if:
//   - the rounding mode is not valid;
//   - the calculator cannot represent the result.
func (a Amount) Mul(e Number, mode RoundingMode) (Amount, error) {
	c, err := a.mul(e, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mul(e Number, mode RoundingMode) (Amount, error) {
	if err := mode.validate(); err != nil {
		return Amount{}, err
	}
	calc := a.Calc()
	p, err := calc.Mul(a.bigUnits(), e)
	if err != nil {
		return Amount{}, err
	}
	u, err := calc.Round(p, mode)
	if err != nil {
		return Amount{}, err
	}
	return a.with(u), nil
}

// Quo returns the quotient of amount a and divisor e rounded to minor units
// using the given rounding mode.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the rounding mode is not valid;
//   - the calculator cannot represent the result.
func (a Amount) Quo(e Number, mode RoundingMode) (Amount, error) {
	c, err := a.quo(e, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) quo(e Number, mode RoundingMode) (Amount, error) {
	if err := mode.validate(); err != nil {
		return Amount{}, err
	}
	if e.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	calc := a.Calc()
	q, err := calc.Quo(a.bigUnits(), e)
	if err != nil {
		return Amount{}, err
	}
	u, err := calc.Round(q, mode)
	if err != nil {
		return Amount{}, err
	}
	return a.with(u), nil
}

// Convert returns the amount multiplied by the rate, rounded to minor units
// using the given rounding mode, and denominated in currency curr.
// See also [CurrencyPair.Conv], which also checks the source currency.
//
// Convert returns an error if:
//   - the target currency is the zero value;
//   - the rate is negative;
//   - the rounding mode is not valid;
//   - the calculator cannot represent the result.
func (a Amount) Convert(curr Currency, rate Number, mode RoundingMode) (Amount, error) {
	c, err := a.convert(curr, rate, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("converting [%v] to %v at %v: %w", a, curr, rate, err)
	}
	return c, nil
}

func (a Amount) convert(curr Currency, rate Number, mode RoundingMode) (Amount, error) {
	if curr.IsZero() {
		return Amount{}, fmt.Errorf("empty currency: %w", ErrInvalidArgument)
	}
	if rate.IsNeg() {
		return Amount{}, fmt.Errorf("negative rate: %w", ErrInvalidArgument)
	}
	b, err := a.mul(rate, mode)
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(curr, b.units, b.calc), nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "USD 100" for one hundred cents.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.bigUnits().String()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.Calc().Cmp(a.bigUnits(), b.bigUnits()), nil
}

// GreaterThan returns true if a > b.
//
// GreaterThan returns an error if amounts are denominated in different currencies.
func (a Amount) GreaterThan(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c > 0, err
}

// GreaterThanOrEqual returns true if a >= b.
//
// GreaterThanOrEqual returns an error if amounts are denominated in different currencies.
func (a Amount) GreaterThanOrEqual(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c >= 0, err
}

// LessThan returns true if a < b.
//
// LessThan returns an error if amounts are denominated in different currencies.
func (a Amount) LessThan(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c < 0, err
}

// LessThanOrEqual returns true if a <= b.
//
// LessThanOrEqual returns an error if amounts are denominated in different currencies.
func (a Amount) LessThanOrEqual(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c <= 0, err
}

// Min returns the smaller amount.
//
// Min returns an error if amounts are denominated in different currencies.
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0: // a <= b
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if amounts are denominated in different currencies.
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0: // a >= b
		return a, nil
	default:
		return b, nil
	}
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example   | Description                |
//	| ------ | --------- | -------------------------- |
//	| %s, %v | USD 568   | Currency and minor units   |
//	| %q     | "USD 568" | Quoted currency and units  |
//	| %d     | 568       | Minor units                |
//	| %c     | USD       | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+' format flag can be used with all verbs except %c.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	// Units with arithmetic sign
	units := a.bigUnits().String()
	if state.Flag('+') && a.bigUnits().Sign() >= 0 {
		units = "+" + units
	}

	var text string
	switch verb {
	case 'd', 'D':
		text = units
	case 'c', 'C':
		text = a.Curr().Code()
	case 'q', 'Q':
		text = `"` + a.Curr().Code() + " " + units + `"`
	case 's', 'S', 'v', 'V':
		text = a.Curr().Code() + " " + units
	default:
		text = "%!" + string(verb) + "(money.Amount=" + a.String() + ")"
	}

	writePadded(state, text)
}

// writePadded writes the text padded with spaces to the width of the state.
// The '-' flag moves the padding to the right.
func writePadded(state fmt.State, text string) {
	if w, ok := state.Width(); ok && w > len(text) {
		pad := strings.Repeat(" ", w-len(text))
		if state.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}
	//nolint:errcheck
	state.Write([]byte(text))
}
