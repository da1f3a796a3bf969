package money

import (
	"fmt"
)

// Currency represents a currency identified by its code.
// Codes are case-sensitive and are not checked against any registry of
// currencies, so both "USD" and "XBT" are valid.
// The zero value has an empty code and is not a valid currency.
//
// Currency is comparable with ==, which is the same as [Currency.Equal].
type Currency struct {
	code string
}

// ParseCurr returns a currency with the given code.
//
// ParseCurr returns an error if the code is empty.
func ParseCurr(code string) (Currency, error) {
	if code == "" {
		return Currency{}, fmt.Errorf("parsing currency: empty code: %w", ErrInvalidArgument)
	}
	return Currency{code: code}, nil
}

// MustParseCurr is like [ParseCurr] but panics if the code is empty.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// Code returns the currency code.
func (c Currency) Code() string {
	return c.code
}

// IsZero returns true for the zero value of Currency.
func (c Currency) IsZero() bool {
	return c.code == ""
}

// Equal returns true if the currencies have the same code.
func (c Currency) Equal(d Currency) bool {
	return c.code == d.code
}

// String method implements the [fmt.Stringer] interface and returns
// the currency code.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'q', 'Q':
		text = `"` + c.Code() + `"`
	case 's', 'S', 'v', 'V', 'c', 'C':
		text = c.Code()
	default:
		text = "%!" + string(verb) + "(money.Currency=" + c.Code() + ")"
	}
	writePadded(state, text)
}
