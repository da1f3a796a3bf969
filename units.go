package money

import (
	"fmt"
	"math/big"
	"strings"
)

// MinorUnitsScale is the number of decimals accepted by [ParseMinorUnits].
const MinorUnitsScale = 2

// ParseMinorUnits converts a decimal string in major units to an integer
// number of minor units, assuming two digits after the separator.
// Leading and trailing spaces are ignored.
// The separator can be either '.' or ','; missing decimals are padded with
// zeros, so "12.5" becomes 1250 and "-,07" becomes -7.
//
// ParseMinorUnits returns an error if the string has more than two decimals,
// contains no digits, or is not a number.
func ParseMinorUnits(s string) (*big.Int, error) {
	return ParseUnits(s, MinorUnitsScale)
}

// ParseUnits is like [ParseMinorUnits] but accepts up to scale decimals,
// for currencies whose minor unit is not a hundredth.
func ParseUnits(s string, scale int) (*big.Int, error) {
	if scale < 0 {
		return nil, fmt.Errorf("parsing units %q: negative scale %v: %w", s, scale, ErrInvalidArgument)
	}
	u, err := parseUnits(strings.TrimSpace(s), scale)
	if err != nil {
		return nil, fmt.Errorf("parsing units %q: %w", s, err)
	}
	return u, nil
}

func parseUnits(s string, scale int) (*big.Int, error) {
	pos, width := 0, len(s)

	// Sign
	neg := false
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}

	// Integer digits
	var digs strings.Builder
	start := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		digs.WriteByte(s[pos])
		pos++
	}
	ndigs := pos - start

	// Separator and decimals
	nfrac := 0
	if pos < width && (s[pos] == '.' || s[pos] == ',') {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			if nfrac == scale {
				return nil, fmt.Errorf("more than %v decimal(s): %w", scale, ErrParse)
			}
			digs.WriteByte(s[pos])
			pos++
			nfrac++
		}
	}
	if pos != width {
		return nil, fmt.Errorf("unexpected character %q: %w", s[pos], ErrParse)
	}
	if ndigs+nfrac == 0 {
		return nil, fmt.Errorf("no digits: %w", ErrParse)
	}
	digs.WriteString(strings.Repeat("0", scale-nfrac))

	u, ok := new(big.Int).SetString(digs.String(), 10)
	if !ok {
		return nil, ErrParse
	}
	if neg {
		u.Neg(u)
	}
	return u, nil
}
