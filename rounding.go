package money

import (
	"fmt"
	"math/big"
	"strings"
)

// RoundingMode selects how a fractional intermediate result collapses to
// an integer number of minor units.
// The zero value is [HalfUp].
type RoundingMode int

const (
	HalfUp   RoundingMode = iota // ties away from zero
	HalfDown                     // ties toward zero
	HalfEven                     // ties to the even neighbour (banker's rounding)
	HalfOdd                      // ties to the odd neighbour
	Up                           // any non-zero fraction away from zero
	Down                         // any fraction toward zero
)

var modeNames = [...]string{
	HalfUp:   "half-up",
	HalfDown: "half-down",
	HalfEven: "half-even",
	HalfOdd:  "half-odd",
	Up:       "up",
	Down:     "down",
}

// ParseRoundingMode converts a mode name to a rounding mode.
// Names are case-insensitive and may use '-', '_' or no separator,
// so "half-even", "HALF_EVEN" and "halfeven" are equivalent.
func ParseRoundingMode(s string) (RoundingMode, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for m, name := range modeNames {
		if key == strings.ReplaceAll(name, "-", "") {
			return RoundingMode(m), nil
		}
	}
	return 0, fmt.Errorf("parsing rounding mode %q: %w", s, ErrInvalidRoundingMode)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if err := m.validate(); err != nil {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return modeNames[m]
}

func (m RoundingMode) validate() error {
	if m < HalfUp || m > Down {
		return fmt.Errorf("rounding mode %d: %w", int(m), ErrInvalidRoundingMode)
	}
	return nil
}

// resolve collapses a non-integral value to an integer.
// The value is described by its integer part t truncated toward zero,
// its sign, and half, the result of comparing the absolute value of its
// fractional part with 1/2.
func (m RoundingMode) resolve(t *big.Int, sign, half int) (*big.Int, error) {
	away := func() *big.Int {
		return new(big.Int).Add(t, big.NewInt(int64(sign)))
	}
	toward := func() *big.Int {
		return new(big.Int).Set(t)
	}

	switch m {
	case Up:
		return away(), nil
	case Down:
		return toward(), nil
	case HalfUp, HalfDown, HalfEven, HalfOdd:
		// handled below
	default:
		return nil, m.validate()
	}

	switch {
	case half < 0:
		return toward(), nil
	case half > 0:
		return away(), nil
	}

	// Exact tie
	even := t.Bit(0) == 0
	switch {
	case m == HalfUp:
		return away(), nil
	case m == HalfDown:
		return toward(), nil
	case m == HalfEven && even, m == HalfOdd && !even:
		return toward(), nil
	default:
		return away(), nil
	}
}

// roundNumber applies the rounding mode to an exact number.
func roundNumber(n Number, m RoundingMode) (*big.Int, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	t, r := n.trunc()
	if r.Sign() == 0 {
		return t, nil
	}
	return m.resolve(t, n.Sign(), cmpHalf(r))
}

// ceilNumber rounds toward positive infinity.
func ceilNumber(n Number) *big.Int {
	t, r := n.trunc()
	if r.Sign() > 0 {
		t.Add(t, bigOne)
	}
	return t
}

// floorNumber rounds toward negative infinity.
func floorNumber(n Number) *big.Int {
	t, r := n.trunc()
	if r.Sign() < 0 {
		t.Sub(t, bigOne)
	}
	return t
}
