package money

import (
	"fmt"
	"math/big"
)

// Allocate distributes the amount among len(ratios) parts proportionally to
// the ratios.
// Each part first receives floor(a * ratio / total) minor units; the units
// left over are then handed out one at a time to the parts in the order of
// the ratios, starting from the first one.
// The parts always sum up exactly to the original amount and
// no part differs from its exact proportional share by more than one minor unit.
//
// Allocate returns an error if:
//   - no ratios are given;
//   - any ratio is negative;
//   - the sum of ratios is 0;
//   - the calculator cannot represent an intermediate result.
func (a Amount) Allocate(ratios ...Number) ([]Amount, error) {
	parts, err := a.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("allocating [%v] by %v: %w", a, ratios, err)
	}
	return parts, nil
}

func (a Amount) allocate(ratios []Number) ([]Amount, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("no ratios: %w", ErrInvalidArgument)
	}

	// Total
	total := NewNumberFromInt64(0)
	for i, r := range ratios {
		if r.IsNeg() {
			return nil, fmt.Errorf("ratio #%v is negative: %w", i, ErrInvalidArgument)
		}
		total = total.add(r)
	}
	if total.IsZero() {
		return nil, fmt.Errorf("ratios sum up to 0: %w", ErrInvalidArgument)
	}

	// Shares
	calc := a.Calc()
	units := a.bigUnits()
	shares := make([]*big.Int, len(ratios))
	rest := units
	for i, r := range ratios {
		s, err := calc.Share(units, r, total)
		if err != nil {
			return nil, err
		}
		if rest, err = calc.Sub(rest, s); err != nil {
			return nil, err
		}
		shares[i] = s
	}

	// Remainder
	if rest.Sign() < 0 || rest.Cmp(big.NewInt(int64(len(ratios)))) >= 0 {
		return nil, fmt.Errorf("calculator %q: remainder %v out of range: %w", calc.Name(), rest, rangeError(rest.Sign()))
	}
	for i := 0; rest.Sign() > 0; i++ {
		s, err := calc.Add(shares[i], bigOne)
		if err != nil {
			return nil, err
		}
		shares[i] = s
		rest = new(big.Int).Sub(rest, bigOne)
	}

	parts := make([]Amount, len(shares))
	for i, s := range shares {
		parts[i] = a.with(s)
	}
	return parts, nil
}

// Split distributes the amount into n parts that differ by at most one
// minor unit; the larger parts come first.
// It is equivalent to Allocate with n equal ratios.
//
// Split returns an error if n is not positive.
func (a Amount) Split(n int) ([]Amount, error) {
	if n <= 0 {
		return nil, fmt.Errorf("splitting [%v] into %v parts: %w", a, n, ErrInvalidArgument)
	}
	ratios := make([]Number, n)
	for i := range ratios {
		ratios[i] = NewNumberFromInt64(1)
	}
	parts, err := a.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("splitting [%v] into %v parts: %w", a, n, err)
	}
	return parts, nil
}
