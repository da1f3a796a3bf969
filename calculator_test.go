package money

import (
	"errors"
	"math/big"
	"sync"
	"testing"
)

// unsupportedCalculator is a backend that is never selected.
type unsupportedCalculator struct {
	BigCalculator
}

func (unsupportedCalculator) Name() string    { return "unsupported" }
func (unsupportedCalculator) Supported() bool { return false }

// namedCalculator is a supported backend with a custom name.
type namedCalculator struct {
	BigCalculator
	name string
}

func (c namedCalculator) Name() string { return c.name }

func TestSelectCalculator(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			calcs []Calculator
			want  string
		}{
			{Calculators(), "decimal"},
			{[]Calculator{unsupportedCalculator{}, BigCalculator{}, DecimalCalculator{}}, "big"},
			{[]Calculator{nil, unsupportedCalculator{}, FixedCalculator{}}, "fixed"},
		}
		for _, tt := range tests {
			got, err := SelectCalculator(tt.calcs...)
			if err != nil {
				t.Errorf("SelectCalculator(%v) failed: %v", tt.calcs, err)
				continue
			}
			if got.Name() != tt.want {
				t.Errorf("SelectCalculator(%v) = %q, want %q", tt.calcs, got.Name(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := [][]Calculator{
			nil,
			{unsupportedCalculator{}},
			{nil, unsupportedCalculator{}},
		}
		for _, tt := range tests {
			_, err := SelectCalculator(tt...)
			if !errors.Is(err, ErrNoSupportedCalculator) {
				t.Errorf("SelectCalculator(%v) = %v, want %v", tt, err, ErrNoSupportedCalculator)
			}
		}
	})
}

func TestCalculatorByName(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, name := range []string{"decimal", "big", "fixed"} {
			got, err := CalculatorByName(name)
			if err != nil {
				t.Errorf("CalculatorByName(%q) failed: %v", name, err)
				continue
			}
			if got.Name() != name {
				t.Errorf("CalculatorByName(%q) = %q", name, got.Name())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := CalculatorByName("bcmath")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("CalculatorByName(\"bcmath\") = %v, want %v", err, ErrInvalidArgument)
		}
	})
}

func TestRegistry(t *testing.T) {
	t.Run("register before binding", func(t *testing.T) {
		r := NewRegistry(BigCalculator{})
		if err := r.Register(namedCalculator{name: "custom"}); err != nil {
			t.Fatalf("Register() failed: %v", err)
		}
		if r.Bound() {
			t.Errorf("Bound() = true before the first call to Calculator()")
		}
		got, err := r.Calculator()
		if err != nil {
			t.Fatalf("Calculator() failed: %v", err)
		}
		if got.Name() != "custom" {
			t.Errorf("Calculator() = %q, want \"custom\"", got.Name())
		}
		if !r.Bound() {
			t.Errorf("Bound() = false after the first call to Calculator()")
		}
	})

	t.Run("register after binding", func(t *testing.T) {
		r := NewRegistry(BigCalculator{})
		if _, err := r.Calculator(); err != nil {
			t.Fatalf("Calculator() failed: %v", err)
		}
		err := r.Register(DecimalCalculator{})
		if !errors.Is(err, ErrCalculatorBound) {
			t.Errorf("Register() = %v, want %v", err, ErrCalculatorBound)
		}
		got, _ := r.Calculator()
		if got.Name() != "big" {
			t.Errorf("Calculator() = %q after a rejected registration, want \"big\"", got.Name())
		}
	})

	t.Run("register nil", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register(nil)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Register(nil) = %v, want %v", err, ErrInvalidArgument)
		}
	})

	t.Run("unsupported registered first", func(t *testing.T) {
		r := NewRegistry(FixedCalculator{})
		if err := r.Register(unsupportedCalculator{}); err != nil {
			t.Fatalf("Register() failed: %v", err)
		}
		got, err := r.Calculator()
		if err != nil {
			t.Fatalf("Calculator() failed: %v", err)
		}
		if got.Name() != "fixed" {
			t.Errorf("Calculator() = %q, want \"fixed\"", got.Name())
		}
	})

	t.Run("nothing supported", func(t *testing.T) {
		r := NewRegistry(unsupportedCalculator{})
		for i := 0; i < 2; i++ {
			_, err := r.Calculator()
			if !errors.Is(err, ErrNoSupportedCalculator) {
				t.Errorf("Calculator() = %v, want %v", err, ErrNoSupportedCalculator)
			}
		}
	})

	t.Run("concurrent binding", func(t *testing.T) {
		r := NewRegistry(Calculators()...)
		const n = 16
		names := make([]string, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				c, err := r.Calculator()
				if err == nil {
					names[i] = c.Name()
				}
			}()
		}
		wg.Wait()
		for i, name := range names {
			if name != "decimal" {
				t.Errorf("goroutine %v observed %q, want \"decimal\"", i, name)
			}
		}
	})
}

func TestDefaultCalculator(t *testing.T) {
	got, err := DefaultCalculator()
	if err != nil {
		t.Fatalf("DefaultCalculator() failed: %v", err)
	}
	if got.Name() != "decimal" {
		t.Errorf("DefaultCalculator() = %q, want \"decimal\"", got.Name())
	}
	err = RegisterCalculator(BigCalculator{})
	if !errors.Is(err, ErrCalculatorBound) {
		t.Errorf("RegisterCalculator() = %v, want %v", err, ErrCalculatorBound)
	}
}

func TestCalculator_Agreement(t *testing.T) {
	ints := []int64{0, 1, -1, 7, -7, 100, -100, 1000, 123456789, -987654321}
	nums := []string{"1", "-1", "3", "0.3", "2.5", "-0.85", "1.2345", "7"}

	for _, calc := range Calculators() {
		t.Run(calc.Name(), func(t *testing.T) {
			for _, a := range ints {
				x := big.NewInt(a)
				for _, b := range ints {
					y := big.NewInt(b)
					if got, want := calc.Cmp(x, y), x.Cmp(y); got != want {
						t.Errorf("Cmp(%v, %v) = %v, want %v", x, y, got, want)
					}
					sum, err := calc.Add(x, y)
					if err != nil {
						t.Errorf("Add(%v, %v) failed: %v", x, y, err)
					} else if sum.Int64() != a+b {
						t.Errorf("Add(%v, %v) = %v, want %v", x, y, sum, a+b)
					}
					diff, err := calc.Sub(x, y)
					if err != nil {
						t.Errorf("Sub(%v, %v) failed: %v", x, y, err)
					} else if diff.Int64() != a-b {
						t.Errorf("Sub(%v, %v) = %v, want %v", x, y, diff, a-b)
					}
				}

				for _, s := range nums {
					e := MustParseNumber(s)
					for _, mode := range roundingModes {
						want, err := reference(x, e, mode, false)
						if err != nil {
							t.Fatal(err)
						}
						p, err := calc.Mul(x, e)
						if err != nil {
							t.Errorf("Mul(%v, %v) failed: %v", x, e, err)
							continue
						}
						got, err := calc.Round(p, mode)
						if err != nil {
							t.Errorf("Round(%v, %v) failed: %v", p, mode, err)
						} else if got.Cmp(want) != 0 {
							t.Errorf("Round(Mul(%v, %v), %v) = %v, want %v", x, e, mode, got, want)
						}

						want, err = reference(x, e, mode, true)
						if err != nil {
							t.Fatal(err)
						}
						q, err := calc.Quo(x, e)
						if err != nil {
							t.Errorf("Quo(%v, %v) failed: %v", x, e, err)
							continue
						}
						got, err = calc.Round(q, mode)
						if err != nil {
							t.Errorf("Round(%v, %v) failed: %v", q, mode, err)
						} else if got.Cmp(want) != 0 {
							t.Errorf("Round(Quo(%v, %v), %v) = %v, want %v", x, e, mode, got, want)
						}
					}
				}
			}
		})
	}
}

// TestCalculator_Limits checks operands close to the 19 digits of the fixed
// backend: every backend either agrees with exact arithmetic or reports
// a range error.
func TestCalculator_Limits(t *testing.T) {
	tests := []struct {
		op, a, e string
		want     error // for the fixed backend
	}{
		{"mul", "9999999999999999999", "0.5", ErrOverflow},
		{"mul", "-9999999999999999999", "0.5", ErrUnderflow},
		{"mul", "123456789012345678", "0.1", nil},
		{"mul", "999999999", "9999999999", nil},
		{"quo", "9999999999999999999", "2", ErrOverflow},
		{"quo", "-9999999999999999999", "2", ErrUnderflow},
		{"quo", "999999999999999999", "2", nil},
		{"quo", "1234567890123456789", "7", nil},
		{"quo", "2000000000000000001", "4", nil},
		{"quo", "2000000002000000000", "2000000001", nil},
		{"quo", "2000000002000000001", "2000000001", nil},
		{"quo", "2000000003000000000", "2000000001", nil},
		{"quo", "-2000000002000000000", "2000000001", nil},
	}
	for _, calc := range Calculators() {
		for _, tt := range tests {
			x, _ := new(big.Int).SetString(tt.a, 10)
			e := MustParseNumber(tt.e)
			for _, mode := range roundingModes {
				want, err := reference(x, e, mode, tt.op == "quo")
				if err != nil {
					t.Fatal(err)
				}
				var n Number
				if tt.op == "quo" {
					n, err = calc.Quo(x, e)
				} else {
					n, err = calc.Mul(x, e)
				}
				var got *big.Int
				if err == nil {
					got, err = calc.Round(n, mode)
				}
				switch {
				case calc.Name() == "fixed" && tt.want != nil:
					if !errors.Is(err, tt.want) {
						t.Errorf("%v: %v(%v, %v) = %v, want %v", calc.Name(), tt.op, x, e, err, tt.want)
					}
				case err != nil:
					t.Errorf("%v: %v(%v, %v) failed: %v", calc.Name(), tt.op, x, e, err)
				case got.Cmp(want) != 0:
					t.Errorf("%v: Round(%v(%v, %v), %v) = %v, want %v", calc.Name(), tt.op, x, e, mode, got, want)
				}
			}
		}
	}
}

func TestCalculator_ShareLimits(t *testing.T) {
	tests := []struct {
		a, ratio, total string
		want            error // for the fixed backend
	}{
		{"9999999999999999999", "1", "3", nil},
		{"9999999999999999999", "0.5", "1", ErrOverflow},
		{"-9999999999999999999", "2", "3", ErrUnderflow},
		{"-9999999999999999999", "1", "7", nil},
		{"1234567890123456789", "1.5", "3", ErrOverflow},
	}
	for _, calc := range Calculators() {
		for _, tt := range tests {
			x, _ := new(big.Int).SetString(tt.a, 10)
			ratio, total := MustParseNumber(tt.ratio), MustParseNumber(tt.total)

			r := new(big.Rat).SetFrac(ratio.Coef(), pow10(ratio.Scale()))
			r.Mul(r, new(big.Rat).SetInt(x))
			r.Quo(r, new(big.Rat).SetFrac(total.Coef(), pow10(total.Scale())))
			want := new(big.Int).Div(r.Num(), r.Denom())

			got, err := calc.Share(x, ratio, total)
			switch {
			case calc.Name() == "fixed" && tt.want != nil:
				if !errors.Is(err, tt.want) {
					t.Errorf("%v: Share(%v, %v, %v) = %v, want %v", calc.Name(), x, ratio, total, err, tt.want)
				}
			case err != nil:
				t.Errorf("%v: Share(%v, %v, %v) failed: %v", calc.Name(), x, ratio, total, err)
			case got.Cmp(want) != 0:
				t.Errorf("%v: Share(%v, %v, %v) = %v, want %v", calc.Name(), x, ratio, total, got, want)
			}
		}
	}
}

// reference rounds x * e or x / e using exact rational arithmetic.
func reference(x *big.Int, e Number, mode RoundingMode, quo bool) (*big.Int, error) {
	r := new(big.Rat).SetFrac(e.Coef(), pow10(e.Scale()))
	if quo {
		r.Inv(r)
	}
	r.Mul(r, new(big.Rat).SetInt(x))

	// Exact value as integer part and fraction
	num, den := r.Num(), r.Denom()
	t, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() == 0 {
		return t, nil
	}
	half := new(big.Int).Abs(rem)
	half.Lsh(half, 1)
	return mode.resolve(t, r.Sign(), half.Cmp(den))
}

func TestCalculator_CeilFloor(t *testing.T) {
	tests := []struct {
		n           string
		ceil, floor int64
	}{
		{"2.1", 3, 2},
		{"-2.1", -2, -3},
		{"5", 5, 5},
		{"-0.0001", 0, -1},
	}
	for _, calc := range Calculators() {
		for _, tt := range tests {
			n := MustParseNumber(tt.n)
			got, err := calc.Ceil(n)
			if err != nil {
				t.Errorf("%v: Ceil(%v) failed: %v", calc.Name(), n, err)
			} else if got.Int64() != tt.ceil {
				t.Errorf("%v: Ceil(%v) = %v, want %v", calc.Name(), n, got, tt.ceil)
			}
			got, err = calc.Floor(n)
			if err != nil {
				t.Errorf("%v: Floor(%v) failed: %v", calc.Name(), n, err)
			} else if got.Int64() != tt.floor {
				t.Errorf("%v: Floor(%v) = %v, want %v", calc.Name(), n, got, tt.floor)
			}
		}
	}
}

func TestCalculator_Share(t *testing.T) {
	tests := []struct {
		a            int64
		ratio, total string
		want         int64
	}{
		{1000, "1", "3", 333},
		{-1000, "1", "3", -334},
		{5, "3", "10", 1},
		{5, "7", "10", 3},
		{101, "0.5", "1", 50},
		{101, "0.25", "1.00", 25},
		{0, "1", "2", 0},
		{100, "0", "2", 0},
	}
	for _, calc := range Calculators() {
		for _, tt := range tests {
			ratio, total := MustParseNumber(tt.ratio), MustParseNumber(tt.total)
			got, err := calc.Share(big.NewInt(tt.a), ratio, total)
			if err != nil {
				t.Errorf("%v: Share(%v, %v, %v) failed: %v", calc.Name(), tt.a, ratio, total, err)
				continue
			}
			if got.Int64() != tt.want {
				t.Errorf("%v: Share(%v, %v, %v) = %v, want %v", calc.Name(), tt.a, ratio, total, got, tt.want)
			}
		}
	}
}

func TestCalculator_Errors(t *testing.T) {
	for _, calc := range Calculators() {
		_, err := calc.Quo(big.NewInt(1), Number{})
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%v: Quo(1, 0) = %v, want %v", calc.Name(), err, ErrDivisionByZero)
		}
		_, err = calc.Share(big.NewInt(1), MustParseNumber("1"), Number{})
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%v: Share(1, 1, 0) = %v, want %v", calc.Name(), err, ErrDivisionByZero)
		}
		_, err = calc.Round(MustParseNumber("1"), RoundingMode(-1))
		if !errors.Is(err, ErrInvalidRoundingMode) {
			t.Errorf("%v: Round(1, -1) = %v, want %v", calc.Name(), err, ErrInvalidRoundingMode)
		}
	}
}

func TestFixedCalculator_Range(t *testing.T) {
	maxUnits, _ := new(big.Int).SetString("9999999999999999999", 10)
	minUnits := new(big.Int).Neg(maxUnits)
	calc := FixedCalculator{}

	_, err := calc.Add(maxUnits, bigOne)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Add(%v, 1) = %v, want %v", maxUnits, err, ErrOverflow)
	}
	_, err = calc.Sub(minUnits, bigOne)
	if !errors.Is(err, ErrUnderflow) {
		t.Errorf("Sub(%v, 1) = %v, want %v", minUnits, err, ErrUnderflow)
	}
	_, err = calc.Mul(maxUnits, MustParseNumber("10"))
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Mul(%v, 10) = %v, want %v", maxUnits, err, ErrOverflow)
	}
	_, err = calc.Add(new(big.Int).Add(maxUnits, bigOne), bigZero)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Add(%v + 1, 0) = %v, want %v", maxUnits, err, ErrOverflow)
	}

	// Arbitrary-precision backends do not overflow
	for _, c := range []Calculator{DecimalCalculator{}, BigCalculator{}} {
		got, err := c.Add(maxUnits, bigOne)
		if err != nil {
			t.Errorf("%v: Add(%v, 1) failed: %v", c.Name(), maxUnits, err)
			continue
		}
		if got.String() != "10000000000000000000" {
			t.Errorf("%v: Add(%v, 1) = %v", c.Name(), maxUnits, got)
		}
	}
}
