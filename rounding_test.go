package money

import (
	"errors"
	"testing"
)

var roundingTests = []struct {
	n    string
	want [6]int64 // HalfUp, HalfDown, HalfEven, HalfOdd, Up, Down
}{
	{"2.5", [6]int64{3, 2, 2, 3, 3, 2}},
	{"-2.5", [6]int64{-3, -2, -2, -3, -3, -2}},
	{"3.5", [6]int64{4, 3, 4, 3, 4, 3}},
	{"-3.5", [6]int64{-4, -3, -4, -3, -4, -3}},
	{"0.5", [6]int64{1, 0, 0, 1, 1, 0}},
	{"-0.5", [6]int64{-1, 0, 0, -1, -1, 0}},
	{"2.4", [6]int64{2, 2, 2, 2, 3, 2}},
	{"2.51", [6]int64{3, 3, 3, 3, 3, 2}},
	{"-2.6", [6]int64{-3, -3, -3, -3, -3, -2}},
	{"-2.49999", [6]int64{-2, -2, -2, -2, -3, -2}},
	{"0.001", [6]int64{0, 0, 0, 0, 1, 0}},
	{"7", [6]int64{7, 7, 7, 7, 7, 7}},
	{"-7.000", [6]int64{-7, -7, -7, -7, -7, -7}},
	{"0", [6]int64{0, 0, 0, 0, 0, 0}},
}

var roundingModes = [6]RoundingMode{HalfUp, HalfDown, HalfEven, HalfOdd, Up, Down}

func TestRoundingMode_Round(t *testing.T) {
	for _, tt := range roundingTests {
		n := MustParseNumber(tt.n)
		for i, mode := range roundingModes {
			got, err := roundNumber(n, mode)
			if err != nil {
				t.Errorf("roundNumber(%v, %v) failed: %v", n, mode, err)
				continue
			}
			if got.Int64() != tt.want[i] {
				t.Errorf("roundNumber(%v, %v) = %v, want %v", n, mode, got, tt.want[i])
			}
		}
	}
}

func TestRoundingMode_Idempotent(t *testing.T) {
	for _, tt := range roundingTests {
		n := MustParseNumber(tt.n)
		for _, mode := range roundingModes {
			once, err := roundNumber(n, mode)
			if err != nil {
				t.Fatalf("roundNumber(%v, %v) failed: %v", n, mode, err)
			}
			m := newNumberUnsafe(once, 0)
			twice, err := roundNumber(m, mode)
			if err != nil {
				t.Fatalf("roundNumber(%v, %v) failed: %v", m, mode, err)
			}
			if once.Cmp(twice) != 0 {
				t.Errorf("roundNumber(%v, %v) = %v, want %v", m, mode, twice, once)
			}
		}
	}
}

func TestRoundingMode_Invalid(t *testing.T) {
	tests := []RoundingMode{-1, Down + 1, 42}
	for _, mode := range tests {
		_, err := roundNumber(MustParseNumber("1"), mode)
		if !errors.Is(err, ErrInvalidRoundingMode) {
			t.Errorf("roundNumber(1, %v) = %v, want %v", mode, err, ErrInvalidRoundingMode)
		}
		_, err = roundNumber(MustParseNumber("1.5"), mode)
		if !errors.Is(err, ErrInvalidRoundingMode) {
			t.Errorf("roundNumber(1.5, %v) = %v, want %v", mode, err, ErrInvalidRoundingMode)
		}
	}
}

func TestCeilFloor(t *testing.T) {
	tests := []struct {
		n           string
		ceil, floor int64
	}{
		{"2.1", 3, 2},
		{"-2.1", -2, -3},
		{"2", 2, 2},
		{"-0.5", 0, -1},
		{"0.000001", 1, 0},
	}
	for _, tt := range tests {
		n := MustParseNumber(tt.n)
		if got := ceilNumber(n); got.Int64() != tt.ceil {
			t.Errorf("ceilNumber(%v) = %v, want %v", n, got, tt.ceil)
		}
		if got := floorNumber(n); got.Int64() != tt.floor {
			t.Errorf("floorNumber(%v) = %v, want %v", n, got, tt.floor)
		}
	}
}

func TestParseRoundingMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want RoundingMode
		}{
			{"half-up", HalfUp},
			{"HALF_DOWN", HalfDown},
			{"halfeven", HalfEven},
			{"Half Odd", HalfOdd},
			{"up", Up},
			{"DOWN", Down},
		}
		for _, tt := range tests {
			got, err := ParseRoundingMode(tt.s)
			if err != nil {
				t.Errorf("ParseRoundingMode(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "nearest", "half", "ceil"}
		for _, tt := range tests {
			_, err := ParseRoundingMode(tt)
			if !errors.Is(err, ErrInvalidRoundingMode) {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt, err, ErrInvalidRoundingMode)
			}
		}
	})
}

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{HalfUp, "half-up"},
		{HalfEven, "half-even"},
		{Down, "down"},
		{RoundingMode(9), "RoundingMode(9)"},
	}
	for _, tt := range tests {
		got := tt.mode.String()
		if got != tt.want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
