package money

import (
	"fmt"
	"math/big"
	"sync"
)

// QuoScale is the number of digits after the decimal point kept by the
// arbitrary-precision calculators when a quotient is not exact.
const QuoScale = 32

// Calculator performs exact arithmetic on integer amounts of minor units.
// Implementations must be stateless and safe for concurrent use.
//
// Fractional intermediate results, such as the product of an amount and an
// exchange rate, are returned as a [Number] and collapsed back to an integer
// with Ceil, Floor or Round.
type Calculator interface {
	// Name returns a short identifier of the backend.
	Name() string

	// Supported reports whether the backend can be used in the current
	// environment. It must not have side effects.
	Supported() bool

	// Cmp compares a and b and returns -1, 0 or +1.
	Cmp(a, b *big.Int) int

	// Add returns a + b.
	Add(a, b *big.Int) (*big.Int, error)

	// Sub returns a - b.
	Sub(a, b *big.Int) (*big.Int, error)

	// Mul returns the product of a and e.
	// The scale of the result is equal to the scale of e.
	Mul(a *big.Int, e Number) (Number, error)

	// Quo returns the quotient of a and e.
	Quo(a *big.Int, e Number) (Number, error)

	// Ceil rounds n toward positive infinity.
	Ceil(n Number) (*big.Int, error)

	// Floor rounds n toward negative infinity.
	Floor(n Number) (*big.Int, error)

	// Round rounds n to an integer using the rounding mode.
	Round(n Number, mode RoundingMode) (*big.Int, error)

	// Share returns floor(a * ratio / total).
	Share(a *big.Int, ratio, total Number) (*big.Int, error)
}

// Calculators returns the built-in backends in priority order.
func Calculators() []Calculator {
	return []Calculator{DecimalCalculator{}, BigCalculator{}, FixedCalculator{}}
}

// CalculatorByName returns the built-in backend with the given name.
func CalculatorByName(name string) (Calculator, error) {
	for _, c := range Calculators() {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("calculator %q: %w", name, ErrInvalidArgument)
}

// SelectCalculator returns the first supported calculator.
func SelectCalculator(calcs ...Calculator) (Calculator, error) {
	for _, c := range calcs {
		if c != nil && c.Supported() {
			return c, nil
		}
	}
	return nil, fmt.Errorf("selecting among %d calculator(s): %w", len(calcs), ErrNoSupportedCalculator)
}

// Registry holds an ordered list of calculators and binds the first
// supported one on first use.
// The binding is established once and never changes afterwards.
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu    sync.Mutex
	once  sync.Once
	calcs []Calculator
	calc  Calculator
	err   error
	bound bool
}

// NewRegistry returns a registry probing the calculators in the given order.
func NewRegistry(calcs ...Calculator) *Registry {
	return &Registry{calcs: append([]Calculator(nil), calcs...)}
}

// Register puts the calculator ahead of all previously registered ones.
//
// Register returns an error if the registry has already bound a calculator.
func (r *Registry) Register(c Calculator) error {
	if c == nil {
		return fmt.Errorf("registering calculator: nil calculator: %w", ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bound {
		return fmt.Errorf("registering calculator %q: %w", c.Name(), ErrCalculatorBound)
	}
	r.calcs = append([]Calculator{c}, r.calcs...)
	return nil
}

// Calculator returns the bound calculator, selecting it on the first call.
// Every caller observes the same calculator or the same error.
func (r *Registry) Calculator() (Calculator, error) {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calc, r.err = SelectCalculator(r.calcs...)
		r.bound = true
	})
	return r.calc, r.err
}

// Bound reports whether the registry has already selected a calculator.
func (r *Registry) Bound() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bound
}

var defaultRegistry = NewRegistry(Calculators()...)

// RegisterCalculator puts the calculator ahead of the built-in backends in
// the default registry.
// It must be called before the first amount is created.
func RegisterCalculator(c Calculator) error {
	return defaultRegistry.Register(c)
}

// DefaultCalculator returns the calculator bound by the default registry.
func DefaultCalculator() (Calculator, error) {
	return defaultRegistry.Calculator()
}

func mustDefaultCalculator() Calculator {
	c, err := DefaultCalculator()
	if err != nil {
		panic(fmt.Sprintf("DefaultCalculator() failed: %v", err))
	}
	return c
}
