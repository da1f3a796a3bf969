package money

import "errors"

// Errors returned by this package are wrapped with additional context.
// Use [errors.Is] to check for a particular kind.
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrCurrencyMismatch      = errors.New("currency mismatch")
	ErrInvalidOperand        = errors.New("invalid operand")
	ErrInvalidRoundingMode   = errors.New("invalid rounding mode")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrOverflow              = errors.New("arithmetic overflow")
	ErrUnderflow             = errors.New("arithmetic underflow")
	ErrParse                 = errors.New("parse failure")
	ErrNoSupportedCalculator = errors.New("no supported calculator")
	ErrCalculatorBound       = errors.New("calculator already bound")
)
