/*
Package money implements exact arithmetic on monetary amounts.
An amount is an integer number of minor units of its currency (cents,
pennies, satoshis) and never passes through a binary floating-point value.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Arithmetic and comparison operations between amounts of the same currency
  - Multiplication and division by decimal scalars with six rounding modes
  - Allocation of an amount by ratios without losing or creating minor units
  - Conversion between currencies using currency pairs
  - Pluggable arithmetic backends selected once per process

# Representation

An [Amount] consists of a [Currency], a [math/big.Int] number of minor units
and the [Calculator] that performs arithmetic on it.
A Currency is identified by its code only; the package carries no tables of
currency metadata.
Scalars such as multipliers, allocation ratios and exchange ratios are
represented by [Number], an exact decimal value.

# Calculators

Arithmetic is delegated to a Calculator.
The package provides three backends, tried in the following order:

  - [DecimalCalculator], built on github.com/shopspring/decimal;
  - [BigCalculator], built on math/big;
  - [FixedCalculator], built on github.com/govalues/decimal,
    limited to 19 significant digits.

The first supported backend is bound when the first amount is created and
stays bound for the lifetime of the process.
Use [RegisterCalculator] before that point to put a custom backend first,
or [Amount.WithCalc] to inject a backend into particular amounts.

# Rounding

Products and quotients are collapsed to minor units using a [RoundingMode]:
HalfUp, HalfDown, HalfEven, HalfOdd, Up and Down.
Up and Down move away from and toward zero respectively.

# Errors

Operations never panic on invalid input, except for the Must* constructors.
Errors wrap one of the sentinel values of this package, such as
[ErrCurrencyMismatch] or [ErrDivisionByZero], and can be checked with
[errors.Is].
*/
package money
