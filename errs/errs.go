// Package errs defines the error kinds shared by every package in this
// module and a small set of helpers for attaching context to them.
//
// Every error that escapes the module wraps exactly one of the sentinel
// values below, so callers can classify a failure with a single
// [errors.Is] check regardless of which kind (BigInteger, BigDecimal,
// BigRational) or which layer (parser, calculator, rounding engine)
// produced it.
package errs

import (
	"github.com/pkg/errors"
)

// Sentinel error kinds. See spec §7 for the authoritative description of
// each kind's trigger conditions.
var (
	// NumberFormat reports a string that does not match the grammar of the
	// value it was supposed to produce, an out-of-alphabet character, or
	// an empty input.
	NumberFormat = errors.New("number format")

	// InvalidArgument reports an out-of-range parameter: a negative scale,
	// an exponent outside [0, 1_000_000], a base outside [2, 36], a
	// duplicated or too-short alphabet, a negative bit index/count, or
	// min > max in a random range.
	InvalidArgument = errors.New("invalid argument")

	// DivisionByZero reports division, modulus, denominator construction,
	// or reciprocal applied to a zero divisor.
	DivisionByZero = errors.New("division by zero")

	// RoundingNecessary reports that an exact result does not exist and
	// the caller requested rounding.Unnecessary.
	RoundingNecessary = errors.New("rounding necessary")

	// NegativeNumber reports sqrt of a negative operand, arbitrary-base
	// rendering of a negative integer, unsigned byte encoding of a
	// negative integer, or a negative exponent/modulus where one is
	// disallowed.
	NegativeNumber = errors.New("negative number")

	// IntegerOverflow reports a conversion to a native integer type whose
	// value does not fit.
	IntegerOverflow = errors.New("integer overflow")

	// NoInverse reports that modInverse was asked for an inverse that
	// does not exist because gcd(x, m) != 1.
	NoInverse = errors.New("no modular inverse")

	// RandomSource reports that a pluggable random-bytes source returned
	// a byte count other than the one requested, or failed outright.
	RandomSource = errors.New("random source failure")
)

// Wrap attaches msg as context to a sentinel error, preserving the
// sentinel for errors.Is and recording a stack trace for diagnostics.
func Wrap(sentinel error, msg string) error {
	return errors.WithMessage(errors.WithStack(sentinel), msg)
}

// Wrapf is like Wrap but with a format string.
func Wrapf(sentinel error, format string, args ...any) error {
	return errors.WithMessage(errors.WithStack(sentinel), errors.Errorf(format, args...).Error())
}
