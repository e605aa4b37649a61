// Package rounding implements the rounding engine (the decision of
// whether a truncated quotient's magnitude should be incremented) shared
// by every division-like operation in this module: BigInteger.DividedBy,
// BigDecimal.DividedBy, BigRational.ToScale, and the internal digit-string
// calculator's divRound.
//
// The engine itself never performs arithmetic; it only answers one
// question given a truncated-toward-zero division outcome: increment or
// not. Callers supply the quotient's sign, the comparison of twice the
// absolute remainder against the absolute divisor, and whether the
// quotient's least significant kept digit is even.
package rounding

import "github.com/brick/bignum/errs"

// Mode enumerates the rounding strategies from spec §4.2. The zero value
// is Unnecessary, matching the conservative default of refusing to
// round silently.
type Mode int

const (
	// Unnecessary demands an exact result; a non-zero remainder fails
	// with errs.RoundingNecessary.
	Unnecessary Mode = iota
	// Up rounds away from zero whenever there is a remainder.
	Up
	// Down truncates toward zero; this is the raw divQ/divR behavior.
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
	// HalfUp rounds to the nearest neighbor, ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbor, ties toward zero.
	HalfDown
	// HalfCeiling rounds to the nearest neighbor, ties toward positive
	// infinity.
	HalfCeiling
	// HalfFloor rounds to the nearest neighbor, ties toward negative
	// infinity.
	HalfFloor
	// HalfEven rounds to the nearest neighbor, ties to the neighbor
	// whose least significant digit is even ("banker's rounding").
	HalfEven
)

// String renders the mode the way it appears in error messages and in
// the scientific-literature name for each strategy.
func (m Mode) String() string {
	switch m {
	case Unnecessary:
		return "Unnecessary"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Ceiling:
		return "Ceiling"
	case Floor:
		return "Floor"
	case HalfUp:
		return "HalfUp"
	case HalfDown:
		return "HalfDown"
	case HalfCeiling:
		return "HalfCeiling"
	case HalfFloor:
		return "HalfFloor"
	case HalfEven:
		return "HalfEven"
	default:
		return "Mode(invalid)"
	}
}

// Valid reports whether m is one of the ten defined modes.
func (m Mode) Valid() bool {
	return m >= Unnecessary && m <= HalfEven
}

// Decision carries the four facts about a truncated division that the
// nine rounding modes need in order to decide whether to increment the
// quotient's magnitude.
type Decision struct {
	// HasRemainder is true when the truncated division was inexact.
	HasRemainder bool
	// IsPositiveOrZero is sign(dividend) == sign(divisor) (the sign the
	// exact quotient would have).
	IsPositiveOrZero bool
	// RemainderCmpHalfDivisor is sign(2*|remainder| - |divisor|): -1 when
	// the remainder is in the lower half, 0 exactly halfway, 1 in the
	// upper half. Only consulted by the Half* modes.
	RemainderCmpHalfDivisor int
	// QuotientIsEven is whether the truncated quotient's least
	// significant kept digit is even. Only consulted by HalfEven.
	QuotientIsEven bool
}

// ShouldIncrement implements the table in spec §4.2: decide whether the
// truncated quotient's magnitude must be incremented by one to honor
// mode. It returns errs.RoundingNecessary if mode is Unnecessary and the
// division was inexact.
func ShouldIncrement(mode Mode, d Decision) (bool, error) {
	if !mode.Valid() {
		return false, errs.Wrapf(errs.InvalidArgument, "rounding: unknown mode %d", int(mode))
	}
	if !d.HasRemainder {
		return false, nil
	}
	switch mode {
	case Unnecessary:
		return false, errs.Wrap(errs.RoundingNecessary, "rounding: exact result required but remainder is non-zero")
	case Up:
		return true, nil
	case Down:
		return false, nil
	case Ceiling:
		return d.IsPositiveOrZero, nil
	case Floor:
		return !d.IsPositiveOrZero, nil
	case HalfUp:
		return d.RemainderCmpHalfDivisor >= 0, nil
	case HalfDown:
		return d.RemainderCmpHalfDivisor > 0, nil
	case HalfCeiling:
		if d.IsPositiveOrZero {
			return d.RemainderCmpHalfDivisor >= 0, nil
		}
		return d.RemainderCmpHalfDivisor > 0, nil
	case HalfFloor:
		if d.IsPositiveOrZero {
			return d.RemainderCmpHalfDivisor > 0, nil
		}
		return d.RemainderCmpHalfDivisor >= 0, nil
	case HalfEven:
		if d.QuotientIsEven {
			return d.RemainderCmpHalfDivisor > 0, nil
		}
		return d.RemainderCmpHalfDivisor >= 0, nil
	default:
		return false, errs.Wrapf(errs.InvalidArgument, "rounding: unknown mode %d", int(mode))
	}
}
