// Package parser implements the single literal grammar shared by every
// number kind: an optional sign, integral digits, and optionally either
// a fractional part and/or an exponent, or a denominator. It
// recognizes the grammar and returns a neutral result; it deliberately
// does not import bigint, bigdecimal or bigrational, so that those
// packages can import parser without creating a cycle.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/brick/bignum/errs"
)

// Kind identifies which number kind a literal denotes.
type Kind int

const (
	// Integer literals have no fractional part, exponent or denominator.
	Integer Kind = iota
	// Decimal literals have a fractional part and/or an exponent.
	Decimal
	// Rational literals have a denominator.
	Rational
)

// Result is the parsed, neutral form of a literal: enough information
// for bigint, bigdecimal and bigrational to build their own value
// without parser needing to know about any of them.
type Result struct {
	Kind Kind

	// Negative is true when the literal carried a leading '-'.
	Negative bool

	// Integral holds the integral digits with no leading zeros (it is
	// "0" rather than empty when the integral part is zero).
	Integral string

	// Fractional holds the fractional digits verbatim (Decimal only).
	Fractional string

	// Exponent is the signed scientific-notation exponent (Decimal
	// only; zero when absent).
	Exponent int

	// Denominator holds the denominator digits with no leading zeros
	// (Rational only).
	Denominator string
}

// literalPattern recognizes: sign? integral ((('.' fractional)? (('e'|'E')
// sign? digits)?) | ('/' denominator))?
var literalPattern = regexp.MustCompile(
	`^([+-])?(\d+)(?:(?:(?:\.(\d+))?(?:[eE]([+-]?\d+))?)|(?:/(\d+)))?$`,
)

// Parse recognizes s against the literal grammar and classifies it as an
// integer, decimal or rational.
func Parse(s string) (Result, error) {
	m := literalPattern.FindStringSubmatch(s)
	if m == nil {
		return Result{}, errs.Wrapf(errs.NumberFormat, "parser: %q does not match the number literal grammar", s)
	}

	sign, integral, fractional, exponent, denominator := m[1], m[2], m[3], m[4], m[5]

	negative := sign == "-"
	integral = strings.TrimLeft(integral, "0")
	if integral == "" {
		integral = "0"
	}

	switch {
	case denominator != "":
		den := strings.TrimLeft(denominator, "0")
		if den == "" {
			return Result{}, errs.Wrap(errs.DivisionByZero, "parser: denominator must not be zero")
		}
		return Result{
			Kind:        Rational,
			Negative:    negative,
			Integral:    integral,
			Denominator: den,
		}, nil

	case fractional != "" || exponent != "":
		exp := 0
		if exponent != "" {
			v, err := strconv.Atoi(exponent)
			if err != nil {
				return Result{}, errs.Wrapf(errs.NumberFormat, "parser: %q has an invalid exponent", s)
			}
			exp = v
		}
		return Result{
			Kind:       Decimal,
			Negative:   negative,
			Integral:   integral,
			Fractional: fractional,
			Exponent:   exp,
		}, nil

	default:
		if negative && integral == "0" {
			negative = false
		}
		return Result{
			Kind:     Integer,
			Negative: negative,
			Integral: integral,
		}, nil
	}
}
