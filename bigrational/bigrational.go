// Package bigrational implements BigRational: an immutable numerator and
// strictly positive denominator pair. Rationals are not auto-reduced on
// construction; call Simplified to obtain an equivalent value with
// gcd(numerator, denominator) = 1.
package bigrational

import (
	"strconv"
	"strings"

	"github.com/brick/bignum/bigdecimal"
	"github.com/brick/bignum/bigint"
	"github.com/brick/bignum/errs"
	"github.com/brick/bignum/internal/calc"
	"github.com/brick/bignum/parser"
	"github.com/brick/bignum/rounding"
	"github.com/brick/bignum/scale"
)

// toCalc bridges bigint's opaque BigInteger to the calc.Int that package
// scale operates on, round-tripping through the canonical decimal string.
func toCalc(v bigint.BigInteger) calc.Int {
	n, _ := calc.ParseDigits(v.String())
	return n
}

// BigRational is a numerator over a strictly positive denominator.
type BigRational struct {
	num bigint.BigInteger
	den bigint.BigInteger
}

// checkDenominator rejects a zero denominator and normalizes a negative
// one by negating both sides, so the denominator is always positive.
func checkDenominator(num, den bigint.BigInteger) (BigRational, error) {
	if den.IsZero() {
		return BigRational{}, errs.Wrap(errs.DivisionByZero, "bigrational: denominator must not be zero")
	}
	if den.IsNegative() {
		num, den = num.Negated(), den.Negated()
	}
	return BigRational{num: num, den: den}, nil
}

// OfIntegers builds numerator/denominator, normalizing the sign into the
// numerator.
func OfIntegers(numerator, denominator bigint.BigInteger) (BigRational, error) {
	return checkDenominator(numerator, denominator)
}

// Of parses an integer or rational literal ("num/den" or a bare integer,
// which is interpreted as having denominator 1).
func Of(s string) (BigRational, error) {
	r, err := parser.Parse(s)
	if err != nil {
		return BigRational{}, err
	}
	if r.Kind == parser.Decimal {
		return BigRational{}, errs.Wrapf(errs.NumberFormat, "bigrational: %q is a decimal literal, not a rational", s)
	}
	sign := ""
	if r.Negative {
		sign = "-"
	}
	num, err := bigint.Of(sign + r.Integral)
	if err != nil {
		return BigRational{}, err
	}
	den := bigint.One
	if r.Kind == parser.Rational {
		den, err = bigint.Of(r.Denominator)
		if err != nil {
			return BigRational{}, err
		}
	}
	return checkDenominator(num, den)
}

// String renders x as "numerator/denominator".
func (x BigRational) String() string {
	return x.num.String() + "/" + x.den.String()
}

// Numerator and Denominator return x's components as constructed (not
// reduced).
func (x BigRational) Numerator() bigint.BigInteger   { return x.num }
func (x BigRational) Denominator() bigint.BigInteger { return x.den }

// Sign returns -1, 0 or 1.
func (x BigRational) Sign() int { return x.num.Sign() }

// IsZero reports whether x is zero.
func (x BigRational) IsZero() bool { return x.num.IsZero() }

// Cmp compares a and b by cross-multiplication, so it is insensitive to
// whether either side has been reduced.
func Cmp(a, b BigRational) int {
	return bigint.Cmp(a.num.MultipliedBy(b.den), b.num.MultipliedBy(a.den))
}

// Equals compares value, not form: 1/2 equals 2/4.
func (a BigRational) Equals(b BigRational) bool { return Cmp(a, b) == 0 }

// Plus returns a + b via cross-multiplication: (a.num*b.den +
// b.num*a.den) / (a.den*b.den). No reduction is performed.
func (a BigRational) Plus(b BigRational) BigRational {
	num := a.num.MultipliedBy(b.den).Plus(b.num.MultipliedBy(a.den))
	den := a.den.MultipliedBy(b.den)
	r, _ := checkDenominator(num, den)
	return r
}

// Minus returns a - b.
func (a BigRational) Minus(b BigRational) BigRational {
	num := a.num.MultipliedBy(b.den).Minus(b.num.MultipliedBy(a.den))
	den := a.den.MultipliedBy(b.den)
	r, _ := checkDenominator(num, den)
	return r
}

// MultipliedBy returns a * b: numerator times numerator over denominator
// times denominator.
func (a BigRational) MultipliedBy(b BigRational) BigRational {
	r, _ := checkDenominator(a.num.MultipliedBy(b.num), a.den.MultipliedBy(b.den))
	return r
}

// DividedBy returns a / b: a.num*b.den / (a.den*b.num). Rejects a zero
// numerator on b (division by zero).
func (a BigRational) DividedBy(b BigRational) (BigRational, error) {
	if b.num.IsZero() {
		return BigRational{}, errs.Wrap(errs.DivisionByZero, "bigrational: division by a zero rational")
	}
	return checkDenominator(a.num.MultipliedBy(b.den), a.den.MultipliedBy(b.num))
}

// Power raises both numerator and denominator to e.
func (x BigRational) Power(e int64) (BigRational, error) {
	num, err := x.num.Power(e)
	if err != nil {
		return BigRational{}, err
	}
	den, err := x.den.Power(e)
	if err != nil {
		return BigRational{}, err
	}
	return checkDenominator(num, den)
}

// Reciprocal swaps numerator and denominator. Rejects a zero numerator.
func (x BigRational) Reciprocal() (BigRational, error) {
	if x.num.IsZero() {
		return BigRational{}, errs.Wrap(errs.DivisionByZero, "bigrational: reciprocal of zero")
	}
	return checkDenominator(x.den, x.num)
}

// Simplified returns an equivalent rational with gcd(|numerator|,
// denominator) = 1.
func (x BigRational) Simplified() BigRational {
	if x.num.IsZero() {
		return BigRational{num: bigint.Zero, den: bigint.One}
	}
	g := x.num.Abs().GCD(x.den)
	num, _ := x.num.Quotient(g)
	den, _ := x.den.Quotient(g)
	return BigRational{num: num, den: den}
}

// ToBigInteger is valid only when the simplified denominator is 1.
func (x BigRational) ToBigInteger() (bigint.BigInteger, error) {
	s := x.Simplified()
	if !s.den.Equals(bigint.One) {
		return bigint.BigInteger{}, errs.Wrapf(errs.RoundingNecessary, "bigrational: %v is not an integer", x)
	}
	return s.num, nil
}

// ToBigDecimal converts x to a BigDecimal at the minimum exact scale,
// requiring the simplified denominator to be a product of powers of 2
// and 5.
func (x BigRational) ToBigDecimal() (bigdecimal.BigDecimal, error) {
	s := x.Simplified()
	k, ok := scale.ReducedFractionScale(toCalc(s.den))
	if !ok {
		return bigdecimal.BigDecimal{}, errs.Wrap(errs.RoundingNecessary, "bigrational: denominator has a prime factor other than 2 or 5")
	}
	return x.ToScale(k, rounding.Unnecessary)
}

// ToScale converts x to a BigDecimal at the given scale, rounding the
// division per mode.
func (x BigRational) ToScale(targetScale int, mode rounding.Mode) (bigdecimal.BigDecimal, error) {
	if targetScale < 0 {
		return bigdecimal.BigDecimal{}, errs.Wrapf(errs.InvalidArgument, "bigrational: scale %d is negative", targetScale)
	}
	p, err := bigint.Ten.Power(int64(targetScale))
	if err != nil {
		return bigdecimal.BigDecimal{}, err
	}
	unscaled, err := x.num.MultipliedBy(p).DividedBy(x.den, mode)
	if err != nil {
		return bigdecimal.BigDecimal{}, err
	}
	return bigdecimal.OfUnscaledValue(unscaled, targetScale)
}

// GetIntegralPart returns numerator quotient denominator (truncated
// toward zero).
func (x BigRational) GetIntegralPart() (bigint.BigInteger, error) {
	return x.num.Quotient(x.den)
}

// GetFractionalPart returns (numerator remainder denominator) /
// denominator. GetIntegralPart plus GetFractionalPart equals x.
func (x BigRational) GetFractionalPart() (BigRational, error) {
	r, err := x.num.Remainder(x.den)
	if err != nil {
		return BigRational{}, err
	}
	return checkDenominator(r, x.den)
}

// ToFloat computes numerator/denominator as a machine float64. If either
// side overflows float64, it falls back to a roughly 20-significant-digit
// decimal approximation rounded HalfEven.
func (x BigRational) ToFloat() (float64, error) {
	numF, numErr := strconv.ParseFloat(x.num.String(), 64)
	denF, denErr := strconv.ParseFloat(x.den.String(), 64)
	if numErr == nil && denErr == nil {
		return numF / denF, nil
	}
	// Pick the scale so the quotient keeps about 20 significant digits,
	// capped where float64 underflows to zero anyway.
	scl := 20 - (len(x.num.Abs().String()) - len(x.den.String()))
	if scl < 0 {
		scl = 0
	} else if scl > 350 {
		scl = 350
	}
	d, err := x.ToScale(scl, rounding.HalfEven)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, errs.Wrapf(errs.NumberFormat, "bigrational: %v could not be approximated as a float", x)
	}
	return f, nil
}

// ToRepeatingDecimalString performs long division, wrapping any
// recurring digit group in parentheses once a remainder repeats.
func (x BigRational) ToRepeatingDecimalString() (string, error) {
	s := x.Simplified()
	neg := s.num.IsNegative() != s.den.IsNegative()
	num := s.num.Abs()
	den := s.den.Abs()

	integral, err := num.Quotient(den)
	if err != nil {
		return "", err
	}
	rem, err := num.Remainder(den)
	if err != nil {
		return "", err
	}

	if rem.IsZero() {
		sign := ""
		if neg && !integral.IsZero() {
			sign = "-"
		}
		return sign + integral.String(), nil
	}

	var digits strings.Builder
	seen := make(map[string]int)
	var remainders []bigint.BigInteger
	for !rem.IsZero() {
		key := rem.String()
		if idx, ok := seen[key]; ok {
			nonRepeating := digits.String()[:idx]
			repeating := digits.String()[idx:]
			sign := ""
			if neg {
				sign = "-"
			}
			return sign + integral.String() + "." + nonRepeating + "(" + repeating + ")", nil
		}
		seen[key] = digits.Len()
		remainders = append(remainders, rem)

		rem = rem.MultipliedBy(bigint.Ten)
		digit, err := rem.Quotient(den)
		if err != nil {
			return "", err
		}
		digits.WriteString(digit.String())
		rem, err = rem.Remainder(den)
		if err != nil {
			return "", err
		}
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return sign + integral.String() + "." + digits.String(), nil
}
