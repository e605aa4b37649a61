// Package bigint implements BigInteger: an immutable, arbitrary-precision
// signed integer built on top of the digit-string calculator in
// internal/calc. Every method here is a thin, validating wrapper that
// delegates the actual arithmetic to calc and translates the result back
// into a BigInteger.
package bigint

import (
	"github.com/brick/bignum/errs"
	"github.com/brick/bignum/internal/calc"
	"github.com/brick/bignum/rounding"
)

// BigInteger is a signed, arbitrary-precision integer. The zero value is
// not a valid BigInteger; use Zero, One, Ten or one of the Of* factories.
type BigInteger struct {
	v calc.Int
}

// Zero, One and Ten are the canonical small constants.
var (
	Zero = BigInteger{v: calc.Zero}
	One  = BigInteger{v: calc.One}
	Ten  = BigInteger{v: calc.Ten}
)

// Of parses a canonical or non-canonical signed decimal digit string (an
// optional leading sign followed by one or more decimal digits).
func Of(s string) (BigInteger, error) {
	v, err := calc.ParseDigits(s)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// OfInt64 wraps a native signed integer.
func OfInt64(n int64) BigInteger {
	return BigInteger{v: calc.FromInt64(n)}
}

// OfUint64 wraps a native unsigned integer.
func OfUint64(n uint64) BigInteger {
	return BigInteger{v: calc.FromUint64(n)}
}

// FromBase parses a signed digit string in the given radix, 2 through 36,
// accepting either case for alphabetic digits.
func FromBase(s string, radix int) (BigInteger, error) {
	v, err := calc.FromBase(s, radix)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// FromArbitraryBase parses s against a caller-supplied alphabet of at
// least two distinct single-byte symbols; the result is always
// non-negative.
func FromArbitraryBase(s string, alphabet string) (BigInteger, error) {
	v, err := calc.FromArbitraryBase(s, alphabet)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// FromBytes decodes a big-endian byte slice: two's-complement when signed
// is true, plain magnitude when false.
func FromBytes(b []byte, signed bool) (BigInteger, error) {
	v, err := calc.FromBytes(b, signed)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// String renders x as a canonical decimal digit string.
func (x BigInteger) String() string {
	return x.v.String()
}

// Sign returns -1, 0 or 1.
func (x BigInteger) Sign() int { return x.v.Sign() }

// IsZero reports whether x is zero.
func (x BigInteger) IsZero() bool { return x.v.IsZero() }

// IsNegative reports whether x is strictly less than zero.
func (x BigInteger) IsNegative() bool { return x.v.IsNegative() }

// IsEven reports whether x is divisible by two.
func (x BigInteger) IsEven() bool { return x.v.IsEven() }

// IsOdd reports whether x is not divisible by two.
func (x BigInteger) IsOdd() bool { return !x.v.IsEven() }

// Cmp compares a and b: -1, 0 or 1.
func Cmp(a, b BigInteger) int { return calc.Cmp(a.v, b.v) }

// Equals reports whether a and b have the same value.
func (a BigInteger) Equals(b BigInteger) bool { return calc.Cmp(a.v, b.v) == 0 }

// Abs returns |x|.
func (x BigInteger) Abs() BigInteger { return BigInteger{v: x.v.Abs()} }

// Negated returns -x.
func (x BigInteger) Negated() BigInteger { return BigInteger{v: x.v.Neg()} }

// Plus returns x + y.
func (x BigInteger) Plus(y BigInteger) BigInteger {
	return BigInteger{v: calc.Add(x.v, y.v)}
}

// Minus returns x - y.
func (x BigInteger) Minus(y BigInteger) BigInteger {
	return BigInteger{v: calc.Sub(x.v, y.v)}
}

// MultipliedBy returns x * y.
func (x BigInteger) MultipliedBy(y BigInteger) BigInteger {
	return BigInteger{v: calc.Mul(x.v, y.v)}
}

// DividedBy returns x / y rounded per mode. It fails with
// errs.RoundingNecessary when mode is rounding.Unnecessary and the
// division is inexact, and with errs.DivisionByZero when y is zero.
func (x BigInteger) DividedBy(y BigInteger, mode rounding.Mode) (BigInteger, error) {
	v, err := calc.DivRound(x.v, y.v, mode)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// Quotient returns the truncated-toward-zero quotient of x / y.
func (x BigInteger) Quotient(y BigInteger) (BigInteger, error) {
	v, err := calc.DivQ(x.v, y.v)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// Remainder returns the truncated-toward-zero remainder of x / y.
func (x BigInteger) Remainder(y BigInteger) (BigInteger, error) {
	v, err := calc.DivR(x.v, y.v)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// QuotientAndRemainder returns both halves of truncated division in one
// pass.
func (x BigInteger) QuotientAndRemainder(y BigInteger) (q, r BigInteger, err error) {
	qv, rv, err := calc.DivQR(x.v, y.v)
	if err != nil {
		return BigInteger{}, BigInteger{}, err
	}
	return BigInteger{v: qv}, BigInteger{v: rv}, nil
}

// Mod returns the Euclidean non-negative residue of x modulo y. y must
// be strictly positive.
func (x BigInteger) Mod(y BigInteger) (BigInteger, error) {
	if y.IsZero() {
		return BigInteger{}, errs.Wrap(errs.DivisionByZero, "bigint: mod by zero")
	}
	if y.Sign() < 0 {
		return BigInteger{}, errs.Wrap(errs.InvalidArgument, "bigint: mod requires a positive modulus")
	}
	v, err := calc.Mod(x.v, y.v)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// Power returns x^e. e must be in [0, calc.MaxExponent].
func (x BigInteger) Power(e int64) (BigInteger, error) {
	v, err := calc.Pow(x.v, e)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// Sqrt returns floor(sqrt(x)) when mode is rounding.Down or
// rounding.Floor, the sqrt rounded per mode otherwise (matching
// BigInteger.DividedBy's contract for the exact-vs-rounded distinction).
// x must be non-negative.
func (x BigInteger) Sqrt(mode rounding.Mode) (BigInteger, error) {
	floor, err := calc.Sqrt(x.v)
	if err != nil {
		return BigInteger{}, err
	}
	exact := calc.Cmp(calc.Mul(floor, floor), x.v) == 0
	if exact || mode == rounding.Down || mode == rounding.Floor {
		return BigInteger{v: floor}, nil
	}
	next := calc.Add(floor, calc.One)
	hasRemainder := true
	remCmp := calc.Cmp(calc.Add(x.v, x.v), calc.Add(calc.Mul(floor, floor), calc.Mul(next, next)))
	decision := rounding.Decision{
		HasRemainder:            hasRemainder,
		IsPositiveOrZero:        true,
		RemainderCmpHalfDivisor: remCmp,
		QuotientIsEven:          floor.IsEven(),
	}
	inc, err := rounding.ShouldIncrement(mode, decision)
	if err != nil {
		return BigInteger{}, err
	}
	if inc {
		return BigInteger{v: next}, nil
	}
	return BigInteger{v: floor}, nil
}

// GCD returns the non-negative greatest common divisor of x and y.
func (x BigInteger) GCD(y BigInteger) BigInteger {
	return BigInteger{v: calc.GCD(x.v, y.v)}
}

// LCM returns the non-negative least common multiple of x and y.
func (x BigInteger) LCM(y BigInteger) BigInteger {
	return BigInteger{v: calc.LCM(x.v, y.v)}
}

// ModPow returns x^exp mod m.
func (x BigInteger) ModPow(exp, m BigInteger) (BigInteger, error) {
	v, err := calc.ModPow(x.v, exp.v, m.v)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// ModInverse returns r in [0, m) such that x*r = 1 (mod m). It fails
// with errs.NoInverse when no such r exists because gcd(|x|, m) != 1.
func (x BigInteger) ModInverse(m BigInteger) (BigInteger, error) {
	v, ok, err := calc.ModInverse(x.v, m.v)
	if err != nil {
		return BigInteger{}, err
	}
	if !ok {
		return BigInteger{}, errs.Wrapf(errs.NoInverse, "bigint: %s has no inverse modulo %s", x.v.String(), m.v.String())
	}
	return BigInteger{v: v}, nil
}

// ToBase renders x in the given radix, 2 through 36, lowercase for
// digits above 9.
func (x BigInteger) ToBase(radix int) (string, error) {
	return calc.ToBase(x.v, radix)
}

// ToArbitraryBase renders x using alphabet as the digit symbols. x must
// be non-negative.
func (x BigInteger) ToArbitraryBase(alphabet string) (string, error) {
	return calc.ToArbitraryBase(x.v, alphabet)
}

// ToBytes renders x as big-endian bytes: two's-complement when signed is
// true, plain magnitude when false (which rejects negative x).
func (x BigInteger) ToBytes(signed bool) ([]byte, error) {
	return calc.ToBytes(x.v, signed)
}

// Int64 converts x to a native signed integer, failing with
// errs.IntegerOverflow when x does not fit.
func (x BigInteger) Int64() (int64, error) {
	lo, err := Of("-9223372036854775808")
	if err != nil {
		return 0, err
	}
	hi, err := Of("9223372036854775807")
	if err != nil {
		return 0, err
	}
	if Cmp(x, lo) < 0 || Cmp(x, hi) > 0 {
		return 0, errs.Wrapf(errs.IntegerOverflow, "bigint: %s does not fit in an int64", x.v.String())
	}
	s := x.v.String()
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var n int64
	for i := 0; i < len(s); i++ {
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
