// Package bigdecimal implements BigDecimal: an immutable pair of an
// arbitrary-precision unscaled integer and a non-negative scale,
// representing unscaled * 10^-scale. Scale participates in identity for
// formatting but not for equality: 1 and 1.00 compare equal but render
// differently.
package bigdecimal

import (
	"strings"

	"github.com/brick/bignum/bigint"
	"github.com/brick/bignum/errs"
	"github.com/brick/bignum/internal/calc"
	"github.com/brick/bignum/parser"
	"github.com/brick/bignum/rounding"
	"github.com/brick/bignum/scale"
)

// toCalc bridges bigint's opaque BigInteger to the calc.Int that package
// scale operates on; bigint never exposes calc.Int directly, so this
// round-trips through the canonical decimal string, which is exact.
func toCalc(v bigint.BigInteger) calc.Int {
	n, _ := calc.ParseDigits(v.String())
	return n
}

// BigDecimal is an unscaled BigInteger paired with a non-negative scale.
type BigDecimal struct {
	unscaled bigint.BigInteger
	scale    int
}

// Zero is the canonical zero value at scale 0.
var Zero = BigDecimal{unscaled: bigint.Zero}

// OfUnscaledValue builds unscaled * 10^-scale directly. scale must be
// non-negative.
func OfUnscaledValue(unscaled bigint.BigInteger, scl int) (BigDecimal, error) {
	if scl < 0 {
		return BigDecimal{}, errs.Wrapf(errs.InvalidArgument, "bigdecimal: scale %d is negative", scl)
	}
	return BigDecimal{unscaled: unscaled, scale: scl}, nil
}

// Of parses a decimal or integer literal (standard or scientific
// notation). Scale is len(fractional) - exponent, clamped to zero by
// padding the unscaled value with zeros when that would be negative.
func Of(s string) (BigDecimal, error) {
	r, err := parser.Parse(s)
	if err != nil {
		return BigDecimal{}, err
	}
	if r.Kind == parser.Rational {
		return BigDecimal{}, errs.Wrapf(errs.NumberFormat, "bigdecimal: %q is a rational literal, not a decimal", s)
	}
	digits := r.Integral + r.Fractional
	scl := len(r.Fractional) - r.Exponent
	if scl < 0 {
		digits += strings.Repeat("0", -scl)
		scl = 0
	}
	sign := ""
	if r.Negative {
		sign = "-"
	}
	unscaled, err := bigint.Of(sign + digits)
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{unscaled: unscaled, scale: scl}, nil
}

// String renders x in standard decimal notation.
func (x BigDecimal) String() string {
	if x.scale == 0 {
		return x.unscaled.String()
	}
	padded := scale.PadUnscaledValue(toCalc(x.unscaled), x.scale)
	neg := strings.HasPrefix(padded, "-")
	digits := strings.TrimPrefix(padded, "-")
	cut := len(digits) - x.scale
	s := digits[:cut] + "." + digits[cut:]
	if neg {
		s = "-" + s
	}
	return s
}

// Unscaled returns x's unscaled integer value.
func (x BigDecimal) Unscaled() bigint.BigInteger { return x.unscaled }

// Scale returns x's scale.
func (x BigDecimal) Scale() int { return x.scale }

// Sign returns -1, 0 or 1.
func (x BigDecimal) Sign() int { return x.unscaled.Sign() }

// IsZero reports whether x is zero, regardless of scale.
func (x BigDecimal) IsZero() bool { return x.unscaled.IsZero() }

func commonScale(a, b BigDecimal) int {
	if a.scale > b.scale {
		return a.scale
	}
	return b.scale
}

func (x BigDecimal) scaledTo(s int) bigint.BigInteger {
	if s == x.scale {
		return x.unscaled
	}
	p := bigint.Ten.MustPower(int64(s - x.scale))
	return x.unscaled.MultipliedBy(p)
}

// Equals compares value, ignoring scale: 1 and 1.00 are equal.
func (a BigDecimal) Equals(b BigDecimal) bool {
	s := commonScale(a, b)
	return a.scaledTo(s).Equals(b.scaledTo(s))
}

// Cmp compares value, ignoring scale.
func Cmp(a, b BigDecimal) int {
	s := commonScale(a, b)
	return bigint.Cmp(a.scaledTo(s), b.scaledTo(s))
}

// Plus returns x + y at scale max(x.scale, y.scale).
func (x BigDecimal) Plus(y BigDecimal) BigDecimal {
	s := commonScale(x, y)
	return BigDecimal{unscaled: x.scaledTo(s).Plus(y.scaledTo(s)), scale: s}
}

// Minus returns x - y at scale max(x.scale, y.scale).
func (x BigDecimal) Minus(y BigDecimal) BigDecimal {
	s := commonScale(x, y)
	return BigDecimal{unscaled: x.scaledTo(s).Minus(y.scaledTo(s)), scale: s}
}

// MultipliedBy returns x * y at scale x.scale + y.scale.
func (x BigDecimal) MultipliedBy(y BigDecimal) BigDecimal {
	return BigDecimal{unscaled: x.unscaled.MultipliedBy(y.unscaled), scale: x.scale + y.scale}
}

// Power returns x^e at scale x.scale * e.
func (x BigDecimal) Power(e int64) (BigDecimal, error) {
	u, err := x.unscaled.Power(e)
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{unscaled: u, scale: x.scale * int(e)}, nil
}

// DividedBy computes x / divisor at the explicit target scale, rounded
// per mode.
func (x BigDecimal) DividedBy(divisor BigDecimal, targetScale int, mode rounding.Mode) (BigDecimal, error) {
	if targetScale < 0 {
		return BigDecimal{}, errs.Wrapf(errs.InvalidArgument, "bigdecimal: target scale %d is negative", targetScale)
	}
	shift := targetScale + divisor.scale - x.scale
	numerator, denominator := x.unscaled, divisor.unscaled
	if shift >= 0 {
		numerator = x.unscaled.MultipliedBy(bigint.Ten.MustPower(int64(shift)))
	} else {
		denominator = divisor.unscaled.MultipliedBy(bigint.Ten.MustPower(int64(-shift)))
	}
	q, err := numerator.DividedBy(denominator, mode)
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{unscaled: q, scale: targetScale}, nil
}

// DividedByExact computes x / divisor at the minimum scale that
// represents the quotient exactly, failing when the reduced denominator
// has a prime factor other than 2 or 5.
func (x BigDecimal) DividedByExact(divisor BigDecimal) (BigDecimal, error) {
	g := x.unscaled.GCD(divisor.unscaled)
	reducedDen, err := divisor.unscaled.Quotient(g)
	if err != nil {
		return BigDecimal{}, err
	}
	k, ok := scale.ReducedFractionScale(toCalc(reducedDen))
	if !ok {
		return BigDecimal{}, errs.Wrap(errs.RoundingNecessary, "bigdecimal: quotient has no finite decimal expansion")
	}
	targetScale := k + x.scale - divisor.scale
	if targetScale < 0 {
		targetScale = 0
	}
	return x.DividedBy(divisor, targetScale, rounding.Unnecessary)
}

// Quotient, Remainder and QuotientAndRemainder share x and y's common
// scale; the quotient has scale 0 and the remainder has the common
// scale.
func (x BigDecimal) Quotient(y BigDecimal) (BigDecimal, error) {
	q, _, err := x.QuotientAndRemainder(y)
	return q, err
}

func (x BigDecimal) Remainder(y BigDecimal) (BigDecimal, error) {
	_, r, err := x.QuotientAndRemainder(y)
	return r, err
}

func (x BigDecimal) QuotientAndRemainder(y BigDecimal) (q, r BigDecimal, err error) {
	s := commonScale(x, y)
	xs, ys := x.scaledTo(s), y.scaledTo(s)
	qv, rv, err := xs.QuotientAndRemainder(ys)
	if err != nil {
		return BigDecimal{}, BigDecimal{}, err
	}
	return BigDecimal{unscaled: qv, scale: 0}, BigDecimal{unscaled: rv, scale: s}, nil
}

// WithPointMovedLeft increases scale by n.
func (x BigDecimal) WithPointMovedLeft(n int) (BigDecimal, error) {
	if n < 0 {
		return BigDecimal{}, errs.Wrapf(errs.InvalidArgument, "bigdecimal: negative shift %d", n)
	}
	return BigDecimal{unscaled: x.unscaled, scale: x.scale + n}, nil
}

// WithPointMovedRight decreases scale by n, multiplying the unscaled
// value by 10^(n-scale) when n exceeds the current scale.
func (x BigDecimal) WithPointMovedRight(n int) (BigDecimal, error) {
	if n < 0 {
		return BigDecimal{}, errs.Wrapf(errs.InvalidArgument, "bigdecimal: negative shift %d", n)
	}
	if n <= x.scale {
		return BigDecimal{unscaled: x.unscaled, scale: x.scale - n}, nil
	}
	p := bigint.Ten.MustPower(int64(n - x.scale))
	return BigDecimal{unscaled: x.unscaled.MultipliedBy(p), scale: 0}, nil
}

// ToScale changes x's scale via the scale helper, rounding per mode when
// the change is lossy.
func (x BigDecimal) ToScale(targetScale int, mode rounding.Mode) (BigDecimal, error) {
	v, err := scale.Scale(toCalc(x.unscaled), x.scale, targetScale, mode)
	if err != nil {
		return BigDecimal{}, err
	}
	u, err := bigint.Of(v.String())
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{unscaled: u, scale: targetScale}, nil
}

// StripTrailingZeros removes trailing zeros from the unscaled value,
// reducing scale by the same amount; a resulting negative scale is
// clamped to zero by re-appending zeros.
func (x BigDecimal) StripTrailingZeros() BigDecimal {
	s := x.unscaled.String()
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	if digits == "0" {
		return BigDecimal{unscaled: bigint.Zero, scale: 0}
	}
	stripped := strings.TrimRight(digits, "0")
	removed := len(digits) - len(stripped)
	if removed > x.scale {
		removed = x.scale
		stripped = digits[:len(digits)-removed]
	}
	newScale := x.scale - removed
	if stripped == "" {
		stripped = "0"
	}
	v := stripped
	if neg {
		v = "-" + v
	}
	u, err := bigint.Of(v)
	if err != nil {
		return x
	}
	return BigDecimal{unscaled: u, scale: newScale}
}

// ToBigInteger rounds x to an integer per mode, failing if mode is
// rounding.Unnecessary and the fractional part is non-zero.
func (x BigDecimal) ToBigInteger(mode rounding.Mode) (bigint.BigInteger, error) {
	d, err := x.ToScale(0, mode)
	if err != nil {
		return bigint.BigInteger{}, err
	}
	return d.unscaled, nil
}

// GetIntegralPart and GetFractionalPart split x's zero-padded unscaled
// value at position scale from the right.
func (x BigDecimal) GetIntegralPart() bigint.BigInteger {
	if x.scale == 0 {
		return x.unscaled
	}
	padded := scale.PadUnscaledValue(toCalc(x.unscaled), x.scale)
	neg := strings.HasPrefix(padded, "-")
	digits := strings.TrimPrefix(padded, "-")
	cut := len(digits) - x.scale
	s := digits[:cut]
	if neg && strings.TrimLeft(s, "0") != "" {
		s = "-" + s
	}
	v, _ := bigint.Of(s)
	return v
}

func (x BigDecimal) GetFractionalPart() BigDecimal {
	if x.scale == 0 {
		return BigDecimal{unscaled: bigint.Zero, scale: 0}
	}
	padded := scale.PadUnscaledValue(toCalc(x.unscaled), x.scale)
	neg := strings.HasPrefix(padded, "-")
	digits := strings.TrimPrefix(padded, "-")
	cut := len(digits) - x.scale
	frac := digits[cut:]
	if strings.TrimLeft(frac, "0") == "" {
		return BigDecimal{unscaled: bigint.Zero, scale: x.scale}
	}
	s := frac
	if neg {
		s = "-" + s
	}
	v, _ := bigint.Of(s)
	return BigDecimal{unscaled: v, scale: x.scale}
}

// HasNonZeroFractionalPart reports whether any fractional digit is
// non-zero.
func (x BigDecimal) HasNonZeroFractionalPart() bool {
	return !x.GetFractionalPart().IsZero()
}

// GetPrecision returns the number of significant digits in x's unscaled
// value (1 for zero).
func (x BigDecimal) GetPrecision() int {
	s := strings.TrimPrefix(x.unscaled.String(), "-")
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return 1
	}
	return len(s)
}
