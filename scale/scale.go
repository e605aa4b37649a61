// Package scale implements the decimal scale helper shared by BigDecimal
// and BigRational: the routines that move an unscaled digit string
// between decimal scales, either exactly (padding or stripping zeros) or
// by delegating to the rounding engine when an exact move is impossible.
package scale

import (
	"strings"

	"github.com/brick/bignum/errs"
	"github.com/brick/bignum/internal/calc"
	"github.com/brick/bignum/rounding"
)

// TryScaleExactly moves value from fromScale to toScale without rounding.
// ok is false when toScale < fromScale and the digits that would be
// dropped are not all zero.
func TryScaleExactly(value calc.Int, fromScale, toScale int) (result calc.Int, ok bool) {
	if toScale >= fromScale {
		p, err := calc.Pow(calc.Ten, int64(toScale-fromScale))
		if err != nil {
			return calc.Int{}, false
		}
		return calc.Mul(value, p), true
	}
	drop := fromScale - toScale
	padded := PadUnscaledValue(value, fromScale)
	neg := strings.HasPrefix(padded, "-")
	digits := strings.TrimPrefix(padded, "-")
	if len(digits) < drop {
		return calc.Int{}, false
	}
	tail := digits[len(digits)-drop:]
	for i := 0; i < len(tail); i++ {
		if tail[i] != '0' {
			return calc.Int{}, false
		}
	}
	kept := digits[:len(digits)-drop]
	if kept == "" {
		kept = "0"
	}
	s := kept
	if neg {
		s = "-" + kept
	}
	v, err := calc.ParseDigits(s)
	if err != nil {
		return calc.Int{}, false
	}
	return v, true
}

// Scale moves value from fromScale to toScale, using TryScaleExactly when
// possible and falling back to rounded division by 10^(fromScale-toScale)
// otherwise. mode = rounding.Unnecessary fails when an exact move is not
// possible.
func Scale(value calc.Int, fromScale, toScale int, mode rounding.Mode) (calc.Int, error) {
	if toScale < 0 {
		return calc.Int{}, errs.Wrapf(errs.InvalidArgument, "scale: target scale %d is negative", toScale)
	}
	if v, ok := TryScaleExactly(value, fromScale, toScale); ok {
		return v, nil
	}
	if mode == rounding.Unnecessary {
		return calc.Int{}, errs.Wrap(errs.RoundingNecessary, "scale: exact result required but scale change is lossy")
	}
	divisor, err := calc.Pow(calc.Ten, int64(fromScale-toScale))
	if err != nil {
		return calc.Int{}, err
	}
	return calc.DivRound(value, divisor, mode)
}

// ReducedFractionScale returns the smallest k such that 10^k is a
// multiple of denominator, by factoring twos and fives out of
// denominator. ok is false when a prime factor other than 2 or 5
// remains, meaning no finite decimal scale represents the fraction
// exactly.
func ReducedFractionScale(denominator calc.Int) (k int, ok bool) {
	d := denominator.Abs()
	if d.IsZero() {
		return 0, false
	}
	twos, fives := 0, 0
	for {
		q, r, err := calc.DivQR(d, calc.Two)
		if err != nil || !r.IsZero() {
			break
		}
		d = q
		twos++
	}
	five := calc.FromInt64(5)
	for {
		q, r, err := calc.DivQR(d, five)
		if err != nil || !r.IsZero() {
			break
		}
		d = q
		fives++
	}
	if calc.Cmp(d, calc.One) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

// PadUnscaledValue renders value zero-padded so its digit count (not
// counting a leading '-') equals scale+1, preserving sign.
func PadUnscaledValue(value calc.Int, scale int) string {
	s := value.String()
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	want := scale + 1
	if len(digits) < want {
		digits = strings.Repeat("0", want-len(digits)) + digits
	}
	if neg {
		return "-" + digits
	}
	return digits
}
