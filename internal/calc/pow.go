package calc

import "github.com/brick/bignum/errs"

// MaxExponent is the upper bound on the exponent accepted by Pow, per
// spec §4.1.
const MaxExponent = 1_000_000

// Pow returns a^e via exponentiation by squaring. a^0 is 1 for every a,
// including 0^0. e must be in [0, MaxExponent]. Computed by the active
// [Backend].
func Pow(a Int, e int64) (Int, error) {
	return CurrentBackend().Pow(a, e)
}

// nativePow is the native backend's exponentiation.
func nativePow(a Int, e int64) (Int, error) {
	if e < 0 || e > MaxExponent {
		return Int{}, errs.Wrapf(errs.InvalidArgument, "calc: exponent %d out of range [0, %d]", e, MaxExponent)
	}
	result := One
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base)
		}
		e >>= 1
		if e > 0 {
			base = Mul(base, base)
		}
	}
	return result, nil
}
