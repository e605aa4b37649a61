package calc

import "github.com/brick/bignum/errs"

// GCD returns the non-negative greatest common divisor of a and b via
// the Euclidean algorithm. gcd(0, 0) = 0. Computed by the active
// [Backend].
func GCD(a, b Int) Int {
	return CurrentBackend().GCD(a, b)
}

// nativeGCD is the native backend's Euclidean GCD.
func nativeGCD(a, b Int) Int {
	a, b = a.Abs(), b.Abs()
	for !b.IsZero() {
		_, r, _ := DivQR(a, b)
		a, b = b, r
	}
	return a
}

// LCM returns |a*b| / gcd(a,b), or zero if either operand is zero.
// Computed by the active [Backend].
func LCM(a, b Int) Int {
	return CurrentBackend().LCM(a, b)
}

// nativeLCM is the native backend's LCM.
func nativeLCM(a, b Int) Int {
	if a.IsZero() || b.IsZero() {
		return Zero
	}
	g := GCD(a, b)
	prod := Mul(a.Abs(), b.Abs())
	q, _ := DivQ(prod, g)
	return q
}

// ModPow computes base^exp mod m using right-to-left square-and-multiply,
// reducing every intermediate modulo m. base and exp must be
// non-negative and m must be positive; m == 1 always yields 0. Computed
// by the active [Backend].
func ModPow(base, exp, m Int) (Int, error) {
	return CurrentBackend().ModPow(base, exp, m)
}

// nativeModPow is the native backend's modular exponentiation.
func nativeModPow(base, exp, m Int) (Int, error) {
	if base.Sign() < 0 {
		return Int{}, errs.Wrap(errs.NegativeNumber, "calc: modPow requires a non-negative base")
	}
	if exp.Sign() < 0 {
		return Int{}, errs.Wrap(errs.NegativeNumber, "calc: modPow requires a non-negative exponent")
	}
	if m.Sign() <= 0 {
		return Int{}, errs.Wrap(errs.InvalidArgument, "calc: modPow requires a positive modulus")
	}
	if Cmp(m, One) == 0 {
		return Zero, nil
	}

	result := One
	b, err := Mod(base, m)
	if err != nil {
		return Int{}, err
	}
	e := exp
	for !e.IsZero() {
		if !e.IsEven() {
			result, err = Mod(Mul(result, b), m)
			if err != nil {
				return Int{}, err
			}
		}
		b, err = Mod(Mul(b, b), m)
		if err != nil {
			return Int{}, err
		}
		e, err = DivQ(e, Two)
		if err != nil {
			return Int{}, err
		}
	}
	return result, nil
}

// ModInverse returns the unique r in [0, m) such that x*r ≡ 1 (mod m),
// using the extended Euclidean algorithm. ok is false when
// gcd(|x|, m) != 1, in which case no inverse exists. x is normalized
// into [0, m) before the algorithm runs (spec leaves negative x
// implementation-defined; this backend normalizes rather than
// rejecting it). Computed by the active [Backend].
func ModInverse(x, m Int) (r Int, ok bool, err error) {
	return CurrentBackend().ModInverse(x, m)
}

// nativeModInverse is the native backend's extended-Euclidean inverse.
func nativeModInverse(x, m Int) (r Int, ok bool, err error) {
	if m.Sign() <= 0 {
		return Int{}, false, errs.Wrap(errs.InvalidArgument, "calc: modInverse requires a positive modulus")
	}
	xm, err := Mod(x, m)
	if err != nil {
		return Int{}, false, err
	}

	oldR, curR := xm, m
	oldS, curS := One, Zero
	for !curR.IsZero() {
		q, err := DivQ(oldR, curR)
		if err != nil {
			return Int{}, false, err
		}
		oldR, curR = curR, Sub(oldR, Mul(q, curR))
		oldS, curS = curS, Sub(oldS, Mul(q, curS))
	}
	if Cmp(oldR, One) != 0 {
		return Int{}, false, nil
	}
	inv, err := Mod(oldS, m)
	if err != nil {
		return Int{}, false, err
	}
	return inv, true, nil
}
