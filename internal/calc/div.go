package calc

import "github.com/brick/bignum/errs"

// DivQR returns the quotient and remainder of a / b truncated toward
// zero: quotient sign is the product of the operand signs; remainder
// sign equals the dividend's sign whenever the remainder is non-zero
// (spec §4.1). b must be non-zero. Computed by the active [Backend].
func DivQR(a, b Int) (q, r Int, err error) {
	return CurrentBackend().DivQR(a, b)
}

// nativeDivQR is the native backend's truncated division.
func nativeDivQR(a, b Int) (q, r Int, err error) {
	if b.IsZero() {
		return Int{}, Int{}, errs.Wrap(errs.DivisionByZero, "calc: division by zero")
	}
	qn, rn := divmodNat(a.abs, b.abs)
	q = normalize(a.neg != b.neg, qn)
	r = normalize(a.neg, rn)
	return q, r, nil
}

// DivQ returns the truncated quotient of a / b.
func DivQ(a, b Int) (Int, error) {
	q, _, err := DivQR(a, b)
	return q, err
}

// DivR returns the truncated remainder of a / b.
func DivR(a, b Int) (Int, error) {
	_, r, err := DivQR(a, b)
	return r, err
}

// divmodNat divides magnitudes: long division in base limbBase,
// resolving each quotient limb with a binary search against the
// divisor. b must be non-zero.
func divmodNat(a, b nat) (q, r nat) {
	if cmpNat(a, b) < 0 {
		return nil, a.clone()
	}
	if len(b) == 1 {
		qn, rem := divmodSmall(a, b[0])
		return qn, natFromUint64(uint64(rem))
	}

	a = a.trim()
	qlimbs := make([]uint32, len(a))
	rem := nat(nil)
	for i := len(a) - 1; i >= 0; i-- {
		rem = shiftLimbs(rem, 1)
		if a[i] != 0 {
			rem = addNat(rem, natFromUint64(uint64(a[i])))
		}
		rem = rem.trim()
		qd := quotientDigit(rem, b)
		if qd > 0 {
			rem = subNat(rem, mulSmall(b, qd))
		}
		qlimbs[i] = qd
	}
	return nat(qlimbs).trim(), rem.trim()
}

// quotientDigit finds the largest qd in [0, limbBase) such that
// b*qd <= rem, via binary search.
func quotientDigit(rem, b nat) uint32 {
	if cmpNat(rem, b) < 0 {
		return 0
	}
	lo, hi := uint32(0), uint32(limbBase-1)
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if cmpNat(mulSmall(b, mid), rem) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
