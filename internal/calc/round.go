package calc

import "github.com/brick/bignum/rounding"

// DivRound computes a / b rounded per mode, using the rounding engine in
// package rounding to decide whether to increment the truncated
// quotient's magnitude (spec §4.2). Computed by the active [Backend].
func DivRound(a, b Int, mode rounding.Mode) (Int, error) {
	return CurrentBackend().DivRound(a, b, mode)
}

// nativeDivRound is the native backend's rounded division.
func nativeDivRound(a, b Int, mode rounding.Mode) (Int, error) {
	q, r, err := DivQR(a, b)
	if err != nil {
		return Int{}, err
	}
	if r.IsZero() {
		return q, nil
	}

	isPositiveOrZero := a.neg == b.neg
	twiceRem := Add(r.Abs(), r.Abs())
	decision := rounding.Decision{
		HasRemainder:            true,
		IsPositiveOrZero:        isPositiveOrZero,
		RemainderCmpHalfDivisor: Cmp(twiceRem, b.Abs()),
		QuotientIsEven:          q.IsEven(),
	}
	inc, err := rounding.ShouldIncrement(mode, decision)
	if err != nil {
		return Int{}, err
	}
	if !inc {
		return q, nil
	}
	if isPositiveOrZero {
		return Add(q, One), nil
	}
	return Sub(q, One), nil
}

// Mod returns the Euclidean non-negative residue ((a rem b) + b) rem b.
// b must be positive. Computed by the active [Backend].
func Mod(a, b Int) (Int, error) {
	return CurrentBackend().Mod(a, b)
}

// nativeMod is the native backend's Euclidean residue.
func nativeMod(a, b Int) (Int, error) {
	_, r, err := DivQR(a, b)
	if err != nil {
		return Int{}, err
	}
	if r.Sign() < 0 {
		r = Add(r, b)
	}
	return r, nil
}
