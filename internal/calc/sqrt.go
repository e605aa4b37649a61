package calc

import "github.com/brick/bignum/errs"

// Sqrt returns floor(sqrt(n)) via Newton's method seeded from a
// digit-length-derived initial approximation, followed by a linear
// correction pass that guarantees x*x <= n < (x+1)*(x+1) exactly. n
// must be non-negative. Computed by the active [Backend].
func Sqrt(n Int) (Int, error) {
	return CurrentBackend().Sqrt(n)
}

// nativeSqrt is the native backend's integer square root.
func nativeSqrt(n Int) (Int, error) {
	if n.Sign() < 0 {
		return Int{}, errs.Wrap(errs.NegativeNumber, "calc: sqrt of a negative number")
	}
	if n.IsZero() {
		return Zero, nil
	}

	halfDigits := (n.NumDigits() + 1) / 2
	x := Int{abs: pow10Nat(halfDigits)}

	for {
		q, err := DivQ(n, x)
		if err != nil {
			return Int{}, err
		}
		next, err := DivQ(Add(x, q), Two)
		if err != nil {
			return Int{}, err
		}
		if Cmp(next, x) >= 0 {
			break
		}
		x = next
	}

	for {
		x1 := Add(x, One)
		if Cmp(Mul(x1, x1), n) <= 0 {
			x = x1
			continue
		}
		break
	}
	for Cmp(Mul(x, x), n) > 0 {
		x = Sub(x, One)
	}
	return x, nil
}

// pow10Nat builds the magnitude of 10^n directly in limb form.
func pow10Nat(n int) nat {
	if n <= 0 {
		return natFromUint64(1)
	}
	q, r := n/limbDigits, n%limbDigits
	out := make(nat, q+1)
	top := uint32(1)
	for i := 0; i < r; i++ {
		top *= 10
	}
	out[q] = top
	return out.trim()
}
