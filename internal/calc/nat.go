// Package calc is the digit-string calculator: the self-contained,
// arbitrary-precision arithmetic engine that every public number kind
// (BigInteger, BigDecimal, BigRational) delegates its digit work to.
//
// Internally a magnitude is stored as a little-endian slice of base-1e9
// limbs rather than one byte per decimal digit, so that add/sub/mul
// inner loops work in groups of nine decimal digits at a time (spec
// §4.1.2) instead of one digit at a time. This is purely an efficiency
// choice: every operation's observable contract is defined in terms of
// canonical decimal digit strings, and ParseDigits/String are the only
// places where the limb encoding is visible.
package calc

// limbBase is 10^9: the largest power of ten such that two limbs can be
// multiplied together without overflowing a uint64 accumulator
// (999999999^2 < 2^63).
const limbBase = 1_000_000_000

// limbDigits is the number of decimal digits per limb.
const limbDigits = 9

// nat is an unsigned magnitude: little-endian base-limbBase limbs, no
// leading (i.e. high-order) zero limb. The zero value (nil or
// zero-length) represents the number zero.
type nat []uint32

func natFromUint64(v uint64) nat {
	if v == 0 {
		return nil
	}
	var out nat
	for v > 0 {
		out = append(out, uint32(v%limbBase))
		v /= limbBase
	}
	return out
}

// trim drops high-order zero limbs in place.
func (x nat) trim() nat {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

func (x nat) isZero() bool {
	return len(x) == 0
}

func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	out := make(nat, len(x))
	copy(out, x)
	return out
}

// cmpNat compares two magnitudes: -1, 0, 1.
func cmpNat(x, y nat) int {
	x, y = x.trim(), y.trim()
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addNat returns x + y.
func addNat(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	out := make(nat, len(x)+1)
	var carry uint64
	for i := range x {
		s := uint64(x[i]) + carry
		if i < len(y) {
			s += uint64(y[i])
		}
		if s >= limbBase {
			s -= limbBase
			carry = 1
		} else {
			carry = 0
		}
		out[i] = uint32(s)
	}
	out[len(x)] = uint32(carry)
	return out.trim()
}

// subNat returns x - y. The caller must ensure x >= y.
func subNat(x, y nat) nat {
	out := make(nat, len(x))
	var borrow int64
	for i := range x {
		d := int64(x[i]) - borrow
		if i < len(y) {
			d -= int64(y[i])
		}
		if d < 0 {
			d += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return out.trim()
}

// mulSmall returns x * k for a single-limb multiplier k (k < limbBase).
func mulSmall(x nat, k uint32) nat {
	if k == 0 || x.isZero() {
		return nil
	}
	out := make(nat, len(x)+1)
	var carry uint64
	for i := range x {
		p := uint64(x[i])*uint64(k) + carry
		out[i] = uint32(p % limbBase)
		carry = p / limbBase
	}
	out[len(x)] = uint32(carry)
	return out.trim()
}

// addSmall returns x + k for k < limbBase.
func addSmall(x nat, k uint32) nat {
	if k == 0 {
		return x.trim()
	}
	out := make(nat, len(x)+1)
	carry := uint64(k)
	i := 0
	for ; i < len(x); i++ {
		s := uint64(x[i]) + carry
		out[i] = uint32(s % limbBase)
		carry = s / limbBase
		if carry == 0 {
			i++
			break
		}
	}
	for ; i < len(x); i++ {
		out[i] = x[i]
	}
	out[len(out)-1] = uint32(carry)
	return out.trim()
}

// shiftLimbs returns x * limbBase^n (prepends n zero limbs).
func shiftLimbs(x nat, n int) nat {
	if x.isZero() || n == 0 {
		return x
	}
	out := make(nat, len(x)+n)
	copy(out[n:], x)
	return out
}

// divmodSmall returns (x / k, x % k) for a single-limb divisor k != 0,
// computed in a single linear pass from the most significant limb down.
func divmodSmall(x nat, k uint32) (nat, uint32) {
	if len(x) == 0 {
		return nil, 0
	}
	q := make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem*limbBase + uint64(x[i])
		q[i] = uint32(cur / uint64(k))
		rem = cur % uint64(k)
	}
	return q.trim(), uint32(rem)
}

// numDigits returns the number of decimal digits in x (0 for zero, by
// convention used only internally: callers needing the spec-visible
// digit count for zero must special-case it to 1).
func numDigits(x nat) int {
	x = x.trim()
	if len(x) == 0 {
		return 0
	}
	n := (len(x) - 1) * limbDigits
	top := x[len(x)-1]
	for top > 0 {
		n++
		top /= 10
	}
	return n
}
