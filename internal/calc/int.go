package calc

import (
	"strings"

	"github.com/brick/bignum/errs"
)

// Int is a signed arbitrary-precision integer: the value the rest of
// this package and every public number kind computes with. Int is
// immutable; every function that returns an Int returns a new value.
type Int struct {
	neg bool
	abs nat
}

// Zero, One and Ten are the constants the rest of the module builds on.
var (
	Zero = Int{}
	One  = Int{abs: natFromUint64(1)}
	Two  = Int{abs: natFromUint64(2)}
	Ten  = Int{abs: natFromUint64(10)}
)

// FromInt64 converts a native integer to an Int.
func FromInt64(v int64) Int {
	if v == 0 {
		return Zero
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	return normalize(neg, natFromUint64(u))
}

// FromUint64 converts a native unsigned integer to an Int.
func FromUint64(v uint64) Int {
	return normalize(false, natFromUint64(v))
}

func normalize(neg bool, abs nat) Int {
	abs = abs.trim()
	if len(abs) == 0 {
		return Int{}
	}
	return Int{neg: neg, abs: abs}
}

// ParseDigits parses a canonical or non-canonical signed decimal digit
// string: an optional leading '+' or '-', followed by one or more
// decimal digits. Leading zeros are stripped and "-0" normalizes to
// zero, matching spec §4.4's parsing rules.
func ParseDigits(s string) (Int, error) {
	if s == "" {
		return Int{}, errs.Wrap(errs.NumberFormat, "calc: empty integer")
	}
	neg := false
	i := 0
	switch s[0] {
	case '-':
		neg = true
		i = 1
	case '+':
		i = 1
	}
	if i == len(s) {
		return Int{}, errs.Wrapf(errs.NumberFormat, "calc: %q has no digits", s)
	}
	digits := s[i:]
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return Int{}, errs.Wrapf(errs.NumberFormat, "calc: %q contains a non-digit character", s)
		}
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return Int{}, nil
	}
	abs := natFromDecimal(digits)
	return normalize(neg, abs), nil
}

// natFromDecimal converts a digit string with no leading zeros and no
// sign into a magnitude, consuming nine decimal digits per limb.
func natFromDecimal(digits string) nat {
	n := len(digits)
	limbCount := (n + limbDigits - 1) / limbDigits
	out := make(nat, limbCount)
	// The least significant limb may be a partial (< 9 digit) chunk; it
	// sits at the end of the string.
	pos := n
	for i := 0; i < limbCount; i++ {
		start := pos - limbDigits
		if start < 0 {
			start = 0
		}
		chunk := digits[start:pos]
		out[i] = uint32(parseChunk(chunk))
		pos = start
	}
	return out.trim()
}

func parseChunk(chunk string) uint64 {
	var v uint64
	for i := 0; i < len(chunk); i++ {
		v = v*10 + uint64(chunk[i]-'0')
	}
	return v
}

// String renders x as a canonical decimal digit string: optional
// leading '-', no leading zeros, "0" for zero.
func (x Int) String() string {
	if x.abs.isZero() {
		return "0"
	}
	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	}
	abs := x.abs.trim()
	b.WriteString(itoa(uint64(abs[len(abs)-1])))
	for i := len(abs) - 2; i >= 0; i-- {
		s := itoa(uint64(abs[i]))
		for pad := limbDigits - len(s); pad > 0; pad-- {
			b.WriteByte('0')
		}
		b.WriteString(s)
	}
	return b.String()
}

func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// Sign returns -1, 0 or 1.
func (x Int) Sign() int {
	if x.abs.isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return x.abs.isZero() }

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool { return x.neg && !x.abs.isZero() }

// IsEven reports whether x is divisible by two.
func (x Int) IsEven() bool {
	if x.abs.isZero() {
		return true
	}
	return x.abs[0]%2 == 0
}

// NumDigits returns the number of decimal digits in |x|, with the
// convention that zero has exactly one digit (matching its canonical
// string "0").
func (x Int) NumDigits() int {
	if x.abs.isZero() {
		return 1
	}
	return numDigits(x.abs)
}

// Abs returns |x|.
func (x Int) Abs() Int { return Int{neg: false, abs: x.abs} }

// Neg returns -x. Negating zero is idempotent.
func (x Int) Neg() Int {
	if x.abs.isZero() {
		return x
	}
	return Int{neg: !x.neg, abs: x.abs}
}

// Cmp compares a and b: -1, 0, 1.
func Cmp(a, b Int) int {
	switch {
	case a.Sign() != b.Sign():
		if a.Sign() < b.Sign() {
			return -1
		}
		return 1
	case a.Sign() == 0:
		return 0
	case a.neg:
		return -cmpNat(a.abs, b.abs)
	default:
		return cmpNat(a.abs, b.abs)
	}
}

// Add returns a + b, computed by the active [Backend].
func Add(a, b Int) Int {
	return CurrentBackend().Add(a, b)
}

// Sub returns a - b, computed by the active [Backend].
func Sub(a, b Int) Int {
	return CurrentBackend().Sub(a, b)
}

// nativeAdd is the native backend's addition.
func nativeAdd(a, b Int) Int {
	switch {
	case a.neg == b.neg:
		return normalize(a.neg, addNat(a.abs, b.abs))
	case cmpNat(a.abs, b.abs) >= 0:
		return normalize(a.neg, subNat(a.abs, b.abs))
	default:
		return normalize(b.neg, subNat(b.abs, a.abs))
	}
}

// nativeSub is the native backend's subtraction; defined as
// nativeAdd(a, Neg(b)).
func nativeSub(a, b Int) Int {
	return nativeAdd(a, b.Neg())
}
