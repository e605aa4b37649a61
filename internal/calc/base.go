package calc

import (
	"strings"

	"github.com/brick/bignum/errs"
)

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// toDigits converts a magnitude to a slice of digit values in the given
// radix, most significant digit first. An empty result means zero.
func toDigits(abs nat, radix uint32) []uint32 {
	if abs.isZero() {
		return nil
	}
	var rev []uint32
	cur := abs
	for !cur.isZero() {
		var rem uint32
		cur, rem = divmodSmall(cur, radix)
		rev = append(rev, rem)
	}
	out := make([]uint32, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}
	return out
}

// fromDigits converts digit values (most significant first, in the
// given radix) back into a magnitude via Horner's method.
func fromDigits(digits []uint32, radix uint32) nat {
	var acc nat
	for _, d := range digits {
		acc = mulSmall(acc, radix)
		acc = addSmall(acc, d)
	}
	return acc
}

func checkRadix(radix int) error {
	if radix < 2 || radix > 36 {
		return errs.Wrapf(errs.InvalidArgument, "calc: radix %d out of range [2, 36]", radix)
	}
	return nil
}

// ToBase renders x in the given radix (2-36), using lowercase letters
// for digit values above 9.
func ToBase(x Int, radix int) (string, error) {
	if err := checkRadix(radix); err != nil {
		return "", err
	}
	digits := toDigits(x.abs, uint32(radix))
	if len(digits) == 0 {
		return "0", nil
	}
	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	}
	for _, d := range digits {
		b.WriteByte(digitAlphabet[d])
	}
	return b.String(), nil
}

// FromBase parses a signed digit string in the given radix (2-36),
// accepting both cases for alphabetic digits.
func FromBase(s string, radix int) (Int, error) {
	if err := checkRadix(radix); err != nil {
		return Int{}, err
	}
	if s == "" {
		return Int{}, errs.Wrap(errs.NumberFormat, "calc: empty digit string")
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
	digits := make([]uint32, 0, len(s)-i)
	for ; i < len(s); i++ {
		v, ok := digitValue(s[i])
		if !ok || v >= uint32(radix) {
			return Int{}, errs.Wrapf(errs.NumberFormat, "calc: %q contains a digit invalid in base %d", s, radix)
		}
		digits = append(digits, v)
	}
	return normalize(neg, fromDigits(digits, uint32(radix))), nil
}

func digitValue(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}

// validateAlphabet checks that alphabet has at least two distinct
// single-byte symbols and returns a byte -> digit value lookup.
func validateAlphabet(alphabet string) (map[byte]uint32, error) {
	if len(alphabet) < 2 {
		return nil, errs.Wrap(errs.InvalidArgument, "calc: alphabet must have at least 2 symbols")
	}
	index := make(map[byte]uint32, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if _, dup := index[c]; dup {
			return nil, errs.Wrapf(errs.InvalidArgument, "calc: alphabet contains duplicate symbol %q", c)
		}
		index[c] = uint32(i)
	}
	return index, nil
}

// ToArbitraryBase renders a non-negative x using alphabet as the digit
// symbols (alphabet[0] is the zero digit).
func ToArbitraryBase(x Int, alphabet string) (string, error) {
	if _, err := validateAlphabet(alphabet); err != nil {
		return "", err
	}
	if x.neg {
		return "", errs.Wrap(errs.NegativeNumber, "calc: cannot render a negative integer in an arbitrary base")
	}
	digits := toDigits(x.abs, uint32(len(alphabet)))
	if len(digits) == 0 {
		return string(alphabet[0]), nil
	}
	var b strings.Builder
	for _, d := range digits {
		b.WriteByte(alphabet[d])
	}
	return b.String(), nil
}

// FromArbitraryBase parses s using alphabet as the digit symbols. The
// result is always non-negative.
func FromArbitraryBase(s string, alphabet string) (Int, error) {
	index, err := validateAlphabet(alphabet)
	if err != nil {
		return Int{}, err
	}
	if s == "" {
		return Int{}, errs.Wrap(errs.NumberFormat, "calc: empty digit string")
	}
	digits := make([]uint32, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := index[s[i]]
		if !ok {
			return Int{}, errs.Wrapf(errs.NumberFormat, "calc: %q contains a symbol outside the alphabet", s)
		}
		digits[i] = v
	}
	return normalize(false, fromDigits(digits, uint32(len(alphabet)))), nil
}
