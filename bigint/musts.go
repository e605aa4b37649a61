package bigint

import (
	"fmt"

	"github.com/brick/bignum/rounding"
)

// MustOf is like [Of] but panics if parsing fails.
func MustOf(s string) BigInteger {
	x, err := Of(s)
	if err != nil {
		panic(fmt.Sprintf("MustOf(%q) failed: %v", s, err))
	}
	return x
}

// MustDividedBy is like [BigInteger.DividedBy] but panics on error.
func (x BigInteger) MustDividedBy(y BigInteger, mode rounding.Mode) BigInteger {
	z, err := x.DividedBy(y, mode)
	if err != nil {
		panic(fmt.Sprintf("MustDividedBy(%v) failed: %v", y, err))
	}
	return z
}

// MustPower is like [BigInteger.Power] but panics on error.
func (x BigInteger) MustPower(e int64) BigInteger {
	z, err := x.Power(e)
	if err != nil {
		panic(fmt.Sprintf("MustPower(%d) failed: %v", e, err))
	}
	return z
}

// MustSqrt is like [BigInteger.Sqrt] but panics on error.
func (x BigInteger) MustSqrt(mode rounding.Mode) BigInteger {
	z, err := x.Sqrt(mode)
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return z
}
