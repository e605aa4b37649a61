package bigdecimal

import (
	"fmt"

	"github.com/brick/bignum/rounding"
)

// MustOf is like [Of] but panics if parsing fails.
func MustOf(s string) BigDecimal {
	x, err := Of(s)
	if err != nil {
		panic(fmt.Sprintf("MustOf(%q) failed: %v", s, err))
	}
	return x
}

// MustDividedBy is like [BigDecimal.DividedBy] but panics on error.
func (x BigDecimal) MustDividedBy(y BigDecimal, targetScale int, mode rounding.Mode) BigDecimal {
	z, err := x.DividedBy(y, targetScale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustDividedBy(%v) failed: %v", y, err))
	}
	return z
}

// MustToScale is like [BigDecimal.ToScale] but panics on error.
func (x BigDecimal) MustToScale(targetScale int, mode rounding.Mode) BigDecimal {
	z, err := x.ToScale(targetScale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustToScale(%d) failed: %v", targetScale, err))
	}
	return z
}
