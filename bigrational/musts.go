package bigrational

import "fmt"

// MustOf is like [Of] but panics if parsing fails.
func MustOf(s string) BigRational {
	x, err := Of(s)
	if err != nil {
		panic(fmt.Sprintf("MustOf(%q) failed: %v", s, err))
	}
	return x
}

// MustDividedBy is like [BigRational.DividedBy] but panics on error.
func (x BigRational) MustDividedBy(y BigRational) BigRational {
	z, err := x.DividedBy(y)
	if err != nil {
		panic(fmt.Sprintf("MustDividedBy(%v) failed: %v", y, err))
	}
	return z
}
