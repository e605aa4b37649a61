package bigint

import (
	"github.com/brick/bignum/errs"
	"github.com/brick/bignum/internal/calc"
	"github.com/brick/bignum/rounding"
)

// And returns the bitwise AND of x and y under infinite-precision
// two's-complement semantics.
func (x BigInteger) And(y BigInteger) BigInteger { return BigInteger{v: calc.And(x.v, y.v)} }

// Or returns the bitwise OR of x and y.
func (x BigInteger) Or(y BigInteger) BigInteger { return BigInteger{v: calc.Or(x.v, y.v)} }

// Xor returns the bitwise XOR of x and y.
func (x BigInteger) Xor(y BigInteger) BigInteger { return BigInteger{v: calc.Xor(x.v, y.v)} }

// Not returns the bitwise complement, -(x+1).
func (x BigInteger) Not() BigInteger { return BigInteger{v: calc.Not(x.v)} }

func pow2(n int) (calc.Int, error) {
	if n < 0 {
		return calc.Int{}, errs.Wrapf(errs.InvalidArgument, "bigint: negative shift/bit count %d", n)
	}
	return calc.Pow(calc.Two, int64(n))
}

// ShiftedLeft returns x * 2^n. n must be non-negative.
func (x BigInteger) ShiftedLeft(n int) (BigInteger, error) {
	p, err := pow2(n)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: calc.Mul(x.v, p)}, nil
}

// ShiftedRight returns an arithmetic right shift of x by n bits: floor
// division by 2^n, so positive values truncate toward zero and negative
// values truncate toward negative infinity. n must be non-negative.
func (x BigInteger) ShiftedRight(n int) (BigInteger, error) {
	p, err := pow2(n)
	if err != nil {
		return BigInteger{}, err
	}
	v, err := calc.DivRound(x.v, p, rounding.Floor)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// magnitudeBitLength returns the number of bits needed to represent a
// non-negative calc.Int: the smallest n with v < 2^n (0 for zero).
func magnitudeBitLength(v calc.Int) int {
	n := 0
	for !v.IsZero() {
		v, _ = calc.DivQ(v, calc.Two)
		n++
	}
	return n
}

// GetBitLength returns the number of bits in x's minimal two's-complement
// representation, excluding the sign bit; 0 for zero.
func (x BigInteger) GetBitLength() int {
	if x.v.IsZero() {
		return 0
	}
	if x.v.Sign() > 0 {
		return magnitudeBitLength(x.v)
	}
	y := calc.Sub(x.v.Abs(), calc.One)
	return magnitudeBitLength(y)
}

// GetLowestSetBit returns the index of the lowest set bit in x's
// two's-complement representation, or -1 when x is zero. Two's
// complement negation preserves the position of the lowest set bit, so
// this is equivalent to counting trailing zeros of |x|.
func (x BigInteger) GetLowestSetBit() int {
	if x.v.IsZero() {
		return -1
	}
	y := x.v.Abs()
	n := 0
	for y.IsEven() {
		y, _ = calc.DivQ(y, calc.Two)
		n++
	}
	return n
}

// TestBit reports the value of bit n (0 = least significant) of x's
// infinite-precision two's-complement representation. n must be
// non-negative.
func (x BigInteger) TestBit(n int) (bool, error) {
	if n < 0 {
		return false, errs.Wrapf(errs.InvalidArgument, "bigint: negative bit index %d", n)
	}
	if x.v.Sign() >= 0 {
		return testBitMagnitude(x.v, n), nil
	}
	y := calc.Sub(x.v.Abs(), calc.One)
	return !testBitMagnitude(y, n), nil
}

func testBitMagnitude(v calc.Int, n int) bool {
	for i := 0; i < n; i++ {
		v, _ = calc.DivQ(v, calc.Two)
	}
	return !v.IsEven()
}
