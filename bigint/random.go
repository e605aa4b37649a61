package bigint

import (
	cryptorand "crypto/rand"

	"github.com/brick/bignum/errs"
	"github.com/brick/bignum/internal/calc"
)

// RandomSource fills and returns n cryptographically meaningful random
// bytes. It is the pluggable seam mentioned for RandomBits/RandomRange;
// tests and callers who need determinism supply their own.
type RandomSource func(n int) ([]byte, error)

// DefaultRandomSource reads from the OS's secure random generator. No
// library in the reference pool offers a bignum-flavored random source,
// so this seam is built directly on the standard library's crypto/rand,
// which is itself the idiomatic Go way to reach the OS CSPRNG.
var DefaultRandomSource RandomSource = func(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := cryptorand.Read(b); err != nil {
		return nil, errs.Wrapf(errs.RandomSource, "bigint: reading random bytes: %v", err)
	}
	return b, nil
}

// RandomBits returns a uniformly random integer in [0, 2^n). A nil src
// uses DefaultRandomSource.
func RandomBits(n int, src RandomSource) (BigInteger, error) {
	if n < 0 {
		return BigInteger{}, errs.Wrapf(errs.InvalidArgument, "bigint: negative bit count %d", n)
	}
	if src == nil {
		src = DefaultRandomSource
	}
	if n == 0 {
		return Zero, nil
	}
	nBytes := (n + 7) / 8
	b, err := src(nBytes)
	if err != nil {
		return BigInteger{}, errs.Wrapf(errs.RandomSource, "bigint: random source failed: %v", err)
	}
	if len(b) != nBytes {
		return BigInteger{}, errs.Wrapf(errs.RandomSource, "bigint: random source returned %d bytes, want %d", len(b), nBytes)
	}
	excess := nBytes*8 - n
	if excess > 0 {
		b[0] &= byte(0xFF >> excess)
	}
	v, err := calc.FromBytes(b, false)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v: v}, nil
}

// RandomRange returns a uniformly random integer in [min, max] using
// rejection sampling: draw enough bits to cover max-min and retry until
// the draw lands within range.
func RandomRange(min, max BigInteger, src RandomSource) (BigInteger, error) {
	if Cmp(min, max) > 0 {
		return BigInteger{}, errs.Wrapf(errs.InvalidArgument, "bigint: min %s exceeds max %s", min.v.String(), max.v.String())
	}
	diff := calc.Sub(max.v, min.v)
	if diff.IsZero() {
		return min, nil
	}
	bits := magnitudeBitLength(diff)
	for {
		draw, err := RandomBits(bits, src)
		if err != nil {
			return BigInteger{}, err
		}
		if calc.Cmp(draw.v, diff) <= 0 {
			return BigInteger{v: calc.Add(min.v, draw.v)}, nil
		}
	}
}
