// Package bignum is the common facade over the three number kinds this
// module provides: BigInteger, BigDecimal and BigRational. It wraps each
// kind behind a single [Number] interface and implements the
// cross-kind operations — Of, Min, Max, Sum — that need to compare or
// combine values regardless of which kind they were constructed as.
//
// The facade never reduces, rounds or loses precision on its own: Sum
// widens every operand up to the richest kind among them (integer <
// decimal < rational) and combines them there; Min and Max compare
// across kinds but return the original, unwidened argument.
package bignum

import (
	"fmt"

	"github.com/brick/bignum/bigdecimal"
	"github.com/brick/bignum/bigint"
	"github.com/brick/bignum/bigrational"
	"github.com/brick/bignum/errs"
	"github.com/brick/bignum/parser"
)

// Kind identifies which of the three number kinds a [Number] wraps.
// Kinds are ordered from narrowest to richest: IntegerKind < DecimalKind
// < RationalKind.
type Kind int

const (
	IntegerKind Kind = iota
	DecimalKind
	RationalKind
)

// Number is any of BigInteger, BigDecimal or BigRational, wrapped so
// code that handles mixed-kind values has one type to hold them. The
// unexported method seals the interface to this package's three
// wrappers.
type Number interface {
	fmt.Stringer
	Kind() Kind
	Sign() int
	IsZero() bool
	isNumber()
}

// Integer wraps a bigint.BigInteger as a [Number].
type Integer struct{ Value bigint.BigInteger }

func (n Integer) String() string { return n.Value.String() }
func (n Integer) Kind() Kind     { return IntegerKind }
func (n Integer) Sign() int      { return n.Value.Sign() }
func (n Integer) IsZero() bool   { return n.Value.IsZero() }
func (Integer) isNumber()        {}

// Decimal wraps a bigdecimal.BigDecimal as a [Number].
type Decimal struct{ Value bigdecimal.BigDecimal }

func (n Decimal) String() string { return n.Value.String() }
func (n Decimal) Kind() Kind     { return DecimalKind }
func (n Decimal) Sign() int      { return n.Value.Sign() }
func (n Decimal) IsZero() bool   { return n.Value.IsZero() }
func (Decimal) isNumber()        {}

// Rational wraps a bigrational.BigRational as a [Number].
type Rational struct{ Value bigrational.BigRational }

func (n Rational) String() string { return n.Value.String() }
func (n Rational) Kind() Kind     { return RationalKind }
func (n Rational) Sign() int      { return n.Value.Sign() }
func (n Rational) IsZero() bool   { return n.Value.IsZero() }
func (Rational) isNumber()        {}

// Of builds a Number from a native integer, a literal string dispatched
// per the shared grammar, or an already-constructed value of one of the
// three kinds (passed through unchanged).
func Of(value any) (Number, error) {
	switch v := value.(type) {
	case Number:
		return v, nil
	case bigint.BigInteger:
		return Integer{v}, nil
	case bigdecimal.BigDecimal:
		return Decimal{v}, nil
	case bigrational.BigRational:
		return Rational{v}, nil
	case int:
		return Integer{bigint.OfInt64(int64(v))}, nil
	case int64:
		return Integer{bigint.OfInt64(v)}, nil
	case uint64:
		return Integer{bigint.OfUint64(v)}, nil
	case string:
		return ofString(v)
	default:
		return nil, errs.Wrapf(errs.InvalidArgument, "bignum: Of does not accept a value of type %T", value)
	}
}

func ofString(s string) (Number, error) {
	r, err := parser.Parse(s)
	if err != nil {
		return nil, err
	}
	switch r.Kind {
	case parser.Integer:
		v, err := bigint.Of(s)
		if err != nil {
			return nil, err
		}
		return Integer{v}, nil
	case parser.Decimal:
		v, err := bigdecimal.Of(s)
		if err != nil {
			return nil, err
		}
		return Decimal{v}, nil
	default:
		v, err := bigrational.Of(s)
		if err != nil {
			return nil, err
		}
		return Rational{v}, nil
	}
}

// asFraction renders any Number as a numerator/denominator pair, purely
// for cross-kind comparison; it never changes what the caller holds.
func asFraction(n Number) (num, den bigint.BigInteger, err error) {
	switch v := n.(type) {
	case Integer:
		return v.Value, bigint.One, nil
	case Decimal:
		p, err := bigint.Ten.Power(int64(v.Value.Scale()))
		if err != nil {
			return bigint.BigInteger{}, bigint.BigInteger{}, err
		}
		return v.Value.Unscaled(), p, nil
	case Rational:
		return v.Value.Numerator(), v.Value.Denominator(), nil
	default:
		return bigint.BigInteger{}, bigint.BigInteger{}, errs.Wrapf(errs.InvalidArgument, "bignum: unrecognized Number implementation %T", n)
	}
}

// Compare orders a and b by value: both are rendered as
// numerator/denominator pairs and compared by cross-multiplication,
// whatever their kinds.
func Compare(a, b Number) (int, error) {
	na, da, err := asFraction(a)
	if err != nil {
		return 0, err
	}
	nb, db, err := asFraction(b)
	if err != nil {
		return 0, err
	}
	return bigint.Cmp(na.MultipliedBy(db), nb.MultipliedBy(da)), nil
}

// Min returns whichever of values compares smallest, as its own
// original kind (no widening).
func Min(values ...Number) (Number, error) {
	return extremum(values, -1)
}

// Max returns whichever of values compares largest, as its own original
// kind (no widening).
func Max(values ...Number) (Number, error) {
	return extremum(values, 1)
}

func extremum(values []Number, want int) (Number, error) {
	if len(values) == 0 {
		return nil, errs.Wrap(errs.InvalidArgument, "bignum: Min/Max require at least one value")
	}
	best := values[0]
	for _, v := range values[1:] {
		c, err := Compare(v, best)
		if err != nil {
			return nil, err
		}
		if c == want {
			best = v
		}
	}
	return best, nil
}

// Sum adds every value together, widening all of them up to the richest
// kind present among them (integer < decimal < rational) before adding.
func Sum(values ...Number) (Number, error) {
	if len(values) == 0 {
		return Integer{bigint.Zero}, nil
	}
	richest := IntegerKind
	for _, v := range values {
		if v.Kind() > richest {
			richest = v.Kind()
		}
	}
	switch richest {
	case IntegerKind:
		acc := bigint.Zero
		for _, v := range values {
			acc = acc.Plus(v.(Integer).Value)
		}
		return Integer{acc}, nil
	case DecimalKind:
		acc := bigdecimal.Zero
		for _, v := range values {
			d, err := toDecimal(v)
			if err != nil {
				return nil, err
			}
			acc = acc.Plus(d)
		}
		return Decimal{acc}, nil
	default:
		acc, err := bigrational.OfIntegers(bigint.Zero, bigint.One)
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			r, err := toRational(v)
			if err != nil {
				return nil, err
			}
			acc = acc.Plus(r)
		}
		return Rational{acc}, nil
	}
}

func toDecimal(n Number) (bigdecimal.BigDecimal, error) {
	switch v := n.(type) {
	case Integer:
		return bigdecimal.OfUnscaledValue(v.Value, 0)
	case Decimal:
		return v.Value, nil
	default:
		return bigdecimal.BigDecimal{}, errs.Wrapf(errs.InvalidArgument, "bignum: cannot widen %T to BigDecimal", n)
	}
}

func toRational(n Number) (bigrational.BigRational, error) {
	switch v := n.(type) {
	case Integer:
		return bigrational.OfIntegers(v.Value, bigint.One)
	case Decimal:
		p, err := bigint.Ten.Power(int64(v.Value.Scale()))
		if err != nil {
			return bigrational.BigRational{}, err
		}
		return bigrational.OfIntegers(v.Value.Unscaled(), p)
	case Rational:
		return v.Value, nil
	default:
		return bigrational.BigRational{}, errs.Wrapf(errs.InvalidArgument, "bignum: unrecognized Number implementation %T", n)
	}
}
