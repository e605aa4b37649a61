package calc

import (
	"sync/atomic"

	"github.com/brick/bignum/rounding"
)

// Backend is the calculator implementation that every exported arithmetic
// entry point in this package dispatches through. The zero value of the
// package always resolves to [Native]; Backend exists so a caller can
// name and swap the implementation that actually does the digit work,
// per spec.md §6's process-wide backend selector. Every method here
// mirrors one row of the operation table in spec.md §4.1.
type Backend interface {
	Name() string

	Add(a, b Int) Int
	Sub(a, b Int) Int
	Mul(a, b Int) Int
	DivQR(a, b Int) (q, r Int, err error)
	DivRound(a, b Int, mode rounding.Mode) (Int, error)
	Mod(a, b Int) (Int, error)
	Pow(a Int, e int64) (Int, error)
	Sqrt(n Int) (Int, error)
	GCD(a, b Int) Int
	LCM(a, b Int) Int
	ModPow(base, exp, m Int) (Int, error)
	ModInverse(x, m Int) (r Int, ok bool, err error)
	And(a, b Int) Int
	Or(a, b Int) Int
	Xor(a, b Int) Int
	Not(x Int) Int
}

// nativeBackend dispatches every Backend method to this package's own
// native* implementations, never to the exported, backend-dispatching
// function of the same name — that indirection is what lets SetBackend
// swap the implementation without nativeBackend recursing into itself.
type nativeBackend struct{}

func (nativeBackend) Name() string                           { return "native" }
func (nativeBackend) Add(a, b Int) Int                       { return nativeAdd(a, b) }
func (nativeBackend) Sub(a, b Int) Int                       { return nativeSub(a, b) }
func (nativeBackend) Mul(a, b Int) Int                       { return nativeMul(a, b) }
func (nativeBackend) DivQR(a, b Int) (Int, Int, error)       { return nativeDivQR(a, b) }
func (nativeBackend) Mod(a, b Int) (Int, error)              { return nativeMod(a, b) }
func (nativeBackend) Sqrt(n Int) (Int, error)                { return nativeSqrt(n) }
func (nativeBackend) GCD(a, b Int) Int                       { return nativeGCD(a, b) }
func (nativeBackend) LCM(a, b Int) Int                       { return nativeLCM(a, b) }
func (nativeBackend) ModInverse(x, m Int) (Int, bool, error) { return nativeModInverse(x, m) }
func (nativeBackend) And(a, b Int) Int                       { return nativeAnd(a, b) }
func (nativeBackend) Or(a, b Int) Int                        { return nativeOr(a, b) }
func (nativeBackend) Xor(a, b Int) Int                       { return nativeXor(a, b) }
func (nativeBackend) Not(x Int) Int                          { return nativeNot(x) }

func (nativeBackend) Pow(a Int, e int64) (Int, error) { return nativePow(a, e) }

func (nativeBackend) DivRound(a, b Int, mode rounding.Mode) (Int, error) {
	return nativeDivRound(a, b, mode)
}

func (nativeBackend) ModPow(base, exp, m Int) (Int, error) {
	return nativeModPow(base, exp, m)
}

// Native is the self-contained backend this package implements directly.
// It never does any I/O and cannot fail to initialize.
var Native Backend = nativeBackend{}

var activeBackend atomic.Value

func init() {
	activeBackend.Store(Native)
}

// SetBackend installs the calculator implementation used by every
// subsequent operation. Passing nil reverts to [Native]. This module
// ships only the native backend; SetBackend exists so a caller can swap
// in an alternative one without the rest of the module needing to change,
// per the process-wide backend selector spec.md §6 and §9 call for.
func SetBackend(b Backend) {
	if b == nil {
		b = Native
	}
	activeBackend.Store(b)
}

// CurrentBackend returns the backend installed by the most recent call to
// [SetBackend], or [Native] if none was ever made.
func CurrentBackend() Backend {
	return activeBackend.Load().(Backend)
}
