package calc

import (
	"testing"

	"github.com/brick/bignum/rounding"
)

func mustParse(t *testing.T, s string) Int {
	t.Helper()
	n, err := ParseDigits(s)
	if err != nil {
		t.Fatalf("ParseDigits(%q) failed: %v", s, err)
	}
	return n
}

func TestParseDigitsRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "123456789012345678901234567890", "-42", "1000"}
	for _, c := range cases {
		n := mustParse(t, c)
		if n.String() != c {
			t.Errorf("ParseDigits(%q).String() = %q", c, n.String())
		}
	}
}

func TestParseDigitsRejectsMalformed(t *testing.T) {
	cases := []string{"", "-", "+", "1.5", "abc", "- 1", "--1"}
	for _, c := range cases {
		if _, err := ParseDigits(c); err == nil {
			t.Errorf("ParseDigits(%q) succeeded, want error", c)
		}
	}
}

func TestParseDigitsNormalizesNonCanonical(t *testing.T) {
	cases := []struct{ in, want string }{
		{"01", "1"}, {"-0", "0"}, {"+1", "1"},
	}
	for _, c := range cases {
		if got := mustParse(t, c.in).String(); got != c.want {
			t.Errorf("ParseDigits(%q).String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestZeroHasNoSign(t *testing.T) {
	z := mustParse(t, "0")
	if z.Sign() != 0 || z.IsNegative() {
		t.Errorf("zero sign = %d, negative = %v", z.Sign(), z.IsNegative())
	}
}

func TestAddSubAreInverse(t *testing.T) {
	a := mustParse(t, "98765432109876543210")
	b := mustParse(t, "-123456789012345678")
	sum := Add(a, b)
	back := Sub(sum, b)
	if Cmp(back, a) != 0 {
		t.Errorf("(a+b)-b = %v, want %v", back.String(), a.String())
	}
}

func TestSubIsAddOfNegation(t *testing.T) {
	a := mustParse(t, "555")
	b := mustParse(t, "777")
	if Cmp(Sub(a, b), Add(a, b.Neg())) != 0 {
		t.Errorf("sub(a,b) != add(a, neg(b))")
	}
}

func TestNegationLaws(t *testing.T) {
	x := mustParse(t, "123")
	if !Add(x, x.Neg()).IsZero() {
		t.Errorf("x + neg(x) != 0")
	}
	if Cmp(x.Neg().Neg(), x) != 0 {
		t.Errorf("neg(neg(x)) != x")
	}
	zero := mustParse(t, "0")
	if !zero.Neg().IsZero() || zero.Neg().IsNegative() {
		t.Errorf("neg(0) must stay non-negative zero")
	}
}

func TestAdditionAssociative(t *testing.T) {
	a := mustParse(t, "111111111111111111")
	b := mustParse(t, "-222222222222222")
	c := mustParse(t, "3333333333")
	left := Add(Add(a, b), c)
	right := Add(a, Add(b, c))
	if Cmp(left, right) != 0 {
		t.Errorf("addition not associative: %v vs %v", left.String(), right.String())
	}
}

func TestMultiplicationAssociative(t *testing.T) {
	a := mustParse(t, "12345")
	b := mustParse(t, "-6789")
	c := mustParse(t, "101")
	left := Mul(Mul(a, b), c)
	right := Mul(a, Mul(b, c))
	if Cmp(left, right) != 0 {
		t.Errorf("multiplication not associative: %v vs %v", left.String(), right.String())
	}
}

func TestDistributivity(t *testing.T) {
	a := mustParse(t, "17")
	b := mustParse(t, "23")
	c := mustParse(t, "-9")
	left := Mul(a, Add(b, c))
	right := Add(Mul(a, b), Mul(a, c))
	if Cmp(left, right) != 0 {
		t.Errorf("a*(b+c) != a*b+a*c: %v vs %v", left.String(), right.String())
	}
}

func TestMultiplicationAboveKaratsubaThreshold(t *testing.T) {
	digitsA := make([]byte, 300)
	digitsB := make([]byte, 300)
	for i := range digitsA {
		digitsA[i] = byte('1' + i%9)
		digitsB[i] = byte('2' + i%8)
	}
	a := mustParse(t, string(digitsA))
	b := mustParse(t, string(digitsB))
	if Cmp(Mul(a, b), Mul(b, a)) != 0 {
		t.Errorf("large multiplication is not commutative")
	}
	q, r, err := DivQR(Mul(a, b), b)
	if err != nil {
		t.Fatalf("DivQR failed: %v", err)
	}
	if Cmp(q, a) != 0 || !r.IsZero() {
		t.Errorf("(a*b)/b = %v rem %v, want %v rem 0", q.String(), r.String(), a.String())
	}
}

func TestDivQRIdentity(t *testing.T) {
	cases := []struct{ a, b string }{
		{"17", "5"}, {"-17", "5"}, {"17", "-5"}, {"-17", "-5"},
		{"100", "10"}, {"0", "7"}, {"999999999999999999", "7"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a)
		b := mustParse(t, c.b)
		q, r, err := DivQR(a, b)
		if err != nil {
			t.Fatalf("DivQR(%s,%s) failed: %v", c.a, c.b, err)
		}
		recon := Add(Mul(q, b), r)
		if Cmp(recon, a) != 0 {
			t.Errorf("DivQR(%s,%s): q*b+r = %v, want %v", c.a, c.b, recon.String(), c.a)
		}
		absR := r.Abs()
		absB := b.Abs()
		if Cmp(absR, absB) >= 0 {
			t.Errorf("DivQR(%s,%s): |r|=%v not < |b|=%v", c.a, c.b, absR.String(), absB.String())
		}
		if !r.IsZero() && r.Sign() != a.Sign() {
			t.Errorf("DivQR(%s,%s): remainder sign %d, want dividend sign %d", c.a, c.b, r.Sign(), a.Sign())
		}
	}
}

func TestDivQRRejectsZeroDivisor(t *testing.T) {
	a := mustParse(t, "5")
	zero := mustParse(t, "0")
	if _, _, err := DivQR(a, zero); err == nil {
		t.Errorf("DivQR by zero succeeded, want error")
	}
}

func TestDivRoundFaithfulAcrossModes(t *testing.T) {
	modes := []rounding.Mode{
		rounding.Up, rounding.Down, rounding.Ceiling, rounding.Floor,
		rounding.HalfUp, rounding.HalfDown, rounding.HalfCeiling,
		rounding.HalfFloor, rounding.HalfEven,
	}
	want := map[rounding.Mode]string{
		rounding.Up: "334", rounding.Down: "333", rounding.Ceiling: "334",
		rounding.Floor: "333", rounding.HalfUp: "333", rounding.HalfDown: "333",
		rounding.HalfCeiling: "333", rounding.HalfFloor: "333", rounding.HalfEven: "333",
	}
	a := mustParse(t, "1000")
	b := mustParse(t, "3")
	for _, m := range modes {
		got, err := DivRound(a, b, m)
		if err != nil {
			t.Fatalf("DivRound(1000,3,%v) failed: %v", m, err)
		}
		if got.String() != want[m] {
			t.Errorf("DivRound(1000,3,%v) = %v, want %v", m, got.String(), want[m])
		}
	}
}

func TestDivRoundUnnecessaryRejectsInexact(t *testing.T) {
	a := mustParse(t, "10")
	b := mustParse(t, "3")
	if _, err := DivRound(a, b, rounding.Unnecessary); err == nil {
		t.Errorf("DivRound(10,3,Unnecessary) succeeded, want error")
	}
}

func TestDivRoundHalfEvenTies(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"25", "10", "2"}, // 2.5 -> 2 (even)
		{"35", "10", "4"}, // 3.5 -> 4 (even)
		{"15", "10", "2"}, // 1.5 -> 2 (even)
	}
	for _, c := range cases {
		a := mustParse(t, c.a)
		b := mustParse(t, c.b)
		got, err := DivRound(a, b, rounding.HalfEven)
		if err != nil {
			t.Fatalf("DivRound(%s,%s,HalfEven) failed: %v", c.a, c.b, err)
		}
		if got.String() != c.want {
			t.Errorf("DivRound(%s,%s,HalfEven) = %v, want %v", c.a, c.b, got.String(), c.want)
		}
	}
}

func TestModIsEuclideanNonNegative(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"17", "5", "2"}, {"-17", "5", "3"}, {"17", "5", "2"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a)
		b := mustParse(t, c.b)
		got, err := Mod(a, b)
		if err != nil {
			t.Fatalf("Mod(%s,%s) failed: %v", c.a, c.b, err)
		}
		if got.String() != c.want {
			t.Errorf("Mod(%s,%s) = %v, want %v", c.a, c.b, got.String(), c.want)
		}
	}
}

func TestPowBaseCases(t *testing.T) {
	a := mustParse(t, "5")
	zero := mustParse(t, "0")
	one, err := Pow(a, 0)
	if err != nil || one.String() != "1" {
		t.Errorf("5^0 = %v, err %v, want 1", one.String(), err)
	}
	zeroZero, err := Pow(zero, 0)
	if err != nil || zeroZero.String() != "1" {
		t.Errorf("0^0 = %v, err %v, want 1", zeroZero.String(), err)
	}
	p, err := Pow(a, 4)
	if err != nil || p.String() != "625" {
		t.Errorf("5^4 = %v, err %v, want 625", p.String(), err)
	}
}

func TestSqrtFloorInvariant(t *testing.T) {
	cases := []string{"0", "1", "2", "3", "4", "99980001", "100000000", "123456789012345"}
	for _, c := range cases {
		n := mustParse(t, c)
		s, err := Sqrt(n)
		if err != nil {
			t.Fatalf("Sqrt(%s) failed: %v", c, err)
		}
		sq := Mul(s, s)
		next := Add(s, mustParse(t, "1"))
		nextSq := Mul(next, next)
		if Cmp(sq, n) > 0 {
			t.Errorf("Sqrt(%s): s^2 = %v > n", c, sq.String())
		}
		if Cmp(nextSq, n) <= 0 {
			t.Errorf("Sqrt(%s): (s+1)^2 = %v <= n", c, nextSq.String())
		}
	}
}

func TestSqrtRejectsNegative(t *testing.T) {
	n := mustParse(t, "-4")
	if _, err := Sqrt(n); err == nil {
		t.Errorf("Sqrt(-4) succeeded, want error")
	}
}

func TestGCDLCMIdentity(t *testing.T) {
	cases := []struct{ a, b string }{
		{"48", "18"}, {"17", "5"}, {"0", "5"}, {"0", "0"}, {"-12", "8"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a)
		b := mustParse(t, c.b)
		g := GCD(a, b)
		l := LCM(a, b)
		if g.IsNegative() {
			t.Errorf("GCD(%s,%s) is negative: %v", c.a, c.b, g.String())
		}
		if c.a == "0" && c.b == "0" {
			if !g.IsZero() {
				t.Errorf("GCD(0,0) = %v, want 0", g.String())
			}
			continue
		}
		product := Mul(g, l)
		absAB := Mul(a, b).Abs()
		if Cmp(product, absAB) != 0 {
			t.Errorf("GCD(%s,%s)*LCM(%s,%s) = %v, want |a*b| = %v", c.a, c.b, c.a, c.b, product.String(), absAB.String())
		}
	}
}

func TestModPowKnownValues(t *testing.T) {
	base := mustParse(t, "4")
	exp := mustParse(t, "13")
	mod := mustParse(t, "497")
	got, err := ModPow(base, exp, mod)
	if err != nil {
		t.Fatalf("ModPow failed: %v", err)
	}
	if got.String() != "445" {
		t.Errorf("ModPow(4,13,497) = %v, want 445", got.String())
	}
	one := mustParse(t, "1")
	zeroMod, err := ModPow(base, exp, one)
	if err != nil || zeroMod.String() != "0" {
		t.Errorf("ModPow(_,_,1) = %v, err %v, want 0", zeroMod.String(), err)
	}
}

func TestModInverseKnownValueAndAbsence(t *testing.T) {
	x := mustParse(t, "3")
	m := mustParse(t, "11")
	r, ok, err := ModInverse(x, m)
	if err != nil {
		t.Fatalf("ModInverse failed: %v", err)
	}
	if !ok || r.String() != "4" {
		t.Errorf("ModInverse(3,11) = %v (ok=%v), want 4", r.String(), ok)
	}
	x2 := mustParse(t, "4")
	m2 := mustParse(t, "8")
	_, ok2, err := ModInverse(x2, m2)
	if err != nil {
		t.Fatalf("ModInverse failed: %v", err)
	}
	if ok2 {
		t.Errorf("ModInverse(4,8) reported an inverse, want none (gcd=4)")
	}
}

func TestBitwiseTwosComplementSemantics(t *testing.T) {
	a := mustParse(t, "12")
	b := mustParse(t, "10")
	if got := And(a, b); got.String() != "8" {
		t.Errorf("And(12,10) = %v, want 8", got.String())
	}
	if got := Or(a, b); got.String() != "14" {
		t.Errorf("Or(12,10) = %v, want 14", got.String())
	}
	if got := Xor(a, b); got.String() != "6" {
		t.Errorf("Xor(12,10) = %v, want 6", got.String())
	}
}

func TestNotIdentity(t *testing.T) {
	cases := []string{"0", "5", "-5", "1000000"}
	for _, c := range cases {
		x := mustParse(t, c)
		got := Not(x)
		want := Add(x, mustParse(t, "1")).Neg()
		if Cmp(got, want) != 0 {
			t.Errorf("Not(%s) = %v, want %v", c, got.String(), want.String())
		}
	}
}

func TestBitwiseSignRules(t *testing.T) {
	pos := mustParse(t, "5")
	neg := mustParse(t, "-3")
	if And(pos, pos).IsNegative() {
		t.Errorf("And(pos,pos) should not be negative")
	}
	if !And(neg, neg).IsNegative() {
		t.Errorf("And(neg,neg) should be negative")
	}
	if !Or(pos, neg).IsNegative() {
		t.Errorf("Or(pos,neg) should be negative (either negative)")
	}
	if !Xor(pos, neg).IsNegative() {
		t.Errorf("Xor(pos,neg) should be negative (exactly one negative)")
	}
	if Xor(neg, neg).IsNegative() {
		t.Errorf("Xor(neg,neg) should not be negative (both negative cancels)")
	}
}

func TestBaseRoundTrip(t *testing.T) {
	values := []string{"0", "255", "-255", "123456789", "1"}
	for radix := 2; radix <= 36; radix++ {
		for _, v := range values {
			x := mustParse(t, v)
			s, err := ToBase(x, radix)
			if err != nil {
				t.Fatalf("ToBase(%s,%d) failed: %v", v, radix, err)
			}
			back, err := FromBase(s, radix)
			if err != nil {
				t.Fatalf("FromBase(%q,%d) failed: %v", s, radix, err)
			}
			if Cmp(back, x) != 0 {
				t.Errorf("round trip base %d for %s: got %v", radix, v, back.String())
			}
		}
	}
}

func TestToBaseLowercase(t *testing.T) {
	x := mustParse(t, "255")
	s, err := ToBase(x, 16)
	if err != nil {
		t.Fatalf("ToBase failed: %v", err)
	}
	if s != "ff" {
		t.Errorf("ToBase(255,16) = %q, want \"ff\"", s)
	}
}

func TestByteRoundTripSignedAndUnsigned(t *testing.T) {
	values := []string{"0", "127", "128", "255", "256", "-1", "-128", "-129", "123456789012345"}
	for _, v := range values {
		x := mustParse(t, v)
		b, err := ToBytes(x, true)
		if err != nil {
			t.Fatalf("ToBytes(%s,signed) failed: %v", v, err)
		}
		back, err := FromBytes(b, true)
		if err != nil {
			t.Fatalf("FromBytes signed failed: %v", err)
		}
		if Cmp(back, x) != 0 {
			t.Errorf("signed byte round trip for %s: got %v", v, back.String())
		}
		if x.IsNegative() {
			if len(b) == 0 || b[0]&0x80 == 0 {
				t.Errorf("ToBytes(%s,signed): MSB not set", v)
			}
			continue
		}
		ub, err := ToBytes(x, false)
		if err != nil {
			t.Fatalf("ToBytes(%s,unsigned) failed: %v", v, err)
		}
		uback, err := FromBytes(ub, false)
		if err != nil {
			t.Fatalf("FromBytes unsigned failed: %v", err)
		}
		if Cmp(uback, x) != 0 {
			t.Errorf("unsigned byte round trip for %s: got %v", v, uback.String())
		}
	}
}

func TestToBytesUnsignedRejectsNegative(t *testing.T) {
	x := mustParse(t, "-1")
	if _, err := ToBytes(x, false); err == nil {
		t.Errorf("ToBytes(-1,unsigned) succeeded, want error")
	}
}

func TestBackendDefaultsToNativeAndIsSwappable(t *testing.T) {
	if CurrentBackend().Name() != "native" {
		t.Errorf("default backend = %q, want native", CurrentBackend().Name())
	}
	SetBackend(nil)
	if CurrentBackend() != Native {
		t.Errorf("SetBackend(nil) did not revert to Native")
	}
}

// countingBackend wraps Native and counts how many times each method is
// invoked, so tests can confirm the package's exported entry points
// actually dispatch through whatever SetBackend installed rather than
// calling the native implementation directly.
type countingBackend struct {
	calls map[string]int
}

func (b *countingBackend) Name() string { b.calls["Name"]++; return "counting" }
func (b *countingBackend) Add(a, c Int) Int {
	b.calls["Add"]++
	return Native.Add(a, c)
}
func (b *countingBackend) Sub(a, c Int) Int { b.calls["Sub"]++; return Native.Sub(a, c) }
func (b *countingBackend) Mul(a, c Int) Int { b.calls["Mul"]++; return Native.Mul(a, c) }
func (b *countingBackend) DivQR(a, c Int) (Int, Int, error) {
	b.calls["DivQR"]++
	return Native.DivQR(a, c)
}
func (b *countingBackend) DivRound(a, c Int, mode rounding.Mode) (Int, error) {
	b.calls["DivRound"]++
	return Native.DivRound(a, c, mode)
}
func (b *countingBackend) Mod(a, c Int) (Int, error) { b.calls["Mod"]++; return Native.Mod(a, c) }
func (b *countingBackend) Pow(a Int, e int64) (Int, error) {
	b.calls["Pow"]++
	return Native.Pow(a, e)
}
func (b *countingBackend) Sqrt(n Int) (Int, error) { b.calls["Sqrt"]++; return Native.Sqrt(n) }
func (b *countingBackend) GCD(a, c Int) Int         { b.calls["GCD"]++; return Native.GCD(a, c) }
func (b *countingBackend) LCM(a, c Int) Int         { b.calls["LCM"]++; return Native.LCM(a, c) }
func (b *countingBackend) ModPow(base, exp, m Int) (Int, error) {
	b.calls["ModPow"]++
	return Native.ModPow(base, exp, m)
}
func (b *countingBackend) ModInverse(x, m Int) (Int, bool, error) {
	b.calls["ModInverse"]++
	return Native.ModInverse(x, m)
}
func (b *countingBackend) And(a, c Int) Int { b.calls["And"]++; return Native.And(a, c) }
func (b *countingBackend) Or(a, c Int) Int  { b.calls["Or"]++; return Native.Or(a, c) }
func (b *countingBackend) Xor(a, c Int) Int { b.calls["Xor"]++; return Native.Xor(a, c) }
func (b *countingBackend) Not(x Int) Int    { b.calls["Not"]++; return Native.Not(x) }

func TestExportedEntryPointsDispatchThroughActiveBackend(t *testing.T) {
	cb := &countingBackend{calls: make(map[string]int)}
	SetBackend(cb)
	defer SetBackend(nil)

	a := mustParse(t, "17")
	b := mustParse(t, "5")
	Add(a, b)
	Sub(a, b)
	Mul(a, b)
	DivQR(a, b)
	DivRound(a, b, rounding.HalfUp)
	Mod(a, b)
	Pow(a, 2)
	Sqrt(a)
	GCD(a, b)
	LCM(a, b)
	ModPow(a, b, mustParse(t, "1000"))
	ModInverse(a, mustParse(t, "1000"))
	And(a, b)
	Or(a, b)
	Xor(a, b)
	Not(a)

	for _, name := range []string{
		"Add", "Sub", "Mul", "DivQR", "DivRound", "Mod", "Pow", "Sqrt",
		"GCD", "LCM", "ModPow", "ModInverse", "And", "Or", "Xor", "Not",
	} {
		if cb.calls[name] == 0 {
			t.Errorf("%s did not dispatch through the active backend", name)
		}
	}
}
