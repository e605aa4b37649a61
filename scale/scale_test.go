package scale

import (
	"testing"

	"github.com/brick/bignum/internal/calc"
	"github.com/brick/bignum/rounding"
)

func mustInt(t *testing.T, s string) calc.Int {
	t.Helper()
	v, err := calc.ParseDigits(s)
	if err != nil {
		t.Fatalf("ParseDigits(%q) failed: %v", s, err)
	}
	return v
}

func TestTryScaleExactlyUp(t *testing.T) {
	v := mustInt(t, "123")
	got, ok := TryScaleExactly(v, 0, 2)
	if !ok {
		t.Fatalf("TryScaleExactly up failed")
	}
	if got.String() != "12300" {
		t.Errorf("TryScaleExactly(123, 0, 2) = %v, want 12300", got)
	}
}

func TestTryScaleExactlyDown(t *testing.T) {
	v := mustInt(t, "12300")
	got, ok := TryScaleExactly(v, 2, 0)
	if !ok {
		t.Fatalf("TryScaleExactly down failed")
	}
	if got.String() != "123" {
		t.Errorf("TryScaleExactly(12300, 2, 0) = %v, want 123", got)
	}
}

func TestTryScaleExactlyRejectsLossyDown(t *testing.T) {
	v := mustInt(t, "12345")
	if _, ok := TryScaleExactly(v, 2, 0); ok {
		t.Errorf("TryScaleExactly(12345, 2, 0) succeeded, want failure (non-zero digits dropped)")
	}
}

func TestScaleFallsBackToRounding(t *testing.T) {
	v := mustInt(t, "12345")
	got, err := Scale(v, 2, 0, rounding.HalfUp)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	if got.String() != "123" {
		t.Errorf("Scale(123.45, HalfUp) = %v, want 123", got)
	}
	if _, err := Scale(v, 2, 0, rounding.Unnecessary); err == nil {
		t.Errorf("Scale(Unnecessary) on a lossy change succeeded, want error")
	}
}

func TestReducedFractionScale(t *testing.T) {
	cases := []struct {
		den     string
		want    int
		wantOk  bool
	}{
		{"1", 0, true},
		{"2", 1, true},
		{"5", 1, true},
		{"4", 2, true},
		{"8", 3, true},
		{"20", 2, true},
		{"3", 0, false},
		{"7", 0, false},
		{"0", 0, false},
	}
	for _, c := range cases {
		k, ok := ReducedFractionScale(mustInt(t, c.den))
		if ok != c.wantOk {
			t.Errorf("ReducedFractionScale(%s) ok = %v, want %v", c.den, ok, c.wantOk)
			continue
		}
		if ok && k != c.want {
			t.Errorf("ReducedFractionScale(%s) = %d, want %d", c.den, k, c.want)
		}
	}
}

func TestPadUnscaledValue(t *testing.T) {
	cases := []struct {
		value string
		scale int
		want  string
	}{
		{"5", 2, "005"},
		{"-5", 2, "-005"},
		{"123", 1, "123"},
		{"0", 3, "0000"},
	}
	for _, c := range cases {
		got := PadUnscaledValue(mustInt(t, c.value), c.scale)
		if got != c.want {
			t.Errorf("PadUnscaledValue(%s, %d) = %q, want %q", c.value, c.scale, got, c.want)
		}
	}
}
