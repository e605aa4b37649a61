package bigint

import (
	"math"
	"strings"
	"testing"
)

func TestBigInteger_JSONRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "123456789012345678901234567890", "-42"}
	for _, s := range cases {
		x := MustOf(s)
		data, err := x.MarshalJSON()
		if err != nil {
			t.Errorf("%q.MarshalJSON() failed: %v", s, err)
			continue
		}
		var got BigInteger
		if err := got.UnmarshalJSON(data); err != nil {
			t.Errorf("UnmarshalJSON(%s) failed: %v", data, err)
			continue
		}
		if !got.Equals(x) {
			t.Errorf("UnmarshalJSON(%s) = %v, want %v", data, got, x)
		}
	}
}

func TestBigInteger_UnmarshalJSON_Null(t *testing.T) {
	var got BigInteger
	if err := got.UnmarshalJSON([]byte("null")); err != nil {
		t.Errorf("UnmarshalJSON(\"null\") failed: %v", err)
	}
}

func TestBigInteger_UnmarshalJSON_Error(t *testing.T) {
	var got BigInteger
	if err := got.UnmarshalJSON([]byte(`"1.1.1"`)); err == nil {
		t.Errorf("UnmarshalJSON(\"1.1.1\") did not fail")
	}
}

func TestBigInteger_TextRoundTrip(t *testing.T) {
	x := MustOf("-987654321098765432109876543210")
	data, err := x.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	var got BigInteger
	if err := got.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText(%s) failed: %v", data, err)
	}
	if !got.Equals(x) {
		t.Errorf("UnmarshalText(%s) = %v, want %v", data, got, x)
	}
}

func TestBigInteger_BinaryRoundTrip(t *testing.T) {
	x := MustOf("42")
	data, err := x.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() failed: %v", err)
	}
	var got BigInteger
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary(% x) failed: %v", data, err)
	}
	if !got.Equals(x) {
		t.Errorf("UnmarshalBinary(% x) = %v, want %v", data, got, x)
	}
}

func TestBigInteger_UnmarshalBinary_Error(t *testing.T) {
	var got BigInteger
	if err := got.UnmarshalBinary([]byte("1.1.1")); err == nil {
		t.Errorf("UnmarshalBinary(\"1.1.1\") did not fail")
	}
}

func TestBigInteger_ToFloat(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"0", 0},
		{"1", 1},
		{"-1", -1},
		{"1000000000000000000", 1000000000000000000},
	}
	for _, tt := range tests {
		got, err := MustOf(tt.s).ToFloat()
		if err != nil {
			t.Errorf("%q.ToFloat() failed: %v", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.ToFloat() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestBigInteger_ToFloat_Overflow(t *testing.T) {
	huge := MustOf("1" + strings.Repeat("0", 400))
	got, err := huge.ToFloat()
	if err != nil {
		t.Fatalf("ToFloat() on an overflowing magnitude failed: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("ToFloat() on an overflowing magnitude = %v, want +Inf", got)
	}
}
