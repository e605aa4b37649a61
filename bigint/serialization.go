package bigint

import (
	"errors"
	"strconv"
)

// MarshalJSON implements [json.Marshaler]. It always emits a numeric
// JSON string, per spec.md §6 ("JSON emits the canonical string").
func (x BigInteger) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts either a
// quoted numeric string or a bare JSON number.
func (x *BigInteger) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	v, err := Of(string(data))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (x BigInteger) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (x *BigInteger) UnmarshalText(text []byte) error {
	v, err := Of(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler]. Per spec.md §6,
// binary serialization stores the canonical digit string with no
// dependency on the active calculator backend.
func (x BigInteger) MarshalBinary() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (x *BigInteger) UnmarshalBinary(data []byte) error {
	v, err := Of(string(data))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// ToFloat converts x to the nearest float64, per spec.md §1's note that
// a toFloat conversion is provided but explicitly lossy. An x too large
// in magnitude for float64 returns +/-Inf rather than an error, matching
// the lossy, never-exact nature of this conversion.
func (x BigInteger) ToFloat() (float64, error) {
	f, err := strconv.ParseFloat(x.String(), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return f, nil
		}
		return 0, err
	}
	return f, nil
}
