package bigrational

// MarshalJSON implements [json.Marshaler]. It always emits a quoted
// "numerator/denominator" JSON string, per spec.md §6 ("JSON emits the
// canonical string").
func (x BigRational) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts a quoted
// "numerator/denominator" or bare integer JSON string.
func (x *BigRational) UnmarshalJSON(data []byte) error {
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
func (x BigRational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (x *BigRational) UnmarshalText(text []byte) error {
	v, err := Of(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler]. Per spec.md §6,
// binary serialization stores the canonical numerator/denominator
// attributes (encoded as the same string String renders, not reduced)
// with no dependency on the active calculator backend.
func (x BigRational) MarshalBinary() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (x *BigRational) UnmarshalBinary(data []byte) error {
	v, err := Of(string(data))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
