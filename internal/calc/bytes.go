package calc

import "github.com/brick/bignum/errs"

func digitsToBytes(digits []uint32) []byte {
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = byte(d)
	}
	return out
}

func bytesToDigits(b []byte) []uint32 {
	out := make([]uint32, len(b))
	for i, v := range b {
		out[i] = uint32(v)
	}
	return out
}

func padBytes(digits []uint32, length int) []byte {
	out := make([]byte, length)
	pad := length - len(digits)
	for i, d := range digits {
		out[pad+i] = byte(d)
	}
	return out
}

// ToBytes renders x as big-endian bytes. In unsigned mode x must be
// non-negative and the bytes are its magnitude, minimal length (a
// zero-length magnitude renders as a single zero byte). In signed mode
// the bytes are x's two's-complement encoding, using the minimum byte
// count whose most significant bit still carries the correct sign.
func ToBytes(x Int, signed bool) ([]byte, error) {
	if !signed && x.neg {
		return nil, errs.Wrap(errs.NegativeNumber, "calc: unsigned byte encoding of a negative integer")
	}
	if x.IsZero() {
		return []byte{0}, nil
	}
	magDigits := toDigits(x.abs, 256)
	if !signed {
		return digitsToBytes(magDigits), nil
	}
	if !x.neg {
		if magDigits[0] >= 0x80 {
			return padBytes(magDigits, len(magDigits)+1), nil
		}
		return digitsToBytes(magDigits), nil
	}

	absX := x.Abs()
	for L := len(magDigits); ; L++ {
		pow256L, err := Pow(Int{abs: natFromUint64(256)}, int64(L))
		if err != nil {
			return nil, err
		}
		half, err := DivQ(pow256L, Two)
		if err != nil {
			return nil, err
		}
		if Cmp(absX, half) <= 0 {
			twoComp := Sub(pow256L, absX)
			digits := toDigits(twoComp.abs, 256)
			return padBytes(digits, L), nil
		}
	}
}

// FromBytes decodes big-endian bytes into an Int, inverse to ToBytes.
func FromBytes(b []byte, signed bool) (Int, error) {
	if len(b) == 0 {
		return Int{}, errs.Wrap(errs.NumberFormat, "calc: empty byte slice")
	}
	if !signed || b[0] < 0x80 {
		return normalize(false, fromDigits(bytesToDigits(b), 256)), nil
	}
	n := normalize(false, fromDigits(bytesToDigits(b), 256))
	pow256L, err := Pow(Int{abs: natFromUint64(256)}, int64(len(b)))
	if err != nil {
		return Int{}, err
	}
	return Sub(n, pow256L), nil
}
