package calc

// signExtend pads a two's-complement byte string to length bytes,
// extending with 0x00 for a non-negative value or 0xFF for a negative
// one (spec §4.1.1).
func signExtend(b []byte, length int) []byte {
	if len(b) >= length {
		return b
	}
	fill := byte(0x00)
	if b[0] >= 0x80 {
		fill = 0xFF
	}
	out := make([]byte, length)
	pad := length - len(b)
	for i := 0; i < pad; i++ {
		out[i] = fill
	}
	copy(out[pad:], b)
	return out
}

func bitwiseOp(a, b Int, op func(x, y byte) byte) Int {
	ab, _ := ToBytes(a, true)
	bb, _ := ToBytes(b, true)
	length := len(ab)
	if len(bb) > length {
		length = len(bb)
	}
	length++
	ea := signExtend(ab, length)
	eb := signExtend(bb, length)
	out := make([]byte, length)
	for i := range out {
		out[i] = op(ea[i], eb[i])
	}
	result, _ := FromBytes(out, true)
	return result
}

// And returns the bitwise AND of a and b under infinite-precision
// two's-complement semantics: negative iff both operands are negative.
// Computed by the active [Backend].
func And(a, b Int) Int {
	return CurrentBackend().And(a, b)
}

// Or returns the bitwise OR: negative iff either operand is negative.
// Computed by the active [Backend].
func Or(a, b Int) Int {
	return CurrentBackend().Or(a, b)
}

// Xor returns the bitwise XOR: negative iff exactly one operand is
// negative. Computed by the active [Backend].
func Xor(a, b Int) Int {
	return CurrentBackend().Xor(a, b)
}

// Not returns the bitwise complement, defined as -(x+1). Computed by the
// active [Backend].
func Not(x Int) Int {
	return CurrentBackend().Not(x)
}

// nativeAnd, nativeOr, nativeXor and nativeNot are the native backend's
// bitwise operations.
func nativeAnd(a, b Int) Int {
	return bitwiseOp(a, b, func(x, y byte) byte { return x & y })
}

func nativeOr(a, b Int) Int {
	return bitwiseOp(a, b, func(x, y byte) byte { return x | y })
}

func nativeXor(a, b Int) Int {
	return bitwiseOp(a, b, func(x, y byte) byte { return x ^ y })
}

func nativeNot(x Int) Int {
	return Add(x, One).Neg()
}
