package calc

// And, AndNot, Or, Xor and Not are nibble-parallel with the obvious
// semantics. All of them clear the carry flag.

// And computes the bitwise AND of a and b.
func (e *Engine) And(a, b, out Buffer) Buffer {
	dst := e.resolve(out)
	for i := 0; i < e.n; i++ {
		dst[i] = a[i] & b[i]
	}
	e.carry = false
	return dst
}

// AndNot computes a & ^b.
func (e *Engine) AndNot(a, b, out Buffer) Buffer {
	dst := e.resolve(out)
	for i := 0; i < e.n; i++ {
		dst[i] = a[i] & (0xF ^ b[i])
	}
	e.carry = false
	return dst
}

// Or computes the bitwise OR of a and b.
func (e *Engine) Or(a, b, out Buffer) Buffer {
	dst := e.resolve(out)
	for i := 0; i < e.n; i++ {
		dst[i] = a[i] | b[i]
	}
	e.carry = false
	return dst
}

// Xor computes the bitwise XOR of a and b.
func (e *Engine) Xor(a, b, out Buffer) Buffer {
	dst := e.resolve(out)
	for i := 0; i < e.n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	e.carry = false
	return dst
}

// Not computes the bitwise complement of a.
func (e *Engine) Not(a, out Buffer) Buffer {
	dst := e.resolve(out)
	e.bitnotInto(a, dst)
	e.carry = false
	return dst
}
