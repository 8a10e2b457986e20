package calc

// bitnotInto implements the bitwise NOT operation, one nibble at a time.
func (e *Engine) bitnotInto(val, buf Buffer) {
	for i := 0; i < e.n; i++ {
		buf[i] = val[i] ^ 0xF
	}
}

// incInPlace implements a fast +1, in place. If the carry propagates off
// the top nibble it is silently dropped: this is intended, and is what
// makes negating the sign-minimum value well-defined (see Neg).
func (e *Engine) incInPlace(buf Buffer) {
	for i := 0; i < e.n; i++ {
		if buf[i] == 15 {
			buf[i] = 0
			continue
		}
		buf[i]++
		return
	}
}

// negateInto implements unary minus: bitwise NOT followed by increment.
func (e *Engine) negateInto(val, buf Buffer) {
	e.bitnotInto(val, buf)
	e.incInPlace(buf)
}

// addInto implements nibble-serial addition with carry propagation,
// returning true iff a carry came out of the final nibble.
func (e *Engine) addInto(a, b, buf Buffer) bool {
	carry := uint16(0)
	for i := 0; i < e.n; i++ {
		sum := uint16(a[i]) + uint16(b[i]) + carry
		buf[i] = Word(sum & 0xF)
		carry = sum >> 4
	}
	return carry != 0
}

// subInto implements a - b as a + (-b). A borrow at the top nibble
// corresponds to a missing carry in the underlying add.
func (e *Engine) subInto(a, b, buf Buffer) bool {
	neg := e.NewBuffer()
	e.negateInto(b, neg)
	return e.addInto(a, neg, buf)
}

// Add computes a+b, writing the result to out (or the scratch buffer if
// out is nil) and sets the carry flag to the unsigned overflow out of the
// top nibble.
func (e *Engine) Add(a, b, out Buffer) (Buffer, bool) {
	dst := e.resolve(out)
	carry := e.addInto(a, b, dst)
	e.carry = carry
	return dst, carry
}

// Sub computes a-b bit-exactly as Add(a, Neg(b)). The carry flag reports
// whether the underlying add carried; for a non-zero b that means no
// borrow occurred (for b == 0 it is false).
func (e *Engine) Sub(a, b, out Buffer) (Buffer, bool) {
	dst := e.resolve(out)
	carry := e.subInto(a, b, dst)
	e.carry = carry
	return dst, carry
}

// Neg computes -a. negate(negate(x)) == x for every x, including the
// sign-minimum value, because the increment's dropped top carry exactly
// undoes itself on the second application.
func (e *Engine) Neg(a, out Buffer) Buffer {
	dst := e.resolve(out)
	e.negateInto(a, dst)
	e.carry = false
	return dst
}

// Mul computes a*b. Multiplication always runs on absolute values: each
// negative operand is negated first and the sign (XOR of the two operand
// signs) is reapplied to the low N nibbles of the product at the end. The
// schoolbook kernel accumulates into a temporary 2N-nibble buffer so the
// full double-width product is available before truncating to N nibbles
// (see the "Buffer width" decision in DESIGN.md for why the public Buffer
// width is N, not 2N).
func (e *Engine) Mul(a, b, out Buffer) Buffer {
	dst := e.resolve(out)
	e.carry = false

	sign := false
	pa := a
	if e.Sign(a) < 0 {
		na := e.NewBuffer()
		e.negateInto(a, na)
		pa = na
		sign = !sign
	}
	pb := b
	if e.Sign(b) < 0 {
		nb := e.NewBuffer()
		e.negateInto(b, nb)
		pb = nb
		sign = !sign
	}

	product := make(Buffer, 2*e.n)
	for co := 0; co < e.n; co++ {
		if pb[co] == 0 {
			continue
		}
		carry := uint32(0)
		for ci := 0; ci < e.n; ci++ {
			// The running carry is bounded by base-1: both digits, the
			// prior carry and the accumulator value already in product
			// are each at most base-1, and (b-1)(b-1)+(b-1)+(b-1) =
			// b*b-1, whose quotient by b (the next carry) is at most b-1.
			mul := uint32(pa[ci]) * uint32(pb[co])
			sum := uint32(product[ci+co]) + mul + carry
			product[ci+co] = Word(sum & 0xF)
			carry = sum >> 4
		}
		product[e.n+co] = Word(carry)
	}

	low := Buffer(product[:e.n])
	if sign {
		e.negateInto(low, dst)
	} else {
		copy(dst, low)
	}
	return dst
}

// push shifts buf one nibble to the left (toward more significant) and
// inserts digit at position 0, used by the long-division kernel to pull
// in dividend digits MSN-first.
func (e *Engine) push(digit Word, buf Buffer) {
	for i := e.n - 2; i >= 0; i-- {
		buf[i+1] = buf[i]
	}
	buf[0] = digit
}

// DivMod implements truncating integer division with remainder. It fails
// with a division-by-zero *Error (Op OpDivMod) if divisor is zero. Both operands are taken in
// absolute value for the classical long-division kernel; the quotient
// sign is the XOR of the operand signs, the remainder sign follows the
// dividend, per C truncating-division semantics. On success the carry
// flag (also returned) is set iff the remainder is non-zero.
func (e *Engine) DivMod(dividend, divisor, quotOut, remOut Buffer) (quot, rem Buffer, carry bool, err error) {
	quot = e.resolve(quotOut)
	if rem = remOut; rem == nil {
		rem = e.NewBuffer()
	}
	e.Zero(quot)
	e.Zero(rem)
	e.carry = false

	if e.IsZero(divisor, e.precision) {
		return quot, rem, false, errDivisionByZero(OpDivMod)
	}
	if e.IsZero(dividend, e.precision) {
		return quot, rem, false, nil
	}

	divSign, remSign := false, false
	absDividend := dividend
	if e.Sign(dividend) < 0 {
		nd := e.NewBuffer()
		e.negateInto(dividend, nd)
		absDividend = nd
		divSign = !divSign
		remSign = !remSign
	}

	negDivisor := e.NewBuffer()
	e.negateInto(divisor, negDivisor)
	absDivisor := divisor
	minusDivisor := negDivisor
	if e.Sign(divisor) < 0 {
		divSign = !divSign
		minusDivisor = divisor
		absDivisor = negDivisor
	}

	switch e.Compare(absDividend, absDivisor) {
	case 0:
		quot[0] = 1
	case -1:
		copy(rem, absDividend)
	default:
		for i := e.n - 1; i >= 0; i-- {
			e.push(absDividend[i], rem)
			e.push(0, quot)

			if e.Compare(rem, absDivisor) >= 0 {
				e.addInto(rem, minusDivisor, rem)
				for e.Sign(rem) > 0 {
					quot[0] = Word((uint16(quot[0]) + 1) & 0xF)
					e.addInto(rem, minusDivisor, rem)
				}
				e.addInto(rem, absDivisor, rem)
			}
		}
	}

	e.carry = !e.IsZero(rem, e.precision)
	if divSign {
		e.negateInto(quot, quot)
	}
	if remSign {
		e.negateInto(rem, rem)
	}
	return quot, rem, e.carry, nil
}

// Div computes dividend/divisor (truncating toward zero), returning the
// carry flag (true iff the remainder was non-zero).
func (e *Engine) Div(dividend, divisor, out Buffer) (Buffer, bool, error) {
	quot, _, carry, err := e.DivMod(dividend, divisor, out, nil)
	if err != nil {
		return quot, false, errDivisionByZero(OpDiv)
	}
	return quot, carry, nil
}

// Mod computes the truncating remainder of dividend/divisor, with the
// dividend's sign.
func (e *Engine) Mod(dividend, divisor, out Buffer) (Buffer, error) {
	_, rem, _, err := e.DivMod(dividend, divisor, nil, out)
	if err != nil {
		return rem, errDivisionByZero(OpMod)
	}
	return rem, nil
}
