package calc

import "math"

// FromInt64 writes the two's-complement encoding of value into out (or
// scratch). LONG_MIN is handled by negating value+1 and incrementing
// afterward, avoiding the int64 overflow that negating straight would hit.
func (e *Engine) FromInt64(value int64, out Buffer) Buffer {
	dst := e.resolve(out)

	sign := value < 0
	isMin := value == math.MinInt64
	if sign {
		if isMin {
			value = -(value + 1)
		} else {
			value = -value
		}
	}

	e.Zero(dst)
	u := uint64(value)
	for i := 0; i < e.n && u != 0; i++ {
		dst[i] = Word(u & 0xF)
		u >>= 4
	}

	if sign {
		if isMin {
			e.incInPlace(dst)
		}
		e.negateInto(dst, dst)
	}
	return dst
}

// FromUint64 writes the unsigned encoding of value into out (or scratch).
// Bits beyond the engine's precision are discarded.
func (e *Engine) FromUint64(value uint64, out Buffer) Buffer {
	dst := e.resolve(out)
	for i := 0; i < e.n; i++ {
		dst[i] = Word(value & 0xF)
		value >>= 4
	}
	return dst
}

// FromBytes decodes data into out (or scratch), two nibbles (low, then
// high) per byte. Nibbles beyond len(data)*2 are zero-filled. bigEndian
// selects whether data[0] is the most- or least-significant byte.
func (e *Engine) FromBytes(data []byte, bigEndian bool, out Buffer) Buffer {
	dst := e.resolve(out)
	p := 0
	if bigEndian {
		for i := len(data) - 1; i >= 0; i-- {
			v := data[i]
			dst[p] = Word(v & 0xF)
			p++
			dst[p] = Word(v >> 4)
			p++
		}
	} else {
		for _, v := range data {
			dst[p] = Word(v & 0xF)
			p++
			dst[p] = Word(v >> 4)
			p++
		}
	}
	for ; p < e.n; p++ {
		dst[p] = 0
	}
	return dst
}

// FromBits treats data as a bit stream and extracts [from, to), placing
// the window's low bit at nibble 0 bit 0 of out (or scratch). Bits above
// the window are zero-filled.
func (e *Engine) FromBits(data []byte, from, to int, out Buffer) Buffer {
	dst := e.resolve(out)

	lowByte := from / 8
	highByte := (to - 1) / 8
	lowBit := uint(from % 8)
	highBit := uint((to-1)%8 + 1)

	p := 0
	if lowByte == highByte {
		val := (uint32(data[lowByte]) << (32 - highBit)) >> (32 - highBit + lowBit)
		dst[0] = Word(val & 0xF)
		dst[1] = Word((val >> 4) & 0xF)
		p = 2
	} else {
		val := uint32(data[lowByte]) >> lowBit
		dst[0] = Word(val & 0xF)
		dst[1] = Word((val >> 4) & 0xF)
		dst[2] = 0
		bit := (8 - lowBit) % 4
		p = int((8 - lowBit) / 4)

		for mid := lowByte + 1; mid < highByte; mid++ {
			mval := uint32(data[mid]) << bit
			dst[p] |= Word(mval & 0xF)
			p++
			dst[p] = Word((mval >> 4) & 0xF)
			p++
			dst[p] = Word((mval >> 8) & 0xF)
		}

		hval := (uint32(data[highByte]) << (32 - highBit)) >> (32 - highBit - bit)
		dst[p] |= Word(hval & 0xF)
		p++
		dst[p] = Word((hval >> 4) & 0xF)
		p++
	}

	for ; p < e.n; p++ {
		dst[p] = 0
	}
	return dst
}

// FromString parses a base-2..16 digit string, Horner-style:
// acc = acc*base + digit. Digits are 0-9A-Fa-f; any other character, or a
// digit whose value is >= base, fails with ErrMalformedDigits and leaves
// out in an unspecified partial state (per spec.md §4.2/§9). On success
// the result is negated if sign < 0.
func (e *Engine) FromString(sign int, base int, s string, out Buffer) (Buffer, error) {
	dst := e.resolve(out)

	scBase := e.NewBuffer()
	e.FromUint64(uint64(base), scBase)

	val := e.NewBuffer()
	e.Zero(dst)

	for i := 0; i < len(s); i++ {
		c := s[i]
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'A' && c <= 'F':
			v = int(c-'A') + 10
		case c >= 'a' && c <= 'f':
			v = int(c-'a') + 10
		default:
			return dst, ErrMalformedDigits
		}
		if v >= base {
			return dst, ErrMalformedDigits
		}
		e.Zero(val)
		val[0] = Word(v)

		e.Mul(scBase, dst, dst)
		e.Add(val, dst, dst)
	}

	if sign < 0 {
		e.negateInto(dst, dst)
	}
	return dst, nil
}
