// Package calc implements a fixed-width, nibble-addressed two's-complement
// bignum calculator, the primitive arithmetic/bitwise/shift/compare engine
// an optimizing compiler's constant-folding layer builds on.
package calc

import "fmt"

// Word is a single four-bit digit, 0..15. Stored one per byte, trading
// memory for simplicity of table lookups in the shift and print paths.
type Word = uint8

// Buffer is a fixed-length, little-endian sequence of Words: index 0 is
// the least significant nibble. Every Buffer produced by an Engine has
// exactly Engine.BufferLength() Words; indexing past that is undefined,
// mirroring the original C engine's unchecked nibble arrays.
type Buffer []Word

// Engine is a fixed-precision two's-complement calculator. All arithmetic,
// bitwise, shift, compare, and conversion operations are methods on it,
// because every operation is parameterized by the engine's precision.
//
// An Engine is NOT safe for concurrent use: like the C original it owns a
// single shared scratch buffer and a single last-operation carry flag, and
// any operation can write to both. Callers needing concurrent calculators
// should construct one Engine per goroutine with New; the HTTP API in
// package api follows exactly this pattern, handing each session its own
// Engine.
type Engine struct {
	precision int    // bit_pattern_size: total bit width, rounded up to a multiple of 4
	n         int    // buffer length in nibbles: precision/4
	scratch   Buffer // the shared result buffer
	outBuf    []byte // the shared string output buffer, precision+1 bytes
	carry     bool   // carry/borrow/remainder/bits-lost flag from the last reporting op
}

// New creates a calculator for the given bit width. precision is rounded
// up to the next multiple of 4. Unlike the C original there is no global
// re-init-is-a-no-op behavior to preserve: each New call returns an
// independent Engine, which is the idiomatic Go replacement for a
// process-wide singleton (see Design Notes in SPEC_FULL.md §5).
func New(precision int) *Engine {
	if precision <= 0 {
		panic(fmt.Sprintf("calc: precision must be positive, got %d", precision))
	}
	precision = (precision + 3) &^ 3
	n := precision / 4
	return &Engine{
		precision: precision,
		n:         n,
		scratch:   make(Buffer, n),
		outBuf:    make([]byte, precision+1),
	}
}

// Precision returns the engine's bit width (bit_pattern_size).
func (e *Engine) Precision() int { return e.precision }

// BufferLength returns the number of nibbles in every Buffer this engine
// produces or accepts (N = precision/4).
func (e *Engine) BufferLength() int { return e.n }

// NewBuffer allocates a zeroed Buffer of the engine's fixed width.
func (e *Engine) NewBuffer() Buffer { return make(Buffer, e.n) }

// Result returns the shared scratch buffer that operations write to when
// given a nil output Buffer. It is overwritten by the next such call.
func (e *Engine) Result() Buffer { return e.scratch }

// CarryFlag reports the carry/borrow/remainder/bits-lost signal set by the
// most recent reporting operation (Add, Sub, Div, Mod, DivMod, Shr,
// ShrI, Shrs, ShrsI). Neg, Mul and the bitwise operations clear it; Shl,
// ShlI and the conversion and inspection methods leave it unchanged,
// except FromString, whose internal Mul and Add set it. This is a
// compatibility accessor for callers that prefer to read the flag
// out-of-band instead of the bool that the reporting methods other than
// Mod also return directly.
func (e *Engine) CarryFlag() bool { return e.carry }

// Zero clears buf to all-zero nibbles. buf need not belong to this engine,
// but is typically one of its own width.
func (e *Engine) Zero(buf Buffer) {
	for i := range buf {
		buf[i] = 0
	}
}

// resolve implements the "null output pointer writes to scratch" output
// convention shared by every binary/unary operation: a nil out selects the
// scratch buffer, any other Buffer (including one that already aliases
// scratch) is used directly.
func (e *Engine) resolve(out Buffer) Buffer {
	if out == nil {
		return e.scratch
	}
	return out
}

// clone returns a fresh, independent copy of v.
func clone(v Buffer) Buffer {
	c := make(Buffer, len(v))
	copy(c, v)
	return c
}
