package calc

import "testing"

func TestMinMaxFromBitsSigned(t *testing.T) {
	e := New(64)
	min8 := e.MinFromBits(8, true, nil)
	if got := e.ToInt64(min8); got != -128 {
		t.Errorf("MinFromBits(8, signed) = %d, want -128", got)
	}

	max8 := e.MaxFromBits(8, true, nil)
	if got := e.ToInt64(max8); got != 127 {
		t.Errorf("MaxFromBits(8, signed) = %d, want 127", got)
	}
}

func TestMinMaxFromBitsUnsigned(t *testing.T) {
	e := New(64)
	min8 := e.MinFromBits(8, false, nil)
	if !e.IsZero(min8, e.Precision()) {
		t.Error("MinFromBits(8, unsigned) should be 0")
	}

	max8 := e.MaxFromBits(8, false, nil)
	if got := e.ToUint64(max8); got != 255 {
		t.Errorf("MaxFromBits(8, unsigned) = %d, want 255", got)
	}
}

func TestTruncateMasksHighBits(t *testing.T) {
	e := New(32)
	v := e.NewBuffer()
	e.FromUint64(0xFFFFFFFF, v)

	e.Truncate(8, v)
	if got := e.ToUint64(v); got != 0xFF {
		t.Fatalf("Truncate(8) = %#x, want 0xFF", got)
	}
}

func TestTruncateOnNibbleBoundary(t *testing.T) {
	e := New(32)
	v := e.NewBuffer()
	e.FromUint64(0xABCDEF, v)

	e.Truncate(12, v)
	if got := e.ToUint64(v); got != 0xDEF {
		t.Fatalf("Truncate(12) = %#x, want 0xdef", got)
	}
}

func TestSignExtendFillsOrZeros(t *testing.T) {
	e := New(64)

	neg8 := e.NewBuffer()
	neg8[0] = 0xF6 & 0xF
	neg8[1] = 0xF6 >> 4
	e.SignExtend(neg8, 8, true)
	if got := e.ToInt64(neg8); got != -10 {
		t.Fatalf("SignExtend(0xF6, from 8 bits, signed) = %d, want -10", got)
	}

	pos8 := e.NewBuffer()
	pos8[0] = 0xF6 & 0xF
	pos8[1] = 0xF6 >> 4
	e.SignExtend(pos8, 8, false)
	if got := e.ToUint64(pos8); got != 0xF6 {
		t.Fatalf("SignExtend(0xF6, from 8 bits, unsigned) = %#x, want 0xf6", got)
	}
}
