package calc

import "testing"

func TestShlIUnsigned(t *testing.T) {
	e := New(32)
	v := e.NewBuffer()
	e.FromUint64(1, v)

	got := e.ShlI(v, 4, 32, false, nil)
	if u := e.ToUint64(got); u != 16 {
		t.Fatalf("ShlI(1, 4) = %d, want 16", u)
	}
}

func TestShlIShiftPastWidthIsZero(t *testing.T) {
	e := New(32)
	v := e.NewBuffer()
	e.FromUint64(0xFF, v)

	got := e.ShlI(v, 32, 32, false, nil)
	if !e.IsZero(got, 32) {
		t.Fatalf("ShlI(0xFF, 32) = %#x, want 0", e.ToUint64(got))
	}
}

func TestShlShrRoundTrip(t *testing.T) {
	e := New(32)
	v := e.NewBuffer()
	e.FromUint64(0x1234, v)

	shifted := e.ShlI(v, 8, 32, false, nil)
	back, carry := e.ShrI(clone(shifted), 8, 32, false, nil)
	if carry {
		t.Fatal("ShrI after a lossless ShlI should not report carry")
	}
	if e.Compare(back, v) != 0 {
		t.Fatalf("shl/shr round trip: got %#x, want %#x", e.ToUint64(back), e.ToUint64(v))
	}
}

func TestShrArithmeticSignExtends(t *testing.T) {
	e := New(32)
	v := e.NewBuffer()
	e.FromUint64(0x80000001, v)

	got, carry := e.ShrsI(v, 1, 32, true, nil)
	if !carry {
		t.Fatal("expected carry: the low set bit was shifted out")
	}
	if want := uint64(0xC0000000); e.ToUint64(got) != want {
		t.Fatalf("Shrs(0x80000001, 1) = %#x, want %#x", e.ToUint64(got), want)
	}
}

func TestShrPlainZeroFillsUnsigned(t *testing.T) {
	e := New(32)
	v := e.NewBuffer()
	e.FromUint64(0x80000000, v)

	got, carry := e.ShrI(v, 1, 32, false, nil)
	if carry {
		t.Fatal("no bits were shifted out below the window")
	}
	if want := uint64(0x40000000); e.ToUint64(got) != want {
		t.Fatalf("ShrI(0x80000000, 1, unsigned) = %#x, want %#x", e.ToUint64(got), want)
	}
}

func TestShrShiftPastWidthCarriesIfNonzero(t *testing.T) {
	e := New(32)
	v := e.NewBuffer()
	e.FromUint64(1, v)

	_, carry := e.ShrI(v, 32, 32, false, nil)
	if !carry {
		t.Fatal("shifting a nonzero value past its width should report carry")
	}

	zero := e.NewBuffer()
	_, carry = e.ShrI(zero, 32, 32, false, nil)
	if carry {
		t.Fatal("shifting zero past the width should not report carry")
	}
}

func TestShlShrViaBuffer(t *testing.T) {
	e := New(32)
	v, n := e.NewBuffer(), e.NewBuffer()
	e.FromUint64(0xAB, v)
	e.FromInt64(4, n)

	got := e.Shl(v, n, 32, false, nil)
	if u := e.ToUint64(got); u != 0xAB0 {
		t.Fatalf("Shl via buffer = %#x, want 0xAB0", u)
	}

	back, _ := e.Shr(clone(got), n, 32, false, nil)
	if u := e.ToUint64(back); u != 0xAB {
		t.Fatalf("Shr via buffer = %#x, want 0xAB", u)
	}
}
