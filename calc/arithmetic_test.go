package calc

import "testing"

func TestAddSubRoundTrip(t *testing.T) {
	e := New(64)
	a := e.NewBuffer()
	b := e.NewBuffer()
	e.FromInt64(37, a)
	e.FromInt64(-12, b)

	sum, _ := e.Add(a, b, nil)
	if got := e.ToInt64(sum); got != 25 {
		t.Fatalf("Add(37,-12) = %d, want 25", got)
	}

	back, _ := e.Sub(sum, b, nil)
	if e.Compare(back, a) != 0 {
		t.Fatalf("Sub(sum, b) = %d, want 37", e.ToInt64(back))
	}
}

func TestSubIsAddNegate(t *testing.T) {
	e := New(32)
	a, b := e.NewBuffer(), e.NewBuffer()
	e.FromInt64(100, a)
	e.FromInt64(58, b)

	viaSub, subCarry := e.Sub(a, b, nil)

	nb := e.NewBuffer()
	e.Neg(b, nb)
	viaAdd, addCarry := e.Add(a, nb, nil)

	if e.Compare(viaSub, viaAdd) != 0 || subCarry != addCarry {
		t.Fatalf("Sub(a,b) != Add(a,Neg(b)): %d/%v vs %d/%v",
			e.ToInt64(viaSub), subCarry, e.ToInt64(viaAdd), addCarry)
	}
}

func TestNegateInvolution(t *testing.T) {
	e := New(64)
	for _, v := range []int64{0, 1, -1, 42, -42, -9223372036854775808} {
		buf := e.NewBuffer()
		e.FromInt64(v, buf)

		once := e.Neg(buf, nil)
		onceCopy := clone(once)
		twice := e.Neg(onceCopy, nil)

		if e.Compare(twice, buf) != 0 {
			t.Fatalf("Neg(Neg(%d)) = %d, want %d", v, e.ToInt64(twice), v)
		}
	}
}

func TestMulSigns(t *testing.T) {
	e := New(32)
	cases := []struct{ a, b, want int64 }{
		{3, 7, 21},
		{-3, 7, -21},
		{3, -7, -21},
		{-3, -7, 21},
		{0, 99, 0},
	}
	for _, c := range cases {
		a, b := e.NewBuffer(), e.NewBuffer()
		e.FromInt64(c.a, a)
		e.FromInt64(c.b, b)
		got := e.Mul(a, b, nil)
		if v := e.ToInt64(got); v != c.want {
			t.Errorf("Mul(%d,%d) = %d, want %d", c.a, c.b, v, c.want)
		}
	}
}

func TestDivModTruncating(t *testing.T) {
	e := New(32)
	dividend, divisor := e.NewBuffer(), e.NewBuffer()
	e.FromInt64(-17, dividend)
	e.FromInt64(5, divisor)

	quot, rem, carry, err := e.DivMod(dividend, divisor, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.ToInt64(quot); got != -3 {
		t.Errorf("quot = %d, want -3", got)
	}
	if got := e.ToInt64(rem); got != -2 {
		t.Errorf("rem = %d, want -2", got)
	}
	if !carry {
		t.Error("carry = false, want true (remainder non-zero)")
	}
}

func TestDivModByZero(t *testing.T) {
	e := New(32)
	dividend, zero := e.NewBuffer(), e.NewBuffer()
	e.FromInt64(10, dividend)

	_, _, _, err := e.DivMod(dividend, zero, nil, nil)
	if err == nil {
		t.Fatal("expected division-by-zero error, got nil")
	}
	calcErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error is not *calc.Error: %v", err)
	}
	if calcErr.Op != OpDivMod {
		t.Errorf("Op = %q, want %q", calcErr.Op, OpDivMod)
	}
}

func TestDivByZero(t *testing.T) {
	e := New(32)
	dividend, zero := e.NewBuffer(), e.NewBuffer()
	e.FromInt64(10, dividend)

	if _, _, err := e.Div(dividend, zero, nil); err == nil {
		t.Fatal("expected error from Div")
	}
}

func TestTruncateDistributesOverAdd(t *testing.T) {
	e := New(32)
	a, b := e.NewBuffer(), e.NewBuffer()
	e.FromInt64(200, a)
	e.FromInt64(100, b)

	sum, _ := e.Add(a, b, nil)
	e.Truncate(8, sum)

	sumA := clone(a)
	sumB := clone(b)
	e.Truncate(8, sumA)
	e.Truncate(8, sumB)
	truncSum, _ := e.Add(sumA, sumB, nil)
	e.Truncate(8, truncSum)

	if e.Compare(sum, truncSum) != 0 {
		t.Fatalf("truncate(add(a,b)) = %d, add(trunc(a),trunc(b)) truncated = %d",
			e.ToUint64(sum), e.ToUint64(truncSum))
	}
}
