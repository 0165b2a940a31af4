package simd

import (
	"math"
	"testing"
)

func TestAddVec(t *testing.T) {
	a := Of[int32](1, 2, 3, 4)
	b := Of[int32](10, 20, 30, 40)
	sum := Add(a, b)
	want := []int32{11, 22, 33, 44}
	for i, w := range want {
		if sum.Get(i) != w {
			t.Errorf("lane %d = %v, want %v", i, sum.Get(i), w)
		}
	}
	fa := Of[float32](1.5, 2.5, 3.5, 4.5)
	fb := Of[float32](10, 20, 30, 40)
	fsum := Add(fa, fb)
	fwant := []float32{11.5, 22.5, 33.5, 44.5}
	for i, w := range fwant {
		if fsum.Get(i) != w {
			t.Errorf("float lane %d = %v, want %v", i, fsum.Get(i), w)
		}
	}
}

func TestSubMulVec(t *testing.T) {
	a := Of[int32](10, 20, 30, 40)
	b := Of[int32](1, 2, 3, 4)
	diff := Sub(a, b)
	prod := Mul(a, b)
	for i := 0; i < 4; i++ {
		if diff.Get(i) != a.Get(i)-b.Get(i) {
			t.Errorf("Sub lane %d = %v", i, diff.Get(i))
		}
		if prod.Get(i) != a.Get(i)*b.Get(i) {
			t.Errorf("Mul lane %d = %v", i, prod.Get(i))
		}
	}
}

func TestDivVec(t *testing.T) {
	a := Of[float64](10, 20)
	b := Of[float64](4, 8)
	q := Div(a, b)
	if q.Get(0) != 2.5 || q.Get(1) != 2.5 {
		t.Errorf("Div = %v, %v, want 2.5, 2.5", q.Get(0), q.Get(1))
	}
}

func TestNegAbs(t *testing.T) {
	v := Of[int16](-3, 0, 5, -7, 2, -1, 8, -9)
	n := Neg(v)
	a := Abs(v)
	for i := 0; i < v.Lanes(); i++ {
		if n.Get(i) != -v.Get(i) {
			t.Errorf("Neg lane %d = %v", i, n.Get(i))
		}
		want := v.Get(i)
		if want < 0 {
			want = -want
		}
		if a.Get(i) != want {
			t.Errorf("Abs lane %d = %v, want %v", i, a.Get(i), want)
		}
	}
}

func TestMinMax(t *testing.T) {
	a := Of[float32](1, 5, 3, 8)
	b := Of[float32](4, 2, 3, 6)
	lo := Min(a, b)
	hi := Max(a, b)
	wantLo := []float32{1, 2, 3, 6}
	wantHi := []float32{4, 5, 3, 8}
	for i := 0; i < 4; i++ {
		if lo.Get(i) != wantLo[i] {
			t.Errorf("Min lane %d = %v, want %v", i, lo.Get(i), wantLo[i])
		}
		if hi.Get(i) != wantHi[i] {
			t.Errorf("Max lane %d = %v, want %v", i, hi.Get(i), wantHi[i])
		}
	}
}

func TestBitwiseOps(t *testing.T) {
	a := Of[uint8](0xf0, 0x0f, 0xff, 0x00, 0xaa, 0x55, 0x12, 0x34,
		0, 0, 0, 0, 0, 0, 0, 0)
	b := Of[uint8](0xff, 0xff, 0x0f, 0x0f, 0x0f, 0x0f, 0x10, 0x30,
		0, 0, 0, 0, 0, 0, 0, 0)
	and := And(a, b)
	or := Or(a, b)
	xor := Xor(a, b)
	andnot := AndNot(a, b)
	for i := 0; i < a.Lanes(); i++ {
		x, y := a.Get(i), b.Get(i)
		if and.Get(i) != x&y {
			t.Errorf("And lane %d = %#x, want %#x", i, and.Get(i), x&y)
		}
		if or.Get(i) != x|y {
			t.Errorf("Or lane %d = %#x, want %#x", i, or.Get(i), x|y)
		}
		if xor.Get(i) != x^y {
			t.Errorf("Xor lane %d = %#x, want %#x", i, xor.Get(i), x^y)
		}
		if andnot.Get(i) != x&^y {
			t.Errorf("AndNot lane %d = %#x, want %#x", i, andnot.Get(i), x&^y)
		}
	}
}

func TestShifts(t *testing.T) {
	v := Of[uint32](1, 2, 4, 0x80000000)
	l := ShiftLeft(v, 1)
	r := ShiftRight(v, 1)
	wantL := []uint32{2, 4, 8, 0}
	wantR := []uint32{0, 1, 2, 0x40000000}
	for i := 0; i < 4; i++ {
		if l.Get(i) != wantL[i] {
			t.Errorf("ShiftLeft lane %d = %#x, want %#x", i, l.Get(i), wantL[i])
		}
		if r.Get(i) != wantR[i] {
			t.Errorf("ShiftRight lane %d = %#x, want %#x", i, r.Get(i), wantR[i])
		}
	}
}

func TestComparisons(t *testing.T) {
	a := Of[int32](1, 5, 3, 3)
	b := Of[int32](2, 4, 3, 1)

	checks := []struct {
		name string
		m    Mask[int32]
		want []bool
	}{
		{"Equal", Equal(a, b), []bool{false, false, true, false}},
		{"NotEqual", NotEqual(a, b), []bool{true, true, false, true}},
		{"Less", Less(a, b), []bool{true, false, false, false}},
		{"LessEqual", LessEqual(a, b), []bool{true, false, true, false}},
		{"Greater", Greater(a, b), []bool{false, true, false, true}},
		{"GreaterEqual", GreaterEqual(a, b), []bool{false, true, true, true}},
	}
	for _, c := range checks {
		for i, w := range c.want {
			if c.m.Test(i) != w {
				t.Errorf("%s lane %d = %v, want %v", c.name, i, c.m.Test(i), w)
			}
		}
	}
}

func TestIfThenElse(t *testing.T) {
	m := MaskOf[float32](true, false, false, true)
	yes := Of[float32](1, 2, 3, 4)
	no := Of[float32](-1, -2, -3, -4)
	out := IfThenElse(m, yes, no)
	want := []float32{1, -2, -3, 4}
	for i, w := range want {
		if out.Get(i) != w {
			t.Errorf("lane %d = %v, want %v", i, out.Get(i), w)
		}
	}
}

func TestReductions(t *testing.T) {
	v := Of[int32](4, -2, 9, 1)
	if got := ReduceSum(v); got != 12 {
		t.Errorf("ReduceSum = %d, want 12", got)
	}
	if got := ReduceMin(v); got != -2 {
		t.Errorf("ReduceMin = %d, want -2", got)
	}
	if got := ReduceMax(v); got != 9 {
		t.Errorf("ReduceMax = %d, want 9", got)
	}
}

func TestInt128Ops(t *testing.T) {
	a := Of(Int128FromInt64(1<<62), Int128FromInt64(-5))
	b := Of(Int128FromInt64(1<<62), Int128FromInt64(3))

	sum := Add(a, b)
	// 2^62 + 2^62 = 2^63 overflows int64 but not Int128.
	if got := sum.Get(0); got != (Int128{Lo: 1 << 63}) {
		t.Errorf("Add lane 0 = %v", got)
	}
	if got := sum.Get(1); got != Int128FromInt64(-2) {
		t.Errorf("Add lane 1 = %v", got)
	}

	m := Less(a, b)
	if m.Test(0) || !m.Test(1) {
		t.Errorf("Less = %v, want [false true]", m.Bools())
	}

	if got := ReduceMax(a); got != Int128FromInt64(1<<62) {
		t.Errorf("ReduceMax = %v", got)
	}
}

// The derived operation catalog and a direct scalar loop must agree on
// arbitrary float inputs.
func TestOpsMatchScalarLoop(t *testing.T) {
	as := []float64{1.5, -2.25, 1e10, -0.0, 3.75, 100, -7, 0.125}
	bs := []float64{-4, 8.5, 2, 1, -3.75, 0.01, -7, 64}
	a := Load(as)
	b := Load(bs)

	sum, diff, prod := Add(a, b), Sub(a, b), Mul(a, b)
	for i := range as {
		if sum.Get(i) != as[i]+bs[i] || diff.Get(i) != as[i]-bs[i] || prod.Get(i) != as[i]*bs[i] {
			t.Errorf("lane %d disagrees with scalar arithmetic", i)
		}
		if Less(a, b).Test(i) != (as[i] < bs[i]) {
			t.Errorf("Less lane %d disagrees with scalar compare", i)
		}
	}

	wantSum := 0.0
	for _, x := range as {
		wantSum += x
	}
	if got := ReduceSum(a); math.Abs(got-wantSum) > 1e-9 {
		t.Errorf("ReduceSum = %v, want %v", got, wantSum)
	}
}
