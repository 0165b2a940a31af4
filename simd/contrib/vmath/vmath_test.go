package vmath

import (
	"math"
	"testing"

	"github.com/amallia/simd-sub000/simd"
)

const tol = 1e-6

func checkLanes32(t *testing.T, name string, got simd.Vec[float32], ref func(float64) float64, in simd.Vec[float32]) {
	t.Helper()
	for i := 0; i < got.Lanes(); i++ {
		want := float32(ref(float64(in.Get(i))))
		if math.Abs(float64(got.Get(i)-want)) > tol {
			t.Errorf("%s lane %d = %v, want %v", name, i, got.Get(i), want)
		}
	}
}

func TestUnaryCatalog(t *testing.T) {
	v := simd.Of[float32](0.25, 0.5, 1, 2)
	checkLanes32(t, "Exp", Exp(v), math.Exp, v)
	checkLanes32(t, "Log", Log(v), math.Log, v)
	checkLanes32(t, "Log2", Log2(v), math.Log2, v)
	checkLanes32(t, "Sqrt", Sqrt(v), math.Sqrt, v)
	checkLanes32(t, "Sin", Sin(v), math.Sin, v)
	checkLanes32(t, "Cos", Cos(v), math.Cos, v)
	checkLanes32(t, "Tanh", Tanh(v), math.Tanh, v)
}

func TestSigmoid(t *testing.T) {
	v := simd.Of[float64](-10, -1, 0, 1, 10, 0.5, -0.5, 3)
	got := Sigmoid(v)
	for i := 0; i < v.Lanes(); i++ {
		want := 1 / (1 + math.Exp(-v.Get(i)))
		if math.Abs(got.Get(i)-want) > 1e-12 {
			t.Errorf("lane %d = %v, want %v", i, got.Get(i), want)
		}
	}
	if got.Get(2) != 0.5 {
		t.Errorf("sigmoid(0) = %v, want 0.5", got.Get(2))
	}
}

func TestPow(t *testing.T) {
	x := simd.Of[float64](2, 3, 4, 10)
	y := simd.Of[float64](10, 2, 0.5, -1)
	got := Pow(x, y)
	want := []float64{1024, 9, 2, 0.1}
	for i, w := range want {
		if math.Abs(got.Get(i)-w) > 1e-12 {
			t.Errorf("lane %d = %v, want %v", i, got.Get(i), w)
		}
	}
}

func TestRounding(t *testing.T) {
	v := simd.Of[float64](1.5, -1.5, 2.3, -2.7)
	cases := []struct {
		name string
		got  simd.Vec[float64]
		want []float64
	}{
		{"Round", Round(v), []float64{2, -2, 2, -3}},
		{"Trunc", Trunc(v), []float64{1, -1, 2, -2}},
		{"Ceil", Ceil(v), []float64{2, -1, 3, -2}},
		{"Floor", Floor(v), []float64{1, -2, 2, -3}},
	}
	for _, tc := range cases {
		for i, w := range tc.want {
			if tc.got.Get(i) != w {
				t.Errorf("%s lane %d = %v, want %v", tc.name, i, tc.got.Get(i), w)
			}
		}
	}
}

func TestAbsC(t *testing.T) {
	v := simd.OfC[float64](3+4i, -5+12i)
	got := AbsC(v)
	want := []float64{5, 13}
	for i, w := range want {
		if got.Get(i) != w {
			t.Errorf("lane %d = %v, want %v", i, got.Get(i), w)
		}
	}
}

func TestExpC(t *testing.T) {
	v := simd.OfC[float64](0+0i, 0+math.Pi*1i, 1+0i, 1+1i)
	got := ExpC(v)
	for i := 0; i < v.Lanes(); i++ {
		x := v.GetComplex(i)
		want := complex(math.Exp(real(x))*math.Cos(imag(x)), math.Exp(real(x))*math.Sin(imag(x)))
		g := got.GetComplex(i)
		if math.Abs(real(g)-real(want)) > 1e-12 || math.Abs(imag(g)-imag(want)) > 1e-12 {
			t.Errorf("lane %d = %v, want %v", i, g, want)
		}
	}
}
