package simd

import (
	"errors"
	"fmt"
	"testing"
)

func TestVecString(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{Of[int32](1, -2, 3, -4).String(), "(1;-2;3;-4)"},
		{Of[float32](1.5, 0, -2.25, 10).String(), "(1.5;0;-2.25;10)"},
		{Of[uint64](0, 18446744073709551615).String(), "(0;18446744073709551615)"},
		{Of(Int128FromInt64(-1)).String(), "(-1)"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("String = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestMaskString(t *testing.T) {
	m := MaskOf[int32](true, false, false, true)
	if got := m.String(); got != "(1;0;0;1)" {
		t.Errorf("String = %q, want %q", got, "(1;0;0;1)")
	}
}

func TestCVecString(t *testing.T) {
	v := OfC[float64](1+2i, 3-4i)
	if got := v.String(); got != "(1+2i;3-4i)" {
		t.Errorf("String = %q, want %q", got, "(1+2i;3-4i)")
	}
}

func TestVecScanRoundTrip(t *testing.T) {
	src := Of[float64](1.5, -2, 1e10, 0.25)
	dst := New[float64](4)
	if _, err := fmt.Sscan(src.String(), &dst); err != nil {
		t.Fatalf("Sscan(%q): %v", src.String(), err)
	}
	for i := 0; i < src.Lanes(); i++ {
		if dst.Get(i) != src.Get(i) {
			t.Errorf("lane %d = %v, want %v", i, dst.Get(i), src.Get(i))
		}
	}
}

func TestVecScanInt128(t *testing.T) {
	v := New[Int128](2)
	if _, err := fmt.Sscan("(-170141183460469231731687303715884105728;7)", &v); err != nil {
		t.Fatalf("Sscan: %v", err)
	}
	if !v.Get(0).IsNeg() || v.Get(1) != Int128FromInt64(7) {
		t.Errorf("lanes = %v, %v", v.Get(0), v.Get(1))
	}
}

func TestMaskScanRoundTrip(t *testing.T) {
	src := MaskOf[uint16](true, false, true, true, false, false, true, false)
	dst := NewMask[uint16](8)
	if _, err := fmt.Sscan(src.String(), &dst); err != nil {
		t.Fatalf("Sscan(%q): %v", src.String(), err)
	}
	for i := 0; i < src.Lanes(); i++ {
		if dst.Test(i) != src.Test(i) {
			t.Errorf("lane %d = %v, want %v", i, dst.Test(i), src.Test(i))
		}
	}
}

func TestCVecScanRoundTrip(t *testing.T) {
	src := OfC[float64](1+2i, -3.5+0i)
	dst := NewC[float64](2)
	if _, err := fmt.Sscan(src.String(), &dst); err != nil {
		t.Fatalf("Sscan(%q): %v", src.String(), err)
	}
	for i := 0; i < src.Lanes(); i++ {
		if dst.GetComplex(i) != src.GetComplex(i) {
			t.Errorf("lane %d = %v, want %v", i, dst.GetComplex(i), src.GetComplex(i))
		}
	}
}

func TestVecScanUnderflowKeepsParsedLanes(t *testing.T) {
	v := New[int32](4)
	_, err := fmt.Sscan("(10;20)", &v)
	if !errors.Is(err, ErrInputUnderflow) {
		t.Fatalf("err = %v, want ErrInputUnderflow", err)
	}
	// Lanes parsed before the underflow stay written.
	if v.Get(0) != 10 || v.Get(1) != 20 {
		t.Errorf("parsed lanes = %d, %d, want 10, 20", v.Get(0), v.Get(1))
	}
	if v.Get(2) != 0 || v.Get(3) != 0 {
		t.Errorf("unparsed lanes = %d, %d, want zero", v.Get(2), v.Get(3))
	}
}

func TestVecScanMalformed(t *testing.T) {
	v := New[int32](2)
	if _, err := fmt.Sscan("1;2)", &v); err == nil {
		t.Error("missing '(' accepted")
	}
	if _, err := fmt.Sscan("(1;x)", &v); err == nil {
		t.Error("non-numeric lane accepted")
	}
}

func TestVecScanEmptyInput(t *testing.T) {
	v := New[int32](2)
	_, err := fmt.Sscan("()", &v)
	if !errors.Is(err, ErrInputUnderflow) {
		t.Errorf("err = %v, want ErrInputUnderflow", err)
	}
}
