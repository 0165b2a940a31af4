package simd

import (
	"errors"
	"testing"
)

// rawMaskImage builds a comparison-register image for 4-byte lanes,
// with true lanes holding the given word.
func rawMaskImage(trueWord uint32, bits []bool) []byte {
	raw := make([]byte, 4*len(bits))
	words := viewAs[uint32](raw, len(bits))
	for i, b := range bits {
		if b {
			words[i] = trueWord
		}
	}
	return raw
}

func TestMaskOf(t *testing.T) {
	m := MaskOf[int32](true, false, true, false)
	want := []bool{true, false, true, false}
	for i, w := range want {
		if m.Test(i) != w {
			t.Errorf("lane %d = %v, want %v", i, m.Test(i), w)
		}
	}
}

func TestMaskFromRawLiteralOne(t *testing.T) {
	raw := rawMaskImage(1, []bool{true, false, false, true})
	m := MaskFromRaw[float32](raw, 4, TruthLiteralOne)
	want := []bool{true, false, false, true}
	for i, w := range want {
		if m.Test(i) != w {
			t.Errorf("lane %d = %v, want %v", i, m.Test(i), w)
		}
	}
}

func TestMaskFromRawAllBitsNormalizes(t *testing.T) {
	raw := rawMaskImage(0xffffffff, []bool{true, false, true, true})
	m := MaskFromRaw[float32](raw, 4, TruthAllBits)

	want := []bool{true, false, true, true}
	for i, w := range want {
		if m.Test(i) != w {
			t.Errorf("lane %d = %v, want %v", i, m.Test(i), w)
		}
	}
	// The stored words must be canonical 0/1, not the raw encoding.
	for i := range want {
		lo, hi := m.laneWord(i)
		if hi != 0 || (lo != 0 && lo != 1) {
			t.Errorf("lane %d holds raw word %#x:%#x, want 0 or 1", i, hi, lo)
		}
	}
}

func TestMaskFromRawWrongSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MaskFromRaw with short image did not panic")
		}
	}()
	MaskFromRaw[float32](make([]byte, 8), 4, TruthLiteralOne)
}

func TestMakeGCCCompatible(t *testing.T) {
	m := MaskOf[uint16](true, false, true, false, false, true, false, true)
	g := m.MakeGCCCompatible()
	for i := 0; i < m.Lanes(); i++ {
		lo, _ := g.laneWord(i)
		if m.Test(i) {
			if uint16(lo) != 0xffff {
				t.Errorf("true lane %d = %#x, want 0xffff", i, uint16(lo))
			}
		} else if lo != 0 {
			t.Errorf("false lane %d = %#x, want 0", i, lo)
		}
	}
}

func TestMakeGCCCompatibleRoundTrip(t *testing.T) {
	m := MaskOf[float64](true, false)
	g := m.MakeGCCCompatible()
	back := MaskFromRaw[float64](g.reg, g.Lanes(), TruthAllBits)
	for i := 0; i < m.Lanes(); i++ {
		if back.Test(i) != m.Test(i) {
			t.Errorf("lane %d did not survive the round trip", i)
		}
	}
}

func TestMaskPredicates(t *testing.T) {
	cases := []struct {
		bits  []bool
		any   bool
		all   bool
		none  bool
		count int
	}{
		{[]bool{false, false, false, false}, false, false, true, 0},
		{[]bool{true, true, true, true}, true, true, false, 4},
		{[]bool{true, false, true, false}, true, false, false, 2},
	}
	for _, tc := range cases {
		m := MaskOf[int32](tc.bits...)
		if m.AnyOf() != tc.any {
			t.Errorf("%v: AnyOf = %v, want %v", tc.bits, m.AnyOf(), tc.any)
		}
		if m.AllOf() != tc.all {
			t.Errorf("%v: AllOf = %v, want %v", tc.bits, m.AllOf(), tc.all)
		}
		if m.NoneOf() != tc.none {
			t.Errorf("%v: NoneOf = %v, want %v", tc.bits, m.NoneOf(), tc.none)
		}
		if m.CountTrue() != tc.count {
			t.Errorf("%v: CountTrue = %d, want %d", tc.bits, m.CountTrue(), tc.count)
		}
	}
}

func TestMaskPredicatesMatchScalarReference(t *testing.T) {
	a := Of[int32](3, 7, 7, 1, 9, 7, 0, 2)
	b := Broadcast[int32](7, 8)
	m := Equal(a, b)

	as := a.Slice()
	for i := range as {
		if m.Test(i) != (as[i] == 7) {
			t.Errorf("lane %d: mask %v, scalar %v", i, m.Test(i), as[i] == 7)
		}
	}

	anyRef, allRef, countRef := false, true, 0
	for _, x := range as {
		eq := x == 7
		anyRef = anyRef || eq
		allRef = allRef && eq
		if eq {
			countRef++
		}
	}
	if m.AnyOf() != anyRef || m.AllOf() != allRef || m.CountTrue() != countRef {
		t.Errorf("predicates (%v, %v, %d) disagree with scalar loop (%v, %v, %d)",
			m.AnyOf(), m.AllOf(), m.CountTrue(), anyRef, allRef, countRef)
	}
}

func TestMaskWidthMatchesElement(t *testing.T) {
	if got := NewMask[float64](2).ByteSize(); got != 16 {
		t.Errorf("Mask[float64] x2 ByteSize = %d, want 16", got)
	}
	if got := NewMask[uint8](16).ByteSize(); got != 16 {
		t.Errorf("Mask[uint8] x16 ByteSize = %d, want 16", got)
	}
	if got := NewMask[Int128](1).ByteSize(); got != 16 {
		t.Errorf("Mask[Int128] x1 ByteSize = %d, want 16", got)
	}
}

func TestMaskInt128Lanes(t *testing.T) {
	m := MaskOf[Int128](true, false)
	if !m.Test(0) || m.Test(1) {
		t.Errorf("lanes = %v, want [true false]", m.Bools())
	}
	g := m.MakeGCCCompatible()
	lo, hi := g.laneWord(0)
	if lo != ^uint64(0) || hi != ^uint64(0) {
		t.Errorf("true 16-byte lane = %#x:%#x, want all bits", hi, lo)
	}
	back := MaskFromRaw[Int128](g.reg, 2, TruthAllBits)
	if !back.Test(0) || back.Test(1) {
		t.Error("16-byte round trip lost lane values")
	}
}

func TestMaskBoundsChecked(t *testing.T) {
	m := MaskOf[int32](true, false, true, false)
	if _, err := m.TestAt(4); !errors.Is(err, ErrLaneOutOfRange) {
		t.Errorf("TestAt(4): err = %v, want ErrLaneOutOfRange", err)
	}
	if err := m.SetBoolAt(-1, true); !errors.Is(err, ErrLaneOutOfRange) {
		t.Errorf("SetBoolAt(-1): err = %v, want ErrLaneOutOfRange", err)
	}
}

func TestMaskLogic(t *testing.T) {
	a := MaskOf[int32](true, true, false, false)
	b := MaskOf[int32](true, false, true, false)

	checks := []struct {
		name string
		got  Mask[int32]
		want []bool
	}{
		{"MaskAnd", MaskAnd(a, b), []bool{true, false, false, false}},
		{"MaskOr", MaskOr(a, b), []bool{true, true, true, false}},
		{"MaskXor", MaskXor(a, b), []bool{false, true, true, false}},
		{"MaskNot", MaskNot(a), []bool{false, false, true, true}},
	}
	for _, c := range checks {
		for i, w := range c.want {
			if c.got.Test(i) != w {
				t.Errorf("%s: lane %d = %v, want %v", c.name, i, c.got.Test(i), w)
			}
		}
	}
}
