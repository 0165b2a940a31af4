package simd

import "testing"

func TestRefReadsAndWritesVector(t *testing.T) {
	v := Of[float32](1, 2, 3, 4)
	r := v.Ref(2)
	if r.Get() != 3 {
		t.Errorf("Ref(2).Get() = %v, want 3", r.Get())
	}
	r.Set(30)
	if v.Get(2) != 30 {
		t.Error("Ref.Set did not write through to the vector")
	}
}

func TestRefEqualComparesValues(t *testing.T) {
	a := Of[int32](7, 8)
	b := Of[int32](7, 9)
	if !a.Ref(0).Equal(b.Ref(0)) {
		t.Error("refs to equal values compare unequal")
	}
	if a.Ref(1).Equal(b.Ref(1)) {
		t.Error("refs to different values compare equal")
	}
}

func TestPtrNavigation(t *testing.T) {
	v := Of[float64](10, 20, 30, 40, 50, 60, 70, 80)

	p := v.Begin()
	if p.Get() != 10 {
		t.Errorf("Begin.Get() = %v, want 10", p.Get())
	}
	p = p.Next().Next()
	if p.Index() != 2 || p.Get() != 30 {
		t.Errorf("after two Next: index %d, value %v", p.Index(), p.Get())
	}
	p = p.Offset(3)
	if p.Get() != 60 {
		t.Errorf("Offset(3).Get() = %v, want 60", p.Get())
	}
	p = p.Prev()
	if p.Get() != 50 {
		t.Errorf("Prev.Get() = %v, want 50", p.Get())
	}
}

func TestPtrDistance(t *testing.T) {
	v := New[uint16](8)
	if d := v.Begin().Distance(v.End()); d != v.Lanes() {
		t.Errorf("Distance(Begin, End) = %d, want %d", d, v.Lanes())
	}
	if !v.Begin().Less(v.End()) {
		t.Error("Begin must order before End")
	}
	if !v.Begin().Offset(v.Lanes()).Equal(v.End()) {
		t.Error("Begin+Lanes must equal End")
	}
}

func TestPtrIteration(t *testing.T) {
	v := Of[int8](1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	var sum int
	for p := v.Begin(); p.Less(v.End()); p = p.Next() {
		sum += int(p.Get())
	}
	if sum != 136 {
		t.Errorf("iterated sum = %d, want 136", sum)
	}
}

func TestPtrWritesThrough(t *testing.T) {
	v := New[float32](4)
	for p := v.Begin(); p.Less(v.End()); p = p.Next() {
		p.Set(float32(p.Index()) * 2)
	}
	for i := 0; i < v.Lanes(); i++ {
		if v.Get(i) != float32(i)*2 {
			t.Errorf("lane %d = %v, want %v", i, v.Get(i), float32(i)*2)
		}
	}
}

func TestCRefBothComponents(t *testing.T) {
	v := OfC[float64](1+2i, 3+4i)
	r := v.Ref(1)
	if re, im := r.Get(); re != 3 || im != 4 {
		t.Errorf("CRef.Get = (%v, %v), want (3, 4)", re, im)
	}
	r.Set(-1, -2)
	if v.GetComplex(1) != -1-2i {
		t.Error("CRef.Set did not write both components")
	}
}

func TestCPtrNavigation(t *testing.T) {
	v := OfC[float32](1+1i, 2+2i, 3+3i, 4+4i)
	p := v.Begin().Offset(2)
	if re, im := p.Deref().Get(); re != 3 || im != 3 {
		t.Errorf("Deref = (%v, %v), want (3, 3)", re, im)
	}
	if d := v.Begin().Distance(v.End()); d != 4 {
		t.Errorf("Distance = %d, want 4", d)
	}
}
