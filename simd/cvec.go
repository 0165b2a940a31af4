package simd

import "fmt"

// CVec is a complex lane vector: two parallel real-valued registers
// holding the real and imaginary components. The split representation
// makes component access and the cross-term arithmetic of multiply and
// divide direct per-component operations, with no deinterleaving.
type CVec[T Floats] struct {
	re, im Vec[T]
}

// NewC returns a zeroed complex vector with the given lane count.
func NewC[T Floats](lanes int) CVec[T] {
	return CVec[T]{re: New[T](lanes), im: New[T](lanes)}
}

// BroadcastC returns a complex vector with every lane set to (re, im).
func BroadcastC[T Floats](re, im T, lanes int) CVec[T] {
	return CVec[T]{re: Broadcast(re, lanes), im: Broadcast(im, lanes)}
}

// LoadC constructs a complex vector from parallel component slices,
// which must have equal supported length.
func LoadC[T Floats](re, im []T) CVec[T] {
	checkLanes("LoadC", len(re), len(im))
	return CVec[T]{re: Load(re), im: Load(im)}
}

// OfC constructs a complex vector from complex128 lane values
// (components are converted to T).
func OfC[T Floats](xs ...complex128) CVec[T] {
	v := NewC[T](len(xs))
	for i, x := range xs {
		v.Set(i, T(real(x)), T(imag(x)))
	}
	return v
}

// Kind returns the component element kind.
func (v CVec[T]) Kind() Kind {
	return KindOf[T]()
}

// Lanes returns the lane count.
func (v CVec[T]) Lanes() int {
	return v.re.lanes
}

// ByteSize returns the combined byte size of both component registers.
func (v CVec[T]) ByteSize() int {
	return v.re.ByteSize() + v.im.ByteSize()
}

// Real returns the real-component vector. It shares storage with the
// complex vector.
func (v CVec[T]) Real() Vec[T] {
	return v.re
}

// Imag returns the imaginary-component vector. It shares storage with
// the complex vector.
func (v CVec[T]) Imag() Vec[T] {
	return v.im
}

// Get returns both components of lane i, without a range check.
func (v CVec[T]) Get(i int) (re, im T) {
	return v.re.Get(i), v.im.Get(i)
}

// GetComplex returns lane i as a complex128.
func (v CVec[T]) GetComplex(i int) complex128 {
	re, im := v.Get(i)
	return complex(float64(re), float64(im))
}

// Set writes both components of lane i together, without a range check.
func (v CVec[T]) Set(i int, re, im T) {
	v.re.Set(i, re)
	v.im.Set(i, im)
}

// At returns both components of lane i, reporting ErrLaneOutOfRange
// for indexes outside [0, lanes).
func (v CVec[T]) At(i int) (re, im T, err error) {
	if i < 0 || i >= v.Lanes() {
		var zero T
		return zero, zero, fmt.Errorf("%w: %d of %d", ErrLaneOutOfRange, i, v.Lanes())
	}
	re, im = v.Get(i)
	return re, im, nil
}

// SetAt writes both components of lane i, reporting ErrLaneOutOfRange
// for indexes outside [0, lanes).
func (v CVec[T]) SetAt(i int, re, im T) error {
	if i < 0 || i >= v.Lanes() {
		return fmt.Errorf("%w: %d of %d", ErrLaneOutOfRange, i, v.Lanes())
	}
	v.Set(i, re, im)
	return nil
}

// Slice returns the lanes as a fresh []complex128.
func (v CVec[T]) Slice() []complex128 {
	out := make([]complex128, v.Lanes())
	for i := range out {
		out[i] = v.GetComplex(i)
	}
	return out
}

// Clone returns a complex vector with its own registers.
func (v CVec[T]) Clone() CVec[T] {
	return CVec[T]{re: v.re.Clone(), im: v.im.Clone()}
}
