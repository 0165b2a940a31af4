// Copyright 2026 simd-sub000 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

import (
	"fmt"
	"unsafe"
)

// Vec is a lane vector of the Integral or Floating family: a fixed
// number of lanes of element type T backed by a packed, alignment-exact
// register. The lane count is fixed at construction; the register's
// byte size is lanes*sizeof(T) and its alignment equals its byte size.
//
// Vec values share their backing register on assignment, like slices.
// Use Clone for an independent copy. The register's internal layout is
// never exposed as a raw pointer; lane access goes through Get/Set,
// the checked At/SetAt, or the Ref/Ptr proxies.
type Vec[T Lanes] struct {
	reg   []byte
	lanes int
}

// New returns a zeroed vector with the given lane count. The lane count
// must be one of LaneCounts and the element kind must have a register
// representation; any other shape panics, as does terminal allocation
// failure.
func New[T Lanes](lanes int) Vec[T] {
	shape := mustShape(KindOf[T](), lanes)
	reg, err := Alloc(shape.Size, shape.Align)
	if err != nil {
		panic(err)
	}
	return Vec[T]{reg: reg, lanes: lanes}
}

// Zero returns a zeroed vector with the given lane count.
func Zero[T Lanes](lanes int) Vec[T] {
	return New[T](lanes)
}

// Broadcast returns a vector with every lane set to x.
func Broadcast[T Lanes](x T, lanes int) Vec[T] {
	v := New[T](lanes)
	d := v.data()
	for i := range d {
		d[i] = x
	}
	return v
}

// Of constructs a vector from the given lane values. The number of
// values must be a supported lane count.
func Of[T Lanes](xs ...T) Vec[T] {
	v := New[T](len(xs))
	copy(v.data(), xs)
	return v
}

// Load constructs a vector from a scalar slice. The slice length is the
// lane count and must be one of LaneCounts.
func Load[T Lanes](src []T) Vec[T] {
	return Of(src...)
}

// LoadRaw constructs a vector by copying a raw register image. The
// source need not be aligned; its length must equal the register size.
func LoadRaw[T Lanes](raw []byte, lanes int) Vec[T] {
	shape := mustShape(KindOf[T](), lanes)
	if len(raw) != shape.Size {
		panic(&ShapeError{Op: "LoadRaw", Want: shape.Size, Got: len(raw)})
	}
	v := New[T](lanes)
	copy(v.reg, raw)
	return v
}

// Kind returns the element kind.
func (v Vec[T]) Kind() Kind {
	return KindOf[T]()
}

// Lanes returns the lane count.
func (v Vec[T]) Lanes() int {
	return v.lanes
}

// ByteSize returns the backing register's size in bytes.
func (v Vec[T]) ByteSize() int {
	return len(v.reg)
}

// Alignment returns the backing register's required alignment, which
// always equals its byte size.
func (v Vec[T]) Alignment() int {
	return len(v.reg)
}

// Get returns lane i without bounds checking beyond Go's own; indexes
// outside [0, lanes) are a programming error.
func (v Vec[T]) Get(i int) T {
	return v.data()[i]
}

// Set writes lane i without bounds checking beyond Go's own.
func (v Vec[T]) Set(i int, x T) {
	v.data()[i] = x
}

// At returns lane i, reporting ErrLaneOutOfRange for indexes outside
// [0, lanes).
func (v Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= v.lanes {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrLaneOutOfRange, i, v.lanes)
	}
	return v.data()[i], nil
}

// SetAt writes lane i, reporting ErrLaneOutOfRange for indexes outside
// [0, lanes).
func (v Vec[T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.lanes {
		return fmt.Errorf("%w: %d of %d", ErrLaneOutOfRange, i, v.lanes)
	}
	v.data()[i] = x
	return nil
}

// Store copies lanes into dst, up to min(lanes, len(dst)), and returns
// the number of lanes written.
func (v Vec[T]) Store(dst []T) int {
	return copy(dst, v.data())
}

// Slice returns the lane values as a fresh slice.
func (v Vec[T]) Slice() []T {
	out := make([]T, v.lanes)
	copy(out, v.data())
	return out
}

// Clone returns a vector with its own register holding the same lanes.
func (v Vec[T]) Clone() Vec[T] {
	out := New[T](v.lanes)
	copy(out.reg, v.reg)
	return out
}

// Free releases the backing register's bookkeeping. The vector must not
// be used afterwards. Calling Free on a zero vector is a no-op.
func (v Vec[T]) Free() {
	Dealloc(v.reg, len(v.reg), len(v.reg))
}

// data views the register as lanes of T. The view is only handed out
// internally; callers go through accessors or proxies.
func (v Vec[T]) data() []T {
	if v.lanes == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&v.reg[0])), v.lanes)
}
