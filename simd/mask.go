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

// Mask is a boolean lane vector. Its register holds the integral mask
// type with the same byte width as the companion element type T, so a
// Mask[T] is bit-reinterpretable with a Vec of equal register size.
//
// Regardless of where a mask came from, its observable lanes are always
// 0 (false) or 1 (true). Raw comparison registers from an all-bits-set
// backend are normalized during construction; the alternate encoding is
// only reachable through MakeGCCCompatible and never leaks into default
// construction or comparison results.
type Mask[T Lanes] struct {
	reg   []byte
	lanes int
}

// maskKind returns the integral register kind used for width-byte mask
// lanes.
func maskKind(width int) Kind {
	switch width {
	case 1:
		return KindUint8
	case 2:
		return KindUint16
	case 4:
		return KindUint32
	case 8:
		return KindUint64
	case 16:
		return KindInt128
	default:
		return KindInvalid
	}
}

// NewMask returns an all-false mask with the given lane count.
func NewMask[T Lanes](lanes int) Mask[T] {
	shape := mustShape(maskKind(sizeOf[T]()), lanes)
	reg, err := Alloc(shape.Size, shape.Align)
	if err != nil {
		panic(err)
	}
	return Mask[T]{reg: reg, lanes: lanes}
}

// MaskOf constructs a mask from per-lane truth values. The number of
// values must be a supported lane count.
func MaskOf[T Lanes](bits ...bool) Mask[T] {
	m := NewMask[T](len(bits))
	for i, b := range bits {
		m.setBool(i, b)
	}
	return m
}

// MaskFromRaw constructs a mask from a raw comparison register in the
// given truth encoding. The register image must be exactly
// lanes*sizeof(mask type) bytes. All-bits-set input lanes are masked
// down to 0/1 during construction so downstream logic never sees the
// backend encoding.
func MaskFromRaw[T Lanes](raw []byte, lanes int, enc TruthEncoding) Mask[T] {
	m := NewMask[T](lanes)
	if len(raw) != len(m.reg) {
		panic(&ShapeError{Op: "MaskFromRaw", Want: len(m.reg), Got: len(raw)})
	}
	copy(m.reg, raw)
	if enc == TruthAllBits {
		for i := 0; i < lanes; i++ {
			lo, _ := m.laneWord(i)
			m.setLaneWord(i, lo&1, 0)
		}
	}
	return m
}

// MakeGCCCompatible expands the canonical 0/1 lanes back to the
// all-bits-set encoding, for interoperating with code that expects that
// convention. The receiver must be validly 0/1-encoded; anything else
// is undefined. The result must not be fed back into the 0/1 predicates.
func (m Mask[T]) MakeGCCCompatible() Mask[T] {
	out := NewMask[T](m.lanes)
	for i := 0; i < m.lanes; i++ {
		if m.Test(i) {
			out.setLaneWord(i, ^uint64(0), ^uint64(0))
		}
	}
	return out
}

// Kind returns the companion element kind.
func (m Mask[T]) Kind() Kind {
	return KindOf[T]()
}

// Lanes returns the lane count.
func (m Mask[T]) Lanes() int {
	return m.lanes
}

// ByteSize returns the mask register's size in bytes.
func (m Mask[T]) ByteSize() int {
	return len(m.reg)
}

// Alignment returns the mask register's required alignment.
func (m Mask[T]) Alignment() int {
	return len(m.reg)
}

// Test returns lane i as a bool, without a range check.
func (m Mask[T]) Test(i int) bool {
	lo, hi := m.laneWord(i)
	return lo|hi != 0
}

// TestAt returns lane i, reporting ErrLaneOutOfRange for indexes
// outside [0, lanes).
func (m Mask[T]) TestAt(i int) (bool, error) {
	if i < 0 || i >= m.lanes {
		return false, fmt.Errorf("%w: %d of %d", ErrLaneOutOfRange, i, m.lanes)
	}
	return m.Test(i), nil
}

// SetBool writes lane i, without a range check.
func (m Mask[T]) SetBool(i int, b bool) {
	m.setBool(i, b)
}

// SetBoolAt writes lane i, reporting ErrLaneOutOfRange for indexes
// outside [0, lanes).
func (m Mask[T]) SetBoolAt(i int, b bool) error {
	if i < 0 || i >= m.lanes {
		return fmt.Errorf("%w: %d of %d", ErrLaneOutOfRange, i, m.lanes)
	}
	m.setBool(i, b)
	return nil
}

// Bools returns the lane truth values as a fresh slice.
func (m Mask[T]) Bools() []bool {
	out := make([]bool, m.lanes)
	for i := range out {
		out[i] = m.Test(i)
	}
	return out
}

// Clone returns a mask with its own register holding the same lanes.
func (m Mask[T]) Clone() Mask[T] {
	out := NewMask[T](m.lanes)
	copy(out.reg, m.reg)
	return out
}

// AnyOf reports whether any lane is true.
func (m Mask[T]) AnyOf() bool {
	return FoldMask(func(acc, b bool) bool { return acc || b }, false, m)
}

// AllOf reports whether every lane is true.
func (m Mask[T]) AllOf() bool {
	return FoldMask(func(acc, b bool) bool { return acc && b }, true, m)
}

// NoneOf reports whether no lane is true.
func (m Mask[T]) NoneOf() bool {
	return !m.AnyOf()
}

// CountTrue returns the number of true lanes.
func (m Mask[T]) CountTrue() int {
	return FoldMask(func(acc int, b bool) int {
		if b {
			return acc + 1
		}
		return acc
	}, 0, m)
}

func (m Mask[T]) setBool(i int, b bool) {
	if b {
		m.setLaneWord(i, 1, 0)
	} else {
		m.setLaneWord(i, 0, 0)
	}
}

// laneWord reads the raw mask word of lane i. The hi half is only
// meaningful for 16-byte lanes.
func (m Mask[T]) laneWord(i int) (lo, hi uint64) {
	switch sizeOf[T]() {
	case 1:
		return uint64(viewAs[uint8](m.reg, m.lanes)[i]), 0
	case 2:
		return uint64(viewAs[uint16](m.reg, m.lanes)[i]), 0
	case 4:
		return uint64(viewAs[uint32](m.reg, m.lanes)[i]), 0
	case 8:
		return viewAs[uint64](m.reg, m.lanes)[i], 0
	case 16:
		w := viewAs[Int128](m.reg, m.lanes)[i]
		return w.Lo, w.Hi
	default:
		return 0, 0
	}
}

// setLaneWord writes the raw mask word of lane i, truncating to the
// lane width.
func (m Mask[T]) setLaneWord(i int, lo, hi uint64) {
	switch sizeOf[T]() {
	case 1:
		viewAs[uint8](m.reg, m.lanes)[i] = uint8(lo)
	case 2:
		viewAs[uint16](m.reg, m.lanes)[i] = uint16(lo)
	case 4:
		viewAs[uint32](m.reg, m.lanes)[i] = uint32(lo)
	case 8:
		viewAs[uint64](m.reg, m.lanes)[i] = lo
	case 16:
		viewAs[Int128](m.reg, m.lanes)[i] = Int128{Lo: lo, Hi: hi}
	}
}

// viewAs views a register as n elements of E.
func viewAs[E any](reg []byte, n int) []E {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*E)(unsafe.Pointer(&reg[0])), n)
}
