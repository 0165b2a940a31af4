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

// Lane proxies are the only sanctioned indirection into a backing
// register. A vector never hands out a raw pointer to a lane, because
// the register's lane layout is backend-defined; a proxy is an
// (owner, index) pair that forwards reads and writes to exactly one
// lane while preserving array-like ergonomics.
//
// Proxies are non-owning views: their validity ends with the vector
// they index into.

// Ref is a reference proxy bound to one lane of a vector.
type Ref[T Lanes] struct {
	v Vec[T]
	i int
}

// Get reads the referenced lane.
func (r Ref[T]) Get() T {
	return r.v.Get(r.i)
}

// Set writes the referenced lane. Only that lane is mutated.
func (r Ref[T]) Set(x T) {
	r.v.Set(r.i, x)
}

// Equal compares the referenced lane values, not the proxy identities.
func (r Ref[T]) Equal(o Ref[T]) bool {
	return r.Get() == o.Get()
}

// Ptr is a pointer proxy: a random-access iterator over the lanes of a
// vector. All iterator arithmetic is computed purely on the index.
type Ptr[T Lanes] struct {
	v Vec[T]
	i int
}

// Ref returns a reference proxy to lane i.
func (v Vec[T]) Ref(i int) Ref[T] {
	return Ref[T]{v: v, i: i}
}

// Begin returns a pointer proxy to the first lane.
func (v Vec[T]) Begin() Ptr[T] {
	return Ptr[T]{v: v}
}

// End returns the past-the-end pointer proxy. It must not be
// dereferenced.
func (v Vec[T]) End() Ptr[T] {
	return Ptr[T]{v: v, i: v.lanes}
}

// Deref returns the reference proxy for the current lane.
func (p Ptr[T]) Deref() Ref[T] {
	return Ref[T]{v: p.v, i: p.i}
}

// Get reads the current lane.
func (p Ptr[T]) Get() T {
	return p.v.Get(p.i)
}

// Set writes the current lane.
func (p Ptr[T]) Set(x T) {
	p.v.Set(p.i, x)
}

// Offset returns a proxy advanced by n lanes (n may be negative).
func (p Ptr[T]) Offset(n int) Ptr[T] {
	return Ptr[T]{v: p.v, i: p.i + n}
}

// Next returns a proxy advanced by one lane.
func (p Ptr[T]) Next() Ptr[T] {
	return p.Offset(1)
}

// Prev returns a proxy moved back by one lane.
func (p Ptr[T]) Prev() Ptr[T] {
	return p.Offset(-1)
}

// Distance returns the number of lanes from p to q.
func (p Ptr[T]) Distance(q Ptr[T]) int {
	return q.i - p.i
}

// Index returns the lane index the proxy points at.
func (p Ptr[T]) Index() int {
	return p.i
}

// Equal reports whether two proxies point at the same lane position.
func (p Ptr[T]) Equal(q Ptr[T]) bool {
	return p.i == q.i
}

// Less orders proxies by lane position.
func (p Ptr[T]) Less(q Ptr[T]) bool {
	return p.i < q.i
}

// CRef is a reference proxy into one lane of a complex vector. It binds
// both component registers and always reads and writes the real and
// imaginary parts together.
type CRef[T Floats] struct {
	v CVec[T]
	i int
}

// Get reads both components of the referenced lane.
func (r CRef[T]) Get() (re, im T) {
	return r.v.Get(r.i)
}

// Set writes both components of the referenced lane together.
func (r CRef[T]) Set(re, im T) {
	r.v.Set(r.i, re, im)
}

// Equal compares the referenced lane values.
func (r CRef[T]) Equal(o CRef[T]) bool {
	ar, ai := r.Get()
	br, bi := o.Get()
	return ar == br && ai == bi
}

// CPtr is the pointer proxy for complex vectors.
type CPtr[T Floats] struct {
	v CVec[T]
	i int
}

// Ref returns a reference proxy to lane i.
func (v CVec[T]) Ref(i int) CRef[T] {
	return CRef[T]{v: v, i: i}
}

// Begin returns a pointer proxy to the first lane.
func (v CVec[T]) Begin() CPtr[T] {
	return CPtr[T]{v: v}
}

// End returns the past-the-end pointer proxy.
func (v CVec[T]) End() CPtr[T] {
	return CPtr[T]{v: v, i: v.Lanes()}
}

// Deref returns the reference proxy for the current lane.
func (p CPtr[T]) Deref() CRef[T] {
	return CRef[T]{v: p.v, i: p.i}
}

// Offset returns a proxy advanced by n lanes.
func (p CPtr[T]) Offset(n int) CPtr[T] {
	return CPtr[T]{v: p.v, i: p.i + n}
}

// Next returns a proxy advanced by one lane.
func (p CPtr[T]) Next() CPtr[T] {
	return p.Offset(1)
}

// Prev returns a proxy moved back by one lane.
func (p CPtr[T]) Prev() CPtr[T] {
	return p.Offset(-1)
}

// Distance returns the number of lanes from p to q.
func (p CPtr[T]) Distance(q CPtr[T]) int {
	return q.i - p.i
}

// Equal reports whether two proxies point at the same lane position.
func (p CPtr[T]) Equal(q CPtr[T]) bool {
	return p.i == q.i
}

// Less orders proxies by lane position.
func (p CPtr[T]) Less(q CPtr[T]) bool {
	return p.i < q.i
}
