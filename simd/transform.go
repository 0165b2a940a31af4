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

// The transform engine is the single elementwise code path: every
// derived arithmetic, comparison, math-function, hashing and reduction
// operation is built on the functions in this file. The callable's
// return type selects the result family: an arithmetic return produces
// a Vec, a boolean return a Mask (TransformMask*), a component-pair
// return a CVec (TransformC*).
//
// The mapping from input lane index to output lane index is always the
// identity; the order lanes are visited in is unspecified, so the
// callable must not carry inter-lane state.

// Transform applies f to every lane of a and collects the results into
// a new vector.
func Transform[A, R Lanes](f func(A) R, a Vec[A]) Vec[R] {
	out := New[R](a.lanes)
	ad, od := a.data(), out.data()
	for i, x := range ad {
		od[i] = f(x)
	}
	return out
}

// Transform2 applies f to corresponding lanes of a and b, which must
// have equal lane counts (possibly different element types).
func Transform2[A, B, R Lanes](f func(A, B) R, a Vec[A], b Vec[B]) Vec[R] {
	checkLanes("Transform2", a.lanes, b.lanes)
	out := New[R](a.lanes)
	ad, bd, od := a.data(), b.data(), out.data()
	for i := range ad {
		od[i] = f(ad[i], bd[i])
	}
	return out
}

// Transform3 applies f to corresponding lanes of three vectors of equal
// lane count.
func Transform3[A, B, C, R Lanes](f func(A, B, C) R, a Vec[A], b Vec[B], c Vec[C]) Vec[R] {
	checkLanes("Transform3", a.lanes, b.lanes)
	checkLanes("Transform3", a.lanes, c.lanes)
	out := New[R](a.lanes)
	ad, bd, cd, od := a.data(), b.data(), c.data(), out.data()
	for i := range ad {
		od[i] = f(ad[i], bd[i], cd[i])
	}
	return out
}

// Transform4 applies f to corresponding lanes of four vectors of equal
// lane count.
func Transform4[A, B, C, D, R Lanes](f func(A, B, C, D) R, a Vec[A], b Vec[B], c Vec[C], d Vec[D]) Vec[R] {
	checkLanes("Transform4", a.lanes, b.lanes)
	checkLanes("Transform4", a.lanes, c.lanes)
	checkLanes("Transform4", a.lanes, d.lanes)
	out := New[R](a.lanes)
	ad, bd, cd, dd, od := a.data(), b.data(), c.data(), d.data(), out.data()
	for i := range ad {
		od[i] = f(ad[i], bd[i], cd[i], dd[i])
	}
	return out
}

// TransformMask applies a boolean-returning f to every lane, producing
// a mask over A's element width.
func TransformMask[A Lanes](f func(A) bool, a Vec[A]) Mask[A] {
	out := NewMask[A](a.lanes)
	for i, x := range a.data() {
		out.setBool(i, f(x))
	}
	return out
}

// TransformMask2 applies a boolean-returning f to corresponding lanes
// of a and b.
func TransformMask2[A, B Lanes](f func(A, B) bool, a Vec[A], b Vec[B]) Mask[A] {
	checkLanes("TransformMask2", a.lanes, b.lanes)
	out := NewMask[A](a.lanes)
	ad, bd := a.data(), b.data()
	for i := range ad {
		out.setBool(i, f(ad[i], bd[i]))
	}
	return out
}

// TransformM applies f to every lane of a mask.
func TransformM[T Lanes](f func(bool) bool, m Mask[T]) Mask[T] {
	out := NewMask[T](m.lanes)
	for i := 0; i < m.lanes; i++ {
		out.setBool(i, f(m.Test(i)))
	}
	return out
}

// TransformM2 applies f to corresponding lanes of two masks of equal
// lane count.
func TransformM2[T Lanes](f func(bool, bool) bool, a, b Mask[T]) Mask[T] {
	checkLanes("TransformM2", a.lanes, b.lanes)
	out := NewMask[T](a.lanes)
	for i := 0; i < a.lanes; i++ {
		out.setBool(i, f(a.Test(i), b.Test(i)))
	}
	return out
}

// TransformC applies a component-pair f to every lane of a complex
// vector.
func TransformC[T Floats](f func(re, im T) (T, T), v CVec[T]) CVec[T] {
	out := NewC[T](v.Lanes())
	rd, id := v.re.data(), v.im.data()
	or, oi := out.re.data(), out.im.data()
	for i := range rd {
		or[i], oi[i] = f(rd[i], id[i])
	}
	return out
}

// TransformC2 applies a component-pair f to corresponding lanes of two
// complex vectors of equal lane count.
func TransformC2[T Floats](f func(ar, ai, br, bi T) (T, T), a, b CVec[T]) CVec[T] {
	checkLanes("TransformC2", a.Lanes(), b.Lanes())
	out := NewC[T](a.Lanes())
	ar, ai := a.re.data(), a.im.data()
	br, bi := b.re.data(), b.im.data()
	or, oi := out.re.data(), out.im.data()
	for i := range ar {
		or[i], oi[i] = f(ar[i], ai[i], br[i], bi[i])
	}
	return out
}

// TransformToC applies f to every lane of a real vector, producing a
// complex vector from the returned component pairs.
func TransformToC[A Lanes, T Floats](f func(A) (T, T), a Vec[A]) CVec[T] {
	out := NewC[T](a.lanes)
	or, oi := out.re.data(), out.im.data()
	for i, x := range a.data() {
		or[i], oi[i] = f(x)
	}
	return out
}

// Fold reduces a vector through the pointer proxies: acc starts at init
// and f folds in one lane at a time, front to back.
func Fold[T Lanes, R any](f func(R, T) R, init R, v Vec[T]) R {
	acc := init
	for p := v.Begin(); p.Less(v.End()); p = p.Next() {
		acc = f(acc, p.Get())
	}
	return acc
}

// FoldMask reduces a mask's truth lanes.
func FoldMask[T Lanes, R any](f func(R, bool) R, init R, m Mask[T]) R {
	acc := init
	for i := 0; i < m.lanes; i++ {
		acc = f(acc, m.Test(i))
	}
	return acc
}

// FoldC reduces a complex vector through its component pairs.
func FoldC[T Floats, R any](f func(R, T, T) R, init R, v CVec[T]) R {
	acc := init
	for p := v.Begin(); p.Less(v.End()); p = p.Next() {
		re, im := p.Deref().Get()
		acc = f(acc, re, im)
	}
	return acc
}
