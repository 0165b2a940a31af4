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

// Derived operations. Every one of these is an application of the
// transform engine; none iterates lanes on its own.

// Add performs lanewise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return Transform2(addScalar[T], a, b)
}

// Sub performs lanewise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return Transform2(subScalar[T], a, b)
}

// Mul performs lanewise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return Transform2(mulScalar[T], a, b)
}

// Div performs lanewise division of floating vectors.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return Transform2(func(x, y T) T { return x / y }, a, b)
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return Transform(negScalar[T], v)
}

// Abs replaces every lane by its absolute value.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return Transform(absScalar[T], v)
}

// Min takes the lanewise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return Transform2(minScalar[T], a, b)
}

// Max takes the lanewise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return Transform2(maxScalar[T], a, b)
}

// And performs lanewise bitwise AND on integer vectors.
func And[T Integers](a, b Vec[T]) Vec[T] {
	return Transform2(func(x, y T) T { return x & y }, a, b)
}

// Or performs lanewise bitwise OR on integer vectors.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	return Transform2(func(x, y T) T { return x | y }, a, b)
}

// Xor performs lanewise bitwise XOR on integer vectors.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	return Transform2(func(x, y T) T { return x ^ y }, a, b)
}

// AndNot computes a &^ b lanewise on integer vectors.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	return Transform2(func(x, y T) T { return x &^ y }, a, b)
}

// ShiftLeft shifts every lane left by n bits.
func ShiftLeft[T Integers](v Vec[T], n uint) Vec[T] {
	return Transform(func(x T) T { return x << n }, v)
}

// ShiftRight shifts every lane right by n bits (arithmetic for signed
// element types, logical for unsigned).
func ShiftRight[T Integers](v Vec[T], n uint) Vec[T] {
	return Transform(func(x T) T { return x >> n }, v)
}

// Equal compares lanes for equality, producing a boolean vector.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return TransformMask2(func(x, y T) bool { return x == y }, a, b)
}

// NotEqual compares lanes for inequality.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return TransformMask2(func(x, y T) bool { return x != y }, a, b)
}

// Less compares a < b lanewise.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	return TransformMask2(lessScalar[T], a, b)
}

// LessEqual compares a <= b lanewise.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return TransformMask2(func(x, y T) bool { return !lessScalar(y, x) }, a, b)
}

// Greater compares a > b lanewise.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	return TransformMask2(func(x, y T) bool { return lessScalar(y, x) }, a, b)
}

// GreaterEqual compares a >= b lanewise.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return TransformMask2(func(x, y T) bool { return !lessScalar(x, y) }, a, b)
}

// MaskAnd, MaskOr, MaskXor and MaskNot are the boolean-family logic
// operations.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return TransformM2(func(x, y bool) bool { return x && y }, a, b)
}

func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return TransformM2(func(x, y bool) bool { return x || y }, a, b)
}

func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	return TransformM2(func(x, y bool) bool { return x != y }, a, b)
}

func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	return TransformM(func(x bool) bool { return !x }, m)
}

// IfThenElse selects yes-lanes where the mask is true and no-lanes
// elsewhere.
func IfThenElse[T Lanes](m Mask[T], yes, no Vec[T]) Vec[T] {
	checkLanes("IfThenElse", m.lanes, yes.lanes)
	sel := ConvertMask[T](m)
	var zero T
	return Transform3(func(s, y, n T) T {
		if s != zero {
			return y
		}
		return n
	}, sel, yes, no)
}

// ReduceSum folds all lanes with addition.
func ReduceSum[T Lanes](v Vec[T]) T {
	var zero T
	return Fold(addScalar[T], zero, v)
}

// ReduceMin returns the smallest lane value.
func ReduceMin[T Lanes](v Vec[T]) T {
	return Fold(minScalar[T], v.Get(0), v)
}

// ReduceMax returns the largest lane value.
func ReduceMax[T Lanes](v Vec[T]) T {
	return Fold(maxScalar[T], v.Get(0), v)
}

// AddC performs lanewise complex addition.
func AddC[T Floats](a, b CVec[T]) CVec[T] {
	return TransformC2(func(ar, ai, br, bi T) (T, T) {
		return ar + br, ai + bi
	}, a, b)
}

// SubC performs lanewise complex subtraction.
func SubC[T Floats](a, b CVec[T]) CVec[T] {
	return TransformC2(func(ar, ai, br, bi T) (T, T) {
		return ar - br, ai - bi
	}, a, b)
}

// MulC performs lanewise complex multiplication with the direct
// cross-term component formula.
func MulC[T Floats](a, b CVec[T]) CVec[T] {
	return TransformC2(func(ar, ai, br, bi T) (T, T) {
		return ar*br - ai*bi, ar*bi + ai*br
	}, a, b)
}

// DivC performs lanewise complex division.
func DivC[T Floats](a, b CVec[T]) CVec[T] {
	return TransformC2(func(ar, ai, br, bi T) (T, T) {
		den := br*br + bi*bi
		return (ar*br + ai*bi) / den, (ai*br - ar*bi) / den
	}, a, b)
}

// NegC negates both components of every lane.
func NegC[T Floats](v CVec[T]) CVec[T] {
	return TransformC(func(re, im T) (T, T) { return -re, -im }, v)
}

// Conj conjugates every lane.
func Conj[T Floats](v CVec[T]) CVec[T] {
	return TransformC(func(re, im T) (T, T) { return re, -im }, v)
}

// EqualC compares complex lanes for equality (both components equal),
// producing a boolean vector over the component width.
func EqualC[T Floats](a, b CVec[T]) Mask[T] {
	re := Equal(a.re, b.re)
	im := Equal(a.im, b.im)
	return MaskAnd(re, im)
}
