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

// Package vmath is the elementwise math-function catalog for lane
// vectors. Every function is a one-line application of the transform
// engine with a scalar math callable.
package vmath

import (
	"math"

	"github.com/amallia/simd-sub000/simd"
)

// Exp computes e**x per lane.
func Exp[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Exp(float64(x))) }, v)
}

// Log computes the natural logarithm per lane.
func Log[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Log(float64(x))) }, v)
}

// Log2 computes the base-2 logarithm per lane.
func Log2[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Log2(float64(x))) }, v)
}

// Sqrt computes the square root per lane.
func Sqrt[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Sqrt(float64(x))) }, v)
}

// Sin computes the sine per lane.
func Sin[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Sin(float64(x))) }, v)
}

// Cos computes the cosine per lane.
func Cos[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Cos(float64(x))) }, v)
}

// Tanh computes the hyperbolic tangent per lane.
func Tanh[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Tanh(float64(x))) }, v)
}

// Sigmoid computes 1/(1+e**-x) per lane.
func Sigmoid[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(1.0 / (1.0 + math.Exp(-float64(x)))) }, v)
}

// Pow computes x**y per corresponding lane pair.
func Pow[T simd.Floats](x, y simd.Vec[T]) simd.Vec[T] {
	return simd.Transform2(func(a, b T) T { return T(math.Pow(float64(a), float64(b))) }, x, y)
}

// Round rounds each lane to the nearest integer, halves away from zero.
func Round[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Round(float64(x))) }, v)
}

// Trunc truncates each lane toward zero.
func Trunc[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Trunc(float64(x))) }, v)
}

// Ceil rounds each lane up toward positive infinity.
func Ceil[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Ceil(float64(x))) }, v)
}

// Floor rounds each lane down toward negative infinity.
func Floor[T simd.Floats](v simd.Vec[T]) simd.Vec[T] {
	return simd.Transform(func(x T) T { return T(math.Floor(float64(x))) }, v)
}

// AbsC computes the complex magnitude per lane, producing a real
// vector.
func AbsC[T simd.Floats](v simd.CVec[T]) simd.Vec[T] {
	re := v.Real()
	im := v.Imag()
	return simd.Transform2(func(r, i T) T {
		return T(math.Hypot(float64(r), float64(i)))
	}, re, im)
}

// ExpC computes the complex exponential per lane.
func ExpC[T simd.Floats](v simd.CVec[T]) simd.CVec[T] {
	return simd.TransformC(func(re, im T) (T, T) {
		scale := math.Exp(float64(re))
		return T(scale * math.Cos(float64(im))), T(scale * math.Sin(float64(im)))
	}, v)
}
