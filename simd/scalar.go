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

import "math"

// Scalar helpers for the full Lanes constraint. Int128 has no native
// operators, so these dispatch through any() the same way the wider
// arithmetic is written; Floats- or Integers-constrained call sites use
// the operators directly instead.

func addScalar[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case Int128:
		return any(av.Add(any(b).(Int128))).(T)
	case float32:
		return any(av + any(b).(float32)).(T)
	case float64:
		return any(av + any(b).(float64)).(T)
	case int8:
		return any(av + any(b).(int8)).(T)
	case int16:
		return any(av + any(b).(int16)).(T)
	case int32:
		return any(av + any(b).(int32)).(T)
	case int64:
		return any(av + any(b).(int64)).(T)
	case uint8:
		return any(av + any(b).(uint8)).(T)
	case uint16:
		return any(av + any(b).(uint16)).(T)
	case uint32:
		return any(av + any(b).(uint32)).(T)
	case uint64:
		return any(av + any(b).(uint64)).(T)
	default:
		return a
	}
}

func subScalar[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case Int128:
		return any(av.Sub(any(b).(Int128))).(T)
	case float32:
		return any(av - any(b).(float32)).(T)
	case float64:
		return any(av - any(b).(float64)).(T)
	case int8:
		return any(av - any(b).(int8)).(T)
	case int16:
		return any(av - any(b).(int16)).(T)
	case int32:
		return any(av - any(b).(int32)).(T)
	case int64:
		return any(av - any(b).(int64)).(T)
	case uint8:
		return any(av - any(b).(uint8)).(T)
	case uint16:
		return any(av - any(b).(uint16)).(T)
	case uint32:
		return any(av - any(b).(uint32)).(T)
	case uint64:
		return any(av - any(b).(uint64)).(T)
	default:
		return a
	}
}

func mulScalar[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case Int128:
		return any(av.Mul(any(b).(Int128))).(T)
	case float32:
		return any(av * any(b).(float32)).(T)
	case float64:
		return any(av * any(b).(float64)).(T)
	case int8:
		return any(av * any(b).(int8)).(T)
	case int16:
		return any(av * any(b).(int16)).(T)
	case int32:
		return any(av * any(b).(int32)).(T)
	case int64:
		return any(av * any(b).(int64)).(T)
	case uint8:
		return any(av * any(b).(uint8)).(T)
	case uint16:
		return any(av * any(b).(uint16)).(T)
	case uint32:
		return any(av * any(b).(uint32)).(T)
	case uint64:
		return any(av * any(b).(uint64)).(T)
	default:
		return a
	}
}

func negScalar[T Lanes](a T) T {
	switch av := any(a).(type) {
	case Int128:
		return any(av.Neg()).(T)
	case float32:
		return any(-av).(T)
	case float64:
		return any(-av).(T)
	case int8:
		return any(-av).(T)
	case int16:
		return any(-av).(T)
	case int32:
		return any(-av).(T)
	case int64:
		return any(-av).(T)
	case uint8:
		return any(-av).(T)
	case uint16:
		return any(-av).(T)
	case uint32:
		return any(-av).(T)
	case uint64:
		return any(-av).(T)
	default:
		return a
	}
}

func absScalar[T Lanes](a T) T {
	switch av := any(a).(type) {
	case Int128:
		return any(av.Abs()).(T)
	case float32:
		return any(float32(math.Abs(float64(av)))).(T)
	case float64:
		return any(math.Abs(av)).(T)
	case int8:
		if av < 0 {
			return any(-av).(T)
		}
		return a
	case int16:
		if av < 0 {
			return any(-av).(T)
		}
		return a
	case int32:
		if av < 0 {
			return any(-av).(T)
		}
		return a
	case int64:
		if av < 0 {
			return any(-av).(T)
		}
		return a
	default:
		// Unsigned kinds are their own absolute value.
		return a
	}
}

func lessScalar[T Lanes](a, b T) bool {
	switch av := any(a).(type) {
	case Int128:
		return av.Cmp(any(b).(Int128)) < 0
	case float32:
		return av < any(b).(float32)
	case float64:
		return av < any(b).(float64)
	case int8:
		return av < any(b).(int8)
	case int16:
		return av < any(b).(int16)
	case int32:
		return av < any(b).(int32)
	case int64:
		return av < any(b).(int64)
	case uint8:
		return av < any(b).(uint8)
	case uint16:
		return av < any(b).(uint16)
	case uint32:
		return av < any(b).(uint32)
	case uint64:
		return av < any(b).(uint64)
	default:
		return false
	}
}

func minScalar[T Lanes](a, b T) T {
	if lessScalar(b, a) {
		return b
	}
	return a
}

func maxScalar[T Lanes](a, b T) T {
	if lessScalar(a, b) {
		return b
	}
	return a
}
