// Package simd provides fixed-width packed lane vectors with uniform
// value semantics across element kinds and lane counts.
//
// A lane vector holds a compile-time-fixed number of homogeneous scalar
// lanes (integers, floats, a 128-bit extended integer, booleans, or
// complex pairs) inside an opaque, alignment-exact backing register.
// Lane vectors come in four families: Integral and Floating (Vec),
// Complex (CVec, stored as two parallel real registers), and Boolean
// (Mask, with a canonical 0/1 truth encoding per lane).
//
// Basic usage:
//
//	a := simd.Load([]int32{1, 2, 3, 4})
//	b := simd.Load([]int32{10, 20, 30, 40})
//
//	sum := simd.Add(a, b)       // {11, 22, 33, 44}
//	m := simd.Greater(a, b)     // boolean lanes, always 0/1
//
//	fmt.Println(sum)            // (11;22;33;44)
package simd

import "unsafe"

//go:generate go run github.com/amallia/simd-sub000/cmd/lanegen -output aliases_gen.go

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all native integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for every type that can occupy a lane.
// Int128 is the extended integer kind: it has no native Go arithmetic,
// so the scalar helpers dispatch on it explicitly.
type Lanes interface {
	Floats | Integers | Int128
}

// Kind identifies the element kind of a lane vector.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindInt128:
		return "int128"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Size returns the element size in bytes, or 0 for an invalid kind.
// KindBool reports 1: a standalone boolean element occupies one byte;
// boolean lane vectors store the mask-integer width of their companion
// element type instead.
func (k Kind) Size() int {
	switch k {
	case KindInt8, KindUint8, KindBool:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	case KindInt128:
		return 16
	default:
		return 0
	}
}

// IsInteger reports whether the kind is one of the integer kinds,
// including the extended Int128 kind.
func (k Kind) IsInteger() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindInt128,
		KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
	return false
}

// IsFloat reports whether the kind is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// KindOf returns the Kind for a lane type.
func KindOf[T Lanes]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case Int128:
		return KindInt128
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	default:
		return KindInvalid
	}
}

// sizeOf returns the lane size in bytes for a lane type.
func sizeOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
