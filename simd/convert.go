package simd

// Two distinct cross-family casts exist: Convert is the elementwise,
// value-preserving numeric conversion (the same truncation rule as a
// scalar cast: toward zero for float to int, exact for widening);
// BitCast reinterprets register bytes with no value transformation.
// They are not interchangeable: for differing element kinds of equal
// byte width the results differ.

// Convert value-converts every lane of v to the target element type.
// Source and target lane counts are identical by construction.
func Convert[To, From Lanes](v Vec[From]) Vec[To] {
	return Transform(convertScalar[To, From], v)
}

// ConvertMask maps a mask's canonical 0/1 lanes into a numeric vector.
// The all-bits-set compatibility encoding never participates here; feed
// MakeGCCCompatible output through BitCast instead if raw bits are
// wanted.
func ConvertMask[To, T Lanes](m Mask[T]) Vec[To] {
	out := New[To](m.lanes)
	od := out.data()
	var one, zero To
	one = fromUint[To](1)
	for i := range od {
		if m.Test(i) {
			od[i] = one
		} else {
			od[i] = zero
		}
	}
	return out
}

// ComplexToReal flattens a complex vector into a real vector with twice
// the lane count, mapping each lane's real and imaginary parts to
// adjacent output lanes in real-then-imaginary order.
func ComplexToReal[To Lanes, T Floats](v CVec[T]) Vec[To] {
	out := New[To](2 * v.Lanes())
	od := out.data()
	rd, id := v.re.data(), v.im.data()
	for i := range rd {
		od[2*i] = convertScalar[To](rd[i])
		od[2*i+1] = convertScalar[To](id[i])
	}
	return out
}

// RealToComplex is the reverse mapping: the source lane count must be
// exactly twice the target's, with adjacent real,imag input pairs.
func RealToComplex[T Floats, From Lanes](v Vec[From]) CVec[T] {
	if v.lanes%2 != 0 {
		panic(&ShapeError{Op: "RealToComplex", Want: v.lanes * 2, Got: v.lanes})
	}
	out := NewC[T](v.lanes / 2)
	vd := v.data()
	or, oi := out.re.data(), out.im.data()
	for i := range or {
		or[i] = convertScalar[T](vd[2*i])
		oi[i] = convertScalar[T](vd[2*i+1])
	}
	return out
}

// BitCast reinterprets the register bytes of v as lanes of To. The two
// register types must have identical total byte size; the lane count of
// the result follows from the target element width. Values carry over
// bit-for-bit, including encodings the target family considers
// meaningless.
func BitCast[To, From Lanes](v Vec[From]) Vec[To] {
	size := len(v.reg)
	elem := sizeOf[To]()
	if size%elem != 0 {
		panic(&ShapeError{Op: "BitCast", Want: size, Got: elem})
	}
	lanes := size / elem
	shape := mustShape(KindOf[To](), lanes)
	if shape.Size != size {
		panic(&ShapeError{Op: "BitCast", Want: shape.Size, Got: size})
	}
	return LoadRaw[To](v.reg, lanes)
}

// BitCastToMask reinterprets a numeric register as a boolean register
// of equal byte size. No normalization happens: the caller must
// understand the mask family's truth encoding, so lanes that are not
// 0 or 1 make the result unsuitable for the 0/1 predicates.
func BitCastToMask[To, From Lanes](v Vec[From]) Mask[To] {
	m := NewMask[To](len(v.reg) / sizeOf[To]())
	if len(m.reg) != len(v.reg) {
		panic(&ShapeError{Op: "BitCastToMask", Want: len(m.reg), Got: len(v.reg)})
	}
	copy(m.reg, v.reg)
	return m
}

// BitCastMask reinterprets a boolean register as a numeric register of
// equal byte size.
func BitCastMask[To, T Lanes](m Mask[T]) Vec[To] {
	elem := sizeOf[To]()
	if len(m.reg)%elem != 0 {
		panic(&ShapeError{Op: "BitCastMask", Want: len(m.reg), Got: elem})
	}
	return LoadRaw[To](m.reg, len(m.reg)/elem)
}

// convertScalar converts one lane value with scalar-cast semantics.
func convertScalar[To, From Lanes](x From) To {
	switch xv := any(x).(type) {
	case float32:
		return fromFloat[To](float64(xv))
	case float64:
		return fromFloat[To](xv)
	case int8:
		return fromInt[To](int64(xv))
	case int16:
		return fromInt[To](int64(xv))
	case int32:
		return fromInt[To](int64(xv))
	case int64:
		return fromInt[To](xv)
	case uint8:
		return fromUint[To](uint64(xv))
	case uint16:
		return fromUint[To](uint64(xv))
	case uint32:
		return fromUint[To](uint64(xv))
	case uint64:
		return fromUint[To](xv)
	case Int128:
		return fromInt128[To](xv)
	default:
		var zero To
		return zero
	}
}

func fromFloat[To Lanes](x float64) To {
	var zero To
	switch any(zero).(type) {
	case float32:
		return any(float32(x)).(To)
	case float64:
		return any(x).(To)
	case int8:
		return any(int8(x)).(To)
	case int16:
		return any(int16(x)).(To)
	case int32:
		return any(int32(x)).(To)
	case int64:
		return any(int64(x)).(To)
	case uint8:
		return any(uint8(x)).(To)
	case uint16:
		return any(uint16(x)).(To)
	case uint32:
		return any(uint32(x)).(To)
	case uint64:
		return any(uint64(x)).(To)
	case Int128:
		return any(Int128FromFloat64(x)).(To)
	default:
		return zero
	}
}

func fromInt[To Lanes](x int64) To {
	var zero To
	switch any(zero).(type) {
	case float32:
		return any(float32(x)).(To)
	case float64:
		return any(float64(x)).(To)
	case int8:
		return any(int8(x)).(To)
	case int16:
		return any(int16(x)).(To)
	case int32:
		return any(int32(x)).(To)
	case int64:
		return any(x).(To)
	case uint8:
		return any(uint8(x)).(To)
	case uint16:
		return any(uint16(x)).(To)
	case uint32:
		return any(uint32(x)).(To)
	case uint64:
		return any(uint64(x)).(To)
	case Int128:
		return any(Int128FromInt64(x)).(To)
	default:
		return zero
	}
}

func fromUint[To Lanes](x uint64) To {
	var zero To
	switch any(zero).(type) {
	case float32:
		return any(float32(x)).(To)
	case float64:
		return any(float64(x)).(To)
	case int8:
		return any(int8(x)).(To)
	case int16:
		return any(int16(x)).(To)
	case int32:
		return any(int32(x)).(To)
	case int64:
		return any(int64(x)).(To)
	case uint8:
		return any(uint8(x)).(To)
	case uint16:
		return any(uint16(x)).(To)
	case uint32:
		return any(uint32(x)).(To)
	case uint64:
		return any(x).(To)
	case Int128:
		return any(Int128FromUint64(x)).(To)
	default:
		return zero
	}
}

func fromInt128[To Lanes](x Int128) To {
	var zero To
	switch any(zero).(type) {
	case float32:
		return any(float32(x.Float64())).(To)
	case float64:
		return any(x.Float64()).(To)
	case Int128:
		return any(x).(To)
	default:
		// Narrowing to a native integer keeps the low 64 bits, the
		// same wraparound a scalar cast applies.
		return fromUint[To](x.Lo)
	}
}
