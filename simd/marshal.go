package simd

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Binary layout: a 6-byte header (magic "sv", version, element kind,
// family flag, lane count) followed by the lanes as little-endian
// elements in declaration order. Complex vectors store the real run
// first, then the imaginary run. This is the natural on-disk layout;
// the codec package wraps framing and compression around it.

const (
	marshalVersion = 1

	flagVec     = 0
	flagMask    = 1
	flagComplex = 2
)

func appendHeader(b []byte, kind Kind, flag byte, lanes int) []byte {
	return append(b, 's', 'v', marshalVersion, byte(kind), flag, byte(lanes))
}

func parseHeader(data []byte, wantKind Kind, wantFlag byte) (lanes int, rest []byte, err error) {
	if len(data) < 6 || data[0] != 's' || data[1] != 'v' {
		return 0, nil, fmt.Errorf("simd: unmarshal: bad magic")
	}
	if data[2] != marshalVersion {
		return 0, nil, fmt.Errorf("simd: unmarshal: unsupported version %d", data[2])
	}
	if Kind(data[3]) != wantKind {
		return 0, nil, fmt.Errorf("simd: unmarshal: element kind %s, want %s", Kind(data[3]), wantKind)
	}
	if data[4] != wantFlag {
		return 0, nil, fmt.Errorf("simd: unmarshal: family flag %d, want %d", data[4], wantFlag)
	}
	return int(data[5]), data[6:], nil
}

func appendWordLE(b []byte, w int, lo, hi uint64) []byte {
	switch w {
	case 1:
		return append(b, byte(lo))
	case 2:
		return binary.LittleEndian.AppendUint16(b, uint16(lo))
	case 4:
		return binary.LittleEndian.AppendUint32(b, uint32(lo))
	case 8:
		return binary.LittleEndian.AppendUint64(b, lo)
	case 16:
		b = binary.LittleEndian.AppendUint64(b, lo)
		return binary.LittleEndian.AppendUint64(b, hi)
	default:
		return b
	}
}

func readWordLE(b []byte, w int) (lo, hi uint64) {
	switch w {
	case 1:
		return uint64(b[0]), 0
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), 0
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), 0
	case 8:
		return binary.LittleEndian.Uint64(b), 0
	case 16:
		return binary.LittleEndian.Uint64(b), binary.LittleEndian.Uint64(b[8:])
	default:
		return 0, 0
	}
}

func scalarFromBits[T Lanes](lo, hi uint64) T {
	var zero T
	switch any(zero).(type) {
	case Int128:
		return any(Int128{Lo: lo, Hi: hi}).(T)
	case float32:
		return any(math.Float32frombits(uint32(lo))).(T)
	case float64:
		return any(math.Float64frombits(lo)).(T)
	case int8:
		return any(int8(lo)).(T)
	case int16:
		return any(int16(lo)).(T)
	case int32:
		return any(int32(lo)).(T)
	case int64:
		return any(int64(lo)).(T)
	case uint8:
		return any(uint8(lo)).(T)
	case uint16:
		return any(uint16(lo)).(T)
	case uint32:
		return any(uint32(lo)).(T)
	case uint64:
		return any(lo).(T)
	default:
		return zero
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vec[T]) MarshalBinary() ([]byte, error) {
	w := sizeOf[T]()
	out := appendHeader(make([]byte, 0, 6+v.lanes*w), KindOf[T](), flagVec, v.lanes)
	for _, x := range v.data() {
		lo, hi, _ := laneBits(x)
		out = appendWordLE(out, w, lo, hi)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, replacing the
// receiver with a freshly allocated vector.
func (v *Vec[T]) UnmarshalBinary(data []byte) error {
	lanes, rest, err := parseHeader(data, KindOf[T](), flagVec)
	if err != nil {
		return err
	}
	w := sizeOf[T]()
	if len(rest) != lanes*w {
		return fmt.Errorf("simd: unmarshal: payload %d bytes, want %d", len(rest), lanes*w)
	}
	out := New[T](lanes)
	od := out.data()
	for i := range od {
		lo, hi := readWordLE(rest[i*w:], w)
		od[i] = scalarFromBits[T](lo, hi)
	}
	*v = out
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. Mask lanes are
// stored as full-width 0/1 words, matching the register layout.
func (m Mask[T]) MarshalBinary() ([]byte, error) {
	w := sizeOf[T]()
	out := appendHeader(make([]byte, 0, 6+m.lanes*w), KindOf[T](), flagMask, m.lanes)
	for i := 0; i < m.lanes; i++ {
		lo, hi := m.laneWord(i)
		out = appendWordLE(out, w, lo, hi)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Stored words
// are normalized to 0/1 on the way in.
func (m *Mask[T]) UnmarshalBinary(data []byte) error {
	lanes, rest, err := parseHeader(data, KindOf[T](), flagMask)
	if err != nil {
		return err
	}
	w := sizeOf[T]()
	if len(rest) != lanes*w {
		return fmt.Errorf("simd: unmarshal: payload %d bytes, want %d", len(rest), lanes*w)
	}
	out := NewMask[T](lanes)
	for i := 0; i < lanes; i++ {
		lo, hi := readWordLE(rest[i*w:], w)
		out.setBool(i, lo|hi != 0)
	}
	*m = out
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler: the real run
// first, then the imaginary run.
func (v CVec[T]) MarshalBinary() ([]byte, error) {
	w := sizeOf[T]()
	lanes := v.Lanes()
	out := appendHeader(make([]byte, 0, 6+2*lanes*w), KindOf[T](), flagComplex, lanes)
	for _, x := range v.re.data() {
		lo, hi, _ := laneBits(x)
		out = appendWordLE(out, w, lo, hi)
	}
	for _, x := range v.im.data() {
		lo, hi, _ := laneBits(x)
		out = appendWordLE(out, w, lo, hi)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *CVec[T]) UnmarshalBinary(data []byte) error {
	lanes, rest, err := parseHeader(data, KindOf[T](), flagComplex)
	if err != nil {
		return err
	}
	w := sizeOf[T]()
	if len(rest) != 2*lanes*w {
		return fmt.Errorf("simd: unmarshal: payload %d bytes, want %d", len(rest), 2*lanes*w)
	}
	out := NewC[T](lanes)
	or, oi := out.re.data(), out.im.data()
	for i := range or {
		lo, hi := readWordLE(rest[i*w:], w)
		or[i] = scalarFromBits[T](lo, hi)
	}
	rest = rest[lanes*w:]
	for i := range oi {
		lo, hi := readWordLE(rest[i*w:], w)
		oi[i] = scalarFromBits[T](lo, hi)
	}
	*v = out
	return nil
}
