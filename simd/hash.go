package simd

import "math"

// hashPhi is the 64-bit golden-ratio constant used by the seed-mixing
// combiner.
const hashPhi = 0x9e3779b97f4a7c15

// mix64 is a splitmix64-style avalanche over one lane's bits.
func mix64(x uint64) uint64 {
	x += hashPhi
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// hashCombine folds one lane hash into the running hash.
func hashCombine(h, k uint64) uint64 {
	return h ^ (k + hashPhi + (h << 6) + (h >> 2))
}

// laneBits returns a lane's raw bit pattern as one or two 64-bit words.
// wide is true only for 128-bit lanes, which are decomposed into two
// halves before combination.
func laneBits[T Lanes](x T) (lo, hi uint64, wide bool) {
	switch xv := any(x).(type) {
	case Int128:
		return xv.Lo, xv.Hi, true
	case float32:
		return uint64(math.Float32bits(xv)), 0, false
	case float64:
		return math.Float64bits(xv), 0, false
	case int8:
		return uint64(uint8(xv)), 0, false
	case int16:
		return uint64(uint16(xv)), 0, false
	case int32:
		return uint64(uint32(xv)), 0, false
	case int64:
		return uint64(xv), 0, false
	case uint8:
		return uint64(xv), 0, false
	case uint16:
		return uint64(xv), 0, false
	case uint32:
		return uint64(xv), 0, false
	case uint64:
		return xv, 0, false
	default:
		return 0, 0, false
	}
}

func hashLane[T Lanes](x T) uint64 {
	lo, hi, wide := laneBits(x)
	h := mix64(lo)
	if wide {
		h = hashCombine(h, mix64(hi))
	}
	return h
}

// HashVec hashes a vector: a per-lane hash vector is produced through
// the transform engine, then folded into one scalar with the
// seed-mixing combiner. Vectors with identical lane contents hash
// identically.
func HashVec[T Lanes](seed uint64, v Vec[T]) uint64 {
	lanes := Transform(hashLane[T], v)
	return Fold(hashCombine, seed, lanes)
}

// HashMask hashes a boolean vector's canonical 0/1 lanes.
func HashMask[T Lanes](seed uint64, m Mask[T]) uint64 {
	return FoldMask(func(h uint64, b bool) uint64 {
		var x uint64
		if b {
			x = 1
		}
		return hashCombine(h, mix64(x))
	}, seed, m)
}

// HashCVec hashes a complex vector: the real run first, then the
// imaginary run, matching the split-component layout.
func HashCVec[T Floats](seed uint64, v CVec[T]) uint64 {
	return HashVec(HashVec(seed, v.re), v.im)
}
