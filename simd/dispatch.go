package simd

import (
	"os"
	"strconv"
)

// TruthEncoding describes how a raw comparison register encodes "true"
// per lane. SIMD compare instructions produce all-bits-set lanes; the
// scalar path produces the literal value 1. Mask construction
// normalizes either encoding to canonical 0/1 lanes.
type TruthEncoding uint8

const (
	// TruthLiteralOne: true lanes hold the value 1.
	TruthLiteralOne TruthEncoding = iota

	// TruthAllBits: true lanes hold all bits set.
	TruthAllBits
)

// String returns a human-readable name for the encoding.
func (e TruthEncoding) String() string {
	if e == TruthAllBits {
		return "all-bits"
	}
	return "literal-one"
}

// AccelLevel identifies the register technology detected for this
// process. Lane counts and element kinds stay fixed per value; the
// level only selects the raw truth encoding and the reported name.
type AccelLevel int

const (
	AccelScalar AccelLevel = iota
	AccelSSE2
	AccelAVX2
	AccelAVX512
	AccelNEON
)

// String returns a human-readable name for the level.
func (a AccelLevel) String() string {
	switch a {
	case AccelSSE2:
		return "sse2"
	case AccelAVX2:
		return "avx2"
	case AccelAVX512:
		return "avx512"
	case AccelNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel AccelLevel
	currentTruth TruthEncoding
)

// CurrentLevel returns the detected register technology.
func CurrentLevel() AccelLevel {
	return currentLevel
}

// CurrentTruth returns the truth encoding raw comparison registers use
// on the current backend.
func CurrentTruth() TruthEncoding {
	return currentTruth
}

// NoAccelEnv checks the SIMD_NO_ACCEL environment variable. When set,
// the scalar backend (and its literal-one truth encoding) is used
// regardless of CPU capabilities. Useful for testing and debugging.
func NoAccelEnv() bool {
	val := os.Getenv("SIMD_NO_ACCEL")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = AccelScalar
	currentTruth = TruthLiteralOne
}
