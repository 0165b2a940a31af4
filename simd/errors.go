package simd

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory is returned when an allocation cannot be satisfied
	// and no failure handler helps.
	ErrOutOfMemory = errors.New("simd: out of memory")

	// ErrLaneOutOfRange is returned by the bounds-checked lane accessors
	// when the index is not in [0, lanes).
	ErrLaneOutOfRange = errors.New("simd: lane index out of range")

	// ErrInputUnderflow is returned by Scan when the input contains fewer
	// lane values than the destination vector. Lanes parsed before the
	// underflow remain written.
	ErrInputUnderflow = errors.New("simd: input underflow")

	// ErrNoRepresentation is returned by the representation registry when
	// no backing register exists for an (element kind, lane count) pair.
	ErrNoRepresentation = errors.New("simd: no register representation")

	// ErrNoFamily is returned by FamilyOf for an unsupported
	// (element kind, category) combination.
	ErrNoFamily = errors.New("simd: no lane-vector family")

	// ErrLengthMismatch is returned when paired vector slices do not
	// have the same length.
	ErrLengthMismatch = errors.New("simd: slice length mismatch")
)

// ShapeError describes a lane-count or byte-size mismatch between the
// operands of a conversion, cast, or multi-vector transform. Shape
// mismatches are programming errors: the operations panic with a
// ShapeError rather than returning it.
type ShapeError struct {
	Op   string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("simd: %s: shape mismatch: want %d, got %d", e.Op, e.Want, e.Got)
}

// checkLanes panics unless got equals want.
func checkLanes(op string, want, got int) {
	if want != got {
		panic(&ShapeError{Op: op, Want: want, Got: got})
	}
}
