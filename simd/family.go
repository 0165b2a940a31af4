package simd

import "fmt"

// Category is the semantic category requested for a lane-vector type.
type Category uint8

const (
	CategoryArithmetic Category = iota
	CategoryComplex
	CategoryBoolean
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryArithmetic:
		return "arithmetic"
	case CategoryComplex:
		return "complex"
	case CategoryBoolean:
		return "boolean"
	default:
		return "invalid"
	}
}

// Family identifies one of the four lane-vector families, with
// FamilyNone as the explicit "no such type" sentinel.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyIntegral
	FamilyFloating
	FamilyComplex
	FamilyBoolean
)

// String returns a human-readable name for the family.
func (f Family) String() string {
	switch f {
	case FamilyIntegral:
		return "integral"
	case FamilyFloating:
		return "floating"
	case FamilyComplex:
		return "complex"
	case FamilyBoolean:
		return "boolean"
	default:
		return "none"
	}
}

// FamilyOf maps an (element kind, category) pair to its lane-vector
// family:
//
//   - a boolean element with an integral mask width selects the Boolean
//     family; a boolean element with anything else is invalid,
//   - an integer kind with the arithmetic category selects Integral,
//   - a floating kind with the arithmetic category selects Floating,
//   - a floating kind with the complex category selects Complex
//     (the complex value is built over the unwrapped floating kind).
//
// Every other combination returns FamilyNone and ErrNoFamily so that
// callers fail loudly instead of picking an unintended family.
func FamilyOf(kind Kind, category Category) (Family, error) {
	switch {
	case kind == KindBool && category == CategoryBoolean:
		return FamilyBoolean, nil
	case kind == KindBool:
		return FamilyNone, fmt.Errorf("%w: bool with %s category", ErrNoFamily, category)
	case kind.IsInteger() && category == CategoryArithmetic:
		return FamilyIntegral, nil
	case kind.IsFloat() && category == CategoryArithmetic:
		return FamilyFloating, nil
	case kind.IsFloat() && category == CategoryComplex:
		return FamilyComplex, nil
	default:
		return FamilyNone, fmt.Errorf("%w: %s with %s category", ErrNoFamily, kind, category)
	}
}
