package simd

import (
	"fmt"
	"strconv"
	"strings"
)

// Lane vectors print as "(v0;v1;...;vn)" and scan the same shape back.
// Scanning goes through the checked per-lane mutator: if the input runs
// out of values before every lane is filled, ErrInputUnderflow is
// returned and the lanes parsed so far remain written, mirroring a
// recoverable stream-failure state.

// String renders the vector as (v0;v1;...;vn).
func (v Vec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.data() {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(formatScalar(x))
	}
	sb.WriteByte(')')
	return sb.String()
}

// String renders the mask's canonical 0/1 lanes as (b0;b1;...;bn).
func (m Mask[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < m.lanes; i++ {
		if i > 0 {
			sb.WriteByte(';')
		}
		if m.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// String renders the complex vector as (r0+i0i;r1+i1i;...).
func (v CVec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < v.Lanes(); i++ {
		if i > 0 {
			sb.WriteByte(';')
		}
		s := strconv.FormatComplex(v.GetComplex(i), 'g', -1, 128)
		sb.WriteString(strings.Trim(s, "()"))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Scan implements fmt.Scanner for the (v0;v1;...;vn) format. The
// vector keeps its lane count; the input must supply exactly that many
// values.
func (v Vec[T]) Scan(state fmt.ScanState, verb rune) error {
	return scanLanes(state, verb, v.lanes, func(i int, tok string) error {
		x, err := parseScalar[T](tok)
		if err != nil {
			return err
		}
		return v.SetAt(i, x)
	})
}

// Scan implements fmt.Scanner for masks; lanes parse as 0/1 or
// true/false.
func (m Mask[T]) Scan(state fmt.ScanState, verb rune) error {
	return scanLanes(state, verb, m.lanes, func(i int, tok string) error {
		b, err := strconv.ParseBool(tok)
		if err != nil {
			return fmt.Errorf("simd: scan: bad truth value %q: %w", tok, err)
		}
		return m.SetBoolAt(i, b)
	})
}

// Scan implements fmt.Scanner for complex vectors; lanes parse in Go
// complex syntax (e.g. 1+2i).
func (v CVec[T]) Scan(state fmt.ScanState, verb rune) error {
	return scanLanes(state, verb, v.Lanes(), func(i int, tok string) error {
		c, err := strconv.ParseComplex(tok, 128)
		if err != nil {
			return fmt.Errorf("simd: scan: bad complex value %q: %w", tok, err)
		}
		return v.SetAt(i, T(real(c)), T(imag(c)))
	})
}

// scanLanes drives per-lane parsing of the (t0;t1;...;tn) shape.
func scanLanes(state fmt.ScanState, verb rune, lanes int, set func(i int, tok string) error) error {
	if verb != 'v' && verb != 's' {
		return fmt.Errorf("simd: scan: unsupported verb %q", verb)
	}
	state.SkipSpace()
	r, _, err := state.ReadRune()
	if err != nil {
		return fmt.Errorf("%w: missing opening parenthesis", ErrInputUnderflow)
	}
	if r != '(' {
		return fmt.Errorf("simd: scan: expected '(', got %q", r)
	}
	for i := 0; i < lanes; i++ {
		tok, err := state.Token(true, func(r rune) bool { return r != ';' && r != ')' })
		if err != nil {
			return fmt.Errorf("%w: lane %d of %d: %v", ErrInputUnderflow, i, lanes, err)
		}
		s := strings.TrimSpace(string(tok))
		if s == "" {
			return fmt.Errorf("%w: lane %d of %d", ErrInputUnderflow, i, lanes)
		}
		if err := set(i, s); err != nil {
			return err
		}
		r, _, err := state.ReadRune()
		if err != nil {
			return fmt.Errorf("%w: lane %d of %d: unterminated input", ErrInputUnderflow, i+1, lanes)
		}
		switch {
		case i == lanes-1 && r == ')':
			// done
		case i < lanes-1 && r == ';':
			// next lane
		case r == ')':
			return fmt.Errorf("%w: got %d of %d lanes", ErrInputUnderflow, i+1, lanes)
		default:
			return fmt.Errorf("simd: scan: unexpected %q after lane %d", r, i)
		}
	}
	return nil
}

func formatScalar[T Lanes](x T) string {
	switch xv := any(x).(type) {
	case Int128:
		return xv.String()
	case float32:
		return strconv.FormatFloat(float64(xv), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(xv, 'g', -1, 64)
	case int8:
		return strconv.FormatInt(int64(xv), 10)
	case int16:
		return strconv.FormatInt(int64(xv), 10)
	case int32:
		return strconv.FormatInt(int64(xv), 10)
	case int64:
		return strconv.FormatInt(xv, 10)
	case uint8:
		return strconv.FormatUint(uint64(xv), 10)
	case uint16:
		return strconv.FormatUint(uint64(xv), 10)
	case uint32:
		return strconv.FormatUint(uint64(xv), 10)
	case uint64:
		return strconv.FormatUint(xv, 10)
	default:
		return fmt.Sprint(x)
	}
}

func parseScalar[T Lanes](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case Int128:
		v, err := ParseInt128(s)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case float32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return zero, fmt.Errorf("simd: scan: %w", err)
		}
		return any(float32(v)).(T), nil
	case float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero, fmt.Errorf("simd: scan: %w", err)
		}
		return any(v).(T), nil
	case int8:
		v, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return zero, fmt.Errorf("simd: scan: %w", err)
		}
		return any(int8(v)).(T), nil
	case int16:
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return zero, fmt.Errorf("simd: scan: %w", err)
		}
		return any(int16(v)).(T), nil
	case int32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return zero, fmt.Errorf("simd: scan: %w", err)
		}
		return any(int32(v)).(T), nil
	case int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("simd: scan: %w", err)
		}
		return any(v).(T), nil
	case uint8:
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return zero, fmt.Errorf("simd: scan: %w", err)
		}
		return any(uint8(v)).(T), nil
	case uint16:
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return zero, fmt.Errorf("simd: scan: %w", err)
		}
		return any(uint16(v)).(T), nil
	case uint32:
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return zero, fmt.Errorf("simd: scan: %w", err)
		}
		return any(uint32(v)).(T), nil
	case uint64:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("simd: scan: %w", err)
		}
		return any(v).(T), nil
	default:
		return zero, fmt.Errorf("simd: scan: unsupported element kind")
	}
}
