package simd

import (
	"fmt"
	"math"
	"math/bits"
)

// Int128 is the extended 128-bit integer element kind. No native Go
// arithmetic type is 16 bytes wide, so it is a two's-complement pair of
// 64-bit halves with explicit arithmetic built on math/bits.
type Int128 struct {
	Lo uint64
	Hi uint64
}

// Int128FromInt64 sign-extends a 64-bit integer.
func Int128FromInt64(x int64) Int128 {
	var hi uint64
	if x < 0 {
		hi = ^uint64(0)
	}
	return Int128{Lo: uint64(x), Hi: hi}
}

// Int128FromUint64 zero-extends a 64-bit unsigned integer.
func Int128FromUint64(x uint64) Int128 {
	return Int128{Lo: x}
}

// Int128FromFloat64 converts a float, truncating toward zero. Every
// integer of magnitude below 2^127 converts exactly, including values
// a native 64-bit cast would overflow. NaN converts to zero; magnitudes
// at or above 2^127 map to the most negative value, matching the
// overflow result of native float-to-integer casts on amd64.
func Int128FromFloat64(x float64) Int128 {
	if math.IsNaN(x) {
		return Int128{}
	}
	x = math.Trunc(x)
	neg := x < 0
	a := math.Abs(x)
	if a >= 0x1p127 {
		return Int128{Hi: 1 << 63}
	}
	// a = mant * 2^exp with mant in [0.5, 1); mant * 2^53 is an exact
	// 53-bit integer holding all significand bits.
	mant, exp := math.Frexp(a)
	m := Int128FromUint64(uint64(mant * 0x1p53))
	var v Int128
	if shift := exp - 53; shift >= 0 {
		v = m.Shl(uint(shift))
	} else {
		// Truncation already happened; the shifted-out bits are zero.
		v = m.Shr(uint(-shift))
	}
	if neg {
		v = v.Neg()
	}
	return v
}

// IsNeg reports whether the value is negative.
func (a Int128) IsNeg() bool {
	return int64(a.Hi) < 0
}

// IsZero reports whether the value is zero.
func (a Int128) IsZero() bool {
	return a.Lo == 0 && a.Hi == 0
}

// Add returns a+b with wraparound.
func (a Int128) Add(b Int128) Int128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return Int128{Lo: lo, Hi: hi}
}

// Sub returns a-b with wraparound.
func (a Int128) Sub(b Int128) Int128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return Int128{Lo: lo, Hi: hi}
}

// Mul returns the low 128 bits of a*b.
func (a Int128) Mul(b Int128) Int128 {
	hi, lo := bits.Mul64(a.Lo, b.Lo)
	hi += a.Lo*b.Hi + a.Hi*b.Lo
	return Int128{Lo: lo, Hi: hi}
}

// Neg returns the two's-complement negation.
func (a Int128) Neg() Int128 {
	return Int128{}.Sub(a)
}

// Abs returns the absolute value (the most negative value maps to
// itself, as for native two's-complement integers).
func (a Int128) Abs() Int128 {
	if a.IsNeg() {
		return a.Neg()
	}
	return a
}

// Cmp compares a and b as signed values: -1 if a<b, 0 if equal, +1 if a>b.
func (a Int128) Cmp(b Int128) int {
	if ah, bh := int64(a.Hi), int64(b.Hi); ah != bh {
		if ah < bh {
			return -1
		}
		return 1
	}
	if a.Lo != b.Lo {
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// And, Or, Xor, AndNot are the lanewise bit operations.
func (a Int128) And(b Int128) Int128 { return Int128{Lo: a.Lo & b.Lo, Hi: a.Hi & b.Hi} }
func (a Int128) Or(b Int128) Int128  { return Int128{Lo: a.Lo | b.Lo, Hi: a.Hi | b.Hi} }
func (a Int128) Xor(b Int128) Int128 { return Int128{Lo: a.Lo ^ b.Lo, Hi: a.Hi ^ b.Hi} }
func (a Int128) AndNot(b Int128) Int128 {
	return Int128{Lo: a.Lo &^ b.Lo, Hi: a.Hi &^ b.Hi}
}

// Shl returns a<<n for n in [0,128). Larger shifts produce zero.
func (a Int128) Shl(n uint) Int128 {
	switch {
	case n == 0:
		return a
	case n < 64:
		return Int128{Lo: a.Lo << n, Hi: a.Hi<<n | a.Lo>>(64-n)}
	case n < 128:
		return Int128{Hi: a.Lo << (n - 64)}
	default:
		return Int128{}
	}
}

// Shr returns the arithmetic right shift a>>n for n in [0,128).
func (a Int128) Shr(n uint) Int128 {
	sign := uint64(int64(a.Hi) >> 63)
	switch {
	case n == 0:
		return a
	case n < 64:
		return Int128{Lo: a.Lo>>n | a.Hi<<(64-n), Hi: uint64(int64(a.Hi) >> n)}
	case n < 128:
		return Int128{Lo: uint64(int64(a.Hi) >> (n - 64)), Hi: sign}
	default:
		return Int128{Lo: sign, Hi: sign}
	}
}

// Float64 returns the value rounded to float64.
func (a Int128) Float64() float64 {
	if a.IsNeg() {
		m := a.Neg()
		return -(float64(m.Hi)*0x1p64 + float64(m.Lo))
	}
	return float64(a.Hi)*0x1p64 + float64(a.Lo)
}

// divmod10 splits a non-negative value into a/10 and a%10.
func (a Int128) divmod10() (Int128, uint64) {
	qhi := a.Hi / 10
	rem := a.Hi % 10
	qlo, rlo := bits.Div64(rem, a.Lo, 10)
	return Int128{Lo: qlo, Hi: qhi}, rlo
}

// String renders the value in decimal.
func (a Int128) String() string {
	if a.IsZero() {
		return "0"
	}
	neg := a.IsNeg()
	m := a
	if neg {
		m = a.Neg()
		if m.IsNeg() {
			// Most negative value negates to itself.
			return "-170141183460469231731687303715884105728"
		}
	}
	var buf [40]byte
	i := len(buf)
	for !m.IsZero() {
		var d uint64
		m, d = m.divmod10()
		i--
		buf[i] = byte('0' + d)
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ParseInt128 parses a decimal integer, with an optional leading sign.
func ParseInt128(s string) (Int128, error) {
	if s == "" {
		return Int128{}, fmt.Errorf("simd: parse int128: empty input")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return Int128{}, fmt.Errorf("simd: parse int128: missing digits")
	}
	var v Int128
	ten := Int128FromUint64(10)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Int128{}, fmt.Errorf("simd: parse int128: bad digit %q", c)
		}
		v = v.Mul(ten).Add(Int128FromUint64(uint64(c - '0')))
	}
	if neg {
		v = v.Neg()
	}
	return v, nil
}
