// package flo8 provides a tiny 8 bit floating point type with saturating
// conversions and arithmetic. It trades almost all precision for range: with
// 3 mantissa bits the relative quantisation error is up to 1/8, but the
// representable magnitudes span 2^-6 to 480. There are no NaNs, infinities or
// subnormals; every byte decodes to a finite value.
package flo8

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// F43 is a signed 8 bit floating point number with 4 exponent bits (with a
// bias of 7) and 3 mantissa bits, laid out sign|exponent|mantissa from the
// high bit down. A nonzero F43 holds sign * 1.mantissa * 2^(exponent-7).
// The all-zero byte is exactly zero; there is no negative zero.
type F43 uint8

const (
	// ExpBits is the width of the exponent field.
	ExpBits = 4
	// MantBits is the width of the mantissa field.
	MantBits = 3
	// Bias is subtracted from the stored exponent field.
	Bias = 7
)

const (
	// MaxF43 is the largest positive F43: 1.875 * 2^8 = 480.
	MaxF43 F43 = 0x7f
	// MinF43 is the largest negative F43: -480.
	MinF43 F43 = 0xff
)

// MinNormal is the smallest positive value an F43 can hold: 2^-6. Anything
// smaller flushes to zero when converted.
const MinNormal = 0x1p-6

const (
	signMask F43 = 1 << 7
	expMask  F43 = (1<<ExpBits - 1) << MantBits
	mantMask F43 = 1<<MantBits - 1
)

func (v F43) String() string {
	return fmt.Sprintf("%g", Float[float64](v))
}

// FromFloat converts a float into an F43. Magnitudes too large to represent
// saturate to MaxF43 or MinF43, and magnitudes below MinNormal flush to
// zero. The mantissa is truncated towards zero, never rounded.
func FromFloat[T constraints.Float](f T) F43 {
	if f == 0 {
		return 0
	}
	var sign F43
	if f < 0 {
		sign = signMask
	}
	m, e := math.Frexp(math.Abs(float64(f)))
	// Frexp yields m in [0.5, 1); the packed form stores 1.m in [1, 2),
	// so the field exponent is one lower.
	biased := e - 1 + Bias
	if biased <= 0 {
		return 0
	}
	if biased >= 1<<ExpBits {
		return sign | expMask | mantMask
	}
	mant := F43((2*m - 1) * (1 << MantBits))
	return sign | F43(biased)<<MantBits | mant
}

// Float converts an F43 back into a float. The zero byte is exactly zero,
// and every other byte is a finite nonzero value.
func Float[T constraints.Float](v F43) T {
	if v == 0 {
		return 0
	}
	m := 1 + float64(v&mantMask)/(1<<MantBits)
	e := int(v&expMask>>MantBits) - Bias
	f := math.Ldexp(m, e)
	if v&signMask != 0 {
		f = -f
	}
	return T(f)
}

// SAdd adds two F43s, saturating at the maximum or minimum value. The sum is
// computed in native precision and re-encoded, so it is no more precise than
// a round trip through FromFloat.
func (a F43) SAdd(b F43) F43 {
	return FromFloat(Float[float64](a) + Float[float64](b))
}

// SMul multiplies an F43 with another, saturating at the maximum or minimum
// value, with the same precision caveats as SAdd.
func (a F43) SMul(b F43) F43 {
	return FromFloat(Float[float64](a) * Float[float64](b))
}

// Split breaks the number into its three raw fields, without applying the
// exponent bias or the implicit leading mantissa bit.
func (v F43) Split() (sign, exponent, mantissa uint8) {
	return uint8(v >> 7), uint8(v & expMask >> MantBits), uint8(v & mantMask)
}
