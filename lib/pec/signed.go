// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package pec

import "fmt"

// Flags are the control bits a long-form delta can carry alongside its
// numeric value. They occupy bits 4-5 of the long form's high byte,
// orthogonal to the 12-bit magnitude.
type Flags uint8

const (
	// FlagJump marks the delta as a needle-up travel move.
	FlagJump Flags = 0x10

	// FlagTrim marks the delta as a travel move preceded by a thread
	// cut.
	FlagTrim Flags = 0x20
)

// flagLong is the top bit of a delta's first byte. Set, the delta is
// the two-byte long form; clear, the single-byte short form.
const flagLong byte = 0x80

// Short form covers [-64, 62]; long form covers [-2048, 2047], the
// full 12-bit two's-complement range.
const (
	shortFormMin = -64
	shortFormMax = 62
	longFormMin  = -2048
	longFormMax  = 2047
)

// Delta is one decoded axis displacement: a signed magnitude plus the
// control flags that rode along with it. Keeping the two separate makes
// the value-range and flag-bit invariants independently checkable
// instead of being implicit in inline bit arithmetic.
type Delta struct {
	Magnitude int16
	Flags     Flags
}

// appendDelta appends the wire encoding of a displacement to dst. The
// short form is used when the value fits and no flag is requested;
// flags force the long form because only the long form has flag bits.
// Values outside the long-form range are not representable in PEC.
func appendDelta(dst []byte, value int32, flags Flags) ([]byte, error) {
	if flags == 0 && value >= shortFormMin && value <= shortFormMax {
		return append(dst, byte(value)&^flagLong), nil
	}
	if value < longFormMin || value > longFormMax {
		return nil, &CompatibilityError{
			Reason: fmt.Sprintf("stitch displacement %d outside the representable range [%d, %d]",
				value, longFormMin, longFormMax),
		}
	}
	word := 0x8000 | uint16(flags)<<8 | uint16(value)&0x0FFF
	return append(dst, byte(word>>8), byte(word)), nil
}

// isLongForm reports whether b opens a two-byte long-form delta.
func isLongForm(b byte) bool {
	return b&flagLong != 0
}

// unpackShort decodes a single-byte short-form delta: the low 7 bits in
// two's complement. Short deltas never carry flags.
func unpackShort(b byte) Delta {
	value := int16(b & 0x7F)
	if value > 63 {
		value -= 128
	}
	return Delta{Magnitude: value}
}

// unpackLong decodes a two-byte long-form delta from its high and low
// bytes: flags from bits 4-5 of the high byte, magnitude from the low
// 12 bits of the 16-bit word in two's complement.
func unpackLong(hi, lo byte) Delta {
	flags := Flags(hi) & (FlagJump | FlagTrim)
	value := int16((uint16(hi)<<8 | uint16(lo)) & 0x0FFF)
	if value > 0x7FF {
		value -= 0x1000
	}
	return Delta{Magnitude: value, Flags: flags}
}
