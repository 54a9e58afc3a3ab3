// seehuhn.de/go/colorpipe - translate display color state to hardware color pipelines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package colorpipe

import (
	"fmt"
	"math"
)

// Fixed is the pipeline's native fixed-point number format: a signed value
// with 32 integer bits and 32 fractional bits, stored in two's complement.
//
// Caller-supplied matrices and multipliers use the same 32.32 split but in
// sign-magnitude form; use [FixedFromSignMagnitude] to convert those.
type Fixed int64

const fixedFracBits = 32

// FixedOne is the fixed-point representation of 1.0.
const FixedOne Fixed = 1 << fixedFracBits

// FixedFromInt converts an integer to fixed point.
func FixedFromInt(v int64) Fixed {
	return Fixed(v << fixedFracBits)
}

// FixedFromFraction returns num/den in fixed point, rounded to nearest with
// ties away from zero.
func FixedFromFraction(num, den int64) Fixed {
	if den == 0 {
		return 0
	}
	neg := (num < 0) != (den < 0)
	if num < 0 {
		num = -num
	}
	if den < 0 {
		den = -den
	}

	q := num / den
	r := num % den
	res := q<<fixedFracBits + (r<<fixedFracBits+den/2)/den
	if neg {
		res = -res
	}
	return Fixed(res)
}

// FixedFromSignMagnitude converts a sign-magnitude 32.32 value, as supplied
// in caller matrices and multipliers, to two's complement fixed point. Bit
// 63 is the sign bit, the low 63 bits are the magnitude.
func FixedFromSignMagnitude(v uint64) Fixed {
	mag := int64(v &^ (1 << 63))
	if v&(1<<63) != 0 {
		return Fixed(-mag)
	}
	return Fixed(mag)
}

// FixedFromFloat converts a float64 to fixed point, rounding to nearest.
func FixedFromFloat(x float64) Fixed {
	return Fixed(math.Round(x * float64(FixedOne)))
}

// Float returns the value as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / float64(FixedOne)
}

// Round16 rounds the value to the nearest 16-bit channel code, clamping to
// [0, MaxLUTValue]. This is the inverse of the normalized sample
// conversion and exists mainly for descriptor inspection and tests.
func (f Fixed) Round16() uint16 {
	v := int64(f*MaxLUTValue+FixedOne/2) >> fixedFracBits
	if v < 0 {
		return 0
	}
	if v > MaxLUTValue {
		return MaxLUTValue
	}
	return uint16(v)
}

func (f Fixed) String() string {
	return fmt.Sprintf("%g", f.Float())
}
