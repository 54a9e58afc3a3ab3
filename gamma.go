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

// GammaType tags a gamma buffer with the conversion mode it was filled in,
// which tells the curve calculator how to interpret the samples.
type GammaType int

const (
	// GammaRGB256 is the legacy mode: 256 de-normalized integer samples.
	GammaRGB256 GammaType = iota
	// GammaCustom holds normalized samples for degamma-style
	// computation.
	GammaCustom
	// GammaCSTFM1D holds normalized samples for regamma computation on
	// top of a color-space transfer function.
	GammaCSTFM1D
)

// Gamma is a transient per-channel sample buffer in pipeline fixed point.
// It is created for a single stage build, filled from a caller table,
// consumed by the curve calculator and then dropped; it is never part of a
// pipeline descriptor.
type Gamma struct {
	Type       GammaType
	NumEntries int

	Red, Green, Blue []Fixed
}

func newGamma(n int) *Gamma {
	return &Gamma{
		NumEntries: n,
		Red:        make([]Fixed, n),
		Green:      make([]Fixed, n),
		Blue:       make([]Fixed, n),
	}
}

// lutExtract converts a 16-bit channel value to the given bit precision,
// rounding and clamping. At 16 bits the value passes through unchanged.
func lutExtract(v uint16, bits int) uint32 {
	val := uint32(v)
	max := uint32(MaxLUTValue) >> (16 - bits)

	if bits < 16 {
		val += 1 << (16 - bits - 1)
		val >>= 16 - bits
	}

	if val > max {
		val = max
	}
	return val
}

// lutToGamma fills the gamma buffer from a caller table. In legacy mode
// each sample becomes an integer fixed-point value; otherwise samples are
// converted to fixed-point fractions of MaxLUTValue.
func lutToGamma(lut []LUTEntry, gamma *Gamma, isLegacy bool) {
	if isLegacy {
		for i := 0; i < LegacyLUTSize; i++ {
			r := lutExtract(lut[i].Red, 16)
			g := lutExtract(lut[i].Green, 16)
			b := lutExtract(lut[i].Blue, 16)

			gamma.Red[i] = FixedFromInt(int64(r))
			gamma.Green[i] = FixedFromInt(int64(g))
			gamma.Blue[i] = FixedFromInt(int64(b))
		}
		return
	}

	for i := range lut {
		r := lutExtract(lut[i].Red, 16)
		g := lutExtract(lut[i].Green, 16)
		b := lutExtract(lut[i].Blue, 16)

		gamma.Red[i] = FixedFromFraction(int64(r), MaxLUTValue)
		gamma.Green[i] = FixedFromFraction(int64(g), MaxLUTValue)
		gamma.Blue[i] = FixedFromFraction(int64(b), MaxLUTValue)
	}
}
