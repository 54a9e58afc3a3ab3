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

// Package colorpipe translates display-server color management state into
// descriptors for a fixed hardware color pipeline.
//
// The hardware pipeline has five ordered stages:
//
//	input degamma -> gamut remap matrix -> shaper -> 3D LUT -> output regamma
//
// The display server hands us per-output and per-surface state: gamma and
// degamma lookup tables, a color transformation matrix, a post-blend 3D LUT
// and a pre-conditioning shaper curve. None of these map one-to-one onto the
// hardware blocks, so for every stage the translator decides whether the
// block is bypassed, driven by a predefined analytic curve, or programmed
// with a sampled table, and converts samples and matrix coefficients into
// the pipeline's native fixed-point formats.
//
// A lookup table whose samples form a linear ramp is treated the same as an
// absent table: the corresponding block is put into bypass. The default
// configuration is therefore all stages bypassed.
//
// The translator does not touch hardware. Callers feed the produced
// [OutputPipeline] and [SurfacePipeline] descriptors to whatever programs
// the registers, and are responsible for serializing commits per output.
package colorpipe

// Sample counts supported by the hardware blocks.
const (
	// LegacyLUTSize is the sample count of the legacy gamma interface.
	// An output regamma table of exactly this size selects the legacy
	// translation path.
	LegacyLUTSize = 256

	// DefaultLUTSize is the usual "full" sample count for degamma,
	// regamma and shaper tables. The exact value is a property of the
	// hardware and lives in [Caps.LUTSize].
	DefaultLUTSize = 4096

	// LUT3DEdge and LUT3DSize describe the only supported 3D LUT layout:
	// 17 grid points per axis, 17^3 samples in total.
	LUT3DEdge = 17
	LUT3DSize = LUT3DEdge * LUT3DEdge * LUT3DEdge
)

// MaxLUTValue is the largest channel value in caller-supplied tables.
const MaxLUTValue = 0xFFFF

// Caps describes the color capabilities of the hardware the pipeline
// descriptors are built for. It is supplied by the caller; capability
// discovery is out of scope for this package.
type Caps struct {
	// LUTSize is the full sample count for 1D tables (degamma, regamma,
	// shaper). Zero means [DefaultLUTSize].
	LUTSize int

	// Num3DLUTs is the number of post-blend 3D LUT units. Zero means the
	// hardware has no 3D LUT support and any 3D LUT or shaper state is
	// rejected during validation.
	Num3DLUTs int

	// HasROM reports whether the hardware has ROM storage for hardcoded
	// transfer curves. Passed through to the curve calculator as a hint.
	HasROM bool
}

func (c *Caps) lutSize() int {
	if c.LUTSize == 0 {
		return DefaultLUTSize
	}
	return c.LUTSize
}

// lut3dSize returns the expected 3D LUT sample count, or 0 if the hardware
// has no 3D LUT units.
func (c *Caps) lut3dSize() int {
	if c.Num3DLUTs == 0 {
		return 0
	}
	return LUT3DSize
}

// shaperSize returns the expected shaper table sample count, or 0 if the
// hardware has no 3D LUT units. The shaper block only exists alongside the
// 3D LUT.
func (c *Caps) shaperSize() int {
	if c.Num3DLUTs == 0 {
		return 0
	}
	return c.lutSize()
}

// Translator turns output and surface color state into pipeline
// descriptors.
//
// Create a Translator with [NewTranslator], then call
// [Translator.UpdateOutput] once per output and [Translator.UpdateSurface]
// once per surface of that output, in this order: the surface phase reads
// flags the output phase derives.
//
// A Translator is not safe for concurrent use on the same output. Callers
// must hold their per-output commit lock around Update calls.
type Translator struct {
	caps Caps
	calc CurveCalculator
	pool *LUT3DPool
}

// NewTranslator creates a Translator for hardware with the given
// capabilities. If calc is nil, [StdCurveCalculator] is used.
func NewTranslator(caps Caps, calc CurveCalculator) *Translator {
	if calc == nil {
		calc = StdCurveCalculator{}
	}
	return &Translator{
		caps: caps,
		calc: calc,
		pool: NewLUT3DPool(caps.Num3DLUTs),
	}
}
