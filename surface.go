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

import "fmt"

// PixelFormat identifies the pixel format of a surface, as far as the
// degamma base curve selection cares about it.
type PixelFormat int

const (
	// FormatDefault covers all RGB-like formats.
	FormatDefault PixelFormat = iota
	// FormatVideo420YCbCr and FormatVideo420YCrCb are the 4:2:0
	// chroma-subsampled video formats.
	FormatVideo420YCbCr
	FormatVideo420YCrCb
)

// SurfaceState is the per-surface color management state supplied by the
// display server for one commit.
type SurfaceState struct {
	DegammaLUT *PropertyBlob
	DegammaTF  TransferFunction

	// HDRMult is a scalar multiplier in sign-magnitude 32.32 fixed
	// point, applied independently downstream.
	HDRMult uint64

	Format PixelFormat
}

// SurfacePipeline is the surface-side pipeline descriptor produced by
// [Translator.UpdateSurface].
type SurfacePipeline struct {
	// In is the input degamma stage.
	In TransferFunc

	// HDRMult is the caller's multiplier converted to pipeline fixed
	// point.
	HDRMult Fixed
}

// baseTFForFormat returns the base transfer function for implicit surface
// degamma. There is no BT.601 hardware curve, so the 4:2:0 video formats
// get BT.709 instead.
func baseTFForFormat(format PixelFormat) PredefinedTF {
	switch format {
	case FormatVideo420YCbCr, FormatVideo420YCrCb:
		return TFBT709
	default:
		return TFSRGB
	}
}

// setInputTF calculates the input transfer function from user samples.
func (t *Translator) setInputTF(tf *TransferFunc, lut []LUTEntry, lutSize int) error {
	gamma := newGamma(lutSize)
	gamma.Type = GammaCustom
	lutToGamma(lut, gamma, false)

	if !t.calc.CalculateDegamma(tf, gamma, true) {
		return fmt.Errorf("input degamma: %w", ErrAllocation)
	}
	return nil
}

// UpdateSurface translates the per-surface color state into the input
// degamma stage descriptor. out must be the pipeline produced by
// [Translator.UpdateOutput] for the surface's output in the same commit,
// since the degamma decision may fall back to output-side state.
//
// The rules are evaluated in order, first match wins:
//
//  1. a non-linear surface degamma table drives the stage directly;
//  2. an explicit non-default transfer function selects a predefined
//     curve, computed analytically;
//  3. an output-side degamma table is replayed on the surface;
//  4. a legacy-mode output forces a predefined sRGB-base degamma;
//  5. otherwise the stage is bypassed.
func (t *Translator) UpdateSurface(out *OutputPipeline, state *SurfaceState, pipe *SurfacePipeline) error {
	degammaLUT, degammaSize := ExtractBlobLUT(state.DegammaLUT)
	hasDegamma := degammaLUT != nil && !IsLUTLinear(degammaLUT)

	drmTF := state.DegammaTF
	pipe.HDRMult = FixedFromSignMagnitude(state.HDRMult)

	// base transfer function for implicit degamma
	tf := baseTFForFormat(state.Format)

	switch {
	case hasDegamma:
		if degammaSize != t.caps.lutSize() {
			logger().Debug("invalid surface degamma LUT size",
				"expected", t.caps.lutSize(), "got", degammaSize)
			return fmt.Errorf("surface degamma LUT: expected %d samples, got %d: %w",
				t.caps.lutSize(), degammaSize, ErrInvalidSize)
		}

		pipe.In.Type = TFTypeDistributedPoints
		pipe.In.TF = toPredefinedTF(drmTF)

		return t.setInputTF(&pipe.In, degammaLUT, degammaSize)

	case drmTF != TransferFunctionDefault:
		pipe.In.Type = TFTypePredefined
		pipe.In.TF = toPredefinedTF(drmTF)

		if !t.calc.CalculateDegamma(&pipe.In, nil, false) {
			return fmt.Errorf("surface degamma: %w", ErrAllocation)
		}
		return nil

	case out.HasDegamma:
		// The output degamma table is replayed here. Combined with a
		// legacy output regamma this is not colorimetrically exact:
		// the matrix stage then runs in the wrong space, because an
		// sRGB degamma is stacked on top of the output degamma. Rare
		// in practice, kept for compatibility.
		lut := out.DegammaLUT

		pipe.In.Type = TFTypeDistributedPoints
		if out.IsDegammaSRGB {
			pipe.In.TF = tf
		} else {
			pipe.In.TF = TFLinear
		}

		return t.setInputTF(&pipe.In, lut, len(lut))

	case out.IsDegammaSRGB:
		// Legacy output regamma wants linear input, so assume the
		// surface is in sRGB space.
		pipe.In.Type = TFTypePredefined
		pipe.In.TF = tf

		// The sRGB curve is hardware native and needs no computed
		// parameters.
		if tf != TFSRGB && !t.calc.CalculateDegamma(&pipe.In, nil, false) {
			return fmt.Errorf("surface degamma: %w", ErrAllocation)
		}
		return nil

	default:
		pipe.In.reset()
		return nil
	}
}
