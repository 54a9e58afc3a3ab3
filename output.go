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

// SDRRefWhiteLevel is the reference white level, in nits, programmed on
// the output regamma stage in atomic mode.
const SDRRefWhiteLevel = 80

// OutputState is the per-output color management state supplied by the
// display server for one commit.
type OutputState struct {
	DegammaLUT *PropertyBlob
	ShaperLUT  *PropertyBlob
	LUT3D      *PropertyBlob
	RegammaLUT *PropertyBlob

	// CTM is the color transformation matrix, or nil for bypass.
	CTM *ColorCTM

	// RegammaTF selects the base curve for the output regamma stage.
	RegammaTF TransferFunction
}

// OutputPipeline is the output-side pipeline descriptor produced by
// [Translator.UpdateOutput]. The Shaper and LUT3D pointers refer into the
// translator's 3D LUT pool and stay valid across commits until the pair is
// released.
//
// When LUT3D is active the consumer is expected to suppress the output
// regamma stage at the hardware level; this package does not enforce that.
type OutputPipeline struct {
	// Out is the output regamma stage.
	Out TransferFunc

	// GamutRemap is the matrix stage.
	GamutRemap GamutRemap

	// EnableAdjustment enables the secondary CSC adjustment stage.
	// Always left disabled: adjustments would have to be blended into
	// the output conversion matrix, so the remap block is used instead.
	EnableAdjustment bool

	// Shaper and LUT3D are the paired post-blend stages, both nil or
	// both non-nil.
	Shaper *TransferFunc
	LUT3D  *LUT3D

	// HasDegamma reports that a non-linear output degamma table was
	// supplied. The table itself is not programmed at this level; the
	// surface phase picks it up from DegammaLUT.
	HasDegamma bool

	// IsDegammaSRGB reports that the output runs the legacy path, which
	// forces an sRGB degamma base on its surfaces.
	IsDegammaSRGB bool

	// DegammaLUT carries the output degamma samples to the surface
	// phase. Valid for the same commit only.
	DegammaLUT []LUTEntry
}

// setLegacyTF calculates the legacy output transfer function. Only for
// sRGB input space.
func (t *Translator) setLegacyTF(tf *TransferFunc, lut []LUTEntry) error {
	gamma := newGamma(LegacyLUTSize)
	gamma.Type = GammaRGB256
	lutToGamma(lut, gamma, true)

	if !t.calc.CalculateRegamma(tf, gamma, true, t.caps.HasROM) {
		return fmt.Errorf("legacy regamma: %w", ErrAllocation)
	}
	return nil
}

// setOutputTF calculates the output transfer function based on the
// expected input space.
func (t *Translator) setOutputTF(tf *TransferFunc, lut []LUTEntry, lutSize int) error {
	var gamma *Gamma
	if lutSize > 0 {
		gamma = newGamma(lutSize)
		lutToGamma(lut, gamma, false)
	}

	var res bool
	if tf.TF == TFLinear {
		// The curve calculator cannot compute regamma points on top
		// of a linear base, but degamma points simulate it.
		if gamma != nil {
			gamma.Type = GammaCustom
		}
		res = t.calc.CalculateDegamma(tf, gamma, gamma != nil)
	} else {
		if gamma != nil {
			gamma.Type = GammaCSTFM1D
		}
		res = t.calc.CalculateRegamma(tf, gamma, gamma != nil, t.caps.HasROM)
	}

	if !res {
		return fmt.Errorf("output regamma: %w", ErrAllocation)
	}
	return nil
}

// setAtomicRegamma builds the output regamma stage for atomic mode.
// There is no implicit sRGB base here: a linear base is simulated through
// the degamma path in setOutputTF.
func (t *Translator) setAtomicRegamma(pipe *OutputPipeline, lut []LUTEntry, lutSize int, tf PredefinedTF) error {
	if lutSize > 0 || tf != TFLinear {
		pipe.Out.Type = TFTypeDistributedPoints
		pipe.Out.TF = tf
		pipe.Out.SDRRefWhiteLevel = SDRRefWhiteLevel
		return t.setOutputTF(&pipe.Out, lut, lutSize)
	}

	// no output regamma requested, put the block into bypass
	pipe.Out.reset()
	return nil
}

// setShaperTF calculates the shaper transfer function from user samples.
// The curve calculator has no shaper entry point, so degamma computation
// on a custom curve stands in for it.
func (t *Translator) setShaperTF(tf *TransferFunc, lut []LUTEntry, lutSize int) error {
	gamma := newGamma(lutSize)
	lutToGamma(lut, gamma, false)
	gamma.Type = GammaCustom

	if !t.calc.CalculateDegamma(tf, gamma, true) {
		return fmt.Errorf("shaper: %w", ErrAllocation)
	}
	return nil
}

// atomicShaperLUT builds the shaper stage. Without shaper samples the
// input color space is assumed to be already delinearized and the stage is
// bypassed; with samples a linear input space is assumed.
func (t *Translator) atomicShaperLUT(shaper *TransferFunc, lut []LUTEntry, lutSize int) error {
	if lutSize == 0 {
		shaper.reset()
		return nil
	}

	shaper.Type = TFTypeDistributedPoints
	shaper.TF = TFLinear
	return t.setShaperTF(shaper, lut, lutSize)
}

// atomicShaperLUT3D manages the paired 3D LUT and shaper stages for one
// commit: it acquires or releases the pool pair as needed and programs
// both stages. A release requested by this commit is deferred until the
// rest of the output build succeeds, so a failed commit retains no
// resource change; the returned function performs the deferred release.
func (t *Translator) atomicShaperLUT3D(pipe *OutputPipeline,
	shaperLUT []LUTEntry, shaperSize int,
	lut3dLUT []LUTEntry, lut3dSize int) (commit func(), rollback func(), err error) {

	noop := func() {}

	// both-or-neither invariant
	if (pipe.LUT3D == nil) != (pipe.Shaper == nil) {
		return nil, nil, fmt.Errorf("3D LUT/shaper pairing violated: %w", ErrResourceUnavailable)
	}

	acquire := lut3dSize > 0
	held := pipe.LUT3D != nil

	switch {
	case acquire && !held:
		lut3d, shaper, err := t.pool.acquire()
		if err != nil {
			return nil, nil, err
		}
		pipe.LUT3D = lut3d
		pipe.Shaper = shaper
		rollback = func() {
			t.pool.release(pipe.LUT3D, pipe.Shaper)
			pipe.LUT3D = nil
			pipe.Shaper = nil
		}
	case !acquire && held:
		lut3d, shaper := pipe.LUT3D, pipe.Shaper
		return func() {
			t.pool.release(lut3d, shaper)
			pipe.LUT3D = nil
			pipe.Shaper = nil
		}, noop, nil
	case !acquire:
		return noop, noop, nil
	default:
		rollback = noop
	}

	lutTo3DLUT(lut3dLUT, pipe.LUT3D)

	if err := t.atomicShaperLUT(pipe.Shaper, shaperLUT, shaperSize); err != nil {
		rollback()
		return nil, nil, err
	}
	return noop, rollback, nil
}

// UpdateOutput translates the per-output color state into the pipeline
// descriptor. The matrix stage always sits between the degamma and
// regamma stages, so the CTM goes into the gamut remap block.
//
// The output regamma table selects the mode: exactly [LegacyLUTSize]
// samples means the legacy path, which forces an sRGB regamma base
// regardless of the requested transfer function; any other size takes the
// atomic path. A linear degamma or regamma table is treated as absent.
//
// On error pipe keeps no changes from this commit other than stage
// descriptors that were already rebuilt; held pool resources are
// unchanged.
func (t *Translator) UpdateOutput(state *OutputState, pipe *OutputPipeline) error {
	if err := t.VerifyLUTSizes(state); err != nil {
		return err
	}
	if err := t.VerifyLUT3DSize(state); err != nil {
		return err
	}

	degammaLUT, degammaSize := ExtractBlobLUT(state.DegammaLUT)
	shaperLUT, shaperSize := ExtractBlobLUT(state.ShaperLUT)
	lut3dLUT, lut3dSize := ExtractBlobLUT(state.LUT3D)
	regammaLUT, regammaSize := ExtractBlobLUT(state.RegammaLUT)

	hasDegamma := degammaLUT != nil && !IsLUTLinear(degammaLUT)
	hasShaperLUT := shaperLUT != nil
	hasLUT3D := lut3dLUT != nil
	hasRegamma := regammaLUT != nil && !IsLUTLinear(regammaLUT)

	isLegacy := regammaSize == LegacyLUTSize

	tf := toPredefinedTF(state.RegammaTF)

	// reset all adjustments
	pipe.HasDegamma = false
	pipe.IsDegammaSRGB = false
	pipe.DegammaLUT = nil

	if isLegacy {
		// The legacy interface forces the sRGB curve as regamma base,
		// so surfaces must use an sRGB degamma base as well. An
		// inverse ramp through the legacy interface therefore comes
		// out wrong; kept for compatibility with legacy clients.
		pipe.IsDegammaSRGB = true
		pipe.Out.Type = TFTypeDistributedPoints
		pipe.Out.TF = TFSRGB
		pipe.Out.SDRRefWhiteLevel = 0

		if err := t.setLegacyTF(&pipe.Out, regammaLUT); err != nil {
			return err
		}
	} else {
		// A stale shaper is never reused implicitly: without an
		// explicit shaper table the stage input size is zero.
		if !hasShaperLUT || !hasLUT3D {
			shaperSize = 0
		}
		if !hasLUT3D {
			lut3dSize = 0
			shaperLUT, lut3dLUT = nil, nil
		}

		commit, rollback, err := t.atomicShaperLUT3D(pipe,
			shaperLUT, shaperSize, lut3dLUT, lut3dSize)
		if err != nil {
			logger().Debug("failed to set shaper and 3D LUT", "err", err)
			return err
		}

		if !hasRegamma {
			regammaSize = 0
		}
		if err := t.setAtomicRegamma(pipe, regammaLUT, regammaSize, tf); err != nil {
			rollback()
			return err
		}

		commit()
	}

	// The degamma table is not programmed here: the surface phase reads
	// it as metadata and decides per surface.
	pipe.HasDegamma = hasDegamma
	if hasDegamma {
		pipe.DegammaLUT = degammaLUT[:degammaSize]
	}

	if state.CTM != nil {
		// Gamut remap must carry the CTM since it comes before the
		// regamma stage; the secondary adjustment stage stays off.
		pipe.GamutRemap.Matrix = ctmToMatrix(state.CTM)
		pipe.GamutRemap.EnableRemap = true
		pipe.EnableAdjustment = false
	} else {
		pipe.GamutRemap.EnableRemap = false
		pipe.EnableAdjustment = false
	}

	return nil
}
