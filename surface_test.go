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
	"errors"
	"testing"
)

func TestUpdateSurfaceExplicitLUT(t *testing.T) {
	tr := NewTranslator(testCaps(), nil)
	var pipe SurfacePipeline

	state := &SurfaceState{
		DegammaLUT: NewPropertyBlob(srgbLUT(DefaultLUTSize)),
		DegammaTF:  TransferFunctionPQ,
	}
	if err := tr.UpdateSurface(&OutputPipeline{}, state, &pipe); err != nil {
		t.Fatal(err)
	}

	if pipe.In.Type != TFTypeDistributedPoints {
		t.Errorf("input degamma = %s, want distributed points", pipe.In.Type)
	}
	if pipe.In.TF != TFPQ {
		t.Errorf("input degamma TF = %s, want PQ", pipe.In.TF)
	}
}

func TestUpdateSurfaceExplicitLUTBadSize(t *testing.T) {
	tr := NewTranslator(testCaps(), nil)
	var pipe SurfacePipeline

	state := &SurfaceState{
		DegammaLUT: NewPropertyBlob(srgbLUT(100)),
	}
	err := tr.UpdateSurface(&OutputPipeline{}, state, &pipe)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("got %v, want ErrInvalidSize", err)
	}
}

func TestUpdateSurfaceLinearLUTIgnored(t *testing.T) {
	tr := NewTranslator(testCaps(), nil)
	var pipe SurfacePipeline

	// a linear surface table falls through to the next rules; with
	// nothing else set the stage is bypassed
	state := &SurfaceState{
		DegammaLUT: NewPropertyBlob(rampLUT(DefaultLUTSize)),
	}
	if err := tr.UpdateSurface(&OutputPipeline{}, state, &pipe); err != nil {
		t.Fatal(err)
	}
	if pipe.In.Type != TFTypeBypass {
		t.Errorf("input degamma = %s, want bypass", pipe.In.Type)
	}
}

func TestUpdateSurfacePredefined(t *testing.T) {
	tr := NewTranslator(testCaps(), nil)
	var pipe SurfacePipeline

	state := &SurfaceState{
		DegammaTF: TransferFunctionGamma22,
	}
	if err := tr.UpdateSurface(&OutputPipeline{}, state, &pipe); err != nil {
		t.Fatal(err)
	}

	if pipe.In.Type != TFTypePredefined {
		t.Errorf("input degamma = %s, want predefined", pipe.In.Type)
	}
	if pipe.In.TF != TFGamma22 {
		t.Errorf("input degamma TF = %s, want gamma 2.2", pipe.In.TF)
	}
}

func TestUpdateSurfaceOutputFallback(t *testing.T) {
	tr := NewTranslator(testCaps(), nil)

	out := &OutputPipeline{
		HasDegamma: true,
		DegammaLUT: srgbLUT(DefaultLUTSize),
	}

	// atomic output: the replayed table runs on a linear base
	var pipe SurfacePipeline
	if err := tr.UpdateSurface(out, &SurfaceState{}, &pipe); err != nil {
		t.Fatal(err)
	}
	if pipe.In.Type != TFTypeDistributedPoints {
		t.Errorf("input degamma = %s, want distributed points", pipe.In.Type)
	}
	if pipe.In.TF != TFLinear {
		t.Errorf("input degamma TF = %s, want linear", pipe.In.TF)
	}

	// legacy output: format-appropriate base curve
	out.IsDegammaSRGB = true
	if err := tr.UpdateSurface(out, &SurfaceState{}, &pipe); err != nil {
		t.Fatal(err)
	}
	if pipe.In.TF != TFSRGB {
		t.Errorf("input degamma TF = %s, want sRGB", pipe.In.TF)
	}

	// 4:2:0 video gets the BT.709 base instead
	state := &SurfaceState{Format: FormatVideo420YCbCr}
	if err := tr.UpdateSurface(out, state, &pipe); err != nil {
		t.Fatal(err)
	}
	if pipe.In.TF != TFBT709 {
		t.Errorf("input degamma TF = %s, want BT.709", pipe.In.TF)
	}
}

func TestUpdateSurfaceLegacySRGB(t *testing.T) {
	tr := NewTranslator(testCaps(), nil)

	out := &OutputPipeline{IsDegammaSRGB: true}

	var pipe SurfacePipeline
	if err := tr.UpdateSurface(out, &SurfaceState{}, &pipe); err != nil {
		t.Fatal(err)
	}
	if pipe.In.Type != TFTypePredefined || pipe.In.TF != TFSRGB {
		t.Errorf("input degamma = %s/%s, want predefined sRGB",
			pipe.In.Type, pipe.In.TF)
	}

	// sRGB is hardware native, so even a failing calculator is fine
	tr.calc = failCalc{}
	if err := tr.UpdateSurface(out, &SurfaceState{}, &pipe); err != nil {
		t.Fatal(err)
	}

	// the BT.709 base needs computed parameters
	state := &SurfaceState{Format: FormatVideo420YCrCb}
	err := tr.UpdateSurface(out, state, &pipe)
	if !errors.Is(err, ErrAllocation) {
		t.Errorf("got %v, want ErrAllocation", err)
	}
}

func TestUpdateSurfaceBypass(t *testing.T) {
	tr := NewTranslator(testCaps(), nil)
	var pipe SurfacePipeline

	if err := tr.UpdateSurface(&OutputPipeline{}, &SurfaceState{}, &pipe); err != nil {
		t.Fatal(err)
	}
	if pipe.In.Type != TFTypeBypass || pipe.In.TF != TFLinear {
		t.Errorf("input degamma = %s/%s, want bypass/linear",
			pipe.In.Type, pipe.In.TF)
	}
}

func TestUpdateSurfaceHDRMult(t *testing.T) {
	tr := NewTranslator(testCaps(), nil)
	var pipe SurfacePipeline

	state := &SurfaceState{
		HDRMult: 1<<63 | 1<<31, // sign-magnitude -0.5
	}
	if err := tr.UpdateSurface(&OutputPipeline{}, state, &pipe); err != nil {
		t.Fatal(err)
	}
	if pipe.HDRMult.Float() != -0.5 {
		t.Errorf("HDRMult = %s, want -0.5", pipe.HDRMult)
	}
}

func TestUpdateSurfaceCalcFailure(t *testing.T) {
	tr := NewTranslator(testCaps(), failCalc{})
	var pipe SurfacePipeline

	state := &SurfaceState{
		DegammaLUT: NewPropertyBlob(srgbLUT(DefaultLUTSize)),
	}
	err := tr.UpdateSurface(&OutputPipeline{}, state, &pipe)
	if !errors.Is(err, ErrAllocation) {
		t.Errorf("explicit LUT: got %v, want ErrAllocation", err)
	}

	state = &SurfaceState{DegammaTF: TransferFunctionHLG}
	err = tr.UpdateSurface(&OutputPipeline{}, state, &pipe)
	if !errors.Is(err, ErrAllocation) {
		t.Errorf("predefined: got %v, want ErrAllocation", err)
	}
}
