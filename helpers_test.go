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

import "math"

// rampLUT returns a perfectly linear n-sample ramp.
func rampLUT(n int) []LUTEntry {
	lut := make([]LUTEntry, n)
	for i := range lut {
		v := uint16(math.Round(float64(i) * MaxLUTValue / float64(n-1)))
		lut[i] = LUTEntry{Red: v, Green: v, Blue: v}
	}
	return lut
}

// srgbLUT returns an n-sample table of the sRGB encoding curve. Clearly
// non-linear for any reasonable n.
func srgbLUT(n int) []LUTEntry {
	lut := make([]LUTEntry, n)
	for i := range lut {
		x := float64(i) / float64(n-1)
		v := uint16(math.Round(encodeTF(TFSRGB, x) * MaxLUTValue))
		lut[i] = LUTEntry{Red: v, Green: v, Blue: v}
	}
	return lut
}

// failCalc is a CurveCalculator whose computations always fail, for
// exercising the allocation-failure paths.
type failCalc struct{}

func (failCalc) CalculateRegamma(*TransferFunc, *Gamma, bool, bool) bool { return false }
func (failCalc) CalculateDegamma(*TransferFunc, *Gamma, bool) bool       { return false }
