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

// ColorCTM is a caller-supplied 3x3 color transformation matrix in
// row-major order. Each coefficient is a 32.32 fixed-point value in
// sign-magnitude representation.
type ColorCTM struct {
	Matrix [9]uint64
}

// GamutRemap is the descriptor for the gamut remap stage: a 3x4
// homogeneous matrix in pipeline fixed point, applied between degamma and
// the tone-curve stages.
type GamutRemap struct {
	Matrix      [12]Fixed
	EnableRemap bool
}

// ctmToMatrix converts a caller CTM to the 3x4 homogeneous remap matrix.
//
// The caller gives a 3x3 matrix, but the remap block wants 3x4. Assuming
// homogeneous coordinates, the fourth column is zero-filled. The
// coefficients also change representation, from sign-magnitude to two's
// complement (both 32.32).
func ctmToMatrix(ctm *ColorCTM) [12]Fixed {
	var matrix [12]Fixed

	for i := 0; i < 12; i++ {
		// skip the injected fourth column
		if i%4 == 3 {
			matrix[i] = 0
			continue
		}

		// matrix[i] = ctm[i - floor(i/4)]
		matrix[i] = FixedFromSignMagnitude(ctm.Matrix[i-i/4])
	}

	return matrix
}
