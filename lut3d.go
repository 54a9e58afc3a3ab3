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

// RGB is one 3D LUT grid point in the pipeline's native channel width.
type RGB struct {
	Red, Green, Blue uint16
}

// Sub-table lengths of the tetrahedral-17 3D LUT layout. The hardware
// reads the 17^3 grid from four interleaved sub-tables; the first one
// carries a single extra trailing sample.
const (
	lut3dSub0Size = LUT3DSize/4 + 1 // 1229
	lut3dSubSize  = LUT3DSize / 4   // 1228
)

// lut3dBits is the channel precision the 3D LUT is programmed with. The
// hardware can also run 10-bit tables, but the stride and bit depth are
// not selectable through the color state, so 12-bit is fixed here.
const lut3dBits = 12

// LUT3D is the descriptor for the post-blend 3D LUT stage.
type LUT3D struct {
	LUT0 [lut3dSub0Size]RGB
	LUT1 [lut3dSubSize]RGB
	LUT2 [lut3dSubSize]RGB
	LUT3 [lut3dSubSize]RGB

	// UseTetrahedral9 selects the alternate 9-point interpolation mode.
	// Always false: only tetrahedral interpolation on the 17-grid is
	// produced.
	UseTetrahedral9 bool

	// Use12Bits marks the table as 12-bit. Always true.
	Use12Bits bool

	// Initialized marks the descriptor as carrying a valid table.
	Initialized bool
}

func toLUT3DColor(e LUTEntry, bits int) RGB {
	return RGB{
		Red:   uint16(lutExtract(e.Red, bits)),
		Green: uint16(lutExtract(e.Green, bits)),
		Blue:  uint16(lutExtract(e.Blue, bits)),
	}
}

// lutTo3DLUT distributes a flat caller table over the four hardware
// sub-tables: sample i goes to sub-table i mod 4 at position i/4, and the
// last sample lands as the extra entry of sub-table 0.
func lutTo3DLUT(lut []LUTEntry, lut3d *LUT3D) {
	var subI, i int
	for subI, i = 0, 0; i < len(lut)-4; subI, i = subI+1, i+4 {
		lut3d.LUT0[subI] = toLUT3DColor(lut[i], lut3dBits)
		lut3d.LUT1[subI] = toLUT3DColor(lut[i+1], lut3dBits)
		lut3d.LUT2[subI] = toLUT3DColor(lut[i+2], lut3dBits)
		lut3d.LUT3[subI] = toLUT3DColor(lut[i+3], lut3dBits)
	}
	lut3d.LUT0[subI] = toLUT3DColor(lut[i], lut3dBits)

	lut3d.UseTetrahedral9 = false
	lut3d.Use12Bits = true
	lut3d.Initialized = true
}
