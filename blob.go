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

// LUTEntry is one sample of a caller-supplied lookup table, with one
// unsigned 16-bit value per channel.
type LUTEntry struct {
	Red, Green, Blue uint16
}

// PropertyBlob is an opaque handle for a caller-supplied lookup table.
// A nil PropertyBlob, or one holding no samples, means the property is
// absent. Blob storage and lifetime are the caller's business; this
// package only reads the samples.
type PropertyBlob struct {
	lut []LUTEntry
}

// NewPropertyBlob wraps a sample table in a blob handle. The slice is not
// copied; the caller must not modify it during a commit.
func NewPropertyBlob(lut []LUTEntry) *PropertyBlob {
	return &PropertyBlob{lut: lut}
}

// ExtractBlobLUT returns the sample table held by blob and its length.
// A nil blob yields a nil table and size 0.
func ExtractBlobLUT(blob *PropertyBlob) ([]LUTEntry, int) {
	if blob == nil {
		return nil, 0
	}
	return blob.lut, len(blob.lut)
}

// VerifyLUTSizes checks the degamma and regamma tables attached to state
// against the sizes the hardware supports: degamma must have exactly the
// full sample count, regamma the full or the legacy count.
//
// Returns nil on success, or an error wrapping [ErrInvalidSize].
func (t *Translator) VerifyLUTSizes(state *OutputState) error {
	full := t.caps.lutSize()

	lut, size := ExtractBlobLUT(state.DegammaLUT)
	if lut != nil && size != full {
		logger().Debug("invalid degamma LUT size",
			"expected", full, "got", size)
		return fmt.Errorf("degamma LUT: expected %d samples, got %d: %w",
			full, size, ErrInvalidSize)
	}

	lut, size = ExtractBlobLUT(state.RegammaLUT)
	if lut != nil && size != full && size != LegacyLUTSize {
		logger().Debug("invalid regamma LUT size",
			"expected", full, "legacy", LegacyLUTSize, "got", size)
		return fmt.Errorf("regamma LUT: expected %d (or %d legacy) samples, got %d: %w",
			full, LegacyLUTSize, size, ErrInvalidSize)
	}

	return nil
}

// VerifyLUT3DSize checks the shaper and 3D LUT tables attached to state
// against the hardware capabilities. On hardware without 3D LUT units the
// expected size is zero, so any supplied shaper or 3D LUT is rejected.
//
// Returns nil on success, or an error wrapping [ErrInvalidSize].
func (t *Translator) VerifyLUT3DSize(state *OutputState) error {
	expSize := t.caps.shaperSize()
	shaper, size := ExtractBlobLUT(state.ShaperLUT)
	if shaper != nil && size != expSize {
		logger().Debug("invalid shaper LUT size",
			"expected", expSize, "got", size)
		return fmt.Errorf("shaper LUT: expected %d samples, got %d: %w",
			expSize, size, ErrInvalidSize)
	}

	expSize = t.caps.lut3dSize()
	lut3d, size := ExtractBlobLUT(state.LUT3D)
	if lut3d != nil && size != expSize {
		logger().Debug("invalid 3D LUT size",
			"expected", expSize, "got", size)
		return fmt.Errorf("3D LUT: expected %d samples, got %d: %w",
			expSize, size, ErrInvalidSize)
	}

	return nil
}
