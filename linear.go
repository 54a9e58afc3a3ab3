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

// IsLUTLinear reports whether lut is a linear mapping of values, i.e.
// whether it acts like a bypass table. The table counts as linear if every
// sample i has all three channels equal to i*MaxLUTValue/(len(lut)-1),
// allowing a +/-1 error.
//
// A table with fewer than two samples cannot express the identity ramp and
// is never considered linear.
func IsLUTLinear(lut []LUTEntry) bool {
	if len(lut) < 2 {
		return false
	}
	for i, e := range lut {
		// all color values should be equal
		if e.Red != e.Green || e.Green != e.Blue {
			return false
		}

		n := len(lut) - 1
		expected := (i*MaxLUTValue + n/2) / n

		delta := int(e.Red) - expected
		if delta < -1 || delta > 1 {
			return false
		}
	}
	return true
}
