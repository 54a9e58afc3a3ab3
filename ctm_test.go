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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCTMToMatrixIdentity(t *testing.T) {
	one := uint64(1) << 32
	ctm := &ColorCTM{Matrix: [9]uint64{
		one, 0, 0,
		0, one, 0,
		0, 0, one,
	}}

	want := [12]Fixed{
		FixedOne, 0, 0, 0,
		0, FixedOne, 0, 0,
		0, 0, FixedOne, 0,
	}
	got := ctmToMatrix(ctm)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("identity CTM conversion (-want +got):\n%s", d)
	}
}

func TestCTMToMatrixSigns(t *testing.T) {
	// sign-magnitude -0.5 in every coefficient
	neg := uint64(1)<<63 | uint64(1)<<31
	var ctm ColorCTM
	for i := range ctm.Matrix {
		ctm.Matrix[i] = neg
	}

	got := ctmToMatrix(&ctm)
	for i, v := range got {
		if i%4 == 3 {
			if v != 0 {
				t.Errorf("matrix[%d] = %s, want zero column", i, v)
			}
			continue
		}
		if v.Float() != -0.5 {
			t.Errorf("matrix[%d] = %s, want -0.5", i, v)
		}
	}
}

func TestCTMToMatrixLayout(t *testing.T) {
	// distinct coefficients to pin the index mapping
	var ctm ColorCTM
	for i := range ctm.Matrix {
		ctm.Matrix[i] = uint64(i+1) << 32
	}

	got := ctmToMatrix(&ctm)
	for i := 0; i < 12; i++ {
		if i%4 == 3 {
			continue
		}
		want := FixedFromInt(int64(i - i/4 + 1))
		if got[i] != want {
			t.Errorf("matrix[%d] = %s, want %s", i, got[i], want)
		}
	}
}
