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
	"math"
	"testing"
)

func TestFixedFromInt(t *testing.T) {
	if got := FixedFromInt(1); got != FixedOne {
		t.Errorf("FixedFromInt(1) = %d, want %d", got, FixedOne)
	}
	if got := FixedFromInt(65535).Float(); got != 65535 {
		t.Errorf("FixedFromInt(65535) = %g, want 65535", got)
	}
}

func TestFixedFromFraction(t *testing.T) {
	tests := []struct {
		num, den int64
		want     float64
	}{
		{0, 65535, 0},
		{65535, 65535, 1},
		{1, 2, 0.5},
		{1, 65535, 1.0 / 65535},
		{-1, 2, -0.5},
		{1, -2, -0.5},
		{32768, 65535, 32768.0 / 65535},
	}
	for _, tt := range tests {
		got := FixedFromFraction(tt.num, tt.den).Float()
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FixedFromFraction(%d, %d) = %g, want %g",
				tt.num, tt.den, got, tt.want)
		}
	}
}

func TestFixedFromSignMagnitude(t *testing.T) {
	tests := []struct {
		in   uint64
		want float64
	}{
		{0, 0},
		{1 << 32, 1},
		{1 << 31, 0.5},
		{1<<63 | 1<<32, -1},
		{1<<63 | 1<<31, -0.5},
		{3 << 32, 3},
	}
	for _, tt := range tests {
		got := FixedFromSignMagnitude(tt.in).Float()
		if got != tt.want {
			t.Errorf("FixedFromSignMagnitude(%#x) = %g, want %g",
				tt.in, got, tt.want)
		}
	}
}

func TestFixedRound16(t *testing.T) {
	for _, code := range []uint16{0, 1, 127, 32768, 65534, 65535} {
		f := FixedFromFraction(int64(code), MaxLUTValue)
		if got := f.Round16(); got != code {
			t.Errorf("Round16 of %d = %d", code, got)
		}
	}

	// negative values clamp to zero
	if got := Fixed(-1).Round16(); got != 0 {
		t.Errorf("Round16 of negative = %d, want 0", got)
	}
	// values above 1.0 clamp to the maximum code
	if got := (2 * FixedOne).Round16(); got != MaxLUTValue {
		t.Errorf("Round16 of 2.0 = %d, want %d", got, MaxLUTValue)
	}
}
