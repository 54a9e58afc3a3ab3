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

import "errors"

var (
	// ErrInvalidSize indicates that a supplied table or matrix does not
	// match any size the hardware supports for its stage. Detected during
	// validation, before any stage is built; the commit is rejected with
	// no state mutated.
	ErrInvalidSize = errors.New("colorpipe: invalid LUT size")

	// ErrAllocation indicates that a transient buffer or curve
	// computation failed. The failing stage build unwinds without
	// touching previously committed stage state.
	ErrAllocation = errors.New("colorpipe: curve computation failed")

	// ErrResourceUnavailable indicates that the paired 3D LUT and shaper
	// pool is exhausted, or that the both-or-neither pairing invariant
	// was found violated. Unlike the validation errors this signals an
	// internal condition; the commit is aborted.
	ErrResourceUnavailable = errors.New("colorpipe: no 3D LUT resource available")
)
