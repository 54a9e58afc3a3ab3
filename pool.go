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

// LUT3DPool manages the hardware's limited set of post-blend 3D LUT units.
// Each unit is a paired resource: the 3D LUT table and its shaper stage
// descriptor are acquired and released together, so an output either holds
// both or neither.
//
// The pool does no locking of its own; the caller's per-output commit
// serialization covers it.
type LUT3DPool struct {
	slots []lut3dSlot
}

type lut3dSlot struct {
	inUse  bool
	lut3d  LUT3D
	shaper TransferFunc
}

// NewLUT3DPool creates a pool with n slots. n is the number of 3D LUT
// units the hardware reports; zero yields a pool whose acquire always
// fails.
func NewLUT3DPool(n int) *LUT3DPool {
	return &LUT3DPool{slots: make([]lut3dSlot, n)}
}

// acquire takes a free slot and returns its paired 3D LUT and shaper
// descriptors. Returns ErrResourceUnavailable when all slots are in use.
func (p *LUT3DPool) acquire() (*LUT3D, *TransferFunc, error) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.inUse {
			continue
		}
		s.inUse = true
		s.lut3d = LUT3D{}
		s.shaper = TransferFunc{}
		return &s.lut3d, &s.shaper, nil
	}
	return nil, nil, ErrResourceUnavailable
}

// release returns a pair to the pool. Both pointers must come from the
// same acquire call; a half-released or foreign pair is an invariant
// violation and yields ErrResourceUnavailable.
func (p *LUT3DPool) release(lut3d *LUT3D, shaper *TransferFunc) error {
	for i := range p.slots {
		s := &p.slots[i]
		if lut3d != &s.lut3d {
			continue
		}
		if !s.inUse || shaper != &s.shaper {
			return ErrResourceUnavailable
		}
		s.inUse = false
		return nil
	}
	return ErrResourceUnavailable
}

// numInUse reports the number of slots currently acquired.
func (p *LUT3DPool) numInUse() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].inUse {
			n++
		}
	}
	return n
}
