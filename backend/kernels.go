/*
Copyright © 2024 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify it
under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or (at your
option) any later version.

This program is distributed in the hope that it will be useful, but
WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public
License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package backend

// The four-state encoding, per lane: S=1 means a defined logic level; V is
// only meaningful when S=1. (V=0,S=1)=0  (V=1,S=1)=1  (V=0,S=0)=X  (V=1,S=0)=Z.
//
// These per-lane functions are the single source of truth for the 4-state
// algebra; every backend (Scalar, Parallel) calls the same ones over its
// own slice of the lane range, so results are bit-identical regardless of
// how the range was chunked.

func laneAnd(av, as, bv, bs uint32) (uint32, uint32) {
	aZero := as == 1 && av == 0
	bZero := bs == 1 && bv == 0
	aOne := as == 1 && av == 1
	bOne := bs == 1 && bv == 1
	bothOne := aOne && bOne
	v := uint32(0)
	if bothOne {
		v = 1
	}
	s := uint32(0)
	if aZero || bZero || bothOne {
		s = 1
	}
	return v, s
}

func laneOr(av, as, bv, bs uint32) (uint32, uint32) {
	aOne := as == 1 && av == 1
	bOne := bs == 1 && bv == 1
	anyOne := aOne || bOne
	aZero := as == 1 && av == 0
	bZero := bs == 1 && bv == 0
	bothZero := aZero && bZero
	v := uint32(0)
	if anyOne {
		v = 1
	}
	s := uint32(0)
	if anyOne || bothZero {
		s = 1
	}
	return v, s
}

func laneXor(av, as, bv, bs uint32) (uint32, uint32) {
	if as == 1 && bs == 1 {
		return av ^ bv, 1
	}
	return 0, 0
}

func laneNot(av, as uint32) (uint32, uint32) {
	if as == 1 {
		return av ^ 1, 1
	}
	return 0, 0
}

// laneDff computes one lane of Q_next from D and reset: reset
// undefined dominates (-> X), then reset=1 (-> strong 0), else D verbatim.
func laneDff(dv, ds, rv, rs uint32) (uint32, uint32) {
	if rs == 0 {
		return 0, 0
	}
	if rv == 1 {
		return 0, 1
	}
	return dv, ds
}

// laneFault overlays one lane of target with (val, strong) when en=1.
func laneFault(tv, ts, env, valv uint32) (uint32, uint32) {
	if env == 1 {
		return valv, 1
	}
	return tv, ts
}
