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

// Scalar is the straight-line reference backend: one goroutine, one pass
// over the lane range per kernel. It is the backend every other backend's
// output is checked against.
type Scalar struct {
	name string
}

// NewScalar returns a Scalar backend. Each call yields a distinct
// instance; tensors from two different NewScalar() calls are not
// interchangeable.
func NewScalar() *Scalar { return &Scalar{name: "scalar"} }

func (s *Scalar) Name() string { return s.name }

func (s *Scalar) Alloc(n int) Buffers {
	return Buffers{V: make([]uint32, n), S: make([]uint32, n)}
}

func (s *Scalar) CopyFromHost(dst Buffers, hostV, hostS []uint32) {
	copy(dst.V, hostV)
	copy(dst.S, hostS)
}

func (s *Scalar) ToHost(b Buffers) (v, s2 []uint32) {
	v = make([]uint32, len(b.V))
	s2 = make([]uint32, len(b.S))
	copy(v, b.V)
	copy(s2, b.S)
	return v, s2
}

func (s *Scalar) And(out, a, b Buffers, n int) error {
	if err := checkLen("And", n, out, a, b); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		out.V[i], out.S[i] = laneAnd(a.V[i], a.S[i], b.V[i], b.S[i])
	}
	return nil
}

func (s *Scalar) Or(out, a, b Buffers, n int) error {
	if err := checkLen("Or", n, out, a, b); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		out.V[i], out.S[i] = laneOr(a.V[i], a.S[i], b.V[i], b.S[i])
	}
	return nil
}

func (s *Scalar) Xor(out, a, b Buffers, n int) error {
	if err := checkLen("Xor", n, out, a, b); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		out.V[i], out.S[i] = laneXor(a.V[i], a.S[i], b.V[i], b.S[i])
	}
	return nil
}

func (s *Scalar) Not(out, a Buffers, n int) error {
	if err := checkLen("Not", n, out, a); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		out.V[i], out.S[i] = laneNot(a.V[i], a.S[i])
	}
	return nil
}

func (s *Scalar) DffUpdate(qNext, d, rst Buffers, n int) error {
	if err := checkLen("DffUpdate", n, qNext, d, rst); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		qNext.V[i], qNext.S[i] = laneDff(d.V[i], d.S[i], rst.V[i], rst.S[i])
	}
	return nil
}

func (s *Scalar) InjectFault(target, en, val Buffers, n int) error {
	if err := checkLen("InjectFault", n, target, en, val); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		target.V[i], target.S[i] = laneFault(target.V[i], target.S[i], en.V[i], val.V[i])
	}
	return nil
}
