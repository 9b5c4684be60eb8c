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

// Package logic implements the IEEE-1164-style four-state signal algebra
// and the LogicTensor that carries it across a batch of parallel circuit
// instances. LogicTensor is the only object clients read or write signal
// state through.
package logic

import (
	"fmt"
	"math/rand"

	"github.com/pdxjjb/cuversim/backend"
)

// Quad is one of the four representable logic states.
type Quad int

const (
	Zero Quad = iota
	One
	X
	Z
)

func (q Quad) String() string {
	switch q {
	case Zero:
		return "0"
	case One:
		return "1"
	case X:
		return "X"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// VS returns the (V, S) encoding of q.
func (q Quad) VS() (v, s uint32) {
	switch q {
	case Zero:
		return 0, 1
	case One:
		return 1, 1
	case X:
		return 0, 0
	case Z:
		return 1, 0
	default:
		return 0, 0
	}
}

// QuadOf decodes a (V, S) pair back into a Quad. Any combination besides
// the four legal ones decodes as X: kernels never produce one, but host
// data ingested via FromHost might.
func QuadOf(v, s uint32) Quad {
	switch {
	case s == 1 && v == 0:
		return Zero
	case s == 1 && v == 1:
		return One
	case s == 0 && v == 1:
		return Z
	default:
		return X
	}
}

// LogicTensor is a fixed-length vector of lanes carrying one signal's
// state across N parallel circuit instances. Its length (the batch size)
// is immutable after construction, and it remembers which Backend owns
// its buffers.
type LogicTensor struct {
	be  backend.Backend
	buf backend.Buffers
	n   int
}

// Len returns the batch size.
func (t *LogicTensor) Len() int { return t.n }

// Backend returns the owning backend.
func (t *LogicTensor) Backend() backend.Backend { return t.be }

func newTensor(be backend.Backend, n int) *LogicTensor {
	return &LogicTensor{be: be, buf: be.Alloc(n), n: n}
}

// FromHost ingests host V/S arrays of identical length into a new tensor
// owned by be.
func FromHost(be backend.Backend, v, s []uint32) (*LogicTensor, error) {
	if len(v) != len(s) {
		return nil, &ShapeMismatch{Reason: fmt.Sprintf("FromHost: len(v)=%d != len(s)=%d", len(v), len(s))}
	}
	t := newTensor(be, len(v))
	be.CopyFromHost(t.buf, v, s)
	return t, nil
}

func fill(be backend.Backend, n int, q Quad) *LogicTensor {
	v, s := q.VS()
	hostV := make([]uint32, n)
	hostS := make([]uint32, n)
	for i := 0; i < n; i++ {
		hostV[i], hostS[i] = v, s
	}
	t := newTensor(be, n)
	be.CopyFromHost(t.buf, hostV, hostS)
	return t
}

// Zeros returns an n-lane tensor with every lane in state 0.
func Zeros(be backend.Backend, n int) *LogicTensor { return fill(be, n, Zero) }

// Ones returns an n-lane tensor with every lane in state 1.
func Ones(be backend.Backend, n int) *LogicTensor { return fill(be, n, One) }

// Unknown returns an n-lane tensor with every lane in state X.
func Unknown(be backend.Backend, n int) *LogicTensor { return fill(be, n, X) }

// Hiz returns an n-lane tensor with every lane in state Z.
func Hiz(be backend.Backend, n int) *LogicTensor { return fill(be, n, Z) }

// RandInt returns an n-lane tensor with each lane's V independently and
// uniformly drawn from [lo, hi) via the given source, S=1 throughout.
// RandInt(be, rng, 0, 2, n) gives random defined stimulus; it is a
// convenience for test-pattern generation, not used by any kernel.
func RandInt(be backend.Backend, rng *rand.Rand, lo, hi, n int) *LogicTensor {
	hostV := make([]uint32, n)
	hostS := make([]uint32, n)
	for i := 0; i < n; i++ {
		hostV[i] = uint32(lo + rng.Intn(hi-lo))
		hostS[i] = 1
	}
	t := newTensor(be, n)
	be.CopyFromHost(t.buf, hostV, hostS)
	return t
}

// ToHost copies this tensor's (V, S) lanes out as host slices.
func (t *LogicTensor) ToHost() (v, s []uint32) {
	return t.be.ToHost(t.buf)
}

// At returns the decoded Quad for a single lane, a convenience for tests
// and CLI output, not a hot path.
func (t *LogicTensor) At(lane int) Quad {
	v, s := t.be.ToHost(t.buf)
	return QuadOf(v[lane], s[lane])
}

func (t *LogicTensor) sameBackend(op string, other *LogicTensor) error {
	if t.be != other.be {
		return &backend.BackendMismatch{Op: op}
	}
	if t.n != other.n {
		return &backend.BatchSizeMismatch{Op: op, Expected: t.n, Got: other.n}
	}
	return nil
}

// And returns the lane-wise 4-state AND of t and other.
func (t *LogicTensor) And(other *LogicTensor) (*LogicTensor, error) {
	if err := t.sameBackend("And", other); err != nil {
		return nil, err
	}
	out := newTensor(t.be, t.n)
	if err := t.be.And(out.buf, t.buf, other.buf, t.n); err != nil {
		return nil, err
	}
	return out, nil
}

// Or returns the lane-wise 4-state OR of t and other.
func (t *LogicTensor) Or(other *LogicTensor) (*LogicTensor, error) {
	if err := t.sameBackend("Or", other); err != nil {
		return nil, err
	}
	out := newTensor(t.be, t.n)
	if err := t.be.Or(out.buf, t.buf, other.buf, t.n); err != nil {
		return nil, err
	}
	return out, nil
}

// Xor returns the lane-wise 4-state XOR of t and other.
func (t *LogicTensor) Xor(other *LogicTensor) (*LogicTensor, error) {
	if err := t.sameBackend("Xor", other); err != nil {
		return nil, err
	}
	out := newTensor(t.be, t.n)
	if err := t.be.Xor(out.buf, t.buf, other.buf, t.n); err != nil {
		return nil, err
	}
	return out, nil
}

// Not returns the lane-wise 4-state NOT of t.
func (t *LogicTensor) Not() (*LogicTensor, error) {
	out := newTensor(t.be, t.n)
	if err := t.be.Not(out.buf, t.buf, t.n); err != nil {
		return nil, err
	}
	return out, nil
}

// Copy returns a new tensor on the same backend holding an independent
// copy of t's lanes: the identity operation BUF needs, since the backend
// has no dedicated "copy" kernel of its own.
func (t *LogicTensor) Copy() (*LogicTensor, error) {
	hostV, hostS := t.be.ToHost(t.buf)
	return FromHost(t.be, hostV, hostS)
}

// Force overlays t in place with value wherever enable's lane is 1, the
// same primitive FaultCampaign.Overlay uses, exposed directly for tests
// and ad hoc stimulus work.
func (t *LogicTensor) Force(enable, value *LogicTensor) error {
	if err := t.sameBackend("Force", enable); err != nil {
		return err
	}
	if err := t.sameBackend("Force", value); err != nil {
		return err
	}
	return t.be.InjectFault(t.buf, enable.buf, value.buf, t.n)
}

// Buffers exposes the raw backend buffers for package-internal callers
// (netlist, gate) that need to hand them to Backend kernels directly
// without an extra copy. Not part of the stable client-facing API.
func (t *LogicTensor) Buffers() backend.Buffers { return t.buf }

// Raw constructs a tensor directly over existing buffers owned by be,
// without copying. Used by netlist/gate to publish kernel output without
// an extra round trip through host memory.
func Raw(be backend.Backend, buf backend.Buffers, n int) *LogicTensor {
	return &LogicTensor{be: be, buf: buf, n: n}
}

// ShapeMismatch reports host-array shape errors at tensor construction.
type ShapeMismatch struct {
	Reason string
}

func (e *ShapeMismatch) Error() string { return "logic: shape mismatch: " + e.Reason }
