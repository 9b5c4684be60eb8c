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

// Package backend defines the vectorized 4-state kernel primitives that
// every lane-parallel operation ultimately goes through. A Backend is a
// capability object, not a singleton: every LogicTensor and Chip is
// constructed with one explicitly. There is no package-level default.
package backend

import "fmt"

// Buffers holds one signal's lane-parallel (V, S) pair. Both slices
// always have the same length; that length is the batch size.
type Buffers struct {
	V []uint32
	S []uint32
}

// Backend is a capability object providing vectorized 4-state primitives.
// Two Buffers participate in the same call only if they were allocated by
// the same Backend instance and have the same length. Kernels check
// lengths and return BatchSizeMismatch; Buffers carry no owner, so mixed
// backends are detected by logic.LogicTensor, which returns
// BackendMismatch.
type Backend interface {
	// Name identifies the backend for diagnostics and log headers.
	Name() string

	// Alloc returns a fresh (V, S) pair of n uninitialized lanes.
	Alloc(n int) Buffers

	// CopyFromHost ingests host arrays of length n into dst.
	CopyFromHost(dst Buffers, hostV, hostS []uint32)

	// ToHost copies the two lane arrays out as host slices.
	ToHost(b Buffers) (v, s []uint32)

	// And, Or, Xor write out from a and b. Not writes out from a alone.
	And(out, a, b Buffers, n int) error
	Or(out, a, b Buffers, n int) error
	Xor(out, a, b Buffers, n int) error
	Not(out, a Buffers, n int) error

	// DffUpdate computes qNext from d and rst: an undefined reset lane
	// yields X, reset=1 yields strong 0, otherwise d passes through.
	DffUpdate(qNext, d, rst Buffers, n int) error

	// InjectFault overlays target in place: where en.V[i]=1, target is
	// forced to (val.V[i], strong); elsewhere target is unchanged.
	InjectFault(target, en, val Buffers, n int) error
}

// BackendMismatch is returned when two Buffers produced by different
// Backend instances are combined in one operation.
type BackendMismatch struct {
	Op string
}

func (e *BackendMismatch) Error() string {
	return fmt.Sprintf("backend: %s: operands from different backends", e.Op)
}

// BatchSizeMismatch is returned when two Buffers of different lengths are
// combined, or when a declared n does not match a Buffers' actual length.
type BatchSizeMismatch struct {
	Op       string
	Expected int
	Got      int
}

func (e *BatchSizeMismatch) Error() string {
	return fmt.Sprintf("backend: %s: batch size mismatch: expected %d, got %d", e.Op, e.Expected, e.Got)
}

func checkLen(op string, n int, bufs ...Buffers) error {
	for _, b := range bufs {
		if len(b.V) != n || len(b.S) != n {
			got := len(b.V)
			if len(b.S) != len(b.V) {
				got = -1
			}
			return &BatchSizeMismatch{Op: op, Expected: n, Got: got}
		}
	}
	return nil
}
