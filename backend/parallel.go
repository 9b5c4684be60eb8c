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

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallel is the data-parallel CPU backend: the same per-lane math as
// Scalar, fanned out across chunks of the lane range. Kernel dispatch is
// still atomic from the netlist's point of view: And/Or/etc do not
// return until every chunk has completed.
type Parallel struct {
	// Workers bounds the number of goroutines a kernel call fans out to.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// MinChunk is the smallest lane range worth handing to its own
	// goroutine; batches below this run on Scalar semantics inline.
	MinChunk int
}

// NewParallel returns a Parallel backend with Workers set to
// runtime.GOMAXPROCS(0) and MinChunk 4096; Capabilities.Tune resizes it
// from the detected host.
func NewParallel() *Parallel {
	return &Parallel{Workers: runtime.GOMAXPROCS(0), MinChunk: 4096}
}

func (p *Parallel) Name() string { return "parallel" }

func (p *Parallel) Alloc(n int) Buffers {
	return Buffers{V: make([]uint32, n), S: make([]uint32, n)}
}

func (p *Parallel) CopyFromHost(dst Buffers, hostV, hostS []uint32) {
	copy(dst.V, hostV)
	copy(dst.S, hostS)
}

func (p *Parallel) ToHost(b Buffers) (v, s []uint32) {
	v = make([]uint32, len(b.V))
	s = make([]uint32, len(b.S))
	copy(v, b.V)
	copy(s, b.S)
	return v, s
}

// chunks splits [0,n) into up to Workers contiguous ranges and runs fn on
// each concurrently via errgroup, joining before returning.
func (p *Parallel) chunks(n int, fn func(lo, hi int)) {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	minChunk := p.MinChunk
	if minChunk <= 0 {
		minChunk = 4096
	}
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if workers > n {
		workers = n
	}
	chunkSize := (n + workers - 1) / workers
	if chunkSize < minChunk {
		chunkSize = minChunk
	}

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunkSize {
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // fn never returns an error; chunks themselves are pure
}

func (p *Parallel) And(out, a, b Buffers, n int) error {
	if err := checkLen("And", n, out, a, b); err != nil {
		return err
	}
	p.chunks(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out.V[i], out.S[i] = laneAnd(a.V[i], a.S[i], b.V[i], b.S[i])
		}
	})
	return nil
}

func (p *Parallel) Or(out, a, b Buffers, n int) error {
	if err := checkLen("Or", n, out, a, b); err != nil {
		return err
	}
	p.chunks(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out.V[i], out.S[i] = laneOr(a.V[i], a.S[i], b.V[i], b.S[i])
		}
	})
	return nil
}

func (p *Parallel) Xor(out, a, b Buffers, n int) error {
	if err := checkLen("Xor", n, out, a, b); err != nil {
		return err
	}
	p.chunks(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out.V[i], out.S[i] = laneXor(a.V[i], a.S[i], b.V[i], b.S[i])
		}
	})
	return nil
}

func (p *Parallel) Not(out, a Buffers, n int) error {
	if err := checkLen("Not", n, out, a); err != nil {
		return err
	}
	p.chunks(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out.V[i], out.S[i] = laneNot(a.V[i], a.S[i])
		}
	})
	return nil
}

func (p *Parallel) DffUpdate(qNext, d, rst Buffers, n int) error {
	if err := checkLen("DffUpdate", n, qNext, d, rst); err != nil {
		return err
	}
	p.chunks(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			qNext.V[i], qNext.S[i] = laneDff(d.V[i], d.S[i], rst.V[i], rst.S[i])
		}
	})
	return nil
}

func (p *Parallel) InjectFault(target, en, val Buffers, n int) error {
	if err := checkLen("InjectFault", n, target, en, val); err != nil {
		return err
	}
	p.chunks(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			target.V[i], target.S[i] = laneFault(target.V[i], target.S[i], en.V[i], val.V[i])
		}
	})
	return nil
}
