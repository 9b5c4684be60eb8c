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

package gate

import (
	"github.com/pdxjjb/cuversim/backend"
	"github.com/pdxjjb/cuversim/logic"
)

// FlipFlop owns an N-lane Q tensor, initialized to 0. Its update is a
// two-phase split: Advance computes and caches next state without
// publishing it, Commit publishes, so a Chip can compute every
// flip-flop's next state from the pre-edge signal map before any of
// them become visible.
type FlipFlop struct {
	be      backend.Backend
	q       *logic.LogicTensor
	pending *logic.LogicTensor
}

// NewFlipFlop returns a flip-flop with its Q tensor initialized to 0.
func NewFlipFlop(be backend.Backend, batchSize int) *FlipFlop {
	return &FlipFlop{be: be, q: logic.Zeros(be, batchSize)}
}

// Q returns the flip-flop's currently visible state.
func (f *FlipFlop) Q() *logic.LogicTensor { return f.q }

// Advance computes Q_next from D and an optional reset tensor, caching it
// without publishing. Absent a reset tensor, reset is treated as driven
// to logic 0 on every lane.
func (f *FlipFlop) Advance(d, reset *logic.LogicTensor) error {
	if reset == nil {
		reset = logic.Zeros(f.be, d.Len())
	}
	qNext, err := dffUpdate(f.be, d, reset)
	if err != nil {
		return err
	}
	f.pending = qNext
	return nil
}

// Commit publishes the tensor cached by the most recent Advance as the
// flip-flop's new visible Q. Called only after every flip-flop in a Chip
// has Advance'd, so all flip-flops sample the same pre-edge instant.
func (f *FlipFlop) Commit() {
	if f.pending != nil {
		f.q = f.pending
		f.pending = nil
	}
}

// SetQ directly overwrites the flip-flop's visible Q, bypassing Advance
// and Commit entirely. This is the zero-time scan-load primitive: it
// does not go through dffUpdate and has no notion of a clock edge.
func (f *FlipFlop) SetQ(q *logic.LogicTensor) { f.q = q }

func dffUpdate(be backend.Backend, d, rst *logic.LogicTensor) (*logic.LogicTensor, error) {
	n := d.Len()
	out := be.Alloc(n)
	if err := be.DffUpdate(out, d.Buffers(), rst.Buffers(), n); err != nil {
		return nil, err
	}
	return logic.Raw(be, out, n), nil
}
