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

// Package scan implements the zero-time scan-chain load primitive:
// writing a batch*length pattern matrix directly into an ordered list of
// flip-flops' Q state, bypassing the cycle-accurate serial shift process.
package scan

import (
	"github.com/pdxjjb/cuversim/backend"
	"github.com/pdxjjb/cuversim/gate"
	"github.com/pdxjjb/cuversim/logic"
)

// Chain binds an ordered list of K flip-flops sharing a common batch
// size N.
type Chain struct {
	be        backend.Backend
	batchSize int
	ffs       []*gate.FlipFlop
}

// NewChain returns a Chain over ffs, in scan order. Every flip-flop in
// ffs must share be and batchSize; the constructor trusts the caller
// (mirroring Chip's construction-time assembly) and Load validates shape
// on every call instead.
func NewChain(be backend.Backend, batchSize int, ffs []*gate.FlipFlop) *Chain {
	return &Chain{be: be, batchSize: batchSize, ffs: ffs}
}

// Len returns the chain length K.
func (c *Chain) Len() int { return len(c.ffs) }

// Load overwrites every flip-flop j's Q with column j of the pattern
// matrix: patternV (and, optionally, patternS) is N rows by K columns.
// Absent patternS, every loaded lane is defined (S=1). Reads of any
// flip-flop's Q after Load returns see the loaded values immediately,
// and the next Chip.Step uses them as pre-edge state.
func (c *Chain) Load(patternV, patternS [][]uint32) error {
	k := c.Len()
	n := c.batchSize
	if len(patternV) != n {
		return &ShapeMismatch{Reason: "pattern row count does not match batch size"}
	}
	for _, row := range patternV {
		if len(row) != k {
			return &ShapeMismatch{Reason: "pattern width does not match chain length"}
		}
	}
	if patternS != nil {
		if len(patternS) != n {
			return &ShapeMismatch{Reason: "S pattern row count does not match batch size"}
		}
		for _, row := range patternS {
			if len(row) != k {
				return &ShapeMismatch{Reason: "S pattern width does not match chain length"}
			}
		}
	}

	for j := 0; j < k; j++ {
		hostV := make([]uint32, n)
		hostS := make([]uint32, n)
		for i := 0; i < n; i++ {
			hostV[i] = patternV[i][j]
			if patternS != nil {
				hostS[i] = patternS[i][j]
			} else {
				hostS[i] = 1
			}
		}
		q, err := logic.FromHost(c.be, hostV, hostS)
		if err != nil {
			return err
		}
		c.ffs[j].SetQ(q)
	}
	return nil
}
