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

// Package fault maps named stuck-at faults onto lane indices of a shared
// batch, and overlays them into a signal's tensor at simulation time.
// A Campaign itself is backend-agnostic; the backend is chosen by the
// caller each time masks are materialized.
package fault

import (
	"github.com/google/uuid"

	"github.com/pdxjjb/cuversim/backend"
	"github.com/pdxjjb/cuversim/logic"
)

type record struct {
	signal string
	stuck  uint32
	lane   int
}

// Campaign manages at most (batchSize-1) stuck-at faults; lane 0 is
// reserved as the fault-free "gold" reference.
type Campaign struct {
	ID        uuid.UUID
	batchSize int
	nextLane  int
	bySignal  map[string][]record
}

// NewCampaign returns an empty campaign over batchSize lanes, tagged with
// a fresh run ID for trace/log correlation.
func NewCampaign(batchSize int) *Campaign {
	return &Campaign{
		ID:        uuid.New(),
		batchSize: batchSize,
		nextLane:  1,
		bySignal:  make(map[string][]record),
	}
}

// BatchSize returns the campaign's fixed lane count.
func (c *Campaign) BatchSize() int { return c.batchSize }

// AddFault registers a stuck-at-stuck fault on signal and returns the
// lane index assigned, monotonically increasing from 1.
func (c *Campaign) AddFault(signal string, stuck int) (int, error) {
	if stuck != 0 && stuck != 1 {
		return 0, &InvalidStuckValue{Value: stuck}
	}
	if c.nextLane >= c.batchSize {
		return 0, &CapacityExceeded{BatchSize: c.batchSize}
	}
	lane := c.nextLane
	c.nextLane++
	c.bySignal[signal] = append(c.bySignal[signal], record{signal: signal, stuck: uint32(stuck), lane: lane})
	return lane, nil
}

// MasksFor materializes the (enable, value) lane-mask pair for signal on
// be: enable.V[i]=1 iff some fault on signal claimed lane i, value.V[i]
// is that fault's stuck value. Both tensors report S=1 on every lane.
// A signal with no registered faults yields an all-disabled enable mask.
func (c *Campaign) MasksFor(signal string, be backend.Backend) (enable, value *logic.LogicTensor, err error) {
	n := c.batchSize
	enV := make([]uint32, n)
	enS := make([]uint32, n)
	valV := make([]uint32, n)
	valS := make([]uint32, n)
	for i := 0; i < n; i++ {
		enS[i] = 1
		valS[i] = 1
	}
	for _, r := range c.bySignal[signal] {
		enV[r.lane] = 1
		valV[r.lane] = r.stuck
	}
	enable, err = logic.FromHost(be, enV, enS)
	if err != nil {
		return nil, nil, err
	}
	value, err = logic.FromHost(be, valV, valS)
	if err != nil {
		return nil, nil, err
	}
	return enable, value, nil
}

// Overlay applies every fault registered on signal directly onto target
// in place, after the driving gate has written it and before any
// consumer reads it. Signals with no registered faults are left
// untouched.
func (c *Campaign) Overlay(target *logic.LogicTensor, signal string) error {
	if len(c.bySignal[signal]) == 0 {
		return nil
	}
	if target.Len() != c.batchSize {
		return &backend.BatchSizeMismatch{Op: "Overlay", Expected: c.batchSize, Got: target.Len()}
	}
	enable, value, err := c.MasksFor(signal, target.Backend())
	if err != nil {
		return err
	}
	return target.Force(enable, value)
}
