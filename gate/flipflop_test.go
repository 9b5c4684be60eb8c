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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdxjjb/cuversim/backend"
	"github.com/pdxjjb/cuversim/logic"
)

func TestFlipFlopInitializesToZero(t *testing.T) {
	be := backend.NewScalar()
	ff := NewFlipFlop(be, 3)
	for i := 0; i < 3; i++ {
		require.Equal(t, logic.Zero, ff.Q().At(i))
	}
}

// Reset takes priority over D, even where D disagrees.
func TestFlipFlopResetPriorityOverD(t *testing.T) {
	be := backend.NewScalar()
	ff := NewFlipFlop(be, 4)
	d := mustFromHost(t, be, []uint32{1, 1, 1, 1}, []uint32{1, 1, 1, 1})
	rst := mustFromHost(t, be, []uint32{0, 1, 0, 0}, []uint32{1, 1, 0, 0})
	require.NoError(t, ff.Advance(d, rst))
	ff.Commit()
	require.Equal(t, logic.One, ff.Q().At(0))
	require.Equal(t, logic.Zero, ff.Q().At(1))
	require.Equal(t, logic.X, ff.Q().At(2))
	require.Equal(t, logic.X, ff.Q().At(3))
}

// Advance caches next state without publishing; only Commit makes it
// visible, so reading Q between Advance and Commit still sees the old
// value.
func TestFlipFlopAdvanceDoesNotPublishUntilCommit(t *testing.T) {
	be := backend.NewScalar()
	ff := NewFlipFlop(be, 1)
	d := mustFromHost(t, be, []uint32{1}, []uint32{1})
	require.NoError(t, ff.Advance(d, nil))
	require.Equal(t, logic.Zero, ff.Q().At(0))
	ff.Commit()
	require.Equal(t, logic.One, ff.Q().At(0))
}

// Cross-coupled flip-flops: both Advance off each other's pre-edge Q
// before either Commits, so they see a consistent snapshot of the prior
// cycle rather than a half-updated one.
func TestFlipFlopCrossCoupledEdgeAtomicity(t *testing.T) {
	be := backend.NewScalar()
	a := NewFlipFlop(be, 1) // starts at 0
	b := NewFlipFlop(be, 1) // starts at 0

	one := mustFromHost(t, be, []uint32{1}, []uint32{1})
	notA, err := a.Q().Xor(one) // NOT via XOR with 1
	require.NoError(t, err)
	notB, err := b.Q().Xor(one)
	require.NoError(t, err)

	require.NoError(t, a.Advance(notB, nil))
	require.NoError(t, b.Advance(notA, nil))
	a.Commit()
	b.Commit()

	require.Equal(t, logic.One, a.Q().At(0))
	require.Equal(t, logic.One, b.Q().At(0))
}

func TestFlipFlopDefaultResetIsZero(t *testing.T) {
	be := backend.NewScalar()
	ff := NewFlipFlop(be, 2)
	d := mustFromHost(t, be, []uint32{1, 0}, []uint32{1, 1})
	require.NoError(t, ff.Advance(d, nil))
	ff.Commit()
	require.Equal(t, logic.One, ff.Q().At(0))
	require.Equal(t, logic.Zero, ff.Q().At(1))
}
