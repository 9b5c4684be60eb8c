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

package fault

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdxjjb/cuversim/backend"
	"github.com/pdxjjb/cuversim/logic"
)

func TestAddFaultAssignsLanesFromOne(t *testing.T) {
	c := NewCampaign(4)
	lane1, err := c.AddFault("a", 0)
	require.NoError(t, err)
	require.Equal(t, 1, lane1)
	lane2, err := c.AddFault("a", 1)
	require.NoError(t, err)
	require.Equal(t, 2, lane2)
	lane3, err := c.AddFault("b", 1)
	require.NoError(t, err)
	require.Equal(t, 3, lane3)
}

func TestAddFaultCapacityExceeded(t *testing.T) {
	c := NewCampaign(2)
	_, err := c.AddFault("a", 0)
	require.NoError(t, err)
	_, err = c.AddFault("a", 0)
	require.Error(t, err)
	var capErr *CapacityExceeded
	require.ErrorAs(t, err, &capErr)
}

func TestAddFaultInvalidStuckValue(t *testing.T) {
	c := NewCampaign(4)
	_, err := c.AddFault("a", 2)
	require.Error(t, err)
	var badValue *InvalidStuckValue
	require.ErrorAs(t, err, &badValue)
}

// S4: XOR gate y = a^b, faults on a: lane 1 stuck-at-0, lane 2 stuck-at-1.
func TestMasksForAndOverlay(t *testing.T) {
	be := backend.NewScalar()
	c := NewCampaign(4)
	_, err := c.AddFault("a", 0)
	require.NoError(t, err)
	_, err = c.AddFault("a", 1)
	require.NoError(t, err)

	a, err := logic.FromHost(be, []uint32{1, 1, 1, 1}, []uint32{1, 1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, c.Overlay(a, "a"))
	require.Equal(t, logic.One, a.At(0))
	require.Equal(t, logic.Zero, a.At(1))
	require.Equal(t, logic.One, a.At(2))
	require.Equal(t, logic.One, a.At(3))

	b, err := logic.FromHost(be, []uint32{1, 1, 1, 1}, []uint32{1, 1, 1, 1})
	require.NoError(t, err)
	y, err := a.Xor(b)
	require.NoError(t, err)
	require.Equal(t, logic.Zero, y.At(0))
	require.Equal(t, logic.One, y.At(1))
	require.Equal(t, logic.Zero, y.At(2))
	require.Equal(t, logic.Zero, y.At(3))
}

func TestOverlayNoOpWithoutFaults(t *testing.T) {
	be := backend.NewScalar()
	c := NewCampaign(4)
	sig, err := logic.FromHost(be, []uint32{1, 0, 1, 0}, []uint32{1, 1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, c.Overlay(sig, "untouched"))
	require.Equal(t, logic.One, sig.At(0))
	require.Equal(t, logic.Zero, sig.At(1))
}
