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

package netlist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdxjjb/cuversim/gate"
)

// Levelization determinism: a fixed gate list always yields the same
// evaluation order, ties broken by declaration index.
func TestLevelizeIsDeterministic(t *testing.T) {
	// Diamond: n1 and n2 both depend only on "in" (ready together); n3
	// depends on both. Declaration order is n2, n1, n3, so ties between
	// n1/n2 must resolve to n2 first since it appears earlier.
	comb := []GateInstance{
		{Kind: gate.NOT, Name: "n2", Output: "b", Inputs: []string{"in"}},
		{Kind: gate.NOT, Name: "n1", Output: "a", Inputs: []string{"in"}},
		{Kind: gate.AND, Name: "n3", Output: "out", Inputs: []string{"a", "b"}},
	}
	order, err := levelize(comb)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, order)

	order2, err := levelize(comb)
	require.NoError(t, err)
	require.Equal(t, order, order2)
}

func TestLevelizeDetectsSelfLoop(t *testing.T) {
	comb := []GateInstance{
		{Kind: gate.AND, Name: "g1", Output: "a", Inputs: []string{"a", "b"}},
	}
	_, err := levelize(comb)
	require.Error(t, err)
	var cyc *CombinationalCycle
	require.ErrorAs(t, err, &cyc)
	require.Equal(t, "a", cyc.Signal)
}

func TestLevelizeDetectsCycle(t *testing.T) {
	comb := []GateInstance{
		{Kind: gate.NOT, Name: "g1", Output: "y", Inputs: []string{"z"}},
		{Kind: gate.NOT, Name: "g2", Output: "z", Inputs: []string{"y"}},
	}
	_, err := levelize(comb)
	require.Error(t, err)
	var cyc *CombinationalCycle
	require.ErrorAs(t, err, &cyc)
}
