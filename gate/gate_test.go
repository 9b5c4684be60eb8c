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

func mustFromHost(t *testing.T, be backend.Backend, v, s []uint32) *logic.LogicTensor {
	t.Helper()
	tensor, err := logic.FromHost(be, v, s)
	require.NoError(t, err)
	return tensor
}

func TestEvalNand(t *testing.T) {
	be := backend.NewScalar()
	a := mustFromHost(t, be, []uint32{1, 1, 0, 0}, []uint32{1, 1, 1, 1})
	b := mustFromHost(t, be, []uint32{1, 0, 1, 0}, []uint32{1, 1, 1, 1})
	out, err := Eval(NAND, []*logic.LogicTensor{a, b})
	require.NoError(t, err)
	require.Equal(t, logic.Zero, out.At(0))
	require.Equal(t, logic.One, out.At(1))
	require.Equal(t, logic.One, out.At(2))
	require.Equal(t, logic.One, out.At(3))
}

func TestEvalNorAndXnor(t *testing.T) {
	be := backend.NewScalar()
	a := mustFromHost(t, be, []uint32{0, 1}, []uint32{1, 1})
	b := mustFromHost(t, be, []uint32{0, 0}, []uint32{1, 1})

	nor, err := Eval(NOR, []*logic.LogicTensor{a, b})
	require.NoError(t, err)
	require.Equal(t, logic.One, nor.At(0))
	require.Equal(t, logic.Zero, nor.At(1))

	xnor, err := Eval(XNOR, []*logic.LogicTensor{a, b})
	require.NoError(t, err)
	require.Equal(t, logic.One, xnor.At(0))
	require.Equal(t, logic.Zero, xnor.At(1))
}

func TestEvalBufIsIndependentCopy(t *testing.T) {
	be := backend.NewScalar()
	a := mustFromHost(t, be, []uint32{1, 0}, []uint32{1, 1})
	out, err := Eval(BUF, []*logic.LogicTensor{a})
	require.NoError(t, err)
	require.Equal(t, logic.One, out.At(0))
	require.Equal(t, logic.Zero, out.At(1))

	// Overlaying a does not affect out; they are distinct buffers.
	enable := mustFromHost(t, be, []uint32{1, 1}, []uint32{1, 1})
	value := mustFromHost(t, be, []uint32{0, 1}, []uint32{1, 1})
	require.NoError(t, a.Force(enable, value))
	require.Equal(t, logic.One, out.At(0))
	require.Equal(t, logic.Zero, out.At(1))
}

func TestEvalFoldsMultiInputAnd(t *testing.T) {
	be := backend.NewScalar()
	a := mustFromHost(t, be, []uint32{1}, []uint32{1})
	b := mustFromHost(t, be, []uint32{1}, []uint32{1})
	c := mustFromHost(t, be, []uint32{0}, []uint32{1})
	out, err := Eval(AND, []*logic.LogicTensor{a, b, c})
	require.NoError(t, err)
	require.Equal(t, logic.Zero, out.At(0))
}

func TestArityErrors(t *testing.T) {
	be := backend.NewScalar()
	a := mustFromHost(t, be, []uint32{1}, []uint32{1})
	_, err := Eval(NOT, []*logic.LogicTensor{a, a})
	require.Error(t, err)
	_, err = Eval(AND, []*logic.LogicTensor{a})
	require.Error(t, err)
	// One input is a legal DFF arity; Eval still rejects DFF because it is
	// not combinational.
	_, err = Eval(DFF, []*logic.LogicTensor{a})
	require.Error(t, err)
}

func TestKindIsSequential(t *testing.T) {
	require.True(t, DFF.IsSequential())
	require.False(t, AND.IsSequential())
}
