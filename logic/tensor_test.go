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

package logic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdxjjb/cuversim/backend"
)

func TestQuadRoundTrip(t *testing.T) {
	for _, q := range []Quad{Zero, One, X, Z} {
		v, s := q.VS()
		require.Equal(t, q, QuadOf(v, s))
	}
}

func TestFactories(t *testing.T) {
	be := backend.NewScalar()
	z := Zeros(be, 4)
	require.Equal(t, 4, z.Len())
	for i := 0; i < 4; i++ {
		require.Equal(t, Zero, z.At(i))
	}
	u := Unknown(be, 3)
	for i := 0; i < 3; i++ {
		require.Equal(t, X, u.At(i))
	}
	o := Ones(be, 2)
	require.Equal(t, One, o.At(0))
	h := Hiz(be, 2)
	require.Equal(t, Z, h.At(1))
}

func TestRandIntDrawsDefinedLanes(t *testing.T) {
	be := backend.NewScalar()
	r := RandInt(be, rand.New(rand.NewSource(7)), 0, 2, 64)
	v, s := r.ToHost()
	for i := range v {
		require.LessOrEqual(t, v[i], uint32(1))
		require.Equal(t, uint32(1), s[i])
	}
}

func TestBackendMismatch(t *testing.T) {
	a := Zeros(backend.NewScalar(), 4)
	b := Zeros(backend.NewScalar(), 4)
	_, err := a.And(b)
	require.Error(t, err)
	var mismatch *backend.BackendMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestBatchSizeMismatch(t *testing.T) {
	be := backend.NewScalar()
	a := Zeros(be, 4)
	b := Zeros(be, 8)
	_, err := a.Or(b)
	require.Error(t, err)
	var mismatch *backend.BatchSizeMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestForceFault(t *testing.T) {
	be := backend.NewScalar()
	sig := Zeros(be, 4)
	enable, err := FromHost(be, []uint32{0, 1, 0, 1}, []uint32{1, 1, 1, 1})
	require.NoError(t, err)
	value, err := FromHost(be, []uint32{0, 1, 0, 1}, []uint32{1, 1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, sig.Force(enable, value))
	require.Equal(t, Zero, sig.At(0))
	require.Equal(t, One, sig.At(1))
	require.Equal(t, Zero, sig.At(2))
	require.Equal(t, One, sig.At(3))
}
