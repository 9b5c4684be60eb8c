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

// Package netlist compiles a declared set of signals and gate instances
// into a Chip: a fixed evaluation plan that steps combinational logic in
// topological order and sequential elements on a two-phase synchronous
// edge.
package netlist

import "github.com/pdxjjb/cuversim/gate"

// SignalRole classifies a signal for validation purposes; it has no
// bearing on evaluation order.
type SignalRole int

const (
	RoleInput SignalRole = iota
	RoleOutput
	RoleWire
	RoleState // the Q of a flip-flop
)

func (r SignalRole) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	case RoleWire:
		return "wire"
	case RoleState:
		return "state"
	default:
		return "?"
	}
}

// GateInstance is one declared gate: a kind, a unique name (for
// diagnostics), one output signal, and an ordered list of input signals.
// For DFF, Inputs is (D) or (D, reset); Output is Q.
type GateInstance struct {
	Kind   gate.Kind
	Name   string
	Output string
	Inputs []string
}
