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
	"fmt"

	"github.com/pdxjjb/cuversim/backend"
	"github.com/pdxjjb/cuversim/fault"
	"github.com/pdxjjb/cuversim/gate"
	"github.com/pdxjjb/cuversim/logic"
)

const externalDriver = "<external>"

type ffBinding struct {
	output string
	d      string
	reset  string // empty if the gate declared no reset port
	ff     *gate.FlipFlop
}

// Chip is a compiled netlist: a fixed evaluation plan over a live
// signal-name -> LogicTensor map.
type Chip struct {
	be        backend.Backend
	batchSize int
	signals   map[string]*logic.LogicTensor
	roles     map[string]SignalRole
	comb      []GateInstance
	order     []int
	ffs       []*ffBinding
	ffByName  map[string]*ffBinding
	inputs    []string
	campaign  *fault.Campaign
}

// NewChip compiles inputs/outputs/wires/gates into a Chip with all
// signal lanes initialized to 0 (V=0, S=1) and a derived evaluation plan.
// Bad arity, unknown signals and duplicate drivers are all collected into
// one ErrorList before returning, so a caller sees every such problem in
// one pass. Levelization runs only once those checks pass, and reports
// the first combinational cycle it finds as a *CombinationalCycle.
func NewChip(be backend.Backend, batchSize int, inputs, outputs, wires []string, gates []GateInstance) (*Chip, error) {
	c := &Chip{
		be:        be,
		batchSize: batchSize,
		signals:   make(map[string]*logic.LogicTensor),
		roles:     make(map[string]SignalRole),
		ffByName:  make(map[string]*ffBinding),
	}
	errs := &ErrorList{}

	declare := func(name string, role SignalRole) {
		if _, ok := c.signals[name]; !ok {
			c.signals[name] = logic.Zeros(be, batchSize)
		}
		c.roles[name] = role
	}
	c.inputs = append(c.inputs, inputs...)
	for _, n := range inputs {
		declare(n, RoleInput)
	}
	for _, n := range wires {
		declare(n, RoleWire)
	}
	for _, n := range outputs {
		declare(n, RoleOutput)
	}

	driverOf := make(map[string]string, len(inputs)+len(gates))
	for _, n := range inputs {
		driverOf[n] = externalDriver
	}

	for _, g := range gates {
		if err := g.Kind.CheckArity(len(g.Inputs)); err != nil {
			errs.appendIfNotNil(fmt.Errorf("netlist: gate %q: %w", g.Name, err))
			continue
		}
		if prior, ok := driverOf[g.Output]; ok {
			errs.appendIfNotNil(&DuplicateDriver{Signal: g.Output, First: prior, Second: g.Name})
			continue
		}
		driverOf[g.Output] = g.Name
		if g.Kind.IsSequential() {
			declare(g.Output, RoleState)
		} else if _, ok := c.signals[g.Output]; !ok {
			declare(g.Output, RoleWire)
		}
	}

	checkKnown := func(name string) {
		if _, ok := c.signals[name]; !ok {
			errs.appendIfNotNil(&UnknownSignal{Name: name})
		}
	}
	for _, g := range gates {
		for _, in := range g.Inputs {
			checkKnown(in)
		}
	}

	if err := errs.AsError(); err != nil {
		return nil, err
	}

	for _, g := range gates {
		if !g.Kind.IsSequential() {
			c.comb = append(c.comb, g)
			continue
		}
		binding := &ffBinding{output: g.Output, d: g.Inputs[0], ff: gate.NewFlipFlop(be, batchSize)}
		if len(g.Inputs) > 1 {
			binding.reset = g.Inputs[1]
		}
		c.ffs = append(c.ffs, binding)
		c.ffByName[g.Output] = binding
		c.signals[g.Output] = binding.ff.Q()
	}

	order, err := levelize(c.comb)
	if err != nil {
		return nil, err
	}
	c.order = order
	return c, nil
}

// SetFaultCampaign wires a FaultCampaign into this Chip's step(): after
// every gate write, the signal's fault mask (if any) is overlaid before
// any consumer reads it.
func (c *Chip) SetFaultCampaign(campaign *fault.Campaign) { c.campaign = campaign }

// BatchSize returns the chip's fixed lane count.
func (c *Chip) BatchSize() int { return c.batchSize }

// Backend returns the chip's owning backend.
func (c *Chip) Backend() backend.Backend { return c.be }

// SetInput overwrites a primary input's tensor.
func (c *Chip) SetInput(name string, t *logic.LogicTensor) error {
	if _, ok := c.signals[name]; !ok {
		return &UnknownSignal{Name: name}
	}
	if t.Backend() != c.be {
		return &backend.BackendMismatch{Op: "SetInput"}
	}
	if t.Len() != c.batchSize {
		return &backend.BatchSizeMismatch{Op: "SetInput", Expected: c.batchSize, Got: t.Len()}
	}
	c.signals[name] = t
	return nil
}

// GetOutput returns the current tensor for name.
func (c *Chip) GetOutput(name string) (*logic.LogicTensor, error) {
	return c.Signal(name)
}

// FlipFlop returns the underlying flip-flop element backing state output
// name, for collaborators that need to bind it into a scan.Chain
// directly.
func (c *Chip) FlipFlop(name string) (*gate.FlipFlop, error) {
	f, ok := c.ffByName[name]
	if !ok {
		return nil, &UnknownSignal{Name: name}
	}
	return f.ff, nil
}

// Role reports how name was declared.
func (c *Chip) Role(name string) (SignalRole, error) {
	r, ok := c.roles[name]
	if !ok {
		return 0, &UnknownSignal{Name: name}
	}
	return r, nil
}

// Signal returns the current tensor bound to name, combinational,
// sequential, input or output alike. State outputs always read through
// their flip-flop, so a scan load is visible immediately.
func (c *Chip) Signal(name string) (*logic.LogicTensor, error) {
	if f, ok := c.ffByName[name]; ok {
		return f.ff.Q(), nil
	}
	t, ok := c.signals[name]
	if !ok {
		return nil, &UnknownSignal{Name: name}
	}
	return t, nil
}

// Step runs one cycle: the combinational pass in topological order (with
// an immediate fault overlay per gate write), then every flip-flop's
// advance from pre-edge values, then an atomic publish of every Q.
func (c *Chip) Step() error {
	// A scan load (or any direct SetQ) replaces a flip-flop's Q out from
	// under the signal table; re-read every Q so this cycle's pre-edge
	// state is what the flip-flops actually hold.
	for _, f := range c.ffs {
		c.signals[f.output] = f.ff.Q()
	}
	if c.campaign != nil {
		for _, name := range c.inputs {
			if err := c.campaign.Overlay(c.signals[name], name); err != nil {
				return err
			}
		}
	}
	for _, idx := range c.order {
		g := c.comb[idx]
		inputs := make([]*logic.LogicTensor, len(g.Inputs))
		for i, name := range g.Inputs {
			inputs[i] = c.signals[name]
		}
		out, err := gate.Eval(g.Kind, inputs)
		if err != nil {
			return err
		}
		c.signals[g.Output] = out
		if c.campaign != nil {
			if err := c.campaign.Overlay(c.signals[g.Output], g.Output); err != nil {
				return err
			}
		}
	}

	for _, f := range c.ffs {
		d := c.signals[f.d]
		var reset *logic.LogicTensor
		if f.reset != "" {
			reset = c.signals[f.reset]
		}
		if err := f.ff.Advance(d, reset); err != nil {
			return err
		}
	}
	for _, f := range c.ffs {
		f.ff.Commit()
		c.signals[f.output] = f.ff.Q()
	}
	return nil
}
