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

	"gopkg.in/yaml.v3"

	"github.com/pdxjjb/cuversim/backend"
	"github.com/pdxjjb/cuversim/gate"
)

// GateRecord is the on-disk shape of one gate declaration: ports follow
// a positional convention: for combinational kinds ports = [output,
// inputs...]; for DFF, ports = [Q, D, clk, reset?], and the clk entry is
// accepted and ignored (clocking is implicit in Step).
type GateRecord struct {
	Kind  string   `yaml:"kind"`
	Name  string   `yaml:"name"`
	Ports []string `yaml:"ports"`
}

// Description is the YAML-serializable form of a netlist, the ambient
// config-loading counterpart to building a Chip by hand in code.
type Description struct {
	BatchSize int          `yaml:"batch_size"`
	Inputs    []string     `yaml:"inputs"`
	Outputs   []string     `yaml:"outputs"`
	Wires     []string     `yaml:"wires"`
	Gates     []GateRecord `yaml:"gates"`
}

var kindByName = map[string]gate.Kind{
	"AND": gate.AND, "OR": gate.OR, "XOR": gate.XOR, "NOT": gate.NOT,
	"NAND": gate.NAND, "NOR": gate.NOR, "XNOR": gate.XNOR, "BUF": gate.BUF,
	"DFF": gate.DFF,
}

// ParseDescription decodes raw YAML bytes into a Description.
func ParseDescription(data []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("netlist: parse description: %w", err)
	}
	return &d, nil
}

// Compile turns a Description into gate instances and builds a Chip on
// be. clk ports on DFF records are dropped; only Q, D
// and the optional reset are kept as the DFF's output/inputs.
func (d *Description) Compile(be backend.Backend) (*Chip, error) {
	if d.BatchSize <= 0 {
		return nil, &ShapeMismatch{Reason: fmt.Sprintf("batch_size %d must be positive", d.BatchSize)}
	}
	gates := make([]GateInstance, 0, len(d.Gates))
	errs := &ErrorList{}
	for _, rec := range d.Gates {
		kind, ok := kindByName[rec.Kind]
		if !ok {
			errs.appendIfNotNil(fmt.Errorf("netlist: gate %q: unknown kind %q", rec.Name, rec.Kind))
			continue
		}
		if len(rec.Ports) == 0 {
			errs.appendIfNotNil(fmt.Errorf("netlist: gate %q: no ports declared", rec.Name))
			continue
		}
		output := rec.Ports[0]
		var inputs []string
		if kind == gate.DFF {
			// ports: [Q, D, clk, reset?]
			if len(rec.Ports) < 3 {
				errs.appendIfNotNil(fmt.Errorf("netlist: gate %q: DFF needs at least Q, D, clk", rec.Name))
				continue
			}
			inputs = append(inputs, rec.Ports[1])
			if len(rec.Ports) > 3 {
				inputs = append(inputs, rec.Ports[3])
			}
		} else {
			inputs = rec.Ports[1:]
		}
		gates = append(gates, GateInstance{Kind: kind, Name: rec.Name, Output: output, Inputs: inputs})
	}
	if err := errs.AsError(); err != nil {
		return nil, err
	}
	return NewChip(be, d.BatchSize, d.Inputs, d.Outputs, d.Wires, gates)
}

// LoadDescription reads and compiles a YAML netlist description in one
// step.
func LoadDescription(be backend.Backend, data []byte) (*Chip, error) {
	d, err := ParseDescription(data)
	if err != nil {
		return nil, err
	}
	return d.Compile(be)
}

// Sample reads the (V,S) pair of every named signal and maps it to the
// display convention (0,1)->'0', (1,1)->'1', S=0->'X' (Z folds to
// X), returning one rune per requested name per lane. Sample is a pure
// reader: it never mutates Chip state, matching the waveform-export
// boundary's guarantee that samples reflect only just-committed state.
func (c *Chip) Sample(names ...string) (map[string][]rune, error) {
	out := make(map[string][]rune, len(names))
	for _, name := range names {
		t, err := c.Signal(name)
		if err != nil {
			return nil, err
		}
		v, s := t.ToHost()
		runes := make([]rune, len(v))
		for i := range v {
			switch {
			case s[i] == 1 && v[i] == 0:
				runes[i] = '0'
			case s[i] == 1 && v[i] == 1:
				runes[i] = '1'
			default:
				runes[i] = 'X'
			}
		}
		out[name] = runes
	}
	return out, nil
}
