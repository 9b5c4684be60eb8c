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

// Package gate implements the stateless combinational operators and the
// stateful flip-flop element, both expressed purely through logic.LogicTensor
// / backend.Backend kernels.
package gate

import (
	"fmt"

	"github.com/pdxjjb/cuversim/logic"
)

// Kind identifies a gate's combinational or sequential function.
type Kind int

const (
	AND Kind = iota
	OR
	XOR
	NOT
	NAND
	NOR
	XNOR
	BUF
	DFF
)

func (k Kind) String() string {
	switch k {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case NOT:
		return "NOT"
	case NAND:
		return "NAND"
	case NOR:
		return "NOR"
	case XNOR:
		return "XNOR"
	case BUF:
		return "BUF"
	case DFF:
		return "DFF"
	default:
		return "?"
	}
}

// IsSequential reports whether k is DFF (state, not combinational).
func (k Kind) IsSequential() bool { return k == DFF }

// CheckArity validates the number of input signals for kind k: exactly 1
// for NOT/BUF, at least 2 for the binary kinds, and 1 or 2 for DFF
// (D, optional reset).
func (k Kind) CheckArity(n int) error {
	switch k {
	case NOT, BUF:
		if n != 1 {
			return fmt.Errorf("gate: %s requires exactly 1 input, got %d", k, n)
		}
	case AND, OR, XOR, NAND, NOR, XNOR:
		if n < 2 {
			return fmt.Errorf("gate: %s requires at least 2 inputs, got %d", k, n)
		}
	case DFF:
		if n < 1 || n > 2 {
			return fmt.Errorf("gate: DFF requires D and an optional reset, got %d inputs", n)
		}
	default:
		return fmt.Errorf("gate: unknown kind %d", int(k))
	}
	return nil
}

// Eval computes a combinational gate's output tensor from its ordered
// input tensors. Binary kinds with more than two inputs are folded as a
// left-to-right reduction.
func Eval(kind Kind, inputs []*logic.LogicTensor) (*logic.LogicTensor, error) {
	if err := kind.CheckArity(len(inputs)); err != nil {
		return nil, err
	}
	switch kind {
	case NOT:
		return inputs[0].Not()
	case BUF:
		return inputs[0].Copy()
	case AND:
		return foldBinary(inputs, (*logic.LogicTensor).And)
	case OR:
		return foldBinary(inputs, (*logic.LogicTensor).Or)
	case XOR:
		return foldBinary(inputs, (*logic.LogicTensor).Xor)
	case NAND:
		out, err := foldBinary(inputs, (*logic.LogicTensor).And)
		if err != nil {
			return nil, err
		}
		return out.Not()
	case NOR:
		out, err := foldBinary(inputs, (*logic.LogicTensor).Or)
		if err != nil {
			return nil, err
		}
		return out.Not()
	case XNOR:
		out, err := foldBinary(inputs, (*logic.LogicTensor).Xor)
		if err != nil {
			return nil, err
		}
		return out.Not()
	default:
		return nil, fmt.Errorf("gate: %s is not combinational", kind)
	}
}

func foldBinary(inputs []*logic.LogicTensor, op func(a, b *logic.LogicTensor) (*logic.LogicTensor, error)) (*logic.LogicTensor, error) {
	acc := inputs[0]
	for _, in := range inputs[1:] {
		var err error
		acc, err = op(acc, in)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
