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
	"strings"
)

// UnknownSignal is returned by SetInput/GetOutput/Signal when name was
// never declared.
type UnknownSignal struct {
	Name string
}

func (e *UnknownSignal) Error() string {
	return fmt.Sprintf("netlist: unknown signal %q", e.Name)
}

// DuplicateDriver is returned at Chip construction when two gates write
// the same output signal.
type DuplicateDriver struct {
	Signal string
	First  string
	Second string
}

func (e *DuplicateDriver) Error() string {
	return fmt.Sprintf("netlist: signal %q driven by both %q and %q", e.Signal, e.First, e.Second)
}

// CombinationalCycle is returned at Chip construction when levelization
// finds a strongly-connected component in the combinational gate graph.
type CombinationalCycle struct {
	Signal string
}

func (e *CombinationalCycle) Error() string {
	return fmt.Sprintf("netlist: combinational cycle through signal %q", e.Signal)
}

// ShapeMismatch reports a YAML description whose batch_size is not
// positive.
type ShapeMismatch struct {
	Reason string
}

func (e *ShapeMismatch) Error() string { return "netlist: shape mismatch: " + e.Reason }

// ErrorList aggregates every error found while compiling a netlist, so a
// caller sees every problem in one pass instead of stopping at the first.
type ErrorList struct {
	errors []error
}

func (list *ErrorList) appendIfNotNil(err error) {
	if err == nil {
		return
	}
	list.errors = append(list.errors, err)
}

func (list *ErrorList) Length() int { return len(list.errors) }

func (list *ErrorList) Error() string {
	if list.Length() == 0 {
		return "(no errors)"
	}
	var sb strings.Builder
	for _, err := range list.errors {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// AsError returns list as an error if it has any entries, else nil, the
// usual pattern for "compile, then check whether anything went wrong".
func (list *ErrorList) AsError() error {
	if list.Length() == 0 {
		return nil
	}
	return list
}
