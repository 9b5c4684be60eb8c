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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/pdxjjb/cuversim/backend"
	"github.com/pdxjjb/cuversim/netlist"
	"github.com/pdxjjb/cuversim/simlog"
)

// backendFlag constrains --backend to the known execution targets at
// parse time.
type backendFlag string

var _ pflag.Value = (*backendFlag)(nil)

func (b *backendFlag) String() string { return string(*b) }

func (b *backendFlag) Set(v string) error {
	switch v {
	case "scalar", "parallel":
		*b = backendFlag(v)
		return nil
	}
	return fmt.Errorf("unknown backend %q (want scalar or parallel)", v)
}

func (b *backendFlag) Type() string { return "backend" }

// resolveBackend builds the Backend named by the --backend flag. The
// Parallel backend is tuned from the host's detected capabilities
// (backend.Capabilities), never changing its output, only its chunking.
func resolveBackend() (backend.Backend, error) {
	switch backendName {
	case "scalar":
		return backend.NewScalar(), nil
	case "parallel":
		p := backend.NewParallel()
		backend.DetectCapabilities().Tune(p)
		return p, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want scalar or parallel)", backendName)
	}
}

func loadChip(path string, be backend.Backend) (*netlist.Chip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read netlist %s: %w", path, err)
	}
	return netlist.LoadDescription(be, data)
}

// traceWatched samples every lane of every watched signal for the just
// committed cycle, writing one simlog.Trace record per lane.
func traceWatched(trace *simlog.Trace, chip *netlist.Chip, cycle uint32, watch []string) error {
	for _, name := range watch {
		t, err := chip.Signal(name)
		if err != nil {
			return err
		}
		v, s := t.ToHost()
		for lane := range v {
			trace.Sample(cycle, name, int32(lane), v[lane], s[lane])
		}
	}
	return nil
}
