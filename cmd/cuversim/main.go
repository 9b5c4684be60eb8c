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

// Command cuversim drives the batched 4-state simulator from the shell:
// build a Chip from a YAML netlist description, step it, optionally
// inject faults or scan-load state, and dump signal samples.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdxjjb/cuversim/simlog"
)

var (
	backendName backendFlag = "scalar"
	verbose     bool
	diag        *simlog.Diag
)

func main() {
	root := &cobra.Command{
		Use:   "cuversim",
		Short: "batched four-state gate-level logic simulator",
	}
	root.PersistentFlags().Var(&backendName, "backend", "execution backend: scalar or parallel")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level diagnostics")
	cobra.OnInitialize(func() {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		diag = simlog.NewDiag(os.Stderr, level)
	})

	root.AddCommand(newRunCmd())
	root.AddCommand(newFaultCmd())
	root.AddCommand(newScanCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
