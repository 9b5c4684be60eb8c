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
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdxjjb/cuversim/simlog"
)

func newRunCmd() *cobra.Command {
	var netlistPath string
	var cycles int
	var tracePath string
	var watchCSV string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "build a chip from a netlist description and step it",
		RunE: func(cmd *cobra.Command, args []string) error {
			be, err := resolveBackend()
			if err != nil {
				return err
			}
			chip, err := loadChip(netlistPath, be)
			if err != nil {
				return err
			}
			diag.Info("chip built", "backend", be.Name(), "batch_size", chip.BatchSize())

			var watch []string
			if watchCSV != "" {
				watch = strings.Split(watchCSV, ",")
			}

			var trace *simlog.Trace
			if tracePath != "" {
				trace, err = simlog.OpenTrace(tracePath, uuid.New())
				if err != nil {
					return err
				}
				defer trace.Close()
			}

			for cycle := 0; cycle < cycles; cycle++ {
				if err := chip.Step(); err != nil {
					return fmt.Errorf("step %d: %w", cycle, err)
				}
				if trace == nil || len(watch) == 0 {
					continue
				}
				if err := traceWatched(trace, chip, uint32(cycle), watch); err != nil {
					return err
				}
			}
			diag.Info("run complete", "cycles", cycles)
			return nil
		},
	}
	cmd.Flags().StringVar(&netlistPath, "netlist", "", "path to a YAML netlist description")
	cmd.Flags().IntVar(&cycles, "cycles", 1, "number of step() cycles to run")
	cmd.Flags().StringVar(&tracePath, "trace", "", "optional path to write a binary waveform trace")
	cmd.Flags().StringVar(&watchCSV, "watch", "", "comma-separated signal names to sample into --trace each cycle")
	cmd.MarkFlagRequired("netlist")
	return cmd
}
