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

	"github.com/spf13/cobra"

	"github.com/pdxjjb/cuversim/gate"
	"github.com/pdxjjb/cuversim/scan"
)

func newScanCmd() *cobra.Command {
	var netlistPath string
	var patternPath string
	var cycles int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "zero-time scan-load a pattern into a named flip-flop chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			be, err := resolveBackend()
			if err != nil {
				return err
			}
			chip, err := loadChip(netlistPath, be)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(patternPath)
			if err != nil {
				return fmt.Errorf("read pattern %s: %w", patternPath, err)
			}
			pattern, err := scan.ParsePatternFile(data)
			if err != nil {
				return err
			}

			ffs := make([]*gate.FlipFlop, len(pattern.Chain))
			for i, name := range pattern.Chain {
				ffs[i], err = chip.FlipFlop(name)
				if err != nil {
					return err
				}
			}
			chain := scan.NewChain(be, chip.BatchSize(), ffs)
			if err := chain.Load(pattern.PatternV, pattern.PatternS); err != nil {
				return err
			}
			diag.Info("scan load complete", "chain_length", chain.Len())

			for cycle := 0; cycle < cycles; cycle++ {
				if err := chip.Step(); err != nil {
					return fmt.Errorf("step %d: %w", cycle, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&netlistPath, "netlist", "", "path to a YAML netlist description")
	cmd.Flags().StringVar(&patternPath, "pattern", "", "path to a YAML scan pattern file")
	cmd.Flags().IntVar(&cycles, "cycles", 0, "number of step() cycles to run after loading")
	cmd.MarkFlagRequired("netlist")
	cmd.MarkFlagRequired("pattern")
	return cmd
}
