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

	"github.com/pdxjjb/cuversim/fault"
)

func newFaultCmd() *cobra.Command {
	var netlistPath string
	var campaignPath string
	var cycles int

	cmd := &cobra.Command{
		Use:   "fault",
		Short: "step a chip with a fault campaign wired in (no per-lane detection report)",
		RunE: func(cmd *cobra.Command, args []string) error {
			be, err := resolveBackend()
			if err != nil {
				return err
			}
			chip, err := loadChip(netlistPath, be)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(campaignPath)
			if err != nil {
				return fmt.Errorf("read campaign %s: %w", campaignPath, err)
			}
			campaign, err := fault.LoadCampaignFile(data)
			if err != nil {
				return err
			}
			if campaign.BatchSize() != chip.BatchSize() {
				return fmt.Errorf("campaign batch size %d does not match chip batch size %d",
					campaign.BatchSize(), chip.BatchSize())
			}
			chip.SetFaultCampaign(campaign)
			diag.Info("campaign wired", "run_id", campaign.ID.String(), "batch_size", campaign.BatchSize())

			for cycle := 0; cycle < cycles; cycle++ {
				if err := chip.Step(); err != nil {
					return fmt.Errorf("step %d: %w", cycle, err)
				}
			}
			diag.Info("fault campaign complete", "cycles", cycles)
			return nil
		},
	}
	cmd.Flags().StringVar(&netlistPath, "netlist", "", "path to a YAML netlist description")
	cmd.Flags().StringVar(&campaignPath, "campaign", "", "path to a YAML fault campaign file")
	cmd.Flags().IntVar(&cycles, "cycles", 1, "number of step() cycles to run")
	cmd.MarkFlagRequired("netlist")
	cmd.MarkFlagRequired("campaign")
	return cmd
}
