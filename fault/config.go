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

package fault

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// record in a campaign file: one named stuck-at fault.
type fileRecord struct {
	Signal string `yaml:"signal"`
	Stuck  int    `yaml:"stuck"`
}

type file struct {
	BatchSize int          `yaml:"batch_size"`
	Faults    []fileRecord `yaml:"faults"`
}

// LoadCampaignFile parses a YAML fault list and replays it onto a fresh
// Campaign, in file order (so lane assignment is a deterministic
// function of file order, mirroring AddFault's own contract).
func LoadCampaignFile(data []byte) (*Campaign, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("fault: parse campaign file: %w", err)
	}
	c := NewCampaign(f.BatchSize)
	for _, rec := range f.Faults {
		if _, err := c.AddFault(rec.Signal, rec.Stuck); err != nil {
			return nil, fmt.Errorf("fault: campaign file: signal %q: %w", rec.Signal, err)
		}
	}
	return c, nil
}
