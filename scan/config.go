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

package scan

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Pattern is the YAML-serializable shape of a scan_load argument: an
// ordered chain of flip-flop signal names and the N-row x K-column
// pattern matrix to load into them.
type Pattern struct {
	Chain    []string   `yaml:"chain"`
	PatternV [][]uint32 `yaml:"pattern_v"`
	PatternS [][]uint32 `yaml:"pattern_s,omitempty"`
}

// ParsePatternFile decodes a YAML scan pattern file.
func ParsePatternFile(data []byte) (*Pattern, error) {
	var p Pattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("scan: parse pattern file: %w", err)
	}
	return &p, nil
}
