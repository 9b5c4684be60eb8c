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

import "fmt"

// ShapeMismatch is returned by Load when the pattern matrix's dimensions
// don't match the chain length or the chain's batch size.
type ShapeMismatch struct {
	Reason string
}

func (e *ShapeMismatch) Error() string { return fmt.Sprintf("scan: shape mismatch: %s", e.Reason) }
