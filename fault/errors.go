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

import "fmt"

// CapacityExceeded is returned by AddFault once every lane past lane 0
// has been claimed.
type CapacityExceeded struct {
	BatchSize int
}

func (e *CapacityExceeded) Error() string {
	return fmt.Sprintf("fault: campaign of batch size %d has no free lanes left", e.BatchSize)
}

// InvalidStuckValue is returned by AddFault when stuck is not 0 or 1.
type InvalidStuckValue struct {
	Value int
}

func (e *InvalidStuckValue) Error() string {
	return fmt.Sprintf("fault: stuck value %d is not 0 or 1", e.Value)
}
