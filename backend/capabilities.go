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

package backend

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Capabilities describes the host this process is running on. It is used
// only to size Parallel's chunk width (via Tune), never to change a
// kernel's result, which must stay bit-identical across backends.
type Capabilities struct {
	CPUs int
	AVX2 bool
	NEON bool
}

// DetectCapabilities reports the running host's core count and vector
// unit hints.
func DetectCapabilities() Capabilities {
	return Capabilities{
		CPUs: runtime.NumCPU(),
		AVX2: cpu.X86.HasAVX2,
		NEON: cpu.ARM64.HasASIMD,
	}
}

// Tune sizes a Parallel backend from detected host capabilities. Wider
// vector units favor larger per-goroutine chunks (less dispatch overhead
// per useful op); narrower or absent ones favor more, smaller chunks.
func (c Capabilities) Tune(p *Parallel) {
	p.Workers = c.CPUs
	switch {
	case c.AVX2:
		p.MinChunk = 8192
	case c.NEON:
		p.MinChunk = 4096
	default:
		p.MinChunk = 2048
	}
}
