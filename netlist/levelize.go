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

package netlist

// levelize computes the evaluation order for the combinational gates in
// comb (already in declaration order). DFF outputs are graph roots (their
// Q is available at cycle start) and DFF inputs are graph sinks, so the
// combinational DAG is built over comb alone; edges never cross into
// sequential gates.
//
// Returns the evaluation order as indices into comb. Ties (multiple
// zero-indegree gates ready at once) always resolve to the lowest
// original declaration index, so the result is a deterministic function
// of insertion order alone.
func levelize(comb []GateInstance) ([]int, error) {
	n := len(comb)
	producedBy := make(map[string]int, n) // signal -> index into comb
	for i, g := range comb {
		producedBy[g.Output] = i
	}

	adj := make([][]int, n)
	indegree := make([]int, n)
	for v, g := range comb {
		seen := make(map[int]bool)
		for _, in := range g.Inputs {
			u, ok := producedBy[in]
			if !ok || seen[u] {
				continue
			}
			if u == v {
				// A gate feeding its own input is the one-gate cycle.
				return nil, &CombinationalCycle{Signal: g.Output}
			}
			seen[u] = true
			adj[u] = append(adj[u], v)
			indegree[v]++
		}
	}

	visited := make([]bool, n)
	order := make([]int, 0, n)
	for len(order) < n {
		next := -1
		for i := 0; i < n; i++ {
			if !visited[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next == -1 {
			return nil, &CombinationalCycle{Signal: firstUnvisitedOutput(comb, producedBy, visited)}
		}
		visited[next] = true
		order = append(order, next)
		for _, v := range adj[next] {
			indegree[v]--
		}
	}
	return order, nil
}

func firstUnvisitedOutput(comb []GateInstance, producedBy map[string]int, visited []bool) string {
	for i := range comb {
		if !visited[i] {
			// Every unvisited gate has an unvisited predecessor, so walking
			// back len(comb) steps from one lands on the cycle itself.
			for step := 0; step < len(comb); step++ {
				for _, in := range comb[i].Inputs {
					if u, ok := producedBy[in]; ok && !visited[u] {
						i = u
						break
					}
				}
			}
			return comb[i].Output
		}
	}
	return ""
}
