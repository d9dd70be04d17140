// SPDX-License-Identifier: MIT

package mesh

// ConnectedComponents groups elements that are linked through shared nodes.
// Returns a slice of components; each component lists element indices in BFS
// order starting from its lowest index, and components are ordered by that
// starting index.
//
// Time:   O(N + Σ|elem|) using a node→element incidence list.
// Memory: O(N + Σ|elem|).
func (g *Grid[T]) ConnectedComponents() [][]int {
	incident := make([][]int, len(g.nodes))
	for ei, el := range g.elems {
		for _, n := range el.Nodes {
			incident[n] = append(incident[n], ei)
		}
	}

	seen := make([]bool, len(g.elems))
	var comps [][]int
	for e0 := range g.elems {
		if seen[e0] {
			continue
		}
		// BFS to collect component
		queue := []int{e0}
		seen[e0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, n := range g.elems[u].Nodes {
				for _, v := range incident[n] {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
