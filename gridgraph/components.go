package gridgraph

// LinkFunc reports whether the walk may step from one index to a neighbouring one.
type LinkFunc func(from, to int) bool

// ConnectedComponents groups lattice nodes that link joins, exploring each
// component breadth-first. A nil link treats every lattice edge as open.
// Returns a slice of components; each component lists indices in visit order,
// and components appear in ascending order of their lowest index.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (l *Lattice) ConnectedComponents(link LinkFunc) [][]int {
	total := l.NumberOfNodes()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range l.Neighbors(u) {
				if seen[v] || (link != nil && !link(u, v)) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
