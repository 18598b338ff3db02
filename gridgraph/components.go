package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells under
// 4-directional connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components appear in row-major order
// of their first cell.
//
// To convert an index back to a Cell, use CellAt(idx).
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Len())
	var comps [][]int
	var buf []Cell

	for i0, open := range gg.passable {
		if !open || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			buf = gg.Neighbors(gg.CellAt(queue[qi]), buf[:0])
			for _, n := range buf {
				vi := gg.Index(n)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// 4-connected region.
func (gg *GridGraph) Connected(a, b Cell) bool {
	if !gg.Passable(a) || !gg.Passable(b) {
		return false
	}
	return gg.Distances(a)[gg.Index(b)] >= 0
}
