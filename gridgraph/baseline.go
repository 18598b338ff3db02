package gridgraph

// Distances runs a breadth-first search from src over passable cells and
// returns the step count to every cell, indexed row-major. Unreachable
// cells, obstacles, and every cell when src itself is not passable hold -1.
//
// With unit step cost BFS distances are exact shortest-path lengths, which
// makes this the reference against which heuristic searches are checked.
//
// Time:   O(R·C·4).
// Memory: O(R·C).
func (gg *GridGraph) Distances(src Cell) []int {
	dist := make([]int, gg.Len())
	for i := range dist {
		dist[i] = -1
	}
	if !gg.Passable(src) {
		return dist
	}

	s := gg.Index(src)
	dist[s] = 0
	queue := []int{s}
	var buf []Cell
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		buf = gg.Neighbors(gg.CellAt(u), buf[:0])
		for _, n := range buf {
			v := gg.Index(n)
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// BFSPath returns one shortest path from src to dst by breadth-first search,
// or nil and false when dst is unreachable. Predecessors are kept in a dense
// prev[] slice and the path is rebuilt from dst backwards.
//
// Time:   O(R·C·4).
// Memory: O(R·C).
func (gg *GridGraph) BFSPath(src, dst Cell) ([]Cell, bool) {
	if !gg.Passable(src) || !gg.Passable(dst) {
		return nil, false
	}

	prev := make([]int, gg.Len())
	for i := range prev {
		prev[i] = -2 // unseen
	}
	s, t := gg.Index(src), gg.Index(dst)
	prev[s] = -1
	queue := []int{s}
	var buf []Cell
	for qi := 0; qi < len(queue) && prev[t] == -2; qi++ {
		u := queue[qi]
		buf = gg.Neighbors(gg.CellAt(u), buf[:0])
		for _, n := range buf {
			v := gg.Index(n)
			if prev[v] == -2 {
				prev[v] = u
				queue = append(queue, v)
			}
		}
	}
	if prev[t] == -2 {
		return nil, false
	}

	var path []Cell
	for at := t; at >= 0; at = prev[at] {
		path = append(path, gg.CellAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
