// Package gridgraph provides utilities to treat a 2D obstacle mask as a graph.
// It supports:
//
//   - Four-directional adjacency (no diagonal moves)
//   - Symbol-grid parsing with start/goal marker discovery
//   - Plain BFS distances, used as an independent shortest-path baseline
//   - Identification of connected passable regions
//   - Rendering a path over the original symbols
package gridgraph

// neighborOffsets lists the 4-directional moves as {dRow, dCol} in the
// order up, down, left, right. Search tie-breaks depend on this order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular mask
// where mask[r][c] == true marks a passable cell.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if mask has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(mask [][]bool) (*GridGraph, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(mask), len(mask[0])
	for _, row := range mask {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	passable := make([]bool, 0, rows*cols)
	for _, row := range mask {
		passable = append(passable, row...)
	}

	return &GridGraph{Rows: rows, Cols: cols, passable: passable}, nil
}

// FromStrings builds a GridGraph from rows of runes where obstacle marks a
// blocked cell and every other rune is passable.
func FromStrings(rows []string, obstacle rune) (*GridGraph, error) {
	mask := make([][]bool, len(rows))
	for r, line := range rows {
		runes := []rune(line)
		mask[r] = make([]bool, len(runes))
		for c, ch := range runes {
			mask[r][c] = ch != obstacle
		}
	}
	return NewGridGraph(mask)
}

// Len returns the number of cells, Rows×Cols.
func (gg *GridGraph) Len() int {
	return len(gg.passable)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Rows && c.Col >= 0 && c.Col < gg.Cols
}

// Passable reports whether c is in bounds and not an obstacle.
// Complexity: O(1).
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c) && gg.passable[gg.Index(c)]
}

// Neighbors appends the in-bounds passable 4-neighbors of c to buf and
// returns it. Order is always up, down, left, right.
// Passing a reused buf[:0] avoids an allocation per call.
func (gg *GridGraph) Neighbors(c Cell, buf []Cell) []Cell {
	for _, d := range neighborOffsets {
		n := c.Add(d)
		if gg.Passable(n) {
			buf = append(buf, n)
		}
	}
	return buf
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Row*gg.Cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) CellAt(idx int) Cell {
	return Cell{Row: idx / gg.Cols, Col: idx % gg.Cols}
}
