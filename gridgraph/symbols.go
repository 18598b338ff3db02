package gridgraph

import "fmt"

// Map is a parsed symbol grid: the original runes, the passability mask
// derived from them, and the resolved start and goal cells.
type Map struct {
	Name    string
	Symbols Symbols
	Runes   [][]rune
	Grid    *GridGraph
	Start   Cell
	Goal    Cell
}

// Parse turns rows of symbols into a Map.
//
// Behavior:
//  1. Zero runes in sym fall back to DefaultSymbols; Start, Goal,
//     Obstacle and Path must be pairwise distinct (ErrAmbiguousSymbols).
//  2. Rows must be non-empty and of equal rune length
//     (ErrEmptyGrid, ErrNonRectangular).
//  3. Exactly one Start and one Goal marker must be present. A missing or
//     repeated marker fails with ErrNoStart, ErrNoGoal or ErrDuplicateMarker,
//     all of which also match ErrInvalidMarker.
//
// Complexity: O(R×C).
func Parse(lines []string, sym Symbols) (*Map, error) {
	sym = sym.withDefaults()
	if err := sym.validate(); err != nil {
		return nil, err
	}

	runes := make([][]rune, len(lines))
	for r, line := range lines {
		runes[r] = []rune(line)
	}
	return fromRunes(runes, sym)
}

func fromRunes(runes [][]rune, sym Symbols) (*Map, error) {
	if len(runes) == 0 || len(runes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	mask := make([][]bool, len(runes))
	for r, row := range runes {
		mask[r] = make([]bool, len(row))
		for c, ch := range row {
			mask[r][c] = ch != sym.Obstacle
		}
	}
	gg, err := NewGridGraph(mask)
	if err != nil {
		return nil, err
	}

	start, err := uniqueMarker(runes, sym.Start, ErrNoStart)
	if err != nil {
		return nil, err
	}
	goal, err := uniqueMarker(runes, sym.Goal, ErrNoGoal)
	if err != nil {
		return nil, err
	}

	return &Map{
		Symbols: sym,
		Runes:   runes,
		Grid:    gg,
		Start:   start,
		Goal:    goal,
	}, nil
}

// FindMarker returns the first cell holding r in row-major scan order.
// The boolean is false when r does not occur.
func FindMarker(rows [][]rune, r rune) (Cell, bool) {
	for i, row := range rows {
		for j, ch := range row {
			if ch == r {
				return Cell{Row: i, Col: j}, true
			}
		}
	}
	return Cell{}, false
}

func uniqueMarker(rows [][]rune, r rune, missing error) (Cell, error) {
	found, ok := FindMarker(rows, r)
	if !ok {
		return Cell{}, &markerError{kind: missing, detail: fmt.Sprintf("symbol %q", r)}
	}
	for i := found.Row; i < len(rows); i++ {
		j0 := 0
		if i == found.Row {
			j0 = found.Col + 1
		}
		for j := j0; j < len(rows[i]); j++ {
			if rows[i][j] == r {
				return Cell{}, &markerError{
					kind:   ErrDuplicateMarker,
					detail: fmt.Sprintf("symbol %q at (%d,%d) and (%d,%d)", r, found.Row, found.Col, i, j),
				}
			}
		}
	}
	return found, nil
}
