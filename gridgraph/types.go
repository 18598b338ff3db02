// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Cell identifies a grid position by row and column.
// It is a comparable value type and can be used directly as a map key.
type Cell struct {
	Row, Col int
}

// Add returns the cell displaced by the offset d = {dRow, dCol}.
func (c Cell) Add(d [2]int) Cell {
	return Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
}

// Adjacent reports whether c and o differ by exactly one orthogonal step.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := abs(c.Row-o.Row), abs(c.Col-o.Col)
	return dr+dc == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Default marker symbols, matching the classic ASCII maze convention.
const (
	DefaultStart    = 'S'
	DefaultGoal     = 'E'
	DefaultObstacle = '#'
	DefaultPath     = '*'
)

// Symbols names the runes that carry meaning in a symbol grid.
// Any rune other than Obstacle is passable, Start and Goal included.
type Symbols struct {
	Start    rune
	Goal     rune
	Obstacle rune
	Path     rune
}

// DefaultSymbols returns Start='S', Goal='E', Obstacle='#', Path='*'.
func DefaultSymbols() Symbols {
	return Symbols{
		Start:    DefaultStart,
		Goal:     DefaultGoal,
		Obstacle: DefaultObstacle,
		Path:     DefaultPath,
	}
}

// withDefaults fills zero runes with the defaults.
func (s Symbols) withDefaults() Symbols {
	d := DefaultSymbols()
	if s.Start == 0 {
		s.Start = d.Start
	}
	if s.Goal == 0 {
		s.Goal = d.Goal
	}
	if s.Obstacle == 0 {
		s.Obstacle = d.Obstacle
	}
	if s.Path == 0 {
		s.Path = d.Path
	}
	return s
}

// validate requires all four roles to use distinct runes.
func (s Symbols) validate() error {
	roles := [...]rune{s.Start, s.Goal, s.Obstacle, s.Path}
	for i := range roles {
		for j := i + 1; j < len(roles); j++ {
			if roles[i] == roles[j] {
				return fmt.Errorf("%w: %q used twice", ErrAmbiguousSymbols, roles[i])
			}
		}
	}
	return nil
}

// GridGraph treats a rectangular passability mask as a 4-connected graph.
// It is immutable once built; all methods are safe for concurrent readers.
// Cells are stored row-major: index = Row*Cols + Col.
type GridGraph struct {
	Rows, Cols int
	passable   []bool
}
