// Package astar_test contains unit tests for the A* implementation.
// These tests validate correct behavior on fixed mazes, unreachable goals,
// invalid inputs, options and hooks.
package astar_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// serpentine is the 7×7 demonstration maze; its walls force the search to
// weigh the outer corridors against the inner dead ends.
var serpentine = []string{
	"S......",
	".###.#.",
	".....#.",
	".#####.",
	".#.....",
	".#####.",
	"......E",
}

func mustParse(t testing.TB, lines ...string) *gridgraph.Map {
	t.Helper()
	m, err := gridgraph.Parse(lines, gridgraph.DefaultSymbols())
	require.NoError(t, err)
	return m
}

// assertValidPath checks the path contract: starts at start, ends at goal,
// every step is one orthogonal move, every cell is passable.
func assertValidPath(t testing.TB, g *gridgraph.GridGraph, start, goal gridgraph.Cell, path []gridgraph.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0], "path must begin at start")
	assert.Equal(t, goal, path[len(path)-1], "path must end at goal")
	for i, c := range path {
		assert.True(t, g.Passable(c), "cell %v at %d is not passable", c, i)
		if i > 0 {
			assert.True(t, path[i-1].Adjacent(c), "step %v -> %v is not a 4-neighbor move", path[i-1], c)
		}
	}
}

func cells(pairs ...[2]int) []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(pairs))
	for i, p := range pairs {
		out[i] = gridgraph.Cell{Row: p[0], Col: p[1]}
	}
	return out
}

// ------------------------------------------------------------------------
// 1. Fixed scenarios
// ------------------------------------------------------------------------

func TestSearch_SerpentineGolden(t *testing.T) {
	m := mustParse(t, serpentine...)

	res, err := astar.SearchMap(m)
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, 12, res.Cost)
	assert.Equal(t, 28, res.Expanded)
	assertValidPath(t, m.Grid, m.Start, m.Goal, res.Path)

	// Insertion-order tie-break with up, down, left, right neighbor order
	// settles on the left column, then the bottom row.
	want := cells(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{4, 0}, [2]int{5, 0}, [2]int{6, 0},
		[2]int{6, 1}, [2]int{6, 2}, [2]int{6, 3}, [2]int{6, 4}, [2]int{6, 5}, [2]int{6, 6},
	)
	if diff := cmp.Diff(want, res.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_SerpentineMatchesBFS(t *testing.T) {
	m := mustParse(t, serpentine...)
	res, err := astar.SearchMap(m)
	require.NoError(t, err)

	dist := m.Grid.Distances(m.Start)
	assert.Equal(t, dist[m.Grid.Index(m.Goal)], res.Cost)
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{"...", "...", "..."}, '#')
	require.NoError(t, err)
	c := gridgraph.Cell{Row: 1, Col: 1}

	res, err := astar.Search(g, c, c)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []gridgraph.Cell{c}, res.Path)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, 0, res.Expanded)
}

func TestSearch_SingleCellGrid(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{"."}, '#')
	require.NoError(t, err)

	res, err := astar.Search(g, gridgraph.Cell{}, gridgraph.Cell{})
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{{}}, res.Path)
}

func TestSearch_FullRowWallIsNoPath(t *testing.T) {
	m := mustParse(t,
		"S...",
		"....",
		"####",
		"...E",
	)

	res, err := astar.SearchMap(m)
	require.NoError(t, err, "an unreachable goal is not an error")
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, 8, res.Expanded, "every cell on the start side is closed before giving up")
}

func TestSearch_EnclosedGoalIsNoPath(t *testing.T) {
	m := mustParse(t,
		"S.....",
		"...###",
		"...#E#",
		"...###",
	)

	res, err := astar.SearchMap(m)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
}

func TestSearch_StraightLineCostIsManhattan(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{
		"..........",
		"..........",
		"..........",
	}, '#')
	require.NoError(t, err)

	cases := []struct{ start, goal gridgraph.Cell }{
		{gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 0, Col: 9}},
		{gridgraph.Cell{Row: 1, Col: 7}, gridgraph.Cell{Row: 1, Col: 2}},
		{gridgraph.Cell{Row: 2, Col: 4}, gridgraph.Cell{Row: 0, Col: 4}},
	}
	for _, tc := range cases {
		res, err := astar.Search(g, tc.start, tc.goal)
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Equal(t, astar.Manhattan(tc.start, tc.goal), res.Cost)
		assert.Len(t, res.Path, res.Cost+1)
		assertValidPath(t, g, tc.start, tc.goal, res.Path)
	}
}

func TestSearch_OpenFieldTieBreak(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{".....", ".....", "....."}, '#')
	require.NoError(t, err)

	res, err := astar.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 4})
	require.NoError(t, err)
	want := cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}, [2]int{2, 4})
	assert.Equal(t, want, res.Path)
	assert.Equal(t, 14, res.Expanded)
}

func TestSearch_DetourAroundWall(t *testing.T) {
	m := mustParse(t,
		"S.#..",
		"..#..",
		"..#.E",
		".....",
	)

	res, err := astar.SearchMap(m)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 8, res.Cost)
	assertValidPath(t, m.Grid, m.Start, m.Goal, res.Path)
}

func TestSearch_Deterministic(t *testing.T) {
	m := mustParse(t, serpentine...)
	first, err := astar.SearchMap(m)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := astar.SearchMap(m)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// ------------------------------------------------------------------------
// 2. Validation
// ------------------------------------------------------------------------

func TestSearch_InvalidInput(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{
		".#",
		"..",
	}, '#')
	require.NoError(t, err)
	ok := gridgraph.Cell{Row: 0, Col: 0}

	cases := []struct {
		name        string
		grid        *gridgraph.GridGraph
		start, goal gridgraph.Cell
		want        error
	}{
		{"NilGrid", nil, ok, ok, astar.ErrNilGrid},
		{"StartOutOfBounds", g, gridgraph.Cell{Row: -1, Col: 0}, ok, astar.ErrOutOfBounds},
		{"GoalOutOfBounds", g, ok, gridgraph.Cell{Row: 0, Col: 2}, astar.ErrOutOfBounds},
		{"StartBlocked", g, gridgraph.Cell{Row: 0, Col: 1}, ok, astar.ErrBlockedCell},
		{"GoalBlocked", g, ok, gridgraph.Cell{Row: 0, Col: 1}, astar.ErrBlockedCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := astar.Search(tc.grid, tc.start, tc.goal)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, astar.ErrInvalidInput)
			assert.False(t, res.Found)
			assert.Nil(t, res.Path)
		})
	}
}

func TestSearchMap_Nil(t *testing.T) {
	_, err := astar.SearchMap(nil)
	assert.ErrorIs(t, err, astar.ErrInvalidInput)
}

// ------------------------------------------------------------------------
// 3. Options and hooks
// ------------------------------------------------------------------------

func TestWithMaxExpansions(t *testing.T) {
	m := mustParse(t, serpentine...)

	res, err := astar.SearchMap(m, astar.WithMaxExpansions(28))
	require.NoError(t, err, "goal is popped right after the 28th expansion")
	assert.True(t, res.Found)

	res, err = astar.SearchMap(m, astar.WithMaxExpansions(27))
	assert.ErrorIs(t, err, astar.ErrBudgetExceeded)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path, "no partial path on budget failure")
	assert.Equal(t, 27, res.Expanded)

	_, err = astar.SearchMap(m, astar.WithMaxExpansions(0))
	assert.NoError(t, err, "0 disables the cap")
}

func TestWithMaxExpansions_Negative(t *testing.T) {
	m := mustParse(t, "SE")
	_, err := astar.SearchMap(m, astar.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
}

func TestHooks(t *testing.T) {
	m := mustParse(t, serpentine...)

	var expanded []gridgraph.Cell
	seen := map[gridgraph.Cell]bool{}
	res, err := astar.SearchMap(m,
		astar.WithOnExpand(func(c gridgraph.Cell, g, h int) {
			expanded = append(expanded, c)
			assert.Equal(t, astar.Manhattan(c, m.Goal), h)
			assert.GreaterOrEqual(t, g, 0)
		}),
		astar.WithOnDiscover(func(c, parent gridgraph.Cell, g, h int) {
			assert.True(t, c.Adjacent(parent))
			seen[c] = true
		}),
		astar.WithOnExpand(nil), // nil hooks are ignored
	)
	require.NoError(t, err)

	assert.Len(t, expanded, res.Expanded)
	assert.Equal(t, m.Start, expanded[0], "start is closed first")
	for _, c := range expanded[1:] {
		assert.True(t, seen[c], "%v closed without being discovered", c)
	}
	assert.True(t, seen[m.Goal])

	unique := map[gridgraph.Cell]bool{}
	for _, c := range expanded {
		assert.False(t, unique[c], "%v closed twice", c)
		unique[c] = true
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := mustParse(t, serpentine...)
	_, err := astar.SearchMap(m, astar.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "astar: search finished")
	assert.Contains(t, out, "found=true")
	assert.Contains(t, out, "cost=12")
	assert.Contains(t, out, "expanded=28")
}

func TestManhattan(t *testing.T) {
	a := gridgraph.Cell{Row: 1, Col: 5}
	b := gridgraph.Cell{Row: 4, Col: 2}
	assert.Equal(t, 6, astar.Manhattan(a, b))
	assert.Equal(t, 6, astar.Manhattan(b, a))
	assert.Equal(t, 0, astar.Manhattan(a, a))
}
