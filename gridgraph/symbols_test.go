package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// serpentine is the classic 7×7 demonstration maze.
var serpentine = []string{
	"S......",
	".###.#.",
	".....#.",
	".#####.",
	".#.....",
	".#####.",
	"......E",
}

func TestParse_Serpentine(t *testing.T) {
	m, err := gridgraph.Parse(serpentine, gridgraph.DefaultSymbols())
	require.NoError(t, err)

	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, m.Start)
	assert.Equal(t, gridgraph.Cell{Row: 6, Col: 6}, m.Goal)
	assert.Equal(t, 7, m.Grid.Rows)
	assert.Equal(t, 7, m.Grid.Cols)
	assert.False(t, m.Grid.Passable(gridgraph.Cell{Row: 1, Col: 1}))
	assert.True(t, m.Grid.Passable(gridgraph.Cell{Row: 1, Col: 4}))
}

func TestParse_ZeroSymbolsUseDefaults(t *testing.T) {
	m, err := gridgraph.Parse([]string{"S#E"}, gridgraph.Symbols{})
	require.NoError(t, err)
	assert.Equal(t, gridgraph.DefaultSymbols(), m.Symbols)
	assert.False(t, m.Grid.Passable(gridgraph.Cell{Row: 0, Col: 1}))
}

func TestParse_CustomSymbols(t *testing.T) {
	sym := gridgraph.Symbols{Start: 'A', Goal: 'B', Obstacle: 'X', Path: 'o'}
	m, err := gridgraph.Parse([]string{
		"A.X",
		"..B",
	}, sym)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, m.Start)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 2}, m.Goal)
	assert.False(t, m.Grid.Passable(gridgraph.Cell{Row: 0, Col: 2}))
}

func TestParse_MultiByteRunes(t *testing.T) {
	m, err := gridgraph.Parse([]string{
		"S·█",
		"··E",
	}, gridgraph.Symbols{Obstacle: '█'})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Grid.Cols, "width is measured in runes")
	assert.False(t, m.Grid.Passable(gridgraph.Cell{Row: 0, Col: 2}))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		sym   gridgraph.Symbols
		want  []error
	}{
		{"Empty", nil, gridgraph.DefaultSymbols(), []error{gridgraph.ErrEmptyGrid}},
		{"Ragged", []string{"S..", "E."}, gridgraph.DefaultSymbols(), []error{gridgraph.ErrNonRectangular}},
		{"NoStart", []string{"...", "..E"}, gridgraph.DefaultSymbols(),
			[]error{gridgraph.ErrNoStart, gridgraph.ErrInvalidMarker}},
		{"NoGoal", []string{"S..", "..."}, gridgraph.DefaultSymbols(),
			[]error{gridgraph.ErrNoGoal, gridgraph.ErrInvalidMarker}},
		{"TwoStarts", []string{"S..", ".SE"}, gridgraph.DefaultSymbols(),
			[]error{gridgraph.ErrDuplicateMarker, gridgraph.ErrInvalidMarker}},
		{"TwoGoals", []string{"SEE"}, gridgraph.DefaultSymbols(),
			[]error{gridgraph.ErrDuplicateMarker, gridgraph.ErrInvalidMarker}},
		{"Ambiguous", []string{"S.E"}, gridgraph.Symbols{Start: 'S', Goal: 'S'},
			[]error{gridgraph.ErrAmbiguousSymbols}},
		{"PathIsObstacle", []string{"S#E"}, gridgraph.Symbols{Path: '#'},
			[]error{gridgraph.ErrAmbiguousSymbols}},
		{"PathIsStart", []string{"S.E"}, gridgraph.Symbols{Path: 'S'},
			[]error{gridgraph.ErrAmbiguousSymbols}},
		{"PathIsGoal", []string{"S.E"}, gridgraph.Symbols{Path: 'E'},
			[]error{gridgraph.ErrAmbiguousSymbols}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := gridgraph.Parse(tc.lines, tc.sym)
			assert.Nil(t, m)
			for _, want := range tc.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestParse_NoStartIsNotNoGoal(t *testing.T) {
	_, err := gridgraph.Parse([]string{"..E"}, gridgraph.DefaultSymbols())
	require.Error(t, err)
	assert.NotErrorIs(t, err, gridgraph.ErrNoGoal)
	assert.Contains(t, err.Error(), "'S'")
}

func TestFindMarker_RowMajorFirst(t *testing.T) {
	rows := [][]rune{
		[]rune("..x"),
		[]rune("x.."),
	}
	c, ok := gridgraph.FindMarker(rows, 'x')
	require.True(t, ok)
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 2}, c)

	_, ok = gridgraph.FindMarker(rows, 'z')
	assert.False(t, ok)
}
