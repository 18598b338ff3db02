package gridgraph

import (
	"bufio"
	"io"
	"strings"
)

// RenderOption customizes Map.Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	pathStyle func(string) string
}

// WithPathStyle decorates every path cell string before it is written,
// e.g. to add terminal colors. The plain cell is the Path symbol.
func WithPathStyle(style func(string) string) RenderOption {
	return func(o *renderOptions) {
		if style != nil {
			o.pathStyle = style
		}
	}
}

// Render writes the symbol grid one row per line, replacing every cell on
// path (start and goal included) with the Path symbol. A nil or empty path
// writes the grid unchanged.
func (m *Map) Render(w io.Writer, path []Cell, opts ...RenderOption) error {
	o := renderOptions{pathStyle: func(s string) string { return s }}
	for _, opt := range opts {
		opt(&o)
	}

	onPath := make(map[Cell]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}
	mark := o.pathStyle(string(m.Symbols.Path))

	bw := bufio.NewWriter(w)
	var sb strings.Builder
	for r, row := range m.Runes {
		sb.Reset()
		for c, ch := range row {
			if _, ok := onPath[Cell{Row: r, Col: c}]; ok {
				sb.WriteString(mark)
				continue
			}
			sb.WriteRune(ch)
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders the map without a path.
func (m *Map) String() string {
	var sb strings.Builder
	_ = m.Render(&sb, nil)
	return sb.String()
}
