// Package astar implements A* shortest-path search on a 4-connected grid
// with unit step cost and the Manhattan-distance heuristic.
//
// Complexity:
//
//   - Time:  O(N log N), N = number of cells. Each cell is pushed once and
//     closed at most once; a cheaper path to a queued cell is a heap.Fix.
//   - Space: O(N) for the node arena and the heap.
//
// Notes on implementation choices:
//
//   - Closed cells are never reopened. With unit steps the Manhattan
//     heuristic is consistent, so a cell's g is optimal when it is closed.
//   - Ties on f are broken by first-insertion order (see frontier).
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Manhattan returns |Δrow| + |Δcol| between a and b.
// It never overestimates the true cost under 4-directional unit moves.
func Manhattan(a, b gridgraph.Cell) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Search finds a shortest path from start to goal on g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must be in bounds (ErrOutOfBounds) and passable
//     (ErrBlockedCell).
//
// ErrNilGrid, ErrOutOfBounds and ErrBlockedCell all match ErrInvalidInput.
//
// An unreachable goal is not an error: Search returns Found=false and a nil
// Path once the frontier is exhausted. start == goal yields the single-cell
// path [start] without expanding anything.
//
// Search keeps all state local to the call and only reads g, so concurrent
// searches on the same grid are safe.
func Search(g *gridgraph.GridGraph, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return Result{}, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return Result{}, err
	}

	r := newRunner(g, start, goal, cfg)
	r.init()
	res, err := r.process()

	cfg.Logger.Debug("astar: search finished",
		"rows", g.Rows,
		"cols", g.Cols,
		"start", start,
		"goal", goal,
		"found", res.Found,
		"cost", res.Cost,
		"expanded", r.expanded,
		"err", err,
	)
	return res, err
}

// SearchMap runs Search on a parsed symbol map using its own start and goal.
func SearchMap(m *gridgraph.Map, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, ErrNilGrid
	}
	return Search(m.Grid, m.Start, m.Goal, opts...)
}

func checkEndpoint(g *gridgraph.GridGraph, name string, c gridgraph.Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s (%d,%d) outside %dx%d grid", ErrOutOfBounds, name, c.Row, c.Col, g.Rows, g.Cols)
	}
	if !g.Passable(c) {
		return fmt.Errorf("%w: %s (%d,%d)", ErrBlockedCell, name, c.Row, c.Col)
	}
	return nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *gridgraph.GridGraph // read-only within Search
	opts     Options
	start    int
	goal     int
	goalCell gridgraph.Cell
	open     frontier
	seq      int              // next insertion sequence number
	expanded int              // cells closed so far
	buf      []gridgraph.Cell // reused neighbor buffer
}

func newRunner(g *gridgraph.GridGraph, start, goal gridgraph.Cell, opts Options) *runner {
	return &runner{
		g:        g,
		opts:     opts,
		start:    g.Index(start),
		goal:     g.Index(goal),
		goalCell: goal,
		open: frontier{
			nodes: make([]node, g.Len()),
		},
		buf: make([]gridgraph.Cell, 0, 4),
	}
}

// init seeds the frontier with the start cell: g=0, h=Manhattan(start, goal).
func (r *runner) init() {
	for i := range r.open.nodes {
		r.open.nodes[i].parent = -1
		r.open.nodes[i].heapIdx = -1
	}
	s := &r.open.nodes[r.start]
	s.h = Manhattan(r.g.CellAt(r.start), r.goalCell)
	s.state = inFrontier
	s.seq = r.seq
	r.seq++
	heap.Push(&r.open, r.start)
}

// process is the main loop: pop the lowest-f cell, stop at the goal,
// otherwise close it and relax its neighbors. It ends with Found=false when
// the frontier runs dry.
func (r *runner) process() (Result, error) {
	for r.open.Len() > 0 {
		u := heap.Pop(&r.open).(int)

		if u == r.goal {
			return Result{
				Path:     r.path(u),
				Cost:     r.open.nodes[u].g,
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return Result{Expanded: r.expanded}, fmt.Errorf("%w: closed %d cells", ErrBudgetExceeded, r.expanded)
		}

		n := &r.open.nodes[u]
		n.state = closed
		r.expanded++
		r.opts.OnExpand(r.g.CellAt(u), n.g, n.h)

		r.relax(u)
	}

	return Result{Expanded: r.expanded}, nil
}

// relax examines each passable neighbor of u that is not closed and records
// u as its parent when it is new to the frontier or reached more cheaply.
func (r *runner) relax(u int) {
	uc := r.g.CellAt(u)
	tentativeG := r.open.nodes[u].g + 1

	r.buf = r.g.Neighbors(uc, r.buf[:0])
	for _, vc := range r.buf {
		v := r.g.Index(vc)
		n := &r.open.nodes[v]

		switch n.state {
		case closed:
			continue
		case undiscovered:
			n.g = tentativeG
			n.h = Manhattan(vc, r.goalCell)
			n.parent = u
			n.seq = r.seq
			r.seq++
			n.state = inFrontier
			heap.Push(&r.open, v)
		case inFrontier:
			if tentativeG >= n.g {
				continue
			}
			n.g = tentativeG
			n.parent = u
			heap.Fix(&r.open, n.heapIdx)
		}
		r.opts.OnDiscover(vc, uc, n.g, n.h)
	}
}

// path follows parent links from the goal back to the start and reverses them.
func (r *runner) path(goal int) []gridgraph.Cell {
	var path []gridgraph.Cell
	for at := goal; at >= 0; at = r.open.nodes[at].parent {
		path = append(path, r.g.CellAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
