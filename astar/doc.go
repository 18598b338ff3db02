// Package astar computes shortest paths between two cells of a static 2-D
// obstacle grid using A* with the Manhattan-distance heuristic.
//
// Overview:
//
//   - Moves are 4-directional (up, down, left, right) and every step costs 1.
//   - h(c) = |c.Row-goal.Row| + |c.Col-goal.Col| is admissible and consistent
//     for this move set, so the first time the goal is popped its path is optimal.
//   - The frontier is an indexed min-heap keyed by f = g + h; a cheaper path to
//     a queued cell updates it in place with heap.Fix.
//   - Per-cell search state lives in an arena slice addressed by the cell's
//     row-major index; predecessor links are indices, not pointers.
//
// Determinism:
//
//   - Among frontier cells with equal f, the one inserted first is expanded
//     first. Neighbors are inserted in the order up, down, left, right.
//     Together these fix the exact path shape for a given grid, start and goal.
//   - Different tie-break rules could return a different path of the same cost.
//
// Outcomes:
//
//   - Found path: Result.Found, Result.Path from start to goal, Result.Cost steps.
//   - No path: Result.Found == false, Result.Path == nil, error == nil.
//   - Invalid input: an error matching ErrInvalidInput (ErrNilGrid,
//     ErrOutOfBounds, ErrBlockedCell); nothing is searched.
//
// API reference:
//
//	func Search(g *gridgraph.GridGraph, start, goal gridgraph.Cell, opts ...Option) (Result, error)
//	func SearchMap(m *gridgraph.Map, opts ...Option) (Result, error)
//
//	  - WithLogger(*slog.Logger):    debug summary per search.
//	  - WithOnExpand(fn):            called when a cell is closed.
//	  - WithOnDiscover(fn):          called when a cell enters the frontier or improves.
//	  - WithMaxExpansions(n):        cap on closed cells; ErrBudgetExceeded when hit.
//
// Thread safety:
//
//   - Search never writes to the grid and shares no state between calls.
//     Any number of searches may run concurrently on one GridGraph.
//   - Hooks run synchronously on the calling goroutine.
//
// Example usage:
//
//	m, err := gridgraph.Parse(lines, gridgraph.DefaultSymbols())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := astar.SearchMap(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("no path")
//	}
package astar
