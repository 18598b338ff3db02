// Package astar defines core types, sentinel errors and configuration options
// for A* search over a gridgraph.GridGraph.
package astar

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrInvalidInput is the parent of every precondition failure. Match it
	// with errors.Is to catch any bad grid, start or goal.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrNilGrid indicates a nil *gridgraph.GridGraph was passed to Search.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidInput)

	// ErrOutOfBounds indicates start or goal lies outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: cell out of bounds", ErrInvalidInput)

	// ErrBlockedCell indicates start or goal is an obstacle.
	ErrBlockedCell = fmt.Errorf("%w: cell is an obstacle", ErrInvalidInput)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBudgetExceeded is returned when a search would close more cells
	// than WithMaxExpansions allows. No partial path is returned.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")
)

// Result holds the outcome of a search.
//
//   - Found: true when goal was reached. False means no path exists; this is
//     a normal outcome and is never reported as an error.
//   - Path: start..goal inclusive, 4-adjacent steps; nil when !Found.
//   - Cost: number of steps, len(Path)-1; 0 when !Found.
//   - Expanded: number of cells moved to the closed set.
type Result struct {
	Path     []gridgraph.Cell
	Cost     int
	Expanded int
	Found    bool
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a single search.
type Options struct {
	// Logger receives one Debug record per search. Defaults to a discarding logger.
	Logger *slog.Logger

	// OnExpand is called when a cell is moved to the closed set.
	OnExpand func(c gridgraph.Cell, g, h int)

	// OnDiscover is called when a cell enters the frontier or its g improves.
	OnDiscover func(c, parent gridgraph.Cell, g, h int)

	// MaxExpansions, if > 0, caps how many cells may be closed.
	// 0 disables the cap.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no hooks, no expansion cap and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.DiscardHandler),
		OnExpand:   func(gridgraph.Cell, int, int) {},
		OnDiscover: func(gridgraph.Cell, gridgraph.Cell, int, int) {},
	}
}

// WithLogger routes the per-search debug summary to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback to run when a cell is closed.
func WithOnExpand(fn func(c gridgraph.Cell, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback to run when a cell is inserted into
// the frontier or re-parented with a cheaper g.
func WithOnDiscover(fn func(c, parent gridgraph.Cell, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithMaxExpansions limits the number of closed cells.
//
//	n > 0: at most n cells are closed before ErrBudgetExceeded
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
