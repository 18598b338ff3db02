package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrInvalidMarker is the parent of every start/goal marker failure.
	ErrInvalidMarker = errors.New("gridgraph: invalid start or goal marker")
	// ErrNoStart indicates the symbol grid carries no start marker.
	ErrNoStart = errors.New("gridgraph: no start marker in grid")
	// ErrNoGoal indicates the symbol grid carries no goal marker.
	ErrNoGoal = errors.New("gridgraph: no goal marker in grid")
	// ErrDuplicateMarker indicates a start or goal marker appears more than once.
	ErrDuplicateMarker = errors.New("gridgraph: marker appears more than once")
	// ErrAmbiguousSymbols indicates two roles share the same rune.
	ErrAmbiguousSymbols = errors.New("gridgraph: start, goal, obstacle and path symbols must differ")

	// ErrUnknownFormat indicates an unsupported map encoding.
	ErrUnknownFormat = errors.New("gridgraph: unknown map format")
)

// markerError ties a specific marker failure to ErrInvalidMarker so callers
// can match either errors.Is(err, ErrNoStart) or errors.Is(err, ErrInvalidMarker).
type markerError struct {
	kind   error
	detail string
}

func (e *markerError) Error() string {
	if e.detail == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.detail
}

func (e *markerError) Is(target error) bool {
	return target == ErrInvalidMarker || target == e.kind
}

func (e *markerError) Unwrap() error { return e.kind }
