// Package gridgraph treats a 2D obstacle mask as a graph and supplies the
// collaborators a grid search needs: marker discovery, map loading and
// path rendering.
//
// What:
//
//   - GridGraph wraps a rectangular passability mask; it is immutable once built.
//   - Neighbors yields 4-directional passable moves in a fixed order (up, down, left, right).
//   - Parse scans a symbol grid for exactly one start and one goal marker.
//   - Distances and BFSPath give exact unit-cost shortest paths by plain BFS.
//   - ConnectedComponents identifies passable regions.
//   - Map.Render overlays a path onto the original symbols.
//
// Why:
//
//   - Game maps and mazes: locate markers, check reachability, draw routes.
//   - Testing heuristic searches: BFS is the ground truth for path length.
//
// Complexity:
//
//   - NewGridGraph, Parse:   O(R×C), Memory: O(R×C).
//   - Distances, BFSPath:    O(R×C×4), Memory: O(R×C).
//   - ConnectedComponents:   O(R×C×4), Memory: O(R×C).
//
// Formats:
//
//   - FormatText: one row per line, default symbols S, E, #.
//   - FormatYAML: {name, symbols, rows} document.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidMarker: parent of ErrNoStart, ErrNoGoal and ErrDuplicateMarker.
//   - ErrAmbiguousSymbols: two roles share one rune.
//   - ErrUnknownFormat: unsupported map encoding.
package gridgraph
