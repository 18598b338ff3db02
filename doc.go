// Package gridpath finds shortest routes through obstacle grids with A*.
//
// What is gridpath?
//
//	A small library plus CLI for 4-connected, unit-cost grid maps:
//		• gridgraph/: passability mask, symbol maps (S/E/#), text and YAML
//		  loaders, rendering, BFS distances and connected components
//		• astar/    : A* search with the Manhattan heuristic, deterministic
//		  tie-breaking, expansion hooks and an optional expansion budget
//		• cmd/gridpath: solve map files concurrently, run the demo maze
//
// Quick example:
//
//	S......
//	.###.#.       *......
//	.....#.       *###.#.
//	.#####.   →   *....#.     cost 12
//	.#.....       *#####.
//	.#####.       *#.....
//	......E       *#####.
//	              *******
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
