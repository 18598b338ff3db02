package astar

// nodeState tracks a cell through Undiscovered → Frontier → Closed.
// Transitions only move forward.
type nodeState uint8

const (
	undiscovered nodeState = iota
	inFrontier
	closed
)

// node is the per-cell search record. Nodes live in a dense arena indexed
// by the cell's row-major index, and parent links are arena indices, so the
// predecessor tree needs no pointers.
type node struct {
	g, h    int
	parent  int // -1 for the start cell
	seq     int // order of first insertion into the frontier
	heapIdx int // position in frontier.items, -1 when not queued
	state   nodeState
}

// f is always derived from the current g and h.
func (n *node) f() int { return n.g + n.h }

// frontier is a min-heap of arena indices ordered by (f, seq).
// Ordering ties by first-insertion sequence makes the pop order identical to
// a linear scan of an insertion-ordered open list that keeps the first
// minimum it sees. A decrease-key keeps the original seq, just as an
// in-place update keeps a list element's position.
type frontier struct {
	nodes []node
	items []int
}

// Len returns the number of queued cells.
func (q *frontier) Len() int { return len(q.items) }

// Less orders by f, then by insertion sequence.
func (q *frontier) Less(i, j int) bool {
	a, b := &q.nodes[q.items[i]], &q.nodes[q.items[j]]
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	return a.seq < b.seq
}

// Swap swaps two heap slots and keeps heapIdx in sync.
func (q *frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.nodes[q.items[i]].heapIdx = i
	q.nodes[q.items[j]].heapIdx = j
}

// Push is called by heap.Push; x must be an arena index.
func (q *frontier) Push(x any) {
	idx := x.(int)
	q.nodes[idx].heapIdx = len(q.items)
	q.items = append(q.items, idx)
}

// Pop is called by heap.Pop; it returns the arena index of the removed cell.
func (q *frontier) Pop() any {
	n := len(q.items)
	idx := q.items[n-1]
	q.items = q.items[:n-1]
	q.nodes[idx].heapIdx = -1
	return idx
}
