package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFrontier(fh [][2]int) *frontier {
	q := &frontier{nodes: make([]node, len(fh))}
	for i, v := range fh {
		q.nodes[i] = node{g: v[0], h: v[1], parent: -1, seq: i, heapIdx: -1, state: inFrontier}
		heap.Push(q, i)
	}
	return q
}

func popAll(q *frontier) []int {
	var out []int
	for q.Len() > 0 {
		out = append(out, heap.Pop(q).(int))
	}
	return out
}

// TestFrontier_OrdersByFThenInsertion pushes cells with repeated f values and
// expects the first-inserted one to win every tie.
func TestFrontier_OrdersByFThenInsertion(t *testing.T) {
	q := newTestFrontier([][2]int{
		{2, 3}, // 0: f=5
		{1, 3}, // 1: f=4
		{4, 1}, // 2: f=5
		{0, 4}, // 3: f=4
		{3, 3}, // 4: f=6
		{5, 0}, // 5: f=5
	})
	assert.Equal(t, []int{1, 3, 0, 2, 5, 4}, popAll(q))
}

// TestFrontier_DecreaseKeyKeepsSequence lowers g of a late entry; it must
// move ahead of higher f but still lose ties to earlier insertions.
func TestFrontier_DecreaseKeyKeepsSequence(t *testing.T) {
	q := newTestFrontier([][2]int{
		{3, 2}, // 0: f=5
		{2, 2}, // 1: f=4
		{6, 2}, // 2: f=8
	})

	q.nodes[2].g = 2 // f=4, ties with 1 which was inserted earlier
	heap.Fix(q, q.nodes[2].heapIdx)

	assert.Equal(t, []int{1, 2, 0}, popAll(q))
}

func TestFrontier_HeapIdxTracking(t *testing.T) {
	q := newTestFrontier([][2]int{{5, 0}, {4, 0}, {3, 0}, {2, 0}})
	for pos, idx := range q.items {
		require.Equal(t, pos, q.nodes[idx].heapIdx)
	}
	got := heap.Pop(q).(int)
	assert.Equal(t, 3, got)
	assert.Equal(t, -1, q.nodes[got].heapIdx)
	for pos, idx := range q.items {
		assert.Equal(t, pos, q.nodes[idx].heapIdx)
	}
}

func TestNodeF(t *testing.T) {
	n := node{g: 3, h: 4}
	assert.Equal(t, 7, n.f())
	n.g = 1
	assert.Equal(t, 5, n.f(), "f follows g")
}
