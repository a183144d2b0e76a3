package search

import "github.com/pathviz/starpath/internal/grid"

// node tracks the best known cost for a discovered cell while it sits on
// the frontier.
type node struct {
	cell grid.Cell
	g    int // cost from start
	f    int // g + heuristic estimate to goal
	seq  int // insertion order, breaks f ties FIFO for determinism
	idx  int // position in the heap, maintained by Swap
}

// frontier is a min-f priority queue over *node implementing heap.Interface.
// Equal f values pop in insertion order.
type frontier []*node

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].idx = i
	q[j].idx = j
}

func (q *frontier) Push(x any) {
	n := x.(*node)
	n.idx = len(*q)
	*q = append(*q, n)
}

func (q *frontier) Pop() any {
	old := *q
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.idx = -1
	*q = old[:last]
	return n
}
