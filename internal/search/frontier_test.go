package search

import (
	"container/heap"
	"testing"

	"github.com/pathviz/starpath/internal/grid"
)

func TestFrontierOrdersByF(t *testing.T) {
	t.Parallel()

	f := &frontier{}
	heap.Push(f, &node{cell: grid.Cell{Row: 0, Col: 0}, f: 5, seq: 0})
	heap.Push(f, &node{cell: grid.Cell{Row: 1, Col: 1}, f: 2, seq: 1})
	heap.Push(f, &node{cell: grid.Cell{Row: 2, Col: 2}, f: 9, seq: 2})
	heap.Push(f, &node{cell: grid.Cell{Row: 3, Col: 3}, f: 3, seq: 3})

	want := []int{2, 3, 5, 9}
	for i, wf := range want {
		n := heap.Pop(f).(*node)
		if n.f != wf {
			t.Errorf("pop %d: f = %d, want %d", i, n.f, wf)
		}
	}
	if f.Len() != 0 {
		t.Errorf("frontier not drained, %d left", f.Len())
	}
}

func TestFrontierBreaksTiesByInsertion(t *testing.T) {
	t.Parallel()

	f := &frontier{}
	cells := []grid.Cell{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 0, Col: 2},
		{Row: 0, Col: 3},
	}
	for i, c := range cells {
		heap.Push(f, &node{cell: c, f: 7, seq: i})
	}

	for i, want := range cells {
		n := heap.Pop(f).(*node)
		if n.cell != want {
			t.Errorf("pop %d: cell = %s, want %s", i, n.cell, want)
		}
	}
}

func TestFrontierFixAfterDecrease(t *testing.T) {
	t.Parallel()

	f := &frontier{}
	a := &node{cell: grid.Cell{Row: 0, Col: 0}, f: 4, seq: 0}
	b := &node{cell: grid.Cell{Row: 1, Col: 1}, f: 8, seq: 1}
	heap.Push(f, a)
	heap.Push(f, b)

	// A shorter route to b was found; its f drops below a's.
	b.f = 3
	heap.Fix(f, b.idx)

	if n := heap.Pop(f).(*node); n != b {
		t.Errorf("pop after Fix = %s, want %s", n.cell, b.cell)
	}
	if n := heap.Pop(f).(*node); n != a {
		t.Errorf("second pop = %s, want %s", n.cell, a.cell)
	}
	if a.idx != -1 || b.idx != -1 {
		t.Errorf("popped nodes keep live indexes: a.idx=%d b.idx=%d", a.idx, b.idx)
	}
}
