// Package search implements grid-based A* shortest-path search with a
// pull-based stepping interface for visualization, plus a breadth-first
// reference traversal.
//
// A run is strictly sequential: the consumer pulls one expansion at a time
// through Stepper.Step and controls pacing entirely on its side. Search
// drives a Stepper to completion for callers that only want the Result.
package search

import (
	"container/heap"
	"context"

	"github.com/pathviz/starpath/internal/grid"
)

// Stepper executes one A* run over a grid, yielding a Snapshot per
// expansion. Each Stepper owns its open/closed sets and cost maps
// exclusively; steppers for different runs never share state.
type Stepper struct {
	g *grid.Grid
	h Heuristic

	open     frontier
	inOpen   map[grid.Cell]*node
	closed   map[grid.Cell]bool
	cameFrom map[grid.Cell]grid.Cell
	gScore   map[grid.Cell]int

	seq    int
	step   int
	done   bool
	result Result
}

// NewStepper prepares a run on g with the given heuristic (nil means
// Manhattan). The frontier is seeded with the grid's start cell.
func NewStepper(g *grid.Grid, h Heuristic) *Stepper {
	if h == nil {
		h = Manhattan
	}
	s := &Stepper{
		g:        g,
		h:        h,
		open:     make(frontier, 0),
		inOpen:   make(map[grid.Cell]*node),
		closed:   make(map[grid.Cell]bool),
		cameFrom: make(map[grid.Cell]grid.Cell),
		gScore:   map[grid.Cell]int{g.Start(): 0},
	}
	heap.Init(&s.open)
	s.push(g.Start(), 0, h(g.Start(), g.Goal()))
	return s
}

// Step advances the search by one expansion and returns its Snapshot. The
// second return value is false once the sequence is exhausted: after a
// terminal snapshot (Done true) has been delivered, further calls return
// (Snapshot{}, false). A goal expansion terminates with Found and the
// reconstructed path; an empty frontier terminates with no-path. There is
// no other way for a run to end.
func (s *Stepper) Step() (Snapshot, bool) {
	if s.done {
		return Snapshot{}, false
	}

	if s.open.Len() == 0 {
		s.result = Result{Expanded: s.step}
		return s.finish(Snapshot{
			Step:   s.step,
			Open:   copyCellSet(nil),
			Closed: copyCellSet(s.closed),
			Done:   true,
		}), true
	}

	cur := heap.Pop(&s.open).(*node)
	delete(s.inOpen, cur.cell)
	s.closed[cur.cell] = true
	s.step++

	if cur.cell == s.g.Goal() {
		path := s.reconstruct(cur.cell)
		s.result = Result{
			Path:     path,
			Cost:     len(path) - 1,
			Expanded: s.step,
			Found:    true,
		}
		// The snapshot gets its own copy so holders cannot reach the
		// result's path through it.
		snapPath := append([]grid.Cell(nil), path...)
		return s.finish(Snapshot{
			Step:      s.step,
			Expanded:  cur.cell,
			Open:      s.openSet(),
			Closed:    copyCellSet(s.closed),
			PathSoFar: snapPath,
			Done:      true,
			Found:     true,
			Path:      snapPath,
		}), true
	}

	for _, n := range s.g.Neighbors(cur.cell) {
		if s.closed[n] {
			continue
		}
		tentative := cur.g + 1 // unit edge cost
		if prev, seen := s.gScore[n]; seen && tentative >= prev {
			continue
		}
		s.gScore[n] = tentative
		s.cameFrom[n] = cur.cell
		f := tentative + s.h(n, s.g.Goal())
		if it, onFrontier := s.inOpen[n]; onFrontier {
			it.g = tentative
			it.f = f
			heap.Fix(&s.open, it.idx)
		} else {
			s.push(n, tentative, f)
		}
	}

	return Snapshot{
		Step:      s.step,
		Expanded:  cur.cell,
		Open:      s.openSet(),
		Closed:    copyCellSet(s.closed),
		PathSoFar: s.reconstruct(cur.cell),
	}, true
}

// Done reports whether the run has terminated.
func (s *Stepper) Done() bool { return s.done }

// Result returns the terminal outcome. The second return value is false
// until the run has terminated.
func (s *Stepper) Result() (Result, bool) {
	if !s.done {
		return Result{}, false
	}
	return s.result, true
}

// finish marks the run done and releases the per-run state. The snapshot
// already carries copies, so dropping the maps here frees them regardless
// of how long the consumer holds the snapshot.
func (s *Stepper) finish(snap Snapshot) Snapshot {
	s.done = true
	s.open = nil
	s.inOpen = nil
	s.closed = nil
	s.cameFrom = nil
	s.gScore = nil
	return snap
}

func (s *Stepper) push(c grid.Cell, g, f int) {
	n := &node{cell: c, g: g, f: f, seq: s.seq}
	s.seq++
	heap.Push(&s.open, n)
	s.inOpen[c] = n
}

func (s *Stepper) openSet() map[grid.Cell]bool {
	out := make(map[grid.Cell]bool, len(s.inOpen))
	for c := range s.inOpen {
		out[c] = true
	}
	return out
}

// reconstruct follows predecessor links from c back to the start and
// returns the path in start-to-c order.
func (s *Stepper) reconstruct(c grid.Cell) []grid.Cell {
	path := []grid.Cell{c}
	for c != s.g.Start() {
		prev, ok := s.cameFrom[c]
		if !ok {
			break
		}
		path = append(path, prev)
		c = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Search runs A* on g to completion. No-path is a normal Result with Found
// false, not an error; the only error is ctx.Err() when the context is
// cancelled between expansions.
func Search(ctx context.Context, g *grid.Grid, h Heuristic) (Result, error) {
	s := NewStepper(g, h)
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if _, ok := s.Step(); !ok {
			break
		}
	}
	res, _ := s.Result()
	return res, nil
}
