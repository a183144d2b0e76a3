package search

import (
	"context"
	"errors"
	"testing"

	"github.com/pathviz/starpath/internal/grid"
)

func mustGrid(t *testing.T, rows, cols int, walls []grid.Cell, start, goal grid.Cell) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, walls, start, goal)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	return g
}

// checkPath verifies a returned path is contiguous, 4-adjacent, unblocked,
// in bounds, and runs from start to goal.
func checkPath(t *testing.T, g *grid.Grid, path []grid.Cell) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if path[0] != g.Start() {
		t.Errorf("path starts at %s, want %s", path[0], g.Start())
	}
	if path[len(path)-1] != g.Goal() {
		t.Errorf("path ends at %s, want %s", path[len(path)-1], g.Goal())
	}
	for i, c := range path {
		if !g.InBounds(c) {
			t.Errorf("path[%d] = %s is out of bounds", i, c)
		}
		if g.IsBlocked(c) {
			t.Errorf("path[%d] = %s is a wall", i, c)
		}
		if i > 0 && Manhattan(path[i-1], c) != 1 {
			t.Errorf("path[%d-1..%d] = %s -> %s is not a single grid step", i, i, path[i-1], c)
		}
	}
}

func TestSearchOpenGrid(t *testing.T) {
	t.Parallel()

	// 3x3, no obstacles, corner to corner: cost is the Manhattan distance.
	g := mustGrid(t, 3, 3, nil, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	res, err := Search(context.Background(), g, Manhattan)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !res.Found {
		t.Fatal("no path found on an open grid")
	}
	if res.Cost != 4 {
		t.Errorf("cost = %d, want 4", res.Cost)
	}
	if len(res.Path) != 5 {
		t.Errorf("path length = %d, want 5", len(res.Path))
	}
	checkPath(t, g, res.Path)
}

func TestSearchBlockedColumn(t *testing.T) {
	t.Parallel()

	// Middle column fully walled: no 4-connected path exists.
	walls := []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}
	g := mustGrid(t, 3, 3, walls, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2})
	res, err := Search(context.Background(), g, Manhattan)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Found {
		t.Fatalf("found a path %v through a solid wall", res.Path)
	}
	if res.Path != nil {
		t.Errorf("no-path result carries a path: %v", res.Path)
	}
	// Only the left column is reachable.
	if res.Expanded != 3 {
		t.Errorf("expanded = %d, want 3", res.Expanded)
	}
}

func TestSearchObstacleOffPath(t *testing.T) {
	t.Parallel()

	// A single wall away from the straight line changes nothing.
	g := mustGrid(t, 5, 5, []grid.Cell{{Row: 2, Col: 2}}, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 4})
	res, err := Search(context.Background(), g, Manhattan)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !res.Found || res.Cost != 4 {
		t.Errorf("found=%v cost=%d, want found with cost 4", res.Found, res.Cost)
	}
	checkPath(t, g, res.Path)
}

func TestStepperExpansionOrder(t *testing.T) {
	t.Parallel()

	// 2x2 open grid, hand-traced: f ties broken by insertion order, and
	// neighbors are discovered right-then-down, so the expansion order is
	// fully determined.
	g := mustGrid(t, 2, 2, nil, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1})
	s := NewStepper(g, Manhattan)

	want := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	for i, wc := range want {
		snap, ok := s.Step()
		if !ok {
			t.Fatalf("sequence ended at step %d", i+1)
		}
		if snap.Step != i+1 {
			t.Errorf("snap.Step = %d, want %d", snap.Step, i+1)
		}
		if snap.Expanded != wc {
			t.Errorf("step %d expanded %s, want %s", i+1, snap.Expanded, wc)
		}
	}

	res, done := s.Result()
	if !done {
		t.Fatal("Result not available after terminal snapshot")
	}
	if !res.Found || res.Cost != 2 || res.Expanded != 4 {
		t.Errorf("result = %+v, want found, cost 2, expanded 4", res)
	}
	wantPath := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	for i := range wantPath {
		if res.Path[i] != wantPath[i] {
			t.Errorf("path[%d] = %s, want %s", i, res.Path[i], wantPath[i])
		}
	}

	// The sequence is exhausted after the terminal snapshot.
	if _, ok := s.Step(); ok {
		t.Error("Step returned a snapshot after termination")
	}
	if !s.Done() {
		t.Error("Done() = false after termination")
	}
}

func TestStepperSnapshotsAreDeterministic(t *testing.T) {
	t.Parallel()

	g, err := grid.Generate(grid.GenerateRequest{Rows: 9, Cols: 11, Density: 0.3, Seed: 17})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	collect := func() []Snapshot {
		s := NewStepper(g, Manhattan)
		var snaps []Snapshot
		for {
			snap, ok := s.Step()
			if !ok {
				return snaps
			}
			snaps = append(snaps, snap)
		}
	}

	a, b := collect(), collect()
	if len(a) != len(b) {
		t.Fatalf("runs produced %d vs %d snapshots", len(a), len(b))
	}
	for i := range a {
		if a[i].Expanded != b[i].Expanded || a[i].Step != b[i].Step {
			t.Fatalf("step %d diverged: %s vs %s", i+1, a[i].Expanded, b[i].Expanded)
		}
		if !equalCellSets(a[i].Open, b[i].Open) || !equalCellSets(a[i].Closed, b[i].Closed) {
			t.Fatalf("step %d open/closed sets diverged", i+1)
		}
	}
}

func TestStepperSnapshotsAreImmutable(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, 4, 4, nil, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 3, Col: 3})

	reference, err := Search(context.Background(), g, Manhattan)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	s := NewStepper(g, Manhattan)
	for {
		snap, ok := s.Step()
		if !ok {
			break
		}
		// Vandalize everything the snapshot exposes.
		snap.Open[grid.Cell{Row: 99, Col: 99}] = true
		for c := range snap.Closed {
			delete(snap.Closed, c)
		}
		if len(snap.PathSoFar) > 0 {
			snap.PathSoFar[0] = grid.Cell{Row: -1, Col: -1}
		}
	}
	res, _ := s.Result()
	if res.Cost != reference.Cost || res.Expanded != reference.Expanded || res.Found != reference.Found {
		t.Errorf("mutating snapshots changed the outcome: %+v vs %+v", res, reference)
	}
	for i := range reference.Path {
		if res.Path[i] != reference.Path[i] {
			t.Fatalf("path[%d] = %s, want %s", i, res.Path[i], reference.Path[i])
		}
	}
}

func TestSearchMatchesBreadthFirst(t *testing.T) {
	t.Parallel()

	// Optimality and completeness against the independent reference, over a
	// spread of seeded random grids and both heuristics.
	for seed := int64(0); seed < 25; seed++ {
		g, err := grid.Generate(grid.GenerateRequest{Rows: 7, Cols: 13, Density: 0.35, Seed: seed})
		if err != nil {
			t.Fatalf("Generate(seed=%d): %v", seed, err)
		}
		dist, reachable := BreadthFirst(g)

		for _, h := range []Heuristic{Manhattan, Zero} {
			res, err := Search(context.Background(), g, h)
			if err != nil {
				t.Fatalf("Search(seed=%d): %v", seed, err)
			}
			if res.Found != reachable {
				t.Fatalf("seed=%d: found=%v, BFS reachable=%v", seed, res.Found, reachable)
			}
			if !res.Found {
				continue
			}
			if res.Cost != dist[g.Goal()] {
				t.Errorf("seed=%d: cost=%d, BFS shortest=%d", seed, res.Cost, dist[g.Goal()])
			}
			checkPath(t, g, res.Path)
		}
	}
}

func TestSearchCancellation(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, 10, 10, nil, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 9, Col: 9})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, g, Manhattan)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestSearchWalledInStart(t *testing.T) {
	t.Parallel()

	// Start completely enclosed: the run still completes normally with a
	// no-path result after expanding only the start cell.
	walls := []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
	g := mustGrid(t, 3, 3, walls, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	res, err := Search(context.Background(), g, Manhattan)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Found {
		t.Fatal("found a path out of an enclosed start")
	}
	if res.Expanded != 1 {
		t.Errorf("expanded = %d, want 1", res.Expanded)
	}
}

func TestBreadthFirst(t *testing.T) {
	t.Parallel()

	t.Run("open grid distances", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 3, 3, nil, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
		dist, reachable := BreadthFirst(g)
		if !reachable {
			t.Fatal("goal unreachable on an open grid")
		}
		if dist[g.Goal()] != 4 {
			t.Errorf("goal distance = %d, want 4", dist[g.Goal()])
		}
		if len(dist) != 9 {
			t.Errorf("visited %d cells, want 9", len(dist))
		}
	})

	t.Run("walled column", func(t *testing.T) {
		t.Parallel()
		walls := []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}
		g := mustGrid(t, 3, 3, walls, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2})
		dist, reachable := BreadthFirst(g)
		if reachable {
			t.Fatal("goal reachable through a solid wall")
		}
		if len(dist) != 3 {
			t.Errorf("visited %d cells, want 3", len(dist))
		}
	})
}

func equalCellSets(a, b map[grid.Cell]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if !b[c] {
			return false
		}
	}
	return true
}
