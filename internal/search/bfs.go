package search

import "github.com/pathviz/starpath/internal/grid"

// BreadthFirst computes unit-cost distances from the grid's start cell to
// every reachable cell, and reports whether the goal is among them. On a
// unit-cost grid its goal distance equals the optimal path cost, which makes
// it the independent reference for the A* engine.
func BreadthFirst(g *grid.Grid) (dist map[grid.Cell]int, reachable bool) {
	dist = map[grid.Cell]int{g.Start(): 0}
	queue := []grid.Cell{g.Start()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	_, reachable = dist[g.Goal()]
	return dist, reachable
}
