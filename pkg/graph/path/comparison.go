package path

import (
	"time"

	"github.com/transitnav/metro-routing/pkg/graph"
)

// Comparison holds the results and wall-clock timings of running the
// uninformed and the informed search on the same query.
type Comparison struct {
	Dijkstra     SearchResult
	AStar        SearchResult
	DijkstraTime time.Duration
	AStarTime    time.Duration
}

// RunComparison runs Dijkstra and then A* sequentially on the same query.
// Each timing covers the full invocation of one algorithm.
func RunComparison(network *graph.Network, origin, destination string) Comparison {
	var c Comparison

	dijkstra := NewDijkstra(network)
	start := time.Now()
	c.Dijkstra = dijkstra.ComputeShortestPath(origin, destination)
	c.DijkstraTime = time.Since(start)

	astar := NewAStar(network)
	start = time.Now()
	c.AStar = astar.ComputeShortestPath(origin, destination)
	c.AStarTime = time.Since(start)

	return c
}

// NodeReduction returns the percentage of nodes A* avoided relative to
// Dijkstra. The second return value is false when Dijkstra expanded no nodes,
// in which case the percentage is undefined.
func (c Comparison) NodeReduction() (float64, bool) {
	if c.Dijkstra.NodesVisited == 0 {
		return 0, false
	}
	reduction := float64(c.Dijkstra.NodesVisited-c.AStar.NodesVisited) / float64(c.Dijkstra.NodesVisited) * 100
	return reduction, true
}

// Route returns the formatted route of the informed search, which is the one
// reported to the user. Both algorithms return paths of equal cost.
func (c Comparison) Route() Route {
	return FormatRoute(c.AStar.Steps)
}
