package path

import (
	"math"

	"github.com/transitnav/metro-routing/pkg/slice"
)

// Navigator is implemented by both search algorithms.
type Navigator interface {
	ComputeShortestPath(origin, destination string) SearchResult // Compute the least-cost path between two stations
	Name() string                                                // Human readable algorithm name for reports
}

// Step records one station of a computed path together with the line used to
// travel on to the following station. The final step of a path carries no line.
type Step struct {
	Station string
	Line    string
}

// SearchResult is the outcome of one search run. An unreachable destination is
// a normal result with Cost = +Inf and no steps, never an error.
type SearchResult struct {
	Cost         float64 // accumulated distance in kilometers, +Inf when unreachable
	Steps        []Step
	NodesVisited int // number of priority queue pops during the search
}

// Reachable reports whether the search found a path to the destination.
func (r SearchResult) Reachable() bool {
	return !math.IsInf(r.Cost, 1)
}

// reconstructSteps rebuilds the step list from the predecessor and arrival
// line tables after the destination has been settled. The tables are owned by
// a single search invocation, so concurrent searches never share them.
func reconstructSteps(origin, destination string, predecessor, arrivalLine map[string]string) []Step {
	stations := []string{destination}
	for at := destination; at != origin; at = predecessor[at] {
		stations = append(stations, predecessor[at])
	}
	slice.ReverseInPlace(stations)

	steps := make([]Step, len(stations))
	for i, name := range stations {
		steps[i].Station = name
		if i+1 < len(stations) {
			steps[i].Line = arrivalLine[stations[i+1]]
		}
	}
	return steps
}

func unreachable(nodesVisited int) SearchResult {
	return SearchResult{Cost: math.Inf(1), NodesVisited: nodesVisited}
}
