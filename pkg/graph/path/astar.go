package path

import (
	"github.com/transitnav/metro-routing/pkg/graph"
	"github.com/transitnav/metro-routing/pkg/queue"
)

// AStar computes least-cost paths ordered by f = g + h, where g is the
// accumulated cost and h the straight-line distance to the destination.
// The heuristic never overestimates the true remaining cost as long as edge
// weights are travel distances, so the returned cost equals Dijkstra's.
type AStar struct {
	network *graph.Network
}

func NewAStar(network *graph.Network) *AStar {
	return &AStar{network: network}
}

func (a *AStar) Name() string {
	return "A*"
}

// ComputeShortestPath runs an A* search from origin to destination.
// Queue entries keep g and h separately; relaxation compares g values only.
// Termination mirrors Dijkstra: the destination's accumulated g is final once
// it is dequeued.
func (a *AStar) ComputeShortestPath(origin, destination string) SearchResult {
	pq := queue.NewQueue()
	items := make(map[string]*queue.Item)
	settled := make(map[string]bool)
	predecessor := make(map[string]string)
	arrivalLine := make(map[string]string)

	originItem := queue.NewItem(origin, 0, a.heuristic(origin, destination))
	items[origin] = originItem
	pq.Push(originItem)

	nodesVisited := 0
	for pq.Len() > 0 {
		current := pq.Pop()
		nodesVisited++

		if current.Station == destination {
			return SearchResult{
				Cost:         current.Distance,
				Steps:        reconstructSteps(origin, destination, predecessor, arrivalLine),
				NodesVisited: nodesVisited,
			}
		}
		settled[current.Station] = true

		for _, edge := range a.network.EdgesFrom(current.Station) {
			if settled[edge.To] {
				continue
			}
			tentative := current.Distance + edge.Distance
			neighbor, known := items[edge.To]
			if !known {
				neighbor = queue.NewItem(edge.To, tentative, a.heuristic(edge.To, destination))
				items[edge.To] = neighbor
				pq.Push(neighbor)
				predecessor[edge.To] = current.Station
				arrivalLine[edge.To] = edge.Line
			} else if tentative < neighbor.Distance {
				pq.Update(neighbor, tentative)
				predecessor[edge.To] = current.Station
				arrivalLine[edge.To] = edge.Line
			}
		}
	}

	return unreachable(nodesVisited)
}

// heuristic estimates the remaining cost from a station to the destination as
// the great circle distance between their coordinates. When either station is
// missing from the station table the estimate is 0, degrading this step to an
// uninformed search instead of failing. A zero estimate is trivially
// admissible, so correctness is preserved either way.
func (a *AStar) heuristic(from, to string) float64 {
	src, ok := a.network.Station(from)
	if !ok {
		return 0
	}
	dst, ok := a.network.Station(to)
	if !ok {
		return 0
	}
	return src.Coords.Haversine(dst.Coords)
}
