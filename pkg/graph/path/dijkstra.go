package path

import (
	"github.com/transitnav/metro-routing/pkg/graph"
	"github.com/transitnav/metro-routing/pkg/queue"
)

// Dijkstra computes least-cost paths using only the accumulated edge cost.
type Dijkstra struct {
	network *graph.Network
}

func NewDijkstra(network *graph.Network) *Dijkstra {
	return &Dijkstra{network: network}
}

func (d *Dijkstra) Name() string {
	return "Dijkstra"
}

// ComputeShortestPath runs a Dijkstra search from origin to destination.
// The best known cost of a neighbor is updated eagerly at enqueue time, which
// prunes dominated queue entries early. The search terminates as soon as the
// destination is dequeued; with non-negative weights its cost is final then.
// An origin that is no adjacency key simply has no departures, so the search
// ends unreachable unless origin equals destination.
func (d *Dijkstra) ComputeShortestPath(origin, destination string) SearchResult {
	pq := queue.NewQueue()
	items := make(map[string]*queue.Item)
	settled := make(map[string]bool)
	predecessor := make(map[string]string)
	arrivalLine := make(map[string]string)

	originItem := queue.NewItem(origin, 0, 0)
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

		for _, edge := range d.network.EdgesFrom(current.Station) {
			if settled[edge.To] {
				continue
			}
			tentative := current.Distance + edge.Distance
			neighbor, known := items[edge.To]
			if !known {
				neighbor = queue.NewItem(edge.To, tentative, 0)
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
