package path

import (
	"testing"
	"time"
)

func TestFormatRouteCollapsesLines(t *testing.T) {
	steps := []Step{
		{Station: "A", Line: "Red"},
		{Station: "B", Line: "Red"},
		{Station: "C", Line: "Blue"},
		{Station: "D"},
	}
	route := FormatRoute(steps)

	stationsReference := []string{"A", "B", "C", "D"}
	if len(route.Stations) != len(stationsReference) {
		t.Fatalf("stations are %v, should be %v", route.Stations, stationsReference)
	}
	for i, name := range stationsReference {
		if route.Stations[i] != name {
			t.Errorf("station at %v is %v, should be %v", i, route.Stations[i], name)
		}
	}

	linesReference := []string{"Red", "Blue"}
	if len(route.Lines) != len(linesReference) {
		t.Fatalf("lines are %v, should be %v", route.Lines, linesReference)
	}
	for i, line := range linesReference {
		if route.Lines[i] != line {
			t.Errorf("line at %v is %v, should be %v", i, route.Lines[i], line)
		}
	}
}

func TestFormatRouteEmptyVersusSingle(t *testing.T) {
	empty := FormatRoute(nil)
	if empty.Exists() {
		t.Errorf("empty path formatted to %v, should not exist", empty)
	}

	single := FormatRoute([]Step{{Station: "A"}})
	if !single.Exists() {
		t.Error("single station route should exist")
	}
	if len(single.Stations) != 1 || len(single.Lines) != 0 {
		t.Errorf("single station route is %v, should be one station and no lines", single)
	}
}

func TestFormatRouteReturnTrip(t *testing.T) {
	steps := []Step{
		{Station: "A", Line: "Red"},
		{Station: "B", Line: "Blue"},
		{Station: "A", Line: "Red"},
		{Station: "C"},
	}
	route := FormatRoute(steps)
	if len(route.Stations) != 4 {
		t.Errorf("stations are %v, should keep revisits", route.Stations)
	}
	linesReference := []string{"Red", "Blue", "Red"}
	if len(route.Lines) != len(linesReference) {
		t.Fatalf("lines are %v, should be %v (only consecutive duplicates collapse)", route.Lines, linesReference)
	}
}

func TestNodeReductionGuard(t *testing.T) {
	c := Comparison{
		Dijkstra: SearchResult{NodesVisited: 0},
		AStar:    SearchResult{NodesVisited: 0},
	}
	if _, ok := c.NodeReduction(); ok {
		t.Error("node reduction defined for zero Dijkstra expansions, should be undefined")
	}

	c = Comparison{
		Dijkstra:     SearchResult{NodesVisited: 20},
		AStar:        SearchResult{NodesVisited: 15},
		DijkstraTime: time.Millisecond,
		AStarTime:    time.Millisecond,
	}
	reduction, ok := c.NodeReduction()
	if !ok {
		t.Fatal("node reduction undefined, should be defined")
	}
	if reduction != 25 {
		t.Errorf("node reduction is %v, should be 25", reduction)
	}
}

func TestRunComparison(t *testing.T) {
	network := lineNetwork()
	c := RunComparison(network, "Alpha", "Delta")

	if c.Dijkstra.Cost != c.AStar.Cost {
		t.Errorf("costs differ: Dijkstra %v vs A* %v", c.Dijkstra.Cost, c.AStar.Cost)
	}
	if c.AStar.NodesVisited > c.Dijkstra.NodesVisited {
		t.Errorf("A* visited %v nodes, Dijkstra only %v", c.AStar.NodesVisited, c.Dijkstra.NodesVisited)
	}
	if route := c.Route(); len(route.Stations) != 4 {
		t.Errorf("route is %v, should have 4 stations", route.Stations)
	}
}
