package network

import (
	"math"
	"testing"

	"github.com/transitnav/metro-routing/internal/gtfs"
	"github.com/transitnav/metro-routing/pkg/graph"
)

func TestLineName(t *testing.T) {
	cases := []struct {
		longName string
		want     string
	}{
		{"RED_Rithala to Shaheed Sthal", "Red"},
		{"YELLOW_Samaypur Badli to Millennium City Centre", "Yellow"},
		{"PINK_Majlis Park to Shiv Vihar", "Pink"},
		{"ORANGE_New Delhi to Yashobhoomi Dwarka", "Airport Express"},
		{"AIRPORT EXPRESS_New Delhi to Dwarka", "Airport Express"},
		{"RAPID METRO_Sector 55-56 to Phase 3", "Rapid Metro"},
		{"", "Unknown"},
	}
	for _, c := range cases {
		if got := LineName(c.longName); got != c.want {
			t.Errorf("LineName(%q) = %q, want %q", c.longName, got, c.want)
		}
	}
}

func testFeed() *gtfs.Feed {
	return &gtfs.Feed{
		Stops: []gtfs.Stop{
			{ID: "1", Name: "Rithala", Lat: 28.7209, Lon: 77.1070},
			{ID: "2", Name: "Rohini West", Lat: 28.7148, Lon: 77.1136},
			{ID: "3", Name: "Rohini East", Lat: 28.7075, Lon: 77.1264},
		},
		Routes: []gtfs.Route{
			{ID: "r1", LongName: "RED_Rithala to Shaheed Sthal"},
		},
		Trips: []gtfs.Trip{
			{ID: "t1", RouteID: "r1"},
			{ID: "t2", RouteID: "r1"},
		},
		StopTimes: []gtfs.StopTime{
			{TripID: "t1", StopID: "1", Sequence: 1},
			{TripID: "t1", StopID: "2", Sequence: 2},
			{TripID: "t1", StopID: "3", Sequence: 3},
			// same segment travelled the other way; must not duplicate edges
			{TripID: "t2", StopID: "3", Sequence: 1},
			{TripID: "t2", StopID: "2", Sequence: 2},
			{TripID: "t2", StopID: "1", Sequence: 3},
		},
	}
}

func findEdge(t *testing.T, n *graph.Network, from, to, line string) graph.Edge {
	t.Helper()
	for _, edge := range n.EdgesFrom(from) {
		if edge.To == to && edge.Line == line {
			return edge
		}
	}
	t.Fatalf("edge %s -> %s (%s) not found", from, to, line)
	return graph.Edge{}
}

func TestBuildLinearLine(t *testing.T) {
	n := Build(testFeed(), DefaultBuildOptions())

	if n.StationCount() != 3 {
		t.Fatalf("StationCount() = %d, want 3", n.StationCount())
	}
	// two segments, both directions, no duplicates from the return trip
	if n.EdgeCount() != 4 {
		t.Fatalf("EdgeCount() = %d, want 4", n.EdgeCount())
	}

	forward := findEdge(t, n, "Rithala", "Rohini West", "Red")
	reverse := findEdge(t, n, "Rohini West", "Rithala", "Red")
	if forward.Distance != reverse.Distance {
		t.Errorf("asymmetric distances: %v vs %v", forward.Distance, reverse.Distance)
	}
	if forward.Distance <= 0 || forward.Distance > 2 {
		t.Errorf("Rithala - Rohini West distance = %v km, want within (0, 2]", forward.Distance)
	}
	if math.Round(forward.Distance*100)/100 != forward.Distance {
		t.Errorf("distance %v not rounded to two decimals", forward.Distance)
	}

	station, ok := n.Station("Rohini West")
	if !ok {
		t.Fatal("Rohini West missing")
	}
	if len(station.LineCodes) != 1 || station.LineCodes[0] != "Red" {
		t.Errorf("LineCodes = %v, want [Red]", station.LineCodes)
	}
}

func TestBuildInterchangeLineCodes(t *testing.T) {
	feed := testFeed()
	feed.Routes = append(feed.Routes, gtfs.Route{ID: "r2", LongName: "YELLOW_Somewhere to Elsewhere"})
	feed.Stops = append(feed.Stops, gtfs.Stop{ID: "4", Name: "Pitampura", Lat: 28.7030, Lon: 77.1320})
	feed.Trips = append(feed.Trips, gtfs.Trip{ID: "t3", RouteID: "r2"})
	feed.StopTimes = append(feed.StopTimes,
		gtfs.StopTime{TripID: "t3", StopID: "3", Sequence: 1},
		gtfs.StopTime{TripID: "t3", StopID: "4", Sequence: 2},
	)

	n := Build(feed, DefaultBuildOptions())
	station, _ := n.Station("Rohini East")
	if len(station.LineCodes) != 2 || station.LineCodes[0] != "Red" || station.LineCodes[1] != "Yellow" {
		t.Errorf("interchange LineCodes = %v, want [Red Yellow]", station.LineCodes)
	}
}

func TestBuildClosesCircularLine(t *testing.T) {
	feed := &gtfs.Feed{
		Stops: []gtfs.Stop{
			{ID: "1", Name: "Majlis Park", Lat: 28.7240, Lon: 77.1570},
			{ID: "2", Name: "Azadpur", Lat: 28.7070, Lon: 77.1800},
			{ID: "3", Name: "Shalimar Bagh", Lat: 28.7160, Lon: 77.1650},
		},
		Routes: []gtfs.Route{{ID: "r1", LongName: "PINK_Majlis Park to Shiv Vihar"}},
		Trips:  []gtfs.Trip{{ID: "t1", RouteID: "r1"}},
		StopTimes: []gtfs.StopTime{
			{TripID: "t1", StopID: "1", Sequence: 1},
			{TripID: "t1", StopID: "2", Sequence: 2},
			{TripID: "t1", StopID: "3", Sequence: 3},
		},
	}

	n := Build(feed, DefaultBuildOptions())
	// the trip ends far from where it started, but Pink is configured
	// circular, so the ring must be closed anyway
	findEdge(t, n, "Shalimar Bagh", "Majlis Park", "Pink")
	findEdge(t, n, "Majlis Park", "Shalimar Bagh", "Pink")
}

func TestBuildClosesNearbyEndpoints(t *testing.T) {
	feed := &gtfs.Feed{
		Stops: []gtfs.Stop{
			{ID: "1", Name: "Loop Start", Lat: 28.7000, Lon: 77.1000},
			{ID: "2", Name: "Loop Mid", Lat: 28.7100, Lon: 77.1100},
			// about 100 m from the start, inside the closing threshold
			{ID: "3", Name: "Loop End", Lat: 28.7009, Lon: 77.1000},
		},
		Routes: []gtfs.Route{{ID: "r1", LongName: "GRAY_Loop Start to Loop End"}},
		Trips:  []gtfs.Trip{{ID: "t1", RouteID: "r1"}},
		StopTimes: []gtfs.StopTime{
			{TripID: "t1", StopID: "1", Sequence: 1},
			{TripID: "t1", StopID: "2", Sequence: 2},
			{TripID: "t1", StopID: "3", Sequence: 3},
		},
	}

	n := Build(feed, DefaultBuildOptions())
	findEdge(t, n, "Loop End", "Loop Start", "Gray")
}

func TestBuildWithoutReverseEdges(t *testing.T) {
	opts := DefaultBuildOptions()
	opts.AddReverseEdges = false

	feed := testFeed()
	feed.Trips = feed.Trips[:1]
	feed.StopTimes = feed.StopTimes[:3]

	n := Build(feed, opts)
	if n.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", n.EdgeCount())
	}
	if len(n.EdgesFrom("Rohini West")) != 1 {
		t.Errorf("unexpected reverse edge from Rohini West: %v", n.EdgesFrom("Rohini West"))
	}
}
