package graph

import (
	"sort"

	"github.com/transitnav/metro-routing/pkg/geometry"
)

// Station is a node of the transit network. Stations are identified by their
// unique name and are immutable once the network is built.
type Station struct {
	Name      string         `json:"name"`
	LineCodes []string       `json:"line_codes"`
	Coords    geometry.Point `json:"coords"`
}

// Edge is a directed connection to another station, traversed by one line.
// Multiple edges between the same station pair may exist under different lines.
type Edge struct {
	To       string  `json:"to"`
	Distance float64 `json:"distance"` // kilometers
	Line     string  `json:"line"`
}

// Network is the weighted, line-labeled transit graph: the station table with
// coordinates and the adjacency lists of outgoing edges. Stations without an
// adjacency entry are leaf nodes with no outgoing edges. The network is
// read-only once built and safe for concurrent searches.
type Network struct {
	Stations map[string]Station `json:"stations"`
	Edges    map[string][]Edge  `json:"edges"`
}

func NewNetwork() *Network {
	return &Network{
		Stations: make(map[string]Station),
		Edges:    make(map[string][]Edge),
	}
}

func (n *Network) AddStation(s Station) {
	n.Stations[s.Name] = s
}

func (n *Network) AddEdge(from string, e Edge) {
	n.Edges[from] = append(n.Edges[from], e)
}

// EdgesFrom returns the outgoing edges of the given station. A station that is
// not an adjacency key has no outgoing edges, which is a valid leaf node and
// yields an empty list.
func (n *Network) EdgesFrom(station string) []Edge {
	return n.Edges[station]
}

// Station looks up the metadata record of the given station.
func (n *Network) Station(name string) (Station, bool) {
	s, ok := n.Stations[name]
	return s, ok
}

func (n *Network) HasStation(name string) bool {
	_, ok := n.Stations[name]
	return ok
}

func (n *Network) StationCount() int {
	return len(n.Stations)
}

func (n *Network) EdgeCount() int {
	count := 0
	for _, edges := range n.Edges {
		count += len(edges)
	}
	return count
}

// StationNames returns all station names in sorted order.
func (n *Network) StationNames() []string {
	names := make([]string, 0, len(n.Stations))
	for name := range n.Stations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LineCodes returns the distinct line identifiers of all edges, sorted.
func (n *Network) LineCodes() []string {
	seen := make(map[string]bool)
	for _, edges := range n.Edges {
		for _, e := range edges {
			seen[e.Line] = true
		}
	}
	lines := make([]string, 0, len(seen))
	for line := range seen {
		lines = append(lines, line)
	}
	sort.Strings(lines)
	return lines
}
