package network

import (
	"fmt"
	"math"
	"sort"

	"github.com/transitnav/metro-routing/pkg/graph"
)

const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

type Finding struct {
	Severity string
	Message  string
}

type Report struct {
	Findings []Finding
}

// OK reports whether the network has no error findings. Warnings do not
// fail validation.
func (r *Report) OK() bool {
	for _, finding := range r.Findings {
		if finding.Severity == SeverityError {
			return false
		}
	}
	return true
}

func (r *Report) errorf(format string, args ...interface{}) {
	r.Findings = append(r.Findings, Finding{Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(format string, args ...interface{}) {
	r.Findings = append(r.Findings, Finding{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

type ValidateOptions struct {
	CircularLines       []string
	DistanceToleranceKm float64 // allowed asymmetry between an edge and its reverse
}

func DefaultValidateOptions() ValidateOptions {
	return ValidateOptions{
		CircularLines:       []string{"Pink"},
		DistanceToleranceKm: 0.5,
	}
}

// Validate checks the structural health of a built network: every edge must
// have a same-line reverse with a matching weight, edges must not point at
// unknown stations, and every station on a circular line must sit inside a
// closed ring.
func Validate(network *graph.Network, opts ValidateOptions) *Report {
	report := &Report{}

	sources := make([]string, 0, len(network.Edges))
	for from := range network.Edges {
		sources = append(sources, from)
	}
	sort.Strings(sources)

	for _, from := range sources {
		for _, edge := range network.Edges[from] {
			if !network.HasStation(edge.To) {
				report.warnf("edge %s -> %s (%s) points to unknown station", from, edge.To, edge.Line)
			}
			reverse, found := findReverse(network, edge.To, from, edge.Line)
			if !found {
				report.errorf("missing reverse edge for %s -> %s (%s)", from, edge.To, edge.Line)
				continue
			}
			if diff := math.Abs(reverse.Distance - edge.Distance); diff > opts.DistanceToleranceKm {
				report.warnf("asymmetric distance %s <-> %s (%s): %.2f km vs %.2f km",
					from, edge.To, edge.Line, edge.Distance, reverse.Distance)
			}
		}
	}

	for _, line := range opts.CircularLines {
		checkClosedLoop(network, line, report)
	}

	return report
}

// checkClosedLoop verifies that every station served by the line has at
// least two distinct same-line neighbors. An endpoint with a single neighbor
// means the ring is open there.
func checkClosedLoop(network *graph.Network, line string, report *Report) {
	neighbors := make(map[string]map[string]bool)
	for from, edges := range network.Edges {
		for _, edge := range edges {
			if edge.Line != line {
				continue
			}
			if neighbors[from] == nil {
				neighbors[from] = make(map[string]bool)
			}
			neighbors[from][edge.To] = true
		}
	}
	if len(neighbors) == 0 {
		report.warnf("circular line %s is not present in the network", line)
		return
	}

	var open []string
	for station, adjacent := range neighbors {
		if len(adjacent) < 2 {
			open = append(open, station)
		}
	}
	sort.Strings(open)
	for _, station := range open {
		report.errorf("circular line %s is open at %s", line, station)
	}
}

func findReverse(network *graph.Network, from, to, line string) (graph.Edge, bool) {
	for _, edge := range network.EdgesFrom(from) {
		if edge.To == to && edge.Line == line {
			return edge, true
		}
	}
	return graph.Edge{}, false
}
