package network

import (
	"math"
	"sort"
	"strings"

	"github.com/transitnav/metro-routing/internal/gtfs"
	"github.com/transitnav/metro-routing/pkg/geometry"
	"github.com/transitnav/metro-routing/pkg/graph"
	"github.com/transitnav/metro-routing/pkg/slice"
)

// BuildOptions control how the network is assembled from a feed.
type BuildOptions struct {
	CircularLines       []string // lines whose trips are closed last -> first regardless of distance
	CircularThresholdKm float64  // close any trip whose endpoints are at most this far apart
	AddReverseEdges     bool
}

func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		CircularLines:       []string{"Pink"},
		CircularThresholdKm: 0.3,
		AddReverseEdges:     true,
	}
}

// LineName extracts the public line name from a GTFS route_long_name.
// The feed encodes it as "COLOR_Start to End", with two special services that
// carry their marketing names instead of a color.
func LineName(routeLongName string) string {
	if routeLongName == "" {
		return "Unknown"
	}
	colorPart := strings.SplitN(routeLongName, "_", 2)[0]
	if strings.Contains(colorPart, "ORANGE") || strings.Contains(colorPart, "AIRPORT") {
		return "Airport Express"
	}
	if strings.Contains(colorPart, "RAPID") {
		return "Rapid Metro"
	}
	return titleCase(colorPart)
}

// Build assembles the station network from the parsed GTFS tables.
// Stations are keyed by stop name; consecutive stops of every trip become
// line-labeled edges weighted with the great circle distance between the
// stops, rounded to two decimals. Duplicate (from, to, line) edges are
// suppressed. Trips are processed in sorted id order so the produced network
// document is identical across runs.
func Build(feed *gtfs.Feed, opts BuildOptions) *graph.Network {
	network := graph.NewNetwork()
	stopNames := make(map[string]string) // stop_id -> station name
	lineCodes := make(map[string]map[string]bool)

	for _, stop := range feed.Stops {
		network.AddStation(graph.Station{Name: stop.Name, Coords: geometry.NewPoint(stop.Lat, stop.Lon)})
		stopNames[stop.ID] = stop.Name
		if lineCodes[stop.Name] == nil {
			lineCodes[stop.Name] = make(map[string]bool)
		}
	}

	routeLines := make(map[string]string)
	for _, route := range feed.Routes {
		routeLines[route.ID] = LineName(route.LongName)
	}
	tripRoutes := make(map[string]string)
	for _, trip := range feed.Trips {
		tripRoutes[trip.ID] = trip.RouteID
	}

	tripStops := make(map[string][]gtfs.StopTime)
	for _, stopTime := range feed.StopTimes {
		tripStops[stopTime.TripID] = append(tripStops[stopTime.TripID], stopTime)
	}
	tripOrder := make([]string, 0, len(tripStops))
	for tripID := range tripStops {
		tripOrder = append(tripOrder, tripID)
	}
	sort.Strings(tripOrder)

	type edgeKey struct{ from, to, line string }
	processed := make(map[edgeKey]bool)

	addEdge := func(from, to string, distance float64, line string) {
		if key := (edgeKey{from, to, line}); !processed[key] {
			network.AddEdge(from, graph.Edge{To: to, Distance: round2(distance), Line: line})
			processed[key] = true
		}
		if !opts.AddReverseEdges {
			return
		}
		if key := (edgeKey{to, from, line}); !processed[key] {
			network.AddEdge(to, graph.Edge{To: from, Distance: round2(distance), Line: line})
			processed[key] = true
		}
	}

	distance := func(from, to string) float64 {
		src, _ := network.Station(from)
		dst, _ := network.Station(to)
		return src.Coords.Haversine(dst.Coords)
	}

	for _, tripID := range tripOrder {
		stops := tripStops[tripID]
		sort.Slice(stops, func(i, j int) bool { return stops[i].Sequence < stops[j].Sequence })

		line := routeLines[tripRoutes[tripID]]
		if line == "" {
			line = "Unknown"
		}

		for i := 0; i+1 < len(stops); i++ {
			from := stopNames[stops[i].StopID]
			to := stopNames[stops[i+1].StopID]
			if from == "" || to == "" || from == to {
				continue
			}
			lineCodes[from][line] = true
			lineCodes[to][line] = true
			addEdge(from, to, distance(from, to), line)
		}

		// close the loop when the trip ends where it started, or nearly so
		if len(stops) >= 2 {
			first := stopNames[stops[0].StopID]
			last := stopNames[stops[len(stops)-1].StopID]
			if first != "" && last != "" && first != last {
				d := distance(last, first)
				if d < opts.CircularThresholdKm || slice.Contains(opts.CircularLines, line) {
					addEdge(last, first, d, line)
				}
			}
		}
	}

	for name, lines := range lineCodes {
		station, ok := network.Station(name)
		if !ok {
			continue
		}
		station.LineCodes = make([]string, 0, len(lines))
		for line := range lines {
			station.LineCodes = append(station.LineCodes, line)
		}
		sort.Strings(station.LineCodes)
		network.AddStation(station)
	}

	return network
}

// CoordinateDrift reports a station whose feed coordinates disagree with an
// independently sourced reference position.
type CoordinateDrift struct {
	Station    string
	DistanceKm float64
}

// CrossCheck compares the network's station coordinates against a reference
// station set (typically extracted from an OSM PBF) and returns the stations
// that drifted further than toleranceKm. Stations absent from the reference
// are skipped.
func CrossCheck(network *graph.Network, reference map[string]geometry.Point, toleranceKm float64) []CoordinateDrift {
	var drifts []CoordinateDrift
	for _, name := range network.StationNames() {
		ref, ok := reference[name]
		if !ok {
			continue
		}
		station, _ := network.Station(name)
		if d := station.Coords.Haversine(ref); d > toleranceKm {
			drifts = append(drifts, CoordinateDrift{Station: name, DistanceKm: d})
		}
	}
	return drifts
}

func round2(km float64) float64 {
	return math.Round(km*100) / 100
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
