package network

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/transitnav/metro-routing/internal/gtfs"
	"github.com/transitnav/metro-routing/pkg/graph"
)

// lineColors is the palette used by the frontend map.
var lineColors = map[string]string{
	"Red":             "#FF0000",
	"Yellow":          "#FFC300",
	"Blue":            "#0000FF",
	"Green":           "#008000",
	"Violet":          "#EE82EE",
	"Pink":            "#FFC0CB",
	"Magenta":         "#FF00FF",
	"Gray":            "#808080",
	"Orange":          "#FFA500",
	"Airport Express": "#FFA500",
	"Aqua":            "#00FFFF",
	"Rapid Metro":     "#ADD8E6",
}

func LineColor(line string) string {
	if color, ok := lineColors[line]; ok {
		return color
	}
	return "#000000"
}

// ExportStations renders every station as a GeoJSON point feature with its
// name and the lines serving it, in sorted station order.
func ExportStations(network *graph.Network) *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	for _, name := range network.StationNames() {
		station, _ := network.Station(name)
		feature := geojson.NewFeature(orb.Point{station.Coords.Lon, station.Coords.Lat})
		feature.Properties["name"] = station.Name
		feature.Properties["lines"] = station.LineCodes
		collection.Append(feature)
	}
	return collection
}

// ExportLineShapes renders one LineString feature per line from the feed's
// shapes. A line is typically covered by many trips sharing a handful of
// shapes; the longest one is taken as the representative geometry.
func ExportLineShapes(feed *gtfs.Feed) *geojson.FeatureCollection {
	routeLines := make(map[string]string)
	for _, route := range feed.Routes {
		routeLines[route.ID] = LineName(route.LongName)
	}

	lineShapes := make(map[string][]gtfs.ShapePoint)
	for _, trip := range feed.Trips {
		line := routeLines[trip.RouteID]
		if line == "" || trip.ShapeID == "" {
			continue
		}
		points := feed.Shapes[trip.ShapeID]
		if len(points) > len(lineShapes[line]) {
			lineShapes[line] = points
		}
	}

	lines := make([]string, 0, len(lineShapes))
	for line := range lineShapes {
		lines = append(lines, line)
	}
	sort.Strings(lines)

	collection := geojson.NewFeatureCollection()
	for _, line := range lines {
		points := lineShapes[line]
		lineString := make(orb.LineString, 0, len(points))
		for _, point := range points {
			lineString = append(lineString, orb.Point{point.Lon, point.Lat})
		}
		feature := geojson.NewFeature(lineString)
		feature.Properties["line"] = line
		feature.Properties["color"] = LineColor(line)
		collection.Append(feature)
	}
	return collection
}

// WriteGeoJSON writes a feature collection to a file, indented for the
// frontend's benefit.
func WriteGeoJSON(collection *geojson.FeatureCollection, filename string) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal geojson: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
