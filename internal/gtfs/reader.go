package gtfs

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ReadFeed parses the static GTFS tables from a feed directory. The stop,
// route, trip and stop time tables are required; shapes.txt is optional and
// only used for frontend exports. Rows with malformed numeric fields are
// skipped, matching how real feeds are usually consumed.
func ReadFeed(dir string) (*Feed, error) {
	feed := &Feed{Shapes: make(map[string][]ShapePoint)}

	err := readTable(filepath.Join(dir, "stops.txt"), true, func(get func(string) string) {
		lat, latErr := strconv.ParseFloat(get("stop_lat"), 64)
		lon, lonErr := strconv.ParseFloat(get("stop_lon"), 64)
		if latErr != nil || lonErr != nil {
			return
		}
		feed.Stops = append(feed.Stops, Stop{
			ID:   get("stop_id"),
			Name: get("stop_name"),
			Lat:  lat,
			Lon:  lon,
		})
	})
	if err != nil {
		return nil, err
	}

	err = readTable(filepath.Join(dir, "routes.txt"), true, func(get func(string) string) {
		feed.Routes = append(feed.Routes, Route{
			ID:       get("route_id"),
			LongName: get("route_long_name"),
		})
	})
	if err != nil {
		return nil, err
	}

	err = readTable(filepath.Join(dir, "trips.txt"), true, func(get func(string) string) {
		feed.Trips = append(feed.Trips, Trip{
			ID:      get("trip_id"),
			RouteID: get("route_id"),
			ShapeID: get("shape_id"),
		})
	})
	if err != nil {
		return nil, err
	}

	err = readTable(filepath.Join(dir, "stop_times.txt"), true, func(get func(string) string) {
		seq, seqErr := strconv.Atoi(get("stop_sequence"))
		if seqErr != nil {
			return
		}
		feed.StopTimes = append(feed.StopTimes, StopTime{
			TripID:   get("trip_id"),
			StopID:   get("stop_id"),
			Sequence: seq,
		})
	})
	if err != nil {
		return nil, err
	}

	err = readTable(filepath.Join(dir, "shapes.txt"), false, func(get func(string) string) {
		lat, latErr := strconv.ParseFloat(get("shape_pt_lat"), 64)
		lon, lonErr := strconv.ParseFloat(get("shape_pt_lon"), 64)
		seq, seqErr := strconv.Atoi(get("shape_pt_sequence"))
		if latErr != nil || lonErr != nil || seqErr != nil {
			return
		}
		id := get("shape_id")
		feed.Shapes[id] = append(feed.Shapes[id], ShapePoint{Lat: lat, Lon: lon, Sequence: seq})
	})
	if err != nil {
		return nil, err
	}
	for id := range feed.Shapes {
		points := feed.Shapes[id]
		sort.Slice(points, func(i, j int) bool { return points[i].Sequence < points[j].Sequence })
	}

	log.Printf("GTFS parsed: %d stops, %d routes, %d trips, %d stop times, %d shapes",
		len(feed.Stops), len(feed.Routes), len(feed.Trips), len(feed.StopTimes), len(feed.Shapes))

	return feed, nil
}

// readTable streams one GTFS csv table and calls row once per record with a
// header-name accessor. Columns missing from the header read as empty strings.
func readTable(path string, required bool, row func(get func(column string) string)) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read %s header: %w", filepath.Base(path), err)
	}
	if len(header) > 0 {
		// feeds are frequently exported with a UTF-8 BOM
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		row(func(column string) string {
			i, ok := index[column]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		})
	}
	return nil
}
