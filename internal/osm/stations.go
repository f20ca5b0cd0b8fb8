package osm

import (
	"io"
	"os"
	"runtime"

	"github.com/qedus/osmpbf"

	"github.com/transitnav/metro-routing/pkg/geometry"
)

// StationExtractor collects named rail stations from an OSM PBF extract.
// The result is used to cross-check GTFS stop coordinates against an
// independently surveyed source.
type StationExtractor struct {
	filename string
	stations map[string]geometry.Point
}

func NewStationExtractor(filename string) *StationExtractor {
	return &StationExtractor{
		filename: filename,
		stations: make(map[string]geometry.Point),
	}
}

func (se *StationExtractor) Extract() error {
	file, err := os.Open(se.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	for {
		v, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch v := v.(type) {
		case *osmpbf.Node:
			if !isStation(v.Tags) {
				continue
			}
			name := v.Tags["name"]
			if name == "" {
				continue
			}
			se.stations[name] = geometry.NewPoint(v.Lat, v.Lon)
		}
	}
	return nil
}

// Stations returns the extracted station coordinates keyed by name.
func (se *StationExtractor) Stations() map[string]geometry.Point {
	return se.stations
}

func isStation(tags map[string]string) bool {
	switch tags["railway"] {
	case "station", "halt":
		return true
	}
	return tags["station"] == "subway"
}
