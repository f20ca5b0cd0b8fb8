package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/transitnav/metro-routing/internal/config"
	"github.com/transitnav/metro-routing/internal/gtfs"
	"github.com/transitnav/metro-routing/internal/osm"
	"github.com/transitnav/metro-routing/pkg/network"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gtfsDir := flag.String("gtfs", cfg.GTFSDir, "directory with the GTFS .txt tables")
	outFile := flag.String("out", cfg.NetworkFile, "output station network json file")
	frontendDir := flag.String("frontend", cfg.FrontendDataDir, "write GeoJSON frontend data into this directory (empty to skip)")
	osmFile := flag.String("osm", "", "cross-check station coordinates against this OSM PBF extract")
	flag.Parse()

	start := time.Now()
	feed, err := gtfs.ReadFeed(*gtfsDir)
	if err != nil {
		log.Fatalf("reading feed: %v", err)
	}
	fmt.Printf("[TIME] Read feed: %s\n", time.Since(start))

	opts := network.BuildOptions{
		CircularLines:       cfg.CircularLines,
		CircularThresholdKm: cfg.CircularThresholdKm,
		AddReverseEdges:     cfg.AddReverseEdges,
	}

	start = time.Now()
	n := network.Build(feed, opts)
	fmt.Printf("[TIME] Build network: %s\n", time.Since(start))
	fmt.Printf("Stations: %d\n", n.StationCount())
	fmt.Printf("Edges: %d\n", n.EdgeCount())

	report := network.Validate(n, network.ValidateOptions{
		CircularLines:       cfg.CircularLines,
		DistanceToleranceKm: network.DefaultValidateOptions().DistanceToleranceKm,
	})
	for _, finding := range report.Findings {
		log.Printf("%s: %s", finding.Severity, finding.Message)
	}
	if !report.OK() {
		log.Fatal("built network failed validation")
	}

	if *osmFile != "" {
		extractor := osm.NewStationExtractor(*osmFile)
		if err := extractor.Extract(); err != nil {
			log.Fatalf("extracting OSM stations: %v", err)
		}
		for _, drift := range network.CrossCheck(n, extractor.Stations(), 0.5) {
			log.Printf("warning: %s is %.2f km from its OSM position", drift.Station, drift.DistanceKm)
		}
	}

	start = time.Now()
	if err := n.WriteFile(*outFile); err != nil {
		log.Fatalf("writing network: %v", err)
	}
	fmt.Printf("[TIME] Write network: %s\n", time.Since(start))

	if *frontendDir != "" {
		start = time.Now()
		stationsFile := filepath.Join(*frontendDir, "stations.geojson")
		if err := network.WriteGeoJSON(network.ExportStations(n), stationsFile); err != nil {
			log.Fatalf("writing stations geojson: %v", err)
		}
		linesFile := filepath.Join(*frontendDir, "lines.geojson")
		if err := network.WriteGeoJSON(network.ExportLineShapes(feed), linesFile); err != nil {
			log.Fatalf("writing lines geojson: %v", err)
		}
		fmt.Printf("[TIME] Write frontend data: %s\n", time.Since(start))
	}
}
