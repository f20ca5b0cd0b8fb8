package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/transitnav/metro-routing/internal/config"
	"github.com/transitnav/metro-routing/pkg/graph"
	"github.com/transitnav/metro-routing/pkg/network"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	networkFile := flag.String("network", cfg.NetworkFile, "station network json file")
	circular := flag.String("circular", strings.Join(cfg.CircularLines, ","), "comma separated circular lines")
	flag.Parse()

	n, err := graph.ReadNetworkFile(*networkFile)
	if err != nil {
		log.Fatalf("loading network: %v", err)
	}

	opts := network.DefaultValidateOptions()
	if *circular == "" {
		opts.CircularLines = nil
	} else {
		opts.CircularLines = strings.Split(*circular, ",")
	}

	report := network.Validate(n, opts)
	for _, finding := range report.Findings {
		fmt.Printf("%s: %s\n", finding.Severity, finding.Message)
	}
	if !report.OK() {
		fmt.Println("Network validation FAILED.")
		os.Exit(2)
	}
	fmt.Printf("Network OK: %d stations, %d edges.\n", n.StationCount(), n.EdgeCount())
}
