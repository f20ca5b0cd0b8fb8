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
	"github.com/transitnav/metro-routing/pkg/graph/path"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	networkFile := flag.String("network", cfg.NetworkFile, "station network json file")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] \"Start Station\" \"End Station\"\n", os.Args[0])
		os.Exit(1)
	}
	origin := flag.Arg(0)
	destination := flag.Arg(1)

	network, err := graph.ReadNetworkFile(*networkFile)
	if err != nil {
		log.Fatalf("loading network: %v", err)
	}

	for _, name := range []string{origin, destination} {
		if !network.HasStation(name) {
			fmt.Printf("Error: Station '%s' not found.\n", name)
			os.Exit(1)
		}
	}

	fmt.Printf("Finding shortest route from %s to %s...\n\n", origin, destination)

	comparison := path.RunComparison(network, origin, destination)
	if !comparison.AStar.Reachable() {
		fmt.Println("No route found between these stations.")
		return
	}

	route := comparison.Route()
	fmt.Printf("Total Distance: %.2f km\n", comparison.AStar.Cost)
	fmt.Printf("Lines: %s\n", strings.Join(route.Lines, ", "))
	fmt.Printf("Number of Stations: %d\n\n", len(route.Stations))

	fmt.Println("--- Algorithm Comparison ---")
	fmt.Printf("%-10s | %-15s | %-10s\n", "Algorithm", "Nodes Visited", "Time (ms)")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%-10s | %-15d | %-10.3f\n", "Dijkstra",
		comparison.Dijkstra.NodesVisited, float64(comparison.DijkstraTime.Microseconds())/1000)
	fmt.Printf("%-10s | %-15d | %-10.3f\n", "A*",
		comparison.AStar.NodesVisited, float64(comparison.AStarTime.Microseconds())/1000)
	if reduction, ok := comparison.NodeReduction(); ok {
		fmt.Printf("A* visited %.1f%% fewer nodes.\n", reduction)
	}

	fmt.Println()
	fmt.Println("Route:")
	fmt.Println(strings.Join(route.Stations, " -> "))
}
