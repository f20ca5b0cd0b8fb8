package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/transitnav/metro-routing/internal/config"
	"github.com/transitnav/metro-routing/pkg/graph"
	"github.com/transitnav/metro-routing/pkg/server"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	networkFile := flag.String("network", cfg.NetworkFile, "station network json file")
	addr := flag.String("addr", cfg.ListenAddr, "api listen address")
	metricsAddr := flag.String("metrics-addr", cfg.MetricsAddr, "prometheus listen address")
	flag.Parse()

	network, err := graph.ReadNetworkFile(*networkFile)
	if err != nil {
		log.Fatalf("loading network: %v", err)
	}
	log.Printf("loaded network: %d stations, %d edges", network.StationCount(), network.EdgeCount())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server.New(network).Start(ctx, *addr, *metricsAddr)
}
