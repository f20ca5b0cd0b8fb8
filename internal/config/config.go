package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration shared by the network tools and the server
type Config struct {
	// Network building
	GTFSDir             string
	NetworkFile         string
	FrontendDataDir     string
	CircularLines       []string
	CircularThresholdKm float64
	AddReverseEdges     bool

	// Server
	ListenAddr  string
	MetricsAddr string
}

// Load reads configuration from environment variables with the defaults of
// the original network generators
func Load() *Config {
	return &Config{
		GTFSDir:             getEnv("GTFS_DIR", "DMRC_GTFS"),
		NetworkFile:         getEnv("NETWORK_FILE", "station_network.json"),
		FrontendDataDir:     getEnv("FRONTEND_DATA_DIR", "frontend/src/data"),
		CircularLines:       getEnvList("CIRCULAR_LINES", []string{"Pink"}),
		CircularThresholdKm: getEnvFloat("CIRCULAR_THRESHOLD_KM", 0.3),
		AddReverseEdges:     getEnvBool("ADD_REVERSE_EDGES", true),

		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
