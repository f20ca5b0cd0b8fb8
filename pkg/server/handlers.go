package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/transitnav/metro-routing/pkg/graph/path"
)

type routeResponse struct {
	From       string             `json:"from"`
	To         string             `json:"to"`
	Reachable  bool               `json:"reachable"`
	DistanceKm float64            `json:"distance_km,omitempty"`
	Route      []string           `json:"route,omitempty"`
	Lines      []string           `json:"lines,omitempty"`
	Metrics    comparisonResponse `json:"metrics"`
}

type comparisonResponse struct {
	Dijkstra         algorithmMetrics `json:"dijkstra"`
	AStar            algorithmMetrics `json:"astar"`
	NodeReductionPct *float64         `json:"node_reduction_pct,omitempty"`
}

type algorithmMetrics struct {
	NodesVisited int     `json:"nodes_visited"`
	TimeMs       float64 `json:"time_ms"`
}

type stationResponse struct {
	Name      string   `json:"name"`
	LineCodes []string `json:"line_codes"`
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var failed bool
	defer func() {
		s.metrics.Requests.Inc()
		if failed {
			s.metrics.Errors.Inc()
		}
	}()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		failed = true
		writeError(w, http.StatusBadRequest, "query parameters 'from' and 'to' are required")
		return
	}
	for _, name := range []string{from, to} {
		if !s.network.HasStation(name) {
			failed = true
			writeError(w, http.StatusNotFound, fmt.Sprintf("station %q not found", name))
			return
		}
	}

	comparison := path.RunComparison(s.network, from, to)
	s.metrics.DijkstraLatency.Observe(comparison.DijkstraTime.Seconds())
	s.metrics.AStarLatency.Observe(comparison.AStarTime.Seconds())
	s.metrics.NodesVisited.WithLabelValues("dijkstra").Observe(float64(comparison.Dijkstra.NodesVisited))
	s.metrics.NodesVisited.WithLabelValues("astar").Observe(float64(comparison.AStar.NodesVisited))

	route := comparison.Route()
	response := routeResponse{
		From:      from,
		To:        to,
		Reachable: comparison.AStar.Reachable(),
		Metrics: comparisonResponse{
			Dijkstra: algorithmMetrics{
				NodesVisited: comparison.Dijkstra.NodesVisited,
				TimeMs:       float64(comparison.DijkstraTime.Microseconds()) / 1000,
			},
			AStar: algorithmMetrics{
				NodesVisited: comparison.AStar.NodesVisited,
				TimeMs:       float64(comparison.AStarTime.Microseconds()) / 1000,
			},
		},
	}
	if response.Reachable {
		response.DistanceKm = comparison.AStar.Cost
		response.Route = route.Stations
		response.Lines = route.Lines
	}
	if reduction, ok := comparison.NodeReduction(); ok {
		response.Metrics.NodeReductionPct = &reduction
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	s.metrics.Requests.Inc()

	stations := make([]stationResponse, 0, s.network.StationCount())
	for _, name := range s.network.StationNames() {
		station, _ := s.network.Station(name)
		stations = append(stations, stationResponse{
			Name:      station.Name,
			LineCodes: station.LineCodes,
			Lat:       station.Coords.Lat,
			Lon:       station.Coords.Lon,
		})
	}
	writeJSON(w, http.StatusOK, stations)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"stations": s.network.StationCount(),
		"edges":    s.network.EdgeCount(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
