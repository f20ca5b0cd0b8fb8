package server

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	Requests        prometheus.Counter
	Errors          prometheus.Counter
	DijkstraLatency prometheus.Histogram
	AStarLatency    prometheus.Histogram
	NodesVisited    *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		Requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "metrorouting",
			Subsystem: "api",
			Name:      "requests",
		}),
		Errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "metrorouting",
			Subsystem: "api",
			Name:      "errors",
		}),
		DijkstraLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "metrorouting",
			Subsystem: "search",
			Name:      "dijkstra_latency",
			Buckets:   prometheus.DefBuckets,
		}),
		AStarLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "metrorouting",
			Subsystem: "search",
			Name:      "astar_latency",
			Buckets:   prometheus.DefBuckets,
		}),
		NodesVisited: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "metrorouting",
			Subsystem: "search",
			Name:      "nodes_visited",
			Buckets:   []float64{10, 25, 50, 100, 200, 400, 800},
		}, []string{"algorithm"}),
	}

	prometheus.MustRegister(
		m.Requests, m.Errors,
		m.DijkstraLatency, m.AStarLatency, m.NodesVisited)

	return m
}
