package server

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/transitnav/metro-routing/pkg/graph"
)

// Server exposes the routing engine over HTTP.
type Server struct {
	network *graph.Network
	metrics *metrics
	router  *mux.Router
}

func New(network *graph.Network) *Server {
	s := &Server{
		network: network,
		metrics: newMetrics(),
	}

	s.router = mux.NewRouter()
	s.router.Use(s.requestLogger)
	s.router.HandleFunc("/routes", s.handleRoute).Methods(http.MethodGet)
	s.router.HandleFunc("/stations", s.handleStations).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogger tags every request with an id and logs method, path and
// duration once the handler returns.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		startTime := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s (%s)", requestID, r.Method, r.URL.RequestURI(), time.Since(startTime))
	})
}

// Start serves the API on addr and prometheus metrics on promAddr. It blocks
// until the context is cancelled, then shuts both servers down. Only the
// first addr should be exposed through the reverse proxy.
func (s *Server) Start(ctx context.Context, addr, promAddr string) {
	wg := &sync.WaitGroup{}

	promMux := http.NewServeMux()
	promMux.Handle("/metrics", promhttp.Handler())
	promSrv := &http.Server{
		Addr:    promAddr,
		Handler: promMux,
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := promSrv.ListenAndServe()
		if err != http.ErrServerClosed {
			log.Fatalf("prom handler: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := srv.ListenAndServe()
		if err != http.ErrServerClosed {
			log.Fatalf("api handler: %v", err)
		}
	}()

	log.Printf("serving api on %s, metrics on %s", addr, promAddr)
	<-ctx.Done()

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("error shutting down api server: %v", err)
	}
	if err := promSrv.Shutdown(context.Background()); err != nil {
		log.Printf("error shutting down prom server: %v", err)
	}

	wg.Wait()
}
