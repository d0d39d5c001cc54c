// internal/monitoring/server.go
package monitoring

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/soundscrape/soundscrape/internal/utils"
)

// Server exposes /healthz and /metrics over HTTP.
type Server struct {
	metrics *Metrics
	logger  utils.Logger
	started time.Time
}

// NewServer creates a monitoring server for the given metric set.
func NewServer(metrics *Metrics, logger utils.Logger) *Server {
	if logger == nil {
		logger = utils.NewLogger()
	}
	return &Server{
		metrics: metrics,
		logger:  logger,
		started: time.Now(),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(
		s.metrics.Registry(),
		promhttp.HandlerOpts{},
	)).Methods(http.MethodGet)
	return router
}

// ListenAndServe blocks serving the monitoring endpoint on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("monitoring endpoint listening on %s", addr)
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(s.started).Seconds()),
	})
}
