package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/weather-overview/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReportGenerator renders the current report on demand.
type ReportGenerator interface {
	Generate(ctx context.Context) (domain.Report, error)
}

// Server exposes health, readiness, metrics, and summary HTTP endpoints.
type Server struct {
	httpServer *http.Server
	reports    ReportGenerator
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics,
// /summary, /summary/daily, and /report routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, reports ReportGenerator, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		reports: reports,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /summary", s.handleSummary)
	mux.HandleFunc("GET /summary/daily", s.handleDailySummary)
	mux.HandleFunc("GET /report", s.handleReport)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	report, ok := s.generate(w, r)
	if !ok {
		return
	}
	writeText(w, report.Overview)
}

func (s *Server) handleDailySummary(w http.ResponseWriter, r *http.Request) {
	report, ok := s.generate(w, r)
	if !ok {
		return
	}
	writeText(w, report.Daily)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, ok := s.generate(w, r)
	if !ok {
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, report)
}

// generate renders the report, writing an error response on failure.
func (s *Server) generate(w http.ResponseWriter, r *http.Request) (domain.Report, bool) {
	report, err := s.reports.Generate(r.Context())
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("generate report failed", "error", err, "path", r.URL.Path)
		} else {
			s.logger.Warn("generate report failed", "error", err, "path", r.URL.Path, "status", status)
		}
		sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
		return domain.Report{}, false
	}
	return report, true
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFormat):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
