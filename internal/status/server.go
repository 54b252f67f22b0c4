// Package status serves the client's liveness, readiness, slice state and
// Prometheus metrics over HTTP.
package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/SoloLeveler_Go/internal/logger"
	"github.com/osse101/SoloLeveler_Go/internal/metrics"
	"github.com/osse101/SoloLeveler_Go/internal/mirror"
)

// Source reports the mirror's load state
type Source interface {
	Ready() bool
	Slices() []mirror.SliceInfo
}

// HealthChecker is a front-end component that can report degraded health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// Server is the status HTTP server
type Server struct {
	httpServer *http.Server
	source     Source
	checks     map[string]HealthChecker
	started    time.Time
}

// NewServer creates a status server on port. checks are consulted by /healthz.
func NewServer(port int, source Source, checks map[string]HealthChecker) *Server {
	s := &Server{
		source:  source,
		checks:  checks,
		started: time.Now(),
	}

	r := chi.NewRouter()
	r.Use(securityHeaders)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(RouteHealthz, s.handleHealthz)
	r.Get(RouteReadyz, s.handleReadyz)
	r.Get(RouteSlices, s.handleSlices)
	r.Handle(RouteMetrics, promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves in the background
func (s *Server) Start() {
	go func() {
		logger.Info(LogMsgServerStart, "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(LogMsgServerFailed, "error", err)
		}
	}()
}

// Stop shuts the server down, waiting up to shutdownTimeout
func (s *Server) Stop(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logger.Error(LogMsgShutdownFail, "error", err)
	}
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentTypeOptions, HeaderValueNoSniff)
		w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
		w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerNoReferrer)
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs everything except probes and scrapes at debug level
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, RouteHealthz) ||
			strings.HasPrefix(r.URL.Path, RouteReadyz) ||
			strings.HasPrefix(r.URL.Path, RouteMetrics) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithNewRequestID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
		logger.FromContext(ctx).Debug(LogMsgRequest,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}
