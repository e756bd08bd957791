// Package httpapi serves maze generation over HTTP with gin.
//
// Routes:
//
//	GET  /healthz          liveness probe
//	GET  /v1/algorithms    registered algorithm names
//	GET  /v1/mazes         generate from query parameters
//	POST /v1/mazes         generate from a JSON generator.Request
//	GET  /metrics          Prometheus metrics
//
// Reports are JSON by default; format=yaml or format=text (ASCII rows only)
// select the other encodings.
package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/labyrinth/config"
)

// shutdownTimeout bounds graceful shutdown in Run.
const shutdownTimeout = 10 * time.Second

// Server wires configuration, logging and metrics to a gin engine.
type Server struct {
	cfg      config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	engine   *gin.Engine

	generated *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewServer builds the router. Each Server owns its Prometheus registry.
func NewServer(cfg config.Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	s := &Server{
		cfg:      cfg,
		log:      log,
		registry: reg,
		generated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "labyrinth",
			Name:      "mazes_generated_total",
			Help:      "Generation requests by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "labyrinth",
			Name:      "generation_duration_seconds",
			Help:      "Wall time of successful generations.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"algorithm"}),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())
	engine.GET("/healthz", s.health)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	v1 := engine.Group("/v1")
	v1.GET("/algorithms", s.algorithms)
	v1.GET("/mazes", s.generateFromQuery)
	v1.POST("/mazes", s.generateFromBody)
	s.engine = engine

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(began))
	}
}
