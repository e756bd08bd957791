package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/metrics"
)

// mazeQuery holds the optional query parameters of GET /v1/mazes.
type mazeQuery struct {
	Width      *int     `form:"width"`
	Height     *int     `form:"height"`
	Algorithm  *string  `form:"algorithm"`
	Seed       *int64   `form:"seed"`
	Bias       *float64 `form:"bias"`
	MaxSteps   *int     `form:"max_steps"`
	Braid      *int     `form:"braid"`
	Carving    *bool    `form:"carving"`
	Trim       *int     `form:"trim"`
	BranchRoot *string  `form:"root"`
	Format     string   `form:"format"`
}

// apply overlays the parameters present in q onto req.
func (q mazeQuery) apply(req *generator.Request) {
	if q.Width != nil {
		req.Width = *q.Width
	}
	if q.Height != nil {
		req.Height = *q.Height
	}
	if q.Algorithm != nil {
		req.Algorithm = *q.Algorithm
	}
	if q.Seed != nil {
		req.Seed = *q.Seed
	}
	if q.Bias != nil {
		req.FavorHorizontal = *q.Bias
	}
	if q.MaxSteps != nil {
		req.MaxSteps = *q.MaxSteps
	}
	if q.Braid != nil {
		req.BraidCount = *q.Braid
	}
	if q.Carving != nil {
		req.BraidCarving = *q.Carving
	}
	if q.Trim != nil {
		req.TrimPasses = *q.Trim
	}
	if q.BranchRoot != nil {
		req.BranchRoot = *q.BranchRoot
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) algorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"algorithms": generator.Algorithms()})
}

func (s *Server) generateFromQuery(c *gin.Context) {
	var q mazeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	req := s.cfg.Generation
	q.apply(&req)
	s.generate(c, req, q.Format)
}

func (s *Server) generateFromBody(c *gin.Context) {
	req := s.cfg.Generation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.generate(c, req, c.Query("format"))
}

// generate validates req against the service limits, runs the pipeline and
// writes the report in the requested format.
func (s *Server) generate(c *gin.Context, req generator.Request, format string) {
	if err := s.cfg.CheckRequest(req); err != nil {
		s.generated.WithLabelValues(req.Algorithm, "rejected").Inc()
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	began := time.Now()
	rep, err := generator.Generate(c.Request.Context(), req, generator.WithLogger(s.log))
	if err != nil {
		s.generated.WithLabelValues(req.Algorithm, "failed").Inc()
		s.log.Warn("generation failed", "algorithm", req.Algorithm, "error", err)
		c.JSON(statusFor(err), errorResponse{Error: err.Error()})
		return
	}
	s.generated.WithLabelValues(req.Algorithm, "ok").Inc()
	s.duration.WithLabelValues(req.Algorithm).Observe(time.Since(began).Seconds())

	switch format {
	case "", "json":
		c.JSON(http.StatusOK, rep)
	case "yaml":
		c.YAML(http.StatusOK, rep)
	case "text":
		c.String(http.StatusOK, strings.Join(rep.Rows, "\n")+"\n")
	default:
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown format " + format})
	}
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, config.ErrInvalid),
		errors.Is(err, generator.ErrInvalidRequest),
		errors.Is(err, generator.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	case errors.Is(err, carve.ErrIncomplete), errors.Is(err, metrics.ErrNoSolution):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
