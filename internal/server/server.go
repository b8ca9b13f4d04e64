// Package server exposes the quoting engine over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"honnef.co/go/cutquote"
)

// ParamsRequest overrides individual cost parameters. Missing fields keep
// the server's configured values.
type ParamsRequest struct {
	Margin      *float64 `json:"margin"`
	CostPerArea *float64 `json:"cost_per_area"`
	BaseSpeed   *float64 `json:"base_speed"`
	CostPerTime *float64 `json:"cost_per_time"`
}

type QuoteRequest struct {
	Profile json.RawMessage `json:"profile" binding:"required"`
	Params  *ParamsRequest  `json:"params"`
}

type Bounds struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

type QuoteResponse struct {
	Cost         string  `json:"cost"`
	MaterialCost float64 `json:"material_cost"`
	TimeCost     float64 `json:"time_cost"`
	Rotation     float64 `json:"rotation"`
	CutLength    float64 `json:"cut_length"`
	Edges        int     `json:"edges"`
	Bounds       Bounds  `json:"bounds"`
}

// Server prices profiles posted to it. Every request is priced
// independently; a Server holds no mutable state.
type Server struct {
	params  cutquote.CostParams
	maxBody int64
	log     *slog.Logger
}

// New returns a server that prices with params unless a request overrides
// them, and rejects bodies larger than maxBody bytes.
func New(params cutquote.CostParams, maxBody int64, log *slog.Logger) *Server {
	return &Server{params: params, maxBody: maxBody, log: log}
}

// Handler returns the HTTP handler serving POST /quote and GET /healthz.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/quote", s.handleQuote)
	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}

func (s *Server) handleQuote(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody)

	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status := http.StatusBadRequest
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	params := s.params
	if req.Params != nil {
		params = req.Params.apply(params)
	}
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := cutquote.Parse(req.Profile)
	if err != nil {
		s.log.Debug("rejected profile", slog.Any("err", err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	est := q.Estimate(params)
	c.JSON(http.StatusOK, QuoteResponse{
		Cost:         est.String(),
		MaterialCost: est.MaterialCost,
		TimeCost:     est.TimeCost,
		Rotation:     est.Rotation,
		CutLength:    est.CutLength,
		Edges:        len(q.Edges()),
		Bounds:       Bounds{X0: est.Rect.X0, Y0: est.Rect.Y0, X1: est.Rect.X1, Y1: est.Rect.Y1},
	})
}

func (p ParamsRequest) apply(base cutquote.CostParams) cutquote.CostParams {
	if p.Margin != nil {
		base.Margin = *p.Margin
	}
	if p.CostPerArea != nil {
		base.CostPerArea = *p.CostPerArea
	}
	if p.BaseSpeed != nil {
		base.BaseSpeed = *p.BaseSpeed
	}
	if p.CostPerTime != nil {
		base.CostPerTime = *p.CostPerTime
	}
	return base
}
