// Package web serves the dashboard and the JSON API. The server owns the
// mutable parameter set; every read rebuilds its analysis from the current
// parameters, so the engine stays pure.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hamzaelsherif03/Calculator/alert"
	"github.com/hamzaelsherif03/Calculator/grid"
	"github.com/hamzaelsherif03/Calculator/preset"
	"github.com/hamzaelsherif03/Calculator/report"
)

// ServerConfig describes server dependencies. Store and Watcher may be nil;
// the preset and session routes only register when a store is present.
type ServerConfig struct {
	Addr    string
	Params  grid.Parameters
	Options report.Options
	Store   preset.Store
	Watcher *alert.Watcher
	Log     *zap.Logger
}

// Server hosts the calculator over HTTP.
type Server struct {
	log     *zap.Logger
	opts    report.Options
	store   preset.Store
	watcher *alert.Watcher
	router  *gin.Engine
	srv     *http.Server

	mu     sync.RWMutex
	params grid.Parameters
}

// NewServer builds the router and validates the starting parameters.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = ":8087"
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	s := &Server{
		log:     cfg.Log,
		opts:    cfg.Options,
		store:   cfg.Store,
		watcher: cfg.Watcher,
		params:  cfg.Params,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/", s.handleDashboard)

	api := router.Group("/api")
	api.GET("/analysis", s.handleAnalysis)
	api.GET("/ladder", s.handleLadder)
	api.GET("/ladder.csv", s.handleLadderCSV)
	api.GET("/curve.csv", s.handleCurveCSV)
	api.GET("/chart", s.handleChart)
	api.GET("/params", s.handleGetParams)
	api.POST("/params", s.handleUpdateParams)
	api.POST("/price", s.handleUpdatePrice)
	if s.store != nil {
		api.GET("/presets", s.handleListPresets)
		api.POST("/presets", s.handleSavePreset)
		api.POST("/presets/:name/load", s.handleLoadPreset)
		api.DELETE("/presets/:name", s.handleDeletePreset)
		api.GET("/sessions", s.handleListSessions)
		api.POST("/sessions", s.handleRecordSession)
	}

	s.router = router
	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.log.Info("dashboard listening", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("client", c.ClientIP()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func (s *Server) currentParams() grid.Parameters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

func (s *Server) buildAnalysis() (*report.Analysis, error) {
	return report.Build(s.currentParams(), s.opts)
}
