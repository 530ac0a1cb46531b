// Package server is the HTTP surface of gs1parse.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ericlevine/gs1parse"
	"github.com/ericlevine/gs1parse/ai"
	"github.com/ericlevine/gs1parse/internal/cache"
	"github.com/ericlevine/gs1parse/internal/config"
	"github.com/ericlevine/gs1parse/internal/logging"
	"github.com/ericlevine/gs1parse/internal/metrics"
)

// Server answers parse requests with the current AI table. The table can be
// swapped while requests are in flight.
type Server struct {
	cfg         config.ServerConfig
	metricsPath string

	parser  atomic.Pointer[gs1parse.Parser]
	log     logging.Logger
	metrics *metrics.Metrics
	cache   cache.Cache

	engine *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithMetrics records traffic in m and serves it on path.
func WithMetrics(m *metrics.Metrics, path string) Option {
	return func(s *Server) {
		s.metrics = m
		s.metricsPath = path
	}
}

// WithCache stores parse responses in c.
func WithCache(c cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// New builds a Server for reg. cfg is expected to have passed
// config.Validate.
func New(cfg config.ServerConfig, reg *ai.Registry, opts ...Option) *Server {
	s := &Server{
		cfg:   cfg,
		log:   logging.NewNop(),
		cache: cache.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.SetRegistry(reg)

	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestID(), s.accessLog())
	s.routes()
	return s
}

func (s *Server) routes() {
	v1 := s.engine.Group("/v1")
	v1.POST("/parse", s.handleParse)
	v1.GET("/ai/:code", s.handleLookup)
	v1.GET("/info", s.handleInfo)
	s.engine.GET("/health", s.handleHealth)
	if s.metrics != nil && s.metricsPath != "" {
		s.engine.GET(s.metricsPath, gin.WrapH(s.metrics.Handler()))
	}
}

// SetRegistry makes reg the table for subsequent requests.
func (s *Server) SetRegistry(reg *ai.Registry) {
	p := gs1parse.NewParser(reg)
	s.parser.Store(p)
	s.metrics.SetRegistrySize(p.Registry().Len())
}

// Parser returns the parser currently serving requests.
func (s *Server) Parser() *gs1parse.Parser {
	return s.parser.Load()
}

// Handler returns the HTTP handler with all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", logging.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
