// Package server exposes batch generation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/olympiad/internal/problemgen"
	"github.com/abhisek/olympiad/internal/store"
)

// Generator is the batch generation backend.
type Generator interface {
	GenerateBatch(ctx context.Context, req problemgen.GenerationRequest) (*problemgen.Batch, error)
	ModelID() string
}

// Server serves the HTTP API.
type Server struct {
	cfg     Config
	gen     Generator
	batches store.BatchRepo
	limiter *limiter
	logger  zerolog.Logger
	engine  *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithBatchRepo persists every generated batch.
func WithBatchRepo(repo store.BatchRepo) Option {
	return func(s *Server) { s.batches = repo }
}

// WithLogger sets the request logger. Default: the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// withClock replaces the limiter clock.
func withClock(now func() time.Time) Option {
	return func(s *Server) { s.limiter.now = now }
}

// New builds a Server and its routes.
func New(cfg Config, gen Generator, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg,
		gen:     gen,
		limiter: newLimiter(cfg.PerMinute, cfg.PerDay, nil),
		logger:  log.Logger,
	}
	for _, o := range opts {
		o(s)
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), cors.New(corsConfig(s.cfg.CORSOrigins)))

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/meta") })
	r.GET("/health", s.health)
	r.GET("/meta", s.meta)

	limited := r.Group("/", s.rateLimit())
	limited.GET("/generate", s.generateGet)
	limited.POST("/generate", s.generatePost)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders: []string{"Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("client", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Str("model", s.gen.ModelID()).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
