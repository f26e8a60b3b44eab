// Package api exposes the navigator over HTTP with gin.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/campusnav/navigator"
)

// Server wires HTTP handlers to a Navigator.
type Server struct {
	nav      *navigator.Navigator
	logger   *zap.Logger
	defaults defaults
	origins  []string
	sessions *sessionStore
	engine   *gin.Engine
}

type defaults struct {
	algorithm      navigator.Algorithm
	accessibleOnly bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaults sets the algorithm and accessibility used when a request
// leaves them out.
func WithDefaults(algo navigator.Algorithm, accessibleOnly bool) Option {
	return func(s *Server) {
		if algo.Valid() {
			s.defaults.algorithm = algo
		}
		s.defaults.accessibleOnly = accessibleOnly
	}
}

// WithAllowOrigins sets the CORS allow list. "*" allows every origin; an
// empty list disables CORS handling.
func WithAllowOrigins(origins []string) Option {
	return func(s *Server) { s.origins = origins }
}

// NewServer builds the gin engine and registers all routes.
func NewServer(nav *navigator.Navigator, opts ...Option) *Server {
	s := &Server{
		nav:      nav,
		logger:   zap.NewNop(),
		defaults: defaults{algorithm: navigator.Dijkstra},
		origins:  []string{"*"},
		sessions: newSessionStore(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(requestID(), accessLog(s.logger), gin.Recovery())
	if len(s.origins) > 0 {
		r.Use(cors.New(corsConfig(s.origins)))
	}

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.GET("/locations", s.handleLocations)
	v1.GET("/algorithms", s.handleAlgorithms)
	v1.POST("/routes", s.handleRoute)

	v1.POST("/sessions", s.handleCreateSession)
	v1.POST("/sessions/:id/select", s.handleSelect)
	v1.POST("/sessions/:id/route", s.handleSessionRoute)
	v1.DELETE("/sessions/:id/selection", s.handleResetSelection)
	v1.DELETE("/sessions/:id", s.handleDeleteSession)

	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, headerRequestID)
	cfg.ExposeHeaders = []string{headerRequestID}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}

// Run serves on addr until ctx is canceled, then shuts down within
// shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
