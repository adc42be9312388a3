package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/api/types"
	"github.com/killallgit/recipe-search/api/version"
	"github.com/killallgit/recipe-search/internal/web"
	"github.com/killallgit/recipe-search/pkg/config"
	"github.com/killallgit/recipe-search/pkg/logger"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	log                *zap.Logger
	version            version.Info
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string, log *zap.Logger) *Server {
	log = logger.OrNop(log)

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		engine:       engine,
		log:          log,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
	}
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// SetVersion sets the build information reported by /version and /health
func (s *Server) SetVersion(info version.Info) {
	s.version = info
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up templates, middleware and routes
func (s *Server) Initialize(cfg *config.Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if s.dependencies == nil {
		return errors.New("dependencies are not set")
	}

	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	s.engine.SetHTMLTemplate(tmpl)

	if err := types.RegisterValidators(s.dependencies.FilterOptions); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if cfg.Server.ReadTimeout > 0 {
		s.httpServer.ReadTimeout = cfg.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout > 0 {
		s.httpServer.WriteTimeout = cfg.Server.WriteTimeout
	}
	if cfg.Server.MaxHeaderBytes > 0 {
		s.httpServer.MaxHeaderBytes = cfg.Server.MaxHeaderBytes
	}

	s.setupMiddleware(cfg)
	RegisterRoutes(s.engine, s.dependencies, cfg, s.version, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
	return nil
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware(cfg *config.Config) {
	s.engine.Use(RequestID())
	s.engine.Use(RequestLogger(s.log.Named("http"), "/health", cfg.Monitoring.MetricsPath))
	if cfg.Monitoring.Enabled {
		s.engine.Use(Metrics())
	}
	s.engine.Use(CORS())
	s.engine.Use(RequestSizeLimit())
}

// Start starts the HTTP server. It returns nil once Shutdown has been called.
func (s *Server) Start() error {
	s.log.Info("http server listening", zap.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.cleanupStop) })
	return s.httpServer.Shutdown(ctx)
}
