package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taruntarz/Kubernetes-resources/internal/application/predictor"
	"github.com/taruntarz/Kubernetes-resources/pkg/adapters/metrics/prometheus"
)

// Server represents the HTTP API server
type Server struct {
	router    *gin.Engine
	server    *http.Server
	predictor *predictor.Predictor
	metrics   *prometheus.Collector
	version   string
	logger    *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Port      int
	Version   string
	Predictor *predictor.Predictor
	Metrics   *prometheus.Collector
	Logger    *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(recoveryMiddleware(cfg.Logger))
	router.Use(requestIDMiddleware())
	router.Use(requestLogger(cfg.Logger))
	router.Use(metricsMiddleware(cfg.Metrics))

	s := &Server{
		router:    router,
		predictor: cfg.Predictor,
		metrics:   cfg.Metrics,
		version:   cfg.Version,
		logger:    cfg.Logger,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/version", s.handleVersion)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/predict", s.handlePredict)

	// Metrics
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	s.router.NoRoute(s.handleNotFound)
	s.router.NoMethod(s.handleMethodNotAllowed)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
