package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/taruntarz/Kubernetes-resources/internal/application/predictor"
	"github.com/taruntarz/Kubernetes-resources/internal/config"
	"github.com/taruntarz/Kubernetes-resources/pkg/adapters/metrics/prometheus"
	"github.com/taruntarz/Kubernetes-resources/pkg/api/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting ML GitOps service",
		zap.String("app_version", cfg.AppVersion),
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Initialize adapters
	metricsCollector := prometheus.NewCollector()

	// Initialize application components
	predictorSvc := predictor.New(&predictor.Config{
		Metrics: metricsCollector,
		Logger:  logger,
	})

	// Initialize API server
	httpServer := http.NewServer(&http.Config{
		Port:      cfg.HTTPPort,
		Version:   cfg.AppVersion,
		Predictor: predictorSvc,
		Metrics:   metricsCollector,
		Logger:    logger,
	})

	// Start server
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("ML GitOps service started",
		zap.Int("http_port", cfg.HTTPPort),
		zap.String("app_version", cfg.AppVersion))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("ML GitOps service shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
