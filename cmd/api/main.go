package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	"library-api/pkg/logger"
	"library-api/pkg/tracing"
)

func main() {
	// ========================================
	// LOAD CONFIGURATION
	// ========================================
	// .env, optional YAML file (LIBRARY_CONFIG) và LIBRARY_* env vars
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.App.Environment, cfg.Log.Level)

	// ========================================
	// SET GIN MODE
	// ========================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting service", map[string]interface{}{
		"name":    cfg.App.Name,
		"env":     cfg.App.Environment,
		"version": cfg.App.Version,
		"driver":  cfg.Database.Driver,
	})

	// ========================================
	// TRACING (optional)
	// ========================================
	shutdownTracing := tracing.Shutdown(func(context.Context) error { return nil })
	if cfg.Tracing.Enabled {
		shutdownTracing, err = tracing.Init(context.Background(), tracing.Config{
			ServiceName: cfg.App.Name,
			Environment: cfg.App.Environment,
			Version:     cfg.App.Version,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			logger.Error("Failed to initialize tracing", err)
			os.Exit(1)
		}
	}

	// ========================================
	// START SERVER
	// ========================================
	if err := Serve(cfg, shutdownTracing); err != nil {
		logger.Error("Server stopped with error", err)
		os.Exit(1)
	}
}
