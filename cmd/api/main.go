package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-sync/config"
	_ "todo-sync/docs" // Swagger docs
	collectionHTTP "todo-sync/internal/collection/delivery/http"
	collectionRepo "todo-sync/internal/collection/repository/memory"
	collectionUC "todo-sync/internal/collection/usecase"
	"todo-sync/internal/httpserver"
	"todo-sync/internal/middleware"
	"todo-sync/pkg/log"
)

// @title       Todo Collection API
// @description Development server for the /todo collection used by the terminal client.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting todo collection API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.RateLimit.Enabled {
		logger.Infof(ctx, "Rate limit: %d req/min per client", cfg.RateLimit.PerMin)
	}

	// 3. Collection domain
	repo := collectionRepo.New()
	uc := collectionUC.New(repo, logger)
	collectionHandler := collectionHTTP.New(logger, uc)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        middleware.New(logger, cfg.RateLimit),
		CollectionHandler: collectionHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
