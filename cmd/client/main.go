package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-sync/config"
	"todo-sync/internal/todo/delivery/tui"
	"todo-sync/internal/todo/repository/rest"
	"todo-sync/internal/todo/usecase"
	"todo-sync/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger. The terminal belongs to the UI, so logs go to a file.
	logger, err := log.New(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: false,
		OutputPaths:  []string{cfg.Client.LogFile},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to open client log file: ", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting todo client against %s", cfg.API.BaseURL)

	// 3. Remote collection
	opts := []rest.ClientOption{rest.WithTimeout(cfg.API.Timeout)}
	if cfg.API.ValidateResponses {
		validator, err := rest.NewValidator()
		if err != nil {
			logger.Errorf(ctx, "Failed to compile response schemas: %v", err)
			fmt.Fprintln(os.Stderr, "Failed to compile response schemas: ", err)
			os.Exit(1)
		}
		opts = append(opts, rest.WithValidator(validator))
	}
	client := rest.NewClient(cfg.API.BaseURL, opts...)
	repo := rest.New(client, logger)

	// 4. Synchronizer
	uc := usecase.New(logger, repo)

	// 5. UI
	if err := tui.Run(ctx, logger, uc); err != nil {
		logger.Errorf(ctx, "Client exited with error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Info(ctx, "Client stopped")
}
