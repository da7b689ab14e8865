package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gemini-playground/config"
	_ "gemini-playground/docs" // Swagger docs
	"gemini-playground/internal/httpserver"
	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/log"
	"gemini-playground/pkg/metrics"
)

// @title       Gemini Playground API
// @description Browser playground and JSON API for the Gemini generative models.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		config.ReportStartupError(os.Stderr, fmt.Errorf("failed to load config: %w", err))
		os.Exit(1)
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

	logger.Info(ctx, "Starting Gemini Playground...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini client, built once and shared by every domain
	geminiClient, err := gemini.New(ctx, gemini.Config{
		APIKey:       cfg.Gemini.APIKey,
		DefaultModel: cfg.Gemini.DefaultModel,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Gemini client: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Gemini client ready, default model %s", geminiClient.DefaultModel())

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Gemini:      geminiClient,
		Metrics:     metrics.New(),
		Playground: httpserver.PlaygroundConfig{
			MaxStored:    cfg.Playground.History.MaxStored,
			DisplayLimit: cfg.Playground.History.DisplayLimit,
			SessionTTL:   cfg.Playground.History.SessionTTL,
			MaxSessions:  cfg.Playground.History.MaxSessions,
		},
		Chat: httpserver.ChatConfig{
			SessionTTL:  cfg.Chat.SessionTTL,
			MaxSessions: cfg.Chat.MaxSessions,
		},
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
