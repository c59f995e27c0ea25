// Package main implements the entry point for the Hifz API server, which
// tracks Quran memorization progress, practice sessions, quizzes and daily
// verses for its users.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hifzapp/hifz-api/internal/config"
	"github.com/hifzapp/hifz-api/internal/platform/logger"
)

// main loads configuration, wires the application and runs the HTTP server
// until it receives a shutdown signal.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging and builds the
// application with all its services wired.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_configured", cfg.Database.URL != "")

	return newApplication(context.Background(), cfg, appLogger)
}
