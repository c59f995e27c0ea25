package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"github.com/hifzapp/hifz-api/internal/config"
	"github.com/hifzapp/hifz-api/internal/platform/postgres"
	"github.com/hifzapp/hifz-api/internal/store"
)

// setupStore builds the durable key-value store. With a database URL
// configured it connects to PostgreSQL, applies migrations, and returns the
// SQL-backed store plus the connection for lifecycle management. Without one
// it falls back to the in-memory store, losing state on restart.
func setupStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.KeyValue, *sql.DB, error) {
	if cfg.Database.URL == "" {
		logger.Warn("no database URL configured, using in-memory store; state will not survive restarts")
		return store.NewMemoryStore(), nil, nil
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := postgres.MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	logger.Info("Database migrations applied")

	return postgres.NewKVStore(db), db, nil
}

// setupAppDatabase establishes a connection to the database and configures
// connection pools. Returns the database connection if successful, or an
// error if the connection fails.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool with reasonable defaults
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established")
	return db, nil
}
