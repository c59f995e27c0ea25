package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hifzapp/hifz-api/internal/catalog"
	"github.com/hifzapp/hifz-api/internal/config"
	"github.com/hifzapp/hifz-api/internal/domain/srs"
	"github.com/hifzapp/hifz-api/internal/events"
	"github.com/hifzapp/hifz-api/internal/service"
	"github.com/hifzapp/hifz-api/internal/service/auth"
	"github.com/hifzapp/hifz-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB // nil when running on the in-memory store

	kv         store.KeyValue
	emitter    *events.Emitter
	catalog    *catalog.Catalog
	tracker    *service.ProgressTracker
	recorder   *service.SessionRecorder
	quizzes    *service.QuizEngine
	dailyVerse *service.DailyVerseSelector
	jwtService auth.JWTService
	users      *auth.UserService
}

// newApplication wires the full dependency graph: durable store, content
// catalog, progress/session/quiz services, daily verse selector and the
// authentication stack.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: log,
	}

	kv, db, err := setupStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	app.kv = kv
	app.db = db

	app.emitter = events.NewEmitter(log)
	app.emitter.RegisterHandler(events.HandlerFunc(func(ctx context.Context, event *events.Event) error {
		log.Debug("event emitted",
			"event_id", event.ID.String(),
			"event_type", event.Type)
		return nil
	}))

	app.catalog = catalog.New(ctx, kv, log)

	schedule := srs.NewServiceWithParams(&srs.Params{
		LongThresholdDays:   cfg.Review.LongThresholdDays,
		MediumThresholdDays: cfg.Review.MediumThresholdDays,
		LongIntervalDays:    cfg.Review.LongIntervalDays,
		MediumIntervalDays:  cfg.Review.MediumIntervalDays,
		ShortIntervalDays:   cfg.Review.ShortIntervalDays,
	})

	app.tracker = service.NewProgressTracker(ctx, kv, app.catalog, schedule, app.emitter, log)
	app.recorder = service.NewSessionRecorder(ctx, kv, app.tracker, app.emitter, log)
	app.quizzes = service.NewQuizEngine(ctx, kv, app.emitter, log)
	app.dailyVerse = service.NewDailyVerseSelector(kv, app.catalog, nil, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService
	app.users = auth.NewUserService(
		ctx,
		kv,
		jwtService,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		auth.NewBcryptVerifier(),
		log,
	)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
