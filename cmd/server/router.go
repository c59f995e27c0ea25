package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hifzapp/hifz-api/internal/api"
	apiMiddleware "github.com/hifzapp/hifz-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.users)
	catalogHandler := api.NewCatalogHandler(app.catalog, app.dailyVerse)
	progressHandler := api.NewProgressHandler(app.tracker, app.catalog)
	sessionHandler := api.NewSessionHandler(app.recorder)
	quizHandler := api.NewQuizHandler(app.quizzes)
	statsHandler := api.NewStatsHandler(app.recorder, app.quizzes, app.tracker)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Content endpoints (public)
		r.Get("/chapters", catalogHandler.ListChapters)
		r.Get("/chapters/{id}", catalogHandler.GetChapter)
		r.Get("/chapters/{id}/verses", catalogHandler.GetVerses)
		r.Get("/verses/search", catalogHandler.SearchVerses)
		r.Get("/verses/{id}/tafsir", catalogHandler.GetTafsir)
		r.Get("/translations", catalogHandler.ListTranslations)
		r.Get("/daily-verse", catalogHandler.GetDailyVerse)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Profile endpoints
			r.Get("/profile", authHandler.GetProfile)
			r.Put("/profile/settings", authHandler.UpdateSettings)

			// Bookmark and highlight endpoints
			r.Get("/bookmarks", catalogHandler.ListBookmarks)
			r.Post("/verses/{id}/bookmark", catalogHandler.ToggleBookmark)
			r.Post("/verses/{id}/highlight", catalogHandler.ToggleHighlight)

			// Memorization progress endpoints
			r.Get("/progress", progressHandler.ListProgress)
			r.Get("/progress/chapters/{id}", progressHandler.GetChapterProgress)
			r.Post("/progress/mark", progressHandler.MarkVerse)
			r.Post("/progress/unmark", progressHandler.UnmarkVerse)

			// Practice session endpoints
			r.Get("/sessions", sessionHandler.ListSessions)
			r.Post("/sessions", sessionHandler.StartSession)
			r.Post("/sessions/{id}/complete", sessionHandler.CompleteSession)

			// Quiz endpoints
			r.Get("/quizzes", quizHandler.ListQuizzes)
			r.Get("/quizzes/recommended", quizHandler.RecommendedQuizzes)
			r.Get("/quizzes/attempts", quizHandler.ListAttempts)
			r.Get("/quizzes/{id}", quizHandler.GetQuiz)
			r.Post("/quizzes/{id}/submit", quizHandler.SubmitAttempt)

			// Statistics endpoints
			r.Get("/stats", statsHandler.GetStats)
			r.Post("/stats/reset", statsHandler.ResetAll)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
