package api

import (
	"net/http"

	"github.com/hifzapp/hifz-api/internal/api/shared"
	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/service"
)

// StatsHandler assembles the combined statistics view and serves the
// account-wipe endpoint.
type StatsHandler struct {
	recorder *service.SessionRecorder
	engine   *service.QuizEngine
	tracker  *service.ProgressTracker
}

// NewStatsHandler creates a new StatsHandler with the given dependencies.
func NewStatsHandler(
	recorder *service.SessionRecorder,
	engine *service.QuizEngine,
	tracker *service.ProgressTracker,
) *StatsHandler {
	return &StatsHandler{
		recorder: recorder,
		engine:   engine,
		tracker:  tracker,
	}
}

// GetStats handles GET /stats, combining memorization and quiz statistics.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := domain.AggregateStats{
		MemorizationStats: h.recorder.Stats(),
		QuizStats:         h.engine.Stats(),
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// ResetAll handles POST /stats/reset: the full account wipe of progress,
// sessions, stats and quiz results.
func (h *StatsHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.tracker.ResetAll(ctx)
	h.recorder.ResetAll(ctx)
	h.engine.ResetAll(ctx)
	w.WriteHeader(http.StatusNoContent)
}
