package api

import (
	"net/http"
	"time"

	"github.com/hifzapp/hifz-api/internal/api/shared"
	"github.com/hifzapp/hifz-api/internal/catalog"
	"github.com/hifzapp/hifz-api/internal/service"
)

// ProgressHandler handles memorization progress API requests.
type ProgressHandler struct {
	tracker *service.ProgressTracker
	catalog *catalog.Catalog
}

// NewProgressHandler creates a new ProgressHandler with the given dependencies.
func NewProgressHandler(tracker *service.ProgressTracker, c *catalog.Catalog) *ProgressHandler {
	return &ProgressHandler{
		tracker: tracker,
		catalog: c,
	}
}

// MarkVerse handles POST /progress/mark.
func (h *ProgressHandler) MarkVerse(w http.ResponseWriter, r *http.Request) {
	var req MarkVerseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	added, err := h.tracker.MarkMemorized(r.Context(), req.ChapterID, req.VerseNumber)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]bool{"newly_memorized": added})
}

// UnmarkVerse handles POST /progress/unmark.
func (h *ProgressHandler) UnmarkVerse(w http.ResponseWriter, r *http.Request) {
	var req MarkVerseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	h.tracker.UnmarkMemorized(r.Context(), req.ChapterID, req.VerseNumber)
	w.WriteHeader(http.StatusNoContent)
}

// GetChapterProgress handles GET /progress/chapters/{id}.
func (h *ProgressHandler) GetChapterProgress(w http.ResponseWriter, r *http.Request) {
	chapterID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	chapter, err := h.catalog.GetChapter(chapterID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	next, err := h.tracker.NextReviewDate(chapterID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := ChapterProgressResponse{
		ChapterID:            chapterID,
		Progress:             h.tracker.ProgressForChapter(chapterID),
		CompletionPercentage: h.tracker.CompletionPercentage(chapterID, chapter.VerseCount),
	}
	if next != nil {
		formatted := next.Format(time.RFC3339)
		response.NextReviewDate = &formatted
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// ListProgress handles GET /progress.
func (h *ProgressHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.tracker.AllProgress())
}
