package api

import (
	"net/http"

	"github.com/hifzapp/hifz-api/internal/api/shared"
	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/service"
)

// QuizHandler handles quiz API requests.
type QuizHandler struct {
	engine *service.QuizEngine
}

// NewQuizHandler creates a new QuizHandler with the given dependencies.
func NewQuizHandler(engine *service.QuizEngine) *QuizHandler {
	return &QuizHandler{engine: engine}
}

// ListQuizzes handles GET /quizzes, with optional ?category= and ?difficulty=
// filters.
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		shared.RespondWithJSON(w, r, http.StatusOK, h.engine.QuizzesByCategory(category))
		return
	}
	if difficulty := r.URL.Query().Get("difficulty"); difficulty != "" {
		d := domain.Difficulty(difficulty)
		if !d.Valid() {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid difficulty")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, h.engine.QuizzesByDifficulty(d))
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.engine.ListQuizzes())
}

// GetQuiz handles GET /quizzes/{id}.
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	quiz, err := h.engine.GetQuiz(quizID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, quiz)
}

// SubmitAttempt handles POST /quizzes/{id}/submit.
func (h *QuizHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req SubmitQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	attempt, err := h.engine.SubmitAttempt(r.Context(), quizID, req.Answers, req.TimeSpentSeconds)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, attempt)
}

// RecommendedQuizzes handles GET /quizzes/recommended.
func (h *QuizHandler) RecommendedQuizzes(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.engine.RecommendedQuizzes())
}

// ListAttempts handles GET /quizzes/attempts.
func (h *QuizHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.engine.Attempts())
}
