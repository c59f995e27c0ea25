package api

import (
	"github.com/google/uuid"

	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/service/auth"
)

// RegisterRequest is the payload for /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the payload for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the payload for /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse is returned on successful registration, login and refresh.
type AuthResponse struct {
	UserID       uuid.UUID    `json:"user_id"`
	User         *domain.User `json:"user,omitempty"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// newAuthResponse strips credentials before the user object leaves the API.
func newAuthResponse(user *domain.User, tokens *auth.TokenPair) AuthResponse {
	sanitized := *user
	sanitized.Password = ""
	sanitized.HashedPassword = ""
	return AuthResponse{
		UserID:       user.ID,
		User:         &sanitized,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
}

// MarkVerseRequest is the payload for marking or unmarking a memorized verse.
type MarkVerseRequest struct {
	ChapterID   int `json:"chapter_id"   validate:"required,gt=0"`
	VerseNumber int `json:"verse_number" validate:"required,gt=0"`
}

// StartSessionRequest is the payload for /sessions.
type StartSessionRequest struct {
	ChapterID    int   `json:"chapter_id"    validate:"required,gt=0"`
	TargetVerses []int `json:"target_verses" validate:"required,min=1,dive,gt=0"`
}

// StartSessionResponse returns the identifier of the newly opened session.
type StartSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

// CompleteSessionRequest is the payload for /sessions/{id}/complete.
type CompleteSessionRequest struct {
	Accuracy     float64 `json:"accuracy"      validate:"gte=0,lte=100"`
	AttemptCount int     `json:"attempt_count" validate:"gte=0"`
}

// SubmitQuizRequest is the payload for /quizzes/{id}/submit. Answers are
// option indexes aligned with the quiz's questions; use -1 for a skipped
// question.
type SubmitQuizRequest struct {
	Answers          []int `json:"answers" validate:"required,min=1"`
	TimeSpentSeconds int   `json:"time_spent_seconds" validate:"gte=0"`
}

// ChapterProgressResponse combines a chapter's record with its derived values.
type ChapterProgressResponse struct {
	ChapterID            int                    `json:"chapter_id"`
	Progress             *domain.ProgressRecord `json:"progress,omitempty"`
	CompletionPercentage int                    `json:"completion_percentage"`
	NextReviewDate       *string                `json:"next_review_date,omitempty"`
}

// UpdateSettingsRequest is the payload for /profile/settings.
type UpdateSettingsRequest struct {
	Settings domain.UserSettings `json:"settings" validate:"required"`
}
