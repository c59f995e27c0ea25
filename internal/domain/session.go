package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session-specific validation errors.
var (
	ErrSessionIDEmpty        = errors.New("session ID cannot be empty")
	ErrSessionChapterInvalid = errors.New("session chapter ID must be positive")
	ErrSessionNoTargets      = errors.New("session must target at least one verse")
	ErrSessionCompleted      = errors.New("session is already completed")
)

// Session represents one bounded practice run over a set of target verses.
// A session moves through exactly two states: created, then completed.
// Once EndTime is set the session is terminal; an abandoned session simply
// never transitions.
type Session struct {
	ID           uuid.UUID  `json:"id"`
	ChapterID    int        `json:"chapter_id"`
	TargetVerses []int      `json:"target_verses"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Accuracy     float64    `json:"accuracy"`
	AttemptCount int        `json:"attempt_count"`
}

// NewSession creates a new in-progress session for the given chapter and
// target verse numbers. Returns an error if the target list is empty.
func NewSession(chapterID int, targetVerses []int, startTime time.Time) (*Session, error) {
	session := &Session{
		ID:           uuid.New(),
		ChapterID:    chapterID,
		TargetVerses: targetVerses,
		StartTime:    startTime,
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}
	return session, nil
}

// Validate checks if the Session has valid data.
func (s *Session) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSessionIDEmpty
	}
	if s.ChapterID <= 0 {
		return ErrSessionChapterInvalid
	}
	if len(s.TargetVerses) == 0 {
		return ErrSessionNoTargets
	}
	return nil
}

// Completed reports whether the session has been finalized.
func (s *Session) Completed() bool {
	return s.EndTime != nil
}

// Complete finalizes the session with the given accuracy and attempt count.
// Returns ErrSessionCompleted if the session was already finalized and
// ErrInvalidAccuracy if accuracy is outside [0,100]. A session is finalized
// exactly once; EndTime is never reset.
func (s *Session) Complete(endTime time.Time, accuracy float64, attemptCount int) error {
	if s.Completed() {
		return ErrSessionCompleted
	}
	if accuracy < 0 || accuracy > 100 {
		return ErrInvalidAccuracy
	}
	s.EndTime = &endTime
	s.Accuracy = accuracy
	s.AttemptCount = attemptCount
	return nil
}

// DurationMinutes returns the session length in minutes, or 0 for a session
// that has not completed yet.
func (s *Session) DurationMinutes() float64 {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime).Minutes()
}
