package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/events"
	"github.com/hifzapp/hifz-api/internal/platform/logger"
	"github.com/hifzapp/hifz-api/internal/store"
)

// localDayFormat renders a time as the user-local calendar day. Streaks and
// the daily verse both key off this format; keep them consistent.
const localDayFormat = "2006-01-02"

// VerseMarker is the slice of the progress tracker the session recorder
// needs: marking target verses memorized on completion.
type VerseMarker interface {
	MarkMemorized(ctx context.Context, chapterID, verseNumber int) (bool, error)
}

// SessionRecorder tracks practice sessions and folds completed sessions into
// the aggregate memorization statistics.
type SessionRecorder struct {
	kv      store.KeyValue
	marker  VerseMarker
	emitter *events.Emitter
	logger  *slog.Logger
	clock   func() time.Time

	mu       sync.Mutex
	sessions []*domain.Session
	stats    domain.MemorizationStats
}

// NewSessionRecorder creates a SessionRecorder and loads the persisted
// session log and stats. Load failures are logged and the recorder starts
// empty.
func NewSessionRecorder(
	ctx context.Context,
	kv store.KeyValue,
	marker VerseMarker,
	emitter *events.Emitter,
	log *slog.Logger,
) *SessionRecorder {
	if log == nil {
		log = slog.Default()
	}

	r := &SessionRecorder{
		kv:      kv,
		marker:  marker,
		emitter: emitter,
		logger:  log.With(slog.String("component", "session_recorder")),
		clock:   time.Now,
	}
	r.load(ctx)
	return r
}

// Start opens a new practice session over the target verse numbers and
// returns its identifier. The target list must be non-empty.
func (r *SessionRecorder) Start(ctx context.Context, chapterID int, targetVerses []int) (uuid.UUID, error) {
	session, err := domain.NewSession(chapterID, targetVerses, r.clock())
	if err != nil {
		return uuid.Nil, err
	}

	r.mu.Lock()
	r.sessions = append(r.sessions, session)
	r.mu.Unlock()

	r.persistSessions(ctx)

	return session.ID, nil
}

// Complete finalizes the open session with the given accuracy and attempt
// count: it stamps the end time, marks every target verse memorized, folds
// the session into the aggregate stats, and persists the log and stats.
// Returns ErrSessionNotFound (logged, no state change) when the ID does not
// refer to an open session — including a session that was already completed —
// and domain.ErrInvalidAccuracy when accuracy is outside [0,100].
func (r *SessionRecorder) Complete(ctx context.Context, sessionID uuid.UUID, accuracy float64, attemptCount int) error {
	log := logger.FromContextOrDefault(ctx, r.logger)
	now := r.clock()

	r.mu.Lock()
	session := r.findOpenLocked(sessionID)
	if session == nil {
		r.mu.Unlock()
		log.Warn("complete called for unknown or finished session",
			"session_id", sessionID.String())
		return ErrSessionNotFound
	}

	if err := session.Complete(now, accuracy, attemptCount); err != nil {
		r.mu.Unlock()
		return err
	}
	chapterID := session.ChapterID
	targets := make([]int, len(session.TargetVerses))
	copy(targets, session.TargetVerses)
	r.mu.Unlock()

	newlyMemorized := 0
	for _, verseNumber := range targets {
		added, err := r.marker.MarkMemorized(ctx, chapterID, verseNumber)
		if err != nil {
			log.Warn("failed to mark session verse memorized",
				"chapter_id", chapterID,
				"verse_number", verseNumber,
				"error", err)
			continue
		}
		if added {
			newlyMemorized++
		}
	}

	r.mu.Lock()
	r.foldSessionLocked(session, newlyMemorized, now)
	stats := r.stats
	r.mu.Unlock()

	r.persistSessions(ctx)
	r.persistStats(ctx)

	r.emit(ctx, events.EventSessionCompleted, session)
	r.emit(ctx, events.EventStatsUpdated, stats)

	return nil
}

// Stats returns a copy of the aggregate memorization statistics.
func (r *SessionRecorder) Stats() domain.MemorizationStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Sessions returns copies of all recorded sessions in start order.
func (r *SessionRecorder) Sessions() []*domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := make([]*domain.Session, len(r.sessions))
	for i, session := range r.sessions {
		clone := *session
		sessions[i] = &clone
	}
	return sessions
}

// ResetAll wipes the session log and stats, both in memory and in the store.
func (r *SessionRecorder) ResetAll(ctx context.Context) {
	r.mu.Lock()
	r.sessions = nil
	r.stats = domain.MemorizationStats{}
	r.mu.Unlock()

	keys := []string{store.KeyMemorizationSessions, store.KeyMemorizationStats}
	if err := r.kv.RemoveMany(ctx, keys); err != nil {
		r.logger.Error("failed to remove persisted sessions and stats", "error", err)
	}
}

// foldSessionLocked folds one just-completed session into the aggregate
// stats. Callers must hold r.mu.
//
// The streak increments only on the first completed session of a local
// calendar day; a same-day repeat leaves it untouched, and a gap of more
// than one day starts a fresh streak of 1.
func (r *SessionRecorder) foldSessionLocked(session *domain.Session, newlyMemorized int, now time.Time) {
	r.stats.TotalStudyMinutes += session.DurationMinutes()
	r.stats.TotalVersesMemorized += newlyMemorized

	today := now.Format(localDayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(localDayFormat)
	switch r.stats.LastStudyDay {
	case today:
		// Already counted today.
	case yesterday:
		r.stats.CurrentStreak++
	default:
		r.stats.CurrentStreak = 1
	}
	r.stats.LastStudyDay = today
	if r.stats.CurrentStreak > r.stats.LongestStreak {
		r.stats.LongestStreak = r.stats.CurrentStreak
	}

	completed := 0
	totalAccuracy := 0.0
	for _, s := range r.sessions {
		if s.Completed() {
			completed++
			totalAccuracy += s.Accuracy
		}
	}
	if completed > 0 {
		r.stats.AverageAccuracy = totalAccuracy / float64(completed)
	}
}

// findOpenLocked returns the open session with the given ID, or nil.
// Callers must hold r.mu.
func (r *SessionRecorder) findOpenLocked(sessionID uuid.UUID) *domain.Session {
	for _, session := range r.sessions {
		if session.ID == sessionID && !session.Completed() {
			return session
		}
	}
	return nil
}

func (r *SessionRecorder) persistSessions(ctx context.Context) {
	r.mu.Lock()
	payload, err := json.Marshal(r.sessions)
	r.mu.Unlock()

	if err != nil {
		r.logger.Error("failed to marshal session log", "error", err)
		return
	}
	if err := r.kv.Set(ctx, store.KeyMemorizationSessions, string(payload)); err != nil {
		r.logger.Error("failed to persist session log", "error", err)
	}
}

func (r *SessionRecorder) persistStats(ctx context.Context) {
	r.mu.Lock()
	payload, err := json.Marshal(r.stats)
	r.mu.Unlock()

	if err != nil {
		r.logger.Error("failed to marshal memorization stats", "error", err)
		return
	}
	if err := r.kv.Set(ctx, store.KeyMemorizationStats, string(payload)); err != nil {
		r.logger.Error("failed to persist memorization stats", "error", err)
	}
}

func (r *SessionRecorder) load(ctx context.Context) {
	if value, err := r.kv.Get(ctx, store.KeyMemorizationSessions); err == nil {
		if err := json.Unmarshal([]byte(value), &r.sessions); err != nil {
			r.logger.Error("failed to decode session log", "error", err)
			r.sessions = nil
		}
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		r.logger.Error("failed to load session log", "error", err)
	}

	if value, err := r.kv.Get(ctx, store.KeyMemorizationStats); err == nil {
		if err := json.Unmarshal([]byte(value), &r.stats); err != nil {
			r.logger.Error("failed to decode memorization stats", "error", err)
			r.stats = domain.MemorizationStats{}
		}
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		r.logger.Error("failed to load memorization stats", "error", err)
	}
}

func (r *SessionRecorder) emit(ctx context.Context, eventType events.EventType, payload interface{}) {
	if r.emitter == nil {
		return
	}
	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		r.logger.Error("failed to build event", "event_type", eventType, "error", err)
		return
	}
	_ = r.emitter.Emit(ctx, event)
}
