package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/domain/srs"
	"github.com/hifzapp/hifz-api/internal/events"
	"github.com/hifzapp/hifz-api/internal/platform/logger"
	"github.com/hifzapp/hifz-api/internal/store"
)

// ChapterResolver supplies chapter metadata for verse-range validation.
type ChapterResolver interface {
	GetChapter(id int) (*domain.Chapter, error)
}

// ProgressTracker maintains the per-chapter memorization records. In-memory
// state is authoritative for the process lifetime; every mutation is
// persisted best-effort, and a persistence failure is logged without being
// surfaced to the caller.
type ProgressTracker struct {
	kv       store.KeyValue
	chapters ChapterResolver
	schedule srs.Service
	emitter  *events.Emitter
	logger   *slog.Logger
	clock    func() time.Time

	mu      sync.Mutex
	records map[int]*domain.ProgressRecord
}

// NewProgressTracker creates a ProgressTracker and loads any previously
// persisted progress. A load failure is logged and the tracker starts empty.
func NewProgressTracker(
	ctx context.Context,
	kv store.KeyValue,
	chapters ChapterResolver,
	schedule srs.Service,
	emitter *events.Emitter,
	log *slog.Logger,
) *ProgressTracker {
	if log == nil {
		log = slog.Default()
	}

	t := &ProgressTracker{
		kv:       kv,
		chapters: chapters,
		schedule: schedule,
		emitter:  emitter,
		logger:   log.With(slog.String("component", "progress_tracker")),
		clock:    time.Now,
		records:  make(map[int]*domain.ProgressRecord),
	}
	t.load(ctx)
	return t
}

// MarkMemorized adds the verse to the chapter's memorized set, creating the
// record if needed, and stamps the record with the current time. The
// operation is idempotent: marking an already-memorized verse changes
// nothing. The returned bool reports whether the verse was newly added.
// Returns domain.ErrVerseNumberOutOfRange (wrapped per chapter lookup) when
// the verse falls outside the chapter.
func (t *ProgressTracker) MarkMemorized(ctx context.Context, chapterID, verseNumber int) (bool, error) {
	log := logger.FromContextOrDefault(ctx, t.logger)

	chapter, err := t.chapters.GetChapter(chapterID)
	if err != nil {
		log.Warn("mark memorized for unknown chapter", "chapter_id", chapterID)
		return false, err
	}
	if !chapter.ContainsVerse(verseNumber) {
		return false, domain.ErrVerseNumberOutOfRange
	}

	t.mu.Lock()
	record, ok := t.records[chapterID]
	if !ok {
		record, err = domain.NewProgressRecord(chapterID)
		if err != nil {
			t.mu.Unlock()
			return false, err
		}
		t.records[chapterID] = record
	}

	added := record.Mark(verseNumber)
	if added {
		record.LastStudied = t.clock()
	}
	t.mu.Unlock()

	if !added {
		return false, nil
	}

	t.persist(ctx)
	t.emit(ctx, events.EventProgressUpdated, domain.VerseRef{
		ChapterID:   chapterID,
		VerseNumber: verseNumber,
	})
	return true, nil
}

// UnmarkMemorized removes the verse from the chapter's memorized set. It is
// a silent no-op when the record or the verse is absent.
func (t *ProgressTracker) UnmarkMemorized(ctx context.Context, chapterID, verseNumber int) {
	t.mu.Lock()
	record, ok := t.records[chapterID]
	removed := ok && record.Unmark(verseNumber)
	t.mu.Unlock()

	if !removed {
		return
	}

	t.persist(ctx)
	t.emit(ctx, events.EventProgressUpdated, domain.VerseRef{
		ChapterID:   chapterID,
		VerseNumber: verseNumber,
	})
}

// IsMemorized reports whether the verse is currently marked memorized.
func (t *ProgressTracker) IsMemorized(chapterID, verseNumber int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.records[chapterID]
	return ok && record.Contains(verseNumber)
}

// CompletionPercentage returns the memorized share of the chapter, rounded
// to the nearest whole percent. It is 0 when no record exists or totalVerses
// is not positive.
func (t *ProgressTracker) CompletionPercentage(chapterID, totalVerses int) int {
	if totalVerses <= 0 {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.records[chapterID]
	if !ok {
		return 0
	}
	return int(math.Round(100 * float64(record.Count()) / float64(totalVerses)))
}

// NextReviewDate returns when the chapter is next due for review, or nil if
// no verse of the chapter has been memorized yet.
func (t *ProgressTracker) NextReviewDate(chapterID int) (*time.Time, error) {
	t.mu.Lock()
	record, ok := t.records[chapterID]
	if ok {
		record = record.Clone()
	}
	t.mu.Unlock()

	if !ok {
		return nil, nil
	}

	next, due, err := t.schedule.NextReviewDate(record, t.clock())
	if err != nil || !due {
		return nil, err
	}
	return &next, nil
}

// ProgressForChapter returns a copy of the chapter's record, or nil when no
// memorization action has touched the chapter yet.
func (t *ProgressTracker) ProgressForChapter(chapterID int) *domain.ProgressRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.records[chapterID]
	if !ok {
		return nil
	}
	return record.Clone()
}

// AllProgress returns copies of all records, ordered by chapter ID.
func (t *ProgressTracker) AllProgress() []*domain.ProgressRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snapshotLocked()
}

// ResetAll wipes all memorization progress, both in memory and in the store.
// This is the account-wipe path; it is the only way records are deleted.
func (t *ProgressTracker) ResetAll(ctx context.Context) {
	t.mu.Lock()
	t.records = make(map[int]*domain.ProgressRecord)
	t.mu.Unlock()

	if err := t.kv.Remove(ctx, store.KeyMemorizationProgress); err != nil {
		t.logger.Error("failed to remove persisted progress", "error", err)
	}
}

// snapshotLocked clones all records ordered by chapter ID. Callers must hold t.mu.
func (t *ProgressTracker) snapshotLocked() []*domain.ProgressRecord {
	records := make([]*domain.ProgressRecord, 0, len(t.records))
	for _, record := range t.records {
		records = append(records, record.Clone())
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ChapterID < records[j].ChapterID
	})
	return records
}

func (t *ProgressTracker) persist(ctx context.Context) {
	t.mu.Lock()
	records := t.snapshotLocked()
	t.mu.Unlock()

	payload, err := json.Marshal(records)
	if err != nil {
		t.logger.Error("failed to marshal progress records", "error", err)
		return
	}
	if err := t.kv.Set(ctx, store.KeyMemorizationProgress, string(payload)); err != nil {
		t.logger.Error("failed to persist progress records", "error", err)
	}
}

func (t *ProgressTracker) load(ctx context.Context) {
	value, err := t.kv.Get(ctx, store.KeyMemorizationProgress)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			t.logger.Error("failed to load progress records", "error", err)
		}
		return
	}

	var records []*domain.ProgressRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		t.logger.Error("failed to decode progress records", "error", err)
		return
	}
	for _, record := range records {
		t.records[record.ChapterID] = record
	}
}

func (t *ProgressTracker) emit(ctx context.Context, eventType events.EventType, payload interface{}) {
	if t.emitter == nil {
		return
	}
	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		t.logger.Error("failed to build event", "event_type", eventType, "error", err)
		return
	}
	// Handler errors are already logged by the emitter.
	_ = t.emitter.Emit(ctx, event)
}
