package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/store"
)

// dailyVersePlaceholder is served when the picked verse's body is not
// materialized in the catalog.
const dailyVersePlaceholder = "Daily verse text"

// ContentProvider is the slice of the catalog the daily verse selector
// needs: the chapter list for the random pick and verse text resolution.
type ContentProvider interface {
	ListChapters() []domain.Chapter
	TranslationFor(ctx context.Context, ref domain.VerseRef) (string, bool)
}

// DailyVerseSelector picks one pseudo-random verse per local calendar day
// and caches it for the remainder of the day. The pick is persisted, so a
// restart on the same day returns the same verse as long as the write went
// through; a crash before the write may legitimately yield a different verse.
type DailyVerseSelector struct {
	kv      store.KeyValue
	content ContentProvider
	logger  *slog.Logger
	clock   func() time.Time
	rng     *rand.Rand

	mu         sync.Mutex
	cached     *domain.DailyVerse
	cachedDate string
}

// NewDailyVerseSelector creates a DailyVerseSelector. The rng may be nil, in
// which case a time-seeded source is used.
func NewDailyVerseSelector(
	kv store.KeyValue,
	content ContentProvider,
	rng *rand.Rand,
	log *slog.Logger,
) *DailyVerseSelector {
	if log == nil {
		log = slog.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &DailyVerseSelector{
		kv:      kv,
		content: content,
		logger:  log.With(slog.String("component", "daily_verse_selector")),
		clock:   time.Now,
		rng:     rng,
	}
}

// GetDailyVerse returns the verse of the current local calendar day. Within
// one day the result is stable; a new day triggers a fresh uniform pick of a
// chapter and a verse number within it.
func (s *DailyVerseSelector) GetDailyVerse(ctx context.Context) (*domain.DailyVerse, error) {
	today := s.clock().Format(localDayFormat)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.cachedDate == today {
		verse := *s.cached
		return &verse, nil
	}

	if verse := s.loadPersisted(ctx, today); verse != nil {
		s.cached = verse
		s.cachedDate = today
		copied := *verse
		return &copied, nil
	}

	verse, err := s.pick(ctx)
	if err != nil {
		return nil, err
	}

	s.cached = verse
	s.cachedDate = today
	s.persist(ctx, verse, today)

	copied := *verse
	return &copied, nil
}

// pick selects a chapter uniformly at random, then a verse number uniformly
// within it, resolving the translation text with a placeholder fallback.
func (s *DailyVerseSelector) pick(ctx context.Context) (*domain.DailyVerse, error) {
	chapters := s.content.ListChapters()
	if len(chapters) == 0 {
		return nil, errors.New("content catalog has no chapters")
	}

	chapter := chapters[s.rng.Intn(len(chapters))]
	verseNumber := s.rng.Intn(chapter.VerseCount) + 1
	ref := domain.VerseRef{ChapterID: chapter.ID, VerseNumber: verseNumber}

	text, ok := s.content.TranslationFor(ctx, ref)
	if !ok || text == "" {
		text = dailyVersePlaceholder
	}

	return &domain.DailyVerse{
		ChapterID:   chapter.ID,
		VerseNumber: verseNumber,
		Text:        text,
	}, nil
}

// loadPersisted returns the stored daily verse if it was persisted for the
// given day, or nil.
func (s *DailyVerseSelector) loadPersisted(ctx context.Context, today string) *domain.DailyVerse {
	storedDate, err := s.kv.Get(ctx, store.KeyLastDailyVerseDate)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			s.logger.Error("failed to load daily verse date", "error", err)
		}
		return nil
	}
	if storedDate != today {
		return nil
	}

	value, err := s.kv.Get(ctx, store.KeyDailyVerse)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			s.logger.Error("failed to load daily verse", "error", err)
		}
		return nil
	}

	var verse domain.DailyVerse
	if err := json.Unmarshal([]byte(value), &verse); err != nil {
		s.logger.Error("failed to decode daily verse", "error", err)
		return nil
	}
	return &verse
}

// persist writes the pick and its date. The previous day's entry is simply
// overwritten. Failures are logged; the in-memory cache still serves the
// rest of the day.
func (s *DailyVerseSelector) persist(ctx context.Context, verse *domain.DailyVerse, today string) {
	payload, err := json.Marshal(verse)
	if err != nil {
		s.logger.Error("failed to marshal daily verse", "error", err)
		return
	}
	if err := s.kv.Set(ctx, store.KeyDailyVerse, string(payload)); err != nil {
		s.logger.Error("failed to persist daily verse", "error", err)
		return
	}
	if err := s.kv.Set(ctx, store.KeyLastDailyVerseDate, today); err != nil {
		s.logger.Error("failed to persist daily verse date", "error", err)
	}
}
