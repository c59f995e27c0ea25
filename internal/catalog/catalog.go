// Package catalog provides the static content registry: chapters, verses,
// translations, and the user's bookmarks and highlights.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/store"
)

// Catalog errors.
var (
	// ErrChapterNotFound is returned when the requested chapter does not exist.
	ErrChapterNotFound = errors.New("chapter not found")
)

// maxSynthesizedVerses caps how many placeholder verses are generated for a
// chapter whose true content is not bundled.
const maxSynthesizedVerses = 10

// Catalog serves chapter and verse content and keeps the user's bookmark and
// highlight sets, persisted in the durable store. Content itself is static;
// only the decoration sets mutate.
type Catalog struct {
	kv     store.KeyValue
	logger *slog.Logger

	mu         sync.RWMutex
	verses     map[int][]domain.Verse // materialized verses by chapter ID
	bookmarks  map[int]struct{}       // verse IDs
	highlights map[int]struct{}       // verse IDs
}

// New creates a Catalog backed by the given durable store. Previously
// persisted bookmarks and highlights are loaded immediately; a load failure
// is logged and the catalog starts with empty sets.
func New(ctx context.Context, kv store.KeyValue, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Catalog{
		kv:         kv,
		logger:     logger.With(slog.String("component", "catalog")),
		verses:     make(map[int][]domain.Verse),
		bookmarks:  make(map[int]struct{}),
		highlights: make(map[int]struct{}),
	}

	c.verses[1] = seededVerses

	c.loadIDSet(ctx, store.KeyBookmarks, c.bookmarks)
	c.loadIDSet(ctx, store.KeyHighlights, c.highlights)

	return c
}

// ListChapters returns all chapters in catalog order.
func (c *Catalog) ListChapters() []domain.Chapter {
	result := make([]domain.Chapter, len(chapters))
	copy(result, chapters)
	return result
}

// GetChapter returns the chapter with the given ID.
// Returns ErrChapterNotFound if the ID is unknown.
func (c *Catalog) GetChapter(id int) (*domain.Chapter, error) {
	for i := range chapters {
		if chapters[i].ID == id {
			chapter := chapters[i]
			return &chapter, nil
		}
	}
	return nil, ErrChapterNotFound
}

// GetVerses returns the verses of a chapter in order, decorated with the
// user's bookmark and highlight state. Chapters beyond the seeded set get
// synthesized placeholder verses so every chapter stays browsable.
// Returns ErrChapterNotFound if the chapter ID is unknown.
func (c *Catalog) GetVerses(ctx context.Context, chapterID int) ([]domain.Verse, error) {
	chapter, err := c.GetChapter(chapterID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	verses, ok := c.verses[chapterID]
	if !ok {
		verses = synthesizeVerses(chapter)
		c.verses[chapterID] = verses
	}
	c.mu.Unlock()

	return c.decorate(verses), nil
}

// TranslationFor resolves the translation text of a single verse. The second
// return value is false when the verse body is not materialized, in which
// case callers fall back to a placeholder.
func (c *Catalog) TranslationFor(ctx context.Context, ref domain.VerseRef) (string, bool) {
	verses, err := c.GetVerses(ctx, ref.ChapterID)
	if err != nil {
		return "", false
	}
	for i := range verses {
		if verses[i].Number == ref.VerseNumber {
			return verses[i].Translation, true
		}
	}
	return "", false
}

// SearchVerses scans all materialized verses for a case-insensitive substring
// match against the translation, Arabic text or transliteration.
func (c *Catalog) SearchVerses(ctx context.Context, query string) []domain.Verse {
	if query == "" {
		return nil
	}
	lowered := strings.ToLower(query)

	c.mu.RLock()
	var all []domain.Verse
	for _, verses := range c.verses {
		all = append(all, verses...)
	}
	c.mu.RUnlock()

	var matches []domain.Verse
	for _, verse := range all {
		if strings.Contains(strings.ToLower(verse.Translation), lowered) ||
			strings.Contains(verse.Arabic, query) ||
			strings.Contains(strings.ToLower(verse.Transliteration), lowered) {
			matches = append(matches, verse)
		}
	}
	return c.decorate(matches)
}

// ToggleBookmark flips the bookmark state of a verse ID and persists the set.
// It returns the new state. Persistence failures are logged; the in-memory
// set remains authoritative.
func (c *Catalog) ToggleBookmark(ctx context.Context, verseID int) bool {
	return c.toggle(ctx, verseID, c.bookmarks, store.KeyBookmarks)
}

// ToggleHighlight flips the highlight state of a verse ID and persists the set.
func (c *Catalog) ToggleHighlight(ctx context.Context, verseID int) bool {
	return c.toggle(ctx, verseID, c.highlights, store.KeyHighlights)
}

// ListBookmarked returns all materialized verses the user has bookmarked.
func (c *Catalog) ListBookmarked(ctx context.Context) []domain.Verse {
	c.mu.RLock()
	var result []domain.Verse
	for _, verses := range c.verses {
		for _, verse := range verses {
			if _, ok := c.bookmarks[verse.ID]; ok {
				result = append(result, verse)
			}
		}
	}
	c.mu.RUnlock()

	return c.decorate(result)
}

// ListTranslations returns the available translation editions.
func (c *Catalog) ListTranslations() []domain.Translation {
	result := make([]domain.Translation, len(translations))
	copy(result, translations)
	return result
}

// GetTafsir returns commentary text for a verse. Content beyond the bundled
// set is served as placeholder prose.
func (c *Catalog) GetTafsir(verseID int) string {
	return fmt.Sprintf(
		"This is a detailed explanation (tafsir) for verse %d. A full deployment serves scholarly commentary on the verse's meaning, context, and significance.",
		verseID,
	)
}

func (c *Catalog) toggle(ctx context.Context, verseID int, set map[int]struct{}, key string) bool {
	c.mu.Lock()
	if _, ok := set[verseID]; ok {
		delete(set, verseID)
	} else {
		set[verseID] = struct{}{}
	}
	_, active := set[verseID]
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	payload, err := json.Marshal(ids)
	if err != nil {
		c.logger.Error("failed to marshal verse ID set", "key", key, "error", err)
		return active
	}
	if err := c.kv.Set(ctx, key, string(payload)); err != nil {
		c.logger.Error("failed to persist verse ID set", "key", key, "error", err)
	}
	return active
}

func (c *Catalog) loadIDSet(ctx context.Context, key string, into map[int]struct{}) {
	value, err := c.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			c.logger.Error("failed to load verse ID set", "key", key, "error", err)
		}
		return
	}

	var ids []int
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		c.logger.Error("failed to decode verse ID set", "key", key, "error", err)
		return
	}
	for _, id := range ids {
		into[id] = struct{}{}
	}
}

// decorate returns a copy of the verses with bookmark and highlight flags
// applied from the current sets.
func (c *Catalog) decorate(verses []domain.Verse) []domain.Verse {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]domain.Verse, len(verses))
	for i, verse := range verses {
		_, verse.Bookmarked = c.bookmarks[verse.ID]
		_, verse.Highlighted = c.highlights[verse.ID]
		result[i] = verse
	}
	return result
}

// synthesizeVerses builds placeholder verses for a chapter without bundled
// content, using the same ID scheme as the real content pipeline.
func synthesizeVerses(chapter *domain.Chapter) []domain.Verse {
	count := chapter.VerseCount
	if count > maxSynthesizedVerses {
		count = maxSynthesizedVerses
	}

	verses := make([]domain.Verse, 0, count)
	for i := 1; i <= count; i++ {
		verses = append(verses, domain.Verse{
			ID:              chapter.ID*1000 + i,
			ChapterID:       chapter.ID,
			Number:          i,
			Arabic:          "نص عربي تجريبي للآية",
			Translation:     fmt.Sprintf("Sample translation for Surah %d, Verse %d", chapter.ID, i),
			Transliteration: fmt.Sprintf("Sample transliteration %d", i),
		})
	}
	return verses
}
