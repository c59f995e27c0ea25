package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/store"
)

func newTestCatalog(t *testing.T, kv store.KeyValue) *Catalog {
	t.Helper()
	c := New(context.Background(), kv, nil)
	require.NotNil(t, c)
	return c
}

func TestCatalog_ListChapters(t *testing.T) {
	c := newTestCatalog(t, store.NewMemoryStore())

	chapters := c.ListChapters()
	require.NotEmpty(t, chapters)
	assert.Equal(t, 1, chapters[0].ID)
	assert.Equal(t, "Al-Fatiha", chapters[0].Name)
	assert.Equal(t, 7, chapters[0].VerseCount)

	for _, chapter := range chapters {
		assert.NoError(t, chapter.Validate())
	}
}

func TestCatalog_GetChapter(t *testing.T) {
	c := newTestCatalog(t, store.NewMemoryStore())

	chapter, err := c.GetChapter(10)
	require.NoError(t, err)
	assert.Equal(t, "Yunus", chapter.Name)
	assert.Equal(t, 109, chapter.VerseCount)

	_, err = c.GetChapter(999)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}

func TestCatalog_GetVerses_Seeded(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, store.NewMemoryStore())

	verses, err := c.GetVerses(ctx, 1)
	require.NoError(t, err)
	require.Len(t, verses, 7)

	first := verses[0]
	assert.Equal(t, 1, first.Number)
	assert.Contains(t, first.Translation, "In the name of Allah")
	assert.NotEmpty(t, first.Arabic)
	assert.NotEmpty(t, first.Transliteration)
}

func TestCatalog_GetVerses_Synthesized(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, store.NewMemoryStore())

	// Chapter 10 has no bundled content; placeholders are capped at ten.
	verses, err := c.GetVerses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, verses, 10)
	for i, verse := range verses {
		assert.Equal(t, i+1, verse.Number)
		assert.Equal(t, 10, verse.ChapterID)
		assert.Equal(t, 10*1000+i+1, verse.ID)
		assert.NotEmpty(t, verse.Translation)
	}

	_, err = c.GetVerses(ctx, 999)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}

func TestCatalog_TranslationFor(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, store.NewMemoryStore())

	text, ok := c.TranslationFor(ctx, domain.VerseRef{ChapterID: 1, VerseNumber: 2})
	assert.True(t, ok)
	assert.Contains(t, text, "Lord of the worlds")

	_, ok = c.TranslationFor(ctx, domain.VerseRef{ChapterID: 1, VerseNumber: 99})
	assert.False(t, ok)

	_, ok = c.TranslationFor(ctx, domain.VerseRef{ChapterID: 999, VerseNumber: 1})
	assert.False(t, ok)
}

func TestCatalog_SearchVerses(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, store.NewMemoryStore())

	matches := c.SearchVerses(ctx, "merciful")
	require.NotEmpty(t, matches)
	for _, verse := range matches {
		assert.Contains(t, verse.Translation, "Merciful")
	}

	assert.Empty(t, c.SearchVerses(ctx, ""))
	assert.Empty(t, c.SearchVerses(ctx, "zzzznotaword"))
}

func TestCatalog_Bookmarks(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	c := newTestCatalog(t, kv)

	verses, err := c.GetVerses(ctx, 1)
	require.NoError(t, err)
	verseID := verses[0].ID

	assert.True(t, c.ToggleBookmark(ctx, verseID))

	verses, err = c.GetVerses(ctx, 1)
	require.NoError(t, err)
	assert.True(t, verses[0].Bookmarked)

	bookmarked := c.ListBookmarked(ctx)
	require.Len(t, bookmarked, 1)
	assert.Equal(t, verseID, bookmarked[0].ID)

	// Persisted sets survive a restart.
	reloaded := newTestCatalog(t, kv)
	_, err = reloaded.GetVerses(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, reloaded.ListBookmarked(ctx), 1)

	// Toggling again clears the bookmark.
	assert.False(t, c.ToggleBookmark(ctx, verseID))
	assert.Empty(t, c.ListBookmarked(ctx))
}

func TestCatalog_Highlights(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, store.NewMemoryStore())

	verses, err := c.GetVerses(ctx, 1)
	require.NoError(t, err)
	verseID := verses[2].ID

	assert.True(t, c.ToggleHighlight(ctx, verseID))

	verses, err = c.GetVerses(ctx, 1)
	require.NoError(t, err)
	assert.True(t, verses[2].Highlighted)
	assert.False(t, verses[0].Highlighted)

	assert.False(t, c.ToggleHighlight(ctx, verseID))
}

func TestCatalog_ListTranslations(t *testing.T) {
	c := newTestCatalog(t, store.NewMemoryStore())

	editions := c.ListTranslations()
	require.NotEmpty(t, editions)
	for _, edition := range editions {
		assert.NotEmpty(t, edition.ID)
		assert.NotEmpty(t, edition.Name)
	}
}

func TestCatalog_GetTafsir(t *testing.T) {
	c := newTestCatalog(t, store.NewMemoryStore())

	text := c.GetTafsir(1001)
	assert.Contains(t, text, "tafsir")
	assert.Contains(t, text, "1001")
}
