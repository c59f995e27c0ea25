package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hifzapp/hifz-api/internal/api/shared"
	"github.com/hifzapp/hifz-api/internal/catalog"
	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/service"
)

// CatalogHandler serves chapter and verse content, search, bookmarks,
// highlights, translations, tafsir and the daily verse.
type CatalogHandler struct {
	catalog    *catalog.Catalog
	dailyVerse *service.DailyVerseSelector
}

// NewCatalogHandler creates a new CatalogHandler with the given dependencies.
func NewCatalogHandler(c *catalog.Catalog, dailyVerse *service.DailyVerseSelector) *CatalogHandler {
	return &CatalogHandler{
		catalog:    c,
		dailyVerse: dailyVerse,
	}
}

// ListChapters handles GET /chapters.
func (h *CatalogHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.ListChapters())
}

// GetChapter handles GET /chapters/{id}.
func (h *CatalogHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	chapterID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	chapter, err := h.catalog.GetChapter(chapterID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, chapter)
}

// GetVerses handles GET /chapters/{id}/verses.
func (h *CatalogHandler) GetVerses(w http.ResponseWriter, r *http.Request) {
	chapterID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	verses, err := h.catalog.GetVerses(r.Context(), chapterID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, verses)
}

// SearchVerses handles GET /verses/search?q=...
func (h *CatalogHandler) SearchVerses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	matches := h.catalog.SearchVerses(r.Context(), query)
	if matches == nil {
		matches = []domain.Verse{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, matches)
}

// ToggleBookmark handles POST /verses/{id}/bookmark.
func (h *CatalogHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	verseID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	active := h.catalog.ToggleBookmark(r.Context(), verseID)
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]bool{"bookmarked": active})
}

// ToggleHighlight handles POST /verses/{id}/highlight.
func (h *CatalogHandler) ToggleHighlight(w http.ResponseWriter, r *http.Request) {
	verseID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	active := h.catalog.ToggleHighlight(r.Context(), verseID)
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]bool{"highlighted": active})
}

// ListBookmarks handles GET /bookmarks.
func (h *CatalogHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.ListBookmarked(r.Context()))
}

// ListTranslations handles GET /translations.
func (h *CatalogHandler) ListTranslations(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.ListTranslations())
}

// GetTafsir handles GET /verses/{id}/tafsir.
func (h *CatalogHandler) GetTafsir(w http.ResponseWriter, r *http.Request) {
	verseID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"tafsir": h.catalog.GetTafsir(verseID),
	})
}

// GetDailyVerse handles GET /daily-verse.
func (h *CatalogHandler) GetDailyVerse(w http.ResponseWriter, r *http.Request) {
	verse, err := h.dailyVerse.GetDailyVerse(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, verse)
}

// pathInt parses an integer URL parameter, responding with 400 on failure.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return value, true
}
