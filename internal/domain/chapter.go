package domain

import "errors"

// ChapterKind classifies a chapter by its place of revelation.
type ChapterKind string

// Possible chapter kinds.
const (
	ChapterKindMeccan  ChapterKind = "Meccan"
	ChapterKindMedinan ChapterKind = "Medinan"
)

// Chapter-specific validation errors.
var (
	ErrChapterIDInvalid      = errors.New("chapter ID must be positive")
	ErrChapterVerseCount     = errors.New("chapter verse count must be positive")
	ErrChapterKindInvalid    = errors.New("chapter kind must be Meccan or Medinan")
	ErrVerseNumberOutOfRange = errors.New("verse number must be within 1..verse count")
)

// Chapter represents a surah of the Quran. Chapters are immutable and loaded
// once from the static content catalog.
type Chapter struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	ArabicName      string      `json:"arabic_name"`
	VerseCount      int         `json:"verse_count"`
	Kind            ChapterKind `json:"kind"`
	RevelationOrder int         `json:"revelation_order"`
}

// Validate checks if the Chapter has valid data.
func (c *Chapter) Validate() error {
	if c.ID <= 0 {
		return ErrChapterIDInvalid
	}
	if c.VerseCount <= 0 {
		return ErrChapterVerseCount
	}
	if c.Kind != ChapterKindMeccan && c.Kind != ChapterKindMedinan {
		return ErrChapterKindInvalid
	}
	return nil
}

// ContainsVerse reports whether the 1-based verse number falls inside the chapter.
func (c *Chapter) ContainsVerse(verseNumber int) bool {
	return verseNumber >= 1 && verseNumber <= c.VerseCount
}

// VerseRef identifies a single verse by chapter ID and 1-based verse number.
type VerseRef struct {
	ChapterID   int `json:"chapter_id"`
	VerseNumber int `json:"verse_number"`
}

// Verse is the smallest addressable unit of content. The Bookmarked and
// Highlighted flags are decorations applied by the catalog on read; they are
// not part of the static content itself.
type Verse struct {
	ID              int    `json:"id"`
	ChapterID       int    `json:"chapter_id"`
	Number          int    `json:"number"`
	Arabic          string `json:"arabic"`
	Translation     string `json:"translation"`
	Transliteration string `json:"transliteration,omitempty"`
	Bookmarked      bool   `json:"bookmarked"`
	Highlighted     bool   `json:"highlighted"`
}

// Ref returns the VerseRef identifying this verse.
func (v *Verse) Ref() VerseRef {
	return VerseRef{ChapterID: v.ChapterID, VerseNumber: v.Number}
}

// Translation describes an available translation edition.
type Translation struct {
	ID       int    `json:"id"`
	Language string `json:"language"`
	Author   string `json:"author"`
	Name     string `json:"name"`
}
