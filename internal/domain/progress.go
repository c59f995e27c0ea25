package domain

import (
	"errors"
	"time"
)

// Progress-specific validation errors.
var (
	ErrProgressChapterInvalid = errors.New("progress record chapter ID must be positive")
)

// ProgressRecord tracks the set of memorized verse numbers for one chapter.
// One record exists per chapter; it is created lazily on the first
// memorization action and never deleted except on a full account wipe.
type ProgressRecord struct {
	ChapterID       int       `json:"chapter_id"`
	MemorizedVerses []int     `json:"memorized_verses"`
	LastStudied     time.Time `json:"last_studied"`
}

// NewProgressRecord creates an empty progress record for the given chapter.
func NewProgressRecord(chapterID int) (*ProgressRecord, error) {
	record := &ProgressRecord{
		ChapterID:       chapterID,
		MemorizedVerses: []int{},
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// Validate checks if the ProgressRecord has valid data.
func (p *ProgressRecord) Validate() error {
	if p.ChapterID <= 0 {
		return ErrProgressChapterInvalid
	}
	return nil
}

// Contains reports whether the verse number is marked memorized.
func (p *ProgressRecord) Contains(verseNumber int) bool {
	for _, v := range p.MemorizedVerses {
		if v == verseNumber {
			return true
		}
	}
	return false
}

// Mark adds the verse number to the memorized set. It returns true when the
// verse was newly added and false when it was already present, keeping the
// operation idempotent.
func (p *ProgressRecord) Mark(verseNumber int) bool {
	if p.Contains(verseNumber) {
		return false
	}
	p.MemorizedVerses = append(p.MemorizedVerses, verseNumber)
	return true
}

// Unmark removes the verse number from the memorized set. It returns true
// when the verse was present and removed.
func (p *ProgressRecord) Unmark(verseNumber int) bool {
	for i, v := range p.MemorizedVerses {
		if v == verseNumber {
			p.MemorizedVerses = append(p.MemorizedVerses[:i], p.MemorizedVerses[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of memorized verses.
func (p *ProgressRecord) Count() int {
	return len(p.MemorizedVerses)
}

// Clone returns a deep copy of the record so callers can't mutate the
// tracker's in-memory state through a returned pointer.
func (p *ProgressRecord) Clone() *ProgressRecord {
	verses := make([]int, len(p.MemorizedVerses))
	copy(verses, p.MemorizedVerses)
	return &ProgressRecord{
		ChapterID:       p.ChapterID,
		MemorizedVerses: verses,
		LastStudied:     p.LastStudied,
	}
}
