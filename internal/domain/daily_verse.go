package domain

// DailyVerse is the verse picked for one local calendar day, cached until the
// day rolls over.
type DailyVerse struct {
	ChapterID   int    `json:"chapter_id"`
	VerseNumber int    `json:"verse_number"`
	Text        string `json:"text"`
}

// Ref returns the VerseRef identifying the daily verse.
func (d *DailyVerse) Ref() VerseRef {
	return VerseRef{ChapterID: d.ChapterID, VerseNumber: d.VerseNumber}
}
