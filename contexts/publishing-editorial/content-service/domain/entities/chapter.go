package entities

import (
	"strings"
	"time"

	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
)

// Chapter is one unit of gated content: an asset-backed entry in a book with
// a dense chapter number and a content locator resolved by the access gate.
type Chapter struct {
	ChapterID   string
	BookID      string
	Number      int
	AssetID     string
	Title       string
	Locator     string
	Rating      int
	ReviewCount int
	CreatedAt   time.Time
}

func NewChapter(chapterID, bookID string, number int, assetID, title, locator string, createdAt time.Time) (Chapter, error) {
	if strings.TrimSpace(chapterID) == "" ||
		strings.TrimSpace(bookID) == "" ||
		strings.TrimSpace(assetID) == "" ||
		strings.TrimSpace(locator) == "" {
		return Chapter{}, domainerrors.ErrInvalidChapter
	}
	if number < 1 || len(title) > 50 || len(locator) > 100 {
		return Chapter{}, domainerrors.ErrInvalidChapter
	}
	return Chapter{
		ChapterID: strings.TrimSpace(chapterID),
		BookID:    strings.TrimSpace(bookID),
		Number:    number,
		AssetID:   strings.TrimSpace(assetID),
		Title:     strings.TrimSpace(title),
		Locator:   strings.TrimSpace(locator),
		CreatedAt: createdAt.UTC(),
	}, nil
}

// ApplyRating folds one more review into the chapter's running rating. The
// stored rating is the integer mean of every rating received so far.
func (c Chapter) ApplyRating(rating int) Chapter {
	total := c.Rating*c.ReviewCount + rating
	c.ReviewCount++
	c.Rating = total / c.ReviewCount
	return c
}
