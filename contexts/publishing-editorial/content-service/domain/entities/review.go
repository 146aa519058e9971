package entities

import (
	"strings"
	"time"

	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
)

// Review is one reader's verdict on a chapter. A reviewer gets at most one
// review per chapter; the repository enforces that uniqueness.
type Review struct {
	ReviewID  string
	ChapterID string
	Reviewer  string
	Rating    int
	Body      string
	CreatedAt time.Time
}

func NewReview(reviewID, chapterID, reviewer string, rating int, body string, createdAt time.Time) (Review, error) {
	if strings.TrimSpace(reviewID) == "" ||
		strings.TrimSpace(chapterID) == "" ||
		strings.TrimSpace(reviewer) == "" {
		return Review{}, domainerrors.ErrInvalidReview
	}
	if len(body) > 500 {
		return Review{}, domainerrors.ErrInvalidReview
	}
	if rating < 1 || rating > 5 {
		return Review{}, domainerrors.ErrInvalidRating
	}
	return Review{
		ReviewID:  strings.TrimSpace(reviewID),
		ChapterID: strings.TrimSpace(chapterID),
		Reviewer:  strings.TrimSpace(reviewer),
		Rating:    rating,
		Body:      strings.TrimSpace(body),
		CreatedAt: createdAt.UTC(),
	}, nil
}
