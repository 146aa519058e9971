package entities

import (
	"strings"
	"time"

	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
)

// Book is a writer-owned content container backed by an asset collection.
// ChapterCount grows monotonically from zero and never exceeds Capacity.
type Book struct {
	BookID       string
	Writer       string
	CollectionID string
	Title        string
	Genre        string
	Capacity     int
	ChapterCount int
	CreatedAt    time.Time
}

func NewBook(bookID, writer, collectionID, title, genre string, capacity int, createdAt time.Time) (Book, error) {
	if strings.TrimSpace(bookID) == "" ||
		strings.TrimSpace(writer) == "" ||
		strings.TrimSpace(collectionID) == "" ||
		strings.TrimSpace(title) == "" {
		return Book{}, domainerrors.ErrInvalidBook
	}
	if len(title) > 50 || len(genre) > 20 {
		return Book{}, domainerrors.ErrInvalidBook
	}
	if capacity < 1 {
		return Book{}, domainerrors.ErrInvalidBook
	}
	return Book{
		BookID:       strings.TrimSpace(bookID),
		Writer:       strings.TrimSpace(writer),
		CollectionID: strings.TrimSpace(collectionID),
		Title:        strings.TrimSpace(title),
		Genre:        strings.TrimSpace(genre),
		Capacity:     capacity,
		ChapterCount: 0,
		CreatedAt:    createdAt.UTC(),
	}, nil
}

// NextChapterNumber returns the number the next appended chapter receives.
// Chapter numbers are dense: 1..ChapterCount in creation order.
func (b Book) NextChapterNumber() (int, error) {
	if b.ChapterCount >= b.Capacity {
		return 0, domainerrors.ErrCapacityExceeded
	}
	return b.ChapterCount + 1, nil
}
