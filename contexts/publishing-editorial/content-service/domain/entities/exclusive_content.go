package entities

import (
	"strings"
	"time"

	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
)

// ExclusiveContent is collection-gated bonus material: one record per
// collection, unlocked for holders of any verified asset in that collection.
type ExclusiveContent struct {
	CollectionID string
	Locator      string
	Author       string
	Active       bool
	CreatedAt    time.Time
}

func NewExclusiveContent(collectionID, locator, author string, createdAt time.Time) (ExclusiveContent, error) {
	if strings.TrimSpace(collectionID) == "" ||
		strings.TrimSpace(locator) == "" ||
		strings.TrimSpace(author) == "" {
		return ExclusiveContent{}, domainerrors.ErrInvalidContent
	}
	if len(locator) > 100 {
		return ExclusiveContent{}, domainerrors.ErrInvalidContent
	}
	return ExclusiveContent{
		CollectionID: strings.TrimSpace(collectionID),
		Locator:      strings.TrimSpace(locator),
		Author:       strings.TrimSpace(author),
		Active:       true,
		CreatedAt:    createdAt.UTC(),
	}, nil
}
