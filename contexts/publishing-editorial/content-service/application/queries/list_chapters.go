package queries

import (
	"context"

	"folio/contexts/publishing-editorial/content-service/domain/entities"
	"folio/contexts/publishing-editorial/content-service/ports"
)

// ListChaptersUseCase returns a book's chapters ordered by chapter number.
type ListChaptersUseCase struct {
	Repo ports.ContentRepository
}

func (u ListChaptersUseCase) Execute(ctx context.Context, bookID string) ([]entities.Chapter, error) {
	if _, err := u.Repo.GetBook(ctx, bookID); err != nil {
		return nil, err
	}
	return u.Repo.ListChapters(ctx, bookID)
}
