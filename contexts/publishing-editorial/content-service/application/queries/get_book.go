package queries

import (
	"context"

	"folio/contexts/publishing-editorial/content-service/domain/entities"
	"folio/contexts/publishing-editorial/content-service/ports"
)

// GetBookUseCase returns a book by identifier.
type GetBookUseCase struct {
	Repo ports.ContentRepository
}

func (u GetBookUseCase) Execute(ctx context.Context, bookID string) (entities.Book, error) {
	return u.Repo.GetBook(ctx, bookID)
}
