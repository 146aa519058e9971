package queries

import (
	"context"

	"folio/contexts/publishing-editorial/content-service/domain/entities"
	"folio/contexts/publishing-editorial/content-service/ports"
)

// ListChapterReviewsUseCase returns a chapter's reviews in submission order.
type ListChapterReviewsUseCase struct {
	Repo ports.ContentRepository
}

func (u ListChapterReviewsUseCase) Execute(ctx context.Context, chapterID string) ([]entities.Review, error) {
	return u.Repo.ListChapterReviews(ctx, chapterID)
}
