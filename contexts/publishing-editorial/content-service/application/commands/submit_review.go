package commands

import (
	"context"
	"log/slog"

	application "folio/contexts/publishing-editorial/content-service/application"
	"folio/contexts/publishing-editorial/content-service/domain/entities"
	"folio/contexts/publishing-editorial/content-service/ports"
)

// SubmitReviewCommand contains transport-agnostic input for reviewing a
// chapter.
type SubmitReviewCommand struct {
	ChapterID string
	Reviewer  string
	Rating    int
	Body      string
}

// SubmitReviewUseCase records one reader's rating of a chapter and folds it
// into the chapter's running rating. The repository serializes concurrent
// submissions against one chapter, so the aggregate never loses a review.
type SubmitReviewUseCase struct {
	Repo        ports.ContentRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u SubmitReviewUseCase) Execute(ctx context.Context, cmd SubmitReviewCommand) (entities.Review, error) {
	logger := application.ResolveLogger(u.Logger)

	reviewID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Review{}, err
	}
	now := u.Clock.Now()

	review, err := u.Repo.SubmitReview(ctx, cmd.ChapterID, func(chapter entities.Chapter) (entities.Review, error) {
		return entities.NewReview(reviewID, chapter.ChapterID, cmd.Reviewer, cmd.Rating, cmd.Body, now)
	})
	if err != nil {
		logger.Warn("submit review failed",
			"event", "submit_review_failed",
			"module", "publishing-editorial/content-service",
			"layer", "application",
			"chapter_id", cmd.ChapterID,
			"reviewer", cmd.Reviewer,
			"error", err,
		)
		return entities.Review{}, err
	}

	logger.Info("review submitted",
		"event", "review_submitted",
		"module", "publishing-editorial/content-service",
		"layer", "application",
		"chapter_id", review.ChapterID,
		"review_id", review.ReviewID,
		"reviewer", review.Reviewer,
		"rating", review.Rating,
	)
	return review, nil
}
