package commands

import (
	"context"
	"log/slog"

	application "folio/contexts/publishing-editorial/content-service/application"
	"folio/contexts/publishing-editorial/content-service/domain/entities"
	"folio/contexts/publishing-editorial/content-service/ports"
)

// CreateExclusiveContentCommand contains transport-agnostic input for
// registering gated content against a collection.
type CreateExclusiveContentCommand struct {
	CollectionID string
	Locator      string
	Author       string
}

// CreateExclusiveContentUseCase registers the single gated payload for a
// collection. A second registration for the same collection fails with
// ErrDuplicateContent.
type CreateExclusiveContentUseCase struct {
	Repo              ports.ContentRepository
	Roles             ports.RolePolicy
	Clock             ports.Clock
	EnforceWriterRole bool
	Logger            *slog.Logger
}

func (u CreateExclusiveContentUseCase) Execute(ctx context.Context, cmd CreateExclusiveContentCommand) (entities.ExclusiveContent, error) {
	logger := application.ResolveLogger(u.Logger)

	if err := requireWriterRole(ctx, u.Roles, u.EnforceWriterRole, cmd.Author); err != nil {
		return entities.ExclusiveContent{}, err
	}

	content, err := entities.NewExclusiveContent(cmd.CollectionID, cmd.Locator, cmd.Author, u.Clock.Now())
	if err != nil {
		return entities.ExclusiveContent{}, err
	}
	if err := u.Repo.CreateExclusiveContent(ctx, content); err != nil {
		return entities.ExclusiveContent{}, err
	}

	logger.Info("exclusive content registered",
		"event", "exclusive_content_registered",
		"module", "publishing-editorial/content-service",
		"layer", "application",
		"collection_id", content.CollectionID,
		"author", content.Author,
	)
	return content, nil
}
