package commands

import (
	"context"
	"log/slog"

	application "folio/contexts/publishing-editorial/content-service/application"
	"folio/contexts/publishing-editorial/content-service/domain/entities"
	"folio/contexts/publishing-editorial/content-service/ports"
)

const writerRole = "writer"

// CreateBookCommand contains transport-agnostic input for book creation.
type CreateBookCommand struct {
	Writer       string
	CollectionID string
	Title        string
	Genre        string
	Capacity     int
}

// CreateBookUseCase creates a book at zero chapters.
type CreateBookUseCase struct {
	Repo              ports.ContentRepository
	Roles             ports.RolePolicy
	Clock             ports.Clock
	IDGenerator       ports.IDGenerator
	EnforceWriterRole bool
	Logger            *slog.Logger
}

func (u CreateBookUseCase) Execute(ctx context.Context, cmd CreateBookCommand) (entities.Book, error) {
	logger := application.ResolveLogger(u.Logger)

	if err := requireWriterRole(ctx, u.Roles, u.EnforceWriterRole, cmd.Writer); err != nil {
		logger.Warn("create book rejected by role policy",
			"event", "create_book_role_rejected",
			"module", "publishing-editorial/content-service",
			"layer", "application",
			"writer", cmd.Writer,
		)
		return entities.Book{}, err
	}

	bookID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Book{}, err
	}
	book, err := entities.NewBook(bookID, cmd.Writer, cmd.CollectionID, cmd.Title, cmd.Genre, cmd.Capacity, u.Clock.Now())
	if err != nil {
		return entities.Book{}, err
	}

	if err := u.Repo.CreateBook(ctx, book); err != nil {
		return entities.Book{}, err
	}

	logger.Info("book created",
		"event", "book_created",
		"module", "publishing-editorial/content-service",
		"layer", "application",
		"book_id", book.BookID,
		"writer", book.Writer,
		"collection_id", book.CollectionID,
		"capacity", book.Capacity,
	)
	return book, nil
}
