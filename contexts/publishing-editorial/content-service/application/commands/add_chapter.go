package commands

import (
	"context"
	"log/slog"

	application "folio/contexts/publishing-editorial/content-service/application"
	"folio/contexts/publishing-editorial/content-service/domain/entities"
	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
	"folio/contexts/publishing-editorial/content-service/ports"
)

const chapterAddedEventType = "chapter.added"

// AddChapterCommand contains transport-agnostic input for appending a chapter.
type AddChapterCommand struct {
	BookID  string
	Writer  string
	AssetID string
	Title   string
	Locator string
}

// AddChapterUseCase appends the next chapter to a book. Numbers are dense:
// the repository assigns chapter count + 1 under the book's key lock, so two
// racing appends never share a number and never skip one.
type AddChapterUseCase struct {
	Repo              ports.ContentRepository
	Assets            ports.AssetRegistry
	Roles             ports.RolePolicy
	Clock             ports.Clock
	IDGenerator       ports.IDGenerator
	EnforceWriterRole bool
	Logger            *slog.Logger
}

func (u AddChapterUseCase) Execute(ctx context.Context, cmd AddChapterCommand) (entities.Chapter, error) {
	logger := application.ResolveLogger(u.Logger)

	if err := requireWriterRole(ctx, u.Roles, u.EnforceWriterRole, cmd.Writer); err != nil {
		return entities.Chapter{}, err
	}

	asset, err := u.Assets.Get(ctx, cmd.AssetID)
	if err != nil {
		return entities.Chapter{}, err
	}

	chapterID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Chapter{}, err
	}
	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Chapter{}, err
	}
	now := u.Clock.Now()

	chapter, err := u.Repo.AppendChapter(ctx, cmd.BookID, func(book entities.Book) (entities.Chapter, ports.ChapterEvent, error) {
		if book.Writer != cmd.Writer {
			return entities.Chapter{}, ports.ChapterEvent{}, domainerrors.ErrNotWriter
		}
		if asset.CollectionID != book.CollectionID {
			return entities.Chapter{}, ports.ChapterEvent{}, domainerrors.ErrCollectionMismatch
		}
		number, err := book.NextChapterNumber()
		if err != nil {
			return entities.Chapter{}, ports.ChapterEvent{}, err
		}
		chapter, err := entities.NewChapter(chapterID, book.BookID, number, cmd.AssetID, cmd.Title, cmd.Locator, now)
		if err != nil {
			return entities.Chapter{}, ports.ChapterEvent{}, err
		}
		event := ports.ChapterEvent{
			EventID:      eventID,
			EventType:    chapterAddedEventType,
			ChapterID:    chapter.ChapterID,
			BookID:       book.BookID,
			Number:       chapter.Number,
			AssetID:      chapter.AssetID,
			Writer:       book.Writer,
			PartitionKey: book.BookID,
			OccurredAt:   now,
		}
		return chapter, event, nil
	})
	if err != nil {
		logger.Warn("add chapter failed",
			"event", "add_chapter_failed",
			"module", "publishing-editorial/content-service",
			"layer", "application",
			"book_id", cmd.BookID,
			"asset_id", cmd.AssetID,
			"error", err,
		)
		return entities.Chapter{}, err
	}

	logger.Info("chapter added",
		"event", "chapter_added",
		"module", "publishing-editorial/content-service",
		"layer", "application",
		"book_id", chapter.BookID,
		"chapter_id", chapter.ChapterID,
		"number", chapter.Number,
		"asset_id", chapter.AssetID,
	)
	return chapter, nil
}
