package ports

import (
	"context"
	"time"

	"folio/contexts/publishing-editorial/content-service/domain/entities"
	contractsv1 "folio/contracts/gen/events/v1"
)

// AssetRecord is the read-only registry view the access gate checks holdings
// against.
type AssetRecord struct {
	AssetID            string
	CollectionID       string
	Holder             string
	CollectionVerified bool
}

// AssetRegistry is the issuance collaborator. The content service only reads
// from it; custody never moves through this context.
type AssetRegistry interface {
	Get(ctx context.Context, assetID string) (AssetRecord, error)
}

// ValueLedger is the value-transfer collaborator used by tipping.
type ValueLedger interface {
	Transfer(ctx context.Context, from, to string, amount int64) error
}

// RolePolicy answers writer-role membership. The concrete policy is wired in
// the composition root; enforcement itself is a configuration decision.
type RolePolicy interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

// ChapterEvent is the outbound payload persisted with each appended chapter.
type ChapterEvent struct {
	EventID      string
	EventType    string
	ChapterID    string
	BookID       string
	Number       int
	AssetID      string
	Writer       string
	PartitionKey string
	OccurredAt   time.Time
}

// ContentRepository owns book, chapter, and exclusive-content persistence.
type ContentRepository interface {
	CreateBook(ctx context.Context, book entities.Book) error
	GetBook(ctx context.Context, bookID string) (entities.Book, error)

	// AppendChapter runs build while holding the book's key lock, then
	// persists the returned chapter, the incremented chapter count, and the
	// outbox event as one atomic unit. Concurrent appends against the same
	// book serialize here so no two chapters share a number.
	AppendChapter(ctx context.Context, bookID string, build func(entities.Book) (entities.Chapter, ChapterEvent, error)) (entities.Chapter, error)
	ListChapters(ctx context.Context, bookID string) ([]entities.Chapter, error)
	GetChapterByAsset(ctx context.Context, assetID string) (entities.Chapter, error)

	// SubmitReview runs build while holding the chapter's key lock, then
	// persists the review and the chapter's updated running rating as one
	// atomic unit. A second review by the same reviewer for the same chapter
	// fails with ErrDuplicateReview.
	SubmitReview(ctx context.Context, chapterID string, build func(entities.Chapter) (entities.Review, error)) (entities.Review, error)
	ListChapterReviews(ctx context.Context, chapterID string) ([]entities.Review, error)

	// CreateExclusiveContent fails with ErrDuplicateContent when a record
	// already exists for the collection.
	CreateExclusiveContent(ctx context.Context, content entities.ExclusiveContent) error
	GetExclusiveContent(ctx context.Context, collectionID string) (entities.ExclusiveContent, error)
}

// Clock allows deterministic testing of time-dependent rules.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts book/chapter/event identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// OutboxMessage is a row ready to relay from the module outbox.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
