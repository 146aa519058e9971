package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	application "folio/contexts/publishing-editorial/content-service/application"
	"folio/contexts/publishing-editorial/content-service/domain/entities"
	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
	"folio/contexts/publishing-editorial/content-service/ports"
)

// Store is an in-memory adapter implementing the content-service ports for
// local runtime and tests. It is not intended as production persistence.
//
// A single mutex critical section approximates transactional semantics:
// AppendChapter holds the lock across the build callback, so concurrent
// appends against one book serialize and chapter numbers stay dense.
type Store struct {
	mu          sync.RWMutex
	books       map[string]entities.Book
	chapters    map[string][]entities.Chapter
	byAsset     map[string]entities.Chapter
	byChapter   map[string]entities.Chapter
	exclusive   map[string]entities.ExclusiveContent
	reviews     map[string]entities.Review
	reviewOrder map[string][]string
	outbox      map[string]ports.OutboxMessage
	outboxOrder []string
	outboxSent  map[string]time.Time
	sequence    uint64
	logger      *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		books:       make(map[string]entities.Book),
		chapters:    make(map[string][]entities.Chapter),
		byAsset:     make(map[string]entities.Chapter),
		byChapter:   make(map[string]entities.Chapter),
		exclusive:   make(map[string]entities.ExclusiveContent),
		reviews:     make(map[string]entities.Review),
		reviewOrder: make(map[string][]string),
		outbox:      make(map[string]ports.OutboxMessage),
		outboxOrder: make([]string, 0),
		outboxSent:  make(map[string]time.Time),
		logger:      application.ResolveLogger(logger),
	}
}

func (s *Store) CreateBook(_ context.Context, book entities.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[book.BookID]; ok {
		return domainerrors.ErrInvalidBook
	}
	s.books[book.BookID] = book
	return nil
}

func (s *Store) GetBook(_ context.Context, bookID string) (entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[bookID]
	if !ok {
		return entities.Book{}, domainerrors.ErrBookNotFound
	}
	return book, nil
}

func (s *Store) AppendChapter(_ context.Context, bookID string, build func(entities.Book) (entities.Chapter, ports.ChapterEvent, error)) (entities.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return entities.Chapter{}, domainerrors.ErrBookNotFound
	}
	chapter, event, err := build(book)
	if err != nil {
		return entities.Chapter{}, err
	}
	if _, ok := s.byAsset[chapter.AssetID]; ok {
		return entities.Chapter{}, domainerrors.ErrDuplicateContent
	}

	payload, err := marshalChapterEnvelope(event)
	if err != nil {
		return entities.Chapter{}, err
	}

	book.ChapterCount++
	s.books[bookID] = book
	s.chapters[bookID] = append(s.chapters[bookID], chapter)
	s.byAsset[chapter.AssetID] = chapter
	s.byChapter[chapter.ChapterID] = chapter
	s.appendOutbox(event, payload)

	s.logger.Debug("chapter stored",
		"event", "memory_chapter_appended",
		"module", "publishing-editorial/content-service",
		"layer", "adapter",
		"book_id", bookID,
		"chapter_id", chapter.ChapterID,
		"number", chapter.Number,
	)
	return chapter, nil
}

func (s *Store) ListChapters(_ context.Context, bookID string) ([]entities.Chapter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chapters := make([]entities.Chapter, len(s.chapters[bookID]))
	copy(chapters, s.chapters[bookID])
	sort.Slice(chapters, func(i, j int) bool {
		return chapters[i].Number < chapters[j].Number
	})
	return chapters, nil
}

func (s *Store) GetChapterByAsset(_ context.Context, assetID string) (entities.Chapter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chapter, ok := s.byAsset[assetID]
	if !ok {
		return entities.Chapter{}, domainerrors.ErrChapterNotFound
	}
	return chapter, nil
}

func (s *Store) SubmitReview(_ context.Context, chapterID string, build func(entities.Chapter) (entities.Review, error)) (entities.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chapter, ok := s.byChapter[chapterID]
	if !ok {
		return entities.Review{}, domainerrors.ErrChapterNotFound
	}
	review, err := build(chapter)
	if err != nil {
		return entities.Review{}, err
	}
	key := review.Reviewer + "/" + chapterID
	if _, ok := s.reviews[key]; ok {
		return entities.Review{}, domainerrors.ErrDuplicateReview
	}

	s.reviews[key] = review
	s.reviewOrder[chapterID] = append(s.reviewOrder[chapterID], key)
	s.storeChapter(chapter.ApplyRating(review.Rating))

	s.logger.Debug("review stored",
		"event", "memory_review_submitted",
		"module", "publishing-editorial/content-service",
		"layer", "adapter",
		"chapter_id", chapterID,
		"reviewer", review.Reviewer,
		"rating", review.Rating,
	)
	return review, nil
}

func (s *Store) ListChapterReviews(_ context.Context, chapterID string) ([]entities.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.byChapter[chapterID]; !ok {
		return nil, domainerrors.ErrChapterNotFound
	}
	reviews := make([]entities.Review, 0, len(s.reviewOrder[chapterID]))
	for _, key := range s.reviewOrder[chapterID] {
		if review, ok := s.reviews[key]; ok {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

// storeChapter rewrites one chapter in every index. Callers hold the lock.
func (s *Store) storeChapter(chapter entities.Chapter) {
	s.byChapter[chapter.ChapterID] = chapter
	s.byAsset[chapter.AssetID] = chapter
	list := s.chapters[chapter.BookID]
	for i := range list {
		if list[i].ChapterID == chapter.ChapterID {
			list[i] = chapter
			break
		}
	}
}

func (s *Store) CreateExclusiveContent(_ context.Context, content entities.ExclusiveContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.exclusive[content.CollectionID]; ok {
		return domainerrors.ErrDuplicateContent
	}
	s.exclusive[content.CollectionID] = content
	return nil
}

func (s *Store) GetExclusiveContent(_ context.Context, collectionID string) (entities.ExclusiveContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.exclusive[collectionID]
	if !ok || !content.Active {
		return entities.ExclusiveContent{}, domainerrors.ErrContentNotFound
	}
	return content, nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]ports.OutboxMessage, 0, limit)
	for _, id := range s.outboxOrder {
		if _, sent := s.outboxSent[id]; sent {
			continue
		}
		if message, ok := s.outbox[id]; ok {
			pending = append(pending, message)
		}
		if limit > 0 && len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outboxSent[outboxID] = sentAt.UTC()
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("chp-%d", value), nil
}

// OutboxEvents exposes every appended event in order for tests.
func (s *Store) OutboxEvents() []ports.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]ports.OutboxMessage, 0, len(s.outboxOrder))
	for _, id := range s.outboxOrder {
		if message, ok := s.outbox[id]; ok {
			events = append(events, message)
		}
	}
	return events
}

func (s *Store) appendOutbox(event ports.ChapterEvent, payload []byte) {
	s.outbox[event.EventID] = ports.OutboxMessage{
		OutboxID:     event.EventID,
		EventType:    event.EventType,
		PartitionKey: event.PartitionKey,
		Payload:      payload,
		CreatedAt:    event.OccurredAt.UTC(),
	}
	s.outboxOrder = append(s.outboxOrder, event.EventID)
}

func marshalChapterEnvelope(event ports.ChapterEvent) ([]byte, error) {
	envelope := ports.EventEnvelope{
		EventID:          event.EventID,
		EventType:        event.EventType,
		OccurredAt:       event.OccurredAt.UTC(),
		SourceService:    "content-service",
		SchemaVersion:    1,
		PartitionKeyPath: "book_id",
		PartitionKey:     event.PartitionKey,
	}
	data, err := json.Marshal(map[string]any{
		"chapter_id": event.ChapterID,
		"book_id":    event.BookID,
		"number":     event.Number,
		"asset_id":   event.AssetID,
		"writer":     event.Writer,
	})
	if err != nil {
		return nil, err
	}
	envelope.Data = data
	return json.Marshal(envelope)
}
