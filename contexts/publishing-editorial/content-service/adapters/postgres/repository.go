package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"folio/contexts/publishing-editorial/content-service/domain/entities"
	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
	"folio/contexts/publishing-editorial/content-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
)

// Repository implements the content-service ports on Postgres. AppendChapter
// serializes concurrent appends against one book with a row lock, so chapter
// numbers stay dense under contention.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates the content-service tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&bookModel{},
		&chapterModel{},
		&reviewModel{},
		&exclusiveContentModel{},
		&outboxModel{},
	)
}

func (r *Repository) CreateBook(ctx context.Context, book entities.Book) error {
	row := bookModelFromEntity(book)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidBook
		}
		return err
	}
	return nil
}

func (r *Repository) GetBook(ctx context.Context, bookID string) (entities.Book, error) {
	var row bookModel
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Book{}, domainerrors.ErrBookNotFound
		}
		return entities.Book{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) AppendChapter(ctx context.Context, bookID string, build func(entities.Book) (entities.Chapter, ports.ChapterEvent, error)) (entities.Chapter, error) {
	var appended entities.Chapter
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bookRow bookModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("book_id = ?", bookID).
			First(&bookRow).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrBookNotFound
			}
			return err
		}

		chapter, event, err := build(bookRow.toEntity())
		if err != nil {
			return err
		}

		payload, err := marshalChapterEnvelope(event)
		if err != nil {
			return err
		}

		chapterRow := chapterModelFromEntity(chapter)
		if err := tx.Create(&chapterRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateContent
			}
			return err
		}

		err = tx.Model(&bookModel{}).
			Where("book_id = ?", bookID).
			Update("chapter_count", gorm.Expr("chapter_count + 1")).
			Error
		if err != nil {
			return err
		}

		outboxRow := outboxModel{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.PartitionKey,
			Payload:      payload,
			Status:       outboxStatusPending,
			CreatedAt:    event.OccurredAt.UTC(),
		}
		if err := tx.Create(&outboxRow).Error; err != nil {
			return err
		}

		appended = chapter
		return nil
	})
	if err != nil {
		return entities.Chapter{}, err
	}
	return appended, nil
}

func (r *Repository) ListChapters(ctx context.Context, bookID string) ([]entities.Chapter, error) {
	var rows []chapterModel
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("number ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	chapters := make([]entities.Chapter, 0, len(rows))
	for _, row := range rows {
		chapters = append(chapters, row.toEntity())
	}
	return chapters, nil
}

func (r *Repository) GetChapterByAsset(ctx context.Context, assetID string) (entities.Chapter, error) {
	var row chapterModel
	err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Chapter{}, domainerrors.ErrChapterNotFound
		}
		return entities.Chapter{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) SubmitReview(ctx context.Context, chapterID string, build func(entities.Chapter) (entities.Review, error)) (entities.Review, error) {
	var submitted entities.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var chapterRow chapterModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("chapter_id = ?", chapterID).
			First(&chapterRow).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrChapterNotFound
			}
			return err
		}

		review, err := build(chapterRow.toEntity())
		if err != nil {
			return err
		}

		reviewRow := reviewModelFromEntity(review)
		if err := tx.Create(&reviewRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateReview
			}
			return err
		}

		rated := chapterRow.toEntity().ApplyRating(review.Rating)
		err = tx.Model(&chapterModel{}).
			Where("chapter_id = ?", chapterID).
			Updates(map[string]any{"rating": rated.Rating, "review_count": rated.ReviewCount}).
			Error
		if err != nil {
			return err
		}

		submitted = review
		return nil
	})
	if err != nil {
		return entities.Review{}, err
	}
	return submitted, nil
}

func (r *Repository) ListChapterReviews(ctx context.Context, chapterID string) ([]entities.Review, error) {
	var chapterRow chapterModel
	err := r.db.WithContext(ctx).Where("chapter_id = ?", chapterID).First(&chapterRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrChapterNotFound
		}
		return nil, err
	}

	var rows []reviewModel
	err = r.db.WithContext(ctx).
		Where("chapter_id = ?", chapterID).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	reviews := make([]entities.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, row.toEntity())
	}
	return reviews, nil
}

func (r *Repository) CreateExclusiveContent(ctx context.Context, content entities.ExclusiveContent) error {
	row := exclusiveContentModel{
		CollectionID: content.CollectionID,
		Locator:      content.Locator,
		Author:       content.Author,
		Active:       content.Active,
		CreatedAt:    content.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateContent
		}
		return err
	}
	return nil
}

func (r *Repository) GetExclusiveContent(ctx context.Context, collectionID string) (entities.ExclusiveContent, error) {
	var row exclusiveContentModel
	err := r.db.WithContext(ctx).
		Where("collection_id = ? AND active = ?", collectionID, true).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ExclusiveContent{}, domainerrors.ErrContentNotFound
		}
		return entities.ExclusiveContent{}, err
	}
	return entities.ExclusiveContent{
		CollectionID: row.CollectionID,
		Locator:      row.Locator,
		Author:       row.Author,
		Active:       row.Active,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      row.Payload,
			CreatedAt:    row.CreatedAt,
		})
	}
	return messages, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{"status": outboxStatusSent, "sent_at": sentAt.UTC()}).
		Error
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type bookModel struct {
	BookID       string    `gorm:"column:book_id;primaryKey"`
	Writer       string    `gorm:"column:writer;index"`
	CollectionID string    `gorm:"column:collection_id;index"`
	Title        string    `gorm:"column:title"`
	Genre        string    `gorm:"column:genre"`
	Capacity     int       `gorm:"column:capacity"`
	ChapterCount int       `gorm:"column:chapter_count"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (bookModel) TableName() string { return "books" }

func bookModelFromEntity(book entities.Book) bookModel {
	return bookModel{
		BookID:       book.BookID,
		Writer:       book.Writer,
		CollectionID: book.CollectionID,
		Title:        book.Title,
		Genre:        book.Genre,
		Capacity:     book.Capacity,
		ChapterCount: book.ChapterCount,
		CreatedAt:    book.CreatedAt,
	}
}

func (m bookModel) toEntity() entities.Book {
	return entities.Book{
		BookID:       m.BookID,
		Writer:       m.Writer,
		CollectionID: m.CollectionID,
		Title:        m.Title,
		Genre:        m.Genre,
		Capacity:     m.Capacity,
		ChapterCount: m.ChapterCount,
		CreatedAt:    m.CreatedAt,
	}
}

type chapterModel struct {
	ChapterID   string    `gorm:"column:chapter_id;primaryKey"`
	BookID      string    `gorm:"column:book_id;uniqueIndex:chapters_unique_number,priority:1"`
	Number      int       `gorm:"column:number;uniqueIndex:chapters_unique_number,priority:2"`
	AssetID     string    `gorm:"column:asset_id;uniqueIndex"`
	Title       string    `gorm:"column:title"`
	Locator     string    `gorm:"column:locator"`
	Rating      int       `gorm:"column:rating"`
	ReviewCount int       `gorm:"column:review_count"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (chapterModel) TableName() string { return "chapters" }

func chapterModelFromEntity(chapter entities.Chapter) chapterModel {
	return chapterModel{
		ChapterID:   chapter.ChapterID,
		BookID:      chapter.BookID,
		Number:      chapter.Number,
		AssetID:     chapter.AssetID,
		Title:       chapter.Title,
		Locator:     chapter.Locator,
		Rating:      chapter.Rating,
		ReviewCount: chapter.ReviewCount,
		CreatedAt:   chapter.CreatedAt,
	}
}

func (m chapterModel) toEntity() entities.Chapter {
	return entities.Chapter{
		ChapterID:   m.ChapterID,
		BookID:      m.BookID,
		Number:      m.Number,
		AssetID:     m.AssetID,
		Title:       m.Title,
		Locator:     m.Locator,
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		CreatedAt:   m.CreatedAt,
	}
}

type reviewModel struct {
	ReviewID  string    `gorm:"column:review_id;primaryKey"`
	ChapterID string    `gorm:"column:chapter_id;uniqueIndex:reviews_unique_reviewer,priority:1"`
	Reviewer  string    `gorm:"column:reviewer;uniqueIndex:reviews_unique_reviewer,priority:2"`
	Rating    int       `gorm:"column:rating"`
	Body      string    `gorm:"column:body"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "chapter_reviews" }

func reviewModelFromEntity(review entities.Review) reviewModel {
	return reviewModel{
		ReviewID:  review.ReviewID,
		ChapterID: review.ChapterID,
		Reviewer:  review.Reviewer,
		Rating:    review.Rating,
		Body:      review.Body,
		CreatedAt: review.CreatedAt,
	}
}

func (m reviewModel) toEntity() entities.Review {
	return entities.Review{
		ReviewID:  m.ReviewID,
		ChapterID: m.ChapterID,
		Reviewer:  m.Reviewer,
		Rating:    m.Rating,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

type exclusiveContentModel struct {
	CollectionID string    `gorm:"column:collection_id;primaryKey"`
	Locator      string    `gorm:"column:locator"`
	Author       string    `gorm:"column:author"`
	Active       bool      `gorm:"column:active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (exclusiveContentModel) TableName() string { return "exclusive_contents" }

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SentAt       *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string { return "content_outbox" }
