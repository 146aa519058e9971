package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "folio/contexts/publishing-editorial/content-service/application"
	"folio/contexts/publishing-editorial/content-service/application/commands"
	"folio/contexts/publishing-editorial/content-service/application/queries"
	"folio/contexts/publishing-editorial/content-service/domain/entities"
	httptransport "folio/contexts/publishing-editorial/content-service/transport/http"
)

type Handler struct {
	CreateBook             commands.CreateBookUseCase
	AddChapter             commands.AddChapterUseCase
	CreateExclusiveContent commands.CreateExclusiveContentUseCase
	SubmitReview           commands.SubmitReviewUseCase
	TipWriter              commands.TipWriterUseCase
	VerifyAccess           queries.VerifyAccessUseCase
	GetBook                queries.GetBookUseCase
	ListChapters           queries.ListChaptersUseCase
	ListReviews            queries.ListChapterReviewsUseCase
	Logger                 *slog.Logger
}

// CreateBookHandler godoc
// @Summary Create a book
// @Description Registers a writer-owned book with a fixed chapter capacity.
// @Tags content-service
// @Accept json
// @Produce json
// @Param request body httptransport.CreateBookRequest true "Book request"
// @Success 201 {object} httptransport.CreateBookResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /v1/books [post]
func (h Handler) CreateBookHandler(ctx context.Context, req httptransport.CreateBookRequest) (httptransport.CreateBookResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("create book request received",
		"event", "http_create_book_received",
		"module", "publishing-editorial/content-service",
		"layer", "transport",
		"writer", req.Writer,
		"collection_id", req.CollectionID,
	)

	book, err := h.CreateBook.Execute(ctx, commands.CreateBookCommand{
		Writer:       req.Writer,
		CollectionID: req.CollectionID,
		Title:        req.Title,
		Genre:        req.Genre,
		Capacity:     req.Capacity,
	})
	if err != nil {
		return httptransport.CreateBookResponse{}, err
	}
	return httptransport.CreateBookResponse{Status: "created", Data: mapBook(book)}, nil
}

// AddChapterHandler godoc
// @Summary Append a chapter
// @Description Appends the next chapter to a book; numbers are dense and capacity-bounded.
// @Tags content-service
// @Accept json
// @Produce json
// @Param book_id path string true "Book identifier"
// @Param request body httptransport.AddChapterRequest true "Chapter request"
// @Success 201 {object} httptransport.AddChapterResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/books/{book_id}/chapters [post]
func (h Handler) AddChapterHandler(ctx context.Context, bookID string, req httptransport.AddChapterRequest) (httptransport.AddChapterResponse, error) {
	chapter, err := h.AddChapter.Execute(ctx, commands.AddChapterCommand{
		BookID:  bookID,
		Writer:  req.Writer,
		AssetID: req.AssetID,
		Title:   req.Title,
		Locator: req.Locator,
	})
	if err != nil {
		return httptransport.AddChapterResponse{}, err
	}
	return httptransport.AddChapterResponse{Status: "created", Data: mapChapter(chapter)}, nil
}

// CreateExclusiveContentHandler godoc
// @Summary Register exclusive content
// @Description Registers the single gated payload for a collection.
// @Tags content-service
// @Accept json
// @Produce json
// @Param collection_id path string true "Collection identifier"
// @Param request body httptransport.CreateExclusiveContentRequest true "Content request"
// @Success 201 {object} httptransport.CreateExclusiveContentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/collections/{collection_id}/exclusive-content [post]
func (h Handler) CreateExclusiveContentHandler(ctx context.Context, collectionID string, req httptransport.CreateExclusiveContentRequest) (httptransport.CreateExclusiveContentResponse, error) {
	content, err := h.CreateExclusiveContent.Execute(ctx, commands.CreateExclusiveContentCommand{
		CollectionID: collectionID,
		Locator:      req.Locator,
		Author:       req.Author,
	})
	if err != nil {
		return httptransport.CreateExclusiveContentResponse{}, err
	}
	return httptransport.CreateExclusiveContentResponse{
		Status: "created",
		Data: httptransport.ExclusiveContentDTO{
			CollectionID: content.CollectionID,
			Locator:      content.Locator,
			Author:       content.Author,
			Active:       content.Active,
			CreatedAt:    content.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}

// SubmitReviewHandler godoc
// @Summary Review a chapter
// @Description Records a 1-5 rating for a chapter; one review per reviewer per chapter.
// @Tags content-service
// @Accept json
// @Produce json
// @Param chapter_id path string true "Chapter identifier"
// @Param request body httptransport.SubmitReviewRequest true "Review request"
// @Success 201 {object} httptransport.SubmitReviewResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/chapters/{chapter_id}/reviews [post]
func (h Handler) SubmitReviewHandler(ctx context.Context, chapterID string, req httptransport.SubmitReviewRequest) (httptransport.SubmitReviewResponse, error) {
	review, err := h.SubmitReview.Execute(ctx, commands.SubmitReviewCommand{
		ChapterID: chapterID,
		Reviewer:  req.Reviewer,
		Rating:    req.Rating,
		Body:      req.Body,
	})
	if err != nil {
		return httptransport.SubmitReviewResponse{}, err
	}
	return httptransport.SubmitReviewResponse{Status: "created", Data: mapReview(review)}, nil
}

// ListReviewsHandler godoc
// @Summary List a chapter's reviews
// @Tags content-service
// @Produce json
// @Param chapter_id path string true "Chapter identifier"
// @Success 200 {object} httptransport.ListReviewsResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/chapters/{chapter_id}/reviews [get]
func (h Handler) ListReviewsHandler(ctx context.Context, chapterID string) (httptransport.ListReviewsResponse, error) {
	reviews, err := h.ListReviews.Execute(ctx, chapterID)
	if err != nil {
		return httptransport.ListReviewsResponse{}, err
	}

	data := make([]httptransport.ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		data = append(data, mapReview(review))
	}
	return httptransport.ListReviewsResponse{Status: "ok", Data: data}, nil
}

// VerifyAccessHandler godoc
// @Summary Verify content access
// @Description Grants the gated locator when the claimant currently holds the verified chapter asset of the collection.
// @Tags content-service
// @Accept json
// @Produce json
// @Param request body httptransport.VerifyAccessRequest true "Access claim"
// @Success 200 {object} httptransport.VerifyAccessResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/access/verify [post]
func (h Handler) VerifyAccessHandler(ctx context.Context, req httptransport.VerifyAccessRequest) (httptransport.VerifyAccessResponse, error) {
	result, err := h.VerifyAccess.Execute(ctx, queries.VerifyAccessQuery{
		Claimant:     req.Claimant,
		AssetID:      req.AssetID,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		return httptransport.VerifyAccessResponse{}, err
	}

	resp := httptransport.VerifyAccessResponse{Status: "granted"}
	resp.Data.Claimant = result.Claimant
	resp.Data.AssetID = result.AssetID
	resp.Data.CollectionID = result.CollectionID
	resp.Data.Locator = result.Locator
	return resp, nil
}

// TipWriterHandler godoc
// @Summary Tip a writer
// @Description Transfers a direct gratuity from a reader to a writer.
// @Tags content-service
// @Accept json
// @Produce json
// @Param request body httptransport.TipWriterRequest true "Tip request"
// @Success 200 {object} httptransport.TipWriterResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 402 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /v1/tips [post]
func (h Handler) TipWriterHandler(ctx context.Context, req httptransport.TipWriterRequest) (httptransport.TipWriterResponse, error) {
	err := h.TipWriter.Execute(ctx, commands.TipWriterCommand{
		Reader: req.Reader,
		Writer: req.Writer,
		Amount: req.Amount,
	})
	if err != nil {
		return httptransport.TipWriterResponse{}, err
	}

	resp := httptransport.TipWriterResponse{Status: "tipped"}
	resp.Data.Reader = req.Reader
	resp.Data.Writer = req.Writer
	resp.Data.Amount = req.Amount
	return resp, nil
}

// GetBookHandler godoc
// @Summary Get one book
// @Tags content-service
// @Produce json
// @Param book_id path string true "Book identifier"
// @Success 200 {object} httptransport.GetBookResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/books/{book_id} [get]
func (h Handler) GetBookHandler(ctx context.Context, bookID string) (httptransport.GetBookResponse, error) {
	book, err := h.GetBook.Execute(ctx, bookID)
	if err != nil {
		return httptransport.GetBookResponse{}, err
	}
	return httptransport.GetBookResponse{Status: "ok", Data: mapBook(book)}, nil
}

// ListChaptersHandler godoc
// @Summary List a book's chapters
// @Tags content-service
// @Produce json
// @Param book_id path string true "Book identifier"
// @Success 200 {object} httptransport.ListChaptersResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/books/{book_id}/chapters [get]
func (h Handler) ListChaptersHandler(ctx context.Context, bookID string) (httptransport.ListChaptersResponse, error) {
	chapters, err := h.ListChapters.Execute(ctx, bookID)
	if err != nil {
		return httptransport.ListChaptersResponse{}, err
	}

	data := make([]httptransport.ChapterDTO, 0, len(chapters))
	for _, chapter := range chapters {
		data = append(data, mapChapter(chapter))
	}
	return httptransport.ListChaptersResponse{Status: "ok", Data: data}, nil
}

func mapBook(book entities.Book) httptransport.BookDTO {
	return httptransport.BookDTO{
		BookID:       book.BookID,
		Writer:       book.Writer,
		CollectionID: book.CollectionID,
		Title:        book.Title,
		Genre:        book.Genre,
		Capacity:     book.Capacity,
		ChapterCount: book.ChapterCount,
		CreatedAt:    book.CreatedAt.Format(time.RFC3339),
	}
}

func mapChapter(chapter entities.Chapter) httptransport.ChapterDTO {
	return httptransport.ChapterDTO{
		ChapterID:   chapter.ChapterID,
		BookID:      chapter.BookID,
		Number:      chapter.Number,
		AssetID:     chapter.AssetID,
		Title:       chapter.Title,
		Locator:     chapter.Locator,
		Rating:      chapter.Rating,
		ReviewCount: chapter.ReviewCount,
		CreatedAt:   chapter.CreatedAt.Format(time.RFC3339),
	}
}

func mapReview(review entities.Review) httptransport.ReviewDTO {
	return httptransport.ReviewDTO{
		ReviewID:  review.ReviewID,
		ChapterID: review.ChapterID,
		Reviewer:  review.Reviewer,
		Rating:    review.Rating,
		Body:      review.Body,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	}
}
