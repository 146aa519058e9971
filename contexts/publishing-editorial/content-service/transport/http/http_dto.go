package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateBookRequest struct {
	Writer       string `json:"writer"`
	CollectionID string `json:"collection_id"`
	Title        string `json:"title"`
	Genre        string `json:"genre"`
	Capacity     int    `json:"capacity"`
}

type BookDTO struct {
	BookID       string `json:"book_id"`
	Writer       string `json:"writer"`
	CollectionID string `json:"collection_id"`
	Title        string `json:"title"`
	Genre        string `json:"genre"`
	Capacity     int    `json:"capacity"`
	ChapterCount int    `json:"chapter_count"`
	CreatedAt    string `json:"created_at"`
}

type CreateBookResponse struct {
	Status string  `json:"status"`
	Data   BookDTO `json:"data"`
}

type GetBookResponse struct {
	Status string  `json:"status"`
	Data   BookDTO `json:"data"`
}

type AddChapterRequest struct {
	Writer  string `json:"writer"`
	AssetID string `json:"asset_id"`
	Title   string `json:"title"`
	Locator string `json:"locator"`
}

type ChapterDTO struct {
	ChapterID   string `json:"chapter_id"`
	BookID      string `json:"book_id"`
	Number      int    `json:"number"`
	AssetID     string `json:"asset_id"`
	Title       string `json:"title"`
	Locator     string `json:"locator"`
	Rating      int    `json:"rating"`
	ReviewCount int    `json:"review_count"`
	CreatedAt   string `json:"created_at"`
}

type AddChapterResponse struct {
	Status string     `json:"status"`
	Data   ChapterDTO `json:"data"`
}

type ListChaptersResponse struct {
	Status string       `json:"status"`
	Data   []ChapterDTO `json:"data"`
}

type SubmitReviewRequest struct {
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"`
	Body     string `json:"body"`
}

type ReviewDTO struct {
	ReviewID  string `json:"review_id"`
	ChapterID string `json:"chapter_id"`
	Reviewer  string `json:"reviewer"`
	Rating    int    `json:"rating"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type SubmitReviewResponse struct {
	Status string    `json:"status"`
	Data   ReviewDTO `json:"data"`
}

type ListReviewsResponse struct {
	Status string      `json:"status"`
	Data   []ReviewDTO `json:"data"`
}

type CreateExclusiveContentRequest struct {
	Locator string `json:"locator"`
	Author  string `json:"author"`
}

type ExclusiveContentDTO struct {
	CollectionID string `json:"collection_id"`
	Locator      string `json:"locator"`
	Author       string `json:"author"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"created_at"`
}

type CreateExclusiveContentResponse struct {
	Status string              `json:"status"`
	Data   ExclusiveContentDTO `json:"data"`
}

type VerifyAccessRequest struct {
	Claimant     string `json:"claimant"`
	AssetID      string `json:"asset_id"`
	CollectionID string `json:"collection_id"`
}

type VerifyAccessResponse struct {
	Status string `json:"status"`
	Data   struct {
		Claimant     string `json:"claimant"`
		AssetID      string `json:"asset_id"`
		CollectionID string `json:"collection_id"`
		Locator      string `json:"locator"`
	} `json:"data"`
}

type TipWriterRequest struct {
	Reader string `json:"reader"`
	Writer string `json:"writer"`
	Amount int64  `json:"amount"`
}

type TipWriterResponse struct {
	Status string `json:"status"`
	Data   struct {
		Reader string `json:"reader"`
		Writer string `json:"writer"`
		Amount int64  `json:"amount"`
	} `json:"data"`
}
