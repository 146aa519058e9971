package errors

import "errors"

var (
	ErrInvalidBook          = errors.New("invalid book request")
	ErrBookNotFound         = errors.New("book not found")
	ErrNotWriter            = errors.New("caller is not an authorized writer")
	ErrCapacityExceeded     = errors.New("book chapter capacity exceeded")
	ErrInvalidChapter       = errors.New("invalid chapter request")
	ErrChapterNotFound      = errors.New("chapter not found")
	ErrCollectionMismatch   = errors.New("chapter asset does not belong to the book collection")
	ErrDuplicateContent     = errors.New("exclusive content already exists for this collection")
	ErrContentNotFound      = errors.New("exclusive content not found")
	ErrInvalidContent       = errors.New("invalid exclusive content request")
	ErrInvalidReview        = errors.New("invalid review request")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrDuplicateReview      = errors.New("reviewer already reviewed this chapter")
	ErrNotHolder            = errors.New("claimant does not hold the gating asset")
	ErrUnverifiedCollection = errors.New("gating asset collection is not verified")
	ErrAssetNotFound        = errors.New("asset not found")
	ErrZeroTip              = errors.New("tip amount must be greater than zero")
	ErrInsufficientFunds    = errors.New("insufficient funds for tip")
	ErrInvalidTip           = errors.New("invalid tip request")
)
