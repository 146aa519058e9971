package errors

import "errors"

var (
	ErrMarketplaceExists    = errors.New("marketplace already initialized")
	ErrMarketplaceNotFound  = errors.New("marketplace not found")
	ErrInvalidFeeRate       = errors.New("fee rate must be between 0 and 100")
	ErrInvalidMarketplace   = errors.New("invalid marketplace configuration")
	ErrInvalidListing       = errors.New("invalid listing request")
	ErrZeroPrice            = errors.New("listing price must be greater than zero")
	ErrNotHolder            = errors.New("caller does not hold the asset")
	ErrNotMaker             = errors.New("caller is not the listing maker")
	ErrDuplicateListing     = errors.New("an open listing already exists for this asset")
	ErrListingNotFound      = errors.New("listing not found")
	ErrVaultEmpty           = errors.New("vault is empty or already released")
	ErrAssetNotFound        = errors.New("asset not found")
	ErrUnverifiedCollection = errors.New("asset collection is not verified")
	ErrInsufficientFunds    = errors.New("insufficient funds to settle purchase")
	ErrIdempotencyConflict  = errors.New("idempotency key reused with different request")
)
