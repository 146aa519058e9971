package queries

import (
	"context"
	"log/slog"
	"strings"

	application "folio/contexts/market-core/listing-service/application"
	"folio/contexts/market-core/listing-service/domain/entities"
	domainerrors "folio/contexts/market-core/listing-service/domain/errors"
	"folio/contexts/market-core/listing-service/ports"
)

// ListListingsUseCase returns every open listing for one marketplace.
type ListListingsUseCase struct {
	Repo   ports.ListingRepository
	Logger *slog.Logger
}

func (u ListListingsUseCase) Execute(ctx context.Context, marketplace string) ([]entities.Listing, error) {
	logger := application.ResolveLogger(u.Logger)

	marketplace = strings.TrimSpace(marketplace)
	if marketplace == "" {
		return nil, domainerrors.ErrInvalidListing
	}

	listings, err := u.Repo.ListListings(ctx, marketplace)
	if err != nil {
		logger.Error("list listings failed",
			"event", "list_listings_failed",
			"module", "market-core/listing-service",
			"layer", "application",
			"marketplace", marketplace,
			"error", err.Error(),
		)
		return nil, err
	}
	return listings, nil
}
