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

// GetListingUseCase reads a single open listing. Absence is the closed state:
// a purchased or cancelled listing reports ErrListingNotFound, never a stale
// snapshot.
type GetListingUseCase struct {
	Repo   ports.ListingRepository
	Logger *slog.Logger
}

func (u GetListingUseCase) Execute(ctx context.Context, marketplace, assetID string) (entities.Listing, error) {
	logger := application.ResolveLogger(u.Logger)

	marketplace = strings.TrimSpace(marketplace)
	assetID = strings.TrimSpace(assetID)
	if marketplace == "" || assetID == "" {
		return entities.Listing{}, domainerrors.ErrInvalidListing
	}

	listing, err := u.Repo.GetListing(ctx, marketplace, assetID)
	if err != nil {
		logger.Debug("get listing missed",
			"event", "get_listing_missed",
			"module", "market-core/listing-service",
			"layer", "application",
			"marketplace", marketplace,
			"asset_id", assetID,
		)
		return entities.Listing{}, err
	}
	return listing, nil
}
