package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "folio/contexts/market-core/listing-service/application"
	"folio/contexts/market-core/listing-service/domain/entities"
	domainerrors "folio/contexts/market-core/listing-service/domain/errors"
	"folio/contexts/market-core/listing-service/ports"
)

const cancelledEventType = "listing.cancelled"

// CancelListingCommand contains transport-agnostic cancel input.
type CancelListingCommand struct {
	Marketplace string
	AssetID     string
	Maker       string
}

// CancelListingUseCase returns escrowed custody to the maker and deletes the
// listing. Only the original maker may cancel; a non-maker caller leaves the
// listing and vault untouched.
type CancelListingUseCase struct {
	Repo        ports.ListingRepository
	Assets      ports.AssetRegistry
	Funds       ports.ValueLedger
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CancelListingUseCase) Execute(ctx context.Context, cmd CancelListingCommand) (entities.Listing, error) {
	logger := application.ResolveLogger(u.Logger)

	marketplace := strings.TrimSpace(cmd.Marketplace)
	assetID := strings.TrimSpace(cmd.AssetID)
	maker := strings.TrimSpace(cmd.Maker)
	if marketplace == "" || assetID == "" || maker == "" {
		return entities.Listing{}, domainerrors.ErrInvalidListing
	}

	var cancelled entities.Listing
	err := u.Repo.ResolveListing(ctx, marketplace, assetID, func(listing entities.Listing, vault entities.Vault) (ports.ListingEvent, error) {
		if listing.Maker != maker {
			return ports.ListingEvent{}, domainerrors.ErrNotMaker
		}

		if err := u.Assets.Transfer(ctx, listing.AssetID, vault.VaultKey, listing.Maker); err != nil {
			return ports.ListingEvent{}, err
		}
		if vault.RentUnits > 0 {
			if err := u.Funds.Settle(ctx, vault.VaultKey, []ports.Credit{{To: vault.Maker, Amount: vault.RentUnits}}); err != nil {
				logger.Error("vault rent reclaim failed",
					"event", "cancel_rent_reclaim_failed",
					"module", "market-core/listing-service",
					"layer", "application",
					"vault_key", vault.VaultKey,
					"error", err.Error(),
				)
			}
		}

		eventID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			eventID = listing.ListingID + ":cancelled"
		}
		cancelled = listing
		return ports.ListingEvent{
			EventID:      eventID,
			EventType:    cancelledEventType,
			ListingID:    listing.ListingID,
			Marketplace:  listing.Marketplace,
			AssetID:      listing.AssetID,
			Maker:        listing.Maker,
			Price:        listing.Price,
			PartitionKey: listing.AssetID,
			OccurredAt:   u.now(),
		}, nil
	})
	if err != nil {
		logger.Warn("cancel listing failed",
			"event", "cancel_listing_failed",
			"module", "market-core/listing-service",
			"layer", "application",
			"marketplace", marketplace,
			"asset_id", assetID,
			"maker", maker,
			"error", err.Error(),
		)
		return entities.Listing{}, err
	}

	logger.Info("listing cancelled",
		"event", "listing_cancelled",
		"module", "market-core/listing-service",
		"layer", "application",
		"listing_id", cancelled.ListingID,
		"asset_id", cancelled.AssetID,
		"maker", cancelled.Maker,
	)
	return cancelled, nil
}

func (u CancelListingUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
