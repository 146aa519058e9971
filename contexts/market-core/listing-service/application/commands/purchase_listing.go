package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "folio/contexts/market-core/listing-service/application"
	"folio/contexts/market-core/listing-service/domain/entities"
	domainerrors "folio/contexts/market-core/listing-service/domain/errors"
	"folio/contexts/market-core/listing-service/domain/services"
	"folio/contexts/market-core/listing-service/ports"
)

const purchasedEventType = "listing.purchased"

// PurchaseListingCommand contains transport-agnostic purchase input.
type PurchaseListingCommand struct {
	Marketplace string
	AssetID     string
	Taker       string
}

// PurchaseListingResult reports the closed listing and the applied fee split.
type PurchaseListingResult struct {
	Listing        entities.Listing
	FeePaid        int64
	SellerProceeds int64
}

// PurchaseListingUseCase resolves an open listing: payment settles, custody
// moves to the taker, the vault deposit returns to the maker, and the listing
// record is deleted. All of it runs inside the repository's per-listing
// critical section, so exactly one of two racing purchase/cancel requests
// can win.
type PurchaseListingUseCase struct {
	Repo        ports.ListingRepository
	Assets      ports.AssetRegistry
	Funds       ports.ValueLedger
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u PurchaseListingUseCase) Execute(ctx context.Context, cmd PurchaseListingCommand) (PurchaseListingResult, error) {
	logger := application.ResolveLogger(u.Logger)

	marketplace := strings.TrimSpace(cmd.Marketplace)
	assetID := strings.TrimSpace(cmd.AssetID)
	taker := strings.TrimSpace(cmd.Taker)
	if marketplace == "" || assetID == "" || taker == "" {
		return PurchaseListingResult{}, domainerrors.ErrInvalidListing
	}

	logger.Info("purchase listing started",
		"event", "purchase_listing_started",
		"module", "market-core/listing-service",
		"layer", "application",
		"marketplace", marketplace,
		"asset_id", assetID,
		"taker", taker,
	)

	config, err := u.Repo.GetMarketplace(ctx, marketplace)
	if err != nil {
		return PurchaseListingResult{}, err
	}

	var result PurchaseListingResult
	err = u.Repo.ResolveListing(ctx, marketplace, assetID, func(listing entities.Listing, vault entities.Vault) (ports.ListingEvent, error) {
		fee, proceeds := services.Split(listing.Price, config.FeeRatePercent)

		credits := make([]ports.Credit, 0, 2)
		if proceeds > 0 {
			credits = append(credits, ports.Credit{To: listing.Maker, Amount: proceeds})
		}
		if fee > 0 {
			credits = append(credits, ports.Credit{To: config.Treasury, Amount: fee})
		}
		if err := u.Funds.Settle(ctx, taker, credits); err != nil {
			return ports.ListingEvent{}, err
		}

		// The vault holds the asset for as long as the listing exists, so
		// this move can only fail if the escrow invariant is already broken.
		// In that case the payment is reversed and the listing kept.
		if err := u.Assets.Transfer(ctx, listing.AssetID, vault.VaultKey, taker); err != nil {
			u.reverseSettle(ctx, logger, taker, credits)
			return ports.ListingEvent{}, err
		}

		if vault.RentUnits > 0 {
			if err := u.Funds.Settle(ctx, vault.VaultKey, []ports.Credit{{To: vault.Maker, Amount: vault.RentUnits}}); err != nil {
				logger.Error("vault rent reclaim failed",
					"event", "purchase_rent_reclaim_failed",
					"module", "market-core/listing-service",
					"layer", "application",
					"vault_key", vault.VaultKey,
					"error", err.Error(),
				)
			}
		}

		eventID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			eventID = listing.ListingID + ":purchased"
		}
		result = PurchaseListingResult{Listing: listing, FeePaid: fee, SellerProceeds: proceeds}
		return ports.ListingEvent{
			EventID:      eventID,
			EventType:    purchasedEventType,
			ListingID:    listing.ListingID,
			Marketplace:  listing.Marketplace,
			AssetID:      listing.AssetID,
			Maker:        listing.Maker,
			Taker:        taker,
			Price:        listing.Price,
			FeePaid:      fee,
			PartitionKey: listing.AssetID,
			OccurredAt:   u.now(),
		}, nil
	})
	if err != nil {
		logger.Warn("purchase listing failed",
			"event", "purchase_listing_failed",
			"module", "market-core/listing-service",
			"layer", "application",
			"marketplace", marketplace,
			"asset_id", assetID,
			"taker", taker,
			"error", err.Error(),
		)
		return PurchaseListingResult{}, err
	}

	logger.Info("listing purchased",
		"event", "listing_purchased",
		"module", "market-core/listing-service",
		"layer", "application",
		"listing_id", result.Listing.ListingID,
		"asset_id", result.Listing.AssetID,
		"maker", result.Listing.Maker,
		"taker", taker,
		"price", result.Listing.Price,
		"fee_paid", result.FeePaid,
	)
	return result, nil
}

func (u PurchaseListingUseCase) reverseSettle(ctx context.Context, logger *slog.Logger, original string, credits []ports.Credit) {
	for _, credit := range credits {
		if err := u.Funds.Settle(ctx, credit.To, []ports.Credit{{To: original, Amount: credit.Amount}}); err != nil {
			logger.Error("purchase settlement reversal failed",
				"event", "purchase_settle_reversal_failed",
				"module", "market-core/listing-service",
				"layer", "application",
				"account", credit.To,
				"amount", credit.Amount,
				"error", err.Error(),
			)
		}
	}
}

func (u PurchaseListingUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
