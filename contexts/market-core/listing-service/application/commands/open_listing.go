package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "folio/contexts/market-core/listing-service/application"
	"folio/contexts/market-core/listing-service/domain/entities"
	domainerrors "folio/contexts/market-core/listing-service/domain/errors"
	"folio/contexts/market-core/listing-service/ports"
)

const openedEventType = "listing.opened"

// OpenListingCommand contains transport-agnostic input for opening a listing.
type OpenListingCommand struct {
	IdempotencyKey string
	Marketplace    string
	AssetID        string
	Maker          string
	Price          int64
}

// OpenListingResult carries the created listing, its escrow vault, and replay status.
type OpenListingResult struct {
	Listing  entities.Listing `json:"listing"`
	Vault    entities.Vault   `json:"vault"`
	Replayed bool             `json:"replayed"`
}

// OpenListingUseCase coordinates the list workflow: holder and collection
// checks, escrow custody, and atomic listing+vault+outbox persistence.
type OpenListingUseCase struct {
	Repo           ports.ListingRepository
	Assets         ports.AssetRegistry
	Funds          ports.ValueLedger
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	RentUnits      int64
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func (u OpenListingUseCase) Execute(ctx context.Context, cmd OpenListingCommand) (OpenListingResult, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.Marketplace) == "" ||
		strings.TrimSpace(cmd.AssetID) == "" ||
		strings.TrimSpace(cmd.Maker) == "" {
		return OpenListingResult{}, domainerrors.ErrInvalidListing
	}

	now := u.now()
	requestHash, err := hashPayload(map[string]any{
		"marketplace": strings.TrimSpace(cmd.Marketplace),
		"asset_id":    strings.TrimSpace(cmd.AssetID),
		"maker":       strings.TrimSpace(cmd.Maker),
		"price":       cmd.Price,
	})
	if err != nil {
		return OpenListingResult{}, err
	}
	idempotencyKey := resolveIdempotencyKey(cmd.IdempotencyKey, requestHash)

	logger.Info("open listing started",
		"event", "open_listing_started",
		"module", "market-core/listing-service",
		"layer", "application",
		"marketplace", cmd.Marketplace,
		"asset_id", cmd.AssetID,
		"maker", cmd.Maker,
		"price", cmd.Price,
	)

	record, found, err := u.Idempotency.Get(ctx, idempotencyKey, now)
	if err != nil {
		return OpenListingResult{}, err
	}
	if found {
		if record.RequestHash != requestHash {
			return OpenListingResult{}, domainerrors.ErrIdempotencyConflict
		}
		var replayed OpenListingResult
		if err := json.Unmarshal(record.Payload, &replayed); err != nil {
			return OpenListingResult{}, err
		}
		replayed.Replayed = true
		logger.Info("open listing replayed from idempotency",
			"event", "open_listing_replayed",
			"module", "market-core/listing-service",
			"layer", "application",
			"listing_id", replayed.Listing.ListingID,
		)
		return replayed, nil
	}

	if _, err := u.Repo.GetMarketplace(ctx, strings.TrimSpace(cmd.Marketplace)); err != nil {
		return OpenListingResult{}, err
	}

	// Fast-path duplicate check. The unique constraint inside
	// CreateListingWithVault remains the authority under races.
	if _, err := u.Repo.GetListing(ctx, strings.TrimSpace(cmd.Marketplace), strings.TrimSpace(cmd.AssetID)); err == nil {
		return OpenListingResult{}, domainerrors.ErrDuplicateListing
	} else if !errors.Is(err, domainerrors.ErrListingNotFound) {
		return OpenListingResult{}, err
	}

	asset, err := u.Assets.Get(ctx, strings.TrimSpace(cmd.AssetID))
	if err != nil {
		return OpenListingResult{}, err
	}
	if asset.Holder != strings.TrimSpace(cmd.Maker) {
		logger.Warn("open listing rejected: caller is not holder",
			"event", "open_listing_not_holder",
			"module", "market-core/listing-service",
			"layer", "application",
			"asset_id", cmd.AssetID,
			"maker", cmd.Maker,
			"holder", asset.Holder,
		)
		return OpenListingResult{}, domainerrors.ErrNotHolder
	}
	if asset.CollectionID != "" && !asset.CollectionVerified {
		return OpenListingResult{}, domainerrors.ErrUnverifiedCollection
	}

	listingID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return OpenListingResult{}, err
	}
	listing, err := entities.NewListing(listingID, cmd.Marketplace, cmd.AssetID, cmd.Maker, cmd.Price, now)
	if err != nil {
		return OpenListingResult{}, err
	}
	vault := entities.NewVault(listing, u.RentUnits)

	// The maker funds the vault's storage deposit; it comes back on either
	// resolution path.
	if vault.RentUnits > 0 {
		if err := u.Funds.Settle(ctx, listing.Maker, []ports.Credit{{To: vault.VaultKey, Amount: vault.RentUnits}}); err != nil {
			return OpenListingResult{}, err
		}
	}

	if err := u.Assets.Transfer(ctx, listing.AssetID, listing.Maker, vault.VaultKey); err != nil {
		u.refundRent(ctx, logger, vault)
		return OpenListingResult{}, err
	}

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		u.unwindCustody(ctx, logger, listing, vault)
		return OpenListingResult{}, err
	}
	event := ports.ListingEvent{
		EventID:      eventID,
		EventType:    openedEventType,
		ListingID:    listing.ListingID,
		Marketplace:  listing.Marketplace,
		AssetID:      listing.AssetID,
		Maker:        listing.Maker,
		Price:        listing.Price,
		PartitionKey: listing.AssetID,
		OccurredAt:   now,
	}

	if err := u.Repo.CreateListingWithVault(ctx, listing, vault, event); err != nil {
		// Custody already moved; a concurrent open that won the unique check
		// means this attempt must leave no trace.
		u.unwindCustody(ctx, logger, listing, vault)
		return OpenListingResult{}, err
	}

	result := OpenListingResult{Listing: listing, Vault: vault}
	if payload, err := json.Marshal(result); err == nil {
		if err := u.Idempotency.Put(ctx, ports.IdempotencyRecord{
			Key:         idempotencyKey,
			RequestHash: requestHash,
			Payload:     payload,
			ExpiresAt:   now.Add(u.idempotencyTTL()),
		}); err != nil {
			logger.Warn("open listing idempotency write failed",
				"event", "open_listing_idempotency_put_failed",
				"module", "market-core/listing-service",
				"layer", "application",
				"listing_id", listing.ListingID,
				"error", err.Error(),
			)
		}
	}

	logger.Info("listing opened",
		"event", "listing_opened",
		"module", "market-core/listing-service",
		"layer", "application",
		"listing_id", listing.ListingID,
		"marketplace", listing.Marketplace,
		"asset_id", listing.AssetID,
		"maker", listing.Maker,
		"price", listing.Price,
		"vault_key", vault.VaultKey,
	)
	return result, nil
}

func (u OpenListingUseCase) unwindCustody(ctx context.Context, logger *slog.Logger, listing entities.Listing, vault entities.Vault) {
	if err := u.Assets.Transfer(ctx, listing.AssetID, vault.VaultKey, listing.Maker); err != nil {
		logger.Error("open listing custody unwind failed",
			"event", "open_listing_unwind_failed",
			"module", "market-core/listing-service",
			"layer", "application",
			"asset_id", listing.AssetID,
			"vault_key", vault.VaultKey,
			"error", err.Error(),
		)
		return
	}
	u.refundRent(ctx, logger, vault)
}

func (u OpenListingUseCase) refundRent(ctx context.Context, logger *slog.Logger, vault entities.Vault) {
	if vault.RentUnits <= 0 {
		return
	}
	if err := u.Funds.Settle(ctx, vault.VaultKey, []ports.Credit{{To: vault.Maker, Amount: vault.RentUnits}}); err != nil {
		logger.Error("open listing rent refund failed",
			"event", "open_listing_rent_refund_failed",
			"module", "market-core/listing-service",
			"layer", "application",
			"vault_key", vault.VaultKey,
			"error", err.Error(),
		)
	}
}

func (u OpenListingUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func (u OpenListingUseCase) idempotencyTTL() time.Duration {
	if u.IdempotencyTTL > 0 {
		return u.IdempotencyTTL
	}
	return 7 * 24 * time.Hour
}
