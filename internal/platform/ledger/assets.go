// Package ledger is the in-process implementation of the issuance and value
// collaborators the bounded contexts consume through their own ports: a
// single-holder asset registry and a cash ledger with atomic settlement.
package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Asset is a uniquely identified, single-holder token, optionally grouped
// into a collection whose membership can be verified once after mint.
type Asset struct {
	AssetID            string
	CollectionID       string
	Holder             string
	CollectionVerified bool
	MintedAt           time.Time
}

// AssetBook records asset identity and custody. Custody changes only through
// Transfer, an atomic holder swap.
type AssetBook struct {
	mu     sync.RWMutex
	assets map[string]Asset
	logger *slog.Logger
}

func NewAssetBook(logger *slog.Logger) *AssetBook {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssetBook{
		assets: make(map[string]Asset),
		logger: logger,
	}
}

// Mint creates a new asset held by owner. Collection membership starts
// unverified; a collection-less asset stays unverifiable.
func (b *AssetBook) Mint(_ context.Context, owner, collectionID string) (Asset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	asset := Asset{
		AssetID:      uuid.NewString(),
		CollectionID: collectionID,
		Holder:       owner,
		MintedAt:     time.Now().UTC(),
	}
	b.assets[asset.AssetID] = asset

	b.logger.Debug("asset minted",
		"event", "ledger_asset_minted",
		"module", "internal/platform/ledger",
		"layer", "platform",
		"asset_id", asset.AssetID,
		"collection_id", collectionID,
		"holder", owner,
	)
	return asset, nil
}

func (b *AssetBook) Get(_ context.Context, assetID string) (Asset, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	asset, ok := b.assets[assetID]
	if !ok {
		return Asset{}, ErrAssetNotFound
	}
	return asset, nil
}

// VerifyCollection marks the asset's collection membership as verified.
func (b *AssetBook) VerifyCollection(_ context.Context, assetID string) (Asset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	asset, ok := b.assets[assetID]
	if !ok {
		return Asset{}, ErrAssetNotFound
	}
	if asset.CollectionID == "" {
		return Asset{}, ErrNoCollection
	}
	asset.CollectionVerified = true
	b.assets[assetID] = asset
	return asset, nil
}

// Transfer swaps the holder atomically. It fails without effect when from is
// not the current holder, so an asset can never be partially moved.
func (b *AssetBook) Transfer(_ context.Context, assetID, from, to string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	asset, ok := b.assets[assetID]
	if !ok {
		return ErrAssetNotFound
	}
	if asset.Holder != from {
		return ErrNotHolder
	}
	asset.Holder = to
	b.assets[assetID] = asset

	b.logger.Debug("asset custody moved",
		"event", "ledger_asset_transferred",
		"module", "internal/platform/ledger",
		"layer", "platform",
		"asset_id", assetID,
		"from", from,
		"to", to,
	)
	return nil
}
