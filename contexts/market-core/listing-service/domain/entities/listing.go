package entities

import (
	"strings"
	"time"

	domainerrors "folio/contexts/market-core/listing-service/domain/errors"
)

// Listing is an open offer to sell one held asset at a fixed price. A listing
// has no terminal status field: closing a listing removes the record, so any
// later read observes absence.
type Listing struct {
	ListingID   string
	Marketplace string
	AssetID     string
	Maker       string
	Price       int64
	OpenedAt    time.Time
}

func NewListing(listingID, marketplace, assetID, maker string, price int64, openedAt time.Time) (Listing, error) {
	if strings.TrimSpace(listingID) == "" ||
		strings.TrimSpace(marketplace) == "" ||
		strings.TrimSpace(assetID) == "" ||
		strings.TrimSpace(maker) == "" {
		return Listing{}, domainerrors.ErrInvalidListing
	}
	if price <= 0 {
		return Listing{}, domainerrors.ErrZeroPrice
	}
	return Listing{
		ListingID:   strings.TrimSpace(listingID),
		Marketplace: strings.TrimSpace(marketplace),
		AssetID:     strings.TrimSpace(assetID),
		Maker:       strings.TrimSpace(maker),
		Price:       price,
		OpenedAt:    openedAt.UTC(),
	}, nil
}

// ListingKey is the uniqueness key for open listings: one open listing per
// (marketplace, asset) pair at any time.
func ListingKey(marketplace, assetID string) string {
	return marketplace + "/" + assetID
}

func (l Listing) Key() string {
	return ListingKey(l.Marketplace, l.AssetID)
}
