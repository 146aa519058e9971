package entities

import (
	"strings"
	"time"

	domainerrors "folio/contexts/market-core/listing-service/domain/errors"
)

// Marketplace is process-wide per-marketplace configuration. It is created
// once at initialization and never updated afterwards.
type Marketplace struct {
	Name           string
	FeeRatePercent int
	Treasury       string
	CreatedAt      time.Time
}

// NewMarketplace validates configuration at the only point it can be set.
// Downstream fee math assumes the rate is already inside [0, 100].
func NewMarketplace(name string, feeRatePercent int, treasury string, createdAt time.Time) (Marketplace, error) {
	name = strings.TrimSpace(name)
	treasury = strings.TrimSpace(treasury)
	if name == "" || len(name) > 32 || treasury == "" {
		return Marketplace{}, domainerrors.ErrInvalidMarketplace
	}
	if feeRatePercent < 0 || feeRatePercent > 100 {
		return Marketplace{}, domainerrors.ErrInvalidFeeRate
	}
	return Marketplace{
		Name:           name,
		FeeRatePercent: feeRatePercent,
		Treasury:       treasury,
		CreatedAt:      createdAt.UTC(),
	}, nil
}
