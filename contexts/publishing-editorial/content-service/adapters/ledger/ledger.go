// Package ledgeradapter binds the platform asset/cash ledgers to the
// content-service ports, translating platform errors into the context's
// domain error taxonomy.
package ledgeradapter

import (
	"context"
	"errors"

	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
	"folio/contexts/publishing-editorial/content-service/ports"
	"folio/internal/platform/ledger"
)

type AssetRegistry struct {
	Book *ledger.AssetBook
}

func (r AssetRegistry) Get(ctx context.Context, assetID string) (ports.AssetRecord, error) {
	asset, err := r.Book.Get(ctx, assetID)
	if err != nil {
		if errors.Is(err, ledger.ErrAssetNotFound) {
			return ports.AssetRecord{}, domainerrors.ErrAssetNotFound
		}
		return ports.AssetRecord{}, err
	}
	return ports.AssetRecord{
		AssetID:            asset.AssetID,
		CollectionID:       asset.CollectionID,
		Holder:             asset.Holder,
		CollectionVerified: asset.CollectionVerified,
	}, nil
}

type ValueLedger struct {
	Cash *ledger.CashBook
}

func (l ValueLedger) Transfer(ctx context.Context, from, to string, amount int64) error {
	err := l.Cash.Transfer(ctx, from, to, amount)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return domainerrors.ErrInsufficientFunds
	case errors.Is(err, ledger.ErrZeroAmount):
		return domainerrors.ErrZeroTip
	default:
		return err
	}
}
