// Package ledgeradapter binds the platform asset/cash ledgers to the
// listing-service ports, translating platform errors into the context's
// domain error taxonomy.
package ledgeradapter

import (
	"context"
	"errors"

	domainerrors "folio/contexts/market-core/listing-service/domain/errors"
	"folio/contexts/market-core/listing-service/ports"
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

func (r AssetRegistry) Transfer(ctx context.Context, assetID, from, to string) error {
	err := r.Book.Transfer(ctx, assetID, from, to)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ledger.ErrAssetNotFound):
		return domainerrors.ErrAssetNotFound
	case errors.Is(err, ledger.ErrNotHolder):
		return domainerrors.ErrNotHolder
	default:
		return err
	}
}

type ValueLedger struct {
	Cash *ledger.CashBook
}

func (l ValueLedger) Balance(ctx context.Context, account string) (int64, error) {
	return l.Cash.Balance(ctx, account)
}

func (l ValueLedger) Settle(ctx context.Context, from string, credits []ports.Credit) error {
	legs := make([]ledger.Credit, 0, len(credits))
	for _, credit := range credits {
		legs = append(legs, ledger.Credit{To: credit.To, Amount: credit.Amount})
	}
	if err := l.Cash.Settle(ctx, from, legs); err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			return domainerrors.ErrInsufficientFunds
		}
		return err
	}
	return nil
}
