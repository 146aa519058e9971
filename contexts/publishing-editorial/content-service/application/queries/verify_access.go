package queries

import (
	"context"
	"errors"
	"log/slog"

	application "folio/contexts/publishing-editorial/content-service/application"
	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
	"folio/contexts/publishing-editorial/content-service/ports"
)

// VerifyAccessQuery names the claimant, the asset they claim to hold, and the
// collection whose gated content they want.
type VerifyAccessQuery struct {
	Claimant     string
	AssetID      string
	CollectionID string
}

// VerifyAccessResult carries the unlocked locator on success.
type VerifyAccessResult struct {
	Claimant     string `json:"claimant"`
	AssetID      string `json:"asset_id"`
	CollectionID string `json:"collection_id"`
	Locator      string `json:"locator"`
}

// VerifyAccessUseCase is the ownership gate. It reads current registry state
// and mutates nothing, so access reflects custody at the moment of the check:
// sell the asset and the next check fails.
type VerifyAccessUseCase struct {
	Repo   ports.ContentRepository
	Assets ports.AssetRegistry
	Logger *slog.Logger
}

func (u VerifyAccessUseCase) Execute(ctx context.Context, q VerifyAccessQuery) (VerifyAccessResult, error) {
	logger := application.ResolveLogger(u.Logger)

	asset, err := u.Assets.Get(ctx, q.AssetID)
	if err != nil {
		return VerifyAccessResult{}, err
	}
	if asset.Holder != q.Claimant {
		logger.Info("access denied",
			"event", "access_denied",
			"module", "publishing-editorial/content-service",
			"layer", "application",
			"claimant", q.Claimant,
			"asset_id", q.AssetID,
			"reason", "not_holder",
		)
		return VerifyAccessResult{}, domainerrors.ErrNotHolder
	}
	if asset.CollectionID != q.CollectionID {
		return VerifyAccessResult{}, domainerrors.ErrNotHolder
	}

	// Holding any asset of the collection is not enough: the claimed asset
	// must itself back a chapter of a book in this collection.
	chapter, err := u.Repo.GetChapterByAsset(ctx, q.AssetID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrChapterNotFound) {
			logger.Info("access denied",
				"event", "access_denied",
				"module", "publishing-editorial/content-service",
				"layer", "application",
				"claimant", q.Claimant,
				"asset_id", q.AssetID,
				"reason", "asset_not_gating",
			)
			return VerifyAccessResult{}, domainerrors.ErrNotHolder
		}
		return VerifyAccessResult{}, err
	}
	book, err := u.Repo.GetBook(ctx, chapter.BookID)
	if err != nil {
		return VerifyAccessResult{}, err
	}
	if book.CollectionID != q.CollectionID {
		return VerifyAccessResult{}, domainerrors.ErrNotHolder
	}

	if !asset.CollectionVerified {
		return VerifyAccessResult{}, domainerrors.ErrUnverifiedCollection
	}

	content, err := u.Repo.GetExclusiveContent(ctx, q.CollectionID)
	if err != nil {
		return VerifyAccessResult{}, err
	}

	logger.Info("access granted",
		"event", "access_granted",
		"module", "publishing-editorial/content-service",
		"layer", "application",
		"claimant", q.Claimant,
		"asset_id", q.AssetID,
		"collection_id", q.CollectionID,
	)
	return VerifyAccessResult{
		Claimant:     q.Claimant,
		AssetID:      q.AssetID,
		CollectionID: q.CollectionID,
		Locator:      content.Locator,
	}, nil
}
