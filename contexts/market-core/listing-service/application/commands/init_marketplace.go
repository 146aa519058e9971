package commands

import (
	"context"
	"log/slog"

	application "folio/contexts/market-core/listing-service/application"
	"folio/contexts/market-core/listing-service/domain/entities"
	"folio/contexts/market-core/listing-service/ports"
)

// InitMarketplaceCommand carries transport-agnostic marketplace bootstrap input.
type InitMarketplaceCommand struct {
	Name           string
	FeeRatePercent int
	Treasury       string
}

type InitMarketplaceUseCase struct {
	Repo   ports.ListingRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute validates the fee configuration and creates the singleton
// marketplace record. Re-initialization is rejected by the repository.
func (u InitMarketplaceUseCase) Execute(ctx context.Context, cmd InitMarketplaceCommand) (entities.Marketplace, error) {
	logger := application.ResolveLogger(u.Logger)

	marketplace, err := entities.NewMarketplace(cmd.Name, cmd.FeeRatePercent, cmd.Treasury, u.Clock.Now())
	if err != nil {
		logger.Warn("marketplace init rejected",
			"event", "marketplace_init_rejected",
			"module", "market-core/listing-service",
			"layer", "application",
			"marketplace", cmd.Name,
			"error", err.Error(),
		)
		return entities.Marketplace{}, err
	}

	if err := u.Repo.InitMarketplace(ctx, marketplace); err != nil {
		return entities.Marketplace{}, err
	}

	logger.Info("marketplace initialized",
		"event", "marketplace_initialized",
		"module", "market-core/listing-service",
		"layer", "application",
		"marketplace", marketplace.Name,
		"fee_rate_percent", marketplace.FeeRatePercent,
		"treasury", marketplace.Treasury,
	)
	return marketplace, nil
}
