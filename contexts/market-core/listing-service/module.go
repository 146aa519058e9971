package listingservice

import (
	"log/slog"
	"time"

	httpadapter "folio/contexts/market-core/listing-service/adapters/http"
	"folio/contexts/market-core/listing-service/adapters/memory"
	"folio/contexts/market-core/listing-service/application/commands"
	"folio/contexts/market-core/listing-service/application/queries"
	"folio/contexts/market-core/listing-service/ports"
)

// Module is the composition surface of the listing service. Runtime wiring
// consumes Handler; Store and InitMarketplace are exposed for tests and
// bootstrap seeding.
type Module struct {
	Handler         httpadapter.Handler
	InitMarketplace commands.InitMarketplaceUseCase
	Store           *memory.Store
}

type Dependencies struct {
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

// NewModule wires the listing lifecycle use-cases against explicit ports.
func NewModule(deps Dependencies) Module {
	open := commands.OpenListingUseCase{
		Repo:           deps.Repo,
		Assets:         deps.Assets,
		Funds:          deps.Funds,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		RentUnits:      deps.RentUnits,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	purchase := commands.PurchaseListingUseCase{
		Repo:        deps.Repo,
		Assets:      deps.Assets,
		Funds:       deps.Funds,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	cancel := commands.CancelListingUseCase{
		Repo:        deps.Repo,
		Assets:      deps.Assets,
		Funds:       deps.Funds,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	getListing := queries.GetListingUseCase{Repo: deps.Repo, Logger: deps.Logger}
	listListings := queries.ListListingsUseCase{Repo: deps.Repo, Logger: deps.Logger}

	return Module{
		Handler: httpadapter.Handler{
			OpenListing:     open,
			PurchaseListing: purchase,
			CancelListing:   cancel,
			GetListing:      getListing,
			ListListings:    listListings,
			Logger:          deps.Logger,
		},
		InitMarketplace: commands.InitMarketplaceUseCase{
			Repo:   deps.Repo,
			Clock:  deps.Clock,
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule wires the listing service against the in-memory adapter.
// Assets and Funds still come from the caller so tests and the developer
// runtime share one platform ledger across contexts.
func NewInMemoryModule(assets ports.AssetRegistry, funds ports.ValueLedger, rentUnits int64, logger *slog.Logger) Module {
	store := memory.NewStore(logger)
	module := NewModule(Dependencies{
		Repo:           store,
		Assets:         assets,
		Funds:          funds,
		Idempotency:    store,
		Clock:          store,
		IDGenerator:    store,
		RentUnits:      rentUnits,
		IdempotencyTTL: 7 * 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
