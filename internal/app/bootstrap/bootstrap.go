package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	roleservice "folio/contexts/identity-access/role-service"
	rolepostgres "folio/contexts/identity-access/role-service/adapters/postgres"
	rolequeries "folio/contexts/identity-access/role-service/application/queries"
	listingservice "folio/contexts/market-core/listing-service"
	listingledger "folio/contexts/market-core/listing-service/adapters/ledger"
	listingpostgres "folio/contexts/market-core/listing-service/adapters/postgres"
	listingredis "folio/contexts/market-core/listing-service/adapters/redis"
	listingcommands "folio/contexts/market-core/listing-service/application/commands"
	listingworkers "folio/contexts/market-core/listing-service/application/workers"
	listingerrors "folio/contexts/market-core/listing-service/domain/errors"
	listingports "folio/contexts/market-core/listing-service/ports"
	contentservice "folio/contexts/publishing-editorial/content-service"
	contentledger "folio/contexts/publishing-editorial/content-service/adapters/ledger"
	contentpostgres "folio/contexts/publishing-editorial/content-service/adapters/postgres"
	contentworkers "folio/contexts/publishing-editorial/content-service/application/workers"
	"folio/internal/platform/cache"
	"folio/internal/platform/config"
	"folio/internal/platform/db"
	"folio/internal/platform/httpserver"
	"folio/internal/platform/ledger"
	"folio/internal/platform/messaging"

	"golang.org/x/sync/errgroup"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
// Cross-context glue (role policy, shared ledgers) lives here and nowhere else.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	redis    *cache.Redis
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	listingRelay listingworkers.OutboxRelay
	contentRelay contentworkers.OutboxRelay
	runListing   bool
	runContent   bool
	pollInterval time.Duration
	logger       *slog.Logger
}

// writerPolicy glues the role service's HasRole query to the publishing
// context's RolePolicy port.
type writerPolicy struct {
	hasRole rolequeries.HasRoleUseCase
}

func (p writerPolicy) HasRole(ctx context.Context, userID, role string) (bool, error) {
	return p.hasRole.Execute(ctx, userID, role)
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	assets := ledger.NewAssetBook(logger)
	cash := ledger.NewCashBook(logger)

	app := &APIApp{logger: logger}

	var listingModule listingservice.Module
	var contentModule contentservice.Module
	var roleModule roleservice.Module

	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err := db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		app.postgres = pg

		listingRepo := listingpostgres.NewRepository(pg.DB, logger)
		contentRepo := contentpostgres.NewRepository(pg.DB, logger)
		roleRepo := rolepostgres.NewRepository(pg.DB)
		if err := listingRepo.Migrate(); err != nil {
			return nil, err
		}
		if err := contentRepo.Migrate(); err != nil {
			return nil, err
		}
		if err := roleRepo.Migrate(); err != nil {
			return nil, err
		}

		var idempotency listingports.IdempotencyStore = listingRepo
		if strings.TrimSpace(cfg.RedisAddr) != "" {
			rds, err := cache.Connect(cfg.RedisAddr)
			if err != nil {
				return nil, err
			}
			app.redis = rds
			idempotency = listingredis.NewIdempotencyStore(rds.Client)
		}

		roleModule = roleservice.NewModule(roleservice.Dependencies{
			Repo:   roleRepo,
			Clock:  roleRepo,
			Logger: logger,
		})
		listingModule = listingservice.NewModule(listingservice.Dependencies{
			Repo:           listingRepo,
			Assets:         listingledger.AssetRegistry{Book: assets},
			Funds:          listingledger.ValueLedger{Cash: cash},
			Idempotency:    idempotency,
			Clock:          listingpostgres.SystemClock{},
			IDGenerator:    listingpostgres.UUIDGenerator{},
			RentUnits:      cfg.ListingRentUnits,
			IdempotencyTTL: 7 * 24 * time.Hour,
			Logger:         logger,
		})
		contentModule = contentservice.NewModule(contentservice.Dependencies{
			Repo:              contentRepo,
			Assets:            contentledger.AssetRegistry{Book: assets},
			Funds:             contentledger.ValueLedger{Cash: cash},
			Roles:             writerPolicy{hasRole: roleModule.HasRole},
			Clock:             contentpostgres.SystemClock{},
			IDGenerator:       contentpostgres.UUIDGenerator{},
			EnforceWriterRole: cfg.EnableWriterRoleEnforcement,
			Logger:            logger,
		})
	} else {
		roleModule = roleservice.NewInMemoryModule(logger)
		listingModule = listingservice.NewInMemoryModule(
			listingledger.AssetRegistry{Book: assets},
			listingledger.ValueLedger{Cash: cash},
			cfg.ListingRentUnits,
			logger,
		)
		contentModule = contentservice.NewInMemoryModule(
			contentledger.AssetRegistry{Book: assets},
			contentledger.ValueLedger{Cash: cash},
			writerPolicy{hasRole: roleModule.HasRole},
			cfg.EnableWriterRoleEnforcement,
			logger,
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = listingModule.InitMarketplace.Execute(ctx, listingcommands.InitMarketplaceCommand{
		Name:           cfg.MarketplaceName,
		FeeRatePercent: cfg.MarketplaceFeeRate,
		Treasury:       cfg.MarketplaceTreasury,
	})
	if err != nil && !errors.Is(err, listingerrors.ErrMarketplaceExists) {
		return nil, err
	}

	app.server = httpserver.New(
		listingModule,
		contentModule,
		roleModule,
		assets,
		cash,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return app, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	listingRepo := listingpostgres.NewRepository(pg.DB, logger)
	contentRepo := contentpostgres.NewRepository(pg.DB, logger)

	return &WorkerApp{
		postgres: pg,
		listingRelay: listingworkers.OutboxRelay{
			Outbox:    listingRepo,
			Publisher: bus,
			Clock:     listingpostgres.SystemClock{},
			Topic:     "market.listings",
			BatchSize: 100,
			Logger:    logger,
		},
		contentRelay: contentworkers.OutboxRelay{
			Outbox:    contentRepo,
			Publisher: bus,
			Clock:     contentpostgres.SystemClock{},
			Topic:     "publishing.chapters",
			BatchSize: 100,
			Logger:    logger,
		},
		runListing:   cfg.EnableListingOutboxRelay,
		runContent:   cfg.EnableContentOutboxRelay,
		pollInterval: time.Duration(cfg.OutboxRelayIntervalMS) * time.Millisecond,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	group, ctx := errgroup.WithContext(ctx)
	if w.runListing {
		group.Go(func() error {
			return w.runRelayLoop(ctx, w.listingRelay.RunOnce)
		})
	}
	if w.runContent {
		group.Go(func() error {
			return w.runRelayLoop(ctx, w.contentRelay.RunOnce)
		})
	}
	return group.Wait()
}

func (w *WorkerApp) runRelayLoop(ctx context.Context, runOnce func(context.Context) error) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		if err := runOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
