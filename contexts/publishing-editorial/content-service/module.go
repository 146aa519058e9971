package contentservice

import (
	"log/slog"

	httpadapter "folio/contexts/publishing-editorial/content-service/adapters/http"
	"folio/contexts/publishing-editorial/content-service/adapters/memory"
	"folio/contexts/publishing-editorial/content-service/application/commands"
	"folio/contexts/publishing-editorial/content-service/application/queries"
	"folio/contexts/publishing-editorial/content-service/ports"
)

// Module is the composition surface of the content service. Runtime wiring
// consumes Handler; Store is exposed for tests.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo              ports.ContentRepository
	Assets            ports.AssetRegistry
	Funds             ports.ValueLedger
	Roles             ports.RolePolicy
	Clock             ports.Clock
	IDGenerator       ports.IDGenerator
	EnforceWriterRole bool
	Logger            *slog.Logger
}

// NewModule wires the content use-cases against explicit ports.
func NewModule(deps Dependencies) Module {
	createBook := commands.CreateBookUseCase{
		Repo:              deps.Repo,
		Roles:             deps.Roles,
		Clock:             deps.Clock,
		IDGenerator:       deps.IDGenerator,
		EnforceWriterRole: deps.EnforceWriterRole,
		Logger:            deps.Logger,
	}
	addChapter := commands.AddChapterUseCase{
		Repo:              deps.Repo,
		Assets:            deps.Assets,
		Roles:             deps.Roles,
		Clock:             deps.Clock,
		IDGenerator:       deps.IDGenerator,
		EnforceWriterRole: deps.EnforceWriterRole,
		Logger:            deps.Logger,
	}
	createContent := commands.CreateExclusiveContentUseCase{
		Repo:              deps.Repo,
		Roles:             deps.Roles,
		Clock:             deps.Clock,
		EnforceWriterRole: deps.EnforceWriterRole,
		Logger:            deps.Logger,
	}
	submitReview := commands.SubmitReviewUseCase{
		Repo:        deps.Repo,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	tipWriter := commands.TipWriterUseCase{
		Funds:             deps.Funds,
		Roles:             deps.Roles,
		EnforceWriterRole: deps.EnforceWriterRole,
		Logger:            deps.Logger,
	}
	verifyAccess := queries.VerifyAccessUseCase{
		Repo:   deps.Repo,
		Assets: deps.Assets,
		Logger: deps.Logger,
	}
	getBook := queries.GetBookUseCase{Repo: deps.Repo}
	listChapters := queries.ListChaptersUseCase{Repo: deps.Repo}
	listReviews := queries.ListChapterReviewsUseCase{Repo: deps.Repo}

	return Module{
		Handler: httpadapter.Handler{
			CreateBook:             createBook,
			AddChapter:             addChapter,
			CreateExclusiveContent: createContent,
			SubmitReview:           submitReview,
			TipWriter:              tipWriter,
			VerifyAccess:           verifyAccess,
			GetBook:                getBook,
			ListChapters:           listChapters,
			ListReviews:            listReviews,
			Logger:                 deps.Logger,
		},
	}
}

// NewInMemoryModule wires the content service against the in-memory adapter.
// Assets and Funds come from the caller so tests and the developer runtime
// share one platform ledger across contexts.
func NewInMemoryModule(assets ports.AssetRegistry, funds ports.ValueLedger, roles ports.RolePolicy, enforceWriterRole bool, logger *slog.Logger) Module {
	store := memory.NewStore(logger)
	module := NewModule(Dependencies{
		Repo:              store,
		Assets:            assets,
		Funds:             funds,
		Roles:             roles,
		Clock:             store,
		IDGenerator:       store,
		EnforceWriterRole: enforceWriterRole,
		Logger:            logger,
	})
	module.Store = store
	return module
}
