package roleservice

import (
	"log/slog"

	httpadapter "folio/contexts/identity-access/role-service/adapters/http"
	"folio/contexts/identity-access/role-service/adapters/memory"
	"folio/contexts/identity-access/role-service/application/commands"
	"folio/contexts/identity-access/role-service/application/queries"
	"folio/contexts/identity-access/role-service/ports"
)

// Module is the composition surface of the role service. HasRole is exposed
// alongside the handler so the composition root can glue it to other
// contexts' role ports.
type Module struct {
	Handler httpadapter.Handler
	HasRole queries.HasRoleUseCase
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.RoleRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// NewModule wires the role use-cases against explicit ports.
func NewModule(deps Dependencies) Module {
	register := commands.RegisterRoleUseCase{
		Repo:   deps.Repo,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	hasRole := queries.HasRoleUseCase{Repo: deps.Repo}
	listRoles := queries.ListUserRolesUseCase{Repo: deps.Repo}

	return Module{
		Handler: httpadapter.Handler{
			RegisterRole:  register,
			HasRole:       hasRole,
			ListUserRoles: listRoles,
			Logger:        deps.Logger,
		},
		HasRole: hasRole,
	}
}

// NewInMemoryModule wires the role service against the in-memory adapter.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
