package commands

import (
	"context"
	"log/slog"

	application "folio/contexts/identity-access/role-service/application"
	"folio/contexts/identity-access/role-service/domain/entities"
	"folio/contexts/identity-access/role-service/ports"
)

// RegisterRoleCommand contains transport-agnostic input for granting a role.
type RegisterRoleCommand struct {
	UserID    string
	Role      string
	GrantedBy string
}

// RegisterRoleUseCase grants a role to a user once.
type RegisterRoleUseCase struct {
	Repo   ports.RoleRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (u RegisterRoleUseCase) Execute(ctx context.Context, cmd RegisterRoleCommand) (entities.RoleGrant, error) {
	logger := application.ResolveLogger(u.Logger)

	grant, err := entities.NewRoleGrant(cmd.UserID, cmd.Role, cmd.GrantedBy, u.Clock.Now())
	if err != nil {
		return entities.RoleGrant{}, err
	}
	if err := u.Repo.CreateGrant(ctx, grant); err != nil {
		return entities.RoleGrant{}, err
	}

	logger.Info("role granted",
		"event", "role_granted",
		"module", "identity-access/role-service",
		"layer", "application",
		"user_id", grant.UserID,
		"role", grant.Role,
		"granted_by", grant.GrantedBy,
	)
	return grant, nil
}
