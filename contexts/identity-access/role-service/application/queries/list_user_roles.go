package queries

import (
	"context"

	"folio/contexts/identity-access/role-service/domain/entities"
	"folio/contexts/identity-access/role-service/ports"
)

// ListUserRolesUseCase returns a user's active grants.
type ListUserRolesUseCase struct {
	Repo ports.RoleRepository
}

func (u ListUserRolesUseCase) Execute(ctx context.Context, userID string) ([]entities.RoleGrant, error) {
	return u.Repo.ListUserRoles(ctx, userID)
}
