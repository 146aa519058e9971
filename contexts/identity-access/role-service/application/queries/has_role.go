package queries

import (
	"context"

	"folio/contexts/identity-access/role-service/ports"
)

// HasRoleUseCase answers role membership for a user.
type HasRoleUseCase struct {
	Repo ports.RoleRepository
}

func (u HasRoleUseCase) Execute(ctx context.Context, userID, role string) (bool, error) {
	return u.Repo.HasRole(ctx, userID, role)
}
