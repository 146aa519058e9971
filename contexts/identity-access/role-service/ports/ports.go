package ports

import (
	"context"
	"time"

	"folio/contexts/identity-access/role-service/domain/entities"
)

// RoleRepository owns role-grant persistence.
type RoleRepository interface {
	// CreateGrant fails with ErrDuplicateGrant when an active grant already
	// exists for the (user, role) pair.
	CreateGrant(ctx context.Context, grant entities.RoleGrant) error
	HasRole(ctx context.Context, userID, role string) (bool, error)
	ListUserRoles(ctx context.Context, userID string) ([]entities.RoleGrant, error)
}

// Clock allows deterministic testing of time-dependent rules.
type Clock interface {
	Now() time.Time
}
