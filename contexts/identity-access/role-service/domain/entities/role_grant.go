package entities

import (
	"strings"
	"time"

	domainerrors "folio/contexts/identity-access/role-service/domain/errors"
)

// Roles the platform recognizes. Write-side operations in the publishing
// context require RoleWriter; RoleReader exists for audience segmentation.
const (
	RoleWriter = "writer"
	RoleReader = "reader"
)

// RoleGrant assigns one role to one user. A (user, role) pair is granted at
// most once while active.
type RoleGrant struct {
	UserID    string
	Role      string
	GrantedBy string
	GrantedAt time.Time
	Active    bool
}

func NewRoleGrant(userID, role, grantedBy string, grantedAt time.Time) (RoleGrant, error) {
	userID = strings.TrimSpace(userID)
	grantedBy = strings.TrimSpace(grantedBy)
	role = strings.ToLower(strings.TrimSpace(role))
	if userID == "" || grantedBy == "" {
		return RoleGrant{}, domainerrors.ErrInvalidGrant
	}
	if role != RoleWriter && role != RoleReader {
		return RoleGrant{}, domainerrors.ErrUnknownRole
	}
	return RoleGrant{
		UserID:    userID,
		Role:      role,
		GrantedBy: grantedBy,
		GrantedAt: grantedAt.UTC(),
		Active:    true,
	}, nil
}

// Key identifies the unique active grant for a (user, role) pair.
func (g RoleGrant) Key() string {
	return g.UserID + "/" + g.Role
}
