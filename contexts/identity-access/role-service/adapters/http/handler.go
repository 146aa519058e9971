package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"folio/contexts/identity-access/role-service/application/commands"
	"folio/contexts/identity-access/role-service/application/queries"
	"folio/contexts/identity-access/role-service/domain/entities"
	httptransport "folio/contexts/identity-access/role-service/transport/http"
)

type Handler struct {
	RegisterRole  commands.RegisterRoleUseCase
	HasRole       queries.HasRoleUseCase
	ListUserRoles queries.ListUserRolesUseCase
	Logger        *slog.Logger
}

// RegisterRoleHandler godoc
// @Summary Grant a role
// @Description Grants a platform role to a user. A pair is granted at most once.
// @Tags role-service
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterRoleRequest true "Grant request"
// @Success 201 {object} httptransport.RegisterRoleResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/roles [post]
func (h Handler) RegisterRoleHandler(ctx context.Context, req httptransport.RegisterRoleRequest) (httptransport.RegisterRoleResponse, error) {
	grant, err := h.RegisterRole.Execute(ctx, commands.RegisterRoleCommand{
		UserID:    req.UserID,
		Role:      req.Role,
		GrantedBy: req.GrantedBy,
	})
	if err != nil {
		return httptransport.RegisterRoleResponse{}, err
	}
	return httptransport.RegisterRoleResponse{Status: "created", Data: mapGrant(grant)}, nil
}

// HasRoleHandler godoc
// @Summary Check role membership
// @Tags role-service
// @Produce json
// @Param user_id path string true "User identifier"
// @Param role path string true "Role name"
// @Success 200 {object} httptransport.HasRoleResponse
// @Router /v1/users/{user_id}/roles/{role} [get]
func (h Handler) HasRoleHandler(ctx context.Context, userID, role string) (httptransport.HasRoleResponse, error) {
	hasRole, err := h.HasRole.Execute(ctx, userID, role)
	if err != nil {
		return httptransport.HasRoleResponse{}, err
	}

	resp := httptransport.HasRoleResponse{Status: "ok"}
	resp.Data.UserID = userID
	resp.Data.Role = role
	resp.Data.HasRole = hasRole
	return resp, nil
}

// ListUserRolesHandler godoc
// @Summary List a user's roles
// @Tags role-service
// @Produce json
// @Param user_id path string true "User identifier"
// @Success 200 {object} httptransport.ListUserRolesResponse
// @Router /v1/users/{user_id}/roles [get]
func (h Handler) ListUserRolesHandler(ctx context.Context, userID string) (httptransport.ListUserRolesResponse, error) {
	grants, err := h.ListUserRoles.Execute(ctx, userID)
	if err != nil {
		return httptransport.ListUserRolesResponse{}, err
	}

	data := make([]httptransport.RoleGrantDTO, 0, len(grants))
	for _, grant := range grants {
		data = append(data, mapGrant(grant))
	}
	return httptransport.ListUserRolesResponse{Status: "ok", Data: data}, nil
}

func mapGrant(grant entities.RoleGrant) httptransport.RoleGrantDTO {
	return httptransport.RoleGrantDTO{
		UserID:    grant.UserID,
		Role:      grant.Role,
		GrantedBy: grant.GrantedBy,
		GrantedAt: grant.GrantedAt.Format(time.RFC3339),
	}
}
