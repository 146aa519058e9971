package unit

import (
	"context"
	"errors"
	"testing"

	roleservice "folio/contexts/identity-access/role-service"
	domainerrors "folio/contexts/identity-access/role-service/domain/errors"
	httptransport "folio/contexts/identity-access/role-service/transport/http"
)

func TestRegisterRoleAndQueryMembership(t *testing.T) {
	module := roleservice.NewInMemoryModule(nil)
	ctx := context.Background()

	_, err := module.Handler.RegisterRoleHandler(ctx, httptransport.RegisterRoleRequest{
		UserID:    "user-1",
		Role:      "writer",
		GrantedBy: "admin",
	})
	if err != nil {
		t.Fatalf("register role failed: %v", err)
	}

	hasRole, err := module.Handler.HasRoleHandler(ctx, "user-1", "writer")
	if err != nil {
		t.Fatalf("has role failed: %v", err)
	}
	if !hasRole.Data.HasRole {
		t.Fatalf("expected writer membership")
	}

	missing, err := module.Handler.HasRoleHandler(ctx, "user-1", "reader")
	if err != nil {
		t.Fatalf("has role failed: %v", err)
	}
	if missing.Data.HasRole {
		t.Fatalf("expected no reader membership")
	}
}

func TestRegisterRoleRejectsDuplicateGrant(t *testing.T) {
	module := roleservice.NewInMemoryModule(nil)
	ctx := context.Background()

	req := httptransport.RegisterRoleRequest{UserID: "user-1", Role: "writer", GrantedBy: "admin"}
	if _, err := module.Handler.RegisterRoleHandler(ctx, req); err != nil {
		t.Fatalf("register role failed: %v", err)
	}
	_, err := module.Handler.RegisterRoleHandler(ctx, req)
	if !errors.Is(err, domainerrors.ErrDuplicateGrant) {
		t.Fatalf("expected ErrDuplicateGrant, got %v", err)
	}
}

func TestRegisterRoleRejectsUnknownRole(t *testing.T) {
	module := roleservice.NewInMemoryModule(nil)

	_, err := module.Handler.RegisterRoleHandler(context.Background(), httptransport.RegisterRoleRequest{
		UserID:    "user-1",
		Role:      "superuser",
		GrantedBy: "admin",
	})
	if !errors.Is(err, domainerrors.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestListUserRolesSortsAlphabetically(t *testing.T) {
	module := roleservice.NewInMemoryModule(nil)
	ctx := context.Background()

	for _, role := range []string{"writer", "reader"} {
		if _, err := module.Handler.RegisterRoleHandler(ctx, httptransport.RegisterRoleRequest{
			UserID:    "user-1",
			Role:      role,
			GrantedBy: "admin",
		}); err != nil {
			t.Fatalf("register %s failed: %v", role, err)
		}
	}

	resp, err := module.Handler.ListUserRolesHandler(ctx, "user-1")
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(resp.Data))
	}
	if resp.Data[0].Role != "reader" || resp.Data[1].Role != "writer" {
		t.Fatalf("unexpected order: %+v", resp.Data)
	}
}
