package commands

import (
	"context"

	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
	"folio/contexts/publishing-editorial/content-service/ports"
)

// requireWriterRole gates writer-only operations. Enforcement is a runtime
// switch so local setups can run without the role service wired.
func requireWriterRole(ctx context.Context, roles ports.RolePolicy, enforce bool, userID string) error {
	if !enforce {
		return nil
	}
	if roles == nil {
		return domainerrors.ErrNotWriter
	}
	ok, err := roles.HasRole(ctx, userID, writerRole)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrNotWriter
	}
	return nil
}
