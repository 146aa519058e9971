package commands

import (
	"context"
	"log/slog"
	"strings"

	application "folio/contexts/publishing-editorial/content-service/application"
	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
	"folio/contexts/publishing-editorial/content-service/ports"
)

// TipWriterCommand contains transport-agnostic input for tipping a writer.
type TipWriterCommand struct {
	Reader string
	Writer string
	Amount int64
}

// TipWriterUseCase moves a direct gratuity from a reader to a writer. Zero
// and negative amounts are rejected before any ledger call, and when
// enforcement is on the recipient must actually hold the writer role.
type TipWriterUseCase struct {
	Funds             ports.ValueLedger
	Roles             ports.RolePolicy
	EnforceWriterRole bool
	Logger            *slog.Logger
}

func (u TipWriterUseCase) Execute(ctx context.Context, cmd TipWriterCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.Reader) == "" || strings.TrimSpace(cmd.Writer) == "" || cmd.Reader == cmd.Writer {
		return domainerrors.ErrInvalidTip
	}
	if cmd.Amount <= 0 {
		return domainerrors.ErrZeroTip
	}
	if err := requireWriterRole(ctx, u.Roles, u.EnforceWriterRole, cmd.Writer); err != nil {
		return err
	}

	if err := u.Funds.Transfer(ctx, cmd.Reader, cmd.Writer, cmd.Amount); err != nil {
		logger.Warn("tip transfer failed",
			"event", "tip_transfer_failed",
			"module", "publishing-editorial/content-service",
			"layer", "application",
			"reader", cmd.Reader,
			"writer", cmd.Writer,
			"amount", cmd.Amount,
			"error", err,
		)
		return err
	}

	logger.Info("writer tipped",
		"event", "writer_tipped",
		"module", "publishing-editorial/content-service",
		"layer", "application",
		"reader", cmd.Reader,
		"writer", cmd.Writer,
		"amount", cmd.Amount,
	)
	return nil
}
