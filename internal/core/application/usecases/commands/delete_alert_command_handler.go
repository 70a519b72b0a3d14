package commands

import (
	"context"
)

// DeleteAlertCommandHandler handles alert deletion.
type DeleteAlertCommandHandler struct {
	uowFactory AlertUoWFactory
}

// NewDeleteAlertCommandHandler creates a handler for alert deletion operations.
func NewDeleteAlertCommandHandler(uowFactory AlertUoWFactory) DeleteAlertCommandHandler {
	return DeleteAlertCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the alert deletion command.
// Returns a not-found error when the alert does not exist.
func (h *DeleteAlertCommandHandler) Handle(ctx context.Context, cmd DeleteAlertCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	alertRepo := uow.AlertRepository()
	if _, err := alertRepo.Get(ctx, cmd.AlertID()); err != nil {
		return err
	}

	if err := alertRepo.Delete(ctx, cmd.AlertID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
