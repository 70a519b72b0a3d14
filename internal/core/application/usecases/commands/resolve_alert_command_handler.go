package commands

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
)

// ResolveAlertCommandHandler handles alert resolution.
// Resolving an already resolved alert is a conflict, surfaced from the
// domain entity.
type ResolveAlertCommandHandler struct {
	uowFactory AlertUoWFactory
}

// NewResolveAlertCommandHandler creates a handler for alert resolution operations.
func NewResolveAlertCommandHandler(uowFactory AlertUoWFactory) ResolveAlertCommandHandler {
	return ResolveAlertCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the alert resolution command.
func (h *ResolveAlertCommandHandler) Handle(ctx context.Context, cmd ResolveAlertCommand) (*alert.Alert, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	alertRepo := uow.AlertRepository()
	trackedAlert, err := alertRepo.Get(ctx, cmd.AlertID())
	if err != nil {
		return nil, err
	}

	if err = trackedAlert.Resolve(); err != nil {
		return nil, err
	}

	if err = alertRepo.Update(ctx, trackedAlert); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return trackedAlert, nil
}
