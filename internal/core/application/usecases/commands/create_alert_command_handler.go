package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// CreateAlertCommandHandler handles manual alert creation.
// The owning order must exist, and the same deduplication rule the
// evaluation engine applies holds here: no second unresolved alert for
// the same order and alert type.
type CreateAlertCommandHandler struct {
	uowFactory AlertUoWFactory
}

// NewCreateAlertCommandHandler creates a handler for alert creation operations.
func NewCreateAlertCommandHandler(uowFactory AlertUoWFactory) CreateAlertCommandHandler {
	return CreateAlertCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the alert creation command.
func (h *CreateAlertCommandHandler) Handle(ctx context.Context, cmd CreateAlertCommand) (*alert.Alert, error) {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	alertRepo := uow.AlertRepository()
	exists, err := alertRepo.UnresolvedExists(ctx, cmd.OrderID(), cmd.AlertType())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError(
			fmt.Sprintf("an unresolved alert of type %s already exists for order %s",
				cmd.AlertType(), cmd.OrderID()))
	}

	newAlert, err := alert.NewAlert(cmd.OrderID(), cmd.AlertType(), cmd.Message(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = alertRepo.Add(ctx, newAlert); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAlert, nil
}
