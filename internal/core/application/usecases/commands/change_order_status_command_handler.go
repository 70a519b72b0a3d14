package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
)

// OrderStatusNotifier is notified after a status change has been committed.
// Implementations dispatch an order-status-changed notification to the
// order's owner; failures are theirs to log, never to propagate.
type OrderStatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, changedOrder *order.Order, from order.Status, to order.Status)
}

// ChangeOrderStatusResult is the outcome of a status change request:
// the order after the operation, a message describing what happened
// (including idempotent no-ops), and the event ID recorded for the
// transition, empty when no event was written.
type ChangeOrderStatusResult struct {
	Order   *order.Order
	Message string
	EventID string
}

// ChangeOrderStatusCommandHandler handles order status transitions.
//
// Two idempotency layers make retries safe:
//   - requesting the status the order already has is a no-op;
//   - replaying a previously processed event ID is a no-op, even if the
//     order has moved on since.
//
// The status update and the event append happen in one transaction, and the
// order row is locked for the duration, serializing concurrent transitions
// on the same order.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   OrderStatusNotifier
}

// NewChangeOrderStatusCommandHandler creates a handler for status change
// operations. The notifier may be nil when status change notifications are
// not wanted.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier OrderStatusNotifier,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status change command.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	trackedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if trackedOrder.Status() == cmd.Status() {
		return ChangeOrderStatusResult{
			Order:   trackedOrder,
			Message: fmt.Sprintf("order is already in status %s, no changes applied", cmd.Status()),
		}, nil
	}

	if cmd.EventID() != "" {
		exists, existsErr := orderRepo.EventExists(ctx, cmd.EventID())
		if existsErr != nil {
			return ChangeOrderStatusResult{}, existsErr
		}
		if exists {
			return ChangeOrderStatusResult{
				Order:   trackedOrder,
				Message: fmt.Sprintf("event %s was already processed, no changes applied", cmd.EventID()),
				EventID: cmd.EventID(),
			}, nil
		}
	}

	previousStatus := trackedOrder.Status()
	event, err := trackedOrder.ChangeStatus(cmd.Status(), cmd.EventID(), time.Now())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = orderRepo.AddEvent(ctx, event); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if h.notifier != nil && trackedOrder.UserID() != nil {
		h.notifier.NotifyStatusChanged(ctx, trackedOrder, previousStatus, trackedOrder.Status())
	}

	slog.Info("order status changed",
		"orderId", trackedOrder.ID().String(),
		"from", previousStatus.String(),
		"to", trackedOrder.Status().String(),
		"eventId", event.EventID(),
	)

	return ChangeOrderStatusResult{
		Order:   trackedOrder,
		Message: fmt.Sprintf("order status changed from %s to %s", previousStatus, trackedOrder.Status()),
		EventID: event.EventID(),
	}, nil
}
