package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
)

// DispatchingStatusNotifier implements OrderStatusNotifier by dispatching
// an ORDER_STATUS_CHANGED notification to the order's owner through the
// notification dispatcher. Dispatch failures are logged and swallowed so
// a notification problem never fails a committed status change.
type DispatchingStatusNotifier struct {
	dispatcher DispatchNotificationCommandHandler
}

// NewDispatchingStatusNotifier creates a status notifier backed by the
// notification dispatcher.
func NewDispatchingStatusNotifier(dispatcher DispatchNotificationCommandHandler) DispatchingStatusNotifier {
	return DispatchingStatusNotifier{
		dispatcher: dispatcher,
	}
}

// NotifyStatusChanged dispatches a status change notification to the
// order's owning user.
func (n DispatchingStatusNotifier) NotifyStatusChanged(
	ctx context.Context,
	changedOrder *order.Order,
	from order.Status,
	to order.Status,
) {
	userID := changedOrder.UserID()
	if userID == nil {
		return
	}

	cmd, err := NewDispatchNotificationCommand(
		userID,
		notification.TypeOrderStatusChanged,
		"Order status updated",
		fmt.Sprintf("Order %s changed from %s to %s", changedOrder.ID(), from, to),
		map[string]any{
			"orderId": changedOrder.ID().String(),
			"from":    from.String(),
			"to":      to.String(),
		},
	)
	if err == nil {
		_, err = n.dispatcher.Handle(ctx, cmd)
	}

	if err != nil {
		slog.Warn("status change notification failed",
			"orderId", changedOrder.ID().String(),
			"error", err,
		)
	}
}
