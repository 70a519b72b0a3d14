package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
	"github.com/francomiret/orders-tracker-app/internal/core/ports"
)

// DispatchNotificationCommandHandler persists a notification and then pushes
// it to the recipient's channel. Persistence is the contract; the push is
// best effort and a push failure is logged, never returned.
type DispatchNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
	pusher     ports.PushSender
}

// NewDispatchNotificationCommandHandler creates a handler for notification
// dispatch. The pusher may be nil when no push transport is configured.
func NewDispatchNotificationCommandHandler(
	uowFactory NotificationUoWFactory,
	pusher ports.PushSender,
) DispatchNotificationCommandHandler {
	return DispatchNotificationCommandHandler{
		uowFactory: uowFactory,
		pusher:     pusher,
	}
}

// Handle processes the notification dispatch command.
func (h *DispatchNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchNotificationCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newNotification, err := notification.NewNotification(
		cmd.UserID(), cmd.NotificationType(), cmd.Title(), cmd.Message(), cmd.Data(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, newNotification); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.push(ctx, newNotification)

	return newNotification, nil
}

func (h *DispatchNotificationCommandHandler) push(ctx context.Context, n *notification.Notification) {
	if h.pusher == nil {
		return
	}

	var err error
	if n.IsAdminBroadcast() {
		err = h.pusher.PushToAdmins(ctx, n)
	} else {
		err = h.pusher.PushToUser(ctx, *n.UserID(), n)
	}

	if err != nil {
		slog.Warn("push delivery failed",
			"notificationId", n.ID(),
			"type", n.NotificationType().String(),
			"error", err,
		)
	}
}
