package commands

import (
	"context"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
)

// MarkNotificationReadCommandHandler handles marking a notification as read.
// Repeated calls succeed without further writes.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for mark-read operations.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-read command.
func (h *MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationReadCommand,
) (*notification.Notification, error) {
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

	notificationRepo := uow.NotificationRepository()
	trackedNotification, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return nil, err
	}

	if trackedNotification.MarkRead(time.Now()) {
		if err = notificationRepo.Update(ctx, trackedNotification); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return trackedNotification, nil
}
