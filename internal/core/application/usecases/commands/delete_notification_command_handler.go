package commands

import (
	"context"
)

// DeleteNotificationCommandHandler handles notification deletion.
// Notifications own no children, so this is a plain hard delete.
type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewDeleteNotificationCommandHandler creates a handler for notification deletion.
func NewDeleteNotificationCommandHandler(uowFactory NotificationUoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the notification deletion command.
// Returns a not-found error when the notification does not exist.
func (h *DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd DeleteNotificationCommand) error {
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

	notificationRepo := uow.NotificationRepository()
	if _, err := notificationRepo.Get(ctx, cmd.NotificationID()); err != nil {
		return err
	}

	if err := notificationRepo.Delete(ctx, cmd.NotificationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
