package commands

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrDeleteNotificationCommandIsNotConstructed = errors.New(
	"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
)

// DeleteNotificationCommand represents a request to remove a notification.
type DeleteNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID uint

	guard guard.ConstructorGuard
}

// NewDeleteNotificationCommand creates a command to delete a notification.
func NewDeleteNotificationCommand(notificationID uint) (DeleteNotificationCommand, error) {
	if notificationID == 0 {
		return DeleteNotificationCommand{}, errs.NewValueIsRequiredError("notificationId")
	}

	return DeleteNotificationCommand{
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

// NotificationID returns the identifier of the notification to delete.
func (c DeleteNotificationCommand) NotificationID() uint {
	return c.notificationID
}
