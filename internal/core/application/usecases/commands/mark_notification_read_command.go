package commands

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand represents a request to mark a single
// notification as read. The operation is idempotent.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID uint

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark a notification as read.
func NewMarkNotificationReadCommand(notificationID uint) (MarkNotificationReadCommand, error) {
	if notificationID == 0 {
		return MarkNotificationReadCommand{}, errs.NewValueIsRequiredError("notificationId")
	}

	return MarkNotificationReadCommand{
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the identifier of the notification to mark.
func (c MarkNotificationReadCommand) NotificationID() uint {
	return c.notificationID
}
