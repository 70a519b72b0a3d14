package commands

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a bulk request to mark every
// unread notification of a recipient as read. A nil user ID targets the
// admin broadcast notifications.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	userID *string

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a bulk mark-read command.
func NewMarkAllNotificationsReadCommand(userID *string) (MarkAllNotificationsReadCommand, error) {
	return MarkAllNotificationsReadCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// UserID returns the targeted recipient, or nil for admin broadcasts.
func (c MarkAllNotificationsReadCommand) UserID() *string {
	return c.userID
}
