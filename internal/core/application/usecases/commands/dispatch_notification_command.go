package commands

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrDispatchNotificationCommandIsNotConstructed = errors.New(
	"DispatchNotificationCommand must be created via NewDispatchNotificationCommand constructor",
)

// DispatchNotificationCommand represents a request to deliver a notification:
// persist it and push it to the recipient's channel. A nil user ID addresses
// the notification to all administrators.
type DispatchNotificationCommand struct { //nolint:recvcheck //using for validation
	userID           *string
	notificationType notification.Type
	title            string
	message          string
	data             map[string]any

	guard guard.ConstructorGuard
}

// NewDispatchNotificationCommand creates a command to dispatch a notification.
func NewDispatchNotificationCommand(
	userID *string,
	notificationType notification.Type,
	title string,
	message string,
	data map[string]any,
) (DispatchNotificationCommand, error) {
	notificationCommand := DispatchNotificationCommand{
		guard:  guard.NewConstructorGuard(),
		userID: userID,
		data:   data,
	}

	if err := errors.Join(
		notificationCommand.setNotificationType(notificationType),
		notificationCommand.setTitle(title),
		notificationCommand.setMessage(message),
	); err != nil {
		return DispatchNotificationCommand{}, err
	}

	return notificationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationCommandIsNotConstructed)
}

// UserID returns the recipient, or nil for an admin broadcast.
func (c DispatchNotificationCommand) UserID() *string {
	return c.userID
}

// NotificationType returns the classification of the notification.
func (c DispatchNotificationCommand) NotificationType() notification.Type {
	return c.notificationType
}

// Title returns the short headline.
func (c DispatchNotificationCommand) Title() string {
	return c.title
}

// Message returns the full text of the notification.
func (c DispatchNotificationCommand) Message() string {
	return c.message
}

// Data returns the structured payload, which may be nil.
func (c DispatchNotificationCommand) Data() map[string]any {
	return c.data
}

func (c *DispatchNotificationCommand) setNotificationType(notificationType notification.Type) error {
	if err := notificationType.Validate(); err != nil {
		return err
	}

	c.notificationType = notificationType
	return nil
}

func (c *DispatchNotificationCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *DispatchNotificationCommand) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.message = message
	return nil
}
