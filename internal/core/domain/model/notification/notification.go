package notification

import (
	"errors"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance was not
// created through the NewNotification or RestoreNotification factory functions.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification")

// Notification is a message delivered to a user (or broadcast to
// administrators when userID is nil). The data payload carries
// type-specific structured context, such as the order id and severity
// for alert notifications.
type Notification struct {
	// id is the storage-assigned identifier (zero until persisted)
	id uint

	// userID is the recipient; nil means admin broadcast
	userID *string

	notificationType Type
	title            string
	message          string

	// data is an open payload persisted as jsonb
	data map[string]any

	read      bool
	readAt    *time.Time
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates a new unread Notification with validation.
// A nil userID addresses the notification to all administrators.
func NewNotification(
	userID *string,
	notificationType Type,
	title string,
	message string,
	data map[string]any,
	now time.Time,
) (*Notification, error) {
	if err := notificationType.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		message:          message,
		data:             data,
		createdAt:        now,
		isConstructed:    true,
	}, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id uint,
	userID *string,
	notificationType Type,
	title string,
	message string,
	data map[string]any,
	read bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(userID, notificationType, title, message, data, createdAt)
	if err != nil {
		return nil, err
	}

	n.id = id
	n.read = read
	n.readAt = readAt
	return n, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned identifier, zero until persisted.
func (n *Notification) ID() uint {
	return n.id
}

// UserID returns the recipient, or nil for an admin broadcast.
func (n *Notification) UserID() *string {
	return n.userID
}

// NotificationType returns the classification of the notification.
func (n *Notification) NotificationType() Type {
	return n.notificationType
}

// Title returns the short headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the full text of the notification.
func (n *Notification) Message() string {
	return n.message
}

// Data returns the type-specific structured payload, which may be nil.
func (n *Notification) Data() map[string]any {
	return n.data
}

// Read reports whether the notification has been marked as read.
func (n *Notification) Read() bool {
	return n.read
}

// ReadAt returns when the notification was read, or nil while unread.
func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

// CreatedAt returns when the notification was created.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// IsAdminBroadcast reports whether the notification is addressed to all
// administrators instead of a single user.
func (n *Notification) IsAdminBroadcast() bool {
	return n.userID == nil
}

// MarkRead marks the notification as read and records the read time.
// Returns false when it was already read, so repeated calls are harmless.
func (n *Notification) MarkRead(now time.Time) bool {
	if n.read {
		return false
	}
	n.read = true
	n.readAt = &now
	return true
}

// AssignID records the storage-assigned identifier after the notification is persisted.
func (n *Notification) AssignID(id uint) error {
	if n.id != 0 {
		return errs.NewConflictError("notification id is already assigned")
	}
	n.id = id
	return nil
}
