package ports

import (
	"context"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification and assigns its storage identifier.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its identifier.
	Get(ctx context.Context, id uint) (*notification.Notification, error)

	// Delete removes a notification from storage.
	Delete(ctx context.Context, id uint) error

	// MarkAllRead marks every unread notification addressed to the user
	// (or every admin broadcast when userID is nil) as read at the given
	// time. Returns the number of notifications affected.
	MarkAllRead(ctx context.Context, userID *string, readAt time.Time) (int64, error)
}
