package ports

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
)

// PushSender delivers persisted notifications to connected clients.
// Delivery is best effort: a push failure never rolls back the stored
// notification, callers log and move on.
type PushSender interface {
	// PushToUser delivers the notification to a single user's channel.
	PushToUser(ctx context.Context, userID string, n *notification.Notification) error

	// PushToAdmins broadcasts the notification to the administrator channel.
	PushToAdmins(ctx context.Context, n *notification.Notification) error
}
