package queries

import (
	"errors"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a page of notifications for one user,
// optionally restricted to unread ones. A nil userID lists the admin
// broadcast feed.
type GetNotificationsQuery struct {
	userID     *string
	unreadOnly bool
	skip       int
	take       int

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for a page of notifications.
// A zero or negative take falls back to the default page size.
func NewGetNotificationsQuery(userID *string, unreadOnly bool, skip, take int) (GetNotificationsQuery, error) {
	if skip < 0 {
		return GetNotificationsQuery{}, errs.NewValueIsInvalidError("skip")
	}
	if take <= 0 {
		take = defaultPageSize
	}

	return GetNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		skip:       skip,
		take:       take,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the recipient filter, or nil for the admin feed.
func (q GetNotificationsQuery) UserID() *string {
	return q.userID
}

// UnreadOnly reports whether read notifications are excluded.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// Skip returns the number of rows to skip.
func (q GetNotificationsQuery) Skip() int {
	return q.skip
}

// Take returns the page size.
func (q GetNotificationsQuery) Take() int {
	return q.take
}

// NotificationResponse represents one notification row in query results.
type NotificationResponse struct {
	ID               uint
	UserID           *string
	NotificationType notification.Type
	Title            string
	Message          string
	Data             map[string]any
	Read             bool
	ReadAt           *time.Time
	CreatedAt        time.Time
}

// GetNotificationsQueryResponse is a page of notifications plus the
// unpaginated total.
type GetNotificationsQueryResponse struct {
	Notifications []NotificationResponse
	Total         int64
}
