package queries

// GetNotificationStatsQuery summarizes one user's notification feed.
// A nil userID summarizes the admin broadcast feed.
type GetNotificationStatsQuery struct {
	userID *string
}

// NewGetNotificationStatsQuery creates a stats query for the given recipient.
func NewGetNotificationStatsQuery(userID *string) GetNotificationStatsQuery {
	return GetNotificationStatsQuery{userID: userID}
}

// UserID returns the recipient, or nil for the admin feed.
func (q GetNotificationStatsQuery) UserID() *string {
	return q.userID
}

// NotificationStatsResponse carries read and unread counters for a feed.
type NotificationStatsResponse struct {
	Total  int64
	Unread int64
	Read   int64
}
