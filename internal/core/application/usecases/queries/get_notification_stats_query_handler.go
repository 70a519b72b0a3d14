package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetNotificationStatsQueryHandler aggregates counters over one
// notification feed.
type GetNotificationStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationStatsQueryHandler creates a handler for feed stats.
func NewGetNotificationStatsQueryHandler(db *gorm.DB) GetNotificationStatsQueryHandler {
	return GetNotificationStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetNotificationStatsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationStatsQuery,
) (NotificationStatsResponse, error) {
	where := " WHERE "
	args := make([]any, 0, 1)
	if query.UserID() != nil {
		where += "user_id = ?"
		args = append(args, *query.UserID())
	} else {
		where += "user_id IS NULL"
	}

	var stats NotificationStatsResponse
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM notifications"+where, args...).
		Scan(&stats.Total).Error; err != nil {
		return NotificationStatsResponse{}, err
	}

	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM notifications"+where+" AND read = FALSE", args...).
		Scan(&stats.Unread).Error; err != nil {
		return NotificationStatsResponse{}, err
	}
	stats.Read = stats.Total - stats.Unread

	return stats, nil
}
