package queries

import (
	"context"
	"encoding/json"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// GetNotificationsQueryHandler retrieves pages of notifications from the
// database.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification list
// queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered newest first; the total
// counts all rows matching the filters, not just the returned page.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	where := " WHERE "
	args := make([]any, 0, 3)
	if query.UserID() != nil {
		where += "user_id = ?"
		args = append(args, *query.UserID())
	} else {
		where += "user_id IS NULL"
	}
	if query.UnreadOnly() {
		where += " AND read = FALSE"
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM notifications"+where, args...).
		Scan(&total).Error; err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			notification_type,
			title,
			message,
			data,
			read,
			read_at,
			created_at
		FROM notifications`+where+`
		ORDER BY created_at DESC
		OFFSET ? LIMIT ?
	`, append(args, query.Skip(), query.Take())...).Rows()
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetNotificationsQueryResponse{
		Notifications: make([]NotificationResponse, 0, query.Take()),
		Total:         total,
	}

	for rows.Next() {
		var (
			notificationResp NotificationResponse
			notificationType string
			rawData          []byte
		)

		if err = rows.Scan(
			&notificationResp.ID,
			&notificationResp.UserID,
			&notificationType,
			&notificationResp.Title,
			&notificationResp.Message,
			&rawData,
			&notificationResp.Read,
			&notificationResp.ReadAt,
			&notificationResp.CreatedAt,
		); err != nil {
			return GetNotificationsQueryResponse{}, err
		}

		parsedType, typeErr := notification.TypeFromString(notificationType)
		if typeErr != nil {
			return GetNotificationsQueryResponse{}, typeErr
		}
		notificationResp.NotificationType = parsedType

		if len(rawData) > 0 {
			if err = json.Unmarshal(rawData, &notificationResp.Data); err != nil {
				return GetNotificationsQueryResponse{}, err
			}
		}

		response.Notifications = append(response.Notifications, notificationResp)
	}

	return response, rows.Err()
}
