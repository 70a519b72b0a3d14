// Package notificationrepo provides GORM-based persistence for
// notifications.
package notificationrepo

import (
	"encoding/json"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
)

// NotificationDTO represents the database structure for persisting
// notifications. A NULL user_id marks an admin broadcast; the data column
// carries the structured payload as jsonb.
type NotificationDTO struct {
	ID               uint    `gorm:"primaryKey;autoIncrement"`
	UserID           *string `gorm:"index"`
	NotificationType string  `gorm:"index"`
	Title            string
	Message          string
	Data             []byte `gorm:"type:jsonb"`
	Read             bool   `gorm:"index"`
	ReadAt           *time.Time
	CreatedAt        time.Time `gorm:"index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain aggregate to its database
// representation.
func fromDomain(aggregate *notification.Notification) (NotificationDTO, error) {
	var data []byte
	if payload := aggregate.Data(); payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return NotificationDTO{}, err
		}
		data = encoded
	}

	return NotificationDTO{
		ID:               aggregate.ID(),
		UserID:           aggregate.UserID(),
		NotificationType: aggregate.NotificationType().String(),
		Title:            aggregate.Title(),
		Message:          aggregate.Message(),
		Data:             data,
		Read:             aggregate.Read(),
		ReadAt:           aggregate.ReadAt(),
		CreatedAt:        aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to a notification domain aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	notificationType, err := notification.TypeFromString(dto.NotificationType)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if len(dto.Data) > 0 {
		if err = json.Unmarshal(dto.Data, &data); err != nil {
			return nil, err
		}
	}

	return notification.RestoreNotification(
		dto.ID,
		dto.UserID,
		notificationType,
		dto.Title,
		dto.Message,
		data,
		dto.Read,
		dto.ReadAt,
		dto.CreatedAt,
	)
}
