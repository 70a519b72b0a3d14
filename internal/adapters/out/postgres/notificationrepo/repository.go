package notificationrepo

import (
	"context"
	"errors"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add saves a new notification and assigns the storage identifier back to
// the aggregate.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves an existing notification to the database.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notificationId", aggregate.ID())
	}

	return nil
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id uint) (*notification.Notification, error) {
	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notificationId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a notification from storage.
func (r *GormNotificationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&NotificationDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notificationId", id)
	}

	return nil
}

// MarkAllRead marks every unread notification of the given recipient as
// read. A nil userID targets the admin broadcast feed. Returns the number
// of rows affected.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, userID *string, readAt time.Time) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("read = FALSE")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	} else {
		query = query.Where("user_id IS NULL")
	}

	result := query.Updates(map[string]any{
		"read":    true,
		"read_at": readAt,
	})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
