package alertrepo

import (
	"context"
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAlertRepository implements AlertRepository using GORM.
type GormAlertRepository struct {
	db *gorm.DB
}

// NewGormAlertRepository creates a new GORM alert repository.
func NewGormAlertRepository(db *gorm.DB) *GormAlertRepository {
	return &GormAlertRepository{db: db}
}

// Add saves a new alert and assigns the storage identifier back to the
// aggregate.
func (r *GormAlertRepository) Add(ctx context.Context, aggregate *alert.Alert) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves an existing alert to the database.
func (r *GormAlertRepository) Update(ctx context.Context, aggregate *alert.Alert) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AlertDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("alertId", aggregate.ID())
	}

	return nil
}

// Get retrieves an alert by ID.
func (r *GormAlertRepository) Get(ctx context.Context, id uint) (*alert.Alert, error) {
	var dto AlertDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("alertId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an alert from storage.
func (r *GormAlertRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&AlertDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("alertId", id)
	}

	return nil
}

// UnresolvedExists reports whether an unresolved alert exists for the given
// order and alert type.
func (r *GormAlertRepository) UnresolvedExists(
	ctx context.Context,
	orderID kernel.UUID,
	alertType alert.RuleType,
) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}
	if err := alertType.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&AlertDTO{}).
		Where("order_id = ? AND alert_type = ? AND resolved = FALSE", orderID.Bytes(), alertType.String()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
