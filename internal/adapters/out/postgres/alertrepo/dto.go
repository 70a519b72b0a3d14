// Package alertrepo provides GORM-based persistence for alerts raised by
// the rule evaluation engine.
package alertrepo

import (
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AlertDTO represents the database structure for persisting alerts.
type AlertDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	AlertType   string    `gorm:"index"`
	Message     string
	TriggeredAt time.Time `gorm:"index"`
	Resolved    bool      `gorm:"index"`
}

// TableName specifies the database table name for alert entities.
func (AlertDTO) TableName() string {
	return "alerts"
}

// fromDomain converts an alert domain aggregate to its database representation.
func fromDomain(aggregate *alert.Alert) AlertDTO {
	return AlertDTO{
		ID:          aggregate.ID(),
		OrderID:     aggregate.OrderID().Bytes(),
		AlertType:   aggregate.AlertType().String(),
		Message:     aggregate.Message(),
		TriggeredAt: aggregate.TriggeredAt(),
		Resolved:    aggregate.Resolved(),
	}
}

// toDomain converts a database DTO to an alert domain aggregate.
func toDomain(dto AlertDTO) (*alert.Alert, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	alertType, err := alert.RuleTypeFromString(dto.AlertType)
	if err != nil {
		return nil, err
	}

	return alert.RestoreAlert(dto.ID, orderID, alertType, dto.Message, dto.TriggeredAt, dto.Resolved)
}
