// Package rulerepo provides GORM-based persistence for the alert rule
// registry.
package rulerepo

import (
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
)

// RuleDTO represents the database structure for persisting alert rules.
type RuleDTO struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	RuleType  string `gorm:"index"`
	Threshold int
	Active    bool `gorm:"index"`
	UserID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for alert rule entities.
func (RuleDTO) TableName() string {
	return "alert_rules"
}

// fromDomain converts a rule domain aggregate to its database representation.
func fromDomain(aggregate *alert.Rule) RuleDTO {
	return RuleDTO{
		ID:        aggregate.ID(),
		RuleType:  aggregate.RuleType().String(),
		Threshold: aggregate.Threshold(),
		Active:    aggregate.Active(),
		UserID:    aggregate.UserID(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a rule domain aggregate.
func toDomain(dto RuleDTO) (*alert.Rule, error) {
	ruleType, err := alert.RuleTypeFromString(dto.RuleType)
	if err != nil {
		return nil, err
	}

	return alert.RestoreRule(
		dto.ID,
		ruleType,
		dto.Threshold,
		dto.Active,
		dto.UserID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
