package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAlertRuleStatsQueryHandler aggregates counters over the alert rule
// registry.
type GetAlertRuleStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetAlertRuleStatsQueryHandler creates a handler for registry stats.
func NewGetAlertRuleStatsQueryHandler(db *gorm.DB) GetAlertRuleStatsQueryHandler {
	return GetAlertRuleStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAlertRuleStatsQueryHandler) Handle(ctx context.Context) (AlertRuleStatsResponse, error) {
	stats := AlertRuleStatsResponse{ByType: make(map[string]int64)}

	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM alert_rules").
		Scan(&stats.Total).Error; err != nil {
		return AlertRuleStatsResponse{}, err
	}

	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM alert_rules WHERE active = TRUE").
		Scan(&stats.Active).Error; err != nil {
		return AlertRuleStatsResponse{}, err
	}
	stats.Inactive = stats.Total - stats.Active

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT rule_type, COUNT(*)
		FROM alert_rules
		GROUP BY rule_type
	`).Rows()
	if err != nil {
		return AlertRuleStatsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ruleType string
			count    int64
		)
		if err = rows.Scan(&ruleType, &count); err != nil {
			return AlertRuleStatsResponse{}, err
		}
		stats.ByType[ruleType] = count
	}

	return stats, rows.Err()
}
