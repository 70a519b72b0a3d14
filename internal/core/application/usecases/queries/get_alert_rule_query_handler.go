package queries

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAlertRuleQueryHandler retrieves a single alert rule from the database.
type GetAlertRuleQueryHandler struct {
	db *gorm.DB
}

// NewGetAlertRuleQueryHandler creates a handler for single rule lookups.
func NewGetAlertRuleQueryHandler(db *gorm.DB) GetAlertRuleQueryHandler {
	return GetAlertRuleQueryHandler{db: db}
}

// Handle executes the lookup. Returns a not-found error when the rule
// does not exist.
func (h GetAlertRuleQueryHandler) Handle(
	ctx context.Context,
	query GetAlertRuleQuery,
) (AlertRuleResponse, error) {
	if err := query.Validate(); err != nil {
		return AlertRuleResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			rule_type,
			threshold,
			active,
			user_id,
			created_at,
			updated_at
		FROM alert_rules
		WHERE id = ?
	`, query.RuleID()).Rows()
	if err != nil {
		return AlertRuleResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		return AlertRuleResponse{}, errs.NewObjectNotFoundError("ruleId", query.RuleID())
	}

	var (
		ruleResp AlertRuleResponse
		ruleType string
	)

	if err = rows.Scan(
		&ruleResp.ID,
		&ruleType,
		&ruleResp.Threshold,
		&ruleResp.Active,
		&ruleResp.UserID,
		&ruleResp.CreatedAt,
		&ruleResp.UpdatedAt,
	); err != nil {
		return AlertRuleResponse{}, err
	}

	parsedType, err := alert.RuleTypeFromString(ruleType)
	if err != nil {
		return AlertRuleResponse{}, err
	}
	ruleResp.RuleType = parsedType

	return ruleResp, rows.Err()
}
