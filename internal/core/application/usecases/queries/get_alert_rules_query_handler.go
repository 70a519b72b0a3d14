package queries

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"

	"gorm.io/gorm"
)

// GetAlertRulesQueryHandler retrieves the alert rule registry.
type GetAlertRulesQueryHandler struct {
	db *gorm.DB
}

// NewGetAlertRulesQueryHandler creates a handler for alert rule listings.
func NewGetAlertRulesQueryHandler(db *gorm.DB) GetAlertRulesQueryHandler {
	return GetAlertRulesQueryHandler{db: db}
}

// Handle executes the query. Rules are returned oldest first.
func (h GetAlertRulesQueryHandler) Handle(
	ctx context.Context,
	query GetAlertRulesQuery,
) ([]AlertRuleResponse, error) {
	where := " WHERE 1=1"
	args := make([]any, 0, 1)
	if query.Active() != nil {
		where += " AND active = ?"
		args = append(args, *query.Active())
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
		FROM alert_rules`+where+`
		ORDER BY created_at ASC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := make([]AlertRuleResponse, 0)
	for rows.Next() {
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
			return nil, err
		}

		parsedType, typeErr := alert.RuleTypeFromString(ruleType)
		if typeErr != nil {
			return nil, typeErr
		}
		ruleResp.RuleType = parsedType

		rules = append(rules, ruleResp)
	}

	return rules, rows.Err()
}
