package queries

import (
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
)

// GetAlertRulesQuery retrieves the configured alert rules, optionally
// filtered by active flag. The registry is small, so the listing is not
// paginated.
type GetAlertRulesQuery struct {
	active *bool
}

// NewGetAlertRulesQuery creates a query for the alert rule registry.
func NewGetAlertRulesQuery(active *bool) GetAlertRulesQuery {
	return GetAlertRulesQuery{active: active}
}

// Active returns the active filter, or nil for no filter.
func (q GetAlertRulesQuery) Active() *bool {
	return q.active
}

// AlertRuleResponse represents one alert rule row in query results.
type AlertRuleResponse struct {
	ID        uint
	RuleType  alert.RuleType
	Threshold int
	Active    bool
	UserID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
