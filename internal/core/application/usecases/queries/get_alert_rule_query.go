package queries

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrGetAlertRuleQueryIsNotConstructed = errors.New(
	"GetAlertRuleQuery must be created via NewGetAlertRuleQuery constructor",
)

// GetAlertRuleQuery retrieves a single alert rule by its identifier.
type GetAlertRuleQuery struct {
	ruleID uint

	guard guard.ConstructorGuard
}

// NewGetAlertRuleQuery creates a query for a single alert rule.
func NewGetAlertRuleQuery(ruleID uint) (GetAlertRuleQuery, error) {
	if ruleID == 0 {
		return GetAlertRuleQuery{}, errs.NewValueIsRequiredError("ruleId")
	}

	return GetAlertRuleQuery{
		ruleID: ruleID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAlertRuleQuery) Validate() error {
	return q.guard.Validate(ErrGetAlertRuleQueryIsNotConstructed)
}

// RuleID returns the identifier of the rule to fetch.
func (q GetAlertRuleQuery) RuleID() uint {
	return q.ruleID
}
