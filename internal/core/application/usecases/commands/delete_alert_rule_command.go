package commands

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrDeleteAlertRuleCommandIsNotConstructed = errors.New(
	"DeleteAlertRuleCommand must be created via NewDeleteAlertRuleCommand constructor",
)

// DeleteAlertRuleCommand represents a request to remove an alert rule.
type DeleteAlertRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID uint

	guard guard.ConstructorGuard
}

// NewDeleteAlertRuleCommand creates a command to delete an alert rule.
func NewDeleteAlertRuleCommand(ruleID uint) (DeleteAlertRuleCommand, error) {
	if ruleID == 0 {
		return DeleteAlertRuleCommand{}, errs.NewValueIsRequiredError("ruleId")
	}

	return DeleteAlertRuleCommand{
		ruleID: ruleID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAlertRuleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAlertRuleCommandIsNotConstructed)
}

// RuleID returns the identifier of the rule to delete.
func (c DeleteAlertRuleCommand) RuleID() uint {
	return c.ruleID
}
