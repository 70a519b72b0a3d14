package commands

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrToggleAlertRuleCommandIsNotConstructed = errors.New(
	"ToggleAlertRuleCommand must be created via NewToggleAlertRuleCommand constructor",
)

// ToggleAlertRuleCommand represents a request to flip a rule's active flag.
type ToggleAlertRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID uint

	guard guard.ConstructorGuard
}

// NewToggleAlertRuleCommand creates a command to toggle an alert rule.
func NewToggleAlertRuleCommand(ruleID uint) (ToggleAlertRuleCommand, error) {
	if ruleID == 0 {
		return ToggleAlertRuleCommand{}, errs.NewValueIsRequiredError("ruleId")
	}

	return ToggleAlertRuleCommand{
		ruleID: ruleID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleAlertRuleCommand) Validate() error {
	return c.guard.Validate(ErrToggleAlertRuleCommandIsNotConstructed)
}

// RuleID returns the identifier of the rule to toggle.
func (c ToggleAlertRuleCommand) RuleID() uint {
	return c.ruleID
}
