package commands

import (
	"errors"
	"fmt"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrUpdateAlertRuleCommandIsNotConstructed = errors.New(
	"UpdateAlertRuleCommand must be created via NewUpdateAlertRuleCommand constructor",
)

// UpdateAlertRuleCommand represents a partial update of an alert rule.
// Nil fields are left unchanged.
type UpdateAlertRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID    uint
	ruleType  *alert.RuleType
	threshold *int
	active    *bool

	guard guard.ConstructorGuard
}

// NewUpdateAlertRuleCommand creates a command to update an alert rule.
// Each non-nil field is validated; at least one field must be provided.
func NewUpdateAlertRuleCommand(
	ruleID uint,
	ruleType *alert.RuleType,
	threshold *int,
	active *bool,
) (UpdateAlertRuleCommand, error) {
	if ruleID == 0 {
		return UpdateAlertRuleCommand{}, errs.NewValueIsRequiredError("ruleId")
	}
	if ruleType == nil && threshold == nil && active == nil {
		return UpdateAlertRuleCommand{}, errs.NewValueIsRequiredError("at least one field to update")
	}

	ruleCommand := UpdateAlertRuleCommand{
		guard:  guard.NewConstructorGuard(),
		ruleID: ruleID,
		active: active,
	}

	if err := errors.Join(
		ruleCommand.setRuleType(ruleType),
		ruleCommand.setThreshold(threshold),
	); err != nil {
		return UpdateAlertRuleCommand{}, err
	}

	return ruleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAlertRuleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAlertRuleCommandIsNotConstructed)
}

// RuleID returns the identifier of the rule to update.
func (c UpdateAlertRuleCommand) RuleID() uint {
	return c.ruleID
}

// RuleType returns the new predicate kind, or nil to leave unchanged.
func (c UpdateAlertRuleCommand) RuleType() *alert.RuleType {
	return c.ruleType
}

// Threshold returns the new threshold, or nil to leave unchanged.
func (c UpdateAlertRuleCommand) Threshold() *int {
	return c.threshold
}

// Active returns the new active flag, or nil to leave unchanged.
func (c UpdateAlertRuleCommand) Active() *bool {
	return c.active
}

func (c *UpdateAlertRuleCommand) setRuleType(ruleType *alert.RuleType) error {
	if ruleType == nil {
		return nil
	}
	if err := ruleType.Validate(); err != nil {
		return err
	}

	c.ruleType = ruleType
	return nil
}

func (c *UpdateAlertRuleCommand) setThreshold(threshold *int) error {
	if threshold == nil {
		return nil
	}
	if *threshold <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is not greater than 0", *threshold),
		)
	}

	c.threshold = threshold
	return nil
}
