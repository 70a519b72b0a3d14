package commands

import (
	"errors"
	"fmt"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrCreateAlertRuleCommandIsNotConstructed = errors.New(
	"CreateAlertRuleCommand must be created via NewCreateAlertRuleCommand constructor",
)

// CreateAlertRuleCommand represents a request to register a new alert rule.
type CreateAlertRuleCommand struct { //nolint:recvcheck //using for validation
	ruleType  alert.RuleType
	threshold int
	active    bool
	userID    *string

	guard guard.ConstructorGuard
}

// NewCreateAlertRuleCommand creates a command to register a new alert rule.
// Validates the rule type and requires a strictly positive threshold.
func NewCreateAlertRuleCommand(
	ruleType alert.RuleType,
	threshold int,
	active bool,
	userID *string,
) (CreateAlertRuleCommand, error) {
	ruleCommand := CreateAlertRuleCommand{
		guard:  guard.NewConstructorGuard(),
		active: active,
		userID: userID,
	}

	if err := errors.Join(
		ruleCommand.setRuleType(ruleType),
		ruleCommand.setThreshold(threshold),
	); err != nil {
		return CreateAlertRuleCommand{}, err
	}

	return ruleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAlertRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreateAlertRuleCommandIsNotConstructed)
}

// RuleType returns the predicate kind to register.
func (c CreateAlertRuleCommand) RuleType() alert.RuleType {
	return c.ruleType
}

// Threshold returns the configured positive threshold.
func (c CreateAlertRuleCommand) Threshold() int {
	return c.threshold
}

// Active reports whether the rule starts active.
func (c CreateAlertRuleCommand) Active() bool {
	return c.active
}

// UserID returns the owning user, or nil.
func (c CreateAlertRuleCommand) UserID() *string {
	return c.userID
}

func (c *CreateAlertRuleCommand) setRuleType(ruleType alert.RuleType) error {
	if err := ruleType.Validate(); err != nil {
		return err
	}

	c.ruleType = ruleType
	return nil
}

func (c *CreateAlertRuleCommand) setThreshold(threshold int) error {
	if threshold <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is not greater than 0", threshold),
		)
	}

	c.threshold = threshold
	return nil
}
