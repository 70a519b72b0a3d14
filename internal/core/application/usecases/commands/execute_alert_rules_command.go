package commands

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrExecuteAlertRulesCommandIsNotConstructed = errors.New(
	"ExecuteAlertRulesCommand must be created via NewExecuteAlertRulesCommand constructor",
)

// ExecuteAlertRulesCommand represents a request to run one rule evaluation
// sweep over all undelivered orders. The trigger source is recorded for
// logging only.
type ExecuteAlertRulesCommand struct { //nolint:recvcheck //using for validation
	triggeredBy string

	guard guard.ConstructorGuard
}

// NewExecuteAlertRulesCommand creates a command to run a rule evaluation
// sweep. The triggeredBy label identifies the caller, such as "cron" or
// "api"; it defaults to "manual" when empty.
func NewExecuteAlertRulesCommand(triggeredBy string) (ExecuteAlertRulesCommand, error) {
	if triggeredBy == "" {
		triggeredBy = "manual"
	}

	return ExecuteAlertRulesCommand{
		triggeredBy: triggeredBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExecuteAlertRulesCommand) Validate() error {
	return c.guard.Validate(ErrExecuteAlertRulesCommandIsNotConstructed)
}

// TriggeredBy returns the label identifying what started the sweep.
func (c ExecuteAlertRulesCommand) TriggeredBy() string {
	return c.triggeredBy
}
