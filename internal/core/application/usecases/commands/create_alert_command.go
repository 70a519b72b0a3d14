package commands

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrCreateAlertCommandIsNotConstructed = errors.New(
	"CreateAlertCommand must be created via NewCreateAlertCommand constructor",
)

// CreateAlertCommand represents a request to raise an alert for an order
// manually, outside of the rule evaluation sweep.
type CreateAlertCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	alertType alert.RuleType
	message   string

	guard guard.ConstructorGuard
}

// NewCreateAlertCommand creates a command to raise an alert.
func NewCreateAlertCommand(
	orderID kernel.UUID,
	alertType alert.RuleType,
	message string,
) (CreateAlertCommand, error) {
	alertCommand := CreateAlertCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		alertCommand.setOrderID(orderID),
		alertCommand.setAlertType(alertType),
		alertCommand.setMessage(message),
	); err != nil {
		return CreateAlertCommand{}, err
	}

	return alertCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAlertCommand) Validate() error {
	return c.guard.Validate(ErrCreateAlertCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the alert is for.
func (c CreateAlertCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AlertType returns the rule type classification of the alert.
func (c CreateAlertCommand) AlertType() alert.RuleType {
	return c.alertType
}

// Message returns the human-readable description of the violation.
func (c CreateAlertCommand) Message() string {
	return c.message
}

func (c *CreateAlertCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateAlertCommand) setAlertType(alertType alert.RuleType) error {
	if err := alertType.Validate(); err != nil {
		return err
	}

	c.alertType = alertType
	return nil
}

func (c *CreateAlertCommand) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.message = message
	return nil
}
