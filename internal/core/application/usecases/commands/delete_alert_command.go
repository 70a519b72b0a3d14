package commands

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrDeleteAlertCommandIsNotConstructed = errors.New(
	"DeleteAlertCommand must be created via NewDeleteAlertCommand constructor",
)

// DeleteAlertCommand represents a request to remove an alert.
type DeleteAlertCommand struct { //nolint:recvcheck //using for validation
	alertID uint

	guard guard.ConstructorGuard
}

// NewDeleteAlertCommand creates a command to delete an alert.
func NewDeleteAlertCommand(alertID uint) (DeleteAlertCommand, error) {
	if alertID == 0 {
		return DeleteAlertCommand{}, errs.NewValueIsRequiredError("alertId")
	}

	return DeleteAlertCommand{
		alertID: alertID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAlertCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAlertCommandIsNotConstructed)
}

// AlertID returns the identifier of the alert to delete.
func (c DeleteAlertCommand) AlertID() uint {
	return c.alertID
}
