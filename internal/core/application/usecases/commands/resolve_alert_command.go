package commands

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrResolveAlertCommandIsNotConstructed = errors.New(
	"ResolveAlertCommand must be created via NewResolveAlertCommand constructor",
)

// ResolveAlertCommand represents a request to resolve an alert.
type ResolveAlertCommand struct { //nolint:recvcheck //using for validation
	alertID uint

	guard guard.ConstructorGuard
}

// NewResolveAlertCommand creates a command to resolve an alert.
func NewResolveAlertCommand(alertID uint) (ResolveAlertCommand, error) {
	if alertID == 0 {
		return ResolveAlertCommand{}, errs.NewValueIsRequiredError("alertId")
	}

	return ResolveAlertCommand{
		alertID: alertID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveAlertCommand) Validate() error {
	return c.guard.Validate(ErrResolveAlertCommandIsNotConstructed)
}

// AlertID returns the identifier of the alert to resolve.
func (c ResolveAlertCommand) AlertID() uint {
	return c.alertID
}
