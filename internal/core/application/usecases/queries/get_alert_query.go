package queries

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrGetAlertQueryIsNotConstructed = errors.New(
	"GetAlertQuery must be created via NewGetAlertQuery constructor",
)

// GetAlertQuery retrieves a single alert by its identifier.
type GetAlertQuery struct {
	alertID uint

	guard guard.ConstructorGuard
}

// NewGetAlertQuery creates a query for a single alert.
func NewGetAlertQuery(alertID uint) (GetAlertQuery, error) {
	if alertID == 0 {
		return GetAlertQuery{}, errs.NewValueIsRequiredError("alertId")
	}

	return GetAlertQuery{
		alertID: alertID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAlertQuery) Validate() error {
	return q.guard.Validate(ErrGetAlertQueryIsNotConstructed)
}

// AlertID returns the identifier of the alert to fetch.
func (q GetAlertQuery) AlertID() uint {
	return q.alertID
}
