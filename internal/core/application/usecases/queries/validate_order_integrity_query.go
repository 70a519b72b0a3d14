package queries

import (
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrValidateOrderIntegrityQueryIsNotConstructed = errors.New(
	"ValidateOrderIntegrityQuery must be created via NewValidateOrderIntegrityQuery constructor",
)

// ValidateOrderIntegrityQuery replays an order's event log and reports
// sequence violations without changing any state.
type ValidateOrderIntegrityQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewValidateOrderIntegrityQuery creates an integrity check query for
// the given order.
func NewValidateOrderIntegrityQuery(orderID kernel.UUID) (ValidateOrderIntegrityQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ValidateOrderIntegrityQuery{}, err
	}

	return ValidateOrderIntegrityQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ValidateOrderIntegrityQuery) Validate() error {
	return q.guard.Validate(ErrValidateOrderIntegrityQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to check.
func (q ValidateOrderIntegrityQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ValidateOrderIntegrityResponse carries the verdict of the replay together
// with the number of events inspected.
type ValidateOrderIntegrityResponse struct {
	OrderID     kernel.UUID
	IsValid     bool
	EventsCount int
	Violations  []order.SequenceViolation
}
