package queries

import (
	"errors"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrGetAlertsQueryIsNotConstructed = errors.New(
	"GetAlertsQuery must be created via NewGetAlertsQuery constructor",
)

// GetAlertsQuery retrieves a page of alerts, optionally filtered by
// resolution state and order.
type GetAlertsQuery struct {
	resolved *bool
	orderID  *kernel.UUID
	skip     int
	take     int

	guard guard.ConstructorGuard
}

// NewGetAlertsQuery creates a query for a page of alerts.
// A zero or negative take falls back to the default page size.
func NewGetAlertsQuery(resolved *bool, orderID *kernel.UUID, skip, take int) (GetAlertsQuery, error) {
	if skip < 0 {
		return GetAlertsQuery{}, errs.NewValueIsInvalidError("skip")
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return GetAlertsQuery{}, err
		}
	}
	if take <= 0 {
		take = defaultPageSize
	}

	return GetAlertsQuery{
		resolved: resolved,
		orderID:  orderID,
		skip:     skip,
		take:     take,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAlertsQuery) Validate() error {
	return q.guard.Validate(ErrGetAlertsQueryIsNotConstructed)
}

// Resolved returns the resolution filter, or nil for no filter.
func (q GetAlertsQuery) Resolved() *bool {
	return q.resolved
}

// OrderID returns the order filter, or nil for no filter.
func (q GetAlertsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// Skip returns the number of rows to skip.
func (q GetAlertsQuery) Skip() int {
	return q.skip
}

// Take returns the page size.
func (q GetAlertsQuery) Take() int {
	return q.take
}

// AlertResponse represents one alert row in query results.
type AlertResponse struct {
	ID          uint
	OrderID     kernel.UUID
	AlertType   alert.RuleType
	Message     string
	TriggeredAt time.Time
	Resolved    bool
}

// GetAlertsQueryResponse is a page of alerts plus the unpaginated total.
type GetAlertsQueryResponse struct {
	Alerts []AlertResponse
	Total  int64
}
