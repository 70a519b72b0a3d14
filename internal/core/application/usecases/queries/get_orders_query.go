// Package queries contains read-only operations against the data store.
// Implements the Query side of the CQRS architecture: handlers read
// directly through GORM with raw SQL and map rows to response structs,
// bypassing the aggregate factories.
package queries

import (
	"errors"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// defaultPageSize caps list queries when the caller does not specify a take.
const defaultPageSize = 50

// GetOrdersQuery retrieves a page of orders, optionally filtered by
// customer name substring and owning user.
//
// Example:
//
//	query, err := NewGetOrdersQuery("smith", nil, 0, 20)
//	handler := NewGetOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	customerName string
	userID       *string
	skip         int
	take         int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a page of orders.
// A zero or negative take falls back to the default page size.
func NewGetOrdersQuery(customerName string, userID *string, skip, take int) (GetOrdersQuery, error) {
	if skip < 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("skip")
	}
	if take <= 0 {
		take = defaultPageSize
	}

	return GetOrdersQuery{
		customerName: customerName,
		userID:       userID,
		skip:         skip,
		take:         take,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerName returns the customer name filter, empty for no filter.
func (q GetOrdersQuery) CustomerName() string {
	return q.customerName
}

// UserID returns the owning user filter, or nil for no filter.
func (q GetOrdersQuery) UserID() *string {
	return q.userID
}

// Skip returns the number of rows to skip.
func (q GetOrdersQuery) Skip() int {
	return q.skip
}

// Take returns the page size.
func (q GetOrdersQuery) Take() int {
	return q.take
}

// OrderResponse represents one order row in query results.
type OrderResponse struct {
	ID                  kernel.UUID
	CustomerName        string
	UserID              *string
	Status              order.Status
	EstimatedDeliveryAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// GetOrdersQueryResponse is a page of orders plus the unpaginated total.
type GetOrdersQueryResponse struct {
	Orders []OrderResponse
	Total  int64
}
