package ports

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// and their append-only status event log.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row for the
	// duration of the surrounding transaction, serializing concurrent
	// status changes for the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetUndeliveredPage retrieves a page of orders that are not yet
	// delivered, ordered by creation time. Used by the rule evaluation
	// sweep to scan orders without loading the whole table.
	GetUndeliveredPage(ctx context.Context, offset int, limit int) ([]*order.Order, error)

	// Delete removes an order and its status events from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// AddEvent appends a status event to the order's event log and assigns
	// its storage identifier.
	AddEvent(ctx context.Context, event *order.Event) error

	// EventExists reports whether any status event with the given
	// idempotency token exists, regardless of which order it belongs to.
	EventExists(ctx context.Context, eventID string) (bool, error)

	// GetEvents retrieves the full status event log for an order, ordered
	// by timestamp ascending.
	GetEvents(ctx context.Context, orderID kernel.UUID) ([]*order.Event, error)
}
