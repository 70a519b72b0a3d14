package order

import (
	"errors"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a trackable delivery order. It is the aggregate root that
// manages the order lifecycle from creation through preparation and dispatch
// to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty customer name
//   - Status transitions follow the sequential state machine defined by Status
//   - The current status always equals the event type of the most recently
//     applied event; ChangeStatus produces exactly one Event per real transition
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName is the name the order was placed under
	customerName string

	// userID is the owning user (nil when the order is unowned)
	userID *string

	// status is the current state in the order lifecycle
	status Status

	// estimatedDeliveryAt is the promised delivery date, if any
	estimatedDeliveryAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Created status with validation. This is the
// primary way to create an order; the companion CreationEvent method produces
// the CREATED event that must be persisted atomically with the order itself.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - customerName: name the order was placed under (required)
//   - userID: owning user, or nil
//   - estimatedDeliveryAt: promised delivery date, or nil
//   - now: creation timestamp
//
// Returns a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	customerName string,
	userID *string,
	estimatedDeliveryAt *time.Time,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}

	return &Order{
		id:                  id,
		customerName:        customerName,
		userID:              userID,
		status:              Created,
		estimatedDeliveryAt: estimatedDeliveryAt,
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence with an arbitrary status.
// It applies the same field validation as NewOrder plus status validation,
// ensuring data read back from storage still satisfies the domain invariants.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	userID *string,
	status Status,
	estimatedDeliveryAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerName, userID, estimatedDeliveryAt, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory function.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string {
	return o.customerName
}

// UserID returns the owning user, or nil when the order is unowned.
func (o *Order) UserID() *string {
	return o.userID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// EstimatedDeliveryAt returns the promised delivery date, or nil.
func (o *Order) EstimatedDeliveryAt() *time.Time {
	return o.estimatedDeliveryAt
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CreationEvent produces the CREATED event that records the order's birth.
// The caller must persist it in the same transaction as the order itself so
// the event log never lacks the initial entry.
func (o *Order) CreationEvent(now time.Time) (*Event, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return NewEvent(o.id, Created, GenerateEventID(o.id, Created, now), now, o.userID)
}

// ChangeStatus applies a status transition to the order.
//
// Behavior:
//   - An invalid target status fails with a validation error.
//   - Requesting the current status is an idempotent no-op: the order is
//     unchanged and no event is produced (the returned event is nil).
//   - A legal transition mutates the status and returns exactly one Event
//     carrying the new status. When eventID is empty a deterministic token is
//     generated from the order id, target status, and timestamp.
//   - An illegal transition fails with a validation error naming both states;
//     the order is unchanged.
//
// The caller must persist the order update and the returned event as one
// atomic unit: a status change without its event (or vice versa) violates the
// sequence invariant.
func (o *Order) ChangeStatus(target Status, eventID string, now time.Time) (*Event, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	if target == o.status {
		return nil, nil
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return nil, err
	}

	if eventID == "" {
		eventID = GenerateEventID(o.id, target, now)
	}

	event, err := NewEvent(o.id, target, eventID, now, o.userID)
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	o.updatedAt = now
	return event, nil
}
