package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created through
// the NewEvent or RestoreEvent factory functions.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// Event is an immutable record of one status transition applied to an order.
// Events form the order's append-only log: replayed in timestamp order they
// reproduce the full lifecycle of the order, and the current order status
// always equals the event type of the most recently appended event.
//
// Every event carries an EventID, the idempotency token that prevents the same
// transition from being applied twice on retry. The token is either supplied by
// the caller or generated deterministically via GenerateEventID.
type Event struct {
	// id is the storage-assigned identifier (zero until persisted)
	id uint

	// orderID is the owning order
	orderID kernel.UUID

	// eventType is the status the order entered with this event
	eventType Status

	// timestamp is when the transition was applied
	timestamp time.Time

	// eventID is the idempotency token, unique across all events
	eventID string

	// userID is the acting user, if any
	userID *string

	// isConstructed ensures the event was created via a factory function
	isConstructed bool
}

// GenerateEventID builds a deterministic idempotency token for a transition
// from the order id, the target status, and the transition timestamp in
// milliseconds. Callers that retry with their own token should supply it
// instead; this generator covers the case where none is given.
func GenerateEventID(orderID kernel.UUID, eventType Status, timestamp time.Time) string {
	return fmt.Sprintf("%s_%s_%d", orderID, eventType, timestamp.UnixMilli())
}

// NewEvent creates a new Event for the given order and status transition.
// The eventID must be non-empty; use GenerateEventID when the caller did not
// supply one. Returns a validation error if any parameter is invalid.
func NewEvent(
	orderID kernel.UUID,
	eventType Status,
	eventID string,
	timestamp time.Time,
	userID *string,
) (*Event, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := eventType.Validate(); err != nil {
		return nil, err
	}
	if eventID == "" {
		return nil, errs.NewValueIsRequiredError("eventID")
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &Event{
		orderID:       orderID,
		eventType:     eventType,
		timestamp:     timestamp,
		eventID:       eventID,
		userID:        userID,
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs an Event from persistence, including its
// storage-assigned id. It applies the same validation as NewEvent.
func RestoreEvent(
	id uint,
	orderID kernel.UUID,
	eventType Status,
	eventID string,
	timestamp time.Time,
	userID *string,
) (*Event, error) {
	event, err := NewEvent(orderID, eventType, eventID, timestamp, userID)
	if err != nil {
		return nil, err
	}

	event.id = id
	return event, nil
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned identifier, zero until persisted.
func (e *Event) ID() uint {
	return e.id
}

// OrderID returns the identifier of the owning order.
func (e *Event) OrderID() kernel.UUID {
	return e.orderID
}

// EventType returns the status the order entered with this event.
func (e *Event) EventType() Status {
	return e.eventType
}

// Timestamp returns when the transition was applied.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}

// EventID returns the idempotency token of this event.
func (e *Event) EventID() string {
	return e.eventID
}

// UserID returns the acting user, or nil when the transition had no actor.
func (e *Event) UserID() *string {
	return e.userID
}

// AssignID records the storage-assigned identifier after the event is persisted.
// Calling it on an event that already has an id is a programming error.
func (e *Event) AssignID(id uint) error {
	if e.id != 0 {
		return errs.NewConflictError("event id is already assigned")
	}
	e.id = id
	return nil
}
