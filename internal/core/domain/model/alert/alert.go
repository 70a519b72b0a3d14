package alert

import (
	"errors"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// ErrAlertIsNotConstructed is returned when an Alert instance was not created through
// the NewAlert or RestoreAlert factory functions.
var ErrAlertIsNotConstructed = errors.New("Alert must be created via NewAlert or RestoreAlert")

// Alert is a system-raised flag that an order violated a configured rule.
// Alerts are created by the rule evaluation engine (or manually through the
// API) and mutate only by resolution.
//
// Invariant (enforced by the engine's deduplication check): for a given order
// and alert type, at most one unresolved alert exists at a time.
type Alert struct {
	// id is the storage-assigned identifier (zero until persisted)
	id uint

	// orderID is the owning order
	orderID kernel.UUID

	// alertType is the rule type that triggered this alert
	alertType RuleType

	message     string
	triggeredAt time.Time
	resolved    bool

	isConstructed bool
}

// NewAlert creates a new unresolved Alert with validation.
func NewAlert(orderID kernel.UUID, alertType RuleType, message string, triggeredAt time.Time) (*Alert, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := alertType.Validate(); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Alert{
		orderID:       orderID,
		alertType:     alertType,
		message:       message,
		triggeredAt:   triggeredAt,
		isConstructed: true,
	}, nil
}

// RestoreAlert reconstructs an Alert from persistence, including its
// storage-assigned id and resolution state.
func RestoreAlert(
	id uint,
	orderID kernel.UUID,
	alertType RuleType,
	message string,
	triggeredAt time.Time,
	resolved bool,
) (*Alert, error) {
	a, err := NewAlert(orderID, alertType, message, triggeredAt)
	if err != nil {
		return nil, err
	}

	a.id = id
	a.resolved = resolved
	return a, nil
}

// Validate ensures the Alert instance was properly constructed.
func (a *Alert) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAlertIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned identifier, zero until persisted.
func (a *Alert) ID() uint {
	return a.id
}

// OrderID returns the identifier of the owning order.
func (a *Alert) OrderID() kernel.UUID {
	return a.orderID
}

// AlertType returns the rule type that triggered this alert.
func (a *Alert) AlertType() RuleType {
	return a.alertType
}

// Message returns the human-readable description of the violation.
func (a *Alert) Message() string {
	return a.message
}

// TriggeredAt returns when the violation was detected.
func (a *Alert) TriggeredAt() time.Time {
	return a.triggeredAt
}

// Resolved reports whether the alert has been resolved.
func (a *Alert) Resolved() bool {
	return a.resolved
}

// Resolve marks the alert as resolved.
// Resolving an already resolved alert is a conflict.
func (a *Alert) Resolve() error {
	if a.resolved {
		return errs.NewConflictError("alert is already resolved")
	}
	a.resolved = true
	return nil
}

// AssignID records the storage-assigned identifier after the alert is persisted.
func (a *Alert) AssignID(id uint) error {
	if a.id != 0 {
		return errs.NewConflictError("alert id is already assigned")
	}
	a.id = id
	return nil
}
