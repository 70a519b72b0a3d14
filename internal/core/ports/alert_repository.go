package ports

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
)

// AlertRepository defines the persistence contract for alerts raised by
// the rule evaluation engine.
type AlertRepository interface {
	// Add persists a new alert and assigns its storage identifier.
	Add(ctx context.Context, aggregate *alert.Alert) error

	// Update persists changes to an existing alert.
	Update(ctx context.Context, aggregate *alert.Alert) error

	// Get retrieves an alert by its identifier.
	Get(ctx context.Context, id uint) (*alert.Alert, error)

	// Delete removes an alert from storage.
	Delete(ctx context.Context, id uint) error

	// UnresolvedExists reports whether an unresolved alert already exists
	// for the given order and alert type. The engine uses this to avoid
	// raising duplicate alerts for an ongoing violation.
	UnresolvedExists(ctx context.Context, orderID kernel.UUID, alertType alert.RuleType) (bool, error)
}
