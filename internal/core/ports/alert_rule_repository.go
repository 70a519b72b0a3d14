package ports

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
)

// AlertRuleRepository defines the persistence contract for the alert rule
// registry.
type AlertRuleRepository interface {
	// Add persists a new rule and assigns its storage identifier.
	Add(ctx context.Context, aggregate *alert.Rule) error

	// Update persists changes to an existing rule.
	Update(ctx context.Context, aggregate *alert.Rule) error

	// Get retrieves a rule by its identifier.
	Get(ctx context.Context, id uint) (*alert.Rule, error)

	// Delete removes a rule from storage.
	Delete(ctx context.Context, id uint) error

	// GetAllActive retrieves every active rule, the set the evaluation
	// sweep runs against.
	GetAllActive(ctx context.Context) ([]*alert.Rule, error)

	// ActiveExists reports whether an active rule of the given type exists,
	// excluding the rule with excludeID (pass 0 to exclude none). The
	// registry uses this to enforce at most one active rule per type.
	ActiveExists(ctx context.Context, ruleType alert.RuleType, excludeID uint) (bool, error)
}
