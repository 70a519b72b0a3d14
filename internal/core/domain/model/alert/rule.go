package alert

import (
	"errors"
	"fmt"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// ErrRuleIsNotConstructed is returned when a Rule instance was not created through
// the NewRule or RestoreRule factory functions.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule or RestoreRule")

// Rule is a configured alert predicate: a rule type plus a positive threshold.
// For NOT_DISPATCHED_IN_X_DAYS the threshold is a number of days; for
// NOT_DELIVERED_SAME_DAY the threshold is kept for symmetry but the cutoff
// hour is fixed by the evaluation engine.
//
// Invariant (enforced by the registry, not by the entity): at most one active
// rule per rule type exists at any time.
type Rule struct {
	// id is the storage-assigned identifier (zero until persisted)
	id uint

	ruleType  RuleType
	threshold int
	active    bool

	// userID is the owning user, if any
	userID *string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRule creates a new alert rule with validation.
// The rule type must be valid and the threshold strictly positive.
func NewRule(ruleType RuleType, threshold int, active bool, userID *string, now time.Time) (*Rule, error) {
	if err := ruleType.Validate(); err != nil {
		return nil, err
	}
	if threshold <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is not greater than 0", threshold),
		)
	}

	return &Rule{
		ruleType:      ruleType,
		threshold:     threshold,
		active:        active,
		userID:        userID,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreRule reconstructs a Rule from persistence, including its storage-assigned id.
func RestoreRule(
	id uint,
	ruleType RuleType,
	threshold int,
	active bool,
	userID *string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Rule, error) {
	rule, err := NewRule(ruleType, threshold, active, userID, createdAt)
	if err != nil {
		return nil, err
	}

	rule.id = id
	rule.updatedAt = updatedAt
	return rule, nil
}

// Validate ensures the Rule instance was properly constructed.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned identifier, zero until persisted.
func (r *Rule) ID() uint {
	return r.id
}

// RuleType returns the predicate kind this rule configures.
func (r *Rule) RuleType() RuleType {
	return r.ruleType
}

// Threshold returns the configured positive threshold.
func (r *Rule) Threshold() int {
	return r.threshold
}

// Active reports whether the rule participates in evaluation sweeps.
func (r *Rule) Active() bool {
	return r.active
}

// UserID returns the owning user, or nil.
func (r *Rule) UserID() *string {
	return r.userID
}

// CreatedAt returns when the rule was created.
func (r *Rule) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the rule was last modified.
func (r *Rule) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetRuleType changes the predicate kind. The registry must re-check the
// active-uniqueness invariant before persisting.
func (r *Rule) SetRuleType(ruleType RuleType, now time.Time) error {
	if err := ruleType.Validate(); err != nil {
		return err
	}
	r.ruleType = ruleType
	r.updatedAt = now
	return nil
}

// SetThreshold changes the threshold, which must stay strictly positive.
func (r *Rule) SetThreshold(threshold int, now time.Time) error {
	if threshold <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is not greater than 0", threshold),
		)
	}
	r.threshold = threshold
	r.updatedAt = now
	return nil
}

// SetActive activates or deactivates the rule. Activation requires the
// registry to re-check the active-uniqueness invariant before persisting.
func (r *Rule) SetActive(active bool, now time.Time) {
	r.active = active
	r.updatedAt = now
}

// Toggle flips the active flag and returns the new state.
func (r *Rule) Toggle(now time.Time) bool {
	r.active = !r.active
	r.updatedAt = now
	return r.active
}

// AssignID records the storage-assigned identifier after the rule is persisted.
func (r *Rule) AssignID(id uint) error {
	if r.id != 0 {
		return errs.NewConflictError("rule id is already assigned")
	}
	r.id = id
	return nil
}
