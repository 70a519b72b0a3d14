package services

import (
	"fmt"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
)

// sameDayCutoffHour is the local hour at which a same-day order still
// undelivered starts violating the NOT_DELIVERED_SAME_DAY rule.
const sameDayCutoffHour = 18

// RuleTrigger describes a rule violation detected for an order: the
// graded severity and the human-readable message that goes into the
// resulting alert and notifications.
type RuleTrigger struct {
	Severity alert.Severity
	Message  string
}

// RuleEvaluator is a domain service that checks a configured alert rule
// against a single order at a given instant.
//
// Business rules:
//   - NOT_DISPATCHED_IN_X_DAYS applies only to orders still in Created or
//     Preparing status; it triggers when the whole days elapsed since
//     creation reach the rule threshold, with severity escalating the
//     further past the threshold the order is.
//   - NOT_DELIVERED_SAME_DAY applies only to undelivered orders created on
//     the current calendar day; it triggers at or after 18:00 in the
//     configured business timezone and is always high severity.
//
// Calendar-day and hour comparisons use the evaluator's location, so the
// alerting behavior near midnight is deterministic for a deployment.
type RuleEvaluator struct {
	location *time.Location
}

// NewRuleEvaluator creates a RuleEvaluator bound to the business timezone.
// A nil location falls back to UTC.
func NewRuleEvaluator(location *time.Location) RuleEvaluator {
	if location == nil {
		location = time.UTC
	}
	return RuleEvaluator{location: location}
}

// Evaluate checks the rule against the order at the given instant.
// It returns a non-nil RuleTrigger when the rule's condition holds,
// nil when the order is compliant.
func (e RuleEvaluator) Evaluate(rule *alert.Rule, o *order.Order, now time.Time) (*RuleTrigger, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	switch rule.RuleType() {
	case alert.RuleTypeNotDispatchedInXDays:
		return e.evaluateNotDispatched(rule, o, now), nil
	case alert.RuleTypeNotDeliveredSameDay:
		return e.evaluateNotDeliveredSameDay(o, now), nil
	default:
		return nil, fmt.Errorf("unsupported rule type: %s", rule.RuleType())
	}
}

func (e RuleEvaluator) evaluateNotDispatched(rule *alert.Rule, o *order.Order, now time.Time) *RuleTrigger {
	if o.Status() != order.Created && o.Status() != order.Preparing {
		return nil
	}

	days := int(now.Sub(o.CreatedAt()).Hours() / 24)
	if days < rule.Threshold() {
		return nil
	}

	return &RuleTrigger{
		Severity: e.gradeOverdue(days, rule.Threshold()),
		Message: fmt.Sprintf("Order %s has been in status %s for %d days (threshold: %d days)",
			o.ID(), o.Status(), days, rule.Threshold()),
	}
}

// gradeOverdue escalates severity with how far past the threshold the
// order is: 2x the threshold is high, 1.5x is medium, anything past the
// threshold itself is low. The 1.5x comparison stays in integer math.
func (e RuleEvaluator) gradeOverdue(days int, threshold int) alert.Severity {
	switch {
	case days >= 2*threshold:
		return alert.SeverityHigh
	case 2*days >= 3*threshold:
		return alert.SeverityMedium
	default:
		return alert.SeverityLow
	}
}

func (e RuleEvaluator) evaluateNotDeliveredSameDay(o *order.Order, now time.Time) *RuleTrigger {
	if o.Status() == order.Delivered {
		return nil
	}

	localNow := now.In(e.location)
	localCreated := o.CreatedAt().In(e.location)
	sameDay := localNow.Year() == localCreated.Year() &&
		localNow.YearDay() == localCreated.YearDay()
	if !sameDay || localNow.Hour() < sameDayCutoffHour {
		return nil
	}

	return &RuleTrigger{
		Severity: alert.SeverityHigh,
		Message: fmt.Sprintf("Order %s created today has not been delivered (current status: %s)",
			o.ID(), o.Status()),
	}
}
