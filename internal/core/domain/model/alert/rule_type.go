package alert

import (
	"fmt"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// RuleType identifies the predicate a configured alert rule evaluates.
type RuleType int

const (
	// RuleTypeUnknown represents an invalid or undefined rule type.
	RuleTypeUnknown RuleType = iota

	// RuleTypeNotDispatchedInXDays flags orders still in Created or Preparing
	// status after the configured number of days since creation.
	RuleTypeNotDispatchedInXDays

	// RuleTypeNotDeliveredSameDay flags orders created today that are still
	// undelivered at or past the evening cutoff.
	RuleTypeNotDeliveredSameDay
)

func getRuleTypeStrings() map[RuleType]string {
	return map[RuleType]string{
		RuleTypeUnknown:              "UNKNOWN",
		RuleTypeNotDispatchedInXDays: "NOT_DISPATCHED_IN_X_DAYS",
		RuleTypeNotDeliveredSameDay:  "NOT_DELIVERED_SAME_DAY",
	}
}

func getValidRuleTypeStrings() map[RuleType]string {
	//nolint:exhaustive // RuleTypeUnknown is intentionally excluded as it's invalid
	return map[RuleType]string{
		RuleTypeNotDispatchedInXDays: "NOT_DISPATCHED_IN_X_DAYS",
		RuleTypeNotDeliveredSameDay:  "NOT_DELIVERED_SAME_DAY",
	}
}

// RuleTypeFromString parses the wire representation of a rule type.
// Returns a ValueIsInvalidError for inputs outside the known set.
func RuleTypeFromString(s string) (RuleType, error) {
	for ruleType, str := range getValidRuleTypeStrings() {
		if str == s {
			return ruleType, nil
		}
	}
	return RuleTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"ruleType",
		fmt.Errorf("%q is not one of NOT_DISPATCHED_IN_X_DAYS, NOT_DELIVERED_SAME_DAY", s),
	)
}

// Validate checks if the RuleType value is valid.
func (rt RuleType) Validate() error {
	if _, ok := getValidRuleTypeStrings()[rt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("rule type is invalid", fmt.Errorf("%d is not a valid rule type", rt))
	}
	return nil
}

// String returns the wire name of the rule type. Implements fmt.Stringer.
func (rt RuleType) String() string {
	if str, ok := getRuleTypeStrings()[rt]; ok {
		return str
	}
	return "UNKNOWN"
}

// Severity grades how far past its threshold a triggered rule is.
type Severity int

const (
	// SeverityUnknown is the zero value for an ungraded severity.
	SeverityUnknown Severity = iota
	// SeverityLow marks a rule triggered just past its threshold.
	SeverityLow
	// SeverityMedium marks a rule exceeded by a moderate margin.
	SeverityMedium
	// SeverityHigh marks a rule exceeded by double its threshold or more.
	SeverityHigh
)

// String returns the lower-case name used in notification payloads.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}
