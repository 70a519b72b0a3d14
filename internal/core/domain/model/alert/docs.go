// Package alert contains the alerting domain model: configurable rules,
// the alerts they raise, and the severity classification of violations.
//
// A Rule describes a condition that the evaluation engine checks against
// undelivered orders (for example "not dispatched in X days"). When a rule
// matches, an Alert is raised for the offending order. Alerts stay unresolved
// until an operator resolves them, and the engine never raises a duplicate
// alert while an unresolved one exists for the same order and rule type.
package alert
