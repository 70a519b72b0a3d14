// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the order tracking system. It implements
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - RuleEvaluator: A domain service that checks configured alert rules against orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
