// Package order provides domain entities and business logic for order tracking.
// It implements the Order aggregate root with lifecycle management, the
// append-only event log, and status sequence integrity checking.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Event: An immutable record of one status transition, carrying an idempotency token
//   - ValidateSequence: A diagnostic replay of an event log reporting sequence violations
//
// Key business rules:
//   - Order status follows a defined workflow: Created -> Preparing -> Dispatched -> Delivered
//   - The sole permitted regression is Dispatched -> Preparing (return to preparation)
//   - Requesting the current status again is an idempotent no-op producing no event
//   - Every real transition produces exactly one event; order status and event log
//     must be persisted as one atomic unit
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
