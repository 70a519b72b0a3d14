// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AlertRepoFactory provides access to the alert repository within a transaction.
	AlertRepoFactory interface {
		AlertRepository() ports.AlertRepository
	}

	// AlertRuleRepoFactory provides access to the alert rule repository within a transaction.
	AlertRuleRepoFactory interface {
		AlertRuleRepository() ports.AlertRuleRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate and its event log.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AlertRuleUoW manages transactions for alert rule registry operations.
	AlertRuleUoW interface {
		TxManager
		AlertRuleRepoFactory
	}

	// AlertRuleUoWFactory creates new alert rule unit of work instances.
	AlertRuleUoWFactory interface {
		Create() AlertRuleUoW
	}

	// AlertUoW manages transactions for alert operations. Alert creation
	// also reads the order aggregate to verify the owning order exists.
	AlertUoW interface {
		TxManager
		AlertRepoFactory
		OrderRepoFactory
	}

	// AlertUoWFactory creates new alert unit of work instances.
	AlertUoWFactory interface {
		Create() AlertUoW
	}

	// NotificationUoW manages transactions for notification operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// EvaluationUoW manages transactions for the rule evaluation sweep,
	// which reads rules and orders and writes alerts and notifications.
	EvaluationUoW interface {
		TxManager
		OrderRepoFactory
		AlertRepoFactory
		AlertRuleRepoFactory
		NotificationRepoFactory
	}

	// EvaluationUoWFactory creates new evaluation unit of work instances.
	EvaluationUoWFactory interface {
		Create() EvaluationUoW
	}
)
