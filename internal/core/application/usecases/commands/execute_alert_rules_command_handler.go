package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/services"
	"github.com/francomiret/orders-tracker-app/internal/core/ports"
)

// defaultSweepPageSize bounds how many orders one page of the sweep loads.
const defaultSweepPageSize = 200

// ExecuteAlertRulesResult summarizes one rule evaluation sweep.
type ExecuteAlertRulesResult struct {
	// RulesEvaluated is the number of active rules the sweep ran.
	RulesEvaluated int

	// OrdersScanned is the number of undelivered orders checked.
	OrdersScanned int

	// AlertsCreated counts new alerts; triggers whose (order, type) pair
	// already had an unresolved alert do not create a second one.
	AlertsCreated int

	// NotificationsCreated counts persisted notifications, per-user and
	// admin-broadcast combined.
	NotificationsCreated int

	// UniqueUsersNotified counts distinct users that received at least one
	// per-user notification in this sweep.
	UniqueUsersNotified int

	// FailedEvaluations counts (rule, order) pairs whose evaluation or
	// write failed. Failures never abort the sweep.
	FailedEvaluations int
}

// ExecuteAlertRulesCommandHandler runs the rule evaluation sweep: every
// active rule is checked against every undelivered order, triggers raise
// deduplicated alerts and fan out notifications.
//
// Fan-out per trigger:
//   - one per-user notification when the order has an owning user,
//     deduplicated within the sweep by (user, rule type, order);
//   - one admin-broadcast notification, always, so admins see every
//     trigger even when users are deduplicated.
//
// Each trigger is written in its own transaction; a failing pair is
// counted and skipped so the rest of the sweep still lands.
type ExecuteAlertRulesCommandHandler struct {
	uowFactory EvaluationUoWFactory
	evaluator  services.RuleEvaluator
	pusher     ports.PushSender
	pageSize   int
}

// NewExecuteAlertRulesCommandHandler creates a handler for rule evaluation
// sweeps. The pusher may be nil when no push transport is configured.
func NewExecuteAlertRulesCommandHandler(
	uowFactory EvaluationUoWFactory,
	evaluator services.RuleEvaluator,
	pusher ports.PushSender,
) ExecuteAlertRulesCommandHandler {
	return ExecuteAlertRulesCommandHandler{
		uowFactory: uowFactory,
		evaluator:  evaluator,
		pusher:     pusher,
		pageSize:   defaultSweepPageSize,
	}
}

// Handle runs one evaluation sweep and returns its summary counts.
func (h *ExecuteAlertRulesCommandHandler) Handle(
	ctx context.Context,
	cmd ExecuteAlertRulesCommand,
) (ExecuteAlertRulesResult, error) {
	if err := cmd.Validate(); err != nil {
		return ExecuteAlertRulesResult{}, err
	}

	uow := h.uowFactory.Create()
	rules, err := uow.AlertRuleRepository().GetAllActive(ctx)
	if err != nil {
		return ExecuteAlertRulesResult{}, err
	}

	result := ExecuteAlertRulesResult{RulesEvaluated: len(rules)}
	if len(rules) == 0 {
		return result, nil
	}

	sweep := &sweepState{
		sessionKeys:   make(map[string]struct{}),
		notifiedUsers: make(map[string]struct{}),
	}
	now := time.Now()
	pageSize := h.pageSize
	if pageSize <= 0 {
		pageSize = defaultSweepPageSize
	}

	for offset := 0; ; offset += pageSize {
		orders, pageErr := uow.OrderRepository().GetUndeliveredPage(ctx, offset, pageSize)
		if pageErr != nil {
			return result, pageErr
		}
		if len(orders) == 0 {
			break
		}

		result.OrdersScanned += len(orders)
		for _, trackedOrder := range orders {
			for _, rule := range rules {
				h.evaluatePair(ctx, rule, trackedOrder, now, sweep, &result)
			}
		}

		if len(orders) < pageSize {
			break
		}
	}

	result.UniqueUsersNotified = len(sweep.notifiedUsers)

	slog.Info("rule evaluation sweep finished",
		"triggeredBy", cmd.TriggeredBy(),
		"rulesEvaluated", result.RulesEvaluated,
		"ordersScanned", result.OrdersScanned,
		"alertsCreated", result.AlertsCreated,
		"notificationsCreated", result.NotificationsCreated,
		"uniqueUsersNotified", result.UniqueUsersNotified,
		"failedEvaluations", result.FailedEvaluations,
	)

	return result, nil
}

// sweepState carries the per-sweep deduplication sets.
type sweepState struct {
	// sessionKeys dedupes per-user notifications by (user, rule type, order)
	sessionKeys map[string]struct{}

	notifiedUsers map[string]struct{}
}

func (h *ExecuteAlertRulesCommandHandler) evaluatePair(
	ctx context.Context,
	rule *alert.Rule,
	trackedOrder *order.Order,
	now time.Time,
	sweep *sweepState,
	result *ExecuteAlertRulesResult,
) {
	trigger, err := h.evaluator.Evaluate(rule, trackedOrder, now)
	if err != nil {
		result.FailedEvaluations++
		slog.Warn("rule evaluation failed",
			"ruleId", rule.ID(),
			"orderId", trackedOrder.ID().String(),
			"error", err,
		)
		return
	}
	if trigger == nil {
		return
	}

	if err = h.processTrigger(ctx, rule, trackedOrder, trigger, now, sweep, result); err != nil {
		result.FailedEvaluations++
		slog.Warn("processing rule trigger failed",
			"ruleId", rule.ID(),
			"orderId", trackedOrder.ID().String(),
			"error", err,
		)
	}
}

// processTrigger writes the alert and notifications for one triggering
// (rule, order) pair in its own transaction and pushes after commit.
func (h *ExecuteAlertRulesCommandHandler) processTrigger(
	ctx context.Context,
	rule *alert.Rule,
	trackedOrder *order.Order,
	trigger *services.RuleTrigger,
	now time.Time,
	sweep *sweepState,
	result *ExecuteAlertRulesResult,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	alertCreated := false
	unresolved, err := uow.AlertRepository().UnresolvedExists(ctx, trackedOrder.ID(), rule.RuleType())
	if err != nil {
		return err
	}
	if !unresolved {
		newAlert, alertErr := alert.NewAlert(trackedOrder.ID(), rule.RuleType(), trigger.Message, now)
		if alertErr != nil {
			return alertErr
		}
		if alertErr = uow.AlertRepository().Add(ctx, newAlert); alertErr != nil {
			return alertErr
		}
		alertCreated = true
	}

	data := map[string]any{
		"orderId":  trackedOrder.ID().String(),
		"ruleType": rule.RuleType().String(),
		"severity": trigger.Severity.String(),
	}
	title := fmt.Sprintf("Delivery alert (%s)", trigger.Severity)

	var pending []*notification.Notification

	if userID := trackedOrder.UserID(); userID != nil {
		key := fmt.Sprintf("%s|%s|%s", *userID, rule.RuleType(), trackedOrder.ID())
		if _, seen := sweep.sessionKeys[key]; !seen {
			userNotification, notifErr := notification.NewNotification(
				userID, notification.TypeAlertGenerated, title, trigger.Message, data, now)
			if notifErr != nil {
				return notifErr
			}
			if notifErr = uow.NotificationRepository().Add(ctx, userNotification); notifErr != nil {
				return notifErr
			}
			sweep.sessionKeys[key] = struct{}{}
			sweep.notifiedUsers[*userID] = struct{}{}
			pending = append(pending, userNotification)
		}
	}

	adminNotification, err := notification.NewNotification(
		nil, notification.TypeAdminAlert, title, trigger.Message, data, now)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, adminNotification); err != nil {
		return err
	}
	pending = append(pending, adminNotification)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if alertCreated {
		result.AlertsCreated++
	}
	result.NotificationsCreated += len(pending)

	for _, n := range pending {
		h.push(ctx, n)
	}

	return nil
}

func (h *ExecuteAlertRulesCommandHandler) push(ctx context.Context, n *notification.Notification) {
	if h.pusher == nil {
		return
	}

	var err error
	if n.IsAdminBroadcast() {
		err = h.pusher.PushToAdmins(ctx, n)
	} else {
		err = h.pusher.PushToUser(ctx, *n.UserID(), n)
	}

	if err != nil {
		slog.Warn("push delivery failed",
			"notificationId", n.ID(),
			"type", n.NotificationType().String(),
			"error", err,
		)
	}
}
