package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// UpdateAlertRuleCommandHandler handles alert rule updates.
// When the update changes the rule type or activates the rule, it
// re-checks the one-active-rule-per-type invariant against other rules.
type UpdateAlertRuleCommandHandler struct {
	uowFactory AlertRuleUoWFactory
}

// NewUpdateAlertRuleCommandHandler creates a handler for rule update operations.
func NewUpdateAlertRuleCommandHandler(uowFactory AlertRuleUoWFactory) UpdateAlertRuleCommandHandler {
	return UpdateAlertRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rule update command.
// Returns a not-found error for an unknown rule and a conflict error when
// the update would produce a second active rule of the same type.
func (h *UpdateAlertRuleCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateAlertRuleCommand,
) (*alert.Rule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ruleRepo := uow.AlertRuleRepository()
	rule, err := ruleRepo.Get(ctx, cmd.RuleID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if cmd.RuleType() != nil {
		if err = rule.SetRuleType(*cmd.RuleType(), now); err != nil {
			return nil, err
		}
	}
	if cmd.Threshold() != nil {
		if err = rule.SetThreshold(*cmd.Threshold(), now); err != nil {
			return nil, err
		}
	}
	if cmd.Active() != nil {
		rule.SetActive(*cmd.Active(), now)
	}

	if rule.Active() {
		exists, existsErr := ruleRepo.ActiveExists(ctx, rule.RuleType(), rule.ID())
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, errs.NewConflictError(
				fmt.Sprintf("an active rule of type %s already exists", rule.RuleType()))
		}
	}

	if err = ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rule, nil
}
