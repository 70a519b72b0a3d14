package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// ToggleAlertRuleCommandHandler handles flipping a rule's active flag.
// Activating a rule re-checks the one-active-rule-per-type invariant.
type ToggleAlertRuleCommandHandler struct {
	uowFactory AlertRuleUoWFactory
}

// NewToggleAlertRuleCommandHandler creates a handler for rule toggle operations.
func NewToggleAlertRuleCommandHandler(uowFactory AlertRuleUoWFactory) ToggleAlertRuleCommandHandler {
	return ToggleAlertRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rule toggle command.
func (h *ToggleAlertRuleCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleAlertRuleCommand,
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

	activating := !rule.Active()
	if activating {
		exists, existsErr := ruleRepo.ActiveExists(ctx, rule.RuleType(), rule.ID())
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, errs.NewConflictError(
				fmt.Sprintf("an active rule of type %s already exists", rule.RuleType()))
		}
	}

	rule.Toggle(time.Now())

	if err = ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rule, nil
}
