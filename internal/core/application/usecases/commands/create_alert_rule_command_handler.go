package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// CreateAlertRuleCommandHandler handles alert rule registration.
// Enforces the registry invariant that at most one active rule per rule
// type exists at any time.
type CreateAlertRuleCommandHandler struct {
	uowFactory AlertRuleUoWFactory
}

// NewCreateAlertRuleCommandHandler creates a handler for rule registration.
func NewCreateAlertRuleCommandHandler(uowFactory AlertRuleUoWFactory) CreateAlertRuleCommandHandler {
	return CreateAlertRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rule registration command.
// Returns a conflict error when an active rule of the same type already exists.
func (h *CreateAlertRuleCommandHandler) Handle(
	ctx context.Context,
	cmd CreateAlertRuleCommand,
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
	if cmd.Active() {
		exists, err := ruleRepo.ActiveExists(ctx, cmd.RuleType(), 0)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errs.NewConflictError(
				fmt.Sprintf("an active rule of type %s already exists", cmd.RuleType()))
		}
	}

	rule, err := alert.NewRule(cmd.RuleType(), cmd.Threshold(), cmd.Active(), cmd.UserID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = ruleRepo.Add(ctx, rule); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rule, nil
}
