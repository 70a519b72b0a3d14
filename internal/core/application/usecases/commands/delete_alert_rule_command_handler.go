package commands

import (
	"context"
)

// DeleteAlertRuleCommandHandler handles alert rule deletion.
type DeleteAlertRuleCommandHandler struct {
	uowFactory AlertRuleUoWFactory
}

// NewDeleteAlertRuleCommandHandler creates a handler for rule deletion operations.
func NewDeleteAlertRuleCommandHandler(uowFactory AlertRuleUoWFactory) DeleteAlertRuleCommandHandler {
	return DeleteAlertRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rule deletion command.
// Returns a not-found error when the rule does not exist.
func (h *DeleteAlertRuleCommandHandler) Handle(ctx context.Context, cmd DeleteAlertRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ruleRepo := uow.AlertRuleRepository()
	if _, err := ruleRepo.Get(ctx, cmd.RuleID()); err != nil {
		return err
	}

	if err := ruleRepo.Delete(ctx, cmd.RuleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
