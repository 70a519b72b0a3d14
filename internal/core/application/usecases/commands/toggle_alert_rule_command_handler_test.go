package commands_test

import (
	"testing"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreRule(t *testing.T, id uint, active bool) *alert.Rule {
	t.Helper()

	now := time.Now()
	rule, err := alert.RestoreRule(id, alert.RuleTypeNotDispatchedInXDays, 3, active, nil, now, now)
	require.NoError(t, err)
	return rule
}

func TestToggleAlertRuleCommandHandler_Handle_Deactivate(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewToggleAlertRuleCommand(7)

	repo := new(MockAlertRuleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AlertRuleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint(7)).Return(restoreRule(t, 7, true), nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*alert.Rule")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAlertRuleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewToggleAlertRuleCommandHandler(factory)
	rule, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, rule.Active())
	// deactivation needs no uniqueness check
	repo.AssertNotCalled(t, "ActiveExists", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleAlertRuleCommandHandler_Handle_ActivateConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewToggleAlertRuleCommand(7)

	repo := new(MockAlertRuleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AlertRuleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint(7)).Return(restoreRule(t, 7, false), nil).Once(),
		repo.On("ActiveExists", mock.Anything, alert.RuleTypeNotDispatchedInXDays, uint(7)).
			Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAlertRuleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewToggleAlertRuleCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestToggleAlertRuleCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewToggleAlertRuleCommand(99)

	repo := new(MockAlertRuleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AlertRuleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint(99)).
			Return(nil, errs.NewObjectNotFoundError("ruleId", uint(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAlertRuleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewToggleAlertRuleCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
