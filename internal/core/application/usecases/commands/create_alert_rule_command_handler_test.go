package commands_test

import (
	"testing"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAlertRuleCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateAlertRuleCommand(alert.RuleTypeUnknown, 3, true, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateAlertRuleCommand(alert.RuleTypeNotDispatchedInXDays, 0, true, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateAlertRuleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateAlertRuleCommand(alert.RuleTypeNotDispatchedInXDays, 3, true, nil)

	repo := new(MockAlertRuleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AlertRuleRepository").Return(repo).Once(),
		repo.On("ActiveExists", mock.Anything, alert.RuleTypeNotDispatchedInXDays, uint(0)).
			Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*alert.Rule")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAlertRuleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAlertRuleCommandHandler(factory)
	rule, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, alert.RuleTypeNotDispatchedInXDays, rule.RuleType())
	assert.True(t, rule.Active())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateAlertRuleCommandHandler_Handle_DuplicateActiveRule(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateAlertRuleCommand(alert.RuleTypeNotDispatchedInXDays, 3, true, nil)

	repo := new(MockAlertRuleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AlertRuleRepository").Return(repo).Once(),
		repo.On("ActiveExists", mock.Anything, alert.RuleTypeNotDispatchedInXDays, uint(0)).
			Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAlertRuleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAlertRuleCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "NOT_DISPATCHED_IN_X_DAYS")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateAlertRuleCommandHandler_Handle_InactiveSkipsUniquenessCheck(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateAlertRuleCommand(alert.RuleTypeNotDeliveredSameDay, 1, false, nil)

	repo := new(MockAlertRuleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AlertRuleRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*alert.Rule")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAlertRuleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAlertRuleCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertNotCalled(t, "ActiveExists", mock.Anything, mock.Anything, mock.Anything)
}
