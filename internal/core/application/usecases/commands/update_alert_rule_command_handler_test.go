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

func TestNewUpdateAlertRuleCommand_NoFields(t *testing.T) {
	_, err := commands.NewUpdateAlertRuleCommand(7, nil, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateAlertRuleCommand_InvalidThreshold(t *testing.T) {
	threshold := -1
	_, err := commands.NewUpdateAlertRuleCommand(7, nil, &threshold, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateAlertRuleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	threshold := 5
	cmd, _ := commands.NewUpdateAlertRuleCommand(7, nil, &threshold, nil)

	repo := new(MockAlertRuleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AlertRuleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint(7)).Return(restoreRule(t, 7, true), nil).Once(),
		repo.On("ActiveExists", mock.Anything, alert.RuleTypeNotDispatchedInXDays, uint(7)).
			Return(false, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*alert.Rule")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAlertRuleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAlertRuleCommandHandler(factory)
	rule, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 5, rule.Threshold())
}

func TestUpdateAlertRuleCommandHandler_Handle_TypeChangeConflict(t *testing.T) {
	ctx := t.Context()
	newType := alert.RuleTypeNotDeliveredSameDay
	cmd, _ := commands.NewUpdateAlertRuleCommand(7, &newType, nil, nil)

	repo := new(MockAlertRuleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AlertRuleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint(7)).Return(restoreRule(t, 7, true), nil).Once(),
		repo.On("ActiveExists", mock.Anything, alert.RuleTypeNotDeliveredSameDay, uint(7)).
			Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAlertRuleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAlertRuleCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateAlertRuleCommandHandler_Handle_DeactivatedSkipsCheck(t *testing.T) {
	ctx := t.Context()
	inactive := false
	cmd, _ := commands.NewUpdateAlertRuleCommand(7, nil, nil, &inactive)

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

	h := commands.NewUpdateAlertRuleCommandHandler(factory)
	rule, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, rule.Active())
	repo.AssertNotCalled(t, "ActiveExists", mock.Anything, mock.Anything, mock.Anything)
}
