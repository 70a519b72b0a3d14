package commands_test

import (
	"errors"
	"testing"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchNotificationCommandHandler_Handle_PushesToUser(t *testing.T) {
	ctx := t.Context()
	userID := "user-1"
	cmd, _ := commands.NewDispatchNotificationCommand(
		&userID, notification.TypeAlertGenerated, "Alert", "Order abc is late", nil)

	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	pusher := new(MockPushSender)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		pusher.On("PushToUser", mock.Anything, "user-1", mock.AnythingOfType("*notification.Notification")).
			Return(nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchNotificationCommandHandler(factory, pusher)
	dispatched, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, &userID, dispatched.UserID())
	pusher.AssertExpectations(t)
}

func TestDispatchNotificationCommandHandler_Handle_BroadcastsToAdmins(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDispatchNotificationCommand(
		nil, notification.TypeAdminAlert, "Alert", "Order abc is late", nil)

	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	pusher := new(MockPushSender)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		pusher.On("PushToAdmins", mock.Anything, mock.AnythingOfType("*notification.Notification")).
			Return(nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchNotificationCommandHandler(factory, pusher)
	dispatched, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, dispatched.IsAdminBroadcast())
	pusher.AssertExpectations(t)
}

func TestDispatchNotificationCommandHandler_Handle_PushFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDispatchNotificationCommand(
		nil, notification.TypeAdminAlert, "Alert", "Order abc is late", nil)

	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	pusher := new(MockPushSender)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		pusher.On("PushToAdmins", mock.Anything, mock.AnythingOfType("*notification.Notification")).
			Return(errors.New("no subscribers")).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchNotificationCommandHandler(factory, pusher)
	dispatched, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.NotNil(t, dispatched)
}

func TestDispatchNotificationCommandHandler_Handle_NilPusher(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDispatchNotificationCommand(
		nil, notification.TypeSystemNotification, "Maintenance", "Scheduled downtime", nil)

	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchNotificationCommandHandler(factory, nil)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}

func TestMarkAllNotificationsReadCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	userID := "user-1"
	cmd, _ := commands.NewMarkAllNotificationsReadCommand(&userID)

	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("MarkAllRead", mock.Anything, &userID, mock.AnythingOfType("time.Time")).
			Return(int64(4), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkAllNotificationsReadCommandHandler(factory)
	affected, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(4), affected)
}
