package commands_test

import (
	"context"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
	"github.com/francomiret/orders-tracker-app/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetUndeliveredPage(ctx context.Context, offset, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepository) AddEvent(ctx context.Context, event *order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockOrderRepository) EventExists(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepository) GetEvents(ctx context.Context, orderID kernel.UUID) ([]*order.Event, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Event), args.Error(1)
}

type MockAlertRepository struct{ mock.Mock }

func (m *MockAlertRepository) Add(ctx context.Context, a *alert.Alert) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAlertRepository) Get(ctx context.Context, id uint) (*alert.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alert.Alert), args.Error(1)
}
func (m *MockAlertRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAlertRepository) UnresolvedExists(
	ctx context.Context, orderID kernel.UUID, alertType alert.RuleType,
) (bool, error) {
	args := m.Called(ctx, orderID, alertType)
	return args.Bool(0), args.Error(1)
}

type MockAlertRuleRepository struct{ mock.Mock }

func (m *MockAlertRuleRepository) Add(ctx context.Context, r *alert.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockAlertRuleRepository) Update(ctx context.Context, r *alert.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockAlertRuleRepository) Get(ctx context.Context, id uint) (*alert.Rule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alert.Rule), args.Error(1)
}
func (m *MockAlertRuleRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAlertRuleRepository) GetAllActive(ctx context.Context) ([]*alert.Rule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*alert.Rule), args.Error(1)
}
func (m *MockAlertRuleRepository) ActiveExists(
	ctx context.Context, ruleType alert.RuleType, excludeID uint,
) (bool, error) {
	args := m.Called(ctx, ruleType, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Get(ctx context.Context, id uint) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}
func (m *MockNotificationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockNotificationRepository) MarkAllRead(
	ctx context.Context, userID *string, readAt time.Time,
) (int64, error) {
	args := m.Called(ctx, userID, readAt)
	return args.Get(0).(int64), args.Error(1)
}

type MockPushSender struct{ mock.Mock }

func (m *MockPushSender) PushToUser(ctx context.Context, userID string, n *notification.Notification) error {
	args := m.Called(ctx, userID, n)
	return args.Error(0)
}
func (m *MockPushSender) PushToAdmins(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// MockUoW satisfies every unit of work subset the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) AlertRepository() ports.AlertRepository {
	args := m.Called()
	return args.Get(0).(ports.AlertRepository)
}
func (m *MockUoW) AlertRuleRepository() ports.AlertRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.AlertRuleRepository)
}
func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAlertRuleUoWFactory struct{ mock.Mock }

func (m *MockAlertRuleUoWFactory) Create() commands.AlertRuleUoW {
	args := m.Called()
	return args.Get(0).(commands.AlertRuleUoW)
}

type MockAlertUoWFactory struct{ mock.Mock }

func (m *MockAlertUoWFactory) Create() commands.AlertUoW {
	args := m.Called()
	return args.Get(0).(commands.AlertUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockEvaluationUoWFactory struct{ mock.Mock }

func (m *MockEvaluationUoWFactory) Create() commands.EvaluationUoW {
	args := m.Called()
	return args.Get(0).(commands.EvaluationUoW)
}
