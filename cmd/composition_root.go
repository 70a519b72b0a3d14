package cmd

import (
	"time"

	"github.com/francomiret/orders-tracker-app/internal/adapters/out/postgres"
	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/queries"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/services"
	"github.com/francomiret/orders-tracker-app/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pushSender ports.PushSender
	location   *time.Location
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, pushSender ports.PushSender) CompositionRoot {
	location, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil || cfg.BusinessTimezone == "" {
		location = time.UTC
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pushSender: pushSender,
		location:   location,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	dispatcher := c.CreateDispatchNotificationCommandHandler()
	notifier := commands.NewDispatchingStatusNotifier(dispatcher)
	return commands.NewChangeOrderStatusCommandHandler(f, notifier)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAlertRuleCommandHandler() commands.CreateAlertRuleCommandHandler {
	var f commands.AlertRuleUoWFactory = FuncAlertRuleUoWFactory(func() commands.AlertRuleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAlertRuleCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAlertRuleCommandHandler() commands.UpdateAlertRuleCommandHandler {
	var f commands.AlertRuleUoWFactory = FuncAlertRuleUoWFactory(func() commands.AlertRuleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAlertRuleCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleAlertRuleCommandHandler() commands.ToggleAlertRuleCommandHandler {
	var f commands.AlertRuleUoWFactory = FuncAlertRuleUoWFactory(func() commands.AlertRuleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleAlertRuleCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAlertRuleCommandHandler() commands.DeleteAlertRuleCommandHandler {
	var f commands.AlertRuleUoWFactory = FuncAlertRuleUoWFactory(func() commands.AlertRuleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAlertRuleCommandHandler(f)
}

func (c *CompositionRoot) CreateExecuteAlertRulesCommandHandler() commands.ExecuteAlertRulesCommandHandler {
	var f commands.EvaluationUoWFactory = FuncEvaluationUoWFactory(func() commands.EvaluationUoW {
		return c.uowFactory.Create()
	})
	evaluator := services.NewRuleEvaluator(c.location)
	return commands.NewExecuteAlertRulesCommandHandler(f, evaluator, c.pushSender)
}

func (c *CompositionRoot) CreateCreateAlertCommandHandler() commands.CreateAlertCommandHandler {
	var f commands.AlertUoWFactory = FuncAlertUoWFactory(func() commands.AlertUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAlertCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveAlertCommandHandler() commands.ResolveAlertCommandHandler {
	var f commands.AlertUoWFactory = FuncAlertUoWFactory(func() commands.AlertUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveAlertCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAlertCommandHandler() commands.DeleteAlertCommandHandler {
	var f commands.AlertUoWFactory = FuncAlertUoWFactory(func() commands.AlertUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAlertCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchNotificationCommandHandler() commands.DispatchNotificationCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchNotificationCommandHandler(f, c.pushSender)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkAllNotificationsReadCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteNotificationCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusHistoryQueryHandler() queries.GetOrderStatusHistoryQueryHandler {
	return queries.NewGetOrderStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateValidateOrderIntegrityQueryHandler() queries.ValidateOrderIntegrityQueryHandler {
	return queries.NewValidateOrderIntegrityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAlertsQueryHandler() queries.GetAlertsQueryHandler {
	return queries.NewGetAlertsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAlertQueryHandler() queries.GetAlertQueryHandler {
	return queries.NewGetAlertQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAlertRulesQueryHandler() queries.GetAlertRulesQueryHandler {
	return queries.NewGetAlertRulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAlertRuleQueryHandler() queries.GetAlertRuleQueryHandler {
	return queries.NewGetAlertRuleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAlertRuleStatsQueryHandler() queries.GetAlertRuleStatsQueryHandler {
	return queries.NewGetAlertRuleStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationStatsQueryHandler() queries.GetNotificationStatsQueryHandler {
	return queries.NewGetNotificationStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAlertRuleUoWFactory func() commands.AlertRuleUoW

func (f FuncAlertRuleUoWFactory) Create() commands.AlertRuleUoW {
	return f()
}

type FuncAlertUoWFactory func() commands.AlertUoW

func (f FuncAlertUoWFactory) Create() commands.AlertUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncEvaluationUoWFactory func() commands.EvaluationUoW

func (f FuncEvaluationUoWFactory) Create() commands.EvaluationUoW {
	return f()
}
