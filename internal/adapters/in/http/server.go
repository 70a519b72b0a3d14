// Package http exposes the REST API. Every endpoint answers with the
// uniform envelope {success, data | error, pagination?} and maps domain
// errors onto 400/404/409/500 by errors.Is inspection.
package http

import (
	"strconv"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/queries"
	"github.com/francomiret/orders-tracker-app/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the API dispatches to.
type Handlers struct {
	// Commands
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	CreateAlertRule   commands.CreateAlertRuleCommandHandler
	UpdateAlertRule   commands.UpdateAlertRuleCommandHandler
	ToggleAlertRule   commands.ToggleAlertRuleCommandHandler
	DeleteAlertRule   commands.DeleteAlertRuleCommandHandler
	ExecuteAlertRules commands.ExecuteAlertRulesCommandHandler
	CreateAlert       commands.CreateAlertCommandHandler
	ResolveAlert      commands.ResolveAlertCommandHandler
	DeleteAlert       commands.DeleteAlertCommandHandler
	MarkRead          commands.MarkNotificationReadCommandHandler
	MarkAllRead       commands.MarkAllNotificationsReadCommandHandler
	DeleteNotif       commands.DeleteNotificationCommandHandler

	// Queries
	GetOrders            queries.GetOrdersQueryHandler
	GetOrder             queries.GetOrderQueryHandler
	GetStatusHistory     queries.GetOrderStatusHistoryQueryHandler
	ValidateIntegrity    queries.ValidateOrderIntegrityQueryHandler
	GetAlerts            queries.GetAlertsQueryHandler
	GetAlert             queries.GetAlertQueryHandler
	GetAlertRules        queries.GetAlertRulesQueryHandler
	GetAlertRule         queries.GetAlertRuleQueryHandler
	GetAlertRuleStats    queries.GetAlertRuleStatsQueryHandler
	GetNotifications     queries.GetNotificationsQueryHandler
	GetNotificationStats queries.GetNotificationStatsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every API endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/orders/:id/events", s.GetOrderStatusHistory)
	api.GET("/orders/:id/status-history", s.GetOrderStatusHistory)
	api.GET("/orders/:id/alerts", s.GetOrderAlerts)
	api.GET("/orders/:id/integrity", s.ValidateOrderIntegrity)

	api.GET("/alerts", s.GetAlerts)
	api.POST("/alerts", s.CreateAlert)
	api.GET("/alerts/:id", s.GetAlert)
	api.POST("/alerts/:id/resolve", s.ResolveAlert)
	api.DELETE("/alerts/:id", s.DeleteAlert)

	api.GET("/alert-rules", s.GetAlertRules)
	api.POST("/alert-rules", s.CreateAlertRule)
	api.GET("/alert-rules/stats", s.GetAlertRuleStats)
	api.POST("/alert-rules/execute", s.ExecuteAlertRules)
	api.GET("/alert-rules/:id", s.GetAlertRule)
	api.PUT("/alert-rules/:id", s.UpdateAlertRule)
	api.POST("/alert-rules/:id/toggle", s.ToggleAlertRule)
	api.DELETE("/alert-rules/:id", s.DeleteAlertRule)

	api.GET("/notifications", s.GetNotifications)
	api.GET("/notifications/stats", s.GetNotificationStats)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.DELETE("/notifications/:id", s.DeleteNotification)
}

// MetricsMiddleware records request counts and latencies for Prometheus.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			route := ctx.Path()
			method := ctx.Request().Method
			status := ctx.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			metrics.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// parseUintParam reads a positive integer path parameter.
func parseUintParam(ctx echo.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// parsePaging reads skip/take query parameters, defaulting to 0 and the
// query layer's page size.
func parsePaging(ctx echo.Context) (int, int) {
	skip, _ := strconv.Atoi(ctx.QueryParam("skip"))
	take, _ := strconv.Atoi(ctx.QueryParam("take"))
	if skip < 0 {
		skip = 0
	}
	return skip, take
}

// optionalString returns a pointer to the query parameter value, or nil when
// the parameter is absent.
func optionalString(ctx echo.Context, name string) *string {
	value := ctx.QueryParam(name)
	if value == "" {
		return nil
	}
	return &value
}

// optionalBool parses an optional boolean query parameter.
func optionalBool(ctx echo.Context, name string) (*bool, bool) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, false
	}
	return &value, true
}
