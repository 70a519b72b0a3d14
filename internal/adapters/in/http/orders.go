package http

import (
	"net/http"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/queries"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// orderJSON is the wire representation of an order.
type orderJSON struct {
	ID                  string     `json:"id"`
	CustomerName        string     `json:"customer_name"`
	UserID              *string    `json:"user_id,omitempty"`
	Status              string     `json:"status"`
	EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func orderResponseJSON(response queries.OrderResponse) orderJSON {
	return orderJSON{
		ID:                  response.ID.String(),
		CustomerName:        response.CustomerName,
		UserID:              response.UserID,
		Status:              response.Status.String(),
		EstimatedDeliveryAt: response.EstimatedDeliveryAt,
		CreatedAt:           response.CreatedAt,
		UpdatedAt:           response.UpdatedAt,
	}
}

func orderAggregateJSON(aggregate *order.Order) orderJSON {
	return orderJSON{
		ID:                  aggregate.ID().String(),
		CustomerName:        aggregate.CustomerName(),
		UserID:              aggregate.UserID(),
		Status:              aggregate.Status().String(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body struct {
		CustomerName        string     `json:"customer_name"`
		UserID              *string    `json:"user_id"`
		EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		body.CustomerName,
		body.UserID,
		body.EstimatedDeliveryAt,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, orderAggregateJSON(created))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	skip, take := parsePaging(ctx)

	query, err := queries.NewGetOrdersQuery(
		ctx.QueryParam("customer_name"),
		optionalString(ctx, "user_id"),
		skip,
		take,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	orders := make([]orderJSON, len(page.Orders))
	for i, response := range page.Orders {
		orders[i] = orderResponseJSON(response)
	}

	return respondPage(ctx, orders, query.Skip(), query.Take(), page.Total)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, orderResponseJSON(response))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "order deleted"})
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status. The optional
// event_id is the caller's idempotency token; retries with the same token
// are absorbed as no-ops.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body struct {
		Status  string `json:"status"`
		EventID string `json:"event_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, body.EventID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]any{
		"order":    orderAggregateJSON(result.Order),
		"message":  result.Message,
		"event_id": result.EventID,
	})
}

// GetOrderStatusHistory handles GET /api/v1/orders/:id/events and
// GET /api/v1/orders/:id/status-history.
func (s *Server) GetOrderStatusHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderStatusHistoryQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.handlers.GetStatusHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	type eventJSON struct {
		EventType string    `json:"event_type"`
		Timestamp time.Time `json:"timestamp"`
		EventID   string    `json:"event_id"`
		UserID    *string   `json:"user_id,omitempty"`
	}

	events := make([]eventJSON, len(history))
	for i, event := range history {
		events[i] = eventJSON{
			EventType: event.EventType.String(),
			Timestamp: event.Timestamp,
			EventID:   event.EventID,
			UserID:    event.UserID,
		}
	}

	return respond(ctx, http.StatusOK, events)
}

// GetOrderAlerts handles GET /api/v1/orders/:id/alerts.
func (s *Server) GetOrderAlerts(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	resolved, ok := optionalBool(ctx, "resolved")
	if !ok {
		return respondBadRequest(ctx, "invalid resolved filter")
	}
	skip, take := parsePaging(ctx)

	query, err := queries.NewGetAlertsQuery(resolved, &orderID, skip, take)
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.handlers.GetAlerts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	alerts := make([]alertJSON, len(page.Alerts))
	for i, response := range page.Alerts {
		alerts[i] = alertResponseJSON(response)
	}

	return respondPage(ctx, alerts, query.Skip(), query.Take(), page.Total)
}

// ValidateOrderIntegrity handles GET /api/v1/orders/:id/integrity.
func (s *Server) ValidateOrderIntegrity(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewValidateOrderIntegrityQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.handlers.ValidateIntegrity.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	type violationJSON struct {
		EventType string    `json:"event_type"`
		Timestamp time.Time `json:"timestamp"`
		Issue     string    `json:"issue"`
	}

	violations := make([]violationJSON, len(report.Violations))
	for i, violation := range report.Violations {
		violations[i] = violationJSON{
			EventType: violation.EventType.String(),
			Timestamp: violation.Timestamp,
			Issue:     violation.Issue,
		}
	}

	return respond(ctx, http.StatusOK, map[string]any{
		"order_id":     report.OrderID.String(),
		"is_valid":     report.IsValid,
		"events_count": report.EventsCount,
		"violations":   violations,
	})
}
