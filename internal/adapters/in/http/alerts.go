package http

import (
	"net/http"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/queries"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// alertJSON is the wire representation of an alert.
type alertJSON struct {
	ID          uint      `json:"id"`
	OrderID     string    `json:"order_id"`
	AlertType   string    `json:"alert_type"`
	Message     string    `json:"message"`
	TriggeredAt time.Time `json:"triggered_at"`
	Resolved    bool      `json:"resolved"`
}

func alertResponseJSON(response queries.AlertResponse) alertJSON {
	return alertJSON{
		ID:          response.ID,
		OrderID:     response.OrderID.String(),
		AlertType:   response.AlertType.String(),
		Message:     response.Message,
		TriggeredAt: response.TriggeredAt,
		Resolved:    response.Resolved,
	}
}

func alertAggregateJSON(aggregate *alert.Alert) alertJSON {
	return alertJSON{
		ID:          aggregate.ID(),
		OrderID:     aggregate.OrderID().String(),
		AlertType:   aggregate.AlertType().String(),
		Message:     aggregate.Message(),
		TriggeredAt: aggregate.TriggeredAt(),
		Resolved:    aggregate.Resolved(),
	}
}

// GetAlerts handles GET /api/v1/alerts.
func (s *Server) GetAlerts(ctx echo.Context) error {
	resolved, ok := optionalBool(ctx, "resolved")
	if !ok {
		return respondBadRequest(ctx, "invalid resolved filter")
	}

	var orderID *kernel.UUID
	if raw := ctx.QueryParam("order_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		orderID = &parsed
	}

	skip, take := parsePaging(ctx)
	query, err := queries.NewGetAlertsQuery(resolved, orderID, skip, take)
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

// GetAlert handles GET /api/v1/alerts/:id.
func (s *Server) GetAlert(ctx echo.Context) error {
	alertID, ok := parseUintParam(ctx, "id")
	if !ok {
		return respondBadRequest(ctx, "invalid alert id")
	}

	query, err := queries.NewGetAlertQuery(alertID)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.handlers.GetAlert.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, alertResponseJSON(found))
}

// CreateAlert handles POST /api/v1/alerts.
func (s *Server) CreateAlert(ctx echo.Context) error {
	var body struct {
		OrderID   string `json:"order_id"`
		AlertType string `json:"alert_type"`
		Message   string `json:"message"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	alertType, err := alert.RuleTypeFromString(body.AlertType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateAlertCommand(orderID, alertType, body.Message)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateAlert.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, alertAggregateJSON(created))
}

// ResolveAlert handles POST /api/v1/alerts/:id/resolve.
func (s *Server) ResolveAlert(ctx echo.Context) error {
	alertID, ok := parseUintParam(ctx, "id")
	if !ok {
		return respondBadRequest(ctx, "invalid alert id")
	}

	cmd, err := commands.NewResolveAlertCommand(alertID)
	if err != nil {
		return respondError(ctx, err)
	}

	resolved, err := s.handlers.ResolveAlert.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, alertAggregateJSON(resolved))
}

// DeleteAlert handles DELETE /api/v1/alerts/:id.
func (s *Server) DeleteAlert(ctx echo.Context) error {
	alertID, ok := parseUintParam(ctx, "id")
	if !ok {
		return respondBadRequest(ctx, "invalid alert id")
	}

	cmd, err := commands.NewDeleteAlertCommand(alertID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteAlert.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "alert deleted"})
}
