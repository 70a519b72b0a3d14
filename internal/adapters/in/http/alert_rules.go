package http

import (
	"net/http"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/queries"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"

	"github.com/labstack/echo/v4"
)

// alertRuleJSON is the wire representation of an alert rule.
type alertRuleJSON struct {
	ID        uint      `json:"id"`
	RuleType  string    `json:"rule_type"`
	Threshold int       `json:"threshold"`
	Active    bool      `json:"active"`
	UserID    *string   `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func alertRuleResponseJSON(response queries.AlertRuleResponse) alertRuleJSON {
	return alertRuleJSON{
		ID:        response.ID,
		RuleType:  response.RuleType.String(),
		Threshold: response.Threshold,
		Active:    response.Active,
		UserID:    response.UserID,
		CreatedAt: response.CreatedAt,
		UpdatedAt: response.UpdatedAt,
	}
}

func alertRuleAggregateJSON(aggregate *alert.Rule) alertRuleJSON {
	return alertRuleJSON{
		ID:        aggregate.ID(),
		RuleType:  aggregate.RuleType().String(),
		Threshold: aggregate.Threshold(),
		Active:    aggregate.Active(),
		UserID:    aggregate.UserID(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// GetAlertRules handles GET /api/v1/alert-rules.
func (s *Server) GetAlertRules(ctx echo.Context) error {
	active, ok := optionalBool(ctx, "active")
	if !ok {
		return respondBadRequest(ctx, "invalid active filter")
	}

	rules, err := s.handlers.GetAlertRules.Handle(
		ctx.Request().Context(),
		queries.NewGetAlertRulesQuery(active),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]alertRuleJSON, len(rules))
	for i, rule := range rules {
		response[i] = alertRuleResponseJSON(rule)
	}

	return respond(ctx, http.StatusOK, response)
}

// GetAlertRule handles GET /api/v1/alert-rules/:id.
func (s *Server) GetAlertRule(ctx echo.Context) error {
	ruleID, ok := parseUintParam(ctx, "id")
	if !ok {
		return respondBadRequest(ctx, "invalid rule id")
	}

	query, err := queries.NewGetAlertRuleQuery(ruleID)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.handlers.GetAlertRule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, alertRuleResponseJSON(found))
}

// CreateAlertRule handles POST /api/v1/alert-rules. Returns 409 when an
// active rule of the same type already exists.
func (s *Server) CreateAlertRule(ctx echo.Context) error {
	var body struct {
		RuleType  string  `json:"rule_type"`
		Threshold int     `json:"threshold"`
		Active    *bool   `json:"active"`
		UserID    *string `json:"user_id"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	ruleType, err := alert.RuleTypeFromString(body.RuleType)
	if err != nil {
		return respondError(ctx, err)
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}

	cmd, err := commands.NewCreateAlertRuleCommand(ruleType, body.Threshold, active, body.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateAlertRule.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, alertRuleAggregateJSON(created))
}

// UpdateAlertRule handles PUT /api/v1/alert-rules/:id.
func (s *Server) UpdateAlertRule(ctx echo.Context) error {
	ruleID, ok := parseUintParam(ctx, "id")
	if !ok {
		return respondBadRequest(ctx, "invalid rule id")
	}

	var body struct {
		RuleType  *string `json:"rule_type"`
		Threshold *int    `json:"threshold"`
		Active    *bool   `json:"active"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var ruleType *alert.RuleType
	if body.RuleType != nil {
		parsed, err := alert.RuleTypeFromString(*body.RuleType)
		if err != nil {
			return respondError(ctx, err)
		}
		ruleType = &parsed
	}

	cmd, err := commands.NewUpdateAlertRuleCommand(ruleID, ruleType, body.Threshold, body.Active)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateAlertRule.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, alertRuleAggregateJSON(updated))
}

// ToggleAlertRule handles POST /api/v1/alert-rules/:id/toggle.
func (s *Server) ToggleAlertRule(ctx echo.Context) error {
	ruleID, ok := parseUintParam(ctx, "id")
	if !ok {
		return respondBadRequest(ctx, "invalid rule id")
	}

	cmd, err := commands.NewToggleAlertRuleCommand(ruleID)
	if err != nil {
		return respondError(ctx, err)
	}

	toggled, err := s.handlers.ToggleAlertRule.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, alertRuleAggregateJSON(toggled))
}

// DeleteAlertRule handles DELETE /api/v1/alert-rules/:id.
func (s *Server) DeleteAlertRule(ctx echo.Context) error {
	ruleID, ok := parseUintParam(ctx, "id")
	if !ok {
		return respondBadRequest(ctx, "invalid rule id")
	}

	cmd, err := commands.NewDeleteAlertRuleCommand(ruleID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteAlertRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "alert rule deleted"})
}

// ExecuteAlertRules handles POST /api/v1/alert-rules/execute. Runs the full
// evaluation sweep synchronously and reports its counters.
func (s *Server) ExecuteAlertRules(ctx echo.Context) error {
	cmd, err := commands.NewExecuteAlertRulesCommand("manual")
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.ExecuteAlertRules.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]any{
		"rules_evaluated":        result.RulesEvaluated,
		"orders_scanned":         result.OrdersScanned,
		"alerts_created":         result.AlertsCreated,
		"notifications_created":  result.NotificationsCreated,
		"unique_users_notified":  result.UniqueUsersNotified,
		"failed_evaluations":     result.FailedEvaluations,
	})
}

// GetAlertRuleStats handles GET /api/v1/alert-rules/stats.
func (s *Server) GetAlertRuleStats(ctx echo.Context) error {
	stats, err := s.handlers.GetAlertRuleStats.Handle(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]any{
		"total":    stats.Total,
		"active":   stats.Active,
		"inactive": stats.Inactive,
		"by_type":  stats.ByType,
	})
}
