package queries

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAlertsQueryHandler retrieves pages of alerts from the database.
type GetAlertsQueryHandler struct {
	db *gorm.DB
}

// NewGetAlertsQueryHandler creates a handler for alert list queries.
func NewGetAlertsQueryHandler(db *gorm.DB) GetAlertsQueryHandler {
	return GetAlertsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered newest first; the total
// counts all rows matching the filters, not just the returned page.
func (h GetAlertsQueryHandler) Handle(
	ctx context.Context,
	query GetAlertsQuery,
) (GetAlertsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAlertsQueryResponse{}, err
	}

	where := " WHERE 1=1"
	args := make([]any, 0, 4)
	if query.Resolved() != nil {
		where += " AND resolved = ?"
		args = append(args, *query.Resolved())
	}
	if query.OrderID() != nil {
		where += " AND order_id = ?"
		args = append(args, query.OrderID().Bytes())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM alerts"+where, args...).
		Scan(&total).Error; err != nil {
		return GetAlertsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			alert_type,
			message,
			triggered_at,
			resolved
		FROM alerts`+where+`
		ORDER BY triggered_at DESC
		OFFSET ? LIMIT ?
	`, append(args, query.Skip(), query.Take())...).Rows()
	if err != nil {
		return GetAlertsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetAlertsQueryResponse{
		Alerts: make([]AlertResponse, 0, query.Take()),
		Total:  total,
	}

	for rows.Next() {
		var (
			alertResp AlertResponse
			orderID   uuid.UUID
			alertType string
		)

		if err = rows.Scan(
			&alertResp.ID,
			&orderID,
			&alertType,
			&alertResp.Message,
			&alertResp.TriggeredAt,
			&alertResp.Resolved,
		); err != nil {
			return GetAlertsQueryResponse{}, err
		}

		orderUUID, uuidErr := kernel.UUIDFromBytes(orderID[:])
		if uuidErr != nil {
			return GetAlertsQueryResponse{}, uuidErr
		}
		alertResp.OrderID = orderUUID

		ruleType, typeErr := alert.RuleTypeFromString(alertType)
		if typeErr != nil {
			return GetAlertsQueryResponse{}, typeErr
		}
		alertResp.AlertType = ruleType

		response.Alerts = append(response.Alerts, alertResp)
	}

	return response, rows.Err()
}
