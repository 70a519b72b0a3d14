package queries

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAlertQueryHandler retrieves a single alert from the database.
type GetAlertQueryHandler struct {
	db *gorm.DB
}

// NewGetAlertQueryHandler creates a handler for single alert lookups.
func NewGetAlertQueryHandler(db *gorm.DB) GetAlertQueryHandler {
	return GetAlertQueryHandler{db: db}
}

// Handle executes the lookup. Returns a not-found error when the alert
// does not exist.
func (h GetAlertQueryHandler) Handle(ctx context.Context, query GetAlertQuery) (AlertResponse, error) {
	if err := query.Validate(); err != nil {
		return AlertResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			alert_type,
			message,
			triggered_at,
			resolved
		FROM alerts
		WHERE id = ?
	`, query.AlertID()).Rows()
	if err != nil {
		return AlertResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		return AlertResponse{}, errs.NewObjectNotFoundError("alertId", query.AlertID())
	}

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
		return AlertResponse{}, err
	}

	orderUUID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return AlertResponse{}, err
	}
	alertResp.OrderID = orderUUID

	ruleType, err := alert.RuleTypeFromString(alertType)
	if err != nil {
		return AlertResponse{}, err
	}
	alertResp.AlertType = ruleType

	return alertResp, rows.Err()
}
