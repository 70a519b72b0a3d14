package queries

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusHistoryQueryHandler retrieves an order's event log,
// oldest event first.
type GetOrderStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusHistoryQueryHandler creates a handler for event log queries.
func NewGetOrderStatusHistoryQueryHandler(db *gorm.DB) GetOrderStatusHistoryQueryHandler {
	return GetOrderStatusHistoryQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when the order
// does not exist; an existing order with only its creation event returns
// that single entry.
func (h GetOrderStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusHistoryQuery,
) ([]OrderEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE id = ?", query.OrderID().Bytes()).
		Scan(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			timestamp,
			event_id,
			user_id
		FROM order_events
		WHERE order_id = ?
		ORDER BY timestamp ASC, id ASC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]OrderEventResponse, 0)
	for rows.Next() {
		var (
			eventResp OrderEventResponse
			eventType string
		)
		if err = rows.Scan(&eventType, &eventResp.Timestamp, &eventResp.EventID, &eventResp.UserID); err != nil {
			return nil, err
		}

		eventStatus, statusErr := order.StatusFromString(eventType)
		if statusErr != nil {
			return nil, statusErr
		}
		eventResp.EventType = eventStatus

		history = append(history, eventResp)
	}

	return history, rows.Err()
}
