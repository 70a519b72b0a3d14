package queries

import (
	"context"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"gorm.io/gorm"
)

// ValidateOrderIntegrityQueryHandler replays stored order events through the
// domain sequence validator. It is purely diagnostic: a corrupted log yields
// a report with violations, never an error.
type ValidateOrderIntegrityQueryHandler struct {
	db *gorm.DB
}

// NewValidateOrderIntegrityQueryHandler creates a handler for integrity checks.
func NewValidateOrderIntegrityQueryHandler(db *gorm.DB) ValidateOrderIntegrityQueryHandler {
	return ValidateOrderIntegrityQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when the order does
// not exist.
func (h ValidateOrderIntegrityQueryHandler) Handle(
	ctx context.Context,
	query ValidateOrderIntegrityQuery,
) (ValidateOrderIntegrityResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateOrderIntegrityResponse{}, err
	}

	var count int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE id = ?", query.OrderID().Bytes()).
		Scan(&count).Error; err != nil {
		return ValidateOrderIntegrityResponse{}, err
	}
	if count == 0 {
		return ValidateOrderIntegrityResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			event_type,
			event_id,
			timestamp,
			user_id
		FROM order_events
		WHERE order_id = ?
		ORDER BY timestamp ASC, id ASC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return ValidateOrderIntegrityResponse{}, err
	}
	defer rows.Close()

	events := make([]*order.Event, 0)
	for rows.Next() {
		var (
			id        uint
			eventType string
			eventID   string
			timestamp time.Time
			userID    *string
		)
		if err = rows.Scan(&id, &eventType, &eventID, &timestamp, &userID); err != nil {
			return ValidateOrderIntegrityResponse{}, err
		}

		status, statusErr := order.StatusFromString(eventType)
		if statusErr != nil {
			return ValidateOrderIntegrityResponse{}, statusErr
		}

		event, restoreErr := order.RestoreEvent(id, query.OrderID(), status, eventID, timestamp, userID)
		if restoreErr != nil {
			return ValidateOrderIntegrityResponse{}, restoreErr
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return ValidateOrderIntegrityResponse{}, err
	}

	report := order.ValidateSequence(events)

	return ValidateOrderIntegrityResponse{
		OrderID:     query.OrderID(),
		IsValid:     report.IsValid,
		EventsCount: len(events),
		Violations:  report.Violations,
	}, nil
}
