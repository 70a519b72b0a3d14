package queries

import (
	"context"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves pages of orders from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered newest first; the total
// counts all rows matching the filters, not just the returned page.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	where := " WHERE 1=1"
	args := make([]any, 0, 4)
	if query.CustomerName() != "" {
		where += " AND customer_name ILIKE ?"
		args = append(args, "%"+query.CustomerName()+"%")
	}
	if query.UserID() != nil {
		where += " AND user_id = ?"
		args = append(args, *query.UserID())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders"+where, args...).
		Scan(&total).Error; err != nil {
		return GetOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			user_id,
			status,
			estimated_delivery_at,
			created_at,
			updated_at
		FROM orders`+where+`
		ORDER BY created_at DESC
		OFFSET ? LIMIT ?
	`, append(args, query.Skip(), query.Take())...).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	response := GetOrdersQueryResponse{
		Orders: make([]OrderResponse, 0, query.Take()),
		Total:  total,
	}

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return GetOrdersQueryResponse{}, scanErr
		}
		response.Orders = append(response.Orders, orderResp)
	}

	return response, rows.Err()
}

// scanOrderRow maps one orders row onto an OrderResponse.
func scanOrderRow(scan func(...any) error) (OrderResponse, error) {
	var (
		id        uuid.UUID
		orderResp OrderResponse
		status    string
	)

	if err := scan(
		&id,
		&orderResp.CustomerName,
		&orderResp.UserID,
		&status,
		&orderResp.EstimatedDeliveryAt,
		&orderResp.CreatedAt,
		&orderResp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.ID = orderID

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.Status = orderStatus

	return orderResp, nil
}
