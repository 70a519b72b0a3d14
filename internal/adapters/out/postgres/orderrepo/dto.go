// Package orderrepo provides GORM-based persistence for order aggregates
// and their append-only status event log.
package orderrepo

import (
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName        string    `gorm:"index"`
	UserID              *string   `gorm:"index"`
	Status              string    `gorm:"index"`
	EstimatedDeliveryAt *time.Time
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// EventDTO represents one row of the order status event log. The event_id
// column carries the idempotency token and is unique across all orders.
type EventDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	EventType string
	Timestamp time.Time `gorm:"index"`
	EventID   string    `gorm:"uniqueIndex"`
	UserID    *string
}

// TableName specifies the database table name for order status events.
func (EventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerName:        aggregate.CustomerName(),
		UserID:              aggregate.UserID(),
		Status:              aggregate.Status().String(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.UserID,
		status,
		dto.EstimatedDeliveryAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// eventFromDomain converts a status event to its database representation.
func eventFromDomain(event *order.Event) EventDTO {
	return EventDTO{
		ID:        event.ID(),
		OrderID:   event.OrderID().Bytes(),
		EventType: event.EventType().String(),
		Timestamp: event.Timestamp(),
		EventID:   event.EventID(),
		UserID:    event.UserID(),
	}
}

// eventToDomain converts a database DTO to a status event.
func eventToDomain(dto EventDTO) (*order.Event, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	eventType, err := order.StatusFromString(dto.EventType)
	if err != nil {
		return nil, err
	}

	return order.RestoreEvent(dto.ID, orderID, eventType, dto.EventID, dto.Timestamp, dto.UserID)
}
