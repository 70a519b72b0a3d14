package commands

import (
	"errors"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
	"github.com/francomiret/orders-tracker-app/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order for tracking.
// Encapsulates the customer name, the optional owning user, and the optional
// estimated delivery time.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Jane Smith", &userID, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	order, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	customerName        string
	userID              *string
	estimatedDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid and the customer name is not empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	userID *string,
	estimatedDeliveryAt *time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard:               guard.NewConstructorGuard(),
		userID:              userID,
		estimatedDeliveryAt: estimatedDeliveryAt,
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerName(customerName),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer the order belongs to.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// UserID returns the owning user, or nil.
func (c CreateOrderCommand) UserID() *string {
	return c.userID
}

// EstimatedDeliveryAt returns the estimated delivery time, or nil.
func (c CreateOrderCommand) EstimatedDeliveryAt() *time.Time {
	return c.estimatedDeliveryAt
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}
