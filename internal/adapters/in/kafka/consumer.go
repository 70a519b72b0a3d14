// Package kafka consumes order status change events from a Kafka topic and
// feeds them through the status state machine. The event_id carried by each
// message doubles as the idempotency token, so redelivered messages are
// absorbed as no-ops.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
)

// statusChangedMessage is the wire format of inbound status change events.
type statusChangedMessage struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	EventID string `json:"event_id"`
}

// OrderStatusConsumer is a Kafka consumer group member that applies status
// change events to orders.
type OrderStatusConsumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler *commands.ChangeOrderStatusCommandHandler
}

// NewOrderStatusConsumer creates a consumer group for the given brokers and
// topic.
func NewOrderStatusConsumer(
	brokers []string,
	groupID string,
	topic string,
	handler *commands.ChangeOrderStatusCommandHandler,
) (*OrderStatusConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	return &OrderStatusConsumer{
		group:   group,
		topic:   topic,
		handler: handler,
	}, nil
}

// Run consumes messages until the context is cancelled. It blocks and is
// intended to be started in its own goroutine.
func (c *OrderStatusConsumer) Run(ctx context.Context) error {
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, c); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return fmt.Errorf("consumer group session failed: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Close shuts down the consumer group.
func (c *OrderStatusConsumer) Close() error {
	return c.group.Close()
}

// Setup implements sarama.ConsumerGroupHandler.
func (c *OrderStatusConsumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup implements sarama.ConsumerGroupHandler.
func (c *OrderStatusConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim processes messages from one partition claim. Malformed or
// rejected messages are logged and marked so the partition keeps moving; a
// poisoned message must not wedge the consumer group.
func (c *OrderStatusConsumer) ConsumeClaim(
	session sarama.ConsumerGroupSession,
	claim sarama.ConsumerGroupClaim,
) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			if err := c.processMessage(session.Context(), message); err != nil {
				slog.Warn("failed to process status change message",
					"topic", message.Topic,
					"partition", message.Partition,
					"offset", message.Offset,
					"error", err,
				)
			}

			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (c *OrderStatusConsumer) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var payload statusChangedMessage
	if err := json.Unmarshal(message.Value, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	orderID, err := kernel.UUIDFromString(payload.OrderID)
	if err != nil {
		return err
	}

	status, err := order.StatusFromString(payload.Status)
	if err != nil {
		return err
	}

	command, err := commands.NewChangeOrderStatusCommand(orderID, status, payload.EventID)
	if err != nil {
		return err
	}

	result, err := c.handler.Handle(ctx, command)
	if err != nil {
		return err
	}

	slog.Info("status change message processed",
		"orderId", orderID.String(),
		"status", status.String(),
		"message", result.Message,
	)
	return nil
}
