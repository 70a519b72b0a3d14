// Package rabbitmq delivers persisted notifications to connected clients
// through RabbitMQ exchanges. User notifications are routed by user id on a
// direct exchange; admin broadcasts go through a fanout exchange so every
// admin consumer receives them.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"

	"github.com/rabbitmq/amqp091-go"
)

const (
	// UserNotificationsExchange routes user notifications by user id.
	UserNotificationsExchange = "notifications.user"

	// AdminNotificationsExchange broadcasts admin alerts to all consumers.
	AdminNotificationsExchange = "notifications.admin"
)

// pushPayload is the wire format for pushed notifications.
type pushPayload struct {
	ID        uint           `json:"id"`
	UserID    *string        `json:"user_id,omitempty"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// AmqpPushSender implements the push port on top of a RabbitMQ channel.
type AmqpPushSender struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// NewAmqpPushSender connects to RabbitMQ and declares the notification
// exchanges.
func NewAmqpPushSender(url string) (*AmqpPushSender, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if err = channel.ExchangeDeclare(
		UserNotificationsExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare user exchange: %w", err)
	}

	if err = channel.ExchangeDeclare(
		AdminNotificationsExchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare admin exchange: %w", err)
	}

	return &AmqpPushSender{conn: conn, channel: channel}, nil
}

// PushToUser publishes the notification to the user's routing key.
func (s *AmqpPushSender) PushToUser(ctx context.Context, userID string, n *notification.Notification) error {
	return s.publish(ctx, UserNotificationsExchange, userID, n)
}

// PushToAdmins broadcasts the notification on the admin fanout exchange.
func (s *AmqpPushSender) PushToAdmins(ctx context.Context, n *notification.Notification) error {
	return s.publish(ctx, AdminNotificationsExchange, "", n)
}

func (s *AmqpPushSender) publish(ctx context.Context, exchange, routingKey string, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(pushPayload{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.NotificationType().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Data:      n.Data(),
		CreatedAt: n.CreatedAt(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push payload: %w", err)
	}

	err = s.channel.PublishWithContext(
		ctx,
		exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Close releases the channel and connection.
func (s *AmqpPushSender) Close() error {
	if err := s.channel.Close(); err != nil {
		s.conn.Close()
		return err
	}
	return s.conn.Close()
}
