package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"prosports-server/internal/interfaces"
	"prosports-server/internal/models"
)

const publishTimeout = 10 * time.Second

var _ interfaces.NotificationPublisher = (*RabbitMQPublisher)(nil)

// RabbitMQPublisher sends notification events to the delivery queue.
type RabbitMQPublisher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
	logger    *zap.Logger
}

// NewRabbitMQPublisher opens a channel and declares the notification queue.
// Queue parameters must match the consumer's (durable=true).
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (*RabbitMQPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("notification publisher: failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("notification publisher: failed to declare queue %q: %w", queueName, err)
	}

	logger.Info("RabbitMQ notification publisher initialized", zap.String("queue", queueName))
	return &RabbitMQPublisher{
		conn:      conn,
		channel:   ch,
		queueName: queueName,
		logger:    logger.Named("NotificationPublisher"),
	}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, n *models.Notification) error {
	if p.channel == nil {
		return errors.New("rabbitmq channel is not initialized")
	}

	body, err := json.Marshal(EventFromNotification(n))
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		"",          // exchange (default)
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
			AppId:        "prosports-server",
		},
	)
	if err != nil {
		p.logger.Error("Failed to publish notification event",
			zap.String("queue", p.queueName),
			zap.String("notificationID", n.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to publish to queue %s: %w", p.queueName, err)
	}

	p.logger.Debug("Notification event published",
		zap.String("queue", p.queueName),
		zap.String("notificationID", n.ID.String()))
	return nil
}

// Close closes the publisher's channel.
func (p *RabbitMQPublisher) Close() error {
	if p.channel != nil {
		return p.channel.Close()
	}
	return nil
}
