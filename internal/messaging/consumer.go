package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Deliverer pushes raw messages to connected WebSocket clients.
type Deliverer interface {
	SendToUser(userID uuid.UUID, message []byte) bool
	Broadcast(message []byte) int
}

// Consumer drains the notification queue and forwards events to connected
// clients. Offline users are not an error: the persistent copy in postgres
// is their fallback, so every well-formed delivery is acked.
type Consumer struct {
	conn      *amqp.Connection
	deliverer Deliverer
	queueName string
	logger    *zap.Logger
	stop      chan struct{}
}

func NewConsumer(conn *amqp.Connection, deliverer Deliverer, queueName string, logger *zap.Logger) *Consumer {
	return &Consumer{
		conn:      conn,
		deliverer: deliverer,
		queueName: queueName,
		logger:    logger.Named("NotificationConsumer"),
		stop:      make(chan struct{}),
	}
}

// StartConsuming blocks reading the queue until Stop is called or the
// channel closes. Run it in its own goroutine.
func (c *Consumer) StartConsuming() error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	defer ch.Close()

	// Declare the queue with the same parameters as the publisher so
	// startup order does not matter.
	q, err := ch.QueueDeclare(
		c.queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %q: %w", c.queueName, err)
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"prosports-ws-consumer", // consumer tag
		false,                   // auto-ack
		false,                   // exclusive
		false,                   // no-local
		false,                   // no-wait
		nil,                     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("Notification consumer started", zap.String("queue", q.Name))

	for {
		select {
		case d, ok := <-msgs:
			if !ok {
				c.logger.Warn("RabbitMQ delivery channel closed")
				return nil
			}
			c.handleDelivery(d)

		case <-c.stop:
			c.logger.Info("Notification consumer stopping")
			return nil
		}
	}
}

func (c *Consumer) handleDelivery(d amqp.Delivery) {
	var event NotificationEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		c.logger.Error("Failed to unmarshal notification event, discarding", zap.Error(err))
		_ = d.Nack(false, false)
		return
	}

	if event.UserID == nil {
		delivered := c.deliverer.Broadcast(d.Body)
		c.logger.Debug("Broadcast delivered",
			zap.String("notificationID", event.NotificationID.String()),
			zap.Int("clients", delivered))
	} else if c.deliverer.SendToUser(*event.UserID, d.Body) {
		c.logger.Debug("Notification delivered",
			zap.String("notificationID", event.NotificationID.String()),
			zap.String("userID", event.UserID.String()))
	} else {
		c.logger.Debug("User offline, notification stays stored",
			zap.String("notificationID", event.NotificationID.String()),
			zap.String("userID", event.UserID.String()))
	}

	_ = d.Ack(false)
}

// Stop signals StartConsuming to return.
func (c *Consumer) Stop() {
	close(c.stop)
}
