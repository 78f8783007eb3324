package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

// AMQPDispatcher publishes notifications to a topic exchange, one message
// per recipient, routing key "notification.<kind>". Delivery downstream is
// at-least-once; the dispatcher itself is fire-and-forget relative to the
// ledger and only logs publish failures.
type AMQPDispatcher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

type message struct {
	RecipientID string         `json:"recipient_id"`
	Type        string         `json:"type"`
	Payload     map[string]any `json:"payload"`
	CreatedAt   string         `json:"created_at"`
}

func NewAMQPDispatcher(url, exchange string, logger logger.Logger) (*AMQPDispatcher, error) {
	if url == "" {
		logger.Warn("amqp url is empty, notifications disabled")
		return &AMQPDispatcher{logger: logger}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPDispatcher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func (d *AMQPDispatcher) Enqueue(ctx context.Context, recipientID, kind string, payload map[string]any) {
	if d.ch == nil {
		d.logger.Debug("notification skipped (dispatcher disabled)",
			logger.String("type", kind),
		)
		return
	}

	body, err := json.Marshal(message{
		RecipientID: recipientID,
		Type:        kind,
		Payload:     payload,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		d.logger.Error("failed to marshal notification",
			logger.String("type", kind),
			logger.String("error", err.Error()),
		)
		return
	}

	err = d.ch.PublishWithContext(ctx, d.exchange, "notification."+kind, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		d.logger.Error("failed to publish notification",
			logger.String("recipient_id", recipientID),
			logger.String("type", kind),
			logger.String("error", err.Error()),
		)
	}
}

func (d *AMQPDispatcher) Close() error {
	if d.ch != nil {
		_ = d.ch.Close()
	}
	if d.conn != nil {
		return d.conn.Close()
	}
	return nil
}
