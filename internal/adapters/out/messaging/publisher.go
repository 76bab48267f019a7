// Package messaging delivers order domain events outside the service. The
// AMQP publisher sends each event to a RabbitMQ topic exchange with the event
// name as routing key; the log publisher writes events to the application log
// when no broker is configured.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fastfood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const contentTypeJSON = "application/json"

// Message is the wire form of a domain event.
type Message struct {
	Event       string         `json:"event"`
	AggregateID string         `json:"aggregate_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload"`
}

func NewMessage(event kernel.DomainEvent) Message {
	return Message{
		Event:       event.EventName(),
		AggregateID: event.AggregateID().String(),
		OccurredAt:  event.OccurredAt().UTC(),
		Payload:     event.Payload(),
	}
}

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type AMQPPublisher struct {
	ch       channel
	exchange string
	logger   *slog.Logger
}

func NewAMQPPublisher(ch channel, exchange string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "amqp_publisher"),
	}
}

// Publish sends events one by one. A failed event is logged and the rest are
// still sent: the change they describe is already committed.
func (p *AMQPPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) {
	for _, event := range events {
		if err := p.publish(ctx, event); err != nil {
			p.logger.ErrorContext(ctx, "Failed to publish domain event",
				"event", event.EventName(),
				"aggregate_id", event.AggregateID().String(),
				"error", err,
			)
		}
	}
}

func (p *AMQPPublisher) publish(ctx context.Context, event kernel.DomainEvent) error {
	body, err := json.Marshal(NewMessage(event))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}

	return p.ch.PublishWithContext(ctx, p.exchange, event.EventName(), false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   contentTypeJSON,
		MessageId:     uuid.NewString(),
		CorrelationId: event.AggregateID().String(),
		Timestamp:     event.OccurredAt().UTC(),
		Type:          event.EventName(),
		Headers: amqp.Table{
			"x-source": "fastfood",
		},
		Body: body,
	})
}

// LogPublisher writes events to the log instead of a broker.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "event_log")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) {
	for _, event := range events {
		p.logger.InfoContext(ctx, "Domain event",
			"event", event.EventName(),
			"aggregate_id", event.AggregateID().String(),
			"occurred_at", event.OccurredAt().UTC(),
			"payload", event.Payload(),
		)
	}
}
