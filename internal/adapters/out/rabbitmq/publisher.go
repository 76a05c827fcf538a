// Package rabbitmq publishes order change events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	"pizza/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// RoutingKeyPrefix is prepended to the event type to form the routing key,
// e.g. "order.OrderItemAdded".
const RoutingKeyPrefix = "order."

var tracer = otel.Tracer("rabbitmq/publisher")

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends persistent JSON messages to a durable topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher connects to url and declares the exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	routingKey := RoutingKeyPrefix + msg.EventType

	ctx, span := tracer.Start(ctx, "publish "+p.exchange,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemRabbitmq,
			semconv.MessagingOperationTypePublish,
			semconv.MessagingDestinationName(p.exchange),
			semconv.MessagingMessageID(msg.ID.String()),
			attribute.String("messaging.rabbitmq.destination.routing_key", routingKey),
		),
	)
	defer span.End()

	headers := amqp.Table{}
	otel.GetTextMapPropagator().Inject(ctx, HeaderCarrier(headers))

	err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID.String(),
		Type:         msg.EventType,
		Timestamp:    msg.OccurredAt,
		Headers:      headers,
		Body:         msg.Payload,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("publish to exchange %s: %w", p.exchange, err)
	}

	return nil
}

// Close closes the channel and then the connection.
func (p *Publisher) Close() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil && !p.conn.IsClosed() {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
