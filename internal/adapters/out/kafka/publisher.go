// Package kafka publishes order change events to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"pizza/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	HeaderEventType = "event-type"
	HeaderEventID   = "event-id"
)

var tracer = otel.Tracer("kafka/publisher")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes outbox messages to one topic. Messages are keyed by order
// id, so the events of an order keep their relative order within a partition.
type Publisher struct {
	writer messageWriter
	topic  string
}

var _ ports.EventPublisher = (*Publisher)(nil)

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           10 * time.Second,
			RequiredAcks:           kafka.RequireOne,
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	ctx, span := tracer.Start(ctx, "send "+p.topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("send"),
			semconv.MessagingOperationTypePublish,
			semconv.MessagingDestinationName(p.topic),
			semconv.MessagingKafkaMessageKey(msg.Key),
			semconv.MessagingMessageID(msg.ID.String()),
		),
	)
	defer span.End()

	kmsg := kafka.Message{
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Time:  msg.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(msg.EventType)},
			{Key: HeaderEventID, Value: []byte(msg.ID.String())},
		},
	}

	otel.GetTextMapPropagator().Inject(ctx, NewMessageCarrier(&kmsg))

	if err := p.writer.WriteMessages(ctx, kmsg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("write to kafka topic %s: %w", p.topic, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
