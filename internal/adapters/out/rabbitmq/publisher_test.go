package rabbitmq

import (
	"context"
	"errors"
	"testing"
	"time"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (c *fakeChannel) PublishWithContext(
	_ context.Context,
	exchange, key string,
	_, _ bool,
	msg amqp.Publishing,
) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(t.Context(), "relay")
	defer span.End()

	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "pizza.orders"}
	msg := ports.OutboxMessage{
		ID:         kernel.NewUUID(),
		EventType:  "OrderDeleted",
		Key:        "3",
		Payload:    []byte(`{"orderId":3}`),
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.Publish(ctx, msg))
	require.Len(t, ch.sent, 1)

	sent := ch.sent[0]
	assert.Equal(t, "pizza.orders", sent.exchange)
	assert.Equal(t, "order.OrderDeleted", sent.key)
	assert.Equal(t, amqp.Persistent, sent.msg.DeliveryMode)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, msg.ID.String(), sent.msg.MessageId)
	assert.Equal(t, msg.OccurredAt, sent.msg.Timestamp)
	assert.JSONEq(t, `{"orderId":3}`, string(sent.msg.Body))
	assert.Contains(t, HeaderCarrier(sent.msg.Headers).Get("traceparent"), span.SpanContext().TraceID().String())
}

func TestPublisher_PublishError(t *testing.T) {
	p := &Publisher{ch: &fakeChannel{err: amqp.ErrClosed}, exchange: "pizza.orders"}

	err := p.Publish(t.Context(), ports.OutboxMessage{ID: kernel.NewUUID(), EventType: "OrderCreated"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, amqp.ErrClosed))
}

func TestPublisher_CloseWithoutConnection(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestHeaderCarrier(t *testing.T) {
	c := HeaderCarrier{}
	c.Set("traceparent", "x")
	c["retries"] = int32(2)

	assert.Equal(t, "x", c.Get("traceparent"))
	assert.Empty(t, c.Get("retries"))
	assert.ElementsMatch(t, []string{"traceparent", "retries"}, c.Keys())
}
