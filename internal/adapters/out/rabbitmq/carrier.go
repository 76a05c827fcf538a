package rabbitmq

import amqp "github.com/rabbitmq/amqp091-go"

// HeaderCarrier adapts AMQP message headers to the OpenTelemetry
// TextMapCarrier interface.
type HeaderCarrier amqp.Table

func (c HeaderCarrier) Get(key string) string {
	v, _ := c[key].(string)
	return v
}

func (c HeaderCarrier) Set(key, value string) {
	c[key] = value
}

func (c HeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
