package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"
)

// DefaultOTLPEndpoint is used when no collector endpoint is configured.
const DefaultOTLPEndpoint = "localhost:4317"

// InitTracerProvider installs a global TracerProvider that batches spans to
// the OTLP collector at endpoint, plus the W3C trace context and baggage
// propagators. The returned function flushes and shuts the provider down.
func InitTracerProvider(
	ctx context.Context,
	endpoint, serviceName, serviceVersion string,
) (func(context.Context) error, error) {
	if endpoint == "" {
		endpoint = DefaultOTLPEndpoint
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(newResource(serviceName, serviceVersion)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}
