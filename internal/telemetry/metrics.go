package telemetry

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// InitMeterProvider registers a Prometheus exporter on registry, installs
// the global MeterProvider and starts Go runtime metrics. It returns the
// handler for the /metrics endpoint and a shutdown function.
func InitMeterProvider(
	registry *prometheus.Registry,
	serviceName, serviceVersion string,
) (http.Handler, func(context.Context) error, error) {
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, nil, err
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithResource(newResource(serviceName, serviceVersion)),
	)

	otel.SetMeterProvider(mp)

	if err = runtime.Start(runtime.WithMeterProvider(mp)); err != nil {
		_ = mp.Shutdown(context.Background())
		return nil, nil, err
	}

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), mp.Shutdown, nil
}
