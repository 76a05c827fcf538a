package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizza/cmd"
	httpin "pizza/internal/adapters/in/http"
	"pizza/internal/adapters/out/postgres"
	"pizza/internal/adapters/out/postgres/migrations"
	"pizza/internal/generated/servers"
	"pizza/internal/telemetry"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	serviceName     = "pizza"
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, configs.OTLPEndpoint, serviceName, configs.ServiceVersion)
	if err != nil {
		log.Fatalf("init tracing: %v", err)
	}

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(
		prometheus.NewRegistry(), serviceName, configs.ServiceVersion,
	)
	if err != nil {
		log.Fatalf("init metrics: %v", err)
	}

	if err := migrations.Up(configs.DatabaseURL()); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	gormDB, err := postgres.Open(configs.DatabaseURL(), configs.DBMaxOpenConns)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	publisher, err := app.CreateEventPublisher()
	if err != nil {
		log.Fatalf("create event publisher: %v", err)
	}
	if publisher == nil {
		logger.Warn("EVENT_BROKER is not set, order events stay in the outbox")
	}

	jobManager := app.CreateJobManager(publisher)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}

	e, err := newWebServer(&app, logger, metricsHandler)
	if err != nil {
		log.Fatalf("create web server: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown http server", "error", err)
	}
	jobManager.StopAll()
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("close event publisher", "error", err)
		}
	}
	if err := postgres.Close(gormDB); err != nil {
		logger.Error("close database", "error", err)
	}
	if err := shutdownMeter(shutdownCtx); err != nil {
		logger.Error("shutdown meter provider", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("shutdown tracer provider", "error", err)
	}
}

func newWebServer(app *cmd.CompositionRoot, logger *slog.Logger, metricsHandler http.Handler) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := httpin.NewRequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpin.ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(serviceName)))
	e.Use(requestLogger(logger))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metricsHandler))
	if err := httpin.RegisterSwaggerDocs(e, swagger); err != nil {
		return nil, err
	}

	servers.RegisterHandlers(e, httpin.NewServer(app.HTTPHandlers(), logger))
	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}
