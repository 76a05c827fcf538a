package cmd

import (
	"log/slog"
	"reflect"
	"testing"

	"pizza/internal/adapters/out/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_HTTPHandlers(t *testing.T) {
	app := NewCompositionRoot(DefaultConfig(), nil, slog.New(slog.DiscardHandler))

	handlers := reflect.ValueOf(app.HTTPHandlers())
	for i := range handlers.NumField() {
		assert.False(t, handlers.Field(i).IsNil(), "%s is not wired", handlers.Type().Field(i).Name)
	}
}

func TestCompositionRoot_CreateEventPublisher(t *testing.T) {
	t.Run("no broker", func(t *testing.T) {
		app := NewCompositionRoot(DefaultConfig(), nil, slog.New(slog.DiscardHandler))

		publisher, err := app.CreateEventPublisher()

		require.NoError(t, err)
		assert.Nil(t, publisher)

		jobManager := app.CreateJobManager(publisher)
		require.NoError(t, jobManager.StartAll())
		jobManager.StopAll()
	})

	t.Run("kafka", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EventBroker = EventBrokerKafka
		cfg.KafkaHost = "kafka-1:9092,kafka-2:9092"
		app := NewCompositionRoot(cfg, nil, slog.New(slog.DiscardHandler))

		publisher, err := app.CreateEventPublisher()

		require.NoError(t, err)
		assert.IsType(t, &kafka.Publisher{}, publisher)
		require.NoError(t, publisher.Close())
	})
}
