package commands_test

import (
	"errors"
	"testing"
	"time"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/ports"
	"pizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxMessages(n int) []ports.OutboxMessage {
	messages := make([]ports.OutboxMessage, 0, n)
	for i := range n {
		messages = append(messages, ports.OutboxMessage{
			ID:         kernel.NewUUID(),
			EventType:  "OrderCreated",
			Key:        "1",
			Payload:    []byte(`{"orderId":1}`),
			OccurredAt: time.Date(2024, 5, 1, 12, i, 0, 0, time.UTC),
		})
	}
	return messages
}

func TestNewRelayOutboxCommand(t *testing.T) {
	cmd, err := commands.NewRelayOutboxCommand(commands.DefaultRelayBatchSize)
	require.NoError(t, err)
	assert.Equal(t, 100, cmd.BatchSize())

	_, err = commands.NewRelayOutboxCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestRelayOutboxCommandHandler_Handle_PublishesAndMarks(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRelayOutboxCommand(10)
	messages := outboxMessages(2)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetUnpublished", ctx, 10).Return(messages, nil).Once(),
		publisher.On("Publish", ctx, messages[0]).Return(nil).Once(),
		publisher.On("Publish", ctx, messages[1]).Return(nil).Once(),
		repo.On("MarkPublished", ctx, []kernel.UUID{messages[0].ID, messages[1].ID}, mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRelayOutboxCommandHandler(outboxFactory{newFactory(uow)}, publisher)
	n, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_Empty(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRelayOutboxCommand(10)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetUnpublished", ctx, 10).Return([]ports.OutboxMessage{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRelayOutboxCommandHandler(outboxFactory{newFactory(uow)}, publisher)
	n, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, n)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRelayOutboxCommandHandler_Handle_PartialFailureKeepsPublished(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRelayOutboxCommand(10)
	messages := outboxMessages(3)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetUnpublished", ctx, 10).Return(messages, nil).Once(),
		publisher.On("Publish", ctx, messages[0]).Return(nil).Once(),
		publisher.On("Publish", ctx, messages[1]).Return(errors.New("broker down")).Once(),
		repo.On("MarkPublished", ctx, []kernel.UUID{messages[0].ID}, mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRelayOutboxCommandHandler(outboxFactory{newFactory(uow)}, publisher)
	n, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
	assert.Equal(t, 1, n)
	publisher.AssertNotCalled(t, "Publish", ctx, messages[2])
	uow.AssertExpectations(t)
}
