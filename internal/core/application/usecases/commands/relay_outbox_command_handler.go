package commands

import (
	"context"
	"fmt"
	"time"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/ports"
)

// RelayOutboxCommandHandler moves committed order events from the outbox to
// the broker. Rows stay locked for the duration of a run, so concurrent relays
// never pick the same message. A publish failure stops the run; messages sent
// before it are still marked, the rest are retried on the next run.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle returns the number of messages published.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	messages, err := repo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	if len(messages) == 0 {
		return 0, nil
	}

	published := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, msg := range messages {
		if publishErr = h.publisher.Publish(ctx, msg); publishErr != nil {
			publishErr = fmt.Errorf("publish outbox message %s: %w", msg.ID, publishErr)
			break
		}
		published = append(published, msg.ID)
	}

	if len(published) > 0 {
		if err = repo.MarkPublished(ctx, published, h.now()); err != nil {
			return 0, err
		}

		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(published), publishErr
}
