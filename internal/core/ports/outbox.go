package ports

import (
	"context"
	"time"

	"pizza/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized order event waiting to be published.
type OutboxMessage struct {
	ID         kernel.UUID
	EventType  string
	Key        string
	Payload    []byte
	OccurredAt time.Time
}

// OutboxRepository reads and acknowledges stored events. Events are written
// by the unit of work on commit, in the same transaction as the change that
// raised them.
type OutboxRepository interface {
	// GetUnpublished locks and returns up to limit unpublished messages,
	// oldest first. Rows locked by another relay are skipped.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished stamps the given messages as published.
	MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error
}

// EventPublisher delivers outbox messages to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
	Close() error
}
