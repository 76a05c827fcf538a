package outboxrepo

import (
	"context"
	"time"

	"pizza/internal/adapters/out/postgres/pgerrs"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository stores order events until the relay publishes them.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add serializes events into outbox rows. It is called by the unit of work
// right before commit.
func (r *GormOutboxRepository) Add(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxDTO, 0, len(events))
	for _, e := range events {
		dto, err := fromEvent(e)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return pgerrs.Translate(err)
	}
	return nil
}

func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate(err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, err := toMessage(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Google())
	}

	if err := r.db.WithContext(ctx).
		Model(&OutboxDTO{}).
		Where("id IN ?", raw).
		Update("published_at", publishedAt.UTC()).Error; err != nil {
		return pgerrs.Translate(err)
	}
	return nil
}
