package outboxrepo

import (
	"encoding/json"
	"time"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventType    string
	AggregateKey string
	Payload      string `gorm:"type:jsonb"`
	OccurredAt   time.Time
	PublishedAt  *time.Time
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

// eventPayload is the JSON document published for every order event.
type eventPayload struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"orderId"`
	PizzaID    int64     `json:"pizzaId,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func fromEvent(e order.Event) (OutboxDTO, error) {
	payload, err := json.Marshal(eventPayload{
		ID:         e.ID.String(),
		Type:       string(e.Type),
		OrderID:    e.OrderID.Int64(),
		PizzaID:    e.PizzaID.Int64(),
		Quantity:   e.Quantity,
		OccurredAt: e.OccurredAt,
	})
	if err != nil {
		return OutboxDTO{}, err
	}

	return OutboxDTO{
		ID:           e.ID.Google(),
		EventType:    string(e.Type),
		AggregateKey: e.Key(),
		Payload:      string(payload),
		OccurredAt:   e.OccurredAt,
	}, nil
}

func toMessage(dto OutboxDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:         id,
		EventType:  dto.EventType,
		Key:        dto.AggregateKey,
		Payload:    []byte(dto.Payload),
		OccurredAt: dto.OccurredAt,
	}, nil
}
