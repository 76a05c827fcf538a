package order

import (
	"time"

	"pizza/internal/core/domain/model/kernel"
)

// EventType names an order change published to other services.
type EventType string

const (
	EventOrderCreated        EventType = "order.created"
	EventOrderDeleted        EventType = "order.deleted"
	EventItemAdded           EventType = "order.item_added"
	EventItemQuantityChanged EventType = "order.item_quantity_changed"
	EventItemRemoved         EventType = "order.item_removed"
)

// Event records a committed change to an order or its lines. Events are written
// to the outbox in the transaction that made the change.
type Event struct {
	ID         kernel.UUID
	Type       EventType
	OrderID    kernel.ID
	PizzaID    kernel.ID
	Quantity   int
	OccurredAt time.Time
}

// Key is the partitioning key: all events of one order stay in order.
func (e Event) Key() string {
	return e.OrderID.String()
}

func NewOrderCreatedEvent(o *Order) Event {
	return newEvent(EventOrderCreated, o.ID(), 0, 0)
}

func NewOrderDeletedEvent(orderID kernel.ID) Event {
	return newEvent(EventOrderDeleted, orderID, 0, 0)
}

func NewItemAddedEvent(item *Item) Event {
	return newEvent(EventItemAdded, item.OrderID(), item.PizzaID(), item.Quantity())
}

func NewItemQuantityChangedEvent(item *Item) Event {
	return newEvent(EventItemQuantityChanged, item.OrderID(), item.PizzaID(), item.Quantity())
}

func NewItemRemovedEvent(orderID, pizzaID kernel.ID) Event {
	return newEvent(EventItemRemoved, orderID, pizzaID, 0)
}

func newEvent(t EventType, orderID, pizzaID kernel.ID, quantity int) Event {
	return Event{
		ID:         kernel.NewUUID(),
		Type:       t,
		OrderID:    orderID,
		PizzaID:    pizzaID,
		Quantity:   quantity,
		OccurredAt: time.Now().UTC(),
	}
}
