package ports

import (
	"context"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders. Totals are not
// part of the stored order; see services.OrderPricer.
type OrderRepository interface {
	// Add persists a new order and returns it with the store-assigned id.
	// Unknown customer or courier ids are rejected by the store with
	// errs.ConstraintViolationError.
	Add(ctx context.Context, o *order.Order) (*order.Order, error)

	// Get retrieves an order by id or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll retrieves every order ordered by id.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order row. Zero affected rows yield
	// errs.ObjectNotFoundError. Items must be deleted first.
	Delete(ctx context.Context, id kernel.ID) error
}

// OrderItemRepository stores order lines. It performs no existence checks of
// its own; callers resolve the order and pizza before writing.
type OrderItemRepository interface {
	// Add appends a line. Repeating an (order, pizza) pair adds another row.
	Add(ctx context.Context, item *order.Item) error

	// GetAllForOrder returns the lines of an order in insertion order.
	GetAllForOrder(ctx context.Context, orderID kernel.ID) ([]*order.Item, error)

	// Replace removes every line of the item's (order, pizza) pair and writes
	// the item as the single remaining line.
	Replace(ctx context.Context, item *order.Item) error

	// DeleteAllForOrder removes all lines of an order and reports how many
	// rows were deleted. Zero rows is not an error.
	DeleteAllForOrder(ctx context.Context, orderID kernel.ID) (int64, error)

	// Delete removes the lines matching both orderID and pizzaID.
	Delete(ctx context.Context, orderID, pizzaID kernel.ID) error
}
