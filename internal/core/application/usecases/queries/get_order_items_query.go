package queries

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery lists the lines of one order in insertion order.
type GetOrderItemsQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderItemsQuery(orderID int64) (GetOrderItemsQuery, error) {
	id, err := kernel.NewID("orderId", orderID)
	if err != nil {
		return GetOrderItemsQuery{}, err
	}

	return GetOrderItemsQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

func (q GetOrderItemsQuery) OrderID() kernel.ID {
	return q.orderID
}

type GetOrderItemsQueryResponse struct {
	OrderID  kernel.ID
	PizzaID  kernel.ID
	Quantity int
}
