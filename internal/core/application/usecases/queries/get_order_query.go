package queries

import (
	"errors"
	"time"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order together with its current total.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	o, err := handler.Handle(ctx, query)
//	fmt.Printf("order %s costs %s\n", o.ID, o.Total)
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	id, err := kernel.NewID("orderId", orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetOrderQueryResponse is an order as shown to callers. Total is computed at
// read time and reflects the catalog prices of that moment.
type GetOrderQueryResponse struct {
	ID         kernel.ID
	CustomerID kernel.ID
	CourierID  kernel.ID
	CreatedAt  time.Time
	Total      kernel.Money
}
