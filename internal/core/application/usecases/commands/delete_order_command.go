package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order together with all of its lines.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID int64) (DeleteOrderCommand, error) {
	id, err := kernel.NewID("orderId", orderID)
	if err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
