package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrDeleteOrderItemCommandIsNotConstructed = errors.New(
	"DeleteOrderItemCommand must be created via NewDeleteOrderItemCommand constructor",
)

// DeleteOrderItemCommand removes a pizza from an order.
type DeleteOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	pizzaID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOrderItemCommand(orderID, pizzaID int64) (DeleteOrderItemCommand, error) {
	cmd := DeleteOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPizzaID(pizzaID),
	); err != nil {
		return DeleteOrderItemCommand{}, err
	}

	return cmd, nil
}

func (c DeleteOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderItemCommandIsNotConstructed)
}

func (c DeleteOrderItemCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c DeleteOrderItemCommand) PizzaID() kernel.ID {
	return c.pizzaID
}

func (c *DeleteOrderItemCommand) setOrderID(raw int64) error {
	id, err := kernel.NewID("orderId", raw)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *DeleteOrderItemCommand) setPizzaID(raw int64) error {
	id, err := kernel.NewID("pizzaId", raw)
	if err != nil {
		return err
	}

	c.pizzaID = id
	return nil
}
