package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

var ErrUpdateOrderItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateOrderItemQuantityCommand must be created via NewUpdateOrderItemQuantityCommand constructor",
)

// UpdateOrderItemQuantityCommand sets the quantity of a pizza on an order.
// Only the quantity of a line can be changed.
type UpdateOrderItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	pizzaID  kernel.ID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateOrderItemQuantityCommand(orderID, pizzaID int64, quantity int) (UpdateOrderItemQuantityCommand, error) {
	cmd := UpdateOrderItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPizzaID(pizzaID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateOrderItemQuantityCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemQuantityCommandIsNotConstructed)
}

func (c UpdateOrderItemQuantityCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderItemQuantityCommand) PizzaID() kernel.ID {
	return c.pizzaID
}

func (c UpdateOrderItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateOrderItemQuantityCommand) setOrderID(raw int64) error {
	id, err := kernel.NewID("orderId", raw)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *UpdateOrderItemQuantityCommand) setPizzaID(raw int64) error {
	id, err := kernel.NewID("pizzaId", raw)
	if err != nil {
		return err
	}

	c.pizzaID = id
	return nil
}

func (c *UpdateOrderItemQuantityCommand) setQuantity(quantity int) error {
	if quantity < order.MinQuantity || quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, order.MinQuantity, order.MaxQuantity)
	}

	c.quantity = quantity
	return nil
}
