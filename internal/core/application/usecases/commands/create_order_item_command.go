package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

var ErrCreateOrderItemCommandIsNotConstructed = errors.New(
	"CreateOrderItemCommand must be created via NewCreateOrderItemCommand constructor",
)

// CreateOrderItemCommand adds quantity pieces of a pizza to an order.
type CreateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	pizzaID  kernel.ID
	quantity int

	guard guard.ConstructorGuard
}

func NewCreateOrderItemCommand(orderID, pizzaID int64, quantity int) (CreateOrderItemCommand, error) {
	cmd := CreateOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPizzaID(pizzaID),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderItemCommandIsNotConstructed)
}

func (c CreateOrderItemCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CreateOrderItemCommand) PizzaID() kernel.ID {
	return c.pizzaID
}

func (c CreateOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *CreateOrderItemCommand) setOrderID(raw int64) error {
	id, err := kernel.NewID("orderId", raw)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderItemCommand) setPizzaID(raw int64) error {
	id, err := kernel.NewID("pizzaId", raw)
	if err != nil {
		return err
	}

	c.pizzaID = id
	return nil
}

func (c *CreateOrderItemCommand) setQuantity(quantity int) error {
	if quantity < order.MinQuantity || quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, order.MinQuantity, order.MaxQuantity)
	}

	c.quantity = quantity
	return nil
}
