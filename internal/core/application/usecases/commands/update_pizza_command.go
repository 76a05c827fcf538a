package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/pizza"
	"pizza/internal/pkg/guard"
)

var ErrUpdatePizzaCommandIsNotConstructed = errors.New(
	"UpdatePizzaCommand must be created via NewUpdatePizzaCommand constructor",
)

// UpdatePizzaCommand changes the fields of a pizza that were supplied. A nil
// field is left as stored; a command with no fields changes nothing.
type UpdatePizzaCommand struct { //nolint:recvcheck //using for validation
	pizzaID kernel.ID
	name    *string
	price   *int64

	guard guard.ConstructorGuard
}

func NewUpdatePizzaCommand(pizzaID int64, name *string, price *int64) (UpdatePizzaCommand, error) {
	cmd := UpdatePizzaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPizzaID(pizzaID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return UpdatePizzaCommand{}, err
	}

	return cmd, nil
}

func (c UpdatePizzaCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePizzaCommandIsNotConstructed)
}

func (c UpdatePizzaCommand) PizzaID() kernel.ID {
	return c.pizzaID
}

// Name returns the new name and whether one was supplied.
func (c UpdatePizzaCommand) Name() (string, bool) {
	if c.name == nil {
		return "", false
	}
	return *c.name, true
}

// Price returns the new price and whether one was supplied.
func (c UpdatePizzaCommand) Price() (int64, bool) {
	if c.price == nil {
		return 0, false
	}
	return *c.price, true
}

func (c *UpdatePizzaCommand) setPizzaID(raw int64) error {
	id, err := kernel.NewID("pizzaId", raw)
	if err != nil {
		return err
	}

	c.pizzaID = id
	return nil
}

func (c *UpdatePizzaCommand) setName(name *string) error {
	if name == nil {
		return nil
	}

	v, err := kernel.NewText("name", *name)
	if err != nil {
		return err
	}

	c.name = &v
	return nil
}

func (c *UpdatePizzaCommand) setPrice(price *int64) error {
	if price == nil {
		return nil
	}

	if _, err := kernel.NewMoney("price", *price, pizza.MinPrice, pizza.MaxPrice); err != nil {
		return err
	}

	v := *price
	c.price = &v
	return nil
}
